package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/extractors"
)

// Default file names for the task and report JSON.
const (
	defaultTaskFile   = "input.json"
	defaultReportFile = "output.json"
)

// loadTaskFile reads and parses a task definition from disk.
func loadTaskFile(path string) (*domain.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}
	var task domain.Task
	if err := json.Unmarshal(data, &task); err != nil {
		return nil, fmt.Errorf("parse task file %s: %w", path, err)
	}
	return &task, nil
}

// writeTaskFile persists a task definition as indented JSON.
func writeTaskFile(path string, task domain.Task) error {
	data, err := json.MarshalIndent(task, "", "  ")
	if err != nil {
		return fmt.Errorf("encode task: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	return nil
}

// scanDocuments lists the supported files in folder, sorted by name,
// with titles synthesised from the filenames.
func scanDocuments(folder string) ([]domain.DocumentRef, error) {
	if registry == nil {
		return nil, errors.New("provider registry not configured")
	}
	return extractors.ScanFolder(registry, folder)
}
