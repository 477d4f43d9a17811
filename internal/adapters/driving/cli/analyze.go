package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/logger"
	"github.com/docsift/docsift/internal/watcher"
)

// minSimUnset marks --min-similarity as not provided. Valid floors
// live in [-1, 1].
const minSimUnset = -2

var (
	analyzeInput       string
	analyzeFolder      string
	analyzeOutput      string
	analyzeTop         int
	analyzeMinSim      float64
	analyzePersona     string
	analyzeTask        string
	analyzeDescription string
	analyzeJSON        bool
	analyzeWatch       bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Rank document sections against a task",
	Long: `Analyze reads the task definition, extracts titled sections from
every requested document, ranks them by semantic similarity to the
job-to-be-done, and writes the ranked report as JSON.

The task comes from --input, from input.json in the working directory,
or is synthesised from --persona and --task plus a scan of the
documents folder.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "task definition file (default input.json when present)")
	analyzeCmd.Flags().StringVarP(&analyzeFolder, "folder", "f", "", "documents folder (default from config or ./pdfs)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", defaultReportFile, "report output file")
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", 0, "number of sections to keep (default 5)")
	analyzeCmd.Flags().Float64Var(&analyzeMinSim, "min-similarity", minSimUnset, "similarity floor in [-1, 1] (default 0.1)")
	analyzeCmd.Flags().StringVar(&analyzePersona, "persona", "", "who the analysis is for")
	analyzeCmd.Flags().StringVar(&analyzeTask, "task", "", "job to be done")
	analyzeCmd.Flags().StringVar(&analyzeDescription, "description", "", "run description")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the report JSON instead of the summary")
	analyzeCmd.Flags().BoolVar(&analyzeWatch, "watch", false, "re-run when the documents folder changes")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if newAnalyzer == nil {
		return errors.New("analyzer not configured")
	}
	if registry == nil {
		return errors.New("provider registry not configured")
	}

	task, taskDir, synthesised, err := resolveTask()
	if err != nil {
		return err
	}
	settings := resolveSettings(taskDir)

	renderRunHeader(cmd.OutOrStdout(), *task, settings.Folder)

	if analyzeWatch {
		return watchAndAnalyze(cmd, task, settings, synthesised)
	}
	return analyzeOnce(cmd, *task, settings)
}

// resolveTask picks the task source: an explicit --input file, a task
// synthesised from flags, or input.json in the working directory. It
// returns the task, the task file's directory (empty for a synthesised
// task), and whether the task was synthesised.
func resolveTask() (*domain.Task, string, bool, error) {
	if analyzeInput != "" {
		task, err := loadTaskFile(analyzeInput)
		if err != nil {
			return nil, "", false, err
		}
		applyTaskOverrides(task)
		return task, filepath.Dir(analyzeInput), false, nil
	}
	if analyzeTask != "" || analyzePersona != "" {
		task, err := synthesiseTask()
		if err != nil {
			return nil, "", false, err
		}
		return task, "", true, nil
	}
	if _, err := os.Stat(defaultTaskFile); err == nil {
		task, err := loadTaskFile(defaultTaskFile)
		if err != nil {
			return nil, "", false, err
		}
		applyTaskOverrides(task)
		return task, ".", false, nil
	}
	return nil, "", false, errors.New("no task found: run 'docsift setup', or pass --input or --persona/--task")
}

// applyTaskOverrides layers command flags over a loaded task file.
func applyTaskOverrides(task *domain.Task) {
	if analyzePersona != "" {
		task.Persona.Role = analyzePersona
	}
	if analyzeTask != "" {
		task.JobToBeDone.Task = analyzeTask
	}
	if analyzeDescription != "" {
		if task.ChallengeInfo == nil {
			task.ChallengeInfo = domain.NewChallengeInfo(analyzeDescription)
		} else {
			task.ChallengeInfo.Description = analyzeDescription
		}
	}
}

// synthesiseTask builds a task from flags and a folder scan, the same
// shape setup would have written.
func synthesiseTask() (*domain.Task, error) {
	if analyzeTask == "" {
		return nil, errors.New("--task is required when no task file is used")
	}
	persona := analyzePersona
	if persona == "" {
		persona = defaultPersona
	}
	description := analyzeDescription
	if description == "" {
		description = "Document analysis for " + strings.ToLower(persona)
	}

	folder := resolveFolder("")
	docs, err := scanDocuments(folder)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("no supported documents in %s", folder)
	}

	return &domain.Task{
		ChallengeInfo: domain.NewChallengeInfo(description),
		Documents:     docs,
		Persona:       domain.Persona{Role: persona},
		JobToBeDone:   domain.JobToBeDone{Task: analyzeTask},
	}, nil
}

// resolveFolder picks the documents folder: the --folder flag, then
// configuration, then a pdfs directory next to the task file, then the
// task file's own directory, then the default.
func resolveFolder(taskDir string) string {
	if analyzeFolder != "" {
		return analyzeFolder
	}
	if configStore != nil {
		if v := configStore.GetString("documents.folder"); v != "" {
			return v
		}
	}
	if taskDir != "" && taskDir != "." {
		if sub := filepath.Join(taskDir, "pdfs"); isDir(sub) {
			return sub
		}
		return taskDir
	}
	return domain.DefaultDocumentsFolder
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// resolveSettings layers configuration over the defaults and command
// flags over both.
func resolveSettings(taskDir string) domain.AnalysisSettings {
	s := domain.DefaultAnalysisSettings()
	s.Folder = resolveFolder(taskDir)
	s.MinSectionLength = configInt("analysis.min_section_length", s.MinSectionLength)
	s.MaxHeadingLength = configInt("analysis.max_heading_length", s.MaxHeadingLength)
	s.MaxHeadingWords = configInt("analysis.max_heading_words", s.MaxHeadingWords)
	s.TopN = configInt("analysis.top_n", s.TopN)
	s.MinSimilarity = configFloat("analysis.min_similarity", s.MinSimilarity)
	s.MaxRefinedTextLength = configInt("analysis.max_refined_text_length", s.MaxRefinedTextLength)

	if analyzeTop > 0 {
		s.TopN = analyzeTop
	}
	if analyzeMinSim != minSimUnset {
		s.MinSimilarity = analyzeMinSim
	}
	return s.Normalised()
}

// configInt returns the configured value for key, or fallback when the
// key is absent.
func configInt(key string, fallback int) int {
	if configStore == nil {
		return fallback
	}
	if _, ok := configStore.Get(key); !ok {
		return fallback
	}
	return configStore.GetInt(key)
}

// configFloat returns the configured value for key, or fallback when
// the key is absent.
func configFloat(key string, fallback float64) float64 {
	if configStore == nil {
		return fallback
	}
	if _, ok := configStore.Get(key); !ok {
		return fallback
	}
	return configStore.GetFloat(key)
}

// configBool returns the configured value for key, or fallback when
// the key is absent.
func configBool(key string, fallback bool) bool {
	if configStore == nil {
		return fallback
	}
	if _, ok := configStore.Get(key); !ok {
		return fallback
	}
	return configStore.GetBool(key)
}

// analyzeOnce runs the pipeline once and writes the report.
func analyzeOnce(cmd *cobra.Command, task domain.Task, settings domain.AnalysisSettings) error {
	analyzer, err := newAnalyzer(settings)
	if err != nil {
		return fmt.Errorf("configure analyzer: %w", err)
	}

	result, err := analyzer.Analyze(cmd.Context(), task)
	if err != nil {
		return err
	}
	if err := writeReport(analyzeOutput, result.Report); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if analyzeJSON {
		data, err := json.MarshalIndent(result.Report, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	renderResults(out, result)
	renderMetadata(out, result.Report.Metadata)
	fmt.Fprintln(out)
	renderSaved(out, analyzeOutput)
	return nil
}

// watchAndAnalyze re-runs the whole pipeline whenever the documents
// folder changes. A synthesised task is rescanned each run so new files
// join the batch.
func watchAndAnalyze(cmd *cobra.Command, task *domain.Task, settings domain.AnalysisSettings, rescan bool) error {
	w, err := watcher.New(settings.Folder, registry.SupportedExtensions())
	if err != nil {
		return fmt.Errorf("watch %s: %w", settings.Folder, err)
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	cmd.SetContext(ctx)

	out := cmd.OutOrStdout()
	run := func() {
		if rescan {
			docs, err := scanDocuments(settings.Folder)
			if err == nil && len(docs) > 0 {
				task.Documents = docs
			}
		}
		if err := analyzeOnce(cmd, *task, settings); err != nil {
			fmt.Fprintln(out, errorStyle.Render("analysis failed: "+err.Error()))
		}
	}

	run()
	fmt.Fprintln(out, dimStyle.Render("Watching "+settings.Folder+" (Ctrl+C to stop)"))
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-w.Changes():
			if !ok {
				return nil
			}
			logger.Info("folder changed, re-running analysis")
			run()
		}
	}
}

// writeReport persists the report as indented JSON.
func writeReport(path string, report domain.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
