package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/docsift/docsift/internal/core/domain"
)

// Fallback values when setup prompts are left blank.
const (
	defaultPersona = "Analyst"
	defaultJob     = "Analyze and summarize key information"
)

// SetupWizard runs the interactive setup flow over the scanned
// documents and returns the composed task, or nil when cancelled.
// Wired by main to the terminal UI; setup falls back to plain prompts
// when it is nil or stdin is not a terminal.
type SetupWizard func(folder string, docs []domain.DocumentRef) (*domain.Task, error)

var setupWizard SetupWizard

// SetSetupWizard injects the interactive setup flow.
func SetSetupWizard(w SetupWizard) {
	setupWizard = w
}

var (
	setupFolder string
	setupOutput string
	setupPlain  bool
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create a task definition interactively",
	Long: `Setup scans the documents folder, asks who the analysis is for and
what they need, and writes the task definition JSON that analyze reads.`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().StringVarP(&setupFolder, "folder", "f", "", "documents folder (default from config or ./pdfs)")
	setupCmd.Flags().StringVarP(&setupOutput, "output", "o", defaultTaskFile, "task definition file to write")
	setupCmd.Flags().BoolVar(&setupPlain, "plain", false, "use plain prompts instead of the interactive wizard")
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	if registry == nil {
		return errors.New("provider registry not configured")
	}

	folder := setupFolder
	if folder == "" && configStore != nil {
		folder = configStore.GetString("documents.folder")
	}
	if folder == "" {
		folder = domain.DefaultDocumentsFolder
	}

	if !isDir(folder) {
		if err := os.MkdirAll(folder, 0755); err != nil {
			return fmt.Errorf("create documents folder: %w", err)
		}
		cmd.Printf("Created %s. Add your documents there and run setup again.\n", folder)
		return nil
	}

	docs, err := scanDocuments(folder)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("no supported documents in %s: add files and run setup again", folder)
	}

	renderDocumentList(cmd.OutOrStdout(), folder, docs)

	var task *domain.Task
	if setupWizard != nil && !setupPlain && term.IsTerminal(int(os.Stdin.Fd())) {
		task, err = setupWizard(folder, docs)
	} else {
		task, err = promptTask(cmd, docs)
	}
	if err != nil {
		return err
	}
	if task == nil {
		cmd.Println("Setup cancelled.")
		return nil
	}

	if err := writeTaskFile(setupOutput, *task); err != nil {
		return err
	}

	cmd.Println()
	cmd.Printf("Created %s\n", setupOutput)
	cmd.Println("Summary:")
	cmd.Printf("  Role: %s\n", task.Persona.Role)
	cmd.Printf("  Task: %s\n", task.JobToBeDone.Task)
	cmd.Printf("  Description: %s\n", task.Description())
	cmd.Printf("  Documents: %d\n", len(task.Documents))
	cmd.Println()
	cmd.Println("Now run: docsift analyze")
	return nil
}

// promptTask gathers the task over plain prompts, mirroring the wizard.
func promptTask(cmd *cobra.Command, docs []domain.DocumentRef) (*domain.Task, error) {
	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Println()
	cmd.Println("What is your role?")
	cmd.Println("Examples: Travel Planner, Research Scientist, Legal Analyst")
	cmd.Print("Your role: ")
	role := readLine(reader)
	if role == "" {
		role = defaultPersona
	}

	cmd.Println()
	cmd.Println("What do you want to find or analyse in your documents?")
	cmd.Println("Examples:")
	cmd.Println("  - Plan a 7-day vacation for a family of 4")
	cmd.Println("  - Find best practices for API development")
	cmd.Println("  - Identify key research methodologies")
	cmd.Print("Your task: ")
	job := readLine(reader)
	if job == "" {
		job = defaultJob
	}

	cmd.Println()
	cmd.Print("Project description (optional): ")
	description := readLine(reader)
	if description == "" {
		description = "Document analysis for " + strings.ToLower(role)
	}

	return &domain.Task{
		ChallengeInfo: domain.NewChallengeInfo(description),
		Documents:     docs,
		Persona:       domain.Persona{Role: role},
		JobToBeDone:   domain.JobToBeDone{Task: job},
	}, nil
}
