// Package cli implements the command-line interface for docsift.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driven"
	"github.com/docsift/docsift/internal/core/ports/driving"
	"github.com/docsift/docsift/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// AnalyzerFactory builds an analyzer for one run. Settings are resolved
// from flags and configuration at command time, so the analyzer cannot
// be constructed up front.
type AnalyzerFactory func(settings domain.AnalysisSettings) (driving.Analyzer, error)

// Services injected by main before Execute.
var (
	configStore    driven.ConfigStore
	historyService driving.HistoryService
	newAnalyzer    AnalyzerFactory
	registry       driven.ProviderRegistry
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "docsift",
	Short: "Rank document sections by relevance to a task",
	Long: `docsift reads a collection of documents, splits them into titled
sections, and ranks every section by semantic similarity to a stated
job-to-be-done. The top sections are written as a JSON report.

Run 'docsift setup' to describe the task, then 'docsift analyze' to
produce the report.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose progress output")
}

// SetVersion overrides the build version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetConfigStore injects the configuration store.
func SetConfigStore(store driven.ConfigStore) {
	configStore = store
}

// SetHistoryService injects the run history service.
func SetHistoryService(svc driving.HistoryService) {
	historyService = svc
}

// SetAnalyzerFactory injects the analyzer constructor.
func SetAnalyzerFactory(factory AnalyzerFactory) {
	newAnalyzer = factory
}

// SetProviderRegistry injects the document provider registry.
func SetProviderRegistry(r driven.ProviderRegistry) {
	registry = r
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
