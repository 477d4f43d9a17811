package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/docsift/docsift/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage docsift configuration",
	Long: `View and change analysis defaults, the documents folder, and the
embedding provider. Values are stored in the TOML config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value by dotted key, for example:

  docsift config set analysis.top_n 10
  docsift config set analysis.min_similarity 0.25
  docsift config set documents.folder ./docs
  docsift config set history.enabled false`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configEmbeddingCmd = &cobra.Command{
	Use:   "embedding",
	Short: "Configure the embedding provider",
	Long:  `Interactively select the embedding provider and model used for ranking.`,
	RunE:  runConfigEmbedding,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configEmbeddingCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	cmd.Println()

	cmd.Println("[Analysis]")
	cmd.Printf("  Top sections: %d\n", configInt("analysis.top_n", domain.DefaultTopN))
	cmd.Printf("  Min similarity: %g\n", configFloat("analysis.min_similarity", domain.DefaultMinSimilarity))
	cmd.Printf("  Min section length: %d\n", configInt("analysis.min_section_length", domain.DefaultMinSectionLength))
	cmd.Printf("  Max heading length: %d\n", configInt("analysis.max_heading_length", domain.DefaultMaxHeadingLength))
	cmd.Printf("  Max heading words: %d\n", configInt("analysis.max_heading_words", domain.DefaultMaxHeadingWords))
	cmd.Printf("  Max refined text length: %d\n", configInt("analysis.max_refined_text_length", domain.DefaultMaxRefinedTextLength))
	cmd.Println()

	cmd.Println("[Documents]")
	folder := configStore.GetString("documents.folder")
	if folder == "" {
		folder = domain.DefaultDocumentsFolder
	}
	cmd.Printf("  Folder: %s\n", folder)
	cmd.Println()

	cmd.Println("[Embedding]")
	embedding := embeddingSettingsFromConfig()
	cmd.Printf("  Provider: %s\n", embedding.Provider.Description())
	cmd.Printf("  Model: %s\n", embedding.Model)
	if embedding.Provider.IsLocal() && embedding.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", embedding.BaseURL)
	}
	if embedding.Provider.RequiresAPIKey() {
		if embedding.APIKey != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(embedding.APIKey))
		} else {
			cmd.Printf("  API Key: (not set)\n")
		}
	}
	status := "configured"
	if !embedding.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[History]")
	cmd.Printf("  Enabled: %t\n", configBool("history.enabled", true))
	cmd.Println()

	cmd.Println("[API]")
	if key := configStore.GetString("api.key"); key != "" {
		cmd.Printf("  Key: %s\n", maskAPIKey(key))
	} else {
		cmd.Printf("  Key: (not set)\n")
	}
	cmd.Println()

	cmd.Printf("Config file: %s\n", configStore.Path())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	key, raw := args[0], args[1]

	// Literal booleans and numbers are stored typed; everything else
	// stays a string.
	var value any = raw
	switch {
	case raw == "true" || raw == "false":
		value = raw == "true"
	default:
		if i, err := strconv.Atoi(raw); err == nil {
			value = i
		} else if f, err := strconv.ParseFloat(raw, 64); err == nil {
			value = f
		}
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	cmd.Printf("Set %s = %v\n", key, value)
	return nil
}

func runConfigEmbedding(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	reader := bufio.NewReader(os.Stdin)
	return configureEmbeddingProvider(cmd, reader)
}

func configureEmbeddingProvider(cmd *cobra.Command, reader *bufio.Reader) error {
	cmd.Println("Select Embedding Provider")
	providers := domain.AllEmbeddingProviders()
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	input := readLine(reader)
	idx := parseChoice(input, len(providers), 1)
	provider := providers[idx-1]

	// Get model
	defaults := domain.DefaultEmbeddingModels()
	defaultModel := defaults[provider]
	cmd.Printf("Enter model name [%s]: ", defaultModel)
	model := readLine(reader)
	if model == "" {
		model = defaultModel
	}

	// Get base URL for local providers
	var baseURL string
	if provider.IsLocal() {
		cmd.Print("Enter base URL (empty for default): ")
		baseURL = readLine(reader)
	}

	// Get API key if needed
	var apiKey string
	if provider.RequiresAPIKey() {
		cmd.Print("Enter API key: ")
		apiKey = readPassword()
		cmd.Println()
		if apiKey == "" {
			return errors.New("API key is required for this provider")
		}
	}

	if err := configStore.Set("embedding.provider", provider.String()); err != nil {
		return fmt.Errorf("failed to save embedding provider: %w", err)
	}
	if err := configStore.Set("embedding.model", model); err != nil {
		return fmt.Errorf("failed to save embedding model: %w", err)
	}
	if baseURL != "" {
		if err := configStore.Set("embedding.base_url", baseURL); err != nil {
			return fmt.Errorf("failed to save base URL: %w", err)
		}
	}
	if apiKey != "" {
		if err := configStore.Set("embedding.api_key", apiKey); err != nil {
			return fmt.Errorf("failed to save API key: %w", err)
		}
	}

	cmd.Printf("Embedding provider configured: %s (%s)\n", provider.Description(), model)
	return nil
}

// embeddingSettingsFromConfig assembles the embedding settings with
// provider defaults filled in.
func embeddingSettingsFromConfig() domain.EmbeddingSettings {
	provider := domain.EmbeddingProvider(configStore.GetString("embedding.provider"))
	if !provider.IsValid() {
		provider = domain.EmbeddingProviderOllama
	}
	model := configStore.GetString("embedding.model")
	if model == "" {
		model = domain.DefaultEmbeddingModels()[provider]
	}
	return domain.EmbeddingSettings{
		Provider: provider,
		Model:    model,
		BaseURL:  configStore.GetString("embedding.base_url"),
		APIKey:   configStore.GetString("embedding.api_key"),
	}
}

// Helper functions.

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
