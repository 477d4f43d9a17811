package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift/internal/core/domain"
)

func TestConfigCmd_Use(t *testing.T) {
	assert.Equal(t, "config", configCmd.Use)
}

func TestConfigCmd_Short(t *testing.T) {
	assert.Equal(t, "Manage docsift configuration", configCmd.Short)
}

func TestConfigCmd_HasSubcommands(t *testing.T) {
	commands := configCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "show")
	assert.Contains(t, commandNames, "set")
	assert.Contains(t, commandNames, "embedding")
}

func TestConfigShowCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Current Configuration")
	assert.Contains(t, buf.String(), "Top sections: 5")
	assert.Contains(t, buf.String(), "Min similarity: 0.1")
	assert.Contains(t, buf.String(), "Folder: ./pdfs")
	assert.Contains(t, buf.String(), "Ollama (local)")
	assert.Contains(t, buf.String(), "Config file:")
}

func TestConfigShowCmd_MasksKeys(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	require.NoError(t, configStore.Set("embedding.provider", "openai"))
	require.NoError(t, configStore.Set("embedding.api_key", "sk-1234567890abcdef"))
	require.NoError(t, configStore.Set("api.key", "secret-api-key-value"))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "sk-1...cdef")
	assert.NotContains(t, buf.String(), "sk-1234567890abcdef")
	assert.NotContains(t, buf.String(), "secret-api-key-value")
}

func TestConfigShowCmd_StoreNotConfigured(t *testing.T) {
	oldStore := configStore
	configStore = nil
	defer func() { configStore = oldStore }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config store not configured")
}

func TestConfigSetCmd_Use(t *testing.T) {
	assert.Equal(t, "set <key> <value>", configSetCmd.Use)
}

func TestConfigSetCmd_RequiresTwoArgs(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "set", "analysis.top_n"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestConfigSetCmd_StoresTypedValues(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	tests := []struct {
		name     string
		key      string
		raw      string
		expected any
	}{
		{name: "Integer", key: "analysis.top_n", raw: "42", expected: 42},
		{name: "Float", key: "analysis.min_similarity", raw: "0.25", expected: 0.25},
		{name: "Bool true", key: "history.enabled", raw: "true", expected: true},
		{name: "Bool false", key: "history.enabled", raw: "false", expected: false},
		{name: "String", key: "documents.folder", raw: "./docs", expected: "./docs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			rootCmd.SetOut(buf)
			rootCmd.SetArgs([]string{"config", "set", tt.key, tt.raw})
			defer func() {
				rootCmd.SetArgs(nil)
			}()

			err := rootCmd.Execute()

			require.NoError(t, err)
			assert.Contains(t, buf.String(), "Set "+tt.key)
			v, ok := configStore.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestConfigureEmbeddingProvider_Ollama(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	reader := bufio.NewReader(strings.NewReader("1\ncustom-minilm\nhttp://localhost:9999\n"))

	err := configureEmbeddingProvider(cmd, reader)

	require.NoError(t, err)
	assert.Equal(t, "ollama", configStore.GetString("embedding.provider"))
	assert.Equal(t, "custom-minilm", configStore.GetString("embedding.model"))
	assert.Equal(t, "http://localhost:9999", configStore.GetString("embedding.base_url"))
	assert.Contains(t, buf.String(), "Embedding provider configured: Ollama (local) (custom-minilm)")
}

func TestConfigureEmbeddingProvider_DefaultsOnEmptyInput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	reader := bufio.NewReader(strings.NewReader("\n\n\n"))

	err := configureEmbeddingProvider(cmd, reader)

	require.NoError(t, err)
	assert.Equal(t, "ollama", configStore.GetString("embedding.provider"))
	assert.Equal(t, "all-minilm", configStore.GetString("embedding.model"))
	_, hasBaseURL := configStore.Get("embedding.base_url")
	assert.False(t, hasBaseURL, "empty base URL should not be stored")
}

func TestEmbeddingSettingsFromConfig_Defaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	settings := embeddingSettingsFromConfig()

	assert.Equal(t, domain.EmbeddingProviderOllama, settings.Provider)
	assert.Equal(t, "all-minilm", settings.Model)
	assert.True(t, settings.IsConfigured())
}

func TestEmbeddingSettingsFromConfig_InvalidProviderFallsBack(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	require.NoError(t, configStore.Set("embedding.provider", "cohere"))

	settings := embeddingSettingsFromConfig()

	assert.Equal(t, domain.EmbeddingProviderOllama, settings.Provider)
}

func TestEmbeddingSettingsFromConfig_OpenAI(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	require.NoError(t, configStore.Set("embedding.provider", "openai"))
	require.NoError(t, configStore.Set("embedding.model", "text-embedding-3-large"))
	require.NoError(t, configStore.Set("embedding.api_key", "sk-test"))

	settings := embeddingSettingsFromConfig()

	assert.Equal(t, domain.EmbeddingProviderOpenAI, settings.Provider)
	assert.Equal(t, "text-embedding-3-large", settings.Model)
	assert.Equal(t, "sk-test", settings.APIKey)
	assert.True(t, settings.IsConfigured())
}

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Empty key", input: "", expected: "****"},
		{name: "Short key", input: "abc123", expected: "****"},
		{name: "Exactly 8 chars", input: "12345678", expected: "****"},
		{name: "Long key", input: "sk-1234567890abcdef", expected: "sk-1...cdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, maskAPIKey(tt.input))
		})
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		maxVal     int
		defaultVal int
		expected   int
	}{
		{name: "Empty input returns default", input: "", maxVal: 2, defaultVal: 1, expected: 1},
		{name: "Valid choice", input: "2", maxVal: 2, defaultVal: 1, expected: 2},
		{name: "Below range returns default", input: "0", maxVal: 2, defaultVal: 1, expected: 1},
		{name: "Above range returns default", input: "3", maxVal: 2, defaultVal: 1, expected: 1},
		{name: "Garbage returns default", input: "abc", maxVal: 2, defaultVal: 2, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseChoice(tt.input, tt.maxVal, tt.defaultVal))
		})
	}
}

func TestReadLine(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("  hello world  \n"))
	assert.Equal(t, "hello world", readLine(reader))

	// A final line without a newline still yields its content.
	reader = bufio.NewReader(strings.NewReader("partial"))
	assert.Equal(t, "partial", readLine(reader))
}
