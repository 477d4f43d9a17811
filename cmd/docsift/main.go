// Command docsift ranks document sections by relevance to a stated task.
package main

import (
	"github.com/docsift/docsift/internal/adapters/driven/config/file"
	"github.com/docsift/docsift/internal/adapters/driven/embedding"
	"github.com/docsift/docsift/internal/adapters/driven/storage/sqlite"
	"github.com/docsift/docsift/internal/adapters/driving/cli"
	"github.com/docsift/docsift/internal/adapters/driving/tui"
	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driven"
	"github.com/docsift/docsift/internal/core/ports/driving"
	"github.com/docsift/docsift/internal/core/services"
	"github.com/docsift/docsift/internal/extractors"
	"github.com/docsift/docsift/internal/logger"
	"github.com/docsift/docsift/internal/segmenter"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)

	registry := extractors.Defaults()
	cli.SetProviderRegistry(registry)

	var configStore driven.ConfigStore
	if store, err := file.NewConfigStore(""); err != nil {
		logger.Warn("Configuration unavailable: %v", err)
	} else {
		configStore = store
		cli.SetConfigStore(store)
	}

	var store *sqlite.Store
	if historyEnabled(configStore) {
		s, err := sqlite.NewStore("")
		if err != nil {
			logger.Warn("Run history unavailable: %v", err)
		} else {
			store = s
			defer store.Close()
			cli.SetHistoryService(services.NewHistoryService(store.ReportStore()))
		}
	}

	cli.SetAnalyzerFactory(func(settings domain.AnalysisSettings) (driving.Analyzer, error) {
		return buildAnalyzer(configStore, registry, store, settings)
	})
	cli.SetSetupWizard(tui.RunSetup)

	cli.Execute()
}

// historyEnabled reads history.enabled, defaulting to on.
func historyEnabled(cfg driven.ConfigStore) bool {
	if cfg == nil {
		return true
	}
	if v, ok := cfg.Get("history.enabled"); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return true
}

// buildAnalyzer assembles the pipeline for one run.
func buildAnalyzer(
	cfg driven.ConfigStore,
	registry driven.ProviderRegistry,
	store *sqlite.Store,
	settings domain.AnalysisSettings,
) (driving.Analyzer, error) {
	embedder, err := buildEmbedder(cfg, store)
	if err != nil {
		return nil, err
	}

	extractor := segmenter.New(
		segmenter.WithMinSectionLength(settings.MinSectionLength),
		segmenter.WithMaxHeadingLength(settings.MaxHeadingLength),
		segmenter.WithMaxHeadingWords(settings.MaxHeadingWords),
	)

	svc := services.NewAnalysisService(registry, extractor, embedder, settings)
	if store != nil {
		svc.SetReportStore(store.ReportStore())
	}
	return svc, nil
}

// buildEmbedder reads the embedding configuration and assembles the
// provider chain, backed by the persistent vector cache when open.
func buildEmbedder(cfg driven.ConfigStore, store *sqlite.Store) (driven.EmbeddingService, error) {
	settings := domain.EmbeddingSettings{Provider: domain.EmbeddingProviderOllama}
	if cfg != nil {
		if p := domain.EmbeddingProvider(cfg.GetString("embedding.provider")); p.IsValid() {
			settings.Provider = p
		}
		settings.Model = cfg.GetString("embedding.model")
		settings.BaseURL = cfg.GetString("embedding.base_url")
		settings.APIKey = cfg.GetString("embedding.api_key")
		settings.RequestsPerSecond = cfg.GetFloat("embedding.requests_per_second")
	}

	var vectors driven.VectorCache
	if store != nil {
		vectors = store.VectorCache()
	}
	return embedding.NewService(settings, vectors)
}
