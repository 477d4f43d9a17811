package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/docsift/docsift/internal/adapters/driving/api"
	"github.com/docsift/docsift/internal/core/domain"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Serve exposes the analysis pipeline over HTTP:

  GET  /health
  POST /api/analyze      run the pipeline for a posted task
  GET  /api/reports      list stored runs
  GET  /api/reports/{id} fetch one stored report

Set api.key in configuration to require bearer authentication on the
/api routes.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if newAnalyzer == nil {
		return errors.New("analyzer not configured")
	}

	var apiKey string
	if configStore != nil {
		apiKey = configStore.GetString("api.key")
	}

	srv := api.NewServer(
		api.Config{APIKey: apiKey},
		api.AnalyzerFactory(newAnalyzer),
		func() domain.AnalysisSettings { return resolveSettings("") },
		historyService,
	)

	httpServer := &http.Server{
		Addr:              serveAddr,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck // best-effort shutdown
	}()

	cmd.Printf("docsift API listening on %s\n", serveAddr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
