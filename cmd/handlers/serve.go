package handlers

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"newsdesk/internal/config"
	"newsdesk/internal/logger"
	"newsdesk/internal/server"
)

// NewServeCmd creates the serve command for starting the HTTP server
func NewServeCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the newsdesk HTTP server exposing the news analysis pipeline.

Routes:
  GET  /news                    fetch recent stories
  GET  /news/top                fetch and rank top stories
  GET  /news/analysis           select topics needing expert commentary
  POST /news/analysis/category  topic selection for a caller-supplied category
  GET  /news/experts            full chain: fetch, select, recommend experts
  POST /news/experts/topic      expert recommendations for one topic
  POST /email/generate          draft an outreach email for an expert
  POST /format-simple-email     polish a rough email draft

Examples:
  # Start server on the default port 8000
  newsdesk serve

  # Start on a custom port
  newsdesk serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port, host)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "HTTP server port (default from config: 8000)")
	cmd.Flags().StringVar(&host, "host", "", "HTTP server host (default from config: 0.0.0.0)")

	return cmd
}

func runServe(ctx context.Context, port int, host string) error {
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override server config from flags if provided
	serverCfg := cfg.Server
	if port != 0 {
		serverCfg.Port = port
	}
	if host != "" {
		serverCfg.Host = host
	}

	pipe, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	srv := server.New(pipe, serverCfg)

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info(fmt.Sprintf("Server listening on http://%s:%d", serverCfg.Host, serverCfg.Port))
		serverErrors <- srv.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	return nil
}
