package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/deckgen/deckgen/internal/api"
	"github.com/deckgen/deckgen/internal/publish"
	"github.com/deckgen/deckgen/internal/slides"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the deckgen HTTP API server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

		cfg := loadConfig()
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// Publishing is optional: without slide-service credentials the
		// server still builds and renders decks.
		var orch *publish.Orchestrator
		var client *slides.Client
		if err := cfg.ValidatePublish(); err == nil {
			client = slides.NewClient(cfg.SlidesServiceURL, cfg.SlidesAPIKey)
			orch = publish.NewOrchestrator(cfg.PublishConfig(), client, log)
			orch.Start(ctx)
		} else {
			log.Warn("publishing disabled", "reason", err)
		}

		srv := api.NewServer(orch, log, cfg)

		httpServer := &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      srv,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 120 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		// Graceful shutdown.
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			select {
			case <-sigCh:
			case <-ctx.Done():
			}
			log.Info("shutting down...")

			if orch != nil {
				orch.Stop()
			}

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			httpServer.Shutdown(shutdownCtx)

			if client != nil {
				client.Close()
			}
		}()

		log.Info("starting deckgen", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("port", "", "listen port (default: from config)")
	rootCmd.AddCommand(serveCmd)
}
