package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/deckgen/deckgen/internal/pattern"
	"github.com/deckgen/deckgen/internal/publish"
	"github.com/deckgen/deckgen/internal/slides"
)

var publishCmd = &cobra.Command{
	Use:   "publish <file>",
	Short: "Build a deck and push it to the hosted slide service",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, _ := cmd.Flags().GetString("source")
		context, _ := cmd.Flags().GetString("context")
		title, _ := cmd.Flags().GetString("title")

		cfg := loadConfig()
		if err := cfg.ValidatePublish(); err != nil {
			return err
		}

		text, kind, err := readDocument(args[0], source)
		if err != nil {
			return err
		}

		deckTitle, deckSlides := buildDeck(text, kind, cfg, context, title)
		if len(deckSlides) == 0 {
			return fmt.Errorf("document produced no slides")
		}
		if report := pattern.Validate(deckSlides); !report.Valid {
			return fmt.Errorf("deck failed validation: %s", report.Errors[0])
		}

		log := slog.New(slog.NewJSONHandler(os.Stderr, nil))
		client := slides.NewClient(cfg.SlidesServiceURL, cfg.SlidesAPIKey)
		defer client.Close()

		job := publish.NewJob(deckTitle, deckSlides)
		publish.NewWorker(client, log).Process(cmd.Context(), job)

		snap := job.Snapshot()
		if snap.Status != publish.StatusCompleted {
			return fmt.Errorf("publish failed: %v", snap.Errors)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(snap.Result)
	},
}

func init() {
	publishCmd.Flags().String("source", "", "segmentation mode: plain or markup (default: by extension)")
	publishCmd.Flags().String("context", "", "extra context for pattern classification")
	publishCmd.Flags().String("title", "", "presentation title (default: first slide title)")
	rootCmd.AddCommand(publishCmd)
}
