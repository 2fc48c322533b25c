package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deckgen/deckgen/internal/deck"
	"github.com/deckgen/deckgen/internal/pattern"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Convert a document into a structured deck and print it as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, _ := cmd.Flags().GetString("source")
		context, _ := cmd.Flags().GetString("context")
		title, _ := cmd.Flags().GetString("title")
		output, _ := cmd.Flags().GetString("output")

		cfg := loadConfig()

		text, kind, err := readDocument(args[0], source)
		if err != nil {
			return err
		}

		deckTitle, slides := buildDeck(text, kind, cfg, context, title)
		report := pattern.Validate(slides)

		out := struct {
			Title      string                `json:"title"`
			Slides     []deck.EnhancedSlide  `json:"slides"`
			Validation deck.ValidationReport `json:"validation"`
		}{deckTitle, slides, report}

		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("encode deck: %w", err)
		}
		data = append(data, '\n')

		if output != "" && output != "-" {
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Wrote %s (%d slides)\n", output, len(slides))
			return nil
		}
		cmd.OutOrStdout().Write(data)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().String("source", "", "segmentation mode: plain or markup (default: by extension)")
	analyzeCmd.Flags().String("context", "", "extra context for pattern classification")
	analyzeCmd.Flags().String("title", "", "deck title (default: first slide title)")
	analyzeCmd.Flags().StringP("output", "o", "", "write JSON to a file instead of stdout")
	rootCmd.AddCommand(analyzeCmd)
}
