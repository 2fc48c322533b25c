package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deckgen/deckgen/internal/render"
)

var htmlCmd = &cobra.Command{
	Use:   "html <file>",
	Short: "Render a document as a self-contained Reveal.js slideshow",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, _ := cmd.Flags().GetString("source")
		context, _ := cmd.Flags().GetString("context")
		title, _ := cmd.Flags().GetString("title")
		theme, _ := cmd.Flags().GetString("theme")
		output, _ := cmd.Flags().GetString("output")

		cfg := loadConfig()
		if theme == "" {
			theme = cfg.DefaultTheme
		}

		text, kind, err := readDocument(args[0], source)
		if err != nil {
			return err
		}

		deckTitle, slides := buildDeck(text, kind, cfg, context, title)
		page, err := render.HTML(slides, render.Options{Title: deckTitle, Theme: theme})
		if err != nil {
			return err
		}

		if output == "-" {
			cmd.OutOrStdout().Write([]byte(page))
			return nil
		}
		if output == "" {
			base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			output = base + ".html"
		}
		if err := os.WriteFile(output, []byte(page), 0o644); err != nil {
			return fmt.Errorf("write slideshow: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s (%d slides, theme %s)\n", output, len(slides), theme)
		return nil
	},
}

func init() {
	htmlCmd.Flags().String("source", "", "segmentation mode: plain or markup (default: by extension)")
	htmlCmd.Flags().String("context", "", "extra context for pattern classification")
	htmlCmd.Flags().String("title", "", "deck title (default: first slide title)")
	htmlCmd.Flags().String("theme", "", "Reveal.js theme (default: from config)")
	htmlCmd.Flags().StringP("output", "o", "", "output file (default: <input>.html, \"-\" for stdout)")
	rootCmd.AddCommand(htmlCmd)
}
