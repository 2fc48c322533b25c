// Package main is the entry point for the deckgen CLI. Subcommands cover
// the pipeline stages: analyze a document into a structured deck, render it
// as a slideshow, publish it to the hosted slide service, or run the HTTP
// server.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deckgen/deckgen/internal/config"
	"github.com/deckgen/deckgen/internal/deck"
	"github.com/deckgen/deckgen/internal/enhance"
	"github.com/deckgen/deckgen/internal/segment"
	"github.com/deckgen/deckgen/internal/styletext"
)

// cfgViper is populated by initConfig before any command runs.
var cfgViper *viper.Viper

// rootCmd is the base command for the deckgen CLI.
var rootCmd = &cobra.Command{
	Use:   "deckgen",
	Short: "Turn text documents into structured slide decks",
	Long: `deckgen converts plain text or markdown documents into presentation
decks: it segments the document into slides, classifies each slide into a
layout pattern, generates speaker notes, and validates the deck structure.

Decks can be emitted as JSON, rendered as a self-contained Reveal.js page,
or published to the hosted slide service.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./deckgen.yaml or ~/.config/deckgen/config.yaml)")
}

func initConfig() {
	v := config.NewViper()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("deckgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "deckgen"))
		}
	}

	if err := v.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", v.ConfigFileUsed())
	}
	cfgViper = v
}

func loadConfig() config.Config {
	if cfgViper == nil {
		cfgViper = config.NewViper()
	}
	return config.Load(cfgViper)
}

// readDocument loads the input file and picks the segmentation mode from
// its extension unless the caller forced one.
func readDocument(path, source string) (string, segment.SourceKind, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read document: %w", err)
	}

	switch source {
	case string(segment.SourcePlain):
		return string(data), segment.SourcePlain, nil
	case string(segment.SourceMarkup):
		return string(data), segment.SourceMarkup, nil
	case "":
	default:
		return "", "", fmt.Errorf("unknown source %q", source)
	}

	kind := segment.SourcePlain
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		kind = segment.SourceMarkup
	}
	return string(data), kind, nil
}

// buildDeck runs the pipeline over one document.
func buildDeck(text string, kind segment.SourceKind, cfg config.Config, context, title string) (string, []deck.EnhancedSlide) {
	basic := segment.Segment(text, kind, cfg.SegmentConfig())
	slides := enhance.Enhance(basic, enhance.Options{
		Concurrency: cfg.EnhanceConcurrency,
		Context:     context,
	})
	if title == "" && len(slides) > 0 {
		title = styletext.Strip(slides[0].Title)
	}
	return title, slides
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
