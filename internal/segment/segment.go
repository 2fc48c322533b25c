// Package segment splits raw documents into ordered basic slide units.
// Markup documents break on headings; plain text breaks on a title-line
// heuristic. Both modes run the same cleanup pass afterwards.
package segment

import (
	"github.com/deckgen/deckgen/internal/deck"
)

// SourceKind selects the segmentation mode.
type SourceKind string

const (
	SourcePlain  SourceKind = "plain"
	SourceMarkup SourceKind = "markup"
)

// Config bounds the slides the segmenter produces.
type Config struct {
	MaxBullets   int // Content entries per slide.
	MaxTitleLen  int // Title-line detection threshold and truncation length, in runes.
	MaxBulletLen int // Per-bullet truncation length, in runes.
}

// Standard parsing limits.
const (
	DefaultMaxBullets   = 7
	DefaultMaxTitleLen  = 60
	DefaultMaxBulletLen = 120
)

// DefaultConfig returns the standard parsing limits.
func DefaultConfig() Config {
	return Config{
		MaxBullets:   DefaultMaxBullets,
		MaxTitleLen:  DefaultMaxTitleLen,
		MaxBulletLen: DefaultMaxBulletLen,
	}
}

func (c Config) withDefaults() Config {
	if c.MaxBullets <= 0 {
		c.MaxBullets = DefaultMaxBullets
	}
	if c.MaxTitleLen <= 0 {
		c.MaxTitleLen = DefaultMaxTitleLen
	}
	if c.MaxBulletLen <= 0 {
		c.MaxBulletLen = DefaultMaxBulletLen
	}
	return c
}

// Segment converts a raw document into basic slides in document order.
// The call is pure; repeated calls with the same arguments produce the
// same sequence.
func Segment(raw string, kind SourceKind, cfg Config) []deck.BasicSlide {
	cfg = cfg.withDefaults()

	var slides []deck.BasicSlide
	if kind == SourceMarkup {
		slides = segmentMarkup(raw, cfg)
	} else {
		slides = segmentPlain(raw, cfg)
	}
	return cleanSlides(slides, cfg)
}
