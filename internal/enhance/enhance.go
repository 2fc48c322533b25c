// Package enhance turns segmented basic slides into pattern-classified,
// narrated slides. Per-slide work is independent, so slides are processed
// with bounded concurrency and collected back in document order; the
// position-dependent parts (structural patterns, section numbering) run in
// a sequential pass.
package enhance

import (
	"strings"
	"sync"

	"github.com/deckgen/deckgen/internal/deck"
	"github.com/deckgen/deckgen/internal/pattern"
)

const defaultConcurrency = 4

// closingMarkers identify an explicit trailing closing slide by its title.
var closingMarkers = []string{"thank you", "thanks", "q&a", "closing", "ご清聴", "まとめ"}

// Options tunes one enhancement run.
type Options struct {
	// Concurrency bounds the per-slide workers; <=0 uses the default.
	Concurrency int
	// Context is extra text fed to the classifier alongside each slide.
	Context string
	// Keywords substitutes the classifier catalog; nil uses the default.
	Keywords []pattern.Keywords
}

// Enhance classifies, populates, and narrates every slide, preserving the
// input order. The input is not modified.
func Enhance(basic []deck.BasicSlide, opts Options) []deck.EnhancedSlide {
	if len(basic) == 0 {
		return nil
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	sel := pattern.NewSelector()
	if opts.Keywords != nil {
		sel = pattern.NewSelectorWithKeywords(opts.Keywords)
	}

	enhanced := make([]deck.EnhancedSlide, len(basic))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, b := range basic {
		structural := structuralPattern(i, len(basic), b)

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, b deck.BasicSlide, structural deck.Pattern) {
			defer wg.Done()
			defer func() { <-sem }()

			p := structural
			if p == "" {
				p = sel.Select(b.Title, b.Content, opts.Context)
			}

			s := deck.EnhancedSlide{
				Pattern: p,
				Kind:    b.Kind,
				Title:   b.Title,
				Content: append([]string(nil), b.Content...),
			}
			pattern.Populate(&s)
			s.SpeakerNotes = pattern.Notes(&s)
			enhanced[i] = s
		}(i, b, structural)
	}
	wg.Wait()

	// Section numbers depend on position, so they are assigned after the
	// parallel phase, in document order.
	sectionCount := 0
	for i := range enhanced {
		if enhanced[i].Pattern == deck.PatternSection {
			sectionCount++
			enhanced[i].SectionNumber = sectionCount
		}
	}

	return enhanced
}

// structuralPattern assigns the patterns that keyword scoring never
// produces. The opening heading-marked slide is the deck title, later
// heading-marked slides are section dividers, and a final slide titled with
// a closing marker closes the deck. Returns empty when the slide should go
// through the classifier.
func structuralPattern(i, total int, b deck.BasicSlide) deck.Pattern {
	if i == total-1 && isClosingTitle(b.Title) {
		return deck.PatternClosing
	}
	if b.Kind == deck.KindTitle {
		if i == 0 {
			return deck.PatternTitle
		}
		return deck.PatternSection
	}
	return ""
}

func isClosingTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, m := range closingMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
