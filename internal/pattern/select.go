package pattern

import (
	"strings"

	"github.com/deckgen/deckgen/internal/deck"
)

// Selector scores slide text against a keyword catalog. The zero value is
// not usable; construct with NewSelector or NewSelectorWithKeywords.
type Selector struct {
	catalog []Keywords
}

// NewSelector returns a selector backed by the default keyword catalog.
func NewSelector() *Selector {
	return &Selector{catalog: DefaultKeywords()}
}

// NewSelectorWithKeywords returns a selector with a substituted catalog,
// used by tests and callers with domain-specific vocabularies.
func NewSelectorWithKeywords(catalog []Keywords) *Selector {
	return &Selector{catalog: catalog}
}

// Select picks the candidate pattern whose keywords match the slide text
// most often. Matching is a case-insensitive substring test over the
// combined title, content, and context. A candidate with zero matches is
// out of the running; with no candidate left, content is the default.
// Ties go to the candidate declared first.
func (s *Selector) Select(title string, content []string, context string) deck.Pattern {
	haystack := strings.ToLower(title + " " + strings.Join(content, " ") + " " + context)

	best := deck.PatternContent
	bestScore := 0
	for _, kw := range s.catalog {
		score := 0
		for _, term := range kw.Terms {
			if strings.Contains(haystack, term) {
				score++
			}
		}
		if score > bestScore {
			best = kw.Pattern
			bestScore = score
		}
	}
	return best
}
