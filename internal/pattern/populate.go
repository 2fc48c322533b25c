package pattern

import (
	"fmt"

	"github.com/deckgen/deckgen/internal/deck"
)

// Populate fills the payload field matching the slide's pattern from its
// content. The transform is purely structural: it never re-reads the text or
// changes the pattern, and short content leaves a degenerate-but-valid
// payload instead of failing.
func Populate(s *deck.EnhancedSlide) {
	switch s.Pattern {
	case deck.PatternCompare:
		if len(s.Content) < 2 {
			return
		}
		mid := len(s.Content) / 2
		s.Compare = &deck.CompareData{
			LeftTitle:  "Option A",
			RightTitle: "Option B",
			LeftItems:  append([]string(nil), s.Content[:mid]...),
			RightItems: append([]string(nil), s.Content[mid:]...),
		}

	case deck.PatternProcess:
		s.ProcessSteps = append([]string{}, s.Content...)

	case deck.PatternCards:
		cards := make([]deck.CardItem, 0, len(s.Content))
		for _, item := range s.Content {
			cards = append(cards, deck.CardItem{Title: item})
		}
		s.CardItems = cards

	case deck.PatternTimeline:
		if len(s.Content) == 0 {
			return
		}
		entries := make([]deck.TimelineEntry, 0, len(s.Content))
		for i, item := range s.Content {
			entries = append(entries, deck.TimelineEntry{
				Label: item,
				Date:  fmt.Sprintf("Phase %d", i+1),
				State: deck.StateTodo,
			})
		}
		s.TimelineEntries = entries
	}
}
