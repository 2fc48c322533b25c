package pattern

import (
	"fmt"
	"strings"

	"github.com/deckgen/deckgen/internal/deck"
	"github.com/deckgen/deckgen/internal/styletext"
)

// maxSpokenPoints caps how many content entries the narration walks through.
const maxSpokenPoints = 3

// Notes builds the spoken notes for a slide from fixed clause templates.
// The result is fully determined by the slide: same slide, same notes.
func Notes(s *deck.EnhancedSlide) string {
	var parts []string

	if s.Title != "" {
		parts = append(parts, fmt.Sprintf("Let's take a look at %s.", s.Title))
	}
	if s.Subhead != "" {
		parts = append(parts, fmt.Sprintf("We approach this from the angle of %s.", s.Subhead))
	}

	switch s.Pattern {
	case deck.PatternContent:
		if len(s.Content) > 0 {
			parts = append(parts, "The key points are as follows.")
			for i, point := range s.Content {
				if i >= maxSpokenPoints {
					break
				}
				parts = append(parts, fmt.Sprintf("Point %d: %s.", i+1, styletext.Strip(point)))
			}
		}

	case deck.PatternCompare:
		parts = append(parts, "This slide summarizes a side-by-side comparison.")
		if s.Compare != nil {
			parts = append(parts, fmt.Sprintf("We weigh %s against %s.", s.Compare.LeftTitle, s.Compare.RightTitle))
		}

	case deck.PatternProcess:
		parts = append(parts, "We will follow this process step by step.")
		if len(s.ProcessSteps) > 0 {
			parts = append(parts, fmt.Sprintf("There are %d steps in total.", len(s.ProcessSteps)))
		}

	case deck.PatternTimeline:
		parts = append(parts, "Laid out in sequence, the flow looks like this.")
		if len(s.TimelineEntries) > 0 {
			parts = append(parts, fmt.Sprintf("There are %d key milestones.", len(s.TimelineEntries)))
		}

	case deck.PatternCards:
		parts = append(parts, "The key elements are grouped into cards.")
		if len(s.CardItems) > 0 {
			parts = append(parts, fmt.Sprintf("We will cover %d items.", len(s.CardItems)))
		}

	case deck.PatternTable:
		parts = append(parts, "The details are organized in a table.")

	case deck.PatternProgress:
		parts = append(parts, "Here is the current progress.")

	case deck.PatternDiagram:
		parts = append(parts, "This diagram shows the overall structure and relationships.")
	}

	switch s.Pattern {
	case deck.PatternTitle, deck.PatternSection, deck.PatternClosing:
		// No wrap-up clause on structural slides.
	default:
		parts = append(parts, "That covers this slide.")
	}

	return strings.Join(parts, " ")
}
