package pattern

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/deckgen/deckgen/internal/deck"
	"github.com/deckgen/deckgen/internal/styletext"
)

// Structural ceilings for the hosted slide service.
const (
	maxTitleRunes  = 40
	maxBulletRunes = 90
	maxDeckSlides  = 50
	longDeckSlides = 30
)

// Validate runs the structural rule battery over a full deck and accumulates
// the findings. Only the empty-deck and slide-count-ceiling rules are fatal;
// everything else is advisory and never flips Valid.
func Validate(slides []deck.EnhancedSlide) deck.ValidationReport {
	report := deck.ValidationReport{
		Valid:       true,
		Errors:      []string{},
		Warnings:    []string{},
		Suggestions: []string{},
	}

	if len(slides) == 0 {
		report.Errors = append(report.Errors, "deck contains no slides")
		report.Valid = false
		return report
	}

	hasTitle := false
	hasClosing := false
	sectionCount := 0
	hasAgenda := false
	for _, s := range slides {
		switch s.Pattern {
		case deck.PatternTitle:
			hasTitle = true
		case deck.PatternClosing:
			hasClosing = true
		case deck.PatternSection:
			sectionCount++
		case deck.PatternContent:
			if containsAny(strings.ToLower(s.Title), agendaKeywords) {
				hasAgenda = true
			}
		}
	}

	if !hasTitle {
		report.Warnings = append(report.Warnings, "deck has no title slide")
	}
	if !hasClosing {
		report.Suggestions = append(report.Suggestions, "consider adding a closing slide")
	}

	for i, s := range slides {
		if utf8.RuneCountInString(s.Title) > maxTitleRunes {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("slide %d: title exceeds %d characters", i+1, maxTitleRunes))
		}
		for j, point := range s.Content {
			if utf8.RuneCountInString(styletext.Strip(point)) > maxBulletRunes {
				report.Warnings = append(report.Warnings,
					fmt.Sprintf("slide %d: bullet %d exceeds %d characters", i+1, j+1, maxBulletRunes))
			}
		}
	}

	switch {
	case len(slides) > maxDeckSlides:
		report.Errors = append(report.Errors,
			fmt.Sprintf("deck exceeds the %d-slide service limit", maxDeckSlides))
		report.Valid = false
	case len(slides) > longDeckSlides:
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("deck is on the long side (more than %d slides)", longDeckSlides))
	}

	if sectionCount >= 2 && !hasAgenda {
		report.Suggestions = append(report.Suggestions,
			"decks with multiple sections benefit from an agenda slide")
	}

	return report
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
