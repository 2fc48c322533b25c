package pattern

import (
	"fmt"
	"strings"
	"testing"

	"github.com/deckgen/deckgen/internal/deck"
)

func contentSlides(n int) []deck.EnhancedSlide {
	slides := make([]deck.EnhancedSlide, 0, n)
	for i := 0; i < n; i++ {
		slides = append(slides, deck.EnhancedSlide{
			Pattern: deck.PatternContent,
			Title:   fmt.Sprintf("Slide %d", i+1),
			Content: []string{"a point"},
		})
	}
	return slides
}

func TestValidate_EmptyDeck(t *testing.T) {
	report := Validate(nil)
	if report.Valid {
		t.Error("empty deck should be invalid")
	}
	if len(report.Errors) != 1 {
		t.Errorf("expected one error, got %v", report.Errors)
	}
}

func TestValidate_SlideCountCeiling(t *testing.T) {
	report := Validate(contentSlides(51))
	if report.Valid {
		t.Error("deck over 50 slides should be invalid")
	}
	found := false
	for _, e := range report.Errors {
		if strings.Contains(e, "50") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected error naming the 50-slide limit, got %v", report.Errors)
	}
}

func TestValidate_LongDeckWarning(t *testing.T) {
	report := Validate(contentSlides(31))
	if !report.Valid {
		t.Error("31 slides should warn, not fail")
	}
	found := false
	for _, w := range report.Warnings {
		if strings.Contains(w, "long side") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected long-deck warning, got %v", report.Warnings)
	}
}

func TestValidate_TitleLength(t *testing.T) {
	slides := contentSlides(1)
	slides[0].Title = strings.Repeat("t", 41)
	report := Validate(slides)
	found := false
	for _, w := range report.Warnings {
		if strings.Contains(w, "slide 1") && strings.Contains(w, "title") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected title-length warning for slide 1, got %v", report.Warnings)
	}
	if !report.Valid {
		t.Error("length warnings must not flip validity")
	}
}

func TestValidate_BulletLength(t *testing.T) {
	slides := contentSlides(3)
	slides[1].Content = []string{strings.Repeat("b", 95)}
	report := Validate(slides)
	found := false
	for _, w := range report.Warnings {
		if strings.Contains(w, "slide 2") && strings.Contains(w, "bullet 1") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected bullet-length warning for slide 2, got %v", report.Warnings)
	}
}

func TestValidate_BulletLengthIgnoresMarkup(t *testing.T) {
	// 88 visible characters wrapped in markers: the delimiters must not
	// count against the 90-character ceiling.
	slides := contentSlides(1)
	slides[0].Content = []string{"[[" + strings.Repeat("x", 88) + "]]"}
	report := Validate(slides)
	for _, w := range report.Warnings {
		if strings.Contains(w, "bullet") {
			t.Errorf("markup delimiters were counted: %v", report.Warnings)
		}
	}
}

func TestValidate_TitleAndClosingPresence(t *testing.T) {
	report := Validate(contentSlides(2))
	if !hasEntry(report.Warnings, "no title slide") {
		t.Errorf("expected missing-title warning, got %v", report.Warnings)
	}
	if !hasEntry(report.Suggestions, "closing slide") {
		t.Errorf("expected closing suggestion, got %v", report.Suggestions)
	}

	slides := contentSlides(2)
	slides[0].Pattern = deck.PatternTitle
	slides[1].Pattern = deck.PatternClosing
	report = Validate(slides)
	if hasEntry(report.Warnings, "no title slide") {
		t.Errorf("unexpected missing-title warning: %v", report.Warnings)
	}
	if hasEntry(report.Suggestions, "closing slide") {
		t.Errorf("unexpected closing suggestion: %v", report.Suggestions)
	}
}

func TestValidate_AgendaSuggestion(t *testing.T) {
	slides := contentSlides(4)
	slides[1].Pattern = deck.PatternSection
	slides[2].Pattern = deck.PatternSection
	report := Validate(slides)
	if !hasEntry(report.Suggestions, "agenda") {
		t.Errorf("expected agenda suggestion for multi-section deck, got %v", report.Suggestions)
	}

	slides[0].Title = "Agenda"
	report = Validate(slides)
	if hasEntry(report.Suggestions, "benefit from an agenda") {
		t.Errorf("agenda slide present, suggestion should be gone: %v", report.Suggestions)
	}
}

func TestValidate_WarningMonotonicity(t *testing.T) {
	slides := contentSlides(2)
	before := len(Validate(slides).Warnings)

	offender := deck.EnhancedSlide{
		Pattern: deck.PatternContent,
		Title:   strings.Repeat("t", 60),
		Content: []string{strings.Repeat("c", 120)},
	}
	after := len(Validate(append(slides, offender)).Warnings)
	if after <= before {
		t.Errorf("adding a violating slide should add warnings: before=%d after=%d", before, after)
	}
}

func hasEntry(entries []string, substr string) bool {
	for _, e := range entries {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}
