package pattern

import (
	"testing"

	"github.com/deckgen/deckgen/internal/deck"
)

func TestPopulate_CompareMidpointSplit(t *testing.T) {
	s := &deck.EnhancedSlide{
		Pattern: deck.PatternCompare,
		Content: []string{"a", "b", "c"},
	}
	Populate(s)

	if s.Compare == nil {
		t.Fatal("expected compare payload")
	}
	if s.Compare.LeftTitle != "Option A" || s.Compare.RightTitle != "Option B" {
		t.Errorf("unexpected column titles: %q / %q", s.Compare.LeftTitle, s.Compare.RightTitle)
	}
	if len(s.Compare.LeftItems) != 1 || s.Compare.LeftItems[0] != "a" {
		t.Errorf("left items: %v", s.Compare.LeftItems)
	}
	if len(s.Compare.RightItems) != 2 || s.Compare.RightItems[0] != "b" || s.Compare.RightItems[1] != "c" {
		t.Errorf("right items: %v", s.Compare.RightItems)
	}
}

func TestPopulate_CompareTooFewItems(t *testing.T) {
	s := &deck.EnhancedSlide{Pattern: deck.PatternCompare, Content: []string{"only"}}
	Populate(s)
	if s.Compare != nil {
		t.Errorf("expected no payload for single-item compare, got %+v", s.Compare)
	}
}

func TestPopulate_ProcessKeepsOrder(t *testing.T) {
	s := &deck.EnhancedSlide{
		Pattern: deck.PatternProcess,
		Content: []string{"first", "second", "third"},
	}
	Populate(s)
	if len(s.ProcessSteps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(s.ProcessSteps))
	}
	for i, want := range []string{"first", "second", "third"} {
		if s.ProcessSteps[i] != want {
			t.Errorf("step %d: expected %q, got %q", i, want, s.ProcessSteps[i])
		}
	}
}

func TestPopulate_ProcessEmptyContent(t *testing.T) {
	s := &deck.EnhancedSlide{Pattern: deck.PatternProcess}
	Populate(s)
	if s.ProcessSteps == nil {
		t.Error("expected empty but non-nil steps for process with no content")
	}
	if len(s.ProcessSteps) != 0 {
		t.Errorf("expected no steps, got %v", s.ProcessSteps)
	}
}

func TestPopulate_Cards(t *testing.T) {
	s := &deck.EnhancedSlide{
		Pattern: deck.PatternCards,
		Content: []string{"fast", "simple"},
	}
	Populate(s)
	if len(s.CardItems) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(s.CardItems))
	}
	if s.CardItems[0].Title != "fast" || s.CardItems[0].Description != "" {
		t.Errorf("unexpected card: %+v", s.CardItems[0])
	}
}

func TestPopulate_TimelinePhases(t *testing.T) {
	s := &deck.EnhancedSlide{
		Pattern: deck.PatternTimeline,
		Content: []string{"design", "build", "launch"},
	}
	Populate(s)
	if len(s.TimelineEntries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(s.TimelineEntries))
	}
	for i, e := range s.TimelineEntries {
		if e.Label != s.Content[i] {
			t.Errorf("entry %d: label %q, want %q", i, e.Label, s.Content[i])
		}
		if want := "Phase " + string(rune('1'+i)); e.Date != want {
			t.Errorf("entry %d: date %q, want %q", i, e.Date, want)
		}
		if e.State != deck.StateTodo {
			t.Errorf("entry %d: state %q, want todo", i, e.State)
		}
	}
}

func TestPopulate_PayloadMatchesPattern(t *testing.T) {
	content := []string{"a", "b", "c"}
	for _, p := range []deck.Pattern{
		deck.PatternTitle, deck.PatternSection, deck.PatternContent,
		deck.PatternCompare, deck.PatternProcess, deck.PatternTimeline,
		deck.PatternDiagram, deck.PatternCards, deck.PatternTable,
		deck.PatternProgress, deck.PatternClosing,
	} {
		s := &deck.EnhancedSlide{Pattern: p, Content: content}
		Populate(s)
		if got := s.PayloadPattern(); got != "" && got != p {
			t.Errorf("pattern %q: payload belongs to %q", p, got)
		}
	}
}
