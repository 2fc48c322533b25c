package slides

import (
	"fmt"
	"strings"

	"github.com/deckgen/deckgen/internal/deck"
	"github.com/deckgen/deckgen/internal/styletext"
)

// Request is one entry in a batch update. Exactly one field is set.
type Request struct {
	CreateSlide     *CreateSlideRequest     `json:"createSlide,omitempty"`
	InsertText      *InsertTextRequest      `json:"insertText,omitempty"`
	UpdateTextStyle *UpdateTextStyleRequest `json:"updateTextStyle,omitempty"`
	SetSpeakerNotes *SetSpeakerNotesRequest `json:"setSpeakerNotes,omitempty"`
}

// CreateSlideRequest appends a slide with the given layout.
type CreateSlideRequest struct {
	ObjectID       string `json:"objectId"`
	InsertionIndex int    `json:"insertionIndex"`
	Layout         string `json:"layout"`
}

// InsertTextRequest writes text into a placeholder element.
type InsertTextRequest struct {
	ObjectID       string `json:"objectId"`
	InsertionIndex int    `json:"insertionIndex"`
	Text           string `json:"text"`
}

// TextRange addresses a byte span of previously inserted text.
type TextRange struct {
	Start int `json:"startIndex"`
	End   int `json:"endIndex"`
}

// TextStyle carries the character styling applied over a range.
type TextStyle struct {
	Bold            bool   `json:"bold,omitempty"`
	ForegroundColor string `json:"foregroundColor,omitempty"`
}

// UpdateTextStyleRequest styles a range of a placeholder element.
type UpdateTextStyleRequest struct {
	ObjectID string    `json:"objectId"`
	Range    TextRange `json:"range"`
	Style    TextStyle `json:"style"`
	Fields   string    `json:"fields"`
}

// SetSpeakerNotesRequest replaces a slide's speaker notes.
type SetSpeakerNotesRequest struct {
	ObjectID string `json:"objectId"`
	Text     string `json:"text"`
}

// BuildRequests translates an enhanced deck into the batch-update request
// list for one presentation. The translation is mechanical: every layout and
// styling decision was already made upstream.
func BuildRequests(slides []deck.EnhancedSlide) []Request {
	var reqs []Request
	for i, s := range slides {
		slideID := fmt.Sprintf("slide_%d", i)
		titleID := slideID + ".title"
		bodyID := slideID + ".body"

		reqs = append(reqs, Request{CreateSlide: &CreateSlideRequest{
			ObjectID:       slideID,
			InsertionIndex: i,
			Layout:         layoutFor(s.Pattern),
		}})

		if s.Title != "" {
			clean, spans := styletext.Parse(s.Title)
			reqs = append(reqs, Request{InsertText: &InsertTextRequest{
				ObjectID: titleID,
				Text:     clean,
			}})
			reqs = append(reqs, styleRequests(titleID, spans, 0)...)
		}

		if body, spans := formatBody(&s); body != "" {
			reqs = append(reqs, Request{InsertText: &InsertTextRequest{
				ObjectID: bodyID,
				Text:     body,
			}})
			reqs = append(reqs, styleRequests(bodyID, spans, 0)...)
		}

		if s.SpeakerNotes != "" {
			reqs = append(reqs, Request{SetSpeakerNotes: &SetSpeakerNotesRequest{
				ObjectID: slideID,
				Text:     s.SpeakerNotes,
			}})
		}
	}
	return reqs
}

func layoutFor(p deck.Pattern) string {
	switch p {
	case deck.PatternTitle, deck.PatternSection, deck.PatternClosing:
		return "TITLE"
	default:
		return "TITLE_AND_BODY"
	}
}

// formatBody flattens slide content into the body placeholder text and
// collects the style spans with offsets adjusted to the joined text.
func formatBody(s *deck.EnhancedSlide) (string, []styletext.Span) {
	var lines []string
	switch s.PayloadPattern() {
	case deck.PatternCompare:
		c := s.Compare
		lines = append(lines, c.LeftTitle)
		for _, item := range c.LeftItems {
			lines = append(lines, "• "+item)
		}
		lines = append(lines, c.RightTitle)
		for _, item := range c.RightItems {
			lines = append(lines, "• "+item)
		}
	case deck.PatternProcess:
		for i, step := range s.ProcessSteps {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, step))
		}
	case deck.PatternTimeline:
		for _, e := range s.TimelineEntries {
			lines = append(lines, fmt.Sprintf("%s: %s", e.Date, e.Label))
		}
	case deck.PatternCards:
		for _, c := range s.CardItems {
			line := c.Title
			if c.Description != "" {
				line += " - " + c.Description
			}
			lines = append(lines, line)
		}
	default:
		for _, point := range s.Content {
			lines = append(lines, "• "+point)
		}
	}

	var b strings.Builder
	var spans []styletext.Span
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		clean, lineSpans := styletext.Parse(line)
		offset := b.Len()
		b.WriteString(clean)
		for _, sp := range lineSpans {
			sp.Start += offset
			sp.End += offset
			spans = append(spans, sp)
		}
	}
	return b.String(), spans
}

func styleRequests(objectID string, spans []styletext.Span, offset int) []Request {
	reqs := make([]Request, 0, len(spans))
	for _, sp := range spans {
		var fields []string
		style := TextStyle{}
		if sp.Bold {
			style.Bold = true
			fields = append(fields, "bold")
		}
		if sp.Color != "" {
			style.ForegroundColor = sp.Color
			fields = append(fields, "foregroundColor")
		}
		if len(fields) == 0 {
			continue
		}
		reqs = append(reqs, Request{UpdateTextStyle: &UpdateTextStyleRequest{
			ObjectID: objectID,
			Range:    TextRange{Start: offset + sp.Start, End: offset + sp.End},
			Style:    style,
			Fields:   strings.Join(fields, ","),
		}})
	}
	return reqs
}
