package render

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/deckgen/deckgen/internal/deck"
)

func renderAndParse(t *testing.T, slides []deck.EnhancedSlide, opts Options) *html.Node {
	t.Helper()
	out, err := HTML(slides, opts)
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	doc, err := html.Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("rendered page does not parse: %v", err)
	}
	return doc
}

// collect returns all element nodes with the given tag.
func collect(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func TestHTML_OneSectionPerSlide(t *testing.T) {
	slides := []deck.EnhancedSlide{
		{Pattern: deck.PatternTitle, Title: "Deck"},
		{Pattern: deck.PatternContent, Title: "Points", Content: []string{"one", "two"}},
		{Pattern: deck.PatternClosing, Title: "Thanks"},
	}
	doc := renderAndParse(t, slides, Options{Title: "Deck"})

	sections := collect(doc, "section")
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	if got := attr(sections[0], "class"); got != "pattern-title" {
		t.Errorf("first section class %q", got)
	}

	items := collect(sections[1], "li")
	if len(items) != 2 {
		t.Errorf("expected 2 bullets on content slide, got %d", len(items))
	}
}

func TestHTML_StyleSpansBecomeStrong(t *testing.T) {
	slides := []deck.EnhancedSlide{
		{Pattern: deck.PatternContent, Title: "T", Content: []string{"a [[key]] point"}},
	}
	doc := renderAndParse(t, slides, Options{})

	strongs := collect(doc, "strong")
	if len(strongs) != 1 {
		t.Fatalf("expected 1 strong element, got %d", len(strongs))
	}
	if got := textContent(strongs[0]); got != "key" {
		t.Errorf("strong covers %q, expected %q", got, "key")
	}
	if got := attr(strongs[0], "style"); !strings.Contains(got, "#4285F4") {
		t.Errorf("expected accent color on highlight span, got %q", got)
	}
}

func TestHTML_EscapesContent(t *testing.T) {
	slides := []deck.EnhancedSlide{
		{Pattern: deck.PatternContent, Title: "<script>alert(1)</script>", Content: []string{"x < y & z"}},
	}
	out, err := HTML(slides, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "<script>alert") {
		t.Error("title was not escaped")
	}
	doc, err := html.Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	h2 := collect(doc, "h2")
	if len(h2) == 0 || textContent(h2[0]) != "<script>alert(1)</script>" {
		t.Errorf("escaped title should round-trip as text, got %v", h2)
	}
}

func TestHTML_CompareColumns(t *testing.T) {
	slides := []deck.EnhancedSlide{
		{
			Pattern: deck.PatternCompare,
			Title:   "Build vs Buy",
			Compare: &deck.CompareData{
				LeftTitle: "Build", RightTitle: "Buy",
				LeftItems: []string{"control"}, RightItems: []string{"speed", "cost"},
			},
		},
	}
	doc := renderAndParse(t, slides, Options{})

	var cols []*html.Node
	for _, d := range collect(doc, "div") {
		if attr(d, "class") == "compare-col" {
			cols = append(cols, d)
		}
	}
	if len(cols) != 2 {
		t.Fatalf("expected 2 comparison columns, got %d", len(cols))
	}
	if len(collect(cols[1], "li")) != 2 {
		t.Errorf("right column should list 2 items")
	}
}

func TestHTML_SpeakerNotesAside(t *testing.T) {
	slides := []deck.EnhancedSlide{
		{Pattern: deck.PatternContent, Title: "T", SpeakerNotes: "Say this out loud."},
	}
	doc := renderAndParse(t, slides, Options{})
	asides := collect(doc, "aside")
	if len(asides) != 1 {
		t.Fatalf("expected 1 aside, got %d", len(asides))
	}
	if attr(asides[0], "class") != "notes" {
		t.Errorf("aside class %q", attr(asides[0], "class"))
	}
	if textContent(asides[0]) != "Say this out loud." {
		t.Errorf("aside text %q", textContent(asides[0]))
	}
}

func TestHTML_ThemeStylesheet(t *testing.T) {
	out, err := HTML([]deck.EnhancedSlide{{Pattern: deck.PatternContent, Title: "T"}}, Options{Theme: "moon"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "/theme/moon.css") {
		t.Error("expected the moon theme stylesheet link")
	}

	if _, err := HTML(nil, Options{Theme: "no-such-theme"}); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestHTML_QuoteBlock(t *testing.T) {
	slides := []deck.EnhancedSlide{
		{
			Pattern: deck.PatternContent,
			Kind:    deck.KindQuote,
			Title:   "On Simplicity",
			Content: []string{"Less is more.", "attributed"},
		},
	}
	doc := renderAndParse(t, slides, Options{})

	quotes := collect(doc, "blockquote")
	if len(quotes) != 1 {
		t.Fatalf("expected 1 blockquote, got %d", len(quotes))
	}
	if got := textContent(quotes[0]); got != "Less is more." {
		t.Errorf("blockquote text %q", got)
	}
	if items := collect(doc, "li"); len(items) != 1 {
		t.Errorf("remaining content should render as bullets, got %d items", len(items))
	}
}

func TestHTML_TimelineStates(t *testing.T) {
	slides := []deck.EnhancedSlide{
		{
			Pattern: deck.PatternTimeline,
			Title:   "Plan",
			TimelineEntries: []deck.TimelineEntry{
				{Label: "design", Date: "Phase 1", State: deck.StateTodo},
				{Label: "build", Date: "Phase 2", State: deck.StateTodo},
			},
		},
	}
	doc := renderAndParse(t, slides, Options{})
	items := collect(doc, "li")
	if len(items) != 2 {
		t.Fatalf("expected 2 timeline items, got %d", len(items))
	}
	if got := attr(items[0], "class"); got != "timeline-todo" {
		t.Errorf("timeline item class %q", got)
	}
}
