package segment

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/deckgen/deckgen/internal/deck"
)

// segmentMarkup parses the document with goldmark and walks the top-level
// blocks. Headings open slides (level 1 marks a title slide), paragraphs and
// blockquotes append content, and list blocks append up to MaxBullets items.
// Blocks before the first heading are discarded.
func segmentMarkup(raw string, cfg Config) []deck.BasicSlide {
	src := []byte(raw)
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var slides []deck.BasicSlide
	var current *deck.BasicSlide

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if current != nil {
				slides = append(slides, *current)
			}
			current = &deck.BasicSlide{
				Title: cleanTitle(string(node.Text(src)), cfg),
				Kind:  deck.KindBullets,
			}
			if node.Level == 1 {
				current.Kind = deck.KindTitle
			}

		case *ast.Paragraph:
			if current == nil {
				continue
			}
			if t := extractText(node, src); t != "" {
				current.Content = append(current.Content, t)
			}

		case *ast.Blockquote:
			if current == nil {
				continue
			}
			if t := extractText(node, src); t != "" {
				current.Content = append(current.Content, t)
				current.Kind = deck.KindQuote
			}

		case *ast.List:
			if current == nil {
				continue
			}
			items := listItems(node, src)
			if len(items) > cfg.MaxBullets {
				items = items[:cfg.MaxBullets]
			}
			current.Content = append(current.Content, items...)
		}
	}

	if current != nil {
		slides = append(slides, *current)
	}
	return slides
}

// listItems collects the text of each direct list item.
func listItems(list *ast.List, src []byte) []string {
	var items []string
	for li := list.FirstChild(); li != nil; li = li.NextSibling() {
		if t := extractText(li, src); t != "" {
			items = append(items, t)
		}
	}
	return items
}

// extractText gets the flattened text content of a goldmark AST node.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				buf.Write(t.Value(src))
				if t.HardLineBreak() || t.SoftLineBreak() {
					buf.WriteByte(' ')
				}
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(buf.String())
}
