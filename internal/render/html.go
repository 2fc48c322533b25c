// Package render produces the static HTML slideshow from an enhanced deck.
// Output is a self-contained Reveal.js page; all layout decisions were made
// upstream, so rendering is a mechanical switch over the slide pattern.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/deckgen/deckgen/internal/deck"
	"github.com/deckgen/deckgen/internal/styletext"
)

const revealVersion = "4.6.1"

// Options configures one rendered page.
type Options struct {
	Title string
	Theme string
}

// HTML renders the deck into a complete slideshow page.
func HTML(slides []deck.EnhancedSlide, opts Options) (string, error) {
	if opts.Title == "" {
		opts.Title = "Generated Presentation"
	}
	if opts.Theme == "" {
		opts.Theme = DefaultTheme
	}
	if !ValidTheme(opts.Theme) {
		return "", fmt.Errorf("unknown theme: %s", opts.Theme)
	}

	sections := make([]template.HTML, 0, len(slides))
	for _, s := range slides {
		sections = append(sections, slideSection(&s))
	}

	var b strings.Builder
	err := pageTemplate.Execute(&b, map[string]any{
		"Title":    opts.Title,
		"Theme":    opts.Theme,
		"Version":  revealVersion,
		"Sections": sections,
	})
	if err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return b.String(), nil
}

// slideSection builds one <section> element for a slide, dispatching on the
// pattern.
func slideSection(s *deck.EnhancedSlide) template.HTML {
	var b strings.Builder
	b.WriteString(`<section class="pattern-` + string(s.Pattern) + "\">\n")

	switch s.Pattern {
	case deck.PatternTitle:
		fmt.Fprintf(&b, "<h1>%s</h1>\n", styledHTML(s.Title))
		if len(s.Content) > 0 {
			fmt.Fprintf(&b, "<h3>%s</h3>\n", styledHTML(s.Content[0]))
		}

	case deck.PatternSection:
		if s.SectionNumber > 0 {
			fmt.Fprintf(&b, `<div class="section-number">%02d</div>`+"\n", s.SectionNumber)
		}
		fmt.Fprintf(&b, "<h1>%s</h1>\n", styledHTML(s.Title))

	case deck.PatternClosing:
		fmt.Fprintf(&b, "<h1>%s</h1>\n", styledHTML(s.Title))

	case deck.PatternCompare:
		fmt.Fprintf(&b, "<h2>%s</h2>\n", styledHTML(s.Title))
		if s.Compare != nil {
			b.WriteString(`<div class="compare">` + "\n")
			writeCompareColumn(&b, s.Compare.LeftTitle, s.Compare.LeftItems)
			writeCompareColumn(&b, s.Compare.RightTitle, s.Compare.RightItems)
			b.WriteString("</div>\n")
		} else {
			writeBullets(&b, s.Content)
		}

	case deck.PatternProcess:
		fmt.Fprintf(&b, "<h2>%s</h2>\n", styledHTML(s.Title))
		b.WriteString("<ol class=\"process\">\n")
		for _, step := range s.ProcessSteps {
			fmt.Fprintf(&b, "<li class=\"fragment\">%s</li>\n", styledHTML(step))
		}
		b.WriteString("</ol>\n")

	case deck.PatternTimeline:
		fmt.Fprintf(&b, "<h2>%s</h2>\n", styledHTML(s.Title))
		b.WriteString("<ul class=\"timeline\">\n")
		for _, e := range s.TimelineEntries {
			fmt.Fprintf(&b, "<li class=\"timeline-%s\"><span class=\"date\">%s</span> %s</li>\n",
				e.State, template.HTMLEscapeString(e.Date), styledHTML(e.Label))
		}
		b.WriteString("</ul>\n")

	case deck.PatternCards:
		fmt.Fprintf(&b, "<h2>%s</h2>\n", styledHTML(s.Title))
		b.WriteString(`<div class="cards">` + "\n")
		for _, c := range s.CardItems {
			fmt.Fprintf(&b, "<div class=\"card\"><h4>%s</h4>", styledHTML(c.Title))
			if c.Description != "" {
				fmt.Fprintf(&b, "<p>%s</p>", styledHTML(c.Description))
			}
			b.WriteString("</div>\n")
		}
		b.WriteString("</div>\n")

	case deck.PatternTable:
		fmt.Fprintf(&b, "<h2>%s</h2>\n", styledHTML(s.Title))
		b.WriteString("<table>\n")
		for _, row := range s.Content {
			fmt.Fprintf(&b, "<tr><td>%s</td></tr>\n", styledHTML(row))
		}
		b.WriteString("</table>\n")

	case deck.PatternProgress:
		fmt.Fprintf(&b, "<h2>%s</h2>\n", styledHTML(s.Title))
		b.WriteString(`<div class="progress-list">` + "\n")
		for _, item := range s.Content {
			fmt.Fprintf(&b, "<div class=\"progress-item\">%s<div class=\"bar\"><div class=\"fill\"></div></div></div>\n",
				styledHTML(item))
		}
		b.WriteString("</div>\n")

	default: // content, diagram, and anything unclassified render as bullets
		fmt.Fprintf(&b, "<h2>%s</h2>\n", styledHTML(s.Title))
		if s.Kind == deck.KindQuote && len(s.Content) > 0 {
			fmt.Fprintf(&b, "<blockquote>%s</blockquote>\n", styledHTML(s.Content[0]))
			writeBullets(&b, s.Content[1:])
		} else {
			writeBullets(&b, s.Content)
		}
	}

	if s.SpeakerNotes != "" {
		fmt.Fprintf(&b, "<aside class=\"notes\">%s</aside>\n", template.HTMLEscapeString(s.SpeakerNotes))
	}
	b.WriteString("</section>")
	return template.HTML(b.String())
}

func writeBullets(b *strings.Builder, content []string) {
	if len(content) == 0 {
		return
	}
	b.WriteString("<ul>\n")
	for _, point := range content {
		fmt.Fprintf(b, "<li class=\"fragment\">%s</li>\n", styledHTML(point))
	}
	b.WriteString("</ul>\n")
}

func writeCompareColumn(b *strings.Builder, title string, items []string) {
	fmt.Fprintf(b, "<div class=\"compare-col\"><h4>%s</h4><ul>\n", template.HTMLEscapeString(title))
	for _, item := range items {
		fmt.Fprintf(b, "<li>%s</li>\n", styledHTML(item))
	}
	b.WriteString("</ul></div>\n")
}

// styledHTML converts slide text with emphasis markers into escaped HTML,
// turning style spans into <strong> elements.
func styledHTML(text string) template.HTML {
	clean, spans := styletext.Parse(text)
	if len(spans) == 0 {
		return template.HTML(template.HTMLEscapeString(clean))
	}

	var b strings.Builder
	pos := 0
	for _, sp := range spans {
		b.WriteString(template.HTMLEscapeString(clean[pos:sp.Start]))
		if sp.Color != "" {
			fmt.Fprintf(&b, `<strong style="color:%s">`, sp.Color)
		} else {
			b.WriteString("<strong>")
		}
		b.WriteString(template.HTMLEscapeString(clean[sp.Start:sp.End]))
		b.WriteString("</strong>")
		pos = sp.End
	}
	b.WriteString(template.HTMLEscapeString(clean[pos:]))
	return template.HTML(b.String())
}

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/reveal.js@{{.Version}}/dist/reveal.css">
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/reveal.js@{{.Version}}/dist/theme/{{.Theme}}.css" id="theme">
<style>
.reveal .slides { text-align: left; }
.reveal h1, .reveal h2, .reveal h3 { text-align: center; margin-bottom: 1em; }
.reveal .compare { display: flex; gap: 2em; }
.reveal .compare-col { flex: 1; }
.reveal .cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 1em; }
.reveal .card { border: 1px solid currentColor; border-radius: 6px; padding: 0.5em; }
.reveal .section-number { font-size: 3em; opacity: 0.4; text-align: center; }
.reveal .progress-item .bar { height: 0.5em; background: rgba(128,128,128,0.3); border-radius: 3px; }
.reveal .progress-item .fill { height: 100%; width: 0; background: #4285F4; border-radius: 3px; }
</style>
</head>
<body>
<div class="reveal">
<div class="slides">
{{range .Sections}}{{.}}
{{end}}</div>
</div>
<script src="https://cdn.jsdelivr.net/npm/reveal.js@{{.Version}}/dist/reveal.js"></script>
<script src="https://cdn.jsdelivr.net/npm/reveal.js@{{.Version}}/plugin/notes/notes.js"></script>
<script>
Reveal.initialize({
  hash: true,
  controls: true,
  progress: true,
  center: true,
  transition: 'slide',
  plugins: [ RevealNotes ]
});
</script>
</body>
</html>
`))
