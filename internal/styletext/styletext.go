// Package styletext parses the inline emphasis markup used in slide text.
// Two markers are recognized: [[term]] renders bold in the accent color, and
// **term** renders plain bold. Markers do not nest; unterminated markers are
// left as literal text.
package styletext

import (
	"regexp"
	"sort"
	"strings"
)

// AccentColor is applied to [[highlight]] spans.
const AccentColor = "#4285F4"

// Span marks a byte range of the clean text for emphasis. Offsets are
// half-open and refer to the delimiter-stripped text.
type Span struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Bold  bool   `json:"bold"`
	Color string `json:"color,omitempty"`
}

var (
	highlightRe = regexp.MustCompile(`\[\[([^\[\]]+)\]\]`)
	boldRe      = regexp.MustCompile(`\*\*([^*]+)\*\*`)
)

// Parse strips emphasis markers from text and returns the clean text plus
// the style spans expressed in clean-text offsets. Highlight markers are
// resolved first, then bold markers against the intermediate result;
// highlight span offsets are remapped so that all returned spans refer to
// the final text. Input without markers is returned unchanged with no spans.
func Parse(text string) (string, []Span) {
	if text == "" {
		return "", nil
	}

	intermediate, highlights, _ := stripMarkers(text, highlightRe, AccentColor)
	clean, bolds, remap := stripMarkers(intermediate, boldRe, "")

	if len(highlights) == 0 && len(bolds) == 0 {
		return clean, nil
	}

	spans := make([]Span, 0, len(highlights)+len(bolds))
	for _, sp := range highlights {
		sp.Start = remap(sp.Start)
		sp.End = remap(sp.End)
		spans = append(spans, sp)
	}
	spans = append(spans, bolds...)

	return clean, normalize(spans)
}

// stripMarkers removes every match of re from text, recording one span per
// match against the stripped output. The returned remap function translates
// offsets in the input text to offsets in the stripped output, so spans
// computed before this pass can be carried through it.
func stripMarkers(text string, re *regexp.Regexp, color string) (string, []Span, func(int) int) {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, nil, func(off int) int { return off }
	}

	type cut struct {
		pos   int // offset in the input at which stripped bytes end
		width int
	}

	var b strings.Builder
	var spans []Span
	var cuts []cut
	prev := 0
	for _, m := range matches {
		// m[0]:m[1] is the full match, m[2]:m[3] the inner text.
		b.WriteString(text[prev:m[0]])
		start := b.Len()
		b.WriteString(text[m[2]:m[3]])
		spans = append(spans, Span{Start: start, End: b.Len(), Bold: true, Color: color})
		cuts = append(cuts, cut{pos: m[2], width: m[2] - m[0]}, cut{pos: m[1], width: m[1] - m[3]})
		prev = m[1]
	}
	b.WriteString(text[prev:])
	clean := b.String()

	remap := func(off int) int {
		d := 0
		for _, c := range cuts {
			if c.pos <= off {
				d += c.width
			}
		}
		off -= d
		if off < 0 {
			off = 0
		}
		if off > len(clean) {
			off = len(clean)
		}
		return off
	}
	return clean, spans, remap
}

// normalize sorts spans by start offset and merges any that overlap, keeping
// the accent color when either side carries one. Overlap only occurs when a
// bold marker sits inside highlighted text; the merged span keeps both
// emphases.
func normalize(spans []Span) []Span {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})

	out := spans[:0]
	for _, sp := range spans {
		if len(out) > 0 && sp.Start < out[len(out)-1].End {
			last := &out[len(out)-1]
			if sp.End > last.End {
				last.End = sp.End
			}
			last.Bold = last.Bold || sp.Bold
			if last.Color == "" {
				last.Color = sp.Color
			}
			continue
		}
		out = append(out, sp)
	}
	return out
}

// Strip returns the clean text only, for callers that measure or display
// text without styling.
func Strip(text string) string {
	clean, _ := Parse(text)
	return clean
}
