package deck

// Kind classifies the raw shape of a segmented slide before pattern analysis.
type Kind string

const (
	KindTitle    Kind = "title"
	KindBullets  Kind = "bullets"
	KindQuote    Kind = "quote"
	KindFreeform Kind = "freeform"
)

// BasicSlide is one titled block of content produced by the segmenter.
// Content order follows document order.
type BasicSlide struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
	Kind    Kind     `json:"kind"`
}

// Pattern is the presentation layout assigned to a slide.
type Pattern string

const (
	PatternTitle    Pattern = "title"
	PatternSection  Pattern = "section"
	PatternContent  Pattern = "content"
	PatternCompare  Pattern = "compare"
	PatternProcess  Pattern = "process"
	PatternTimeline Pattern = "timeline"
	PatternDiagram  Pattern = "diagram"
	PatternCards    Pattern = "cards"
	PatternTable    Pattern = "table"
	PatternProgress Pattern = "progress"
	PatternClosing  Pattern = "closing"
)

// TimelineState tracks completion of a timeline entry.
type TimelineState string

const (
	StateTodo       TimelineState = "todo"
	StateInProgress TimelineState = "in-progress"
	StateDone       TimelineState = "done"
)

// CompareData holds the two-column payload for compare slides.
type CompareData struct {
	LeftTitle  string   `json:"left_title"`
	RightTitle string   `json:"right_title"`
	LeftItems  []string `json:"left_items"`
	RightItems []string `json:"right_items"`
}

// TimelineEntry is one milestone on a timeline slide.
type TimelineEntry struct {
	Label string        `json:"label"`
	Date  string        `json:"date"`
	State TimelineState `json:"state"`
}

// CardItem is one card on a cards slide.
type CardItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// EnhancedSlide extends a BasicSlide with its selected pattern, generated
// speaker notes, and the payload matching the pattern. At most one payload
// field is non-nil, and it corresponds to Pattern; the rest stay nil and are
// rendered from Content directly.
type EnhancedSlide struct {
	Pattern Pattern  `json:"pattern"`
	Kind    Kind     `json:"kind,omitempty"`
	Title   string   `json:"title"`
	Subhead string   `json:"subhead,omitempty"`
	Content []string `json:"content"`

	SpeakerNotes string `json:"speaker_notes,omitempty"`

	Compare         *CompareData    `json:"compare,omitempty"`
	ProcessSteps    []string        `json:"process_steps,omitempty"`
	TimelineEntries []TimelineEntry `json:"timeline,omitempty"`
	CardItems       []CardItem      `json:"cards,omitempty"`

	// SectionNumber is the 1-based running count over section slides,
	// set only when Pattern is section.
	SectionNumber int    `json:"section_number,omitempty"`
	Date          string `json:"date,omitempty"`
}

// PayloadPattern reports which pattern's payload is populated, or empty when
// the slide carries no payload. Used to check the one-payload invariant.
func (s *EnhancedSlide) PayloadPattern() Pattern {
	switch {
	case s.Compare != nil:
		return PatternCompare
	case s.ProcessSteps != nil:
		return PatternProcess
	case s.TimelineEntries != nil:
		return PatternTimeline
	case s.CardItems != nil:
		return PatternCards
	}
	return ""
}

// ValidationReport is the outcome of the structure validator. Warnings and
// suggestions never affect Valid; only fatal rules (empty deck, slide-count
// ceiling) do.
type ValidationReport struct {
	Valid       bool     `json:"is_valid"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}
