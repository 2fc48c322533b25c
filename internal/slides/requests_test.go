package slides

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckgen/deckgen/internal/deck"
)

func TestBuildRequests_ContentSlide(t *testing.T) {
	slides := []deck.EnhancedSlide{
		{
			Pattern:      deck.PatternContent,
			Title:        "Findings",
			Content:      []string{"first point", "second point"},
			SpeakerNotes: "Walk through the findings.",
		},
	}
	reqs := BuildRequests(slides)
	require.Len(t, reqs, 4)

	require.NotNil(t, reqs[0].CreateSlide)
	assert.Equal(t, "slide_0", reqs[0].CreateSlide.ObjectID)
	assert.Equal(t, "TITLE_AND_BODY", reqs[0].CreateSlide.Layout)

	require.NotNil(t, reqs[1].InsertText)
	assert.Equal(t, "slide_0.title", reqs[1].InsertText.ObjectID)
	assert.Equal(t, "Findings", reqs[1].InsertText.Text)

	require.NotNil(t, reqs[2].InsertText)
	assert.Equal(t, "slide_0.body", reqs[2].InsertText.ObjectID)
	assert.Equal(t, "• first point\n• second point", reqs[2].InsertText.Text)

	require.NotNil(t, reqs[3].SetSpeakerNotes)
	assert.Equal(t, "slide_0", reqs[3].SetSpeakerNotes.ObjectID)
}

func TestBuildRequests_TitleSlideLayout(t *testing.T) {
	reqs := BuildRequests([]deck.EnhancedSlide{
		{Pattern: deck.PatternTitle, Title: "Quarterly Review"},
	})
	require.Len(t, reqs, 2)
	assert.Equal(t, "TITLE", reqs[0].CreateSlide.Layout)
	assert.Equal(t, "slide_0.title", reqs[1].InsertText.ObjectID)
}

func TestBuildRequests_StyleSpans(t *testing.T) {
	reqs := BuildRequests([]deck.EnhancedSlide{
		{Pattern: deck.PatternContent, Title: "T", Content: []string{"a [[key]] point"}},
	})

	var style *UpdateTextStyleRequest
	var body *InsertTextRequest
	for _, r := range reqs {
		if r.UpdateTextStyle != nil {
			style = r.UpdateTextStyle
		}
		if r.InsertText != nil && r.InsertText.ObjectID == "slide_0.body" {
			body = r.InsertText
		}
	}
	require.NotNil(t, style)
	require.NotNil(t, body)

	assert.Equal(t, "foregroundColor", style.Fields)
	assert.Equal(t, "#4285F4", style.Style.ForegroundColor)
	assert.Equal(t, "key", body.Text[style.Range.Start:style.Range.End])
}

func TestBuildRequests_BoldSpanFields(t *testing.T) {
	reqs := BuildRequests([]deck.EnhancedSlide{
		{Pattern: deck.PatternContent, Title: "A **bold** claim"},
	})

	var style *UpdateTextStyleRequest
	for _, r := range reqs {
		if r.UpdateTextStyle != nil {
			style = r.UpdateTextStyle
		}
	}
	require.NotNil(t, style)
	assert.Equal(t, "bold", style.Fields)
	assert.True(t, style.Style.Bold)
	assert.Equal(t, "slide_0.title", style.ObjectID)
}

func TestBuildRequests_ProcessSteps(t *testing.T) {
	reqs := BuildRequests([]deck.EnhancedSlide{
		{
			Pattern:      deck.PatternProcess,
			Title:        "Rollout",
			Content:      []string{"plan", "execute"},
			ProcessSteps: []string{"plan", "execute"},
		},
	})

	var body *InsertTextRequest
	for _, r := range reqs {
		if r.InsertText != nil && r.InsertText.ObjectID == "slide_0.body" {
			body = r.InsertText
		}
	}
	require.NotNil(t, body)
	assert.Equal(t, "1. plan\n2. execute", body.Text)
}

func TestBuildRequests_CompareColumns(t *testing.T) {
	reqs := BuildRequests([]deck.EnhancedSlide{
		{
			Pattern: deck.PatternCompare,
			Title:   "Build vs Buy",
			Compare: &deck.CompareData{
				LeftTitle: "Option A", RightTitle: "Option B",
				LeftItems: []string{"control"}, RightItems: []string{"speed"},
			},
		},
	})

	var body *InsertTextRequest
	for _, r := range reqs {
		if r.InsertText != nil && r.InsertText.ObjectID == "slide_0.body" {
			body = r.InsertText
		}
	}
	require.NotNil(t, body)
	assert.Equal(t, "Option A\n• control\nOption B\n• speed", body.Text)
}

func TestBuildRequests_SlideNumbering(t *testing.T) {
	reqs := BuildRequests([]deck.EnhancedSlide{
		{Pattern: deck.PatternTitle, Title: "One"},
		{Pattern: deck.PatternContent, Title: "Two"},
	})

	var created []string
	for _, r := range reqs {
		if r.CreateSlide != nil {
			created = append(created, r.CreateSlide.ObjectID)
		}
	}
	assert.Equal(t, []string{"slide_0", "slide_1"}, created)
}

func TestBuildRequests_Empty(t *testing.T) {
	assert.Empty(t, BuildRequests(nil))
}
