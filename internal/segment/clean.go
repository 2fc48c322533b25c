package segment

import (
	"github.com/deckgen/deckgen/internal/deck"
)

// cleanSlides normalizes the segmented sequence: empty slides are dropped,
// titleless slides promote their first content entry, and content is capped
// and truncated to the configured limits. Slide order is preserved.
func cleanSlides(slides []deck.BasicSlide, cfg Config) []deck.BasicSlide {
	cleaned := make([]deck.BasicSlide, 0, len(slides))

	for _, s := range slides {
		if s.Title == "" && len(s.Content) == 0 {
			continue
		}

		if s.Title == "" {
			s.Title = truncateRunes(s.Content[0], 50)
			s.Content = s.Content[1:]
		}

		if len(s.Content) > cfg.MaxBullets {
			s.Content = s.Content[:cfg.MaxBullets]
		}

		for i, point := range s.Content {
			s.Content[i] = truncateRunes(point, cfg.MaxBulletLen)
		}

		cleaned = append(cleaned, s)
	}

	return cleaned
}
