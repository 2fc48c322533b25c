package segment

import (
	"bufio"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/deckgen/deckgen/internal/deck"
)

const ellipsis = "..."

var enumPrefixRe = regexp.MustCompile(`^\d+\.?\s+`)
var enumStripRe = regexp.MustCompile(`^\d+\.?\s*`)

// segmentPlain walks the document line by line. Lines recognized as titles
// open a new slide; everything else accumulates on the current slide. A
// content line arriving before any title seeds a slide of its own.
func segmentPlain(raw string, cfg Config) []deck.BasicSlide {
	var slides []deck.BasicSlide
	var current *deck.BasicSlide

	scanner := bufio.NewScanner(strings.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case isTitleLine(line, cfg):
			if current != nil {
				slides = append(slides, *current)
			}
			current = &deck.BasicSlide{
				Title: cleanTitle(line, cfg),
				Kind:  deck.KindBullets,
			}

		case current != nil:
			if len(current.Content) < cfg.MaxBullets {
				current.Content = append(current.Content, stripBulletMarker(line))
			}

		default:
			// Orphan content line: seed a slide from it.
			current = &deck.BasicSlide{
				Title:   truncateRunes(line, 50),
				Content: []string{line},
				Kind:    deck.KindBullets,
			}
		}
	}

	if current != nil {
		slides = append(slides, *current)
	}
	return slides
}

// isTitleLine applies the title heuristics in fixed order; the first match
// wins. Length checks count runes, not bytes.
func isTitleLine(line string, cfg Config) bool {
	// All upper-case with at least one cased letter.
	if utf8.RuneCountInString(line) > 3 &&
		line == strings.ToUpper(line) && line != strings.ToLower(line) {
		return true
	}

	if strings.HasSuffix(line, ":") {
		return true
	}

	if utf8.RuneCountInString(line) <= cfg.MaxTitleLen && !startsWithBullet(line) {
		return true
	}

	return enumPrefixRe.MatchString(line)
}

func startsWithBullet(line string) bool {
	return strings.HasPrefix(line, "-") ||
		strings.HasPrefix(line, "*") ||
		strings.HasPrefix(line, "•")
}

func stripBulletMarker(line string) string {
	if startsWithBullet(line) {
		_, size := utf8.DecodeRuneInString(line)
		return strings.TrimSpace(line[size:])
	}
	return line
}

// cleanTitle strips one trailing colon and a leading enumeration prefix,
// then truncates to the configured title length.
func cleanTitle(title string, cfg Config) string {
	title = strings.TrimSuffix(title, ":")
	title = enumStripRe.ReplaceAllString(title, "")
	title = truncateRunes(title, cfg.MaxTitleLen)
	return strings.TrimSpace(title)
}

// truncateRunes cuts s to at most n runes, appending an ellipsis marker when
// anything was cut.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + ellipsis
}
