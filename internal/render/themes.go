package render

// Themes maps theme identifiers to display names. Identifiers follow the
// Reveal.js stylesheet names.
var Themes = map[string]string{
	"black":     "Black",
	"white":     "White",
	"league":    "League",
	"beige":     "Beige",
	"sky":       "Sky",
	"night":     "Night",
	"serif":     "Serif",
	"simple":    "Simple",
	"solarized": "Solarized",
	"blood":     "Blood",
	"moon":      "Moon",
}

// DefaultTheme is used when no theme is requested.
const DefaultTheme = "black"

// ValidTheme reports whether name is a known theme identifier.
func ValidTheme(name string) bool {
	_, ok := Themes[name]
	return ok
}
