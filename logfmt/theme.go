package logfmt

import (
	"strconv"
	"strings"

	"github.com/five82/prism/termcolor"
)

// Theme defines the colors a formatter uses for the fixed parts of a
// log line. Logger identities are colored through colorhash instead,
// so they stay stable across theme switches.
type Theme struct {
	Name string

	// Line part colors, as #rrggbb hex.
	Timestamp string
	Message   string
	FieldKey  string
	Border    string

	// Severity colors keyed by level name.
	LevelColors map[string]string
}

// LevelColor returns the color for the given level name, falling back
// to the message color for unknown levels.
func (t Theme) LevelColor(name string) termcolor.Color {
	if hex, ok := t.LevelColors[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return hexToColor(hex)
	}
	return hexToColor(t.Message)
}

// TimestampColor returns the timestamp color.
func (t Theme) TimestampColor() termcolor.Color { return hexToColor(t.Timestamp) }

// MessageColor returns the message color.
func (t Theme) MessageColor() termcolor.Color { return hexToColor(t.Message) }

// FieldKeyColor returns the color for structured-data keys.
func (t Theme) FieldKeyColor() termcolor.Color { return hexToColor(t.FieldKey) }

// BorderColor returns the color for box borders.
func (t Theme) BorderColor() termcolor.Color { return hexToColor(t.Border) }

// hexToColor parses #rrggbb into an RGB color; empty or malformed
// values yield nil (inherit the surrounding context).
func hexToColor(hex string) termcolor.Color {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") || len(hex) != 7 {
		return nil
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return nil
	}
	return termcolor.RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Slate"}

// GetTheme returns a theme by name, falling back to Nightfox.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Timestamp: "#738091", // comment
		Message:   "#cdcecf", // fg1
		FieldKey:  "#719cd6", // blue
		Border:    "#39506d", // bg4

		LevelColors: map[string]string{
			"DEBUG": "#71839b", // fg3
			"INFO":  "#81b29a", // green
			"WARN":  "#dbc074", // yellow
			"ERROR": "#c94f6d", // red
		},
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Timestamp: "#64748b", // slate-500
		Message:   "#f1f5f9", // slate-100
		FieldKey:  "#38bdf8", // sky-400
		Border:    "#334155", // slate-700

		LevelColors: map[string]string{
			"DEBUG": "#94a3b8", // slate-400
			"INFO":  "#22c55e", // green-500
			"WARN":  "#f59e0b", // amber-500
			"ERROR": "#ef4444", // red-500
		},
	}
}
