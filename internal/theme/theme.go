// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/vishal2376/rio-editor/internal/logger"
)

// Theme maps style names to tcell styles. Syntax capture names
// ("keyword", "string.escape", ...) and UI element names ("StatusBar",
// "Selection", ...) share the same namespace.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle resolves a style name, falling back to the base name before
// the first dot, then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}
	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}
	if defStyle, ok := t.Styles["Default"]; ok {
		return defStyle
	}
	return tcell.StyleDefault
}

// Dark is the built-in default theme.
var Dark Theme

func init() {
	background := tcell.NewHexColor(0x2a2f38) // Status bar background
	foreground := tcell.NewHexColor(0xc5cdd9) // Default text
	comment := tcell.NewHexColor(0x5c6370)
	orange := tcell.NewHexColor(0xd19a66)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	cyan := tcell.NewHexColor(0x56b6c2)
	blue := tcell.NewHexColor(0x61afef)
	red := tcell.NewHexColor(0xe06c75)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(foreground)

	Dark = Theme{
		Name:   "Rio Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			// UI elements
			"Default":         base,
			"Selection":       base.Reverse(true),
			"StatusBar":       tcell.StyleDefault.Background(background).Foreground(foreground),
			"StatusBarError":  tcell.StyleDefault.Background(background).Foreground(red).Bold(true),
			"StatusBarPrompt": tcell.StyleDefault.Background(background).Foreground(green).Bold(true),

			// Syntax highlighting
			"keyword":          base.Foreground(blue).Bold(true),
			"string":           base.Foreground(green),
			"comment":          base.Foreground(comment).Italic(true),
			"number":           base.Foreground(orange),
			"type":             base.Foreground(cyan),
			"type.builtin":     base.Foreground(cyan).Bold(true),
			"function":         base.Foreground(yellow),
			"function.builtin": base.Foreground(cyan).Italic(true),
			"constant":         base.Foreground(orange),
			"variable":         base.Foreground(foreground),
			"operator":         base.Foreground(foreground),
			"punctuation":      base.Foreground(comment),
			"string.escape":    base.Foreground(orange),
		},
	}

	current = &Dark
}

var current *Theme

// Current returns the active theme.
func Current() *Theme {
	if current == nil {
		current = &Dark
	}
	return current
}

// SetCurrent switches the active theme.
func SetCurrent(t *Theme) {
	if t != nil {
		current = t
		logger.Infof("theme switched to %q", t.Name)
	}
}
