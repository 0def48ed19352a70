// internal/theme/loader.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/vishal2376/rio-editor/internal/logger"
)

// tomlStyle is one style entry in a theme file. Pointers distinguish
// missing values from explicit zero values.
type tomlStyle struct {
	Fg      *string `toml:"fg"`
	Bg      *string `toml:"bg"`
	Bold    *bool   `toml:"bold"`
	Italic  *bool   `toml:"italic"`
	Reverse *bool   `toml:"reverse"`
}

type tomlTheme struct {
	Name   string               `toml:"name"`
	IsDark bool                 `toml:"is_dark"`
	Styles map[string]tomlStyle `toml:"styles"`
}

// LoadFile parses a TOML theme file. Styles inherit from the file's
// "Default" entry; names not present fall back through GetStyle.
func LoadFile(path string) (*Theme, error) {
	var parsed tomlTheme
	metadata, err := toml.DecodeFile(path, &parsed)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("theme file %q not found", path)
		}
		return nil, fmt.Errorf("failed to parse theme file %q: %w", path, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("theme file %q: unrecognized keys: %v", path, undecoded)
	}

	if parsed.Name == "" {
		parsed.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	t := &Theme{
		Name:   parsed.Name,
		IsDark: parsed.IsDark,
		Styles: make(map[string]tcell.Style, len(parsed.Styles)),
	}

	base := tcell.StyleDefault
	if def, ok := parsed.Styles["Default"]; ok {
		base, err = convertStyle(def, tcell.StyleDefault)
		if err != nil {
			logger.Warnf("theme %q: bad Default style: %v", t.Name, err)
			base = tcell.StyleDefault
		}
	}
	t.Styles["Default"] = base

	for name, def := range parsed.Styles {
		if name == "Default" {
			continue
		}
		style, err := convertStyle(def, base)
		if err != nil {
			logger.Warnf("theme %q: skipping style %q: %v", t.Name, name, err)
			continue
		}
		t.Styles[name] = style
	}

	logger.Debugf("loaded theme %q from %q (%d styles)", t.Name, path, len(t.Styles))
	return t, nil
}

func convertStyle(def tomlStyle, base tcell.Style) (tcell.Style, error) {
	style := base
	if def.Fg != nil {
		color, err := parseColor(*def.Fg)
		if err != nil {
			return style, fmt.Errorf("invalid fg: %w", err)
		}
		style = style.Foreground(color)
	}
	if def.Bg != nil {
		color, err := parseColor(*def.Bg)
		if err != nil {
			return style, fmt.Errorf("invalid bg: %w", err)
		}
		style = style.Background(color)
	}
	if def.Bold != nil {
		style = style.Bold(*def.Bold)
	}
	if def.Italic != nil {
		style = style.Italic(*def.Italic)
	}
	if def.Reverse != nil {
		style = style.Reverse(*def.Reverse)
	}
	return style, nil
}

// parseColor accepts "#RRGGBB" hex codes plus the "reset" and "default"
// keywords.
func parseColor(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "#"):
		if len(s) != 7 {
			return tcell.ColorDefault, fmt.Errorf("hex color %q must be #RRGGBB", s)
		}
		val, err := strconv.ParseInt(s[1:], 16, 32)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid hex value %q: %w", s, err)
		}
		return tcell.NewHexColor(int32(val)), nil
	case s == "reset":
		return tcell.ColorReset, nil
	case s == "default":
		return tcell.ColorDefault, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
}
