package tui

import (
	"testing"

	"github.com/vishal2376/rio-editor/internal/types"
)

func TestCalculateVisualColumn(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		runeIndex int
		want      int
	}{
		{"empty line", "", 0, 0},
		{"ascii start", "hello", 0, 0},
		{"ascii middle", "hello", 3, 3},
		{"ascii end", "hello", 5, 5},
		{"past end clamps to width", "hi", 10, 2},
		{"wide cjk", "日本語", 2, 4},
		{"mixed ascii cjk", "a日b", 2, 3},
		{"negative index", "abc", -1, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateVisualColumn([]byte(tc.line), tc.runeIndex)
			if got != tc.want {
				t.Errorf("CalculateVisualColumn(%q, %d) = %d, want %d", tc.line, tc.runeIndex, got, tc.want)
			}
		})
	}
}

func TestIsPositionWithin(t *testing.T) {
	start := types.Position{Line: 1, Col: 2}
	end := types.Position{Line: 3, Col: 4}

	tests := []struct {
		name string
		pos  types.Position
		want bool
	}{
		{"before start line", types.Position{Line: 0, Col: 9}, false},
		{"at start", types.Position{Line: 1, Col: 2}, true},
		{"before start col", types.Position{Line: 1, Col: 1}, false},
		{"middle line", types.Position{Line: 2, Col: 0}, true},
		{"end col is exclusive", types.Position{Line: 3, Col: 4}, false},
		{"just before end", types.Position{Line: 3, Col: 3}, true},
		{"after end line", types.Position{Line: 4, Col: 0}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := isPositionWithin(tc.pos, start, end); got != tc.want {
				t.Errorf("isPositionWithin(%v) = %v, want %v", tc.pos, got, tc.want)
			}
		})
	}
}
