// internal/tui/drawing.go
package tui

import (
	"github.com/rivo/uniseg"

	"github.com/vishal2376/rio-editor/internal/buffer"
	"github.com/vishal2376/rio-editor/internal/highlight"
	"github.com/vishal2376/rio-editor/internal/theme"
	"github.com/vishal2376/rio-editor/internal/types"
)

// Frame is everything the drawing routines need for one redraw.
type Frame struct {
	Buffer          *buffer.TextBuffer
	ViewportY       int // Top visible line index
	ViewportX       int // Leftmost visible visual column
	Syntax          highlight.Result
	Theme           *theme.Theme
	TabWidth        int
	StatusBarHeight int
}

// CalculateVisualColumn computes the visual screen width up to runeIndex
// within a line, handling wide characters and grapheme clusters.
func CalculateVisualColumn(line []byte, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	visualWidth := 0
	currentRuneIndex := 0
	gr := uniseg.NewGraphemes(string(line))
	for gr.Next() {
		if currentRuneIndex >= runeIndex {
			break
		}
		visualWidth += gr.Width()
		currentRuneIndex += len(gr.Runes())
	}
	return visualWidth
}

// isPositionWithin checks pos against the half-open range [start, end).
func isPositionWithin(pos, start, end types.Position) bool {
	if pos.Line < start.Line || pos.Line > end.Line {
		return false
	}
	if pos.Line == start.Line && pos.Col < start.Col {
		return false
	}
	if pos.Line == end.Line && pos.Col >= end.Col {
		return false
	}
	return true
}

// DrawBuffer draws the visible portion of the buffer.
func (t *TUI) DrawBuffer(f Frame) {
	width, height := t.Size()
	viewHeight := height - f.StatusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	defaultStyle := f.Theme.GetStyle("Default")
	selectionStyle := f.Theme.GetStyle("Selection")
	selStart, selEnd, selectionActive := f.Buffer.Selection()
	tabWidth := f.TabWidth
	if tabWidth <= 0 {
		tabWidth = 4
	}

	for screenY := 0; screenY < viewHeight; screenY++ {
		bufferLineIdx := screenY + f.ViewportY

		for fillX := 0; fillX < width; fillX++ {
			t.screen.SetContent(fillX, screenY, ' ', nil, defaultStyle)
		}

		lineBytes, err := f.Buffer.Line(bufferLineIdx)
		if err != nil {
			continue // Below buffer content
		}

		lineSyntax := f.Syntax[bufferLineIdx]
		gr := uniseg.NewGraphemes(string(lineBytes))
		currentVisualX := 0
		currentRuneIndex := 0

		for gr.Next() {
			clusterRunes := gr.Runes()
			clusterWidth := gr.Width()
			screenX := currentVisualX - f.ViewportX

			if currentVisualX+clusterWidth > f.ViewportX && screenX < width {
				// Style precedence: selection over syntax over default.
				currentStyle := defaultStyle
				currentPos := types.Position{Line: bufferLineIdx, Col: currentRuneIndex}
				for _, span := range lineSyntax {
					if currentRuneIndex >= span.StartCol && currentRuneIndex < span.EndCol {
						currentStyle = f.Theme.GetStyle(span.StyleName)
						break
					}
				}
				if selectionActive && isPositionWithin(currentPos, selStart, selEnd) {
					currentStyle = selectionStyle
				}

				if screenX >= 0 {
					mainRune := clusterRunes[0]
					if mainRune == '\t' {
						spaces := tabWidth - (currentVisualX % tabWidth)
						for i := 0; i < spaces && screenX+i < width; i++ {
							t.screen.SetContent(screenX+i, screenY, ' ', nil, currentStyle)
						}
						clusterWidth = spaces
					} else {
						var combining []rune
						if len(clusterRunes) > 1 {
							combining = clusterRunes[1:]
						}
						t.screen.SetContent(screenX, screenY, mainRune, combining, currentStyle)
						for cw := 1; cw < clusterWidth; cw++ {
							if screenX+cw < width {
								t.screen.SetContent(screenX+cw, screenY, ' ', nil, currentStyle)
							}
						}
					}
				}
			} else if clusterRunes[0] == '\t' {
				clusterWidth = tabWidth - (currentVisualX % tabWidth)
			}

			currentVisualX += clusterWidth
			currentRuneIndex += len(clusterRunes)
			if currentVisualX >= f.ViewportX+width {
				break
			}
		}
	}
}

// DrawCursor positions the terminal cursor, hiding it when scrolled out
// of the drawable area.
func (t *TUI) DrawCursor(f Frame) {
	cursor := f.Buffer.CursorPosition()
	width, height := t.Size()
	viewHeight := height - f.StatusBarHeight

	cursorVisualCol := 0
	if lineBytes, err := f.Buffer.Line(cursor.Line); err == nil {
		cursorVisualCol = CalculateVisualColumn(lineBytes, cursor.Col)
	}

	screenX := cursorVisualCol - f.ViewportX
	screenY := cursor.Line - f.ViewportY

	if screenX < 0 || screenX >= width || screenY < 0 || screenY >= viewHeight || viewHeight <= 0 {
		t.screen.HideCursor()
	} else {
		t.screen.ShowCursor(screenX, screenY)
	}
}
