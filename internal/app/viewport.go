// internal/app/viewport.go
package app

import (
	"github.com/vishal2376/rio-editor/internal/tui"
)

// scrollToCursor adjusts the viewport so the cursor stays visible with
// the configured scroll-off margin. Vertical scrolling works in lines,
// horizontal in visual columns (tabs and wide runes expand).
func (a *App) scrollToCursor() {
	width, height := a.tuiManager.Size()
	viewHeight := height - a.cfg.Editor.StatusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	scrollOff := a.cfg.Editor.ScrollOff
	if scrollOff*2 >= viewHeight {
		scrollOff = (viewHeight - 1) / 2
	}

	cursor := a.state.Buffer.CursorPosition()

	if cursor.Line < a.viewportY+scrollOff {
		a.viewportY = cursor.Line - scrollOff
	} else if cursor.Line >= a.viewportY+viewHeight-scrollOff {
		a.viewportY = cursor.Line - viewHeight + 1 + scrollOff
	}
	if a.viewportY < 0 {
		a.viewportY = 0
	}
	if maxY := a.state.Buffer.LineCount() - 1; a.viewportY > maxY {
		a.viewportY = maxY
	}

	cursorVisualCol := 0
	if lineBytes, err := a.state.Buffer.Line(cursor.Line); err == nil {
		cursorVisualCol = tui.CalculateVisualColumn(lineBytes, cursor.Col)
	}

	if cursorVisualCol < a.viewportX {
		a.viewportX = cursorVisualCol
	} else if cursorVisualCol >= a.viewportX+width {
		a.viewportX = cursorVisualCol - width + 1
	}
	if a.viewportX < 0 {
		a.viewportX = 0
	}
}
