// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/vishal2376/rio-editor/internal/theme"
	"github.com/vishal2376/rio-editor/internal/types"
)

// StatusBar renders the bottom status line: file info and any surfaced
// error on the left, the 1-based cursor position on the right. While a
// dialog prompt is active it takes over the whole line.
type StatusBar struct {
	mu sync.RWMutex

	filePath   string
	cursorPos  types.Position
	isModified bool
	awaitingIO bool

	errMessage string

	promptLabel string
	promptInput string
	promptShown bool
}

// New creates an empty status bar.
func New() *StatusBar {
	return &StatusBar{}
}

// SetFileInfo updates the file path and modified indicator.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the displayed cursor position.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetAwaitingIO toggles the in-flight effect indicator.
func (sb *StatusBar) SetAwaitingIO(active bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.awaitingIO = active
}

// SetError shows an error message until the next ClearError.
func (sb *StatusBar) SetError(msg string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.errMessage = msg
}

// ClearError removes the displayed error.
func (sb *StatusBar) ClearError() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.errMessage = ""
}

// SetPrompt shows a dialog prompt ("Open: ", "Save as: ") with the
// user's input so far.
func (sb *StatusBar) SetPrompt(label, input string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.promptLabel = label
	sb.promptInput = input
	sb.promptShown = true
}

// ClearPrompt hides the dialog prompt.
func (sb *StatusBar) ClearPrompt() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.promptLabel = ""
	sb.promptInput = ""
	sb.promptShown = false
}

// leftText builds the left-hand portion of the status line.
func (sb *StatusBar) leftText() string {
	fPath := sb.filePath
	if fPath == "" {
		fPath = "[No Name]"
	}
	modifiedIndicator := ""
	if sb.isModified {
		modifiedIndicator = " [Modified]"
	}
	busyIndicator := ""
	if sb.awaitingIO {
		busyIndicator = " ..."
	}
	if sb.errMessage != "" {
		return fmt.Sprintf("%s%s -- %s", fPath, modifiedIndicator, sb.errMessage)
	}
	return fmt.Sprintf("%s%s%s", fPath, modifiedIndicator, busyIndicator)
}

// Draw renders the status bar onto the last screen line.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int, activeTheme *theme.Theme) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.RLock()
	var left, right string
	style := activeTheme.GetStyle("StatusBar")
	switch {
	case sb.promptShown:
		left = sb.promptLabel + sb.promptInput
		style = activeTheme.GetStyle("StatusBarPrompt")
	case sb.errMessage != "":
		left = sb.leftText()
		style = activeTheme.GetStyle("StatusBarError")
	default:
		left = sb.leftText()
	}
	// 1-based position, matching what users expect from editors.
	right = fmt.Sprintf("%d:%d", sb.cursorPos.Line+1, sb.cursorPos.Col+1)
	sb.mu.RUnlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
	drawText(screen, 0, y, width, left, style)

	rightWidth := uniseg.StringWidth(right)
	if rightWidth < width {
		drawText(screen, width-rightWidth, y, width, right, style)
	}
}

// drawText writes text starting at x, clipping at maxWidth, grapheme-aware.
func drawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	gr := uniseg.NewGraphemes(text)
	currentX := x
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > maxWidth {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			var combining []rune
			if len(runes) > 1 {
				combining = runes[1:]
			}
			screen.SetContent(currentX, y, runes[0], combining, style)
		}
		currentX += clusterWidth
	}
}
