// internal/app/keys.go
package app

import (
	"context"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/vishal2376/rio-editor/internal/action"
	"github.com/vishal2376/rio-editor/internal/editor"
	"github.com/vishal2376/rio-editor/internal/types"
)

// handleEditorKey translates one key event into reducer events and runs
// them through the reducer immediately, on the loop goroutine.
func (a *App) handleEditorKey(ctx context.Context, ev *tcell.EventKey) {
	mod := ev.Modifiers()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlQ:
		a.signalQuit()
		return

	case tcell.KeyCtrlS:
		a.processEvent(ctx, editor.Event{Kind: editor.EventSaveRequested})
		return
	case tcell.KeyCtrlO:
		a.processEvent(ctx, editor.Event{Kind: editor.EventOpenRequested})
		return
	case tcell.KeyCtrlN:
		a.processEvent(ctx, editor.Event{Kind: editor.EventNew})
		return

	case tcell.KeyCtrlA:
		a.edit(ctx, action.Action{Kind: action.SelectAll})
		return
	case tcell.KeyCtrlC:
		a.copySelection()
		return
	case tcell.KeyCtrlX:
		if a.copySelection() {
			a.edit(ctx, action.Action{Kind: action.Backspace})
		}
		return
	case tcell.KeyCtrlV:
		a.paste(ctx)
		return

	case tcell.KeyEnter:
		a.edit(ctx, action.Action{Kind: action.InsertNewline})
		return
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.edit(ctx, action.Action{Kind: action.Backspace})
		return
	case tcell.KeyDelete:
		a.edit(ctx, action.Action{Kind: action.Delete})
		return

	case tcell.KeyUp:
		a.moveOrSelect(ctx, action.Up, mod&tcell.ModShift != 0)
		return
	case tcell.KeyDown:
		a.moveOrSelect(ctx, action.Down, mod&tcell.ModShift != 0)
		return
	case tcell.KeyLeft:
		a.moveOrSelect(ctx, action.Left, mod&tcell.ModShift != 0)
		return
	case tcell.KeyRight:
		a.moveOrSelect(ctx, action.Right, mod&tcell.ModShift != 0)
		return

	case tcell.KeyHome:
		cur := a.state.Buffer.CursorPosition()
		a.edit(ctx, action.Action{Kind: action.MoveCursorTo, Line: cur.Line, Col: 0})
		return
	case tcell.KeyEnd:
		cur := a.state.Buffer.CursorPosition()
		a.edit(ctx, action.Action{Kind: action.MoveCursorTo, Line: cur.Line, Col: endOfLine})
		return

	case tcell.KeyTab:
		a.edit(ctx, action.Action{Kind: action.InsertChar, Rune: '\t'})
		return

	case tcell.KeyRune:
		a.edit(ctx, action.Action{Kind: action.InsertChar, Rune: ev.Rune()})
		return
	}
}

// endOfLine is a column target that always clamps to the line end.
const endOfLine = 1 << 30

func (a *App) edit(ctx context.Context, act action.Action) {
	a.processEvent(ctx, editor.Event{Kind: editor.EventEdit, Action: act})
}

// moveOrSelect issues either a plain cursor move or a selection
// extension, depending on the shift modifier.
func (a *App) moveOrSelect(ctx context.Context, dir action.Direction, selecting bool) {
	if !selecting {
		a.edit(ctx, action.Action{Kind: action.MoveCursor, Dir: dir})
		return
	}
	target := a.selectionTarget(dir)
	a.edit(ctx, action.Action{Kind: action.SelectTo, Line: target.Line, Col: target.Col})
}

// selectionTarget computes where a one-step selection extension lands.
// Left and right wrap across line boundaries; the buffer clamps any
// remaining out-of-range component.
func (a *App) selectionTarget(dir action.Direction) types.Position {
	cur := a.state.Buffer.CursorPosition()
	switch dir {
	case action.Up:
		return types.Position{Line: cur.Line - 1, Col: cur.Col}
	case action.Down:
		return types.Position{Line: cur.Line + 1, Col: cur.Col}
	case action.Left:
		if cur.Col > 0 {
			return types.Position{Line: cur.Line, Col: cur.Col - 1}
		}
		if cur.Line > 0 {
			return types.Position{Line: cur.Line - 1, Col: endOfLine}
		}
		return cur
	case action.Right:
		if cur.Col < a.lineRuneCount(cur.Line) {
			return types.Position{Line: cur.Line, Col: cur.Col + 1}
		}
		if cur.Line < a.state.Buffer.LineCount()-1 {
			return types.Position{Line: cur.Line + 1, Col: 0}
		}
		return cur
	}
	return cur
}

func (a *App) lineRuneCount(line int) int {
	lineBytes, err := a.state.Buffer.Line(line)
	if err != nil {
		return 0
	}
	return utf8.RuneCount(lineBytes)
}

// copySelection places the selected text in the register. Returns false
// when there is no active selection.
func (a *App) copySelection() bool {
	text := a.state.Buffer.SelectedText()
	if text == "" {
		return false
	}
	a.register.Write(text)
	return true
}

// paste replays the register contents as individual edit actions, so
// pasted text goes through the same reducer path as typed text.
func (a *App) paste(ctx context.Context) {
	text := a.register.Read()
	for _, r := range text {
		if r == '\n' {
			a.edit(ctx, action.Action{Kind: action.InsertNewline})
			continue
		}
		a.edit(ctx, action.Action{Kind: action.InsertChar, Rune: r})
	}
}
