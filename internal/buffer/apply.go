// internal/buffer/apply.go
package buffer

import (
	"unicode/utf8"

	"github.com/vishal2376/rio-editor/internal/action"
	"github.com/vishal2376/rio-editor/internal/types"
)

// Apply performs one edit action on the buffer. Every action is total:
// out-of-range targets clamp to buffer bounds and Apply never fails.
func (b *TextBuffer) Apply(act action.Action) {
	switch act.Kind {
	case action.InsertChar:
		b.deleteSelectionIfActive()
		// A raw newline would embed a line break inside a single line
		// element; it means a line split here.
		if act.Rune == '\n' {
			b.insertNewline()
			return
		}
		b.insertRune(act.Rune)
	case action.InsertNewline:
		b.deleteSelectionIfActive()
		b.insertNewline()
	case action.Backspace:
		if !b.deleteSelectionIfActive() {
			b.deleteBackward()
		}
	case action.Delete:
		if !b.deleteSelectionIfActive() {
			b.deleteForward()
		}
	case action.MoveCursor:
		b.clearSelection()
		b.moveCursor(act.Dir)
	case action.MoveCursorTo:
		b.clearSelection()
		b.cursor = b.clampPosition(types.Position{Line: act.Line, Col: act.Col})
	case action.SelectTo:
		b.selectTo(types.Position{Line: act.Line, Col: act.Col})
	case action.SelectAll:
		b.selectAll()
	}
}

// insertRune inserts r at the cursor; the cursor advances one column.
func (b *TextBuffer) insertRune(r rune) {
	b.cursor = b.clampPosition(b.cursor)
	line := b.lines[b.cursor.Line]
	offset := runeIndexToByteOffset(line, b.cursor.Col)

	encoded := make([]byte, utf8.RuneLen(r))
	utf8.EncodeRune(encoded, r)

	newLine := make([]byte, 0, len(line)+len(encoded))
	newLine = append(newLine, line[:offset]...)
	newLine = append(newLine, encoded...)
	newLine = append(newLine, line[offset:]...)
	b.lines[b.cursor.Line] = newLine

	b.cursor.Col++
	b.modified = true
}

// insertNewline splits the current line at the cursor; the cursor moves
// to column 0 of the new second line.
func (b *TextBuffer) insertNewline() {
	b.cursor = b.clampPosition(b.cursor)
	line := b.lines[b.cursor.Line]
	offset := runeIndexToByteOffset(line, b.cursor.Col)

	head := make([]byte, offset)
	copy(head, line[:offset])
	tail := make([]byte, len(line)-offset)
	copy(tail, line[offset:])

	b.lines[b.cursor.Line] = head
	b.lines = append(b.lines[:b.cursor.Line+1],
		append([][]byte{tail}, b.lines[b.cursor.Line+1:]...)...)

	b.cursor.Line++
	b.cursor.Col = 0
	b.modified = true
}

// deleteBackward removes the character before the cursor, or joins the
// current line onto the previous one when the cursor sits at column 0.
func (b *TextBuffer) deleteBackward() {
	b.cursor = b.clampPosition(b.cursor)
	if b.cursor.Col > 0 {
		line := b.lines[b.cursor.Line]
		start := runeIndexToByteOffset(line, b.cursor.Col-1)
		end := runeIndexToByteOffset(line, b.cursor.Col)
		b.lines[b.cursor.Line] = append(line[:start], line[end:]...)
		b.cursor.Col--
		b.modified = true
		return
	}
	if b.cursor.Line == 0 {
		return // Top of buffer, nothing to delete
	}
	prev := b.cursor.Line - 1
	joinCol := b.lineRuneCount(prev)
	b.lines[prev] = append(b.lines[prev], b.lines[b.cursor.Line]...)
	b.lines = append(b.lines[:b.cursor.Line], b.lines[b.cursor.Line+1:]...)
	b.cursor = types.Position{Line: prev, Col: joinCol}
	b.modified = true
}

// deleteForward is the mirror of deleteBackward: it removes the character
// under the cursor, or joins the next line when at end of line.
func (b *TextBuffer) deleteForward() {
	b.cursor = b.clampPosition(b.cursor)
	line := b.lines[b.cursor.Line]
	if b.cursor.Col < utf8.RuneCount(line) {
		start := runeIndexToByteOffset(line, b.cursor.Col)
		end := runeIndexToByteOffset(line, b.cursor.Col+1)
		b.lines[b.cursor.Line] = append(line[:start], line[end:]...)
		b.modified = true
		return
	}
	if b.cursor.Line >= len(b.lines)-1 {
		return // End of buffer
	}
	b.lines[b.cursor.Line] = append(line, b.lines[b.cursor.Line+1]...)
	b.lines = append(b.lines[:b.cursor.Line+1], b.lines[b.cursor.Line+2:]...)
	b.modified = true
}

// moveCursor moves one unit in the given direction. Horizontal moves
// clamp at line boundaries; vertical moves clamp the column to the
// target line's length when it is shorter.
func (b *TextBuffer) moveCursor(dir action.Direction) {
	switch dir {
	case action.Up:
		b.cursor.Line--
	case action.Down:
		b.cursor.Line++
	case action.Left:
		b.cursor.Col--
	case action.Right:
		b.cursor.Col++
	}
	b.cursor = b.clampPosition(b.cursor)
}

// selectTo extends the selection from the current anchor to target. When
// no selection is active the anchor is the current cursor position. The
// cursor follows the active end.
func (b *TextBuffer) selectTo(target types.Position) {
	target = b.clampPosition(target)
	if !b.selecting {
		b.selecting = true
		b.selAnchor = b.cursor
	}
	b.selHead = target
	b.cursor = target
}

// selectAll selects the whole document; cursor moves to the end.
func (b *TextBuffer) selectAll() {
	b.selecting = true
	b.selAnchor = types.Position{Line: 0, Col: 0}
	last := len(b.lines) - 1
	b.selHead = types.Position{Line: last, Col: b.lineRuneCount(last)}
	b.cursor = b.selHead
}

// deleteSelectionIfActive removes the selected range, placing the cursor
// at its start. Returns true when a selection was deleted.
func (b *TextBuffer) deleteSelectionIfActive() bool {
	start, end, ok := b.Selection()
	if !ok {
		b.clearSelection()
		return false
	}
	b.clearSelection()

	startLine := b.lines[start.Line]
	endLine := b.lines[end.Line]
	startOffset := runeIndexToByteOffset(startLine, start.Col)
	endOffset := runeIndexToByteOffset(endLine, end.Col)

	if start.Line == end.Line {
		b.lines[start.Line] = append(startLine[:startOffset], startLine[endOffset:]...)
	} else {
		b.lines[start.Line] = append(startLine[:startOffset], endLine[endOffset:]...)
		b.lines = append(b.lines[:start.Line+1], b.lines[end.Line+1:]...)
	}

	b.cursor = start
	b.modified = true
	return true
}
