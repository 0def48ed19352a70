// internal/buffer/buffer.go
package buffer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vishal2376/rio-editor/internal/types"
)

// TextBuffer owns the document text plus cursor and selection state.
// Lines are stored as byte slices; columns are rune indices. The buffer
// always holds at least one line (an empty document is one empty line),
// and the cursor always satisfies:
//
//	0 <= cursor.Line < len(lines)
//	0 <= cursor.Col  <= runeCount(lines[cursor.Line])
//
// Mutation happens exclusively through Apply.
type TextBuffer struct {
	lines  [][]byte
	cursor types.Position

	selecting bool
	selAnchor types.Position // fixed end of the selection
	selHead   types.Position // active end, follows the cursor

	modified bool
}

// New creates an empty buffer: a single empty line, cursor at (0,0).
func New() *TextBuffer {
	return &TextBuffer{
		lines: [][]byte{[]byte("")},
	}
}

// WithContent creates a buffer from initial content, cursor at (0,0).
// Content is split on "\n"; a trailing newline therefore produces a
// final empty line, and Text() reproduces the input byte for byte.
func WithContent(content string) *TextBuffer {
	parts := strings.Split(content, "\n")
	lines := make([][]byte, len(parts))
	for i, p := range parts {
		lines[i] = []byte(p)
	}
	return &TextBuffer{lines: lines}
}

// Text joins the lines with "\n" separators. Used for save and display.
func (b *TextBuffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		sb.Write(line)
		if i < len(b.lines)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// CursorPosition returns the 0-based cursor position. The display layer
// is responsible for any 1-based adjustment.
func (b *TextBuffer) CursorPosition() types.Position {
	return b.cursor
}

// LineCount returns the number of lines (always >= 1).
func (b *TextBuffer) LineCount() int {
	return len(b.lines)
}

// Line returns the raw bytes of the line at index.
func (b *TextBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(b.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(b.lines)-1)
	}
	return b.lines[index], nil
}

// IsModified reports whether the buffer changed since creation.
func (b *TextBuffer) IsModified() bool {
	return b.modified
}

// ClearModified resets the modified flag, e.g. after a successful save.
func (b *TextBuffer) ClearModified() {
	b.modified = false
}

// Selection returns the selection bounds in document order and whether a
// selection is active. An empty selection (anchor == head) reports inactive.
func (b *TextBuffer) Selection() (start, end types.Position, ok bool) {
	if !b.selecting || b.selAnchor == b.selHead {
		return types.Position{}, types.Position{}, false
	}
	if b.selHead.Before(b.selAnchor) {
		return b.selHead, b.selAnchor, true
	}
	return b.selAnchor, b.selHead, true
}

// SelectedText returns the text covered by the active selection, or "".
func (b *TextBuffer) SelectedText() string {
	start, end, ok := b.Selection()
	if !ok {
		return ""
	}
	if start.Line == end.Line {
		line := b.lines[start.Line]
		return string(line[runeIndexToByteOffset(line, start.Col):runeIndexToByteOffset(line, end.Col)])
	}
	var sb strings.Builder
	first := b.lines[start.Line]
	sb.Write(first[runeIndexToByteOffset(first, start.Col):])
	for i := start.Line + 1; i < end.Line; i++ {
		sb.WriteByte('\n')
		sb.Write(b.lines[i])
	}
	last := b.lines[end.Line]
	sb.WriteByte('\n')
	sb.Write(last[:runeIndexToByteOffset(last, end.Col)])
	return sb.String()
}

// clearSelection drops any active selection.
func (b *TextBuffer) clearSelection() {
	b.selecting = false
	b.selAnchor = types.Position{}
	b.selHead = types.Position{}
}

// clampPosition clamps pos to valid buffer bounds. Col may equal the
// line's rune count (cursor past the last character).
func (b *TextBuffer) clampPosition(pos types.Position) types.Position {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(b.lines) {
		pos.Line = len(b.lines) - 1
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if max := utf8.RuneCount(b.lines[pos.Line]); pos.Col > max {
		pos.Col = max
	}
	return pos
}

// lineRuneCount returns the rune length of line index, 0 when out of range.
func (b *TextBuffer) lineRuneCount(index int) int {
	if index < 0 || index >= len(b.lines) {
		return 0
	}
	return utf8.RuneCount(b.lines[index])
}

// --- rune/byte offset helpers ---

// runeIndexToByteOffset converts a rune index to a byte offset within line,
// clamping past-the-end indices to len(line).
func runeIndexToByteOffset(line []byte, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	byteOffset := 0
	currentRune := 0
	for byteOffset < len(line) {
		if currentRune == runeIndex {
			return byteOffset
		}
		_, size := utf8.DecodeRune(line[byteOffset:])
		byteOffset += size
		currentRune++
	}
	return len(line)
}
