package buffer

import (
	"testing"

	"github.com/vishal2376/rio-editor/internal/action"
	"github.com/vishal2376/rio-editor/internal/types"
)

func insert(r rune) action.Action   { return action.Action{Kind: action.InsertChar, Rune: r} }
func moveTo(l, c int) action.Action { return action.Action{Kind: action.MoveCursorTo, Line: l, Col: c} }

func TestNewBufferIsSingleEmptyLine(t *testing.T) {
	b := New()
	if got := b.LineCount(); got != 1 {
		t.Fatalf("LineCount: got %d, want 1", got)
	}
	if got := b.Text(); got != "" {
		t.Fatalf("Text: got %q, want \"\"", got)
	}
	if got := b.CursorPosition(); got != (types.Position{}) {
		t.Fatalf("cursor: got %v, want (0,0)", got)
	}
}

func TestInsertCharsAdvancesCursor(t *testing.T) {
	b := New()
	b.Apply(insert('h'))
	b.Apply(insert('i'))
	if got := b.Text(); got != "hi" {
		t.Fatalf("Text: got %q, want %q", got, "hi")
	}
	if got := b.CursorPosition(); got != (types.Position{Line: 0, Col: 2}) {
		t.Fatalf("cursor: got %v, want (0,2)", got)
	}
}

func TestInsertBackspaceInverse(t *testing.T) {
	// Inserting a rune then backspacing at the resulting cursor must
	// restore the pre-insert text and cursor position.
	cases := []struct {
		name    string
		content string
		line    int
		col     int
		r       rune
	}{
		{"empty buffer", "", 0, 0, 'x'},
		{"middle of line", "hello", 0, 2, 'Z'},
		{"end of line", "ab\ncd", 1, 2, 'q'},
		{"multibyte rune", "héllo", 0, 3, 'é'},
		{"newline insert", "ab\ncd", 0, 1, '\n'},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := WithContent(tc.content)
			b.Apply(moveTo(tc.line, tc.col))
			wantText := b.Text()
			wantCursor := b.CursorPosition()

			if tc.r == '\n' {
				b.Apply(action.Action{Kind: action.InsertNewline})
			} else {
				b.Apply(insert(tc.r))
			}
			b.Apply(action.Action{Kind: action.Backspace})

			if got := b.Text(); got != wantText {
				t.Errorf("text: got %q, want %q", got, wantText)
			}
			if got := b.CursorPosition(); got != wantCursor {
				t.Errorf("cursor: got %v, want %v", got, wantCursor)
			}
		})
	}
}

func TestWithContentTextRoundTrip(t *testing.T) {
	// WithContent splits on "\n", so Text reproduces the input exactly.
	// A trailing newline is preserved as a final empty line.
	cases := []string{
		"",
		"a",
		"a\nb",
		"a\nb\n", // final empty line preserved
		"\n\n",
		"héllo wörld\n日本語",
	}
	for _, content := range cases {
		if got := WithContent(content).Text(); got != content {
			t.Errorf("round trip %q: got %q", content, got)
		}
	}
	if got := WithContent("a\nb\n").LineCount(); got != 3 {
		t.Errorf("LineCount of %q: got %d, want 3", "a\nb\n", got)
	}
}

func TestInsertNewlineSplitsLine(t *testing.T) {
	// Splitting line 0 "ab" at column 2 yields "ab" and "", producing
	// lines ["ab","","cd"].
	b := WithContent("ab\ncd")
	b.Apply(moveTo(0, 2))
	b.Apply(action.Action{Kind: action.InsertNewline})
	if got := b.Text(); got != "ab\n\ncd" {
		t.Fatalf("Text: got %q, want %q", got, "ab\n\ncd")
	}
	if got := b.CursorPosition(); got != (types.Position{Line: 1, Col: 0}) {
		t.Fatalf("cursor: got %v, want (1,0)", got)
	}
}

func TestMoveCursorToClamps(t *testing.T) {
	b := WithContent("ab\ncdef")
	cases := []struct {
		line, col int
		want      types.Position
	}{
		{-5, -5, types.Position{Line: 0, Col: 0}},
		{0, 99, types.Position{Line: 0, Col: 2}},
		{99, 1, types.Position{Line: 1, Col: 1}},
		{99, 99, types.Position{Line: 1, Col: 4}},
		{1, 4, types.Position{Line: 1, Col: 4}}, // col == line length is valid
	}
	for _, tc := range cases {
		b.Apply(moveTo(tc.line, tc.col))
		if got := b.CursorPosition(); got != tc.want {
			t.Errorf("MoveCursorTo(%d,%d): got %v, want %v", tc.line, tc.col, got, tc.want)
		}
	}
}

func TestMoveCursorClampsAtBoundaries(t *testing.T) {
	b := WithContent("ab\ncdef")

	// Left at (0,0) stays put; horizontal moves do not wrap.
	b.Apply(action.Action{Kind: action.MoveCursor, Dir: action.Left})
	if got := b.CursorPosition(); got != (types.Position{}) {
		t.Fatalf("Left at origin: got %v, want (0,0)", got)
	}

	// Down from a long column clamps to the shorter line's length.
	b.Apply(moveTo(1, 4))
	b.Apply(action.Action{Kind: action.MoveCursor, Dir: action.Up})
	if got := b.CursorPosition(); got != (types.Position{Line: 0, Col: 2}) {
		t.Fatalf("Up clamps col: got %v, want (0,2)", got)
	}

	// Down at the last line stays on it.
	b.Apply(moveTo(1, 0))
	b.Apply(action.Action{Kind: action.MoveCursor, Dir: action.Down})
	if got := b.CursorPosition(); got != (types.Position{Line: 1, Col: 0}) {
		t.Fatalf("Down at last line: got %v, want (1,0)", got)
	}
}

func TestBackspaceJoinsLines(t *testing.T) {
	b := WithContent("ab\ncd")
	b.Apply(moveTo(1, 0))
	b.Apply(action.Action{Kind: action.Backspace})
	if got := b.Text(); got != "abcd" {
		t.Fatalf("Text: got %q, want %q", got, "abcd")
	}
	if got := b.CursorPosition(); got != (types.Position{Line: 0, Col: 2}) {
		t.Fatalf("cursor at join point: got %v, want (0,2)", got)
	}
}

func TestDeleteJoinsNextLine(t *testing.T) {
	b := WithContent("ab\ncd")
	b.Apply(moveTo(0, 2))
	b.Apply(action.Action{Kind: action.Delete})
	if got := b.Text(); got != "abcd" {
		t.Fatalf("Text: got %q, want %q", got, "abcd")
	}
	if got := b.CursorPosition(); got != (types.Position{Line: 0, Col: 2}) {
		t.Fatalf("cursor: got %v, want (0,2)", got)
	}
}

func TestDeleteAtEndOfBufferIsNoop(t *testing.T) {
	b := WithContent("ab")
	b.Apply(moveTo(0, 2))
	b.Apply(action.Action{Kind: action.Delete})
	if got := b.Text(); got != "ab" {
		t.Fatalf("Text: got %q, want %q", got, "ab")
	}
}

func TestSelectToAndSelectedText(t *testing.T) {
	b := WithContent("hello\nworld")
	b.Apply(moveTo(0, 1))
	b.Apply(action.Action{Kind: action.SelectTo, Line: 1, Col: 3})

	start, end, ok := b.Selection()
	if !ok {
		t.Fatal("expected active selection")
	}
	if start != (types.Position{Line: 0, Col: 1}) || end != (types.Position{Line: 1, Col: 3}) {
		t.Fatalf("selection: got %v-%v", start, end)
	}
	if got := b.SelectedText(); got != "ello\nwor" {
		t.Fatalf("SelectedText: got %q, want %q", got, "ello\nwor")
	}
	// Cursor marks the active end.
	if got := b.CursorPosition(); got != (types.Position{Line: 1, Col: 3}) {
		t.Fatalf("cursor: got %v, want (1,3)", got)
	}
}

func TestSelectAll(t *testing.T) {
	b := WithContent("ab\ncd")
	b.Apply(action.Action{Kind: action.SelectAll})
	if got := b.SelectedText(); got != "ab\ncd" {
		t.Fatalf("SelectedText: got %q, want %q", got, "ab\ncd")
	}
}

func TestTypingReplacesSelection(t *testing.T) {
	b := WithContent("hello")
	b.Apply(moveTo(0, 1))
	b.Apply(action.Action{Kind: action.SelectTo, Line: 0, Col: 4})
	b.Apply(insert('X'))
	if got := b.Text(); got != "hXo" {
		t.Fatalf("Text: got %q, want %q", got, "hXo")
	}
	if _, _, ok := b.Selection(); ok {
		t.Fatal("selection should be cleared after typing")
	}
}

func TestBackspaceDeletesSelection(t *testing.T) {
	b := WithContent("hello\nworld")
	b.Apply(moveTo(0, 2))
	b.Apply(action.Action{Kind: action.SelectTo, Line: 1, Col: 2})
	b.Apply(action.Action{Kind: action.Backspace})
	if got := b.Text(); got != "herld" {
		t.Fatalf("Text: got %q, want %q", got, "herld")
	}
	if got := b.CursorPosition(); got != (types.Position{Line: 0, Col: 2}) {
		t.Fatalf("cursor: got %v, want (0,2)", got)
	}
}

func TestMovementClearsSelection(t *testing.T) {
	b := WithContent("abc")
	b.Apply(action.Action{Kind: action.SelectAll})
	b.Apply(action.Action{Kind: action.MoveCursor, Dir: action.Left})
	if _, _, ok := b.Selection(); ok {
		t.Fatal("selection should be cleared after cursor move")
	}
}

func TestModifiedFlag(t *testing.T) {
	b := WithContent("ab")
	if b.IsModified() {
		t.Fatal("fresh buffer should not be modified")
	}
	b.Apply(action.Action{Kind: action.MoveCursor, Dir: action.Right})
	if b.IsModified() {
		t.Fatal("cursor movement should not set modified")
	}
	b.Apply(insert('x'))
	if !b.IsModified() {
		t.Fatal("insert should set modified")
	}
	b.ClearModified()
	if b.IsModified() {
		t.Fatal("ClearModified should reset the flag")
	}
}

func TestInsertCharNewlineRuneSplitsLine(t *testing.T) {
	b := WithContent("ab")
	b.Apply(action.Action{Kind: action.MoveCursorTo, Line: 0, Col: 1})
	b.Apply(insert('\n'))

	if got := b.LineCount(); got != 2 {
		t.Fatalf("LineCount = %d, want 2", got)
	}
	if got := b.Text(); got != "a\nb" {
		t.Errorf("Text = %q, want %q", got, "a\nb")
	}
	if cur := b.CursorPosition(); cur.Line != 1 || cur.Col != 0 {
		t.Errorf("cursor = %v, want (1,0)", cur)
	}
	// No line element may contain an embedded newline.
	for i := 0; i < b.LineCount(); i++ {
		line, err := b.Line(i)
		if err != nil {
			t.Fatalf("Line(%d): %v", i, err)
		}
		for _, c := range line {
			if c == '\n' {
				t.Fatalf("line %d contains a raw newline: %q", i, line)
			}
		}
	}
}
