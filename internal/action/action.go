// internal/action/action.go
package action

// Kind identifies one of the closed set of edit actions a buffer accepts.
type Kind int

const (
	Unknown Kind = iota

	// --- Text Manipulation ---
	InsertChar    // Requires Rune
	InsertNewline // Split current line at the cursor
	Backspace     // Delete char before cursor (or join with previous line)
	Delete        // Delete char under cursor (or join with next line)

	// --- Cursor Movement ---
	MoveCursor   // Requires Dir
	MoveCursorTo // Requires Line/Col; out-of-range targets clamp

	// --- Selection ---
	SelectTo // Extend selection from the current anchor to Line/Col
	SelectAll
)

// Direction is a one-unit cursor movement.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Action is a single atomic edit operation. It carries the payload for
// whichever Kind it holds; unused fields are zero. Every action is total
// over a buffer: applying it never fails, out-of-range targets clamp.
type Action struct {
	Kind Kind
	Rune rune      // InsertChar
	Dir  Direction // MoveCursor
	Line int       // MoveCursorTo, SelectTo
	Col  int       // MoveCursorTo, SelectTo
}

func (k Kind) String() string {
	switch k {
	case InsertChar:
		return "InsertChar"
	case InsertNewline:
		return "InsertNewline"
	case Backspace:
		return "Backspace"
	case Delete:
		return "Delete"
	case MoveCursor:
		return "MoveCursor"
	case MoveCursorTo:
		return "MoveCursorTo"
	case SelectTo:
		return "SelectTo"
	case SelectAll:
		return "SelectAll"
	default:
		return "Unknown"
	}
}
