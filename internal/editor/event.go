// internal/editor/event.go
package editor

import (
	"github.com/vishal2376/rio-editor/internal/action"
	"github.com/vishal2376/rio-editor/internal/fileio"
)

// EventKind identifies the kind of reducer event.
type EventKind int

const (
	EventUnknown EventKind = iota

	EventEdit          // User edit action on the buffer
	EventNew           // Reset to an empty untitled document
	EventOpenRequested // Open a file (direct path, or via picker when Path is empty)
	EventFileOpened    // Completion of a load/pick-open effect
	EventSaveRequested // Save current document (picker when untitled)
	EventFileSaved     // Completion of a save/pick-save effect
)

// Event is the single message type consumed by State.Update. User input
// and effect completions travel through the same serialized stream, so
// the buffer only ever has one writer.
type Event struct {
	Kind EventKind

	Action  action.Action // EventEdit
	Path    string        // EventOpenRequested (empty = use picker), EventFileOpened, EventFileSaved
	Content string        // EventFileOpened success payload
	Err     *fileio.Error // EventFileOpened / EventFileSaved failure payload

	// Gen is the generation of the effect that produced a completion
	// event. Completions whose generation no longer matches the state's
	// are stale and get discarded.
	Gen uint64
}

func (k EventKind) String() string {
	switch k {
	case EventEdit:
		return "Edit"
	case EventNew:
		return "New"
	case EventOpenRequested:
		return "OpenRequested"
	case EventFileOpened:
		return "FileOpened"
	case EventSaveRequested:
		return "SaveRequested"
	case EventFileSaved:
		return "FileSaved"
	default:
		return "Unknown"
	}
}
