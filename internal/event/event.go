// internal/event/event.go
package event

import (
	"github.com/vishal2376/rio-editor/internal/types"
)

// Type identifies the kind of notification.
type Type int

// Notification types dispatched on the bus. These are observations of
// state changes (status bar, highlighting refresh), not reducer input.
const (
	TypeUnknown Type = iota

	TypeBufferModified // Buffer content changed (insert/delete)
	TypeCursorMoved    // Cursor position changed
	TypeFileLoaded     // A file was opened into the buffer
	TypeFileSaved      // The buffer was written to disk
	TypeErrorOccurred  // A FileIO or dialog failure was surfaced

	TypeAppReady // Application fully initialized
	TypeAppQuit  // Application about to terminate
)

// Event is the structure passed through the bus.
type Event struct {
	Type Type
	Data interface{}
}

// --- Payload structures ---

// BufferModifiedData accompanies TypeBufferModified.
type BufferModifiedData struct{}

// CursorMovedData carries the new cursor position.
type CursorMovedData struct {
	NewPosition types.Position
}

// FileLoadedData carries the path that was opened.
type FileLoadedData struct {
	FilePath string
}

// FileSavedData carries the path that was written.
type FileSavedData struct {
	FilePath string
}

// ErrorOccurredData carries the human-readable error message.
type ErrorOccurredData struct {
	Message string
}
