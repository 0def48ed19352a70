// internal/fileio/errors.go
package fileio

import (
	"errors"
	"fmt"
	"os"
)

// ErrorKind is the platform-independent classification of a FileIO failure.
type ErrorKind int

const (
	KindIO         ErrorKind = iota // Unclassified file-system failure
	KindNotFound                    // Path does not exist
	KindPermission                  // Permission denied
	KindEncoding                    // Content is not valid UTF-8 text
	KindDialog                      // Picker cancelled or could not be shown
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermission:
		return "permission denied"
	case KindEncoding:
		return "invalid encoding"
	case KindDialog:
		return "dialog cancelled"
	default:
		return "I/O error"
	}
}

// Error is the typed failure value delivered across the async boundary.
// FileIO operations never panic or leak raw errors to the reducer; every
// failure is captured as one of these.
type Error struct {
	Kind ErrorKind
	Op   string // "load", "save", "pick_open", "pick_save"
	Path string // Empty for dialog failures
	Err  error  // Underlying cause, may be nil (e.g. cancellation)
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message is the short human-readable form shown in the status bar.
func (e *Error) Message() string {
	if e.Kind == KindDialog {
		return "cancelled"
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Kind)
	}
	return e.Kind.String()
}

// classify maps an underlying OS error to an ErrorKind.
func classify(err error) ErrorKind {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return KindNotFound
	case errors.Is(err, os.ErrPermission):
		return KindPermission
	default:
		return KindIO
	}
}
