// internal/fileio/dialog.go
package fileio

import "context"

// Dialog is the external file-picker collaborator. Implementations block
// until the user confirms a path or cancels; cancellation (and any
// failure to show the picker) is reported as an *Error of KindDialog.
type Dialog interface {
	// PickOpen asks the user for an existing file to open.
	PickOpen(ctx context.Context) (string, *Error)
	// PickSave asks the user for a destination path for save-as.
	PickSave(ctx context.Context) (string, *Error)
}

// Cancelled constructs the dialog-cancellation error for op.
func Cancelled(op string) *Error {
	return &Error{Kind: KindDialog, Op: op}
}
