// Package fileio is the asynchronous boundary between the reducer and the
// file system. Operations read or write whole files as UTF-8 text and
// always return a typed *Error instead of raising across the boundary.
package fileio

import (
	"context"
	"os"
	"unicode/utf8"

	"github.com/vishal2376/rio-editor/internal/logger"
)

// Load reads the full contents of path as text.
func Load(ctx context.Context, path string) (string, *Error) {
	if err := ctx.Err(); err != nil {
		return "", &Error{Kind: KindIO, Op: "load", Path: path, Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warnf("fileio: load %q failed: %v", path, err)
		return "", &Error{Kind: classify(err), Op: "load", Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		logger.Warnf("fileio: load %q failed: not valid UTF-8", path)
		return "", &Error{Kind: KindEncoding, Op: "load", Path: path}
	}
	logger.Debugf("fileio: loaded %q (%d bytes)", path, len(data))
	return string(data), nil
}

// Save writes text to path, overwriting any existing file.
func Save(ctx context.Context, path string, text string) *Error {
	if err := ctx.Err(); err != nil {
		return &Error{Kind: KindIO, Op: "save", Path: path, Err: err}
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		logger.Warnf("fileio: save %q failed: %v", path, err)
		return &Error{Kind: classify(err), Op: "save", Path: path, Err: err}
	}
	logger.Debugf("fileio: saved %q (%d bytes)", path, len(text))
	return nil
}
