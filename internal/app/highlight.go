// internal/app/highlight.go
package app

import (
	"context"
	"sync"

	"github.com/vishal2376/rio-editor/internal/highlight"
	"github.com/vishal2376/rio-editor/internal/logger"
)

// hlRequest is one snapshot of buffer content to highlight.
type hlRequest struct {
	text     string
	pathHint string
}

// hlWorker recomputes syntax spans off the loop goroutine. Requests
// coalesce: only the most recent snapshot is parsed, earlier ones are
// dropped. Results are display-only and never feed back into the
// reducer.
type hlWorker struct {
	highlighter *highlight.Highlighter
	requests    chan hlRequest

	mu     sync.Mutex
	result highlight.Result
	fresh  bool
}

func newHLWorker() *hlWorker {
	return &hlWorker{
		highlighter: highlight.New(),
		requests:    make(chan hlRequest, 1),
	}
}

// request queues a snapshot, replacing any not-yet-started one.
func (w *hlWorker) request(text, pathHint string) {
	req := hlRequest{text: text, pathHint: pathHint}
	for {
		select {
		case w.requests <- req:
			return
		default:
			select {
			case <-w.requests: // Drop the superseded snapshot
			default:
			}
		}
	}
}

// latest returns the newest computed result. fresh is true only the
// first time a given result is observed.
func (w *hlWorker) latest() (highlight.Result, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	res, fresh := w.result, w.fresh
	w.fresh = false
	return res, fresh
}

// run is the worker goroutine body.
func (w *hlWorker) run(ctx context.Context, redraw func()) {
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-w.requests:
			res, err := w.highlighter.Highlight(ctx, []byte(req.text), req.pathHint)
			if err != nil {
				logger.Warnf("highlight worker: %v", err)
				continue
			}
			w.mu.Lock()
			w.result = res
			w.fresh = true
			w.mu.Unlock()
			redraw()
		}
	}
}
