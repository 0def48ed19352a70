package app

import (
	"context"
	"testing"
	"time"
)

func TestHLWorkerProducesResult(t *testing.T) {
	w := newHLWorker()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redrawn := make(chan struct{}, 4)
	go w.run(ctx, func() { redrawn <- struct{}{} })

	w.request("package main\n\nfunc main() {}\n", "main.go")

	select {
	case <-redrawn:
	case <-time.After(2 * time.Second):
		t.Fatal("worker never signalled a result")
	}

	res, fresh := w.latest()
	if !fresh {
		t.Fatal("expected a fresh result")
	}
	if len(res) == 0 {
		t.Fatal("expected highlight spans for Go source")
	}
	if _, fresh := w.latest(); fresh {
		t.Error("second latest() call should not report fresh")
	}
}

func TestHLWorkerCoalescesRequests(t *testing.T) {
	w := newHLWorker()

	// Worker not running: the second request must replace the first
	// instead of blocking.
	w.request("package a\n", "a.go")
	w.request("package b\n", "b.go")

	select {
	case req := <-w.requests:
		if req.pathHint != "b.go" {
			t.Errorf("queued request = %q, want the latest snapshot", req.pathHint)
		}
	default:
		t.Fatal("no request queued")
	}
}
