// internal/editor/scheduler.go
package editor

import (
	"context"
	"sync"

	"github.com/vishal2376/rio-editor/internal/fileio"
	"github.com/vishal2376/rio-editor/internal/logger"
)

// Scheduler runs pending effects off the reducer path and feeds each
// terminal result back as an ordinary event on the serialized stream.
// Every effect produces exactly one completion event; failures are typed
// values, never panics across the goroutine boundary.
type Scheduler struct {
	dialog fileio.Dialog
	events chan<- Event
	wg     sync.WaitGroup
}

// NewScheduler creates a scheduler posting completions to events.
func NewScheduler(dialog fileio.Dialog, events chan<- Event) *Scheduler {
	return &Scheduler{dialog: dialog, events: events}
}

// Schedule launches eff on its own goroutine. A nil effect is a no-op.
func (sc *Scheduler) Schedule(ctx context.Context, eff *Effect) {
	if eff == nil {
		return
	}
	logger.Debugf("scheduler: running %v (gen %d)", eff.Kind, eff.Gen)
	sc.wg.Add(1)
	go func(eff Effect) {
		defer sc.wg.Done()
		sc.post(ctx, sc.run(ctx, eff))
	}(*eff)
}

// Wait blocks until all in-flight effects have completed.
func (sc *Scheduler) Wait() {
	sc.wg.Wait()
}

// run executes one effect to its terminal result event.
func (sc *Scheduler) run(ctx context.Context, eff Effect) Event {
	switch eff.Kind {
	case EffectLoadFile:
		content, err := fileio.Load(ctx, eff.Path)
		return Event{Kind: EventFileOpened, Path: eff.Path, Content: content, Err: err, Gen: eff.Gen}

	case EffectPickOpen:
		path, err := sc.dialog.PickOpen(ctx)
		if err != nil {
			return Event{Kind: EventFileOpened, Err: err, Gen: eff.Gen}
		}
		content, lerr := fileio.Load(ctx, path)
		return Event{Kind: EventFileOpened, Path: path, Content: content, Err: lerr, Gen: eff.Gen}

	case EffectPickSave:
		path, err := sc.dialog.PickSave(ctx)
		if err != nil {
			return Event{Kind: EventFileSaved, Err: err, Gen: eff.Gen}
		}
		serr := fileio.Save(ctx, path, eff.Text)
		return Event{Kind: EventFileSaved, Path: path, Err: serr, Gen: eff.Gen}

	case EffectSaveFile:
		err := fileio.Save(ctx, eff.Path, eff.Text)
		return Event{Kind: EventFileSaved, Path: eff.Path, Err: err, Gen: eff.Gen}
	}

	logger.Warnf("scheduler: unknown effect kind %v", eff.Kind)
	return Event{Kind: EventUnknown, Gen: eff.Gen}
}

// post delivers the completion unless the application is shutting down.
func (sc *Scheduler) post(ctx context.Context, ev Event) {
	select {
	case sc.events <- ev:
	case <-ctx.Done():
		logger.Debugf("scheduler: dropping %v completion, context done", ev.Kind)
	}
}
