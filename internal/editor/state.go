// Package editor holds the single-document editor state and the reducer
// that advances it. All mutation funnels through State.Update on one
// goroutine; asynchronous work is described by Effect values and executed
// elsewhere, completing as ordinary events on the same stream.
package editor

import (
	"github.com/vishal2376/rio-editor/internal/buffer"
	"github.com/vishal2376/rio-editor/internal/fileio"
	"github.com/vishal2376/rio-editor/internal/logger"
)

// Phase tracks whether an effect is in flight. Edits are never blocked
// by it; it only gates what the status line reports.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingEffect
)

// State aggregates the buffer, the document's file path and the last
// surfaced error. Path is empty exactly when the document has never been
// saved or opened to a concrete location (the "untitled" state).
type State struct {
	Buffer  *buffer.TextBuffer
	Path    string
	LastErr *fileio.Error

	phase   Phase
	pending EffectKind

	// gen stamps scheduled effects. New, OpenRequested and SaveRequested
	// bump it, so a completion arriving for an earlier document is
	// recognized as stale and discarded instead of clobbering the buffer.
	gen uint64
}

// NewState creates the startup state: one empty untitled buffer.
func NewState() *State {
	return &State{Buffer: buffer.New()}
}

// Phase returns the current reducer phase.
func (s *State) Phase() Phase {
	return s.phase
}

// PendingEffect returns the kind of the in-flight effect; only
// meaningful while Phase is PhaseAwaitingEffect.
func (s *State) PendingEffect() EffectKind {
	return s.pending
}

// Generation returns the current effect generation.
func (s *State) Generation() uint64 {
	return s.gen
}

// Update consumes one event and returns at most one effect to schedule.
// It runs synchronously and never suspends; file I/O and dialogs happen
// in the returned effect.
func (s *State) Update(ev Event) *Effect {
	switch ev.Kind {
	case EventEdit:
		// Edits apply immediately, even while an effect is in flight,
		// and a successful edit clears the surfaced error.
		s.Buffer.Apply(ev.Action)
		s.LastErr = nil
		return nil

	case EventNew:
		// Reset to an empty untitled document. An in-flight effect is
		// not cancelled; bumping the generation makes its completion
		// stale so it can't clobber the fresh buffer.
		s.Buffer = buffer.New()
		s.Path = ""
		s.LastErr = nil
		s.gen++
		s.phase = PhaseIdle
		logger.Debugf("editor: new document (gen %d)", s.gen)
		return nil

	case EventOpenRequested:
		s.gen++
		s.phase = PhaseAwaitingEffect
		if ev.Path != "" {
			s.pending = EffectLoadFile
			return &Effect{Kind: EffectLoadFile, Path: ev.Path, Gen: s.gen}
		}
		s.pending = EffectPickOpen
		return &Effect{Kind: EffectPickOpen, Gen: s.gen}

	case EventFileOpened:
		if ev.Gen != s.gen {
			logger.Debugf("editor: discarding stale FileOpened (gen %d, current %d)", ev.Gen, s.gen)
			return nil
		}
		s.phase = PhaseIdle
		if ev.Err != nil {
			s.LastErr = ev.Err
			logger.Infof("editor: open failed: %v", ev.Err)
			return nil
		}
		s.Path = ev.Path
		s.Buffer = buffer.WithContent(ev.Content)
		s.LastErr = nil
		logger.Infof("editor: opened %q (%d lines)", ev.Path, s.Buffer.LineCount())
		return nil

	case EventSaveRequested:
		// Snapshot text and path now; the effect owns the copy and later
		// edits cannot race with the write.
		text := s.Buffer.Text()
		s.gen++
		s.phase = PhaseAwaitingEffect
		if s.Path == "" {
			s.pending = EffectPickSave
			return &Effect{Kind: EffectPickSave, Text: text, Gen: s.gen}
		}
		s.pending = EffectSaveFile
		return &Effect{Kind: EffectSaveFile, Path: s.Path, Text: text, Gen: s.gen}

	case EventFileSaved:
		if ev.Gen != s.gen {
			logger.Debugf("editor: discarding stale FileSaved (gen %d, current %d)", ev.Gen, s.gen)
			return nil
		}
		s.phase = PhaseIdle
		if ev.Err != nil {
			s.LastErr = ev.Err
			logger.Infof("editor: save failed: %v", ev.Err)
			return nil
		}
		s.Path = ev.Path
		s.LastErr = nil
		s.Buffer.ClearModified()
		logger.Infof("editor: saved %q", ev.Path)
		return nil
	}

	logger.Warnf("editor: ignoring unknown event kind %v", ev.Kind)
	return nil
}
