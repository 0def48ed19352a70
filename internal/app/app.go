// Package app owns the main loop. Every state change funnels through a
// single goroutine: terminal input and effect completions are merged
// onto one serialized event stream, the reducer consumes it, and the
// resulting effects run on the scheduler's goroutines.
package app

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vishal2376/rio-editor/internal/clipboard"
	"github.com/vishal2376/rio-editor/internal/config"
	"github.com/vishal2376/rio-editor/internal/editor"
	"github.com/vishal2376/rio-editor/internal/event"
	"github.com/vishal2376/rio-editor/internal/highlight"
	"github.com/vishal2376/rio-editor/internal/logger"
	"github.com/vishal2376/rio-editor/internal/statusbar"
	"github.com/vishal2376/rio-editor/internal/theme"
	"github.com/vishal2376/rio-editor/internal/tui"
)

// App encapsulates the core components and the main loop.
type App struct {
	cfg        *config.Config
	tuiManager *tui.TUI
	state      *editor.State
	scheduler  *editor.Scheduler
	statusBar  *statusbar.StatusBar
	bus        *event.Manager
	register   *clipboard.Register

	// events is the serialized reducer stream. Key handling and effect
	// completions both post here; only the main loop reads it.
	events chan editor.Event

	// termEvents carries raw tcell events from the poll goroutine into
	// the main loop, so key translation runs on the loop goroutine too.
	termEvents chan tcell.Event

	// promptReqs delivers dialog requests from scheduler goroutines to
	// the main loop, which drives the status-line prompt.
	promptReqs chan *promptRequest
	prompt     *promptRequest

	hl *hlWorker

	viewportY int // Topmost visible buffer line
	viewportX int // Leftmost visible visual column
	syntax    highlight.Result

	redrawRequest chan struct{}
	quit          chan struct{}
}

// New creates and wires an application instance. initialPath, when not
// empty, is opened on startup (falling back to the configured default
// file).
func New(cfg *config.Config, initialPath string) (*App, error) {
	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		state:         editor.NewState(),
		statusBar:     statusbar.New(),
		bus:           event.NewManager(),
		register:      clipboard.NewRegister(cfg.Editor.SystemClipboard),
		events:        make(chan editor.Event, 64),
		termEvents:    make(chan tcell.Event, 16),
		promptReqs:    make(chan *promptRequest, 4),
		redrawRequest: make(chan struct{}, 1),
		quit:          make(chan struct{}),
	}
	a.scheduler = editor.NewScheduler(&promptDialog{requests: a.promptReqs}, a.events)
	a.hl = newHLWorker()

	a.bus.Subscribe(event.TypeFileLoaded, a.handleFileLoaded)
	a.bus.Subscribe(event.TypeBufferModified, a.handleBufferModified)
	a.bus.Subscribe(event.TypeErrorOccurred, a.handleErrorOccurred)

	if initialPath == "" {
		initialPath = cfg.Editor.DefaultFile
	}
	if initialPath != "" {
		a.events <- editor.Event{Kind: editor.EventOpenRequested, Path: initialPath}
	}

	return a, nil
}

// Run starts the poll and highlight goroutines and blocks in the main
// loop until the user quits.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go a.pollLoop()
	go a.hl.run(ctx, a.requestRedraw)

	a.bus.Dispatch(event.TypeAppReady, nil)
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.bus.Dispatch(event.TypeAppQuit, nil)
			if a.state.Buffer.IsModified() {
				logger.Warnf("app: exiting with unsaved changes")
			}
			cancel()
			a.scheduler.Wait()
			logger.Infof("app: exiting")
			return nil

		case tev := <-a.termEvents:
			a.handleTerminalEvent(ctx, tev)

		case ev := <-a.events:
			a.processEvent(ctx, ev)

		case req := <-a.promptReqs:
			a.beginPrompt(req)

		case <-a.redrawRequest:
			a.draw()
		}
	}
}

// pollLoop forwards tcell events to the main loop. It exits when the
// screen is finalized (PollEvent returns nil).
func (a *App) pollLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.termEvents <- ev:
		case <-a.quit:
			return
		}
	}
}

// handleTerminalEvent translates one tcell event. Key events become
// reducer events (or prompt input while a prompt is active).
func (a *App) handleTerminalEvent(ctx context.Context, tev tcell.Event) {
	switch ev := tev.(type) {
	case *tcell.EventResize:
		a.tuiManager.GetScreen().Sync()
		a.requestRedraw()
	case *tcell.EventKey:
		if a.prompt != nil {
			a.handlePromptKey(ev)
			return
		}
		a.handleEditorKey(ctx, ev)
	}
}

// processEvent feeds one event through the reducer, schedules any
// resulting effect and publishes bus notifications for observers.
func (a *App) processEvent(ctx context.Context, ev editor.Event) {
	prevPath := a.state.Path
	prevCursor := a.state.Buffer.CursorPosition()

	eff := a.state.Update(ev)
	a.scheduler.Schedule(ctx, eff)

	switch ev.Kind {
	case editor.EventEdit:
		a.bus.Dispatch(event.TypeBufferModified, event.BufferModifiedData{})
		if cur := a.state.Buffer.CursorPosition(); cur != prevCursor {
			a.bus.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: cur})
		}
	case editor.EventFileOpened:
		if a.state.LastErr == nil && (ev.Gen == a.state.Generation() || a.state.Path != prevPath) {
			a.bus.Dispatch(event.TypeFileLoaded, event.FileLoadedData{FilePath: a.state.Path})
		}
	case editor.EventFileSaved:
		if a.state.LastErr == nil {
			a.bus.Dispatch(event.TypeFileSaved, event.FileSavedData{FilePath: a.state.Path})
		}
	case editor.EventNew:
		a.viewportY, a.viewportX = 0, 0
		a.syntax = nil
	}

	if a.state.LastErr != nil {
		a.bus.Dispatch(event.TypeErrorOccurred, event.ErrorOccurredData{Message: a.state.LastErr.Message()})
	}
	a.requestRedraw()
}

// --- Bus handlers ---

func (a *App) handleFileLoaded(e event.Event) bool {
	a.viewportY, a.viewportX = 0, 0
	a.syntax = nil
	a.requestHighlight()
	return false
}

func (a *App) handleBufferModified(e event.Event) bool {
	a.requestHighlight()
	return false
}

func (a *App) handleErrorOccurred(e event.Event) bool {
	if data, ok := e.Data.(event.ErrorOccurredData); ok {
		logger.Infof("app: surfaced error: %s", data.Message)
	}
	return false
}

// requestHighlight asks the worker to recompute syntax spans for the
// current buffer content. The worker keeps only the latest request.
func (a *App) requestHighlight() {
	pathHint := a.state.Path
	if !highlight.Supported(pathHint) {
		a.syntax = nil
		return
	}
	a.hl.request(a.state.Buffer.Text(), pathHint)
}

// --- Drawing ---

// draw redraws every component from current state.
func (a *App) draw() {
	a.scrollToCursor()

	if res, ok := a.hl.latest(); ok {
		a.syntax = res
	}

	a.statusBar.SetFileInfo(a.state.Path, a.state.Buffer.IsModified())
	a.statusBar.SetCursorInfo(a.state.Buffer.CursorPosition())
	a.statusBar.SetAwaitingIO(a.state.Phase() == editor.PhaseAwaitingEffect)
	if a.state.LastErr != nil {
		a.statusBar.SetError(a.state.LastErr.Message())
	} else {
		a.statusBar.ClearError()
	}

	activeTheme := theme.Current()
	width, height := a.tuiManager.Size()

	frame := tui.Frame{
		Buffer:          a.state.Buffer,
		ViewportY:       a.viewportY,
		ViewportX:       a.viewportX,
		Syntax:          a.syntax,
		Theme:           activeTheme,
		TabWidth:        a.cfg.Editor.TabWidth,
		StatusBarHeight: a.cfg.Editor.StatusBarHeight,
	}

	a.tuiManager.Clear()
	a.tuiManager.DrawBuffer(frame)
	a.statusBar.Draw(a.tuiManager.GetScreen(), width, height, activeTheme)
	if a.prompt != nil {
		a.tuiManager.GetScreen().HideCursor()
	} else {
		a.tuiManager.DrawCursor(frame)
	}
	a.tuiManager.Show()
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // A redraw is already pending
	}
}

func (a *App) signalQuit() {
	select {
	case <-a.quit:
	default:
		close(a.quit)
	}
}
