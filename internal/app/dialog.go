// internal/app/dialog.go
package app

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/vishal2376/rio-editor/internal/fileio"
	"github.com/vishal2376/rio-editor/internal/logger"
)

// promptRequest asks the main loop to run a status-line prompt. A
// scheduler goroutine blocks on reply until the user confirms a path or
// cancels.
type promptRequest struct {
	label string
	op    string
	reply chan promptReply

	input string
}

type promptReply struct {
	path      string
	cancelled bool
}

// promptDialog implements fileio.Dialog on top of the status-line
// prompt. Each Pick call posts a request to the main loop and waits for
// the user's answer; context cancellation (shutdown) reads as cancel.
type promptDialog struct {
	requests chan<- *promptRequest
}

func (d *promptDialog) PickOpen(ctx context.Context) (string, *fileio.Error) {
	return d.pick(ctx, "Open: ", "open")
}

func (d *promptDialog) PickSave(ctx context.Context) (string, *fileio.Error) {
	return d.pick(ctx, "Save as: ", "save")
}

func (d *promptDialog) pick(ctx context.Context, label, op string) (string, *fileio.Error) {
	req := &promptRequest{label: label, op: op, reply: make(chan promptReply, 1)}

	select {
	case d.requests <- req:
	case <-ctx.Done():
		return "", fileio.Cancelled(op)
	}

	select {
	case rep := <-req.reply:
		if rep.cancelled || rep.path == "" {
			return "", fileio.Cancelled(op)
		}
		return rep.path, nil
	case <-ctx.Done():
		return "", fileio.Cancelled(op)
	}
}

// beginPrompt activates a prompt on the status line. A newer request
// supersedes an active one: the old effect's generation is stale by
// then, so its prompt is answered with cancel.
func (a *App) beginPrompt(req *promptRequest) {
	if a.prompt != nil {
		logger.Debugf("app: superseding active %q prompt", a.prompt.op)
		a.prompt.reply <- promptReply{cancelled: true}
	}
	a.prompt = req
	a.statusBar.SetPrompt(req.label, "")
	a.requestRedraw()
}

// handlePromptKey routes key input into the active prompt.
func (a *App) handlePromptKey(ev *tcell.EventKey) {
	req := a.prompt

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlQ:
		a.endPrompt(promptReply{cancelled: true})
		return
	case tcell.KeyEnter:
		a.endPrompt(promptReply{path: req.input})
		return
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(req.input) > 0 {
			runes := []rune(req.input)
			req.input = string(runes[:len(runes)-1])
		}
	case tcell.KeyRune:
		req.input += string(ev.Rune())
	default:
		return
	}

	a.statusBar.SetPrompt(req.label, req.input)
	a.requestRedraw()
}

// endPrompt answers the waiting scheduler goroutine and restores normal
// key handling.
func (a *App) endPrompt(rep promptReply) {
	a.prompt.reply <- rep
	a.prompt = nil
	a.statusBar.ClearPrompt()
	a.requestRedraw()
}
