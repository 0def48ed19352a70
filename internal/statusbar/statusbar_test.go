package statusbar

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/vishal2376/rio-editor/internal/theme"
	"github.com/vishal2376/rio-editor/internal/types"
)

func newTestScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

// rowText reads back the given screen row as a string.
func rowText(screen tcell.SimulationScreen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestDrawFileInfoAndPosition(t *testing.T) {
	screen := newTestScreen(t, 40, 5)
	sb := New()
	sb.SetFileInfo("notes.txt", true)
	sb.SetCursorInfo(types.Position{Line: 2, Col: 7})

	sb.Draw(screen, 40, 5, theme.Current())

	row := rowText(screen, 4, 40)
	if !strings.Contains(row, "notes.txt [Modified]") {
		t.Errorf("status row missing file info: %q", row)
	}
	if !strings.HasSuffix(strings.TrimRight(row, " "), "3:8") {
		t.Errorf("status row missing 1-based position: %q", row)
	}
}

func TestDrawUntitled(t *testing.T) {
	screen := newTestScreen(t, 40, 3)
	sb := New()

	sb.Draw(screen, 40, 3, theme.Current())

	row := rowText(screen, 2, 40)
	if !strings.Contains(row, "[No Name]") {
		t.Errorf("untitled indicator missing: %q", row)
	}
}

func TestDrawErrorMessage(t *testing.T) {
	screen := newTestScreen(t, 60, 3)
	sb := New()
	sb.SetFileInfo("a.txt", false)
	sb.SetError("open a.txt: file not found")

	sb.Draw(screen, 60, 3, theme.Current())

	row := rowText(screen, 2, 60)
	if !strings.Contains(row, "file not found") {
		t.Errorf("error message missing: %q", row)
	}

	sb.ClearError()
	sb.Draw(screen, 60, 3, theme.Current())
	row = rowText(screen, 2, 60)
	if strings.Contains(row, "file not found") {
		t.Errorf("error message still shown after clear: %q", row)
	}
}

func TestDrawPromptTakesOverLine(t *testing.T) {
	screen := newTestScreen(t, 40, 3)
	sb := New()
	sb.SetFileInfo("a.txt", false)
	sb.SetPrompt("Open: ", "/tmp/b.txt")

	sb.Draw(screen, 40, 3, theme.Current())

	row := rowText(screen, 2, 40)
	if !strings.Contains(row, "Open: /tmp/b.txt") {
		t.Errorf("prompt missing: %q", row)
	}
	if strings.Contains(row, "a.txt [") {
		t.Errorf("file info should be hidden during prompt: %q", row)
	}

	sb.ClearPrompt()
	sb.Draw(screen, 40, 3, theme.Current())
	row = rowText(screen, 2, 40)
	if !strings.Contains(row, "a.txt") {
		t.Errorf("file info not restored after prompt: %q", row)
	}
}
