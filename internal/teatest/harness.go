// Package teatest drives bubbletea models in tests without a running
// tea.Program: messages go through Update directly and every returned
// Cmd is executed and fed back in, so loaders that hit the backing
// store resolve before the next assertion runs.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// drainLimit caps Cmd chains so a model that keeps scheduling work
// cannot hang a test.
const drainLimit = 100

// cmdWait is how long a Cmd gets to produce its message. Loader Cmds
// against an in-memory store finish well under this; cursor blink Cmds
// sleep for half a second and are abandoned instead.
const cmdWait = 10 * time.Millisecond

// Harness runs a tea.Model synchronously.
type Harness struct {
	t     *testing.T
	model tea.Model

	// Quit flips when tea.QuitMsg comes through. The runtime normally
	// swallows that message, so the harness tracks it itself.
	Quit bool
}

func New(t *testing.T, model tea.Model) *Harness {
	t.Helper()
	return &Harness{t: t, model: model}
}

// Start runs the model's Init command chain. Call it once before
// sending any input.
func (h *Harness) Start() {
	h.t.Helper()
	h.drain(h.model.Init(), 0)
}

// Send pushes one message through Update and resolves whatever Cmds
// fall out of it.
func (h *Harness) Send(msg tea.Msg) {
	h.t.Helper()
	if h.Quit {
		return
	}
	next, cmd := h.model.Update(msg)
	h.model = next
	h.drain(cmd, 0)
}

// Press sends a single character key.
func (h *Harness) Press(r rune) {
	h.t.Helper()
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Key sends a special key such as tea.KeyEnter or tea.KeyEsc.
func (h *Harness) Key(k tea.KeyType) {
	h.t.Helper()
	h.Send(tea.KeyMsg{Type: k})
}

// Type sends a string one key event per rune.
func (h *Harness) Type(s string) {
	h.t.Helper()
	for _, r := range s {
		h.Press(r)
	}
}

func (h *Harness) View() string {
	return h.model.View()
}

func (h *Harness) drain(cmd tea.Cmd, depth int) {
	h.t.Helper()
	if cmd == nil {
		return
	}
	if depth >= drainLimit {
		h.t.Fatalf("teatest: command chain exceeded %d steps", drainLimit)
	}

	msg := runWithDeadline(cmd)
	if msg == nil || isBlink(msg) {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			if sub != nil {
				h.drain(sub, depth+1)
			}
		}
	case tea.QuitMsg:
		h.Quit = true
		h.model, _ = h.model.Update(msg)
	default:
		next, follow := h.model.Update(msg)
		h.model = next
		h.drain(follow, depth+1)
	}
}

func runWithDeadline(cmd tea.Cmd) tea.Msg {
	out := make(chan tea.Msg, 1)
	go func() { out <- cmd() }()
	select {
	case msg := <-out:
		return msg
	case <-time.After(cmdWait):
		return nil
	}
}

// isBlink spots the unexported cursor blink messages from
// bubbles/cursor, which chain into timer Cmds the harness would
// otherwise wait out on every keystroke.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
