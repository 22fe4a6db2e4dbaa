// Package testutil drives popups in tests.
package testutil

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/waveradio/internal/ui/action"
	"github.com/llehouerou/waveradio/internal/ui/popup"
)

// PopupHarness wraps a popup and records the commands it returns.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness initializes p and captures its init command.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	if cmd := p.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Popup returns the wrapped popup.
func (h *PopupHarness) Popup() popup.Popup {
	return h.popup
}

// SendMsg delivers msg and returns the resulting command.
func (h *PopupHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Type sends each rune of s as a key press.
func (h *PopupHarness) Type(s string) {
	for _, r := range s {
		h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// SendKey sends a special key (enter, escape, tab, ...).
func (h *PopupHarness) SendKey(k tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: k})
}

// LastCommand returns the most recent command, or nil if none.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ClearCommands forgets the collected commands.
func (h *PopupHarness) ClearCommands() {
	h.cmds = nil
}

// View returns the popup view without ANSI styling.
func (h *PopupHarness) View() string {
	return ansi.Strip(h.popup.View())
}

// ViewContains reports whether the plain view contains substr.
func (h *PopupHarness) ViewContains(substr string) bool {
	return strings.Contains(h.View(), substr)
}

// ActionFrom runs cmd and returns the action.Msg it produced. Batched
// commands are searched in order.
func ActionFrom(t *testing.T, cmd tea.Cmd) action.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected command, got nil")
	}
	switch msg := cmd().(type) {
	case action.Msg:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if am, ok := c().(action.Msg); ok {
				return am
			}
		}
	}
	t.Fatal("command did not produce an action.Msg")
	return action.Msg{}
}
