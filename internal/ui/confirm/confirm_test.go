package confirm

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waveradio/internal/ui/testutil"
)

func newTestConfirm(context any) (*Model, *testutil.PopupHarness) {
	m := New()
	m.Show("Delete station", "Delete Jazz FM?", context, 80, 24)
	return &m, testutil.NewPopupHarness(&m)
}

func result(t *testing.T, h *testutil.PopupHarness) Result {
	t.Helper()
	msg := testutil.ActionFrom(t, h.LastCommand())
	if msg.Source != "confirm" {
		t.Errorf("Source = %q, want confirm", msg.Source)
	}
	res, ok := msg.Action.(Result)
	if !ok {
		t.Fatalf("expected Result, got %T", msg.Action)
	}
	return res
}

func TestConfirmKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want bool
	}{
		{"y", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, true},
		{"Y", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Y")}, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, true},
		{"n", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, h := newTestConfirm(int64(7))
			h.SendMsg(tt.key)

			res := result(t, h)
			if res.Confirmed != tt.want {
				t.Errorf("Confirmed = %v, want %v", res.Confirmed, tt.want)
			}
			if res.Context != int64(7) {
				t.Errorf("Context = %v, want 7", res.Context)
			}
			if m.Active() {
				t.Error("popup should close after answering")
			}
		})
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	m, h := newTestConfirm(nil)
	h.Type("x")

	if h.LastCommand() != nil {
		t.Error("unexpected command")
	}
	if !m.Active() {
		t.Error("popup should stay open")
	}
}

func TestView(t *testing.T) {
	m, h := newTestConfirm(nil)
	if !h.ViewContains("Delete Jazz FM?") {
		t.Error("message missing from view")
	}

	h.SendKey(tea.KeyEscape)
	if m.View() != "" {
		t.Error("closed popup should render nothing")
	}
}
