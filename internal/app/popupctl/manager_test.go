package popupctl

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/waveradio/internal/stations"
	"github.com/llehouerou/waveradio/internal/ui/visualization"
)

func base(w, h int) string {
	lines := make([]string, h)
	for i := range lines {
		lines[i] = strings.Repeat(".", w)
	}
	return strings.Join(lines, "\n")
}

func TestManager_Priority(t *testing.T) {
	p := New()
	p.SetSize(80, 24)

	if p.ActivePopup() != None {
		t.Fatal("new manager should have nothing open")
	}

	p.ShowVisMenu(visualization.Starfield)
	p.ShowConfirm("Delete station", "Delete \"Jazz\"?", nil)
	if got := p.ActivePopup(); got != Confirm {
		t.Errorf("ActivePopup() = %v, want confirm", got)
	}

	p.ShowError("stream ended")
	if got := p.ActivePopup(); got != Error {
		t.Errorf("ActivePopup() = %v, want error", got)
	}
	if p.ErrorMsg() != "stream ended" {
		t.Errorf("ErrorMsg() = %q", p.ErrorMsg())
	}

	handled, cmd := p.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if !handled || cmd != nil {
		t.Errorf("dismissing the error: handled=%v cmd=%v", handled, cmd != nil)
	}
	if p.ErrorMsg() != "" || p.ActivePopup() != Confirm {
		t.Error("the key should only dismiss the error")
	}

	p.Hide(Confirm)
	p.Hide(VisMenu)
	if handled, _ := p.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}); handled {
		t.Error("keys belong to the main screen when nothing is open")
	}
}

func TestManager_KeysReachActivePopup(t *testing.T) {
	p := New()
	p.SetSize(80, 24)
	p.ShowConfirm("Delete station", "Delete?", 7)

	handled, cmd := p.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if !handled || cmd == nil {
		t.Fatal("confirm should answer with a command")
	}
}

func TestManager_ForwardWithoutPopup(t *testing.T) {
	if cmd := New().Forward(struct{}{}); cmd != nil {
		t.Error("nothing open, nothing to forward")
	}
}

func TestManager_RenderOverlay(t *testing.T) {
	p := New()
	p.SetSize(80, 24)
	p.ShowEditStation(stations.Station{ID: 1, Name: "Jazz", URL: "http://jazz.example.com"})
	p.ShowError("could not reach the stream")

	out := ansi.Strip(p.RenderOverlay(base(80, 24)))
	if got := len(strings.Split(out, "\n")); got != 24 {
		t.Errorf("overlay changed the height to %d", got)
	}
	for _, want := range []string{"Edit Station", "could not reach the stream", "Press any key"} {
		if !strings.Contains(out, want) {
			t.Errorf("overlay missing %q", want)
		}
	}

	p.Hide(Error)
	p.Hide(StationForm)
	if out := p.RenderOverlay(base(80, 24)); out != base(80, 24) {
		t.Error("no popups should leave the base untouched")
	}
}

func TestType_String(t *testing.T) {
	for _, tt := range Priority {
		if tt.String() == "none" {
			t.Errorf("type %d has no name", tt)
		}
	}
	if None.String() != "none" {
		t.Errorf("None.String() = %q", None.String())
	}
}
