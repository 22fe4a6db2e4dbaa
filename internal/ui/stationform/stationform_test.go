package stationform

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waveradio/internal/stations"
	"github.com/llehouerou/waveradio/internal/ui/testutil"
)

func newHarness(m Model) (*Model, *testutil.PopupHarness) {
	m.SetSize(60, 20)
	return &m, testutil.NewPopupHarness(&m)
}

func result(t *testing.T, cmd tea.Cmd) Result {
	t.Helper()
	msg := testutil.ActionFrom(t, cmd)
	res, ok := msg.Action.(Result)
	if !ok {
		t.Fatalf("expected Result, got %T", msg.Action)
	}
	return res
}

func TestTabCyclesFields(t *testing.T) {
	m, h := newHarness(New())

	for _, want := range []int{fieldURL, fieldDescription, fieldName} {
		h.SendKey(tea.KeyTab)
		if m.Focused() != want {
			t.Errorf("focus = %d, want %d", m.Focused(), want)
		}
	}
	h.SendKey(tea.KeyShiftTab)
	if m.Focused() != fieldDescription {
		t.Errorf("shift+tab focus = %d, want %d", m.Focused(), fieldDescription)
	}
}

func TestSubmit_Add(t *testing.T) {
	_, h := newHarness(New())

	h.Type("  Jazz FM ")
	h.SendKey(tea.KeyTab)
	h.Type("https://jazz.example.com/live")
	h.SendKey(tea.KeyTab)
	h.Type("smooth")
	cmd := h.SendKey(tea.KeyEnter)

	res := result(t, cmd)
	want := stations.Station{Name: "Jazz FM", URL: "https://jazz.example.com/live", Description: "smooth"}
	if res.Station != want {
		t.Errorf("Station = %+v, want %+v", res.Station, want)
	}
	if res.Editing || res.Canceled {
		t.Errorf("unexpected flags: %+v", res)
	}
}

func TestSubmit_RequiresNameAndURL(t *testing.T) {
	m, h := newHarness(New())

	h.SendKey(tea.KeyEnter)
	if !h.ViewContains("name is required") {
		t.Errorf("missing name error in view:\n%s", h.View())
	}

	h.Type("Jazz")
	h.SendKey(tea.KeyEnter)
	if m.Focused() != fieldURL {
		t.Errorf("focus = %d, want url field", m.Focused())
	}
	if !h.ViewContains("url must be absolute") {
		t.Errorf("missing url error in view:\n%s", h.View())
	}
}

func TestEdit_PrefillsAndKeepsID(t *testing.T) {
	st := stations.Station{ID: 9, Name: "Old", URL: "http://old.example.com", Description: "d", Favorite: true}
	m, h := newHarness(NewEdit(st))

	if !m.Editing() || !h.ViewContains("Edit Station") {
		t.Error("form should be in edit mode")
	}

	res := result(t, h.SendKey(tea.KeyEnter))
	if !res.Editing || res.Station.ID != 9 || res.Station.Name != "Old" {
		t.Errorf("result = %+v", res)
	}
}

func TestEscCancels(t *testing.T) {
	_, h := newHarness(NewEdit(stations.Station{ID: 1, Name: "a", URL: "http://a"}))

	res := result(t, h.SendKey(tea.KeyEscape))
	if !res.Canceled || !res.Editing {
		t.Errorf("result = %+v, want canceled edit", res)
	}
}
