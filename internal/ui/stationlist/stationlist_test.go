package stationlist

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/waveradio/internal/stations"
)

func sample(n int) []stations.Station {
	list := make([]stations.Station, n)
	for i := range list {
		list[i] = stations.Station{ID: int64(i + 1), Name: "Station " + string(rune('A'+i))}
	}
	return list
}

func TestMove_Wraps(t *testing.T) {
	m := New()
	m.SetSize(30, 10)
	m.SetStations(sample(3))

	m.Move(-1)
	if m.Pos() != 2 {
		t.Errorf("up from first: pos = %d, want 2", m.Pos())
	}
	m.Move(1)
	if m.Pos() != 0 {
		t.Errorf("down from last: pos = %d, want 0", m.Pos())
	}
	m.Move(4)
	if m.Pos() != 1 {
		t.Errorf("move 4: pos = %d, want 1", m.Pos())
	}
}

func TestMove_EmptyList(t *testing.T) {
	m := New()
	m.Move(1)
	m.JumpEnd()
	if _, ok := m.Selected(); ok {
		t.Error("empty list should have no selection")
	}
}

func TestSetStations_KeepsSelection(t *testing.T) {
	m := New()
	m.SetSize(30, 10)
	m.SetStations(sample(4))
	m.Move(2) // Station C, id 3

	reordered := sample(4)
	reordered[0], reordered[2] = reordered[2], reordered[0]
	m.SetStations(reordered)

	st, ok := m.Selected()
	if !ok || st.ID != 3 {
		t.Errorf("selected = %+v, want id 3", st)
	}
	if m.Pos() != 0 {
		t.Errorf("pos = %d, want 0", m.Pos())
	}
}

func TestSetStations_ClampsAfterDelete(t *testing.T) {
	m := New()
	m.SetSize(30, 10)
	m.SetStations(sample(3))
	m.JumpEnd()

	m.SetStations(sample(2))
	if m.Pos() != 1 {
		t.Errorf("pos = %d, want 1", m.Pos())
	}
}

func TestScroll_KeepsCursorVisible(t *testing.T) {
	m := New()
	m.SetSize(30, 7) // 5 inner rows
	m.SetStations(sample(20))

	for range 12 {
		m.Move(1)
	}
	start, end := m.VisibleRange()
	if m.Pos() < start || m.Pos() >= end {
		t.Errorf("cursor %d outside visible range [%d,%d)", m.Pos(), start, end)
	}
	if end-start != 5 {
		t.Errorf("visible rows = %d, want 5", end-start)
	}

	m.Move(8) // wraps to 0
	start, _ = m.VisibleRange()
	if m.Pos() != 0 || start != 0 {
		t.Errorf("after wrap pos=%d start=%d, want 0/0", m.Pos(), start)
	}
}

func TestView_Markers(t *testing.T) {
	list := sample(2)
	list[1].Favorite = true
	m := New()
	m.SetSize(30, 6)
	m.SetStations(list)

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Stations") {
		t.Error("panel title missing")
	}
	if !strings.Contains(view, ">> Station A") {
		t.Errorf("cursor marker missing:\n%s", view)
	}
	if !strings.Contains(view, "★ Station B") {
		t.Errorf("favorite marker missing:\n%s", view)
	}
	if got := len(strings.Split(view, "\n")); got != 6 {
		t.Errorf("view height = %d, want 6", got)
	}
}

func TestView_Empty(t *testing.T) {
	m := New()
	m.SetSize(40, 5)
	if !strings.Contains(ansi.Strip(m.View()), "No stations") {
		t.Error("empty hint missing")
	}
	if New().View() != "" {
		t.Error("unsized list should render nothing")
	}
}
