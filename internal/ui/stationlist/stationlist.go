// Package stationlist renders the scrollable station list.
package stationlist

import (
	"strings"

	"github.com/llehouerou/waveradio/internal/stations"
	"github.com/llehouerou/waveradio/internal/ui"
	"github.com/llehouerou/waveradio/internal/ui/render"
	"github.com/llehouerou/waveradio/internal/ui/styles"
)

const (
	title          = "Stations"
	favoriteMarker = "★ "
	cursorMarker   = ">> "
)

// Model holds the stations, the cursor and the scroll offset.
type Model struct {
	ui.Base
	stations []stations.Station
	pos      int
	offset   int
	onAir    int64 // id of the playing station, 0 when none
}

// New creates an empty list.
func New() Model {
	return Model{}
}

// SetStations replaces the list. The cursor stays on the same station when
// it still exists, otherwise it is clamped.
func (m *Model) SetStations(list []stations.Station) {
	var selected int64
	if st, ok := m.Selected(); ok {
		selected = st.ID
	}
	m.stations = list
	if selected == 0 || !m.SelectByID(selected) {
		m.pos = min(m.pos, max(len(list)-1, 0))
		m.ensureVisible()
	}
}

// Stations returns the listed stations.
func (m Model) Stations() []stations.Station {
	return m.stations
}

// Len returns the number of stations.
func (m Model) Len() int {
	return len(m.stations)
}

// Selected returns the station under the cursor.
func (m Model) Selected() (stations.Station, bool) {
	if m.pos < 0 || m.pos >= len(m.stations) {
		return stations.Station{}, false
	}
	return m.stations[m.pos], true
}

// Pos returns the cursor index.
func (m Model) Pos() int {
	return m.pos
}

// SelectByID moves the cursor onto the station with id.
func (m *Model) SelectByID(id int64) bool {
	for i, st := range m.stations {
		if st.ID == id {
			m.pos = i
			m.ensureVisible()
			return true
		}
	}
	return false
}

// Move moves the cursor by delta, wrapping around both ends.
func (m *Model) Move(delta int) {
	n := len(m.stations)
	if n == 0 {
		return
	}
	m.pos = ((m.pos+delta)%n + n) % n
	m.ensureVisible()
}

// JumpStart moves the cursor to the first station.
func (m *Model) JumpStart() {
	m.pos = 0
	m.offset = 0
}

// JumpEnd moves the cursor to the last station.
func (m *Model) JumpEnd() {
	if len(m.stations) == 0 {
		return
	}
	m.pos = len(m.stations) - 1
	m.ensureVisible()
}

// SetOnAir marks the playing station (0 for none).
func (m *Model) SetOnAir(id int64) {
	m.onAir = id
}

// SetSize sets the panel size and keeps the cursor visible.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.ensureVisible()
}

// VisibleRange returns the range of visible indices [start, end).
func (m Model) VisibleRange() (start, end int) {
	h := m.InnerHeight()
	if len(m.stations) == 0 || h <= 0 {
		return 0, 0
	}
	return m.offset, min(m.offset+h, len(m.stations))
}

func (m *Model) ensureVisible() {
	h := m.InnerHeight()
	if h <= 0 || len(m.stations) == 0 {
		m.offset = 0
		return
	}
	margin := min(ui.ScrollMargin, (h-1)/2)

	if m.pos < m.offset+margin {
		m.offset = max(m.pos-margin, 0)
	}
	if m.pos >= m.offset+h-margin {
		m.offset = m.pos - h + margin + 1
	}
	m.offset = min(max(m.offset, 0), max(len(m.stations)-h, 0))
}

// View renders the list inside its panel.
func (m Model) View() string {
	if !m.Sized() {
		return ""
	}
	t := styles.T()
	innerW := m.InnerWidth()

	var b strings.Builder
	if len(m.stations) == 0 {
		b.WriteString(t.S().Subtle.Render("No stations. Press a to add one."))
	}

	start, end := m.VisibleRange()
	for i := start; i < end; i++ {
		st := m.stations[i]
		name := render.Sanitize(st.Name)

		prefix := strings.Repeat(" ", len(cursorMarker))
		if i == m.pos {
			prefix = cursorMarker
		}
		fav := ""
		if st.Favorite {
			fav = favoriteMarker
		}
		text := render.TruncateEllipsis(prefix+fav+name, innerW)

		var line string
		switch {
		case i == m.pos && m.IsFocused():
			line = t.S().Cursor.Bold(true).Render(render.Pad(text, innerW))
		case st.ID == m.onAir:
			line = t.S().Playing.Render(text)
		case st.Favorite:
			line = t.S().Favorite.Render(text)
		default:
			line = t.S().Base.Render(text)
		}
		if i > start {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}

	return styles.Panel(title, b.String(), m.Width(), m.Height(), m.IsFocused())
}
