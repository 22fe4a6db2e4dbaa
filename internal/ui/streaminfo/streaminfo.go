// Package streaminfo renders the panel describing the current stream.
package streaminfo

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/waveradio/internal/icons"
	"github.com/llehouerou/waveradio/internal/stations"
	"github.com/llehouerou/waveradio/internal/ui/render"
	"github.com/llehouerou/waveradio/internal/ui/styles"
	"github.com/llehouerou/waveradio/internal/visualizer"
)

const title = "Stream Info"

// Info is the data shown in the panel.
type Info struct {
	Stream   *visualizer.StreamInfo // nil when nothing plays or failed
	OnAir    time.Time              // when the current station started
	Now      time.Time
	Selected *stations.Station // station under the cursor, shown when idle
}

// Render draws the panel at the given size.
func Render(info Info, width, height int) string {
	inner := max(width-2, 0)
	var body string
	if info.Stream != nil {
		body = playingBody(info, inner)
	} else {
		body = idleBody(info.Selected, inner)
	}
	return styles.Panel(title, body, width, height, false)
}

func playingBody(info Info, width int) string {
	s := styles.T().S()
	st := info.Stream

	song := visualizer.Unknown
	if st.HasSong() {
		song = icons.WithSong(st.Song)
	}

	lines := []string{
		s.Muted.Render(render.Field("Station:", st.StationName, width)),
		s.Muted.Render(render.Field("Format:", st.Format, width)),
		s.Muted.Render(render.Field("Bitrate:", st.Bitrate, width)),
		s.Playing.Render(render.Field("Current Song:", song, width)),
	}
	if !info.OnAir.IsZero() {
		since := humanize.RelTime(info.OnAir, info.Now, "ago", "from now")
		lines = append(lines, s.Subtle.Render(render.Field("On air since", since, width)))
	}
	return strings.Join(lines, "\n")
}

func idleBody(selected *stations.Station, width int) string {
	s := styles.T().S()
	if selected == nil {
		return s.Subtle.Render("Nothing playing")
	}

	name := s.Title.Render(render.TruncateEllipsis(render.Sanitize(selected.Name), width))
	desc := strings.TrimSpace(render.Sanitize(selected.Description))
	if desc == "" {
		desc = "No description."
	}
	wrapped := lipgloss.NewStyle().Width(max(width, 1)).Render(desc)
	return name + "\n" + s.Muted.Render(wrapped)
}
