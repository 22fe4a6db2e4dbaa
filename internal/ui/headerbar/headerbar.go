// internal/ui/headerbar/headerbar.go
package headerbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/waveradio/internal/icons"
	"github.com/llehouerou/waveradio/internal/playback"
	"github.com/llehouerou/waveradio/internal/ui/render"
	"github.com/llehouerou/waveradio/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

const (
	appTitle   = "waveradio"
	meterWidth = 10
)

// Status is what the header shows about the player.
type Status struct {
	State         playback.State
	Station       string
	Volume        int
	Muted         bool
	Simulated     bool
	Visualization string
}

// Render returns the header bar string for the given width.
func Render(st Status, width int) string {
	if width < 20 {
		return ""
	}
	s := styles.T().S()

	left := styles.TitleGradient().Render(appTitle)
	if st.Simulated {
		left += " " + s.Warning.Render("[sim]")
	}

	var vol string
	if st.Muted {
		vol = s.Error.Render(icons.Muted() + " muted")
	} else {
		vol = s.Muted.Render(fmt.Sprintf("%s %3d%% ", icons.Volume(), st.Volume))
		if width >= 60 {
			vol += styles.MeterGradient().Meter(float64(st.Volume)/100, meterWidth)
		}
	}
	right := s.Subtle.Render(st.Visualization) + "  " + vol

	room := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	middle := ""
	if room > 4 {
		middle = renderState(st, room)
	}

	return render.Row(left+"  "+middle, right, width)
}

func renderState(st Status, width int) string {
	s := styles.T().S()
	name := render.Sanitize(st.Station)
	switch st.State {
	case playback.StatePlaying:
		return s.Success.Render(render.TruncateEllipsis(icons.Playing()+" "+name, width))
	case playback.StateTuning:
		return s.Warning.Render(render.TruncateEllipsis(icons.Tuning()+" tuning "+name, width))
	default:
		return s.Muted.Render(render.TruncateEllipsis(icons.Stopped()+" stopped", width))
	}
}
