package visualization

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/llehouerou/waveradio/internal/ui/canvas"
	"github.com/llehouerou/waveradio/internal/visualizer"
)

const wavePoints = 100

var (
	gridColor  = canvas.RGB(30, 30, 50)
	idleLine   = canvas.RGB(50, 50, 80)
	idlePulses = canvas.RGB(60, 60, 100)
)

type waveForms struct{}

// wave is a sum of three harmonics evaluated along the panel.
type wave func(phase, bass float64) float64

func primaryWave(phase, bass float64) float64 {
	return (15+bass*10)*math.Sin(phase*(1+bass*2)) +
		5*bass*math.Sin(phase*(2+bass)) +
		3*math.Sin(phase*4)*bass
}

func secondaryWave(phase, bass float64) float64 {
	return 10*math.Cos(phase*(0.8+bass)) +
		7*bass*math.Sin(phase*(3-bass)) +
		2*math.Cos(phase*5)*bass
}

func (waveForms) render(c *canvas.Canvas, s *visualizer.AnimationState) {
	// Dark blue at the top fading to near black.
	for y := range 100 {
		blue := max(uint8((100-float64(y))*0.2), 5)
		c.Background(0, float64(y), canvas.Size, 1, canvas.RGB(0, 0, blue))
	}

	if !s.Playing {
		c.Line(0, 50, 100, 50, idleLine)
		for i := range 5 {
			x := 10 + float64(i)*20
			c.Line(x-5, 50, x, 45, idlePulses)
			c.Line(x, 45, x+5, 50, idlePulses)
		}
		return
	}

	for y := 10.0; y <= 90; y += 20 {
		c.Line(0, y, 100, y, gridColor)
	}
	for x := 10.0; x <= 90; x += 10 {
		c.Line(x, 0, x, 100, gridColor)
	}

	bass := s.BassImpact
	t := float64(s.FrameCount) * 0.02
	intensity := 0.5 + bass*0.5

	drawWave(c, primaryWave, t, bass, canvas.RGBf(
		0.2+intensity*0.8,
		0.8-intensity*0.3,
		0.7+intensity*0.3,
	))
	drawWave(c, secondaryWave, t+math.Pi/2, bass, canvas.RGBf(
		0.7-bass*0.2,
		0.2+bass*0.6,
		0.8,
	))
}

func drawWave(c *canvas.Canvas, fn wave, offset, bass float64, col colorful.Color) {
	prevX, prevY := 0.0, 50.0
	for i := 1; i <= wavePoints; i++ {
		x := float64(i) / wavePoints * 100
		phase := x/100*2*math.Pi + offset
		y := 50 - fn(phase, bass)
		if inPanel(y) && inPanel(prevY) {
			c.Line(prevX, prevY, x, y, col)
		}
		prevX, prevY = x, y
	}
}

func inPanel(v float64) bool {
	return v >= 0 && v <= canvas.Size
}
