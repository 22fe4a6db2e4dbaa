package visualization

import (
	"math"

	"github.com/llehouerou/waveradio/internal/ui/canvas"
	"github.com/llehouerou/waveradio/internal/visualizer"
)

const (
	barCount     = 30
	barMaxHeight = 70.0
	idleBars     = 15
)

var (
	barsBackground = canvas.RGB(10, 10, 20)
	idleBarColor   = canvas.RGB(50, 50, 100)
)

type barSpectrum struct{}

// barHeight returns the height of bar i for the given frame and bass impact.
func barHeight(i int, frame uint64, bass float64) float64 {
	x := float64(i)/barCount*2 - 1
	t := float64(frame) * 0.02
	p1 := t*0.5 + x*3
	p2 := t*0.7 - x*2
	p3 := t*0.3 + x*4
	base := (math.Sin(p1)*0.5 + math.Sin(p2)*0.3 + math.Sin(p3)*0.2 + 1) / 2
	return base * (0.3 + bass*0.7) * barMaxHeight
}

func (barSpectrum) render(c *canvas.Canvas, s *visualizer.AnimationState) {
	c.Background(0, 0, canvas.Size, canvas.Size, barsBackground)

	if !s.Playing {
		for i := range idleBars {
			h := 5 + float64(i%5)*3
			c.Fill(10+float64(i)*6, 50-h/2, 3, h, idleBarColor)
		}
		return
	}

	const slot = canvas.Size / barCount
	const spacing = 1.0
	bass := s.BassImpact
	for i := range barCount {
		h := barHeight(i, s.FrameCount, bass)
		intensity := math.Min(h/barMaxHeight, 1)
		col := canvas.RGBf(
			0.2+0.8*intensity,
			0.5-0.3*intensity+bass*0.3,
			0.8-0.3*intensity,
		)
		c.Fill(float64(i)*slot+spacing/2, canvas.Size-h, slot-spacing, h, col)
	}

	const w, h = 50.0, 3.0
	x := canvas.Size/2 - w/2
	y := 95.0
	c.Fill(x, y, w, h, indicatorTrack)
	c.Fill(x, y, w*bass, h, canvas.RGBf(
		(100+155*bass)/255,
		(50+100*(1-bass))/255,
		200.0/255,
	))
}
