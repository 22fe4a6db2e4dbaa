package visualization

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/llehouerou/waveradio/internal/ui/canvas"
	"github.com/llehouerou/waveradio/internal/visualizer"
)

var (
	spaceColor = canvas.RGB(0, 0, 20)
	starColors = [...]colorful.Color{
		canvas.RGB(255, 255, 255),
		canvas.RGB(200, 200, 255),
		canvas.RGB(255, 230, 200),
		canvas.RGB(255, 200, 200),
		canvas.RGB(200, 255, 200),
	}
	indicatorTrack = canvas.RGB(30, 30, 50)
)

type starfield struct{}

func (starfield) render(c *canvas.Canvas, s *visualizer.AnimationState) {
	const center = canvas.Size / 2

	c.Background(0, 0, canvas.Size, canvas.Size, spaceColor)

	for _, star := range s.Stars {
		// Closer stars (higher z) move away from the centre and grow.
		scale := 1 / (1.01 - math.Min(star.Z, 0.99))
		px := center + star.X*scale*40
		py := center + star.Y*scale*40
		if px < 0 || px > canvas.Size || py < 0 || py > canvas.Size {
			continue
		}

		size := star.Z * star.Z * 3 * (s.WarpSpeed*0.5 + 0.5)
		brightness := star.Brightness * math.Pow(star.Z, 1.5)
		col := canvas.Scale(starColors[paletteIndex(star.Color)], brightness)

		c.Fill(px-size/2, py-size/2, size, size, col)

		if star.Z > 0.7 && s.WarpSpeed > 1.5 {
			trail := star.Z * s.WarpSpeed * 5
			dx, dy := px-center, py-center
			if dist := math.Hypot(dx, dy); dist > 0 {
				tx := px - dx/dist*trail
				ty := py - dy/dist*trail
				c.Line(tx, ty, px, py, canvas.Scale(col, 0.5))
			}
		}
	}

	if s.Playing {
		const w, h = 20.0, 5.0
		x := center - w/2
		y := 90.0
		fill := (s.WarpSpeed - 1) / 2
		c.Fill(x, y, w, h, indicatorTrack)
		c.Fill(x, y, math.Min(fill*w, w), h, canvas.RGBf(
			(100+155*fill)/255,
			(200-150*fill)/255,
			1,
		))
	}
}

func paletteIndex(i int) int {
	n := len(starColors)
	return ((i % n) + n) % n
}
