package visualization

import (
	"github.com/llehouerou/waveradio/internal/ui/canvas"
	"github.com/llehouerou/waveradio/internal/visualizer"
)

// Engine keeps one instance of each visualization and draws the selected one.
type Engine struct {
	kind      Kind
	starfield starfield
	bars      barSpectrum
	waves     waveForms
}

// NewEngine creates an engine showing k.
func NewEngine(k Kind) *Engine {
	return &Engine{kind: k.normalize()}
}

// Kind returns the selected visualization.
func (e *Engine) Kind() Kind { return e.kind }

// SetKind selects the visualization drawn by Render.
func (e *Engine) SetKind(k Kind) { e.kind = k.normalize() }

// Render clears c and draws the selected visualization for state s.
func (e *Engine) Render(c *canvas.Canvas, s *visualizer.AnimationState) {
	c.Clear()
	if s == nil {
		return
	}
	switch e.kind {
	case BarSpectrum:
		e.bars.render(c, s)
	case WaveForms:
		e.waves.render(c, s)
	default:
		e.starfield.render(c, s)
	}
}
