// Package canvas is the drawing surface of the visualizations, backed by an
// ntcharts braille grid.
//
// Drawing happens in a virtual 100x100 space with the origin at the top-left
// corner. Each terminal cell holds a 2x4 grid of dots, all sharing the
// cell's last drawn foreground colour. Cells may also carry a background.
package canvas

import (
	"math"
	"math/bits"
	"strings"

	ntcanvas "github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/graph"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Size is the extent of the virtual drawing space on both axes.
const Size = 100.0

const brailleBlank = '\u2800'

// dotRunes holds the braille rune of every single dot of a cell, indexed by
// the dot's column and row inside the cell.
var dotRunes = func() (out [2][4]rune) {
	for x := range 2 {
		for y := range 4 {
			g := graph.NewBrailleGrid(1, 1, 0, 1, 0, 1)
			g.Set(ntcanvas.Point{X: x, Y: y})
			out[x][y] = g.BraillePatterns()[0][0]
		}
	}
	return out
}()

type tint struct {
	fg    colorful.Color
	bg    colorful.Color
	hasBg bool
}

// Canvas is a grid of braille cells.
type Canvas struct {
	cols, rows int
	grid       *graph.BrailleGrid
	tints      []tint
}

// New creates a canvas of cols x rows terminal cells.
func New(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize changes the canvas dimensions and clears it.
func (c *Canvas) Resize(cols, rows int) {
	c.cols = max(cols, 0)
	c.rows = max(rows, 0)
	c.grid = graph.NewBrailleGrid(c.cols, c.rows, 0, Size, 0, Size)
	c.tints = make([]tint, c.cols*c.rows)
}

// Clear removes all dots and backgrounds.
func (c *Canvas) Clear() {
	c.grid.Clear()
	clear(c.tints)
}

func (c *Canvas) Cols() int { return c.cols }
func (c *Canvas) Rows() int { return c.rows }

func (c *Canvas) empty() bool { return c.cols == 0 || c.rows == 0 }

// toDot maps virtual coordinates to grid dots. ok is false when the point
// lies outside the drawing space.
func (c *Canvas) toDot(x, y float64) (ntcanvas.Point, bool) {
	if c.empty() || math.IsNaN(x) || math.IsNaN(y) || x < 0 || x > Size || y < 0 || y > Size {
		return ntcanvas.Point{}, false
	}
	return ntcanvas.Point{
		X: int(math.Round(x / Size * float64(c.cols*2-1))),
		Y: int(math.Round(y / Size * float64(c.rows*4-1))),
	}, true
}

// clampedDot is toDot for coordinates pulled back onto the border first.
func (c *Canvas) clampedDot(x, y float64) ntcanvas.Point {
	p, _ := c.toDot(min(max(x, 0), Size), min(max(y, 0), Size))
	return p
}

func (c *Canvas) set(p ntcanvas.Point, col colorful.Color) {
	if p.X < 0 || p.Y < 0 || p.X >= c.cols*2 || p.Y >= c.rows*4 {
		return
	}
	c.grid.Set(p)
	c.tints[(p.Y/4)*c.cols+p.X/2].fg = col
}

// Point sets the dot at (x, y).
func (c *Canvas) Point(x, y float64, col colorful.Color) {
	if p, ok := c.toDot(x, y); ok {
		c.set(p, col)
	}
}

// Line draws a straight line between two points. Endpoints outside the
// drawing space are clamped to its border.
func (c *Canvas) Line(x1, y1, x2, y2 float64, col colorful.Color) {
	if c.empty() || anyNaN(x1, y1, x2, y2) {
		return
	}
	for _, p := range graph.GetLinePoints(c.clampedDot(x1, y1), c.clampedDot(x2, y2)) {
		c.set(p, col)
	}
}

// Rect draws the outline of a rectangle.
func (c *Canvas) Rect(x, y, w, h float64, col colorful.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	c.Line(x, y, x+w, y, col)
	c.Line(x, y+h, x+w, y+h, col)
	c.Line(x, y, x, y+h, col)
	c.Line(x+w, y, x+w, y+h, col)
}

// Fill sets every dot inside a rectangle.
func (c *Canvas) Fill(x, y, w, h float64, col colorful.Color) {
	if w <= 0 || h <= 0 || c.empty() || anyNaN(x, y, w, h) {
		return
	}
	from, to := c.clampedDot(x, y), c.clampedDot(x+w, y+h)
	for py := from.Y; py <= to.Y; py++ {
		for px := from.X; px <= to.X; px++ {
			c.set(ntcanvas.Point{X: px, Y: py}, col)
		}
	}
}

// Background paints the background of every cell touched by a rectangle.
func (c *Canvas) Background(x, y, w, h float64, col colorful.Color) {
	if w <= 0 || h <= 0 || c.empty() || anyNaN(x, y, w, h) {
		return
	}
	from, to := c.clampedDot(x, y), c.clampedDot(x+w, y+h)
	for row := from.Y / 4; row <= to.Y/4 && row < c.rows; row++ {
		for cx := from.X / 2; cx <= to.X/2 && cx < c.cols; cx++ {
			t := &c.tints[row*c.cols+cx]
			t.bg, t.hasBg = col, true
		}
	}
}

// patterns returns the braille rune of every cell, rows first. Cells
// without dots hold 0.
func (c *Canvas) patterns() [][]rune {
	p := c.grid.BraillePatterns()
	for _, row := range p {
		for i, r := range row {
			if r <= brailleBlank {
				row[i] = 0
			}
		}
	}
	return p
}

// Dots returns the number of set dots, mostly useful in tests.
func (c *Canvas) Dots() int {
	if c.empty() {
		return 0
	}
	n := 0
	for _, row := range c.patterns() {
		for _, r := range row {
			if r != 0 {
				n += bits.OnesCount32(uint32(r - brailleBlank))
			}
		}
	}
	return n
}

// DotAt reports whether the dot nearest to (x, y) is set.
func (c *Canvas) DotAt(x, y float64) bool {
	p, ok := c.toDot(x, y)
	if !ok {
		return false
	}
	r := c.patterns()[p.Y/4][p.X/2]
	dot := dotRunes[p.X%2][p.Y%4]
	return r != 0 && (r-brailleBlank)&(dot-brailleBlank) != 0
}

// String renders the canvas as rows of styled braille characters. Adjacent
// cells sharing colours are emitted as a single styled run.
func (c *Canvas) String() string {
	if c.empty() {
		return ""
	}
	var b, run strings.Builder
	for y, row := range c.patterns() {
		if y > 0 {
			b.WriteByte('\n')
		}
		var (
			style lipgloss.Style
			key   string
		)
		run.Reset()
		for x, r := range row {
			k, st := cellStyle(c.tints[y*c.cols+x], r != 0)
			if x > 0 && k != key {
				b.WriteString(style.Render(run.String()))
				run.Reset()
			}
			key, style = k, st
			if r == 0 {
				run.WriteByte(' ')
			} else {
				run.WriteRune(r)
			}
		}
		if run.Len() > 0 {
			b.WriteString(style.Render(run.String()))
		}
	}
	return b.String()
}

func cellStyle(t tint, dots bool) (string, lipgloss.Style) {
	st := lipgloss.NewStyle()
	key := ""
	if dots {
		fg := t.fg.Clamped().Hex()
		st = st.Foreground(lipgloss.Color(fg))
		key = fg
	}
	if t.hasBg {
		bg := t.bg.Clamped().Hex()
		st = st.Background(lipgloss.Color(bg))
		key += "/" + bg
	}
	return key, st
}

// RGB builds a colour from 8-bit channels.
func RGB(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// RGBf builds a colour from channels in [0, 1], clamping out of range values.
func RGBf(r, g, b float64) colorful.Color {
	return colorful.Color{R: r, G: g, B: b}.Clamped()
}

// Scale multiplies every channel of col by f.
func Scale(col colorful.Color, f float64) colorful.Color {
	return colorful.Color{R: col.R * f, G: col.G * f, B: col.B * f}.Clamped()
}

func anyNaN(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
