package visualization

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/waveradio/internal/ui/canvas"
	"github.com/llehouerou/waveradio/internal/visualizer"
)

func TestKind_Cycle(t *testing.T) {
	assert.Equal(t, BarSpectrum, Starfield.Next())
	assert.Equal(t, WaveForms, BarSpectrum.Next())
	assert.Equal(t, Starfield, WaveForms.Next())

	assert.Equal(t, WaveForms, Starfield.Prev())
	assert.Equal(t, Starfield, BarSpectrum.Prev())

	for _, k := range Kinds() {
		assert.Equal(t, k, k.Next().Prev())
	}
	assert.Equal(t, BarSpectrum, Kind(42).Next(), "invalid kinds behave like the default")
}

func TestKind_NamesAndDescriptions(t *testing.T) {
	for _, k := range Kinds() {
		assert.NotEqual(t, "Unknown", k.String())
		assert.NotEmpty(t, k.Description())
	}
	assert.Equal(t, "Bar Spectrum", BarSpectrum.String())
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"starfield", Starfield, true},
		{"bars", BarSpectrum, true},
		{"Bar Spectrum", BarSpectrum, true},
		{"WAVEFORMS", WaveForms, true},
		{"wave forms", WaveForms, true},
		{"plasma", Starfield, false},
		{"", Starfield, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			assert.Equal(t, tt.want, got)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestKind_KeyRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.Key())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
}

func playingState(t *testing.T) *visualizer.AnimationState {
	t.Helper()
	rng := rand.New(rand.NewPCG(7, 11))
	s := visualizer.NewAnimationState(rng)
	s.Playing = true
	for range 120 {
		s.Step(rng)
	}
	return &s
}

func idleState(seed uint64) *visualizer.AnimationState {
	s := visualizer.NewAnimationState(rand.New(rand.NewPCG(seed, seed+1)))
	return &s
}

func TestEngine_RendersEveryKind(t *testing.T) {
	playing := playingState(t)
	idle := idleState(1)

	for _, k := range Kinds() {
		for name, s := range map[string]*visualizer.AnimationState{"playing": playing, "idle": idle} {
			t.Run(k.String()+"/"+name, func(t *testing.T) {
				c := canvas.New(60, 20)
				e := NewEngine(k)

				assert.NotPanics(t, func() { e.Render(c, s) })
				assert.Positive(t, c.Dots(), "something should be drawn")
				assert.NotEmpty(t, c.String())
			})
		}
	}
}

func TestEngine_RenderClearsPreviousFrame(t *testing.T) {
	c := canvas.New(40, 10)
	e := NewEngine(BarSpectrum)

	e.Render(c, playingState(t))
	playingDots := c.Dots()

	e.SetKind(WaveForms)
	e.Render(c, idleState(1))

	require.True(t, playingDots > 0)
	assert.False(t, c.DotAt(50, 96), "bass indicator from the previous frame must be gone")
}

func TestEngine_TinyAndNilInputs(t *testing.T) {
	e := NewEngine(Starfield)
	s := playingState(t)

	assert.NotPanics(t, func() {
		e.Render(canvas.New(0, 0), s)
		e.Render(canvas.New(1, 1), s)
		e.Render(canvas.New(10, 10), nil)
	})
}

func TestEngine_SetKindNormalizes(t *testing.T) {
	e := NewEngine(Kind(-3))
	assert.Equal(t, Starfield, e.Kind())

	e.SetKind(WaveForms)
	assert.Equal(t, WaveForms, e.Kind())
}

func TestBarHeight_Bounds(t *testing.T) {
	for frame := uint64(0); frame < 500; frame += 7 {
		for i := range barCount {
			for _, bass := range []float64{0, 0.5, 1} {
				h := barHeight(i, frame, bass)
				assert.GreaterOrEqual(t, h, 0.0)
				assert.LessOrEqual(t, h, barMaxHeight+1e-9)
			}
		}
	}
}

func TestBarHeight_ScalesWithBass(t *testing.T) {
	low := barHeight(3, 100, 0.2)
	high := barHeight(3, 100, 0.9)
	assert.Greater(t, high, low)
}

func TestStarfield_IdleDrawsNoIndicator(t *testing.T) {
	s := idleState(3)
	s.Stars = nil
	c := canvas.New(40, 20)

	NewEngine(Starfield).Render(c, s)
	assert.Zero(t, c.Dots())

	s.Playing = true
	s.WarpSpeed = 3
	NewEngine(Starfield).Render(c, s)
	assert.True(t, c.DotAt(50, 92), "warp indicator should be drawn while playing")
}

func TestWaves_StayInsidePanel(t *testing.T) {
	for _, bass := range []float64{0, 0.3, 1} {
		for phase := 0.0; phase < 4*math.Pi; phase += 0.1 {
			assert.InDelta(t, 0, primaryWave(phase, bass), 50)
			assert.InDelta(t, 0, secondaryWave(phase, bass), 50)
		}
	}
}
