// Package effects plays the short static/tuning clip heard while switching
// stations. It is independent of the decoder process and uses its own
// audio output.
package effects

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/wav"
)

//go:embed assets/radio-static.wav
var tuningSound []byte

// ErrOutputUnavailable is returned by Play when no audio device could be opened.
var ErrOutputUnavailable = errors.New("audio output not available")

// Manager owns at most one playing tuning sound.
type Manager struct {
	mu      sync.Mutex
	out     Output
	asset   []byte
	current *sink
}

type sink struct {
	source beep.StreamSeekCloser
	ctrl   *beep.Ctrl
	volume *effects.Volume
	done   chan struct{}
	once   sync.Once
}

// New creates a manager playing through out. A nil out uses the system speaker.
func New(out Output) *Manager {
	if out == nil {
		out = Speaker()
	}
	return &Manager{out: out, asset: tuningSound}
}

// Play starts the tuning sound at full volume, stopping any previous one.
func (m *Manager) Play() error {
	m.Stop()

	source, format, err := wav.Decode(bytes.NewReader(m.asset))
	if err != nil {
		return fmt.Errorf("decode tuning sound: %w", err)
	}
	if err := m.out.Init(format); err != nil {
		source.Close()
		return fmt.Errorf("%w: %w", ErrOutputUnavailable, err)
	}

	ctrl := &beep.Ctrl{Streamer: source}
	s := &sink{
		source: source,
		ctrl:   ctrl,
		volume: &effects.Volume{Streamer: ctrl, Base: 2},
		done:   make(chan struct{}),
	}

	m.mu.Lock()
	m.current = s
	m.mu.Unlock()

	// The callback runs on the audio goroutine with the output locked.
	m.out.Play(beep.Seq(s.volume, beep.Callback(s.finish)))
	return nil
}

// Stop halts the tuning sound immediately.
func (m *Manager) Stop() {
	m.mu.Lock()
	s := m.current
	m.mu.Unlock()
	if s != nil {
		m.stopSink(s)
	}
}

// FadeOut lowers the volume of the current sound to zero over d, then stops it.
// It returns immediately; the fade runs in the background.
func (m *Manager) FadeOut(d time.Duration) {
	m.mu.Lock()
	s := m.current
	m.mu.Unlock()
	if s == nil {
		return
	}
	go m.fade(s, FadeSchedule(d))
}

// Active reports whether a tuning sound is playing.
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current != nil
}

// Level returns the volume level (0..1) of the current sound, or 0.
func (m *Manager) Level() float64 {
	m.mu.Lock()
	s := m.current
	m.mu.Unlock()
	if s == nil {
		return 0
	}
	m.out.Lock()
	defer m.out.Unlock()
	return volumeToLevel(s.volume)
}

func (m *Manager) fade(s *sink, steps []Step) {
	for _, st := range steps {
		select {
		case <-s.done:
			return
		default:
		}

		m.out.Lock()
		setLevel(s.volume, st.Level)
		m.out.Unlock()

		t := time.NewTimer(st.Hold)
		select {
		case <-s.done:
			t.Stop()
			return
		case <-t.C:
		}
	}
	m.stopSink(s)
}

func (m *Manager) stopSink(s *sink) {
	m.mu.Lock()
	if m.current == s {
		m.current = nil
	}
	m.mu.Unlock()

	m.out.Lock()
	s.ctrl.Streamer = nil
	m.out.Unlock()

	s.finish()
}

func (s *sink) finish() {
	s.once.Do(func() {
		close(s.done)
		_ = s.source.Close()
	})
}

// setLevel maps a 0..1 level onto beep's base-2 volume.
// 1.0 -> 0, 0.5 -> -1, 0.25 -> -2; zero is silent.
func setLevel(v *effects.Volume, level float64) {
	if level <= 0 {
		v.Silent = true
		v.Volume = -10
		return
	}
	v.Silent = false
	v.Volume = math.Log2(min(level, 1))
}

func volumeToLevel(v *effects.Volume) float64 {
	if v.Silent {
		return 0
	}
	return math.Pow(2, v.Volume)
}
