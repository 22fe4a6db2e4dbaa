package visualizer

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Shared owns the AnimationState behind a mutex.
//
// Workers only touch single fields through the setters. Tick is the one
// compound writer and must only be called from the render loop.
type Shared struct {
	mu    sync.Mutex
	state AnimationState
	rng   *rand.Rand
}

// NewShared creates a shared state. A nil rng seeds one from the clock.
func NewShared(rng *rand.Rand) *Shared {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &Shared{
		state: NewAnimationState(rng),
		rng:   rng,
	}
}

// Tick steps the animation once. If the lock is busy the frame is skipped
// and Tick returns false.
func (s *Shared) Tick() bool {
	if !s.mu.TryLock() {
		return false
	}
	defer s.mu.Unlock()
	s.state.Step(s.rng)
	return true
}

// Snapshot returns a deep copy of the current state for rendering.
func (s *Shared) Snapshot() AnimationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Update runs fn with the lock held. fn must not block.
func (s *Shared) Update(fn func(st *AnimationState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// SetPlaying sets the playing flag. Stopping also clears the stream info.
func (s *Shared) SetPlaying(playing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Playing = playing
	if !playing {
		s.state.Stream = nil
	}
}

// Playing reports the playing flag.
func (s *Shared) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Playing
}

// SetMuted sets the mute flag.
func (s *Shared) SetMuted(muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Muted = muted
}

// Muted reports the mute flag.
func (s *Shared) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Muted
}

// SetVolume sets the volume, clamped to [0, 100].
func (s *Shared) SetVolume(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Volume = ClampVolume(v)
}

// AdjustVolume adds delta to the volume, clamps it and returns the result.
func (s *Shared) AdjustVolume(delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Volume = ClampVolume(s.state.Volume + delta)
	return s.state.Volume
}

// Volume returns the current volume.
func (s *Shared) Volume() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Volume
}

// SetStreamInfo replaces the stream info with a fresh value.
func (s *Shared) SetStreamInfo(station, bitrate, format string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Stream = &StreamInfo{
		StationName: station,
		Bitrate:     bitrate,
		Format:      format,
	}
}

// ApplyStatus updates format, bitrate and song of the current stream info.
// It returns the previous song and false when there is no stream info.
func (s *Shared) ApplyStatus(format, bitrate, song string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Stream == nil {
		return "", false
	}
	prev := s.state.Stream.Song
	s.state.Stream.Apply(format, bitrate, song)
	return prev, true
}

// StreamInfo returns a copy of the stream info, or nil.
func (s *Shared) StreamInfo() *StreamInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Stream == nil {
		return nil
	}
	info := *s.state.Stream
	return &info
}
