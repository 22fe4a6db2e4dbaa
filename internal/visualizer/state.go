// Package visualizer holds the animation model shared between the render loop
// and the playback workers.
//
// The model does not analyse audio. A synthetic "bass impact" signal drives a
// starfield that speeds up while a station plays and drifts slowly when idle.
package visualizer

import "math/rand/v2"

const (
	DefaultVolume = 50
	MaxVolume     = 100
	VolumeStep    = 5

	initialStars = 200
	maxStars     = 250
	minStars     = 50
	paletteSize  = 5

	// recycledDepth is where a star restarts after passing the viewer.
	recycledDepth = 0.01
)

// Placeholder values shown before the decoder reports anything.
const (
	Detecting = "Detecting..."
	Unknown   = "Unknown"
)

// Star is a single particle of the starfield.
type Star struct {
	X          float64 // -1..1 from center
	Y          float64 // -1..1 from center
	Z          float64 // depth, 0 = far, 1 = at the viewer
	Brightness float64 // 0..1
	Speed      float64
	Color      int // palette index
}

// StreamInfo describes what the decoder reported about the current stream.
type StreamInfo struct {
	StationName string
	Bitrate     string
	Format      string
	Song        string // empty when the stream has no title
}

// HasSong reports whether the stream announced a song title.
func (i *StreamInfo) HasSong() bool {
	return i.Song != ""
}

// Apply overwrites the fields carried by a decoder status line.
// The station name is left untouched.
func (i *StreamInfo) Apply(format, bitrate, song string) {
	i.Format = format
	i.Bitrate = bitrate
	i.Song = song
}

// AnimationState is the full visualization state stepped once per frame.
type AnimationState struct {
	Stars      []Star
	BassImpact float64 // smoothed, 0..1
	WarpSpeed  float64
	FrameCount uint64
	Playing    bool
	Muted      bool
	Volume     int // 0..100
	Stream     *StreamInfo
}

// NewAnimationState returns an idle state with a freshly scattered starfield.
func NewAnimationState(rng *rand.Rand) AnimationState {
	stars := make([]Star, 0, initialStars)
	for range initialStars {
		stars = append(stars, Star{
			X:          between(rng, -1, 1),
			Y:          between(rng, -1, 1),
			Z:          between(rng, recycledDepth, 1),
			Brightness: between(rng, 0.2, 1),
			Speed:      between(rng, 0.005, 0.02),
			Color:      rng.IntN(paletteSize),
		})
	}
	return AnimationState{
		Stars:     stars,
		WarpSpeed: 1.0,
		Volume:    DefaultVolume,
	}
}

// Clone returns a deep copy safe to read without holding any lock.
func (s *AnimationState) Clone() AnimationState {
	c := *s
	c.Stars = make([]Star, len(s.Stars))
	copy(c.Stars, s.Stars)
	if s.Stream != nil {
		info := *s.Stream
		c.Stream = &info
	}
	return c
}

// ClampVolume bounds v to [0, MaxVolume].
func ClampVolume(v int) int {
	return min(max(v, 0), MaxVolume)
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
