package visualizer

import "math/rand/v2"

// Step advances the animation by one frame.
//
// While playing, the bass impact chases a random target (occasionally a
// "drop" near 1.0) and the warp speed follows it in [1, 3]. While idle, the
// warp relaxes toward 0.5, the bass decays and the field slowly thins out.
// Given the same rng sequence the result is deterministic.
func (s *AnimationState) Step(rng *rand.Rand) {
	s.FrameCount++

	if s.Playing {
		s.stepPlaying(rng)
		return
	}
	s.stepIdle(rng)
}

func (s *AnimationState) stepPlaying(rng *rand.Rand) {
	var target float64
	if rng.Float64() < 0.05 {
		target = between(rng, 0.8, 1.0)
	} else {
		target = between(rng, 0.2, 0.6)
	}
	s.BassImpact = s.BassImpact*0.9 + target*0.1
	s.WarpSpeed = 1.0 + s.BassImpact*2.0

	for i := range s.Stars {
		star := &s.Stars[i]
		star.Z += star.Speed * s.WarpSpeed
		if star.Z <= 1.0 {
			continue
		}
		star.X = between(rng, -1, 1)
		star.Y = between(rng, -1, 1)
		star.Z = recycledDepth
		star.Brightness = between(rng, 0.2, 1)
		star.Speed = between(rng, 0.005, 0.02)
		if rng.Float64() < 0.3 {
			star.Color = rng.IntN(paletteSize)
		}
	}

	if rng.Float64() < 0.05 && len(s.Stars) < maxStars {
		s.Stars = append(s.Stars, Star{
			X:          between(rng, -1, 1),
			Y:          between(rng, -1, 1),
			Z:          recycledDepth,
			Brightness: between(rng, 0.2, 1),
			Speed:      between(rng, 0.005, 0.02),
			Color:      rng.IntN(paletteSize),
		})
	}
}

func (s *AnimationState) stepIdle(rng *rand.Rand) {
	s.WarpSpeed = (s.WarpSpeed-0.5)*0.95 + 0.5
	s.BassImpact *= 0.95

	for i := range s.Stars {
		star := &s.Stars[i]
		star.Z += star.Speed * s.WarpSpeed * 0.2
		if star.Z > 1.0 {
			star.X = between(rng, -1, 1)
			star.Y = between(rng, -1, 1)
			star.Z = recycledDepth
		}
	}

	if rng.Float64() < 0.01 && len(s.Stars) > minStars {
		s.Stars = s.Stars[:len(s.Stars)-1]
	}
}
