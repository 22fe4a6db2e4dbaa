package effects

import "time"

const (
	shortFadeSteps = 20
	longFadeSteps  = 60
	longFade       = 3 * time.Second
)

// Step is one point of a fade: the level to apply and how long to keep it.
type Step struct {
	Level float64
	Hold  time.Duration
}

// FadeSchedule returns the volume steps for a fade lasting d.
//
// Short fades (up to 3s) ramp down linearly in 20 steps. Longer fades keep
// full volume for the first third, then decay along 1-p² so the static stays
// audible while the new station comes in and drops off at the end.
func FadeSchedule(d time.Duration) []Step {
	steps, hold := shortFadeSteps, 0
	if d > longFade {
		steps = longFadeSteps
		hold = steps / 3
	}
	per := max(d/time.Duration(steps), 0)

	out := make([]Step, 0, steps)
	for range hold {
		out = append(out, Step{Level: 1, Hold: per})
	}

	fading := steps - hold
	for i := range fading {
		p := float64(i) / float64(fading)
		level := 1 - p
		if hold > 0 {
			level = 1 - p*p
		}
		out = append(out, Step{Level: level, Hold: per})
	}
	return out
}
