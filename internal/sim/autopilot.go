package sim

import "mazechase/internal/entities"

// Autopilot drives the player without a keyboard for headless runs: it
// holds a random cardinal direction and re-rolls it every few ticks.
type Autopilot struct {
	rng   Rand
	every int
	ticks int
	cur   Input
}

func NewAutopilot(rng Rand, every int) *Autopilot {
	if every < 1 {
		every = 1
	}
	return &Autopilot{rng: rng, every: every}
}

// Next returns the input for the coming tick.
func (a *Autopilot) Next() Input {
	if a.ticks%a.every == 0 {
		h := entities.Cardinal[a.rng.Intn(len(entities.Cardinal))]
		a.cur = Input{Vertical: h.Vertical, Horizontal: h.Horizontal}
	}
	a.ticks++
	return a.cur
}
