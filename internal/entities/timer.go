package entities

// Timer is a one-shot countdown advanced by the frame delta.
type Timer struct {
	Duration float64
	Elapsed  float64
}

func NewTimer(seconds float64) Timer {
	return Timer{Duration: seconds}
}

// Tick advances the timer and reports whether it finished on this tick.
func (t *Timer) Tick(dt float64) bool {
	if t.Finished() {
		return false
	}
	t.Elapsed += dt
	return t.Finished()
}

func (t *Timer) Finished() bool { return t.Elapsed >= t.Duration }

func (t *Timer) Remaining() float64 {
	if r := t.Duration - t.Elapsed; r > 0 {
		return r
	}
	return 0
}

func (t *Timer) Reset() { t.Elapsed = 0 }
