package sim

import "time"

const (
	// TickDuration is the simulated length of one tick.
	TickDuration = 50 * time.Millisecond

	defaultMaxCatchUp = 5
)

// Stepper turns elapsed wall time into whole ticks so the simulation runs at
// a fixed rate whatever the frame rate is.
type Stepper struct {
	Step       time.Duration
	MaxCatchUp int

	acc time.Duration
}

func NewStepper(step time.Duration) *Stepper {
	if step <= 0 {
		step = TickDuration
	}
	return &Stepper{Step: step, MaxCatchUp: defaultMaxCatchUp}
}

// Advance adds dt to the accumulator and calls tick once per whole step, at
// most MaxCatchUp times. Time left over beyond the catch-up limit is dropped.
// It returns the number of ticks run.
func (s *Stepper) Advance(dt time.Duration, tick func()) int {
	if dt > 0 {
		s.acc += dt
	}
	n := 0
	for s.acc >= s.Step && n < s.MaxCatchUp {
		tick()
		s.acc -= s.Step
		n++
	}
	if s.acc >= s.Step {
		s.acc %= s.Step
	}
	return n
}

// Alpha is the fraction of a step accumulated towards the next tick.
func (s *Stepper) Alpha() float64 {
	return float64(s.acc) / float64(s.Step)
}

// Reset clears accumulated time.
func (s *Stepper) Reset() {
	s.acc = 0
}
