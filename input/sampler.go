// Package input exposes the control state read by the simulation each tick.
package input

// Control is a logical control the simulation reads.
type Control int

const (
	MoveLeft Control = iota
	MoveRight
	Jump
)

func (c Control) String() string {
	switch c {
	case MoveLeft:
		return "move_left"
	case MoveRight:
		return "move_right"
	case Jump:
		return "jump"
	default:
		return "unknown"
	}
}

// Sampler reports whether a control is currently held. Implementations must
// not change state when queried.
type Sampler interface {
	IsPressed(c Control) bool
}

// Poller is implemented by samplers that have to refresh their state once
// before each tick is sampled.
type Poller interface {
	Poll() error
}

// Snapshot is a frozen control state. It is itself a Sampler.
type Snapshot struct {
	Left  bool
	Right bool
	Jump  bool
}

func (s Snapshot) IsPressed(c Control) bool {
	switch c {
	case MoveLeft:
		return s.Left
	case MoveRight:
		return s.Right
	case Jump:
		return s.Jump
	default:
		return false
	}
}

// Take freezes the current state of s.
func Take(s Sampler) Snapshot {
	if s == nil {
		return Snapshot{}
	}
	return Snapshot{
		Left:  s.IsPressed(MoveLeft),
		Right: s.IsPressed(MoveRight),
		Jump:  s.IsPressed(Jump),
	}
}
