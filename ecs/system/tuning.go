package system

const (
	defaultMoveStep         = 10.0
	defaultJumpSpeed        = 30.0
	defaultJumpIntent       = 10.0
	defaultGravity          = 2.0
	defaultTerminalVelocity = -15.0
	defaultBounceSpeed      = -2.0
)

// Tuning holds the per-tick movement constants. Units are world units per
// tick; negative Y is down.
type Tuning struct {
	MoveStep         float64
	JumpSpeed        float64
	JumpIntent       float64
	Gravity          float64
	TerminalVelocity float64
	BounceSpeed      float64
	// DetectSupportLoss clears the actor's support once it no longer overlaps
	// the surface it landed on. Off by default: a landed actor keeps its
	// support until a new contact replaces it.
	DetectSupportLoss bool
}

func DefaultTuning() Tuning {
	return Tuning{
		MoveStep:         defaultMoveStep,
		JumpSpeed:        defaultJumpSpeed,
		JumpIntent:       defaultJumpIntent,
		Gravity:          defaultGravity,
		TerminalVelocity: defaultTerminalVelocity,
		BounceSpeed:      defaultBounceSpeed,
	}
}
