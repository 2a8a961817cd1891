package component

// Input stores the control state sampled at the start of the tick.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

var InputComponent = NewComponent[Input]()
