package component

// Intent accumulates the movement requested by input during the current
// tick. DY is recorded for jumps but never moves the actor; vertical motion
// comes from velocity.
type Intent struct {
	DX float64
	DY float64
}

var IntentComponent = NewComponent[Intent]()
