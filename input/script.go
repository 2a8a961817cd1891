package input

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

var scriptOutputs = []string{"left", "right", "jump"}

// Script drives the controls from a tengo program. The program runs once per
// Poll with `tick` set to the number of earlier polls and must assign the
// booleans `left`, `right` and `jump`:
//
//	left := false
//	right := tick < 20
//	jump := tick == 25
type Script struct {
	compiled *tengo.Compiled
	tick     int
	state    Snapshot
}

// NewScript compiles src. Every stdlib module is importable.
func NewScript(src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	if err := script.Add("tick", 0); err != nil {
		return nil, fmt.Errorf("input: bind tick: %w", err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input: compile script: %w", err)
	}
	return &Script{compiled: compiled}, nil
}

// Poll runs the script for the next tick. On error the state is cleared so
// the tick sees nothing pressed.
func (s *Script) Poll() error {
	tick := s.tick
	s.tick++
	s.state = Snapshot{}

	if err := s.compiled.Set("tick", tick); err != nil {
		return fmt.Errorf("input: set tick: %w", err)
	}
	if err := s.compiled.Run(); err != nil {
		return fmt.Errorf("input: run script at tick %d: %w", tick, err)
	}
	for _, name := range scriptOutputs {
		if !s.compiled.IsDefined(name) {
			return fmt.Errorf("input: script does not define %q", name)
		}
	}
	s.state = Snapshot{
		Left:  s.compiled.Get("left").Bool(),
		Right: s.compiled.Get("right").Bool(),
		Jump:  s.compiled.Get("jump").Bool(),
	}
	return nil
}

// Ticks returns how many times the script has been polled.
func (s *Script) Ticks() int {
	return s.tick
}

func (s *Script) IsPressed(c Control) bool {
	return s.state.IsPressed(c)
}
