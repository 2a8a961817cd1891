package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/input"
)

// InputSystem samples the controls once per tick and copies the snapshot
// onto every entity with an Input component.
type InputSystem struct {
	sampler input.Sampler
	logger  *log.Logger
}

func NewInputSystem(sampler input.Sampler, logger *log.Logger) *InputSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &InputSystem{sampler: sampler, logger: logger}
}

// SetSampler swaps the control source, e.g. after a script reload.
func (i *InputSystem) SetSampler(sampler input.Sampler) {
	i.sampler = sampler
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var snap input.Snapshot
	pollOK := true
	if poller, ok := i.sampler.(input.Poller); ok {
		if err := poller.Poll(); err != nil {
			i.logger.Warn("input poll failed, treating controls as released", "err", err)
			pollOK = false
		}
	}
	if pollOK {
		snap = input.Take(i.sampler)
	}

	ecs.ForEach(w, component.InputComponent, func(_ ecs.Entity, in *component.Input) {
		in.Left = snap.Left
		in.Right = snap.Right
		in.Jump = snap.Jump
	})
}
