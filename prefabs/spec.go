package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/geometry"
	"github.com/milk9111/platformer/sim"
	"gopkg.in/yaml.v3"
)

const DefaultWorld = "world.yaml"

type WorldSpec struct {
	Name     string        `yaml:"name"`
	Physics  PhysicsSpec   `yaml:"physics"`
	Actor    ActorSpec     `yaml:"actor"`
	Surfaces []SurfaceSpec `yaml:"surfaces"`
	// Script is the input script the headless runner uses when none is given.
	Script   string        `yaml:"script"`
}

type PhysicsSpec struct {
	TickSeconds       float64 `yaml:"tick_seconds"`
	MoveStep          float64 `yaml:"move_step"`
	JumpSpeed         float64 `yaml:"jump_speed"`
	JumpIntent        float64 `yaml:"jump_intent"`
	Gravity           float64 `yaml:"gravity"`
	TerminalVelocity  float64 `yaml:"terminal_velocity"`
	BounceSpeed       float64 `yaml:"bounce_speed"`
	DetectSupportLoss bool    `yaml:"detect_support_loss"`
}

type ActorSpec struct {
	Transform TransformSpec `yaml:"transform"`
	Velocity  VelocitySpec  `yaml:"velocity"`
	Color     *YAMLColor    `yaml:"color"`
}

type TransformSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Z      float64 `yaml:"z"`
	ScaleX float64 `yaml:"scale_x"`
	ScaleY float64 `yaml:"scale_y"`
}

type VelocitySpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type SurfaceSpec struct {
	Name   string     `yaml:"name"`
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Floor  bool       `yaml:"floor"`
	Color  *YAMLColor `yaml:"color"`
}

// SurfaceStyle is the presentation data of a registered surface.
type SurfaceStyle struct {
	Handle geometry.Handle
	Name   string
	Color  color.Color
}

// defaultWorldSpec fills every field a world file may leave out.
func defaultWorldSpec() WorldSpec {
	tuning := system.DefaultTuning()
	spawn := entity.DefaultActorSpawn()
	return WorldSpec{
		Physics: PhysicsSpec{
			TickSeconds:      sim.TickDuration.Seconds(),
			MoveStep:         tuning.MoveStep,
			JumpSpeed:        tuning.JumpSpeed,
			JumpIntent:       tuning.JumpIntent,
			Gravity:          tuning.Gravity,
			TerminalVelocity: tuning.TerminalVelocity,
			BounceSpeed:      tuning.BounceSpeed,
		},
		Actor: ActorSpec{
			Transform: TransformSpec{X: spawn.X, Y: spawn.Y, Z: spawn.Z, ScaleX: spawn.ScaleX, ScaleY: spawn.ScaleY},
			Velocity:  VelocitySpec{X: spawn.Velocity.X, Y: spawn.Velocity.Y, Z: spawn.Velocity.Z},
		},
	}
}

// LoadWorldSpec loads and validates a world prefab.
func LoadWorldSpec(name string) (*WorldSpec, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	spec, err := ParseWorldSpec(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return spec, nil
}

// ParseWorldSpec decodes a world prefab. Missing physics and actor fields
// keep their defaults.
func ParseWorldSpec(data []byte) (*WorldSpec, error) {
	spec := defaultWorldSpec()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("unmarshal world: %w", err)
	}
	if err := spec.validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *WorldSpec) validate() error {
	if s.Physics.TickSeconds <= 0 {
		return fmt.Errorf("physics.tick_seconds must be positive, got %v", s.Physics.TickSeconds)
	}
	if s.Actor.Transform.ScaleX <= 0 || s.Actor.Transform.ScaleY <= 0 {
		return fmt.Errorf("actor scale must be positive, got %vx%v", s.Actor.Transform.ScaleX, s.Actor.Transform.ScaleY)
	}
	for i, surface := range s.Surfaces {
		if surface.Width <= 0 || surface.Height <= 0 {
			return fmt.Errorf("surface %d (%s): size must be positive, got %vx%v", i, surface.Name, surface.Width, surface.Height)
		}
	}
	return nil
}

// Registry builds the surface registry in file order. The returned styles
// are indexed by handle.
func (s *WorldSpec) Registry() (*geometry.Registry, []SurfaceStyle) {
	reg := geometry.NewRegistry()
	styles := make([]SurfaceStyle, 0, len(s.Surfaces))
	for _, surface := range s.Surfaces {
		h := reg.Add(
			cp.Vector{X: surface.X, Y: surface.Y},
			cp.Vector{X: surface.Width / 2, Y: surface.Height / 2},
			surface.Floor,
		)
		styles = append(styles, SurfaceStyle{Handle: h, Name: surface.Name, Color: surface.Color.Or(color.Transparent)})
	}
	return reg, styles
}

// Config returns the simulation tuning and spawn described by the spec.
func (s *WorldSpec) Config() sim.Config {
	p := s.Physics
	t := s.Actor.Transform
	v := s.Actor.Velocity
	return sim.Config{
		Tuning: system.Tuning{
			MoveStep:          p.MoveStep,
			JumpSpeed:         p.JumpSpeed,
			JumpIntent:        p.JumpIntent,
			Gravity:           p.Gravity,
			TerminalVelocity:  p.TerminalVelocity,
			BounceSpeed:       p.BounceSpeed,
			DetectSupportLoss: p.DetectSupportLoss,
		},
		Spawn: entity.ActorSpawn{
			X:        t.X,
			Y:        t.Y,
			Z:        t.Z,
			ScaleX:   t.ScaleX,
			ScaleY:   t.ScaleY,
			Velocity: component.Velocity{X: v.X, Y: v.Y, Z: v.Z},
		},
	}
}

// TickDuration returns the simulated length of one tick.
func (s *WorldSpec) TickDuration() time.Duration {
	return time.Duration(s.Physics.TickSeconds * float64(time.Second))
}

type YAMLColor struct {
	color.Color
}

// Or returns the parsed color, or fallback when none was set.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
