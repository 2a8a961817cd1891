package main

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/ecs/render"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/sim"
)

const (
	baseWidth  = 800
	baseHeight = 800
)

var backgroundColor = color.NRGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff}

type GameOptions struct {
	World      string
	Script     string
	Debug      bool
	FixSupport bool
	Watch      bool
}

type Game struct {
	opts   GameOptions
	logger *log.Logger

	spec     *prefabs.WorldSpec
	sim      *sim.Simulation
	stepper  *sim.Stepper
	renderer *render.RenderSystem
	keyboard *Keyboard
	script   *input.Script
	watcher  *prefabs.Watcher

	paused  bool
	pauseUI *ebitenui.UI
	frames  int
}

func NewGame(opts GameOptions, logger *log.Logger) (*Game, error) {
	if opts.World == "" {
		opts.World = prefabs.DefaultWorld
	}
	g := &Game{
		opts:     opts,
		logger:   logger,
		keyboard: NewKeyboard(),
	}
	if err := g.loadWorld(); err != nil {
		return nil, err
	}
	if opts.Script != "" {
		if err := g.loadScript(); err != nil {
			return nil, err
		}
	}
	if err := g.rebuild(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.DiskDir)
		if err != nil {
			logger.Warn("prefab hot reload disabled", "dir", prefabs.DiskDir, "err", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// TPS returns the ebiten tick rate matching the world's tick length.
func (g *Game) TPS() int {
	return max(1, int(math.Round(float64(time.Second)/float64(g.spec.TickDuration()))))
}

func (g *Game) loadWorld() error {
	spec, err := prefabs.LoadWorldSpec(g.opts.World)
	if err != nil {
		return err
	}
	if g.opts.FixSupport {
		spec.Physics.DetectSupportLoss = true
	}
	g.spec = spec
	return nil
}

func (g *Game) loadScript() error {
	src, err := prefabs.LoadScript(g.opts.Script)
	if err != nil {
		return fmt.Errorf("load script %s: %w", g.opts.Script, err)
	}
	script, err := input.NewScript(src)
	if err != nil {
		return err
	}
	g.script = script
	return nil
}

func (g *Game) sampler() input.Sampler {
	if g.script != nil {
		return g.script
	}
	return g.keyboard
}

// rebuild creates a fresh simulation from the loaded world.
func (g *Game) rebuild() error {
	reg, styles := g.spec.Registry()
	s, err := sim.New(reg, g.sampler(), g.spec.Config(), sim.WithLogger(g.logger))
	if err != nil {
		return err
	}

	colors := make([]color.Color, len(styles))
	for _, style := range styles {
		colors[style.Handle] = style.Color
	}
	camera := render.NewCamera(baseWidth, baseHeight)
	g.sim = s
	g.stepper = sim.NewStepper(g.spec.TickDuration())
	g.renderer = render.NewRenderSystem(camera, colors, g.spec.Actor.Color.Or(nil))
	ebiten.SetTPS(g.TPS())

	g.logger.Info("world ready", "name", g.spec.Name, "surfaces", reg.Len(), "detect_support_loss", g.spec.Physics.DetectSupportLoss)
	return nil
}

// Reset restarts the simulation from the spawn point.
func (g *Game) Reset() {
	if g.script != nil {
		if err := g.loadScript(); err != nil {
			g.logger.Warn("reload script", "err", err)
		}
	}
	if err := g.rebuild(); err != nil {
		g.logger.Error("reset", "err", err)
	}
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			g.applyChange(change)
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.logger.Warn("prefab watcher", "err", err)
			}
		default:
			return
		}
	}
}

func (g *Game) applyChange(change prefabs.Change) {
	name := filepath.Base(change.Path)
	switch change.Kind {
	case prefabs.ChangeWorld:
		if name != filepath.Base(g.opts.World) {
			return
		}
		if err := g.loadWorld(); err != nil {
			g.logger.Warn("reload world", "path", change.Path, "err", err)
			return
		}
	case prefabs.ChangeScript:
		if g.script == nil || name != filepath.Base(g.opts.Script) {
			return
		}
	}
	g.logger.Info("prefab changed", "path", change.Path, "kind", change.Kind)
	g.Reset()
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.pollWatcher()
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}

	g.stepper.Advance(time.Second/time.Duration(ebiten.TPS()), g.sim.Tick)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.renderer.Draw(g.sim.World(), screen)

	if g.opts.Debug {
		render.DrawDebug(g.sim, g.renderer.Camera(), screen)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  TPS: %.2f", ebiten.ActualFPS(), ebiten.ActualTPS()), 10, baseHeight-20)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
