package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and per-tick logging")
	fixSupport := flag.Bool("fix-support", false, "clear support when the actor walks off its surface")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	worldName := flag.String("world", "", "world prefab in prefabs/ (default world.yaml)")
	scriptName := flag.String("script", "", "drive the actor with a tengo script from prefabs/scripts instead of the keyboard")
	watch := flag.Bool("watch", true, "reload prefabs when they change on disk")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("platformer")

	game, err := NewGame(GameOptions{
		World:      *worldName,
		Script:     *scriptName,
		Debug:      *debug,
		FixSupport: *fixSupport,
		Watch:      *watch,
	}, logger)
	if err != nil {
		logger.Fatal("start", "err", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("run", "err", err)
	}
}
