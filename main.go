package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/roomdrive/logging"
	"github.com/milk9111/roomdrive/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and debug logging")
	logLevel := flag.String("log-level", "info", "log level (trace, debug, info, warn, error, off)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory whose yaml files override and hot-reload the embedded tuning")
	flag.Parse()

	level := *logLevel
	if *debug {
		level = "debug"
	}
	logger := logging.New(os.Stderr, level, true)
	prefabs.Dir = *prefabDir

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("roomdrive")

	game, err := NewGame(*debug, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("build scene")
	}

	if err := runGame(game, ebiten.RunGame); err != nil {
		logger.Error().Err(err).Msg("run game")
		os.Exit(1)
	}
}

// runGame hands g to run and releases the tuning watcher however run ends.
func runGame(g *Game, run func(ebiten.Game) error) error {
	defer g.Close()
	return run(g)
}
