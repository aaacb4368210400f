package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/roomdrive/ecs"
	"github.com/milk9111/roomdrive/ecs/entity"
	"github.com/milk9111/roomdrive/ecs/system"
	"github.com/milk9111/roomdrive/input"
	"github.com/milk9111/roomdrive/logging"
	"github.com/milk9111/roomdrive/prefabs"
	"github.com/rs/zerolog"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyW:          input.KeyW,
	ebiten.KeyS:          input.KeyS,
	ebiten.KeyA:          input.KeyA,
	ebiten.KeyD:          input.KeyD,
	ebiten.KeyArrowUp:    input.KeyArrowUp,
	ebiten.KeyArrowDown:  input.KeyArrowDown,
	ebiten.KeyArrowLeft:  input.KeyArrowLeft,
	ebiten.KeyArrowRight: input.KeyArrowRight,
	ebiten.KeyShiftLeft:  input.KeyShiftLeft,
	ebiten.KeyShiftRight: input.KeyShiftRight,
	ebiten.KeySpace:      input.KeySpace,
	ebiten.KeyF:          input.KeyF,
}

type Game struct {
	frames int
	debug  bool
	log    zerolog.Logger

	world   *ecs.World
	agg     *input.Aggregator
	scene   entity.Scene
	tuning  *prefabs.Tuning
	watcher *prefabs.Watcher
	applied map[string]time.Time

	keys           []ebiten.Key
	cursorX        int
	cursorY        int
	cursorTracking bool
}

func NewGame(debug bool, log zerolog.Logger) (*Game, error) {
	tun, err := prefabs.LoadTuning()
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	agg := input.NewAggregator(tun.InputConfig())
	scene, err := entity.BuildScene(world, tun, agg)
	if err != nil {
		return nil, err
	}
	system.Install(world, agg, log)

	g := &Game{
		debug:   debug,
		log:     log,
		world:   world,
		agg:     agg,
		scene:   scene,
		tuning:  tun,
		applied: make(map[string]time.Time),
	}
	for _, name := range []string{prefabs.WorldFile, prefabs.ActorFile, prefabs.VehicleFile} {
		if mt, ok := prefabs.ModTime(name); ok {
			g.applied[name] = mt
		}
	}

	if info, err := os.Stat(prefabs.Dir); err == nil && info.IsDir() {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Warn().Err(err).Str("dir", prefabs.Dir).Msg("tuning hot reload disabled")
		} else {
			g.watcher = w
			plog := logging.For(log, "prefabs")
			plog.Info().Str("dir", prefabs.Dir).Msg("watching tuning")
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	g.pollPointer()
	g.pollKeys()
	g.pollReload()

	g.world.SetDeltaTime(1 / float64(ebiten.TPS()))
	g.world.Update()
	return nil
}

// pollPointer treats cursor capture as pointer lock: a click captures, Escape
// releases, and captured cursor motion becomes look input.
func (g *Game) pollPointer() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && g.agg.PointerLocked() {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		g.agg.ReleasePointer()
		g.cursorTracking = false
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !g.agg.PointerLocked() {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		g.agg.SetPointerLock(true)
	}
	if g.agg.PointerLocked() && ebiten.CursorMode() != ebiten.CursorModeCaptured {
		// the window lost focus and the OS took the cursor back
		g.agg.ReleasePointer()
		g.cursorTracking = false
	}

	x, y := ebiten.CursorPosition()
	if g.cursorTracking {
		g.agg.MouseMove(float64(x-g.cursorX), float64(y-g.cursorY))
	}
	g.cursorX, g.cursorY = x, y
	g.cursorTracking = g.agg.PointerLocked()
}

func (g *Game) pollKeys() {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if mapped, ok := keyMap[k]; ok {
			g.agg.KeyDown(mapped)
		}
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if mapped, ok := keyMap[k]; ok {
			g.agg.KeyUp(mapped)
		}
	}
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	paths, err := g.watcher.Poll()
	if err != nil {
		g.log.Warn().Err(err).Msg("tuning watcher")
	}
	for _, p := range paths {
		// editors often emit several events per save
		name := filepath.Base(p)
		if mt, ok := prefabs.ModTime(name); ok {
			if mt.Equal(g.applied[name]) {
				continue
			}
			g.applied[name] = mt
		}
		next, err := g.tuning.Reload(p)
		if err != nil {
			g.log.Warn().Err(err).Str("file", p).Msg("tuning reload rejected; keeping previous values")
			continue
		}
		if err := entity.ApplyTuning(g.world, g.scene, g.tuning, next, g.agg); err != nil {
			g.log.Warn().Err(err).Str("file", p).Msg("tuning apply failed")
			continue
		}
		g.tuning = next
		g.world.Events().Push(ecs.Event{Type: ecs.EventTuningReloaded, Data: name})
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
