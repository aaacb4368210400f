package system

import (
	"github.com/milk9111/roomdrive/ecs"
	"github.com/milk9111/roomdrive/input"
	"github.com/milk9111/roomdrive/logging"
	"github.com/rs/zerolog"
)

// Install registers the per-tick pipeline on w in its fixed order.
func Install(w *ecs.World, agg *input.Aggregator, log zerolog.Logger) {
	w.AddSystem(NewInputSystem(agg))
	w.AddSystem(NewModeSystem(logging.For(log, "mode")))
	w.AddSystem(NewBipedSystem())
	w.AddSystem(NewVehicleSystem())
	w.AddSystem(NewAnimationSystem())
	w.AddSystem(NewCameraSystem())
	w.AddSystem(NewEventLogSystem(logging.For(log, "events")))
}
