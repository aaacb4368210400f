package system

import (
	"github.com/milk9111/roomdrive/animation"
	"github.com/milk9111/roomdrive/ecs"
	"github.com/rs/zerolog"
)

var eventMessages = map[ecs.EventType]string{
	ecs.EventModeChanged:     "mode changed",
	ecs.EventClipChanged:     "animation transition",
	ecs.EventPointerLock:     "pointer lock changed",
	ecs.EventTuningReloaded:  "tuning reloaded",
	ecs.EventEnterRejected:   "too far from vehicle",
	ecs.EventRolesUnresolved: "animation roles unresolved",
}

// EventLogSystem drains the world event queue into the logger. It runs last.
type EventLogSystem struct {
	log zerolog.Logger
}

func NewEventLogSystem(log zerolog.Logger) *EventLogSystem {
	return &EventLogSystem{log: log}
}

func (s *EventLogSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		var ev *zerolog.Event
		switch evt.Type {
		case ecs.EventEnterRejected:
			ev = s.log.Debug()
		case ecs.EventRolesUnresolved:
			ev = s.log.Warn()
		default:
			ev = s.log.Info()
		}
		ev = ev.Str("event", string(evt.Type)).Uint64("tick", w.Tick())
		if evt.Entity.Valid() {
			ev = ev.Stringer("entity", evt.Entity)
		}

		switch d := evt.Data.(type) {
		case ModeChange:
			ev = ev.Stringer("from", d.From).Stringer("to", d.To).Str("target", d.Target)
		case animation.Transition:
			ev = ev.Stringer("from", d.From).Stringer("to", d.To).Str("clip", d.Clip)
		case error:
			ev = ev.Err(d)
		case bool:
			ev = ev.Bool("locked", d)
		case float64:
			ev = ev.Float64("distance", d)
		case string:
			ev = ev.Str("file", d)
		case nil:
		default:
			ev = ev.Interface("data", d)
		}

		msg, ok := eventMessages[evt.Type]
		if !ok {
			msg = string(evt.Type)
		}
		ev.Msg(msg)
	}
}
