package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/roomdrive/ecs"
	"github.com/milk9111/roomdrive/ecs/component"
	"github.com/milk9111/roomdrive/ecs/entity"
	"github.com/milk9111/roomdrive/ecs/system"
	"github.com/milk9111/roomdrive/input"
	"github.com/milk9111/roomdrive/locomotion"
	"github.com/milk9111/roomdrive/prefabs"
	"github.com/rs/zerolog"
)

// Summary is what a finished run reports.
type Summary struct {
	Ticks       int
	ModeChanges int
	FinalMode   locomotion.Mode
	Actor       mgl64.Vec3
	Vehicle     mgl64.Vec3
	// Escapes counts ticks that ended with a pose outside the room.
	Escapes int
}

type runner struct {
	w     *ecs.World
	agg   *input.Aggregator
	scene entity.Scene
	tun   *prefabs.Tuning
	trace zerolog.Logger
	held  map[input.Key]bool
}

// Run plays sc against a fresh scene built from tun. Trace lines go to trace;
// pipeline events go to log.
func Run(sc *Scenario, tun *prefabs.Tuning, trace, log zerolog.Logger) (Summary, error) {
	if err := sc.validate(); err != nil {
		return Summary{}, fmt.Errorf("sim: %w", err)
	}
	w := ecs.NewWorld()
	agg := input.NewAggregator(tun.InputConfig())
	scene, err := entity.BuildScene(w, tun, agg)
	if err != nil {
		return Summary{}, err
	}
	system.Install(w, agg, log)
	w.SetDeltaTime(1 / float64(sc.TPS))

	r := &runner{w: w, agg: agg, scene: scene, tun: tun, trace: trace, held: make(map[input.Key]bool)}
	var sum Summary
	for _, st := range sc.Steps {
		r.enterStep(st)
		for i := 0; i < st.Ticks; i++ {
			if st.Look != [2]float64{} {
				agg.MouseMove(st.Look[0], st.Look[1])
			}
			before := r.mode()
			w.Update()
			sum.Ticks++
			if i == 0 {
				r.releasePresses(st)
			}

			changed := r.mode() != before
			if changed {
				sum.ModeChanges++
			}
			if !r.inBounds() {
				sum.Escapes++
			}
			if changed || sum.Ticks%sc.TraceEvery == 0 {
				r.record(sum.Ticks, st.Label)
			}
		}
	}

	sum.FinalMode = r.mode()
	if b, ok := ecs.Get(w, scene.Actor, component.BipedComponent.Kind()); ok {
		sum.Actor = b.State.Position
	}
	if v, ok := ecs.Get(w, scene.Vehicle, component.VehicleComponent.Kind()); ok {
		sum.Vehicle = v.State.Position
	}
	return sum, nil
}

func (r *runner) enterStep(st Step) {
	want := make(map[input.Key]bool)
	for _, k := range keys(st.Hold) {
		want[k] = true
	}
	for k := range r.held {
		if !want[k] {
			r.agg.KeyUp(k)
			delete(r.held, k)
		}
	}
	for k := range want {
		if !r.held[k] {
			r.agg.KeyDown(k)
			r.held[k] = true
		}
	}
	for _, k := range keys(st.Press) {
		r.agg.KeyDown(k)
	}
	r.agg.SetPointerLock(st.Look != [2]float64{})
}

func (r *runner) releasePresses(st Step) {
	for _, k := range keys(st.Press) {
		if !r.held[k] {
			r.agg.KeyUp(k)
		}
	}
}

func (r *runner) mode() locomotion.Mode {
	if p, ok := ecs.Get(r.w, r.scene.Actor, component.PilotComponent.Kind()); ok && p.Switch != nil {
		return p.Switch.Mode
	}
	return locomotion.OnFoot
}

func (r *runner) inBounds() bool {
	b := r.tun.Bounds()
	if a, ok := ecs.Get(r.w, r.scene.Actor, component.BipedComponent.Kind()); ok && !b.Contains(a.State.Position) {
		return false
	}
	if v, ok := ecs.Get(r.w, r.scene.Vehicle, component.VehicleComponent.Kind()); ok && !b.Contains(v.State.Position) {
		return false
	}
	return true
}

func (r *runner) record(tick int, label string) {
	ev := r.trace.Log().Int("tick", tick).Str("step", label).Stringer("mode", r.mode())
	if b, ok := ecs.Get(r.w, r.scene.Actor, component.BipedComponent.Kind()); ok {
		ev = ev.Floats64("actor", b.State.Position[:]).Float64("speed", b.State.Speed).Float64("yaw", b.State.Yaw)
	}
	if v, ok := ecs.Get(r.w, r.scene.Vehicle, component.VehicleComponent.Kind()); ok {
		ev = ev.Floats64("vehicle", v.State.Position[:]).
			Float64("throttle", v.State.Throttle).
			Float64("steering", v.State.Steering).
			Float64("heading", v.State.Heading)
	}
	if a, ok := ecs.Get(r.w, r.scene.Actor, component.AnimatorComponent.Kind()); ok && a.Selector != nil {
		st := a.Selector.Status()
		ev = ev.Stringer("anim", st.State).Str("clip", st.Clip).Float64("rate", st.Rate)
	}
	if cam, ok := ecs.Get(r.w, r.scene.Camera, component.CameraComponent.Kind()); ok && cam.Rig != nil {
		t := cam.Rig.Transform()
		ev = ev.Floats64("eye", t.Eye[:]).Str("target", cam.TargetName)
	}
	ev.Send()
}
