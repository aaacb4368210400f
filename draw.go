package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/roomdrive/ecs"
	"github.com/milk9111/roomdrive/ecs/component"
	"github.com/milk9111/roomdrive/locomotion"
	"golang.org/x/image/colornames"
)

const roomMargin = 40

// view maps the room's XZ plane onto the screen, -Z pointing up.
type view struct {
	cx, cy float64
	scale  float64
}

func newView(b locomotion.Bounds) view {
	w, h := b.MaxX-b.MinX, b.MaxZ-b.MinZ
	scale := math.Min((baseWidth-2*roomMargin)/w, (baseHeight-2*roomMargin)/h)
	return view{
		cx:    baseWidth/2 - (b.MinX+w/2)*scale,
		cy:    baseHeight/2 - (b.MinZ+h/2)*scale,
		scale: scale,
	}
}

func (v view) point(p mgl64.Vec3) (float32, float32) {
	return float32(v.cx + p[0]*v.scale), float32(v.cy + p[2]*v.scale)
}

func (v view) line(dst *ebiten.Image, a, b mgl64.Vec3, width float32, clr color.Color) {
	x0, y0 := v.point(a)
	x1, y1 := v.point(b)
	vector.StrokeLine(dst, x0, y0, x1, y1, width, clr, true)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)

	bounds := g.tuning.Bounds()
	v := newView(bounds)
	x0, y0 := v.point(mgl64.Vec3{bounds.MinX, 0, bounds.MinZ})
	x1, y1 := v.point(mgl64.Vec3{bounds.MaxX, 0, bounds.MaxZ})
	vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 2, colornames.Lightgrey, false)

	g.drawVehicle(screen, v)
	g.drawActor(screen, v)
	g.drawCamera(screen, v)
	ebitenutil.DebugPrint(screen, g.hud())
}

func (g *Game) drawVehicle(screen *ebiten.Image, v view) {
	veh, ok := ecs.Get(g.world, g.scene.Vehicle, component.VehicleComponent.Kind())
	if !ok {
		return
	}
	s := veh.State
	rot := mgl64.Rotate3DY(s.Heading)
	fwd := rot.Mul3x1(mgl64.Vec3{0, 0, -1.2})
	side := rot.Mul3x1(mgl64.Vec3{0.7, 0, 0})
	corners := []mgl64.Vec3{
		s.Position.Add(fwd).Add(side),
		s.Position.Add(fwd).Sub(side),
		s.Position.Sub(fwd).Sub(side),
		s.Position.Sub(fwd).Add(side),
	}
	for i := range corners {
		v.line(screen, corners[i], corners[(i+1)%len(corners)], 2, colornames.Royalblue)
	}
	v.line(screen, s.Position, s.Position.Add(fwd.Mul(1.6)), 2, colornames.White)

	if p, ok := ecs.Get(g.world, g.scene.Actor, component.PilotComponent.Kind()); ok && p.Switch != nil && p.Switch.Mode == locomotion.OnFoot {
		cx, cy := v.point(s.Position)
		vector.StrokeCircle(screen, cx, cy, float32(p.Switch.Radius*v.scale), 1, colornames.Dimgray, true)
	}
}

func (g *Game) drawActor(screen *ebiten.Image, v view) {
	b, ok := ecs.Get(g.world, g.scene.Actor, component.BipedComponent.Kind())
	if !ok || b.State.Mode == locomotion.InVehicle {
		return
	}
	s := b.State
	x, y := v.point(s.Position)
	r := float32(0.4 * v.scale)
	if !s.Grounded {
		r *= 1.3
	}
	vector.FillCircle(screen, x, y, r, colornames.Orange, true)
	facing := mgl64.Vec3{math.Sin(s.Yaw), 0, math.Cos(s.Yaw)}
	v.line(screen, s.Position, s.Position.Add(facing.Mul(0.9)), 2, colornames.White)
}

func (g *Game) drawCamera(screen *ebiten.Image, v view) {
	cam, ok := ecs.Get(g.world, g.scene.Camera, component.CameraComponent.Kind())
	if !ok || cam.Rig == nil {
		return
	}
	t := cam.Rig.Transform()
	v.line(screen, t.Eye, t.LookAt, 1, colornames.Yellowgreen)
	x, y := v.point(t.Eye)
	vector.FillCircle(screen, x, y, 4, colornames.Yellowgreen, true)
}

func (g *Game) hud() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "FPS: %.1f  TPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())

	pilot, _ := ecs.Get(g.world, g.scene.Actor, component.PilotComponent.Kind())
	mode := locomotion.OnFoot
	if pilot != nil && pilot.Switch != nil {
		mode = pilot.Switch.Mode
	}
	fmt.Fprintf(&sb, "mode: %s\n", mode)

	if b, ok := ecs.Get(g.world, g.scene.Actor, component.BipedComponent.Kind()); ok && mode == locomotion.OnFoot {
		fmt.Fprintf(&sb, "speed: %.2f  grounded: %v\n", b.State.Speed, b.State.Grounded)
	}
	if veh, ok := ecs.Get(g.world, g.scene.Vehicle, component.VehicleComponent.Kind()); ok && mode == locomotion.InVehicle {
		fmt.Fprintf(&sb, "throttle: %.2f  steering: %.2f  heading: %.2f\n", veh.State.Throttle, veh.State.Steering, veh.State.Heading)
	}
	if a, ok := ecs.Get(g.world, g.scene.Actor, component.AnimatorComponent.Kind()); ok && a.Selector != nil {
		st := a.Selector.Status()
		fmt.Fprintf(&sb, "anim: %s  clip: %q  rate: %.2f  paused: %v\n", st.State, st.Clip, st.Rate, st.Paused)
	}

	if g.debug {
		if cam, ok := ecs.Get(g.world, g.scene.Camera, component.CameraComponent.Kind()); ok {
			t := cam.Rig.Transform()
			fmt.Fprintf(&sb, "camera: yaw %.2f pitch %.2f eye (%.1f, %.1f, %.1f) target %s\n",
				cam.View.Yaw, cam.View.Pitch, t.Eye[0], t.Eye[1], t.Eye[2], cam.TargetName)
		}
		fmt.Fprintf(&sb, "tick: %d\n", g.world.Tick())
	}

	if !g.agg.PointerLocked() {
		sb.WriteString("\nclick to look around, Esc to release\n")
	}
	if pilot != nil && pilot.Prompt {
		sb.WriteString("\nPress F to Enter\n")
	}
	return sb.String()
}
