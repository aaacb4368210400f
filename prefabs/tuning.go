package prefabs

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"github.com/milk9111/roomdrive/animation"
	"github.com/milk9111/roomdrive/camera"
	"github.com/milk9111/roomdrive/input"
	"github.com/milk9111/roomdrive/locomotion"
)

// Tuning is every spec the scene is built from.
type Tuning struct {
	World   WorldSpec
	Actor   ActorSpec
	Vehicle VehicleSpec
}

// DefaultTuning mirrors the embedded files. Loading overlays a file on top of
// these values, so a partial override file is valid.
func DefaultTuning() Tuning {
	bp := locomotion.DefaultBipedParams()
	vp := locomotion.DefaultVehicleParams()
	ac := animation.DefaultConfig()
	ic := input.DefaultConfig()
	bc, vc := camera.BipedProfile(), camera.VehicleProfile()

	return Tuning{
		World: WorldSpec{
			Bounds: BoundsSpec{MinX: -23, MaxX: 23, MinZ: -23, MaxZ: 23},
			Camera: CameraRigSpec{Target: "actor", Start: Vec3Spec{0, 5, 15}, Smoothing: 0.1, PitchLimit: math.Pi / 4},
			Input:  InputSpec{YawSensitivity: ic.YawSensitivity, PitchSensitivity: ic.PitchSensitivity},
			Switch: SwitchSpec{EnterRadius: 3, ExitOffset: 2},
		},
		Actor: ActorSpec{
			Name: "actor",
			Locomotion: BipedSpec{
				WalkSpeed: bp.WalkSpeed, RunSpeed: bp.RunSpeed, Acceleration: bp.Acceleration,
				TurnSmoothing: bp.TurnSmoothing, Damping: bp.Damping, StopEpsilon: bp.StopEpsilon,
				JumpSpeed: bp.JumpSpeed, Gravity: bp.Gravity,
			},
			Camera: CameraProfileSpec{Distance: bc.Distance, Height: bc.Height, LookHeight: bc.LookHeight},
			Animation: AnimationSpec{
				FadeDuration: ac.FadeDuration, MoveThreshold: ac.MoveThreshold,
				RunRateMultiplier: ac.RunRateMultiplier, MinRate: ac.MinRate, MaxRate: ac.MaxRate,
				PinnedEighth: ac.PinnedEighth, PinnedTime: ac.PinnedTime,
			},
		},
		Vehicle: VehicleSpec{
			Name: "vehicle",
			Drive: DriveSpec{
				MaxForward: vp.MaxForward, MaxReverse: vp.MaxReverse, Acceleration: vp.Acceleration,
				Brake: vp.Brake, Friction: vp.Friction, StopEpsilon: vp.StopEpsilon,
				SteerRate: vp.SteerRate, MaxSteer: vp.MaxSteer, SteerReturn: vp.SteerReturn,
				MinMotion: vp.MinMotion,
			},
			Camera: CameraProfileSpec{Distance: vc.Distance, Height: vc.Height, LookHeight: vc.LookHeight},
		},
	}
}

// LoadTuning reads all three specs over DefaultTuning and validates them.
func LoadTuning() (*Tuning, error) {
	t := DefaultTuning()
	if err := loadInto(WorldFile, &t.World); err != nil {
		return nil, err
	}
	if err := loadInto(ActorFile, &t.Actor); err != nil {
		return nil, err
	}
	if err := loadInto(VehicleFile, &t.Vehicle); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Reload re-reads the spec file that changed and returns a new tuning,
// leaving t untouched on failure.
func (t *Tuning) Reload(path string) (*Tuning, error) {
	next := *t
	var err error
	switch name := filepath.Base(path); name {
	case WorldFile:
		next.World = DefaultTuning().World
		err = loadInto(name, &next.World)
	case ActorFile:
		next.Actor = DefaultTuning().Actor
		err = loadInto(name, &next.Actor)
	case VehicleFile:
		next.Vehicle = DefaultTuning().Vehicle
		err = loadInto(name, &next.Vehicle)
	default:
		return nil, fmt.Errorf("prefabs: reload %s: not a tuning spec", name)
	}
	if err != nil {
		return nil, err
	}
	if err := next.Validate(); err != nil {
		return nil, err
	}
	return &next, nil
}

// Validate rejects tuning the simulation cannot run with.
func (t *Tuning) Validate() error {
	var errs []error
	b := t.World.Bounds
	if b.MinX >= b.MaxX || b.MinZ >= b.MaxZ {
		errs = append(errs, fmt.Errorf("prefabs: %s: empty bounds", WorldFile))
	}
	if t.World.Camera.Smoothing <= 0 || t.World.Camera.Smoothing > 1 {
		errs = append(errs, fmt.Errorf("prefabs: %s: camera smoothing %v outside (0, 1]", WorldFile, t.World.Camera.Smoothing))
	}
	if t.World.Switch.EnterRadius <= 0 {
		errs = append(errs, fmt.Errorf("prefabs: %s: enter radius must be positive", WorldFile))
	}
	if t.Actor.Locomotion.WalkSpeed <= 0 || t.Actor.Locomotion.RunSpeed < t.Actor.Locomotion.WalkSpeed {
		errs = append(errs, fmt.Errorf("prefabs: %s: need 0 < walk_speed <= run_speed", ActorFile))
	}
	if d := t.Actor.Locomotion.Damping; d < 0 || d >= 1 {
		errs = append(errs, fmt.Errorf("prefabs: %s: damping %v outside [0, 1)", ActorFile, d))
	}
	if a := t.Actor.Animation; a.MinRate <= 0 || a.MaxRate < a.MinRate {
		errs = append(errs, fmt.Errorf("prefabs: %s: need 0 < min_rate <= max_rate", ActorFile))
	}
	for _, c := range t.Actor.Animation.Clips {
		if c.Name == "" || c.Duration <= 0 {
			errs = append(errs, fmt.Errorf("prefabs: %s: clip %q needs a name and a positive duration", ActorFile, c.Name))
		}
	}
	if _, err := t.Patterns(); err != nil {
		errs = append(errs, fmt.Errorf("prefabs: %s: %w", ActorFile, err))
	}
	if d := t.Vehicle.Drive; d.MaxForward <= 0 || d.MaxReverse < 0 {
		errs = append(errs, fmt.Errorf("prefabs: %s: need max_forward > 0 and max_reverse >= 0", VehicleFile))
	}
	if f := t.Vehicle.Drive.Friction; f < 0 || f >= 1 {
		errs = append(errs, fmt.Errorf("prefabs: %s: friction %v outside [0, 1)", VehicleFile, f))
	}
	return errors.Join(errs...)
}

func (t *Tuning) Bounds() locomotion.Bounds {
	b := t.World.Bounds
	return locomotion.Bounds{MinX: b.MinX, MaxX: b.MaxX, MinZ: b.MinZ, MaxZ: b.MaxZ, GroundY: b.GroundY}
}

func (t *Tuning) InputConfig() input.Config {
	return input.Config{YawSensitivity: t.World.Input.YawSensitivity, PitchSensitivity: t.World.Input.PitchSensitivity}
}

func (t *Tuning) BipedParams() locomotion.BipedParams {
	s := t.Actor.Locomotion
	return locomotion.BipedParams{
		WalkSpeed: s.WalkSpeed, RunSpeed: s.RunSpeed, Acceleration: s.Acceleration,
		TurnSmoothing: s.TurnSmoothing, Damping: s.Damping, StopEpsilon: s.StopEpsilon,
		JumpSpeed: s.JumpSpeed, Gravity: s.Gravity,
	}
}

func (t *Tuning) VehicleParams() locomotion.VehicleParams {
	s := t.Vehicle.Drive
	return locomotion.VehicleParams{
		MaxForward: s.MaxForward, MaxReverse: s.MaxReverse, Acceleration: s.Acceleration,
		Brake: s.Brake, Friction: s.Friction, StopEpsilon: s.StopEpsilon,
		SteerRate: s.SteerRate, MaxSteer: s.MaxSteer, SteerReturn: s.SteerReturn,
		MinMotion: s.MinMotion,
	}
}

// SelectorConfig ties the playback-rate reference speeds to the biped's
// walk and run speeds.
func (t *Tuning) SelectorConfig() animation.Config {
	a := t.Actor.Animation
	return animation.Config{
		FadeDuration:      a.FadeDuration,
		MoveThreshold:     a.MoveThreshold,
		WalkSpeed:         t.Actor.Locomotion.WalkSpeed,
		RunSpeed:          t.Actor.Locomotion.RunSpeed,
		RunRateMultiplier: a.RunRateMultiplier,
		MinRate:           a.MinRate,
		MaxRate:           a.MaxRate,
		PinnedEighth:      a.PinnedEighth,
		PinnedTime:        a.PinnedTime,
	}
}

func (t *Tuning) ClipDefs() []animation.ClipDef {
	out := make([]animation.ClipDef, 0, len(t.Actor.Animation.Clips))
	for _, c := range t.Actor.Animation.Clips {
		out = append(out, animation.ClipDef{Name: c.Name, Duration: c.Duration})
	}
	return out
}

// Patterns compiles the configured role patterns, or returns the defaults
// when none are configured.
func (t *Tuning) Patterns() (animation.RolePatterns, error) {
	if len(t.Actor.Animation.Patterns) == 0 {
		return animation.DefaultPatterns(), nil
	}
	return animation.CompilePatterns(t.Actor.Animation.Patterns)
}

func (t *Tuning) BipedProfile() camera.Profile {
	return t.Actor.Camera.profile()
}

func (t *Tuning) VehicleProfile() camera.Profile {
	return t.Vehicle.Camera.profile()
}

func (s CameraProfileSpec) profile() camera.Profile {
	return camera.Profile{Distance: s.Distance, Height: s.Height, LookHeight: s.LookHeight}
}
