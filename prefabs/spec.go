package prefabs

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

const (
	WorldFile   = "world.yaml"
	ActorFile   = "actor.yaml"
	VehicleFile = "vehicle.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var spec T
	if err := loadInto(filename, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

// loadInto unmarshals over dst, so fields missing from the file keep the
// values dst already holds.
func loadInto(filename string, dst any) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

// Vec3Spec is written as a [x, y, z] sequence.
type Vec3Spec [3]float64

func (v Vec3Spec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3(v)
}

type BoundsSpec struct {
	MinX    float64 `yaml:"min_x"`
	MaxX    float64 `yaml:"max_x"`
	MinZ    float64 `yaml:"min_z"`
	MaxZ    float64 `yaml:"max_z"`
	GroundY float64 `yaml:"ground_y"`
}

type CameraRigSpec struct {
	Target     string   `yaml:"target"`
	Start      Vec3Spec `yaml:"start"`
	Smoothing  float64  `yaml:"smoothing"`
	PitchLimit float64  `yaml:"pitch_limit"`
}

type InputSpec struct {
	YawSensitivity   float64 `yaml:"yaw_sensitivity"`
	PitchSensitivity float64 `yaml:"pitch_sensitivity"`
}

type SwitchSpec struct {
	EnterRadius float64 `yaml:"enter_radius"`
	ExitOffset  float64 `yaml:"exit_offset"`
}

type WorldSpec struct {
	Bounds BoundsSpec    `yaml:"bounds"`
	Camera CameraRigSpec `yaml:"camera"`
	Input  InputSpec     `yaml:"input"`
	Switch SwitchSpec    `yaml:"switch"`
}

type CameraProfileSpec struct {
	Distance   float64 `yaml:"distance"`
	Height     float64 `yaml:"height"`
	LookHeight float64 `yaml:"look_height"`
}

type BipedSpec struct {
	WalkSpeed     float64 `yaml:"walk_speed"`
	RunSpeed      float64 `yaml:"run_speed"`
	Acceleration  float64 `yaml:"acceleration"`
	TurnSmoothing float64 `yaml:"turn_smoothing"`
	Damping       float64 `yaml:"damping"`
	StopEpsilon   float64 `yaml:"stop_epsilon"`
	JumpSpeed     float64 `yaml:"jump_speed"`
	Gravity       float64 `yaml:"gravity"`
}

type ClipSpec struct {
	Name     string  `yaml:"name"`
	Duration float64 `yaml:"duration"`
}

type AnimationSpec struct {
	FadeDuration      float64             `yaml:"fade_duration"`
	MoveThreshold     float64             `yaml:"move_threshold"`
	RunRateMultiplier float64             `yaml:"run_rate_multiplier"`
	MinRate           float64             `yaml:"min_rate"`
	MaxRate           float64             `yaml:"max_rate"`
	PinnedEighth      int                 `yaml:"pinned_eighth"`
	PinnedTime        float64             `yaml:"pinned_time"`
	Clips             []ClipSpec          `yaml:"clips"`
	Patterns          map[string][]string `yaml:"patterns"`
}

type ActorSpec struct {
	Name       string            `yaml:"name"`
	Position   Vec3Spec          `yaml:"position"`
	Locomotion BipedSpec         `yaml:"locomotion"`
	Camera     CameraProfileSpec `yaml:"camera"`
	Animation  AnimationSpec     `yaml:"animation"`
}

type DriveSpec struct {
	MaxForward   float64 `yaml:"max_forward"`
	MaxReverse   float64 `yaml:"max_reverse"`
	Acceleration float64 `yaml:"acceleration"`
	Brake        float64 `yaml:"brake"`
	Friction     float64 `yaml:"friction"`
	StopEpsilon  float64 `yaml:"stop_epsilon"`
	SteerRate    float64 `yaml:"steer_rate"`
	MaxSteer     float64 `yaml:"max_steer"`
	SteerReturn  float64 `yaml:"steer_return"`
	MinMotion    float64 `yaml:"min_motion"`
}

type VehicleSpec struct {
	Name     string            `yaml:"name"`
	Position Vec3Spec          `yaml:"position"`
	Heading  float64           `yaml:"heading"`
	Drive    DriveSpec         `yaml:"drive"`
	Camera   CameraProfileSpec `yaml:"camera"`
}
