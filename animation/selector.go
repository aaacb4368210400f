package animation

import "github.com/milk9111/roomdrive/common"

// State is the presentation state of a biped.
type State int

const (
	Idle State = iota
	Walking
	Running
	// PinnedFrame stands in for Idle when no idle clip exists: a clip held
	// paused at a fixed timestamp.
	PinnedFrame
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walking:
		return "walking"
	case Running:
		return "running"
	case PinnedFrame:
		return "pinned_frame"
	default:
		return "unknown"
	}
}

// Config tunes the selector.
type Config struct {
	FadeDuration  float64
	MoveThreshold float64
	// WalkSpeed and RunSpeed are the nominal top speeds the playback rate is
	// measured against.
	WalkSpeed         float64
	RunSpeed          float64
	RunRateMultiplier float64
	MinRate           float64
	MaxRate           float64
	// PinnedEighth picks the pinned timestamp as PinnedEighth/8 of the clip
	// duration. PinnedTime, when >= 0, overrides it with an absolute time.
	PinnedEighth int
	PinnedTime   float64
}

// DefaultConfig returns the stock selector tuning.
func DefaultConfig() Config {
	return Config{
		FadeDuration:      0.15,
		MoveThreshold:     0.6,
		WalkSpeed:         4.8,
		RunSpeed:          9.6,
		RunRateMultiplier: 1.2,
		MinRate:           0.5,
		MaxRate:           1.5,
		PinnedEighth:      0,
		PinnedTime:        -1,
	}
}

// Transition describes a state change reported by Update.
type Transition struct {
	From State
	To   State
	Clip string
}

// Status is the presentation snapshot exposed to the renderer.
type Status struct {
	State  State
	Clip   string
	Paused bool
	Rate   float64
}

// Selector picks the authoritative clip from the actor's integrated speed.
type Selector struct {
	cfg    Config
	roles  RoleTable
	state  State
	active Clip
	rate   float64
}

// NewSelector starts the actor in its rest pose: the idle clip if one
// resolved, otherwise the first clip paused at the pinned time, otherwise
// no clip at all.
func NewSelector(roles RoleTable, cfg Config) *Selector {
	s := &Selector{cfg: cfg, roles: roles, rate: 1}
	if idle, ok := roles.Clip(RoleIdle); ok {
		idle.Play()
		s.active = idle
		s.state = Idle
		return s
	}
	s.state = PinnedFrame
	if first, ok := roles.First(); ok {
		first.Play()
		s.active = first
		s.pin(first)
	}
	return s
}

// SetConfig swaps the tuning. A clip currently held at the pinned frame is
// re-pinned at the new time.
func (s *Selector) SetConfig(cfg Config) {
	if s == nil {
		return
	}
	s.cfg = cfg
	if s.state == PinnedFrame && s.active != nil {
		s.pin(s.active)
	}
}

// State returns the current presentation state.
func (s *Selector) State() State {
	if s == nil {
		return PinnedFrame
	}
	return s.state
}

// Status returns the active clip and its playback status.
func (s *Selector) Status() Status {
	if s == nil {
		return Status{State: PinnedFrame}
	}
	st := Status{State: s.state, Rate: s.rate}
	if s.active != nil {
		st.Clip = s.active.Name()
		st.Paused = s.active.Paused()
	}
	return st
}

// PinnedTime is the timestamp a clip is held at when standing in for idle.
func (s *Selector) PinnedTime(c Clip) float64 {
	if c == nil {
		return 0
	}
	d := c.Duration()
	if s.cfg.PinnedTime >= 0 && s.cfg.PinnedTime <= d {
		return s.cfg.PinnedTime
	}
	eighth := s.cfg.PinnedEighth
	if eighth < 0 {
		eighth = 0
	}
	return d * float64(eighth%8) / 8
}

// Update runs one tick of the state machine. Movement states are gated on
// speed, not on held keys; run is the run modifier.
func (s *Selector) Update(speed float64, run bool) (Transition, bool) {
	if s == nil {
		return Transition{}, false
	}
	from := s.state

	if speed <= s.cfg.MoveThreshold {
		s.rest()
	} else {
		s.move(speed, run)
	}

	if s.state == from {
		return Transition{}, false
	}
	tr := Transition{From: from, To: s.state}
	if s.active != nil {
		tr.Clip = s.active.Name()
	}
	return tr, true
}

func (s *Selector) rest() {
	s.setRate(1)
	if idle, ok := s.roles.Clip(RoleIdle); ok {
		s.state = Idle
		s.crossfadeTo(idle)
		return
	}
	s.state = PinnedFrame
	if s.active != nil && !s.active.Paused() {
		s.pin(s.active)
	}
}

func (s *Selector) move(speed float64, run bool) {
	target, state := s.movementClip(run)
	if target == nil {
		// no clips at all: the static pose stays
		s.state = PinnedFrame
		return
	}
	s.state = state

	if target == s.active && s.active.Paused() {
		s.active.SetPaused(false)
	} else {
		s.crossfadeTo(target)
	}

	nominal := s.cfg.WalkSpeed
	mult := 1.0
	if state == Running {
		nominal = s.cfg.RunSpeed
		mult = s.cfg.RunRateMultiplier
	}
	ratio := 1.0
	if nominal > 0 {
		ratio = speed / nominal
	}
	s.setRate(common.Clamp(ratio*mult, s.cfg.MinRate, s.cfg.MaxRate))
}

// movementClip prefers run (when requested), then walk, then run. With no
// movement clips the rest clip keeps playing.
func (s *Selector) movementClip(run bool) (Clip, State) {
	if run {
		if c, ok := s.roles.Clip(RoleRun); ok {
			return c, Running
		}
	}
	if c, ok := s.roles.Clip(RoleWalk); ok {
		return c, Walking
	}
	if c, ok := s.roles.Clip(RoleRun); ok {
		return c, Walking
	}
	if c, ok := s.roles.Clip(RoleIdle); ok {
		return c, Walking
	}
	if s.active != nil {
		return s.active, Walking
	}
	c, _ := s.roles.First()
	return c, Walking
}

// crossfadeTo makes target authoritative at once while the previous clip
// fades out over the same duration.
func (s *Selector) crossfadeTo(target Clip) {
	if target == nil || target == s.active {
		return
	}
	if s.active != nil {
		s.active.FadeOut(s.cfg.FadeDuration)
	}
	target.Reset()
	target.FadeIn(s.cfg.FadeDuration)
	target.Play()
	target.SetTimeScale(s.rate)
	s.active = target
}

func (s *Selector) pin(c Clip) {
	c.SetTime(s.PinnedTime(c))
	c.SetPaused(true)
}

func (s *Selector) setRate(r float64) {
	s.rate = r
	if s.active != nil {
		s.active.SetTimeScale(r)
	}
}
