package input

import (
	"math"
	"sync/atomic"
)

// Intent is one frame's worth of control input.
type Intent struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Run      bool
	// Jump and Interact are true only for the first read after a physical press.
	Jump     bool
	Interact bool
	// LookYaw and LookPitch are radians accumulated since the previous read.
	LookYaw   float64
	LookPitch float64
}

// Moving reports whether any direction key is held.
func (i Intent) Moving() bool {
	return i.Forward || i.Backward || i.Left || i.Right
}

// Config holds mouse-look sensitivity in radians per pixel.
type Config struct {
	YawSensitivity   float64
	PitchSensitivity float64
}

// DefaultConfig returns the stock sensitivity.
func DefaultConfig() Config {
	return Config{YawSensitivity: 0.002, PitchSensitivity: 0.003}
}

// Aggregator turns raw key and mouse events into Intent snapshots.
//
// Event handlers may run on a different goroutine than the tick. They only
// perform atomic writes; CurrentIntent is the single reader and clears the
// edge-triggered flags and look deltas it returns.
type Aggregator struct {
	yawSens   atomic.Uint64
	pitchSens atomic.Uint64

	held     atomic.Uint32
	jump     atomic.Bool
	interact atomic.Bool
	locked   atomic.Bool

	lookYaw   atomic.Uint64
	lookPitch atomic.Uint64
}

// NewAggregator creates an aggregator with the given sensitivity.
func NewAggregator(cfg Config) *Aggregator {
	a := &Aggregator{}
	a.SetConfig(cfg)
	return a
}

// SetConfig swaps the sensitivity. It is safe to call while handlers run.
func (a *Aggregator) SetConfig(cfg Config) {
	if a == nil {
		return
	}
	a.yawSens.Store(math.Float64bits(cfg.YawSensitivity))
	a.pitchSens.Store(math.Float64bits(cfg.PitchSensitivity))
}

// Config returns the sensitivity in use.
func (a *Aggregator) Config() Config {
	if a == nil {
		return Config{}
	}
	return Config{
		YawSensitivity:   math.Float64frombits(a.yawSens.Load()),
		PitchSensitivity: math.Float64frombits(a.pitchSens.Load()),
	}
}

func keyBit(k Key) uint32 {
	return 1 << uint32(k)
}

// KeyDown records a key press. Auto-repeat presses of a held key do not
// re-arm the edge-triggered actions.
func (a *Aggregator) KeyDown(k Key) {
	if a == nil {
		return
	}
	act, ok := keyActions[k]
	if !ok {
		return
	}
	bit := keyBit(k)
	for {
		old := a.held.Load()
		if old&bit != 0 {
			return
		}
		if a.held.CompareAndSwap(old, old|bit) {
			break
		}
	}
	switch act {
	case actionJump:
		a.jump.Store(true)
	case actionInteract:
		a.interact.Store(true)
	}
}

// KeyUp records a key release.
func (a *Aggregator) KeyUp(k Key) {
	if a == nil {
		return
	}
	bit := keyBit(k)
	for {
		old := a.held.Load()
		if old&bit == 0 {
			return
		}
		if a.held.CompareAndSwap(old, old&^bit) {
			return
		}
	}
}

// SetPointerLock reports a pointer lock acquisition or loss from the host.
func (a *Aggregator) SetPointerLock(locked bool) {
	if a == nil {
		return
	}
	a.locked.Store(locked)
}

// ReleasePointer is an explicit release request; look input stops immediately.
func (a *Aggregator) ReleasePointer() {
	a.SetPointerLock(false)
}

// PointerLocked reports whether mouse-look is active.
func (a *Aggregator) PointerLocked() bool {
	if a == nil {
		return false
	}
	return a.locked.Load()
}

// MouseMove accumulates raw pixel movement. Movement while unlocked is dropped.
func (a *Aggregator) MouseMove(dx, dy float64) {
	if a == nil || !a.locked.Load() {
		return
	}
	cfg := a.Config()
	addFloat(&a.lookYaw, -dx*cfg.YawSensitivity)
	addFloat(&a.lookPitch, -dy*cfg.PitchSensitivity)
}

// CurrentIntent returns the latest snapshot and consumes the one-shot parts.
func (a *Aggregator) CurrentIntent() Intent {
	if a == nil {
		return Intent{}
	}
	held := a.held.Load()
	var in Intent
	for k, act := range keyActions {
		if held&keyBit(k) == 0 {
			continue
		}
		switch act {
		case actionForward:
			in.Forward = true
		case actionBackward:
			in.Backward = true
		case actionLeft:
			in.Left = true
		case actionRight:
			in.Right = true
		case actionRun:
			in.Run = true
		}
	}
	in.Jump = a.jump.Swap(false)
	in.Interact = a.interact.Swap(false)
	in.LookYaw = math.Float64frombits(a.lookYaw.Swap(0))
	in.LookPitch = math.Float64frombits(a.lookPitch.Swap(0))
	return in
}

// Reset drops every held key, pending edge and pending look delta. Keys still
// physically down must be pressed again to register.
func (a *Aggregator) Reset() {
	if a == nil {
		return
	}
	a.held.Store(0)
	a.jump.Store(false)
	a.interact.Store(false)
	a.lookYaw.Store(0)
	a.lookPitch.Store(0)
}

func addFloat(dst *atomic.Uint64, delta float64) {
	for {
		old := dst.Load()
		next := math.Float64bits(math.Float64frombits(old) + delta)
		if dst.CompareAndSwap(old, next) {
			return
		}
	}
}
