package common

import "math"

// RefHz is the frame rate the per-frame smoothing factors are tuned against.
const RefHz = 60.0

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapAngle maps an angle into [-pi, pi]. Non-finite input returns 0.
func WrapAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	return math.Remainder(a, 2*math.Pi)
}

// Smoothing converts a factor tuned for one RefHz frame into the equivalent
// factor for a step of dt seconds. At dt == 1/RefHz it returns f unchanged.
func Smoothing(f, dt float64) float64 {
	if f <= 0 || dt <= 0 {
		return 0
	}
	if f >= 1 {
		return 1
	}
	return 1 - math.Pow(1-f, dt*RefHz)
}

// Decay returns the multiplier for a per-frame retention factor (e.g. 0.85)
// applied over dt seconds.
func Decay(f, dt float64) float64 {
	if dt <= 0 {
		return 1
	}
	if f <= 0 {
		return 0
	}
	return math.Pow(f, dt*RefHz)
}

// Approach moves v toward target by at most step.
func Approach(v, target, step float64) float64 {
	if v < target {
		return math.Min(v+step, target)
	}
	return math.Max(v-step, target)
}
