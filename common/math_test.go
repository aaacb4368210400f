package common

import (
	"math"
	"testing"
)

func TestWrapAngle(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"just_over_pi", math.Pi + 0.5, -math.Pi + 0.5},
		{"just_under_neg_pi", -math.Pi - 0.5, math.Pi - 0.5},
		{"several_turns", 5*math.Pi + 0.25, -math.Pi + 0.25},
		{"negative_turns", -6*math.Pi - 0.25, -0.25},
		{"infinite", math.Inf(1), 0},
		{"nan", math.NaN(), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := WrapAngle(c.in)
			if math.Abs(got-c.want) > 1e-9 {
				t.Fatalf("WrapAngle(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestWrapAngleLargeValues(t *testing.T) {
	for _, in := range []float64{1e12, -1e12, 1e300} {
		got := WrapAngle(in)
		if got < -math.Pi || got > math.Pi {
			t.Fatalf("WrapAngle(%v) = %v, outside [-pi, pi]", in, got)
		}
	}
}

func TestSmoothingMatchesReferenceFrame(t *testing.T) {
	if got := Smoothing(0.15, 1.0/RefHz); math.Abs(got-0.15) > 1e-9 {
		t.Fatalf("expected 0.15 at reference frame, got %v", got)
	}
	// two half frames compound to one full frame
	half := Smoothing(0.15, 0.5/RefHz)
	if math.Abs((1-half)*(1-half)-(1-0.15)) > 1e-9 {
		t.Fatalf("half-frame smoothing does not compound, got %v", half)
	}
	if Smoothing(0.5, 0) != 0 {
		t.Fatalf("zero dt must not move")
	}
}

func TestDecayAndApproach(t *testing.T) {
	if got := Decay(0.85, 1.0/RefHz); math.Abs(got-0.85) > 1e-9 {
		t.Fatalf("expected 0.85, got %v", got)
	}
	if got := Approach(0, 1, 0.3); got != 0.3 {
		t.Fatalf("expected 0.3, got %v", got)
	}
	if got := Approach(0.9, 1, 0.3); got != 1 {
		t.Fatalf("expected overshoot clamp to 1, got %v", got)
	}
	if got := Approach(0, -1, 2); got != -1 {
		t.Fatalf("expected -1, got %v", got)
	}
}
