package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/roomdrive/input"
	"github.com/milk9111/roomdrive/locomotion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bounds() locomotion.Bounds {
	return locomotion.Bounds{MinX: -23, MaxX: 23, MinZ: -23, MaxZ: 23}
}

func TestSwitchEnterIsProximityGated(t *testing.T) {
	tests := []struct {
		name string
		pos  mgl64.Vec3
		want bool
	}{
		{"close", mgl64.Vec3{1, 0, 1}, true},
		{"high_but_close", mgl64.Vec3{1, 10, 0}, true},
		{"on_radius", mgl64.Vec3{3, 0, 0}, false},
		{"far", mgl64.Vec3{10, 0, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSwitch(3, 2, nil)
			biped := locomotion.NewActorState(tt.pos, locomotion.OnFoot)
			vehicle := locomotion.NewVehicleState(mgl64.Vec3{}, 0)

			assert.Equal(t, tt.want, s.Enter(&biped, &vehicle))
			if tt.want {
				assert.Equal(t, locomotion.InVehicle, s.Mode)
				assert.False(t, s.CanEnter(biped.Position, vehicle.Position), "already driving")
			} else {
				assert.Equal(t, locomotion.OnFoot, s.Mode)
			}
		})
	}
}

func TestSwitchExitPlacesBipedBesideVehicle(t *testing.T) {
	s := NewSwitch(3, 2, nil)
	biped := locomotion.NewActorState(mgl64.Vec3{0, 0, 1}, locomotion.OnFoot)
	vehicle := locomotion.NewVehicleState(mgl64.Vec3{}, math.Pi/2)
	require.True(t, s.Enter(&biped, &vehicle))

	vehicle.Throttle = 8
	vehicle.Steering = 0.5
	require.True(t, s.Exit(&biped, &vehicle, bounds()))

	assert.Equal(t, locomotion.OnFoot, s.Mode)
	assert.Zero(t, vehicle.Throttle)
	assert.Zero(t, vehicle.Steering)
	// heading pi/2 faces -X, so the right-hand side is -Z
	assert.InDelta(t, 0, biped.Position[0], 1e-9)
	assert.InDelta(t, -2, biped.Position[2], 1e-9)
	assert.True(t, biped.Grounded)
	assert.False(t, s.Exit(&biped, &vehicle, bounds()), "exit twice is a no-op")
}

func TestSwitchExitClampsIntoBounds(t *testing.T) {
	s := NewSwitch(3, 2, nil)
	b := bounds()
	biped := locomotion.NewActorState(mgl64.Vec3{22, 0, 0}, locomotion.OnFoot)
	vehicle := locomotion.NewVehicleState(mgl64.Vec3{23, 0, 0}, 0)
	require.True(t, s.Toggle(&biped, &vehicle, b))
	require.True(t, s.Toggle(&biped, &vehicle, b))
	assert.True(t, b.Contains(biped.Position))
}

func TestSwitchRoundTripLeavesNoStuckKeys(t *testing.T) {
	agg := input.NewAggregator(input.DefaultConfig())
	s := NewSwitch(3, 2, agg)
	b := bounds()
	biped := locomotion.NewActorState(mgl64.Vec3{1, 0, 0}, locomotion.OnFoot)
	vehicle := locomotion.NewVehicleState(mgl64.Vec3{}, 0)

	agg.KeyDown(input.KeyW)
	require.True(t, agg.CurrentIntent().Forward)

	require.True(t, s.Toggle(&biped, &vehicle, b))
	assert.False(t, agg.CurrentIntent().Forward, "held key does not carry into the vehicle")

	agg.KeyUp(input.KeyW)
	require.True(t, s.Toggle(&biped, &vehicle, b))
	assert.False(t, agg.CurrentIntent().Forward)

	agg.KeyDown(input.KeyW)
	assert.True(t, agg.CurrentIntent().Forward, "biped input responds again")
}
