package component

import "github.com/milk9111/roomdrive/locomotion"

type Vehicle struct {
	State  locomotion.VehicleState
	Params locomotion.VehicleParams
}

var VehicleComponent = NewComponent[Vehicle]()
