package component

import "github.com/milk9111/roomdrive/actor"

// Pilot lives on the biped and owns the on-foot/in-vehicle arbitration.
type Pilot struct {
	Switch *actor.Switch
	// Prompt is true while the biped stands close enough to enter.
	Prompt bool
}

var PilotComponent = NewComponent[Pilot]()
