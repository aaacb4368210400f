package component

import "github.com/milk9111/roomdrive/locomotion"

type Biped struct {
	State  locomotion.ActorState
	Params locomotion.BipedParams
}

var BipedComponent = NewComponent[Biped]()
