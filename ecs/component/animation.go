package component

import "github.com/milk9111/roomdrive/animation"

// Animator drives an entity's clip set from its locomotion speed.
type Animator struct {
	Selector *animation.Selector
	Mixer    *animation.Mixer
	Roles    animation.RoleTable
}

var AnimatorComponent = NewComponent[Animator]()
