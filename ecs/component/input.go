package component

import "github.com/milk9111/roomdrive/input"

// Input stores this tick's intent for an entity. Only the controlled entity
// receives a non-zero intent.
type Input struct {
	Intent input.Intent
}

var InputComponent = NewComponent[Input]()
