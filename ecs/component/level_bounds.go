package component

import "github.com/milk9111/roomdrive/locomotion"

// LevelBounds stores the walkable area of the room and its ground height.
type LevelBounds struct {
	Bounds locomotion.Bounds
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
