package component

// ControlledTag marks the entity currently receiving player intent.
type ControlledTag struct{}

var ControlledTagComponent = NewComponent[ControlledTag]()

// Name identifies an entity for camera targeting and logs.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
