package component

import "github.com/milk9111/roomdrive/camera"

type Camera struct {
	TargetName string
	Rig        *camera.Rig
	View       camera.State
}

var CameraComponent = NewComponent[Camera]()

// CameraProfile is the chase offset used while the camera tracks this
// entity.
type CameraProfile struct {
	Profile camera.Profile
}

var CameraProfileComponent = NewComponent[CameraProfile]()
