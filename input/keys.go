package input

// Key is a host-independent physical key code. Hosts translate their own key
// events into these before feeding the Aggregator.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyS
	KeyA
	KeyD
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyShiftLeft
	KeyShiftRight
	KeySpace
	KeyF
)

// action is the logical control a key drives.
type action uint8

const (
	actionNone action = iota
	actionForward
	actionBackward
	actionLeft
	actionRight
	actionRun
	actionJump
	actionInteract
)

// keyActions is the mode-agnostic key table. The same table serves the biped
// and vehicle profiles; they interpret the resulting Intent differently.
var keyActions = map[Key]action{
	KeyW:          actionForward,
	KeyArrowUp:    actionForward,
	KeyS:          actionBackward,
	KeyArrowDown:  actionBackward,
	KeyA:          actionLeft,
	KeyArrowLeft:  actionLeft,
	KeyD:          actionRight,
	KeyArrowRight: actionRight,
	KeyShiftLeft:  actionRun,
	KeyShiftRight: actionRun,
	KeySpace:      actionJump,
	KeyF:          actionInteract,
}

var keyNames = map[Key]string{
	KeyW:          "KeyW",
	KeyS:          "KeyS",
	KeyA:          "KeyA",
	KeyD:          "KeyD",
	KeyArrowUp:    "ArrowUp",
	KeyArrowDown:  "ArrowDown",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",
	KeyShiftLeft:  "ShiftLeft",
	KeyShiftRight: "ShiftRight",
	KeySpace:      "Space",
	KeyF:          "KeyF",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ParseKey maps a key name ("KeyW", "ArrowUp", "Space", ...) back to a Key.
func ParseKey(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name {
			return k, true
		}
	}
	return KeyUnknown, false
}
