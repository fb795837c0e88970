// Package input defines the raw event types delivered by the input back-end
// and the back-end interface itself. Events arrive already decoded: keysyms
// are resolved, button states include synthesized click/double-click.
package input

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint32

// Modifier bits.
const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// ButtonState describes what happened to a pointer button.
type ButtonState int

const (
	ButtonPressed ButtonState = iota
	ButtonReleased
	ButtonClicked
	ButtonDoubleClicked
)

func (s ButtonState) String() string {
	switch s {
	case ButtonPressed:
		return "pressed"
	case ButtonReleased:
		return "released"
	case ButtonClicked:
		return "clicked"
	case ButtonDoubleClicked:
		return "double-clicked"
	default:
		return "unknown"
	}
}

// Pointer button identifiers.
const (
	ButtonLeft uint32 = iota + 1
	ButtonMiddle
	ButtonRight
)

// PointerMotion is a pointer position update. Coordinates are in the local
// space of the element the event is delivered to; containers translate them
// while routing.
type PointerMotion struct {
	X, Y int
	Time uint32 // milliseconds, back-end clock
}

// PointerButton is a button press/release/click. Coordinates follow the same
// local-space rule as PointerMotion but routing never re-hit-tests on them:
// they go to whichever element the preceding motion focused.
type PointerButton struct {
	Button uint32
	State  ButtonState
	X, Y   int
	Time   uint32
}

// PointerAxis is a scroll event.
type PointerAxis struct {
	Horizontal bool
	Delta      float64
	Time       uint32
}

// KeyEvent is a keyboard key press or release with a resolved keysym.
type KeyEvent struct {
	Keysym    uint32
	Modifiers Modifiers
	Pressed   bool
	Time      uint32
}
