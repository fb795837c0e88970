// Package inputtest provides a scripted input back-end. Tests and the
// demo binary drive events through it instead of a real seat.
package inputtest

import "github.com/slatewm/slate/internal/input"

// Backend is a scripted input.Backend: events are injected by calling the
// Motion/Button/Axis/Key methods and delivered synchronously to the
// registered handler.
type Backend struct {
	handler     input.Handler
	remoteFocus any
	now         uint32
}

var _ input.Backend = (*Backend)(nil)

// New creates a backend with no handler attached.
func New() *Backend {
	return &Backend{}
}

// SetHandler implements input.Backend.
func (b *Backend) SetHandler(h input.Handler) { b.handler = h }

// SetRemoteInputFocus scripts the object the back-end reports as holding
// remote input focus.
func (b *Backend) SetRemoteInputFocus(v any) { b.remoteFocus = v }

// RemoteInputFocus implements input.Backend.
func (b *Backend) RemoteInputFocus() any { return b.remoteFocus }

// tick advances the synthetic event clock.
func (b *Backend) tick() uint32 {
	b.now += 8
	return b.now
}

// Motion injects a pointer motion event.
func (b *Backend) Motion(x, y int) bool {
	if b.handler == nil {
		return false
	}
	return b.handler.PointerMotion(input.PointerMotion{X: x, Y: y, Time: b.tick()})
}

// Button injects a pointer button event at the last motion position.
func (b *Backend) Button(button uint32, state input.ButtonState, x, y int) bool {
	if b.handler == nil {
		return false
	}
	return b.handler.PointerButton(input.PointerButton{
		Button: button,
		State:  state,
		X:      x,
		Y:      y,
		Time:   b.tick(),
	})
}

// Click injects motion followed by a full click at (x, y).
func (b *Backend) Click(button uint32, x, y int) bool {
	b.Motion(x, y)
	b.Button(button, input.ButtonPressed, x, y)
	b.Button(button, input.ButtonReleased, x, y)
	return b.Button(button, input.ButtonClicked, x, y)
}

// Axis injects a scroll event.
func (b *Backend) Axis(horizontal bool, delta float64) bool {
	if b.handler == nil {
		return false
	}
	return b.handler.PointerAxis(input.PointerAxis{Horizontal: horizontal, Delta: delta, Time: b.tick()})
}

// Key injects a key press or release.
func (b *Backend) Key(keysym uint32, mods input.Modifiers, pressed bool) bool {
	if b.handler == nil {
		return false
	}
	return b.handler.Key(input.KeyEvent{Keysym: keysym, Modifiers: mods, Pressed: pressed, Time: b.tick()})
}
