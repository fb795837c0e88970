package wm

import (
	"github.com/slatewm/slate/internal/decor"
	"github.com/slatewm/slate/internal/geometry"
	"github.com/slatewm/slate/internal/input"
)

// gripSlack extends the resizebar's hit-test region below its visible
// strip so the thin grip stays easy to grab.
const gripSlack = 4

// Resizebar is the thin strip under the window content that starts an
// interactive resize when pressed.
type Resizebar struct {
	decor.Fill

	height      int
	onDragStart func(x, y int)
}

func newResizebar(theme Theme) *Resizebar {
	r := &Resizebar{height: theme.ResizebarHeight}
	r.Init(r)
	r.SetColor(theme.Resizebar)
	return r
}

// SetWidth matches the bar to the content width.
func (r *Resizebar) SetWidth(width int) {
	r.SetSize(width, r.height)
}

// SetOnDragStart installs the resize-start callback.
func (r *Resizebar) SetOnDragStart(fn func(x, y int)) { r.onDragStart = fn }

// PointerArea extends past the visible strip by the grip slack.
func (r *Resizebar) PointerArea() geometry.Rect {
	d := r.Dimensions()
	d.Height += gripSlack
	return d
}

// PointerMotion consumes motion so the grip holds pointer focus.
func (r *Resizebar) PointerMotion(input.PointerMotion) bool { return true }

// PointerButton starts a resize drag on left press.
func (r *Resizebar) PointerButton(ev input.PointerButton) bool {
	if ev.Button != input.ButtonLeft {
		return false
	}
	if ev.State == input.ButtonPressed && r.onDragStart != nil {
		r.onDragStart(ev.X, ev.Y)
	}
	return true
}
