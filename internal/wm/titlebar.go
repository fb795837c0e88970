package wm

import (
	"github.com/slatewm/slate/internal/decor"
	"github.com/slatewm/slate/internal/geometry"
	"github.com/slatewm/slate/internal/input"
	"github.com/slatewm/slate/internal/scene"
)

// titlebarPad is the inset of the title text and close button inside the
// bar.
const titlebarPad = 4

// Titlebar is the horizontal strip above the window content: a background
// fill, the window title and a close button. Double-clicking the bar
// toggles shading through the owner-supplied callback.
type Titlebar struct {
	scene.Container

	theme Theme
	bg    *decor.Fill
	label *decor.Label
	close *decor.Button

	width         int
	onDoubleClick func()
}

func newTitlebar(theme Theme, onClose, onDoubleClick func()) *Titlebar {
	t := &Titlebar{theme: theme, onDoubleClick: onDoubleClick}
	t.InitContainer()
	t.Init(t)

	t.bg = decor.NewFill(theme.InactiveTitlebar)
	t.label = decor.NewLabel("")
	t.close = decor.NewButton("window-close", onClose)

	t.AddBack(t.bg)
	t.AddFront(t.label)
	t.AddFront(t.close)
	return t
}

// SetWidth lays the bar out for the given content width.
func (t *Titlebar) SetWidth(width int) {
	t.width = width
	h := t.theme.TitlebarHeight
	btn := h - 2*titlebarPad
	if btn < 0 {
		btn = 0
	}

	t.bg.SetSize(width, h)
	t.bg.SetPosition(0, 0)

	labelW := width - btn - 3*titlebarPad
	if labelW < 0 {
		labelW = 0
	}
	t.label.SetSize(labelW, h-2*titlebarPad)
	t.label.SetPosition(titlebarPad, titlebarPad)

	t.close.SetSize(btn, btn)
	t.close.SetPosition(width-btn-titlebarPad, titlebarPad)

	t.SetBounds(geometry.NewRect(0, 0, width, h))
	t.PropagateLayout()
}

// UpdateLayout keeps the assigned extent; the bar is sized by SetWidth,
// not by its children.
func (t *Titlebar) UpdateLayout() {
	t.SetBounds(geometry.NewRect(0, 0, t.width, t.theme.TitlebarHeight))
	t.PropagateLayout()
}

// SetTitle updates the displayed title.
func (t *Titlebar) SetTitle(title string) { t.label.SetText(title) }

// SetActivated swaps the bar between the active and inactive background.
func (t *Titlebar) SetActivated(on bool) {
	if on {
		t.bg.SetColor(t.theme.ActiveTitlebar)
	} else {
		t.bg.SetColor(t.theme.InactiveTitlebar)
	}
}

// PointerMotion consumes motion over the bar so clicks anywhere on it land
// here rather than falling through to the window behind.
func (t *Titlebar) PointerMotion(ev input.PointerMotion) bool {
	t.Container.PointerMotion(ev)
	return true
}

// PointerButton routes to the hovered child first (the close button), then
// treats an unconsumed left double-click as a shade toggle.
func (t *Titlebar) PointerButton(ev input.PointerButton) bool {
	if t.Container.PointerButton(ev) {
		return true
	}
	if ev.Button != input.ButtonLeft {
		return false
	}
	if ev.State == input.ButtonDoubleClicked && t.onDoubleClick != nil {
		t.onDoubleClick()
	}
	return true
}
