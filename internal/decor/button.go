package decor

import (
	"github.com/slatewm/slate/internal/geometry"
	"github.com/slatewm/slate/internal/input"
	"github.com/slatewm/slate/internal/render"
	"github.com/slatewm/slate/internal/scene"
)

// Button is an icon button firing a callback on left click.
type Button struct {
	scene.Core

	icon    string
	width   int
	height  int
	onClick func()
}

// NewButton creates a button showing the named icon.
func NewButton(icon string, onClick func()) *Button {
	b := &Button{icon: icon, onClick: onClick}
	b.Init(b)
	return b
}

// SetSize assigns the button's extent.
func (b *Button) SetSize(width, height int) {
	b.width, b.height = width, height
	b.SetBounds(geometry.NewRect(0, 0, width, height))
	if b.Attached() {
		b.Graph().SetNodeSize(b.Node(), width, height)
	}
}

// SetIcon replaces the button icon.
func (b *Button) SetIcon(icon string) {
	if b.icon == icon {
		return
	}
	b.icon = icon
	if b.Attached() {
		b.Graph().SetNodeIcon(b.Node(), icon)
	}
}

// CreateSceneNode attaches the button and pushes its surface state.
func (b *Button) CreateSceneNode(g render.Graph, parent render.Node) {
	b.Core.CreateSceneNode(g, parent)
	g.SetNodeSize(b.Node(), b.width, b.height)
	g.SetNodeIcon(b.Node(), b.icon)
}

// PointerMotion consumes motion so the button holds pointer focus while
// hovered and the following click lands here.
func (b *Button) PointerMotion(input.PointerMotion) bool { return true }

// PointerButton fires the callback on a completed left click.
func (b *Button) PointerButton(ev input.PointerButton) bool {
	if ev.Button != input.ButtonLeft {
		return false
	}
	if ev.State == input.ButtonClicked && b.onClick != nil {
		b.onClick()
	}
	return true
}
