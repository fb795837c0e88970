package scene

import (
	"github.com/slatewm/slate/internal/geometry"
)

// Orientation selects the stacking axis of a Box.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Box is a container with a linear stacking layout: children are placed one
// after another along the stacking axis, separated by a uniform margin, in
// z-order (the front-most child comes first along the axis). Hidden children
// take no space, which is what lets a shaded window collapse to its
// titlebar.
type Box struct {
	Container

	orientation Orientation
	margin      int
}

// NewBox creates an empty box stacking along the given axis.
func NewBox(orientation Orientation, margin int) *Box {
	b := &Box{orientation: orientation, margin: margin}
	b.InitContainer()
	b.Init(b)
	return b
}

// Orientation returns the stacking axis.
func (b *Box) Orientation() Orientation { return b.orientation }

// Margin returns the uniform inter-child margin.
func (b *Box) Margin() int { return b.margin }

// SetMargin changes the inter-child margin and relayouts.
func (b *Box) SetMargin(margin int) {
	if b.margin == margin {
		return
	}
	b.margin = margin
	b.UpdateLayout()
}

// UpdateLayout places each visible child at the cumulative offset of the
// children before it plus the margin, then sets the box's bounding box to
// the union. Single pass, deterministic.
func (b *Box) UpdateLayout() {
	offset := 0
	var bounds geometry.Rect
	for _, ch := range b.children {
		cb := ch.Base()
		if !cb.visible {
			continue
		}
		d := ch.Dimensions()
		if b.orientation == Vertical {
			cb.SetPosition(0, offset)
			offset += d.Height + b.margin
		} else {
			cb.SetPosition(offset, 0)
			offset += d.Width + b.margin
		}
		bounds = bounds.Union(d.Translate(cb.x, cb.y))
	}
	b.bounds = bounds
	b.PropagateLayout()
}
