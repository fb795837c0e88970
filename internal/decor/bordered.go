package decor

import (
	"github.com/slatewm/slate/internal/geometry"
	"github.com/slatewm/slate/internal/render"
	"github.com/slatewm/slate/internal/scene"
)

// Bordered wraps exactly one designated element and frames it with four
// border fill rectangles sized from the element's live bounding box. The
// wrapped element is translated so its box's top-left lands at
// (margin, margin); north and south run the full framed width, west and
// east fill the strips between them, leaving no gap and no overlap.
type Bordered struct {
	scene.Container

	wrapped scene.Element
	margin  int
	framed  bool

	north *Fill
	south *Fill
	west  *Fill
	east  *Fill
}

// NewBordered frames wrapped with a border of the given width and color.
func NewBordered(wrapped scene.Element, margin int, color render.Color) *Bordered {
	b := &Bordered{}
	b.InitContainer()
	b.Init(b)
	b.InitBordered(wrapped, margin, color)
	return b
}

// InitBordered wires the decorator state. Embedding types call
// InitContainer and Init themselves, then this; standalone users go
// through NewBordered.
func (b *Bordered) InitBordered(wrapped scene.Element, margin int, color render.Color) {
	b.wrapped = wrapped
	b.margin = margin
	b.framed = true
	b.north = NewFill(color)
	b.south = NewFill(color)
	b.west = NewFill(color)
	b.east = NewFill(color)

	// Borders stack above the wrapped element.
	b.AddBack(wrapped)
	b.AddFront(b.north)
	b.AddFront(b.south)
	b.AddFront(b.west)
	b.AddFront(b.east)
	b.UpdateLayout()
}

// Wrapped returns the framed element.
func (b *Bordered) Wrapped() scene.Element { return b.wrapped }

// Margin returns the configured border width.
func (b *Bordered) Margin() int { return b.margin }

// SetMargin changes the border width. All four rectangles are resized in
// one synchronous pass, so no half-updated frame is ever observable.
func (b *Bordered) SetMargin(margin int) {
	if b.margin == margin {
		return
	}
	b.margin = margin
	b.UpdateLayout()
}

// SetColor recolors all four border rectangles.
func (b *Bordered) SetColor(c render.Color) {
	b.north.SetColor(c)
	b.south.SetColor(c)
	b.west.SetColor(c)
	b.east.SetColor(c)
}

// SetFramed toggles the frame. While unframed the border rectangles are
// hidden and the effective margin is zero, which is how fullscreen windows
// shed their decoration.
func (b *Bordered) SetFramed(framed bool) {
	if b.framed == framed {
		return
	}
	b.framed = framed
	b.north.SetVisible(framed)
	b.south.SetVisible(framed)
	b.west.SetVisible(framed)
	b.east.SetVisible(framed)
	b.UpdateLayout()
}

// Framed reports whether the frame is shown.
func (b *Bordered) Framed() bool { return b.framed }

// UpdateLayout reads the wrapped element's live bounding box, repositions
// it inside the frame and sizes the four borders around it.
func (b *Bordered) UpdateLayout() {
	if b.wrapped == nil {
		// Not wired yet: Add during InitBordered triggers layout early.
		return
	}
	m := 0
	if b.framed {
		m = b.margin
	}
	d := b.wrapped.Dimensions()
	b.wrapped.Base().SetPosition(m-d.X, m-d.Y)

	w, h := d.Width, d.Height
	b.north.SetSize(w+2*m, m)
	b.north.SetPosition(0, 0)
	b.south.SetSize(w+2*m, m)
	b.south.SetPosition(0, m+h)
	b.west.SetSize(m, h)
	b.west.SetPosition(0, m)
	b.east.SetSize(m, h)
	b.east.SetPosition(m+w, m)

	b.SetBounds(geometry.NewRect(0, 0, w+2*m, h+2*m))
	b.PropagateLayout()
}
