// Package decor provides the stateless leaf decoration widgets (colored
// fills, title text, icon buttons) and the Bordered frame decorator built
// from them.
package decor

import (
	"github.com/slatewm/slate/internal/geometry"
	"github.com/slatewm/slate/internal/render"
	"github.com/slatewm/slate/internal/scene"
)

// Fill is a solid colored rectangle.
type Fill struct {
	scene.Core

	color  render.Color
	width  int
	height int
}

// NewFill creates a fill with zero size.
func NewFill(c render.Color) *Fill {
	f := &Fill{color: c}
	f.Init(f)
	return f
}

// SetSize resizes the fill, pushing the new size to the render node.
func (f *Fill) SetSize(width, height int) {
	f.width, f.height = width, height
	f.SetBounds(geometry.NewRect(0, 0, width, height))
	if f.Attached() {
		f.Graph().SetNodeSize(f.Node(), width, height)
	}
}

// Size returns the fill's extents.
func (f *Fill) Size() (width, height int) { return f.width, f.height }

// SetColor changes the fill color.
func (f *Fill) SetColor(c render.Color) {
	f.color = c
	if f.Attached() {
		f.Graph().SetNodeFill(f.Node(), c)
	}
}

// Color returns the fill color.
func (f *Fill) Color() render.Color { return f.color }

// CreateSceneNode attaches the fill and pushes its surface state.
func (f *Fill) CreateSceneNode(g render.Graph, parent render.Node) {
	f.Core.CreateSceneNode(g, parent)
	g.SetNodeSize(f.Node(), f.width, f.height)
	g.SetNodeFill(f.Node(), f.color)
}
