// Package scene implements the composition tree: positioned, optionally
// visible elements mirrored one-to-one onto render nodes, containers that
// own ordered children and route input through them, and the Box stacking
// layout. The tree is single-threaded; every operation runs synchronously on
// the control thread and render state is pushed immediately, never batched.
package scene

import (
	"fmt"

	"github.com/slatewm/slate/internal/geometry"
	"github.com/slatewm/slate/internal/input"
	"github.com/slatewm/slate/internal/render"
)

// Element is implemented by every node in the composition tree. Concrete
// variants embed Core, which provides the state and default behavior, and
// override the capabilities they specialize: dimension query, pointer area,
// event handling, layout and scene-node lifecycle.
type Element interface {
	// Base returns the shared element state.
	Base() *Core

	// Dimensions returns the bounding box in local coordinates.
	Dimensions() geometry.Rect

	// PointerArea returns the hit-test region in local coordinates. It may
	// exceed Dimensions for elements with grab slack or sub-regions.
	PointerArea() geometry.Rect

	// UpdateLayout recomputes the cached bounding box and propagates the
	// change to the parent. Leaves have intrinsic bounds and do nothing.
	UpdateLayout()

	// CreateSceneNode attaches the element to the render graph under the
	// given parent node. Containers recurse over their children.
	CreateSceneNode(g render.Graph, parent render.Node)

	// DestroySceneNode detaches the element from the render graph,
	// destroying its node. Containers recurse over their children first.
	DestroySceneNode()

	// Destroy releases the element's resources. Calling it while the
	// element is still attached or owned by a container is a programming
	// error.
	Destroy()

	PointerMotion(ev input.PointerMotion) bool
	PointerLeave()
	PointerButton(ev input.PointerButton) bool
	PointerAxis(ev input.PointerAxis) bool
	Key(ev input.KeyEvent) bool
}

// Core is the state shared by every element. It implements Element with
// leaf defaults; embedding types must call Init with themselves so that
// overridable behavior dispatches to the concrete variant.
type Core struct {
	self    Element
	x, y    int
	visible bool
	bounds  geometry.Rect
	graph   render.Graph
	node    render.Node
	parent  *Container
}

// Init records the concrete variant this core belongs to. Every constructor
// must call it exactly once before the element enters a tree.
func (c *Core) Init(self Element) {
	if c.self != nil {
		panic("scene: element initialized twice")
	}
	c.self = self
	c.visible = true
}

// Base implements Element.
func (c *Core) Base() *Core { return c }

// Self returns the concrete variant this core belongs to.
func (c *Core) Self() Element { return c.self }

// SetPosition moves the element within its parent's coordinate space. The
// render node, if any, is updated immediately.
func (c *Core) SetPosition(x, y int) {
	c.x, c.y = x, y
	if c.node != nil {
		c.graph.SetNodePosition(c.node, x, y)
	}
}

// Position returns the element's position in its parent's coordinate space.
func (c *Core) Position() (x, y int) { return c.x, c.y }

// SetVisible toggles visibility. The render node is updated immediately and
// the parent relayouts, since hidden elements take no space in stacking
// layouts.
func (c *Core) SetVisible(visible bool) {
	if c.visible == visible {
		return
	}
	c.visible = visible
	if c.node != nil {
		c.graph.SetNodeEnabled(c.node, visible)
	}
	if c.parent != nil {
		c.parent.self.UpdateLayout()
	}
}

// Visible reports whether the element is visible.
func (c *Core) Visible() bool { return c.visible }

// Bounds returns the cached bounding box in local coordinates.
func (c *Core) Bounds() geometry.Rect { return c.bounds }

// SetBounds replaces the cached bounding box. Implementers call it when
// their intrinsic size changes.
func (c *Core) SetBounds(r geometry.Rect) { c.bounds = r }

// Parent returns the owning container, or nil for detached elements and the
// root. The reference is non-owning.
func (c *Core) Parent() *Container { return c.parent }

// Attached reports whether the element currently has a render node.
func (c *Core) Attached() bool { return c.node != nil }

// Node returns the element's render node, or nil while detached.
func (c *Core) Node() render.Node { return c.node }

// Graph returns the render graph the element is attached to, or nil.
func (c *Core) Graph() render.Graph { return c.graph }

// Dimensions implements Element with the cached bounding box.
func (c *Core) Dimensions() geometry.Rect { return c.bounds }

// PointerArea implements Element; by default the hit-test region is exactly
// the element's dimensions.
func (c *Core) PointerArea() geometry.Rect { return c.self.Dimensions() }

// UpdateLayout implements Element; leaves have intrinsic bounds.
func (c *Core) UpdateLayout() {}

// CreateSceneNode implements Element for leaves.
func (c *Core) CreateSceneNode(g render.Graph, parent render.Node) {
	if c.node != nil {
		panic("scene: element already attached to a render graph")
	}
	c.graph = g
	c.node = g.CreateNode(parent)
	g.SetNodePosition(c.node, c.x, c.y)
	g.SetNodeEnabled(c.node, c.visible)
}

// DestroySceneNode implements Element for leaves.
func (c *Core) DestroySceneNode() {
	if c.node == nil {
		return
	}
	c.graph.DestroyNode(c.node)
	c.node = nil
	c.graph = nil
}

// Destroy implements Element. Destroying an element that still has a parent
// or a render node indicates a broken ownership invariant.
func (c *Core) Destroy() {
	if c.parent != nil {
		panic(fmt.Sprintf("scene: destroying element still owned by a container (%T)", c.self))
	}
	if c.node != nil {
		panic(fmt.Sprintf("scene: destroying element still attached to the render graph (%T)", c.self))
	}
}

// Default event handlers: leaves consume nothing.

func (c *Core) PointerMotion(input.PointerMotion) bool { return false }
func (c *Core) PointerLeave()                          {}
func (c *Core) PointerButton(input.PointerButton) bool { return false }
func (c *Core) PointerAxis(input.PointerAxis) bool     { return false }
func (c *Core) Key(input.KeyEvent) bool                { return false }
