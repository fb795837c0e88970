package scene

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/slatewm/slate/internal/geometry"
	"github.com/slatewm/slate/internal/input"
	"github.com/slatewm/slate/internal/render"
)

// Container is an element owning an ordered collection of children. The
// slice order is the z-order: index 0 is the front-most (topmost) child.
// The order is mirrored into the render-node subtree, and the container
// tracks which child holds pointer focus and which holds keyboard focus.
type Container struct {
	Core

	log           zerolog.Logger
	children      []Element
	pointerFocus  Element
	keyboardFocus Element
	grab          Element

	// Last pointer position seen, in local coordinates, for refocusing
	// after structural changes.
	lastPointer   geometry.Point
	pointerInside bool
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	c := &Container{}
	c.InitContainer()
	c.Init(c)
	return c
}

// InitContainer sets up container state. Embedding constructors call this
// plus Init with their own concrete type.
func (c *Container) InitContainer() {
	c.log = zerolog.Nop()
}

// SetLogger installs a logger for routing and focus diagnostics.
func (c *Container) SetLogger(log zerolog.Logger) {
	c.log = log
}

// Children returns the child slice, front-most first. Callers must not
// mutate it.
func (c *Container) Children() []Element { return c.children }

// Len returns the number of children.
func (c *Container) Len() int { return len(c.children) }

// PointerFocus returns the child currently holding pointer focus, or nil.
func (c *Container) PointerFocus() Element { return c.pointerFocus }

// KeyboardFocus returns the child currently holding keyboard focus, or nil.
func (c *Container) KeyboardFocus() Element { return c.keyboardFocus }

// Add inserts child at the given z-order index (0 = front). An out-of-range
// index appends at the back. Adding an element that already has a parent is
// a programming error and panics.
func (c *Container) Add(child Element, at int) {
	cb := child.Base()
	if cb.self == nil {
		panic("scene: element added before Init")
	}
	if cb.parent != nil {
		c.log.Error().Msgf("element %T already owned by a container", child)
		panic(fmt.Sprintf("scene: element %T already owned by a container", child))
	}
	if at < 0 || at > len(c.children) {
		at = len(c.children)
	}
	c.children = append(c.children, nil)
	copy(c.children[at+1:], c.children[at:])
	c.children[at] = child
	cb.parent = c

	if c.node != nil {
		child.CreateSceneNode(c.graph, c.node)
		c.restackRenderNodes()
	}
	c.self.UpdateLayout()
	c.RefocusPointer()
}

// AddFront inserts child at the top of the z-order.
func (c *Container) AddFront(child Element) { c.Add(child, 0) }

// AddBack appends child at the bottom of the z-order.
func (c *Container) AddBack(child Element) { c.Add(child, len(c.children)) }

// Remove detaches child from the container, destroying its render subtree.
// Focus references to the child are cleared immediately and the pointer is
// refocused so focus never dangles. Removing an element this container does
// not own is a programming error and panics.
func (c *Container) Remove(child Element) {
	idx := -1
	for i, ch := range c.children {
		if ch == child {
			idx = i
			break
		}
	}
	if idx < 0 || child.Base().parent != c {
		c.log.Error().Msgf("removing element %T not owned by this container", child)
		panic(fmt.Sprintf("scene: removing element %T not owned by this container", child))
	}

	c.children = append(c.children[:idx], c.children[idx+1:]...)
	child.Base().parent = nil

	if c.pointerFocus == child {
		c.pointerFocus = nil
	}
	if c.keyboardFocus == child {
		c.keyboardFocus = nil
	}
	if c.grab == child {
		c.grab = nil
	}

	child.DestroySceneNode()
	c.self.UpdateLayout()
	c.RefocusPointer()
}

// Index returns the z-order index of child, or -1.
func (c *Container) Index(child Element) int {
	for i, ch := range c.children {
		if ch == child {
			return i
		}
	}
	return -1
}

// Raise moves child to the front of the z-order and restacks the render
// subtree accordingly.
func (c *Container) Raise(child Element) {
	c.MoveTo(child, 0)
}

// MoveTo changes child's z-order index without detaching it from the tree
// or the render graph.
func (c *Container) MoveTo(child Element, at int) {
	idx := c.Index(child)
	if idx < 0 {
		c.log.Error().Msgf("restacking element %T not owned by this container", child)
		panic(fmt.Sprintf("scene: restacking element %T not owned by this container", child))
	}
	if at < 0 || at >= len(c.children) {
		at = len(c.children) - 1
	}
	if at == idx {
		return
	}
	c.children = append(c.children[:idx], c.children[idx+1:]...)
	c.children = append(c.children, nil)
	copy(c.children[at+1:], c.children[at:])
	c.children[at] = child
	if c.node != nil {
		c.restackRenderNodes()
	}
	c.RefocusPointer()
}

// restackRenderNodes re-issues the render z-order back to front, relying on
// the Graph contract that reparenting moves a node to the top of the stack.
func (c *Container) restackRenderNodes() {
	for i := len(c.children) - 1; i >= 0; i-- {
		if n := c.children[i].Base().node; n != nil {
			c.graph.ReparentNode(n, c.node)
		}
	}
}

// PointerArea unions the visible children's pointer areas with the
// container's own bounds, so a child's grab slack stays reachable through
// its ancestors.
func (c *Container) PointerArea() geometry.Rect {
	area := c.bounds
	for _, ch := range c.children {
		cb := ch.Base()
		if !cb.visible {
			continue
		}
		area = area.Union(ch.PointerArea().Translate(cb.x, cb.y))
	}
	return area
}

// UpdateLayout recomputes the bounding box as the union of the visible
// children's extents and propagates the change upward.
func (c *Container) UpdateLayout() {
	var b geometry.Rect
	for _, ch := range c.children {
		cb := ch.Base()
		if !cb.visible {
			continue
		}
		b = b.Union(ch.Dimensions().Translate(cb.x, cb.y))
	}
	c.bounds = b
	c.PropagateLayout()
}

// PropagateLayout notifies the parent container that this element's extent
// may have changed.
func (c *Core) PropagateLayout() {
	if c.parent != nil {
		c.parent.self.UpdateLayout()
	}
}

// CreateSceneNode attaches the container and its children, back to front so
// the front-most child ends up topmost in the render graph.
func (c *Container) CreateSceneNode(g render.Graph, parent render.Node) {
	c.Core.CreateSceneNode(g, parent)
	for i := len(c.children) - 1; i >= 0; i-- {
		c.children[i].CreateSceneNode(g, c.node)
	}
}

// DestroySceneNode detaches the children before the container's own node so
// node lifetime stays core-controlled all the way down.
func (c *Container) DestroySceneNode() {
	for _, ch := range c.children {
		ch.DestroySceneNode()
	}
	c.Core.DestroySceneNode()
}

// Destroy destroys all remaining children, then the container itself.
func (c *Container) Destroy() {
	for len(c.children) > 0 {
		ch := c.children[0]
		c.Remove(ch)
		ch.Destroy()
	}
	c.pointerFocus = nil
	c.keyboardFocus = nil
	c.grab = nil
	c.Core.Destroy()
}

// SetKeyboardFocus directs subsequent keyboard events to el, which must be
// in this container's subtree. Passing nil clears keyboard focus.
func (c *Container) SetKeyboardFocus(el Element) {
	if el != nil {
		if _, _, ok := c.offsetTo(el); !ok {
			c.log.Error().Msgf("keyboard focus target %T is not in this container's subtree", el)
			panic(fmt.Sprintf("scene: keyboard focus target %T is not in this container's subtree", el))
		}
	}
	c.keyboardFocus = el
}

// Grab routes all pointer and keyboard events to target, bypassing z-order
// hit-testing, until ReleaseGrab. Acquiring a second grab while one is
// active is a programming error and panics.
func (c *Container) Grab(target Element) {
	if c.grab != nil {
		c.log.Error().Msg("pointer grab already active")
		panic("scene: pointer grab already active")
	}
	if _, _, ok := c.offsetTo(target); !ok {
		c.log.Error().Msgf("grab target %T is not in this container's subtree", target)
		panic(fmt.Sprintf("scene: grab target %T is not in this container's subtree", target))
	}
	c.log.Debug().Msgf("pointer grab acquired by %T", target)
	c.grab = target
}

// ReleaseGrab ends the active grab, if any, and refocuses the pointer.
func (c *Container) ReleaseGrab() {
	if c.grab == nil {
		return
	}
	c.log.Debug().Msgf("pointer grab released by %T", c.grab)
	c.grab = nil
	c.RefocusPointer()
}

// Grabbed reports whether a pointer grab is active.
func (c *Container) Grabbed() bool { return c.grab != nil }

// PointerMotion hit-tests the children front to back and forwards the event
// to the first child whose pointer area contains the point, translated into
// that child's local space. Focus moves with the hit: the previously focused
// child receives PointerLeave and the new child's own motion handler
// establishes focus. With no child hit, pointer focus is cleared and the
// event is not consumed.
func (c *Container) PointerMotion(ev input.PointerMotion) bool {
	c.lastPointer = geometry.Point{X: ev.X, Y: ev.Y}
	c.pointerInside = true

	if c.grab != nil {
		return c.deliverGrabbedMotion(ev)
	}

	for _, ch := range c.children {
		cb := ch.Base()
		if !cb.visible {
			continue
		}
		lx, ly := ev.X-cb.x, ev.Y-cb.y
		if !ch.PointerArea().Contains(lx, ly) {
			continue
		}
		if c.pointerFocus != nil && c.pointerFocus != ch {
			c.pointerFocus.PointerLeave()
		}
		c.pointerFocus = ch
		chEv := ev
		chEv.X, chEv.Y = lx, ly
		return ch.PointerMotion(chEv)
	}

	c.dropPointerFocus()
	return false
}

// PointerLeave is called when the pointer leaves this container's area; the
// focused child is notified and focus cleared.
func (c *Container) PointerLeave() {
	c.pointerInside = false
	c.dropPointerFocus()
}

// PointerButton delivers the event to the child holding pointer focus.
// Button events are never re-hit-tested: motion always runs first for the
// same location, and re-targeting on button would break click-and-drag.
func (c *Container) PointerButton(ev input.PointerButton) bool {
	if c.grab != nil {
		dx, dy, _ := c.offsetTo(c.grab)
		gEv := ev
		gEv.X, gEv.Y = ev.X-dx, ev.Y-dy
		return c.grab.PointerButton(gEv)
	}
	if c.pointerFocus == nil {
		return false
	}
	fb := c.pointerFocus.Base()
	chEv := ev
	chEv.X, chEv.Y = ev.X-fb.x, ev.Y-fb.y
	return c.pointerFocus.PointerButton(chEv)
}

// PointerAxis delivers the event to the child holding pointer focus, under
// the same no-re-hit-test rule as buttons.
func (c *Container) PointerAxis(ev input.PointerAxis) bool {
	if c.grab != nil {
		return c.grab.PointerAxis(ev)
	}
	if c.pointerFocus == nil {
		return false
	}
	return c.pointerFocus.PointerAxis(ev)
}

// Key delivers keyboard events to the grab target if a grab is active,
// otherwise to the child holding keyboard focus.
func (c *Container) Key(ev input.KeyEvent) bool {
	if c.grab != nil {
		return c.grab.Key(ev)
	}
	if c.keyboardFocus == nil {
		return false
	}
	return c.keyboardFocus.Key(ev)
}

// RefocusPointer re-derives pointer focus from the last known pointer
// position. Called after any structural change so focus never dangles.
func (c *Container) RefocusPointer() {
	if !c.pointerInside {
		return
	}
	_ = c.self.PointerMotion(input.PointerMotion{X: c.lastPointer.X, Y: c.lastPointer.Y})
}

func (c *Container) dropPointerFocus() {
	if c.pointerFocus == nil {
		return
	}
	c.pointerFocus.PointerLeave()
	c.pointerFocus = nil
}

// offsetTo returns the translation from this container's local space into
// target's local space, walking target's parent chain. ok is false when
// target is not in this container's subtree.
func (c *Container) offsetTo(target Element) (dx, dy int, ok bool) {
	e := target
	for e != nil {
		if e == c.self {
			return dx, dy, true
		}
		b := e.Base()
		dx += b.x
		dy += b.y
		if b.parent == nil {
			return 0, 0, false
		}
		e = b.parent.self
	}
	return 0, 0, false
}

// deliverGrabbedMotion forwards motion to the grab target in its own
// coordinate space.
func (c *Container) deliverGrabbedMotion(ev input.PointerMotion) bool {
	dx, dy, _ := c.offsetTo(c.grab)
	gEv := ev
	gEv.X, gEv.Y = ev.X-dx, ev.Y-dy
	return c.grab.PointerMotion(gEv)
}
