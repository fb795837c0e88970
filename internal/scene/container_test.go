package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatewm/slate/internal/geometry"
	"github.com/slatewm/slate/internal/input"
	"github.com/slatewm/slate/internal/render/rendertest"
	"github.com/slatewm/slate/internal/scene"
)

func motion(x, y int) input.PointerMotion {
	return input.PointerMotion{X: x, Y: y}
}

func TestContainer_AddSetsParent(t *testing.T) {
	c := scene.NewContainer()
	l := newTestLeaf(10, 10)

	c.AddFront(l)

	assert.Equal(t, c, l.Parent())
	assert.Equal(t, 1, c.Len())
}

func TestContainer_AddTwicePanics(t *testing.T) {
	c1 := scene.NewContainer()
	c2 := scene.NewContainer()
	l := newTestLeaf(10, 10)
	c1.AddFront(l)

	assert.Panics(t, func() {
		c2.AddFront(l)
	})
}

func TestContainer_RemoveFromWrongContainerPanics(t *testing.T) {
	c1 := scene.NewContainer()
	c2 := scene.NewContainer()
	l := newTestLeaf(10, 10)
	c1.AddFront(l)

	assert.Panics(t, func() {
		c2.Remove(l)
	})
}

func TestContainer_HitTestFocusesFrontChild(t *testing.T) {
	c := scene.NewContainer()
	front := newTestLeaf(50, 50)
	back := newTestLeaf(50, 50)
	c.AddFront(back)
	c.AddFront(front) // both cover (0,0)-(50,50); front wins

	consumed := c.PointerMotion(motion(10, 10))

	assert.True(t, consumed)
	assert.Equal(t, scene.Element(front), c.PointerFocus())
	require.Len(t, front.motions, 1)
	assert.Empty(t, back.motions)
}

func TestContainer_HitTestTranslatesToLocalSpace(t *testing.T) {
	c := scene.NewContainer()
	l := newTestLeaf(20, 20)
	c.AddFront(l)
	l.SetPosition(30, 40)

	c.PointerMotion(motion(35, 48))

	require.Len(t, l.motions, 1)
	assert.Equal(t, 5, l.motions[0].X)
	assert.Equal(t, 8, l.motions[0].Y)
}

func TestContainer_FocusChangeSendsLeave(t *testing.T) {
	c := scene.NewContainer()
	left := newTestLeaf(20, 20)
	right := newTestLeaf(20, 20)
	right.SetPosition(100, 0)
	c.AddFront(left)
	c.AddFront(right)

	c.PointerMotion(motion(5, 5))
	require.Equal(t, scene.Element(left), c.PointerFocus())

	c.PointerMotion(motion(105, 5))

	assert.Equal(t, scene.Element(right), c.PointerFocus())
	assert.Equal(t, 1, left.leaves)
}

func TestContainer_MissClearsFocus(t *testing.T) {
	c := scene.NewContainer()
	l := newTestLeaf(20, 20)
	c.AddFront(l)

	c.PointerMotion(motion(5, 5))
	require.NotNil(t, c.PointerFocus())

	consumed := c.PointerMotion(motion(500, 500))

	assert.False(t, consumed)
	assert.Nil(t, c.PointerFocus())
	assert.Equal(t, 1, l.leaves)
}

func TestContainer_InvisibleChildNotHit(t *testing.T) {
	c := scene.NewContainer()
	l := newTestLeaf(20, 20)
	c.AddFront(l)
	l.SetVisible(false)

	consumed := c.PointerMotion(motion(5, 5))

	assert.False(t, consumed)
	assert.Empty(t, l.motions)
}

func TestContainer_ButtonFollowsPointerFocusWithoutRehitTest(t *testing.T) {
	c := scene.NewContainer()
	left := newTestLeaf(20, 20)
	right := newTestLeaf(20, 20)
	right.SetPosition(100, 0)
	c.AddFront(left)
	c.AddFront(right)

	c.PointerMotion(motion(5, 5)) // focus = left

	// Button lands in right's area but must still go to left: motion
	// determines the target, buttons follow it (click-and-drag).
	ev := input.PointerButton{Button: input.ButtonLeft, State: input.ButtonPressed, X: 105, Y: 5}
	consumed := c.PointerButton(ev)

	assert.True(t, consumed)
	require.Len(t, left.buttons, 1)
	assert.Empty(t, right.buttons)
	assert.Equal(t, 105, left.buttons[0].X) // translated by left's position (0,0)
}

func TestContainer_ButtonWithoutFocusNotConsumed(t *testing.T) {
	c := scene.NewContainer()

	consumed := c.PointerButton(input.PointerButton{Button: input.ButtonLeft})

	assert.False(t, consumed)
}

func TestContainer_AxisFollowsPointerFocus(t *testing.T) {
	c := scene.NewContainer()
	l := newTestLeaf(20, 20)
	c.AddFront(l)
	c.PointerMotion(motion(5, 5))

	consumed := c.PointerAxis(input.PointerAxis{Delta: -1.5})

	assert.True(t, consumed)
	require.Len(t, l.axes, 1)
}

func TestContainer_RemoveRefocusesPointer(t *testing.T) {
	c := scene.NewContainer()
	front := newTestLeaf(50, 50)
	back := newTestLeaf(50, 50)
	c.AddFront(back)
	c.AddFront(front)

	c.PointerMotion(motion(10, 10))
	require.Equal(t, scene.Element(front), c.PointerFocus())

	c.Remove(front)

	// Focus must re-derive to whichever remaining element covers the
	// point, never to the removed one.
	assert.Equal(t, scene.Element(back), c.PointerFocus())
	require.Len(t, back.motions, 1)
}

func TestContainer_RemoveLastChildClearsFocus(t *testing.T) {
	c := scene.NewContainer()
	l := newTestLeaf(50, 50)
	c.AddFront(l)
	c.PointerMotion(motion(10, 10))

	c.Remove(l)

	assert.Nil(t, c.PointerFocus())
	assert.Nil(t, l.Parent())
}

func TestContainer_KeyboardFocusDelivery(t *testing.T) {
	c := scene.NewContainer()
	l := newTestLeaf(10, 10)
	c.AddFront(l)

	assert.False(t, c.Key(input.KeyEvent{Keysym: 0x61, Pressed: true}))

	c.SetKeyboardFocus(l)
	assert.True(t, c.Key(input.KeyEvent{Keysym: 0x61, Pressed: true}))
	require.Len(t, l.keys, 1)
}

func TestContainer_RemoveClearsKeyboardFocus(t *testing.T) {
	c := scene.NewContainer()
	l := newTestLeaf(10, 10)
	c.AddFront(l)
	c.SetKeyboardFocus(l)

	c.Remove(l)

	assert.Nil(t, c.KeyboardFocus())
	assert.False(t, c.Key(input.KeyEvent{Keysym: 0x61}))
}

func TestContainer_KeyboardFocusOutsideSubtreePanics(t *testing.T) {
	c := scene.NewContainer()
	stranger := newTestLeaf(10, 10)

	assert.Panics(t, func() {
		c.SetKeyboardFocus(stranger)
	})
}

func TestContainer_GrabRoutesEverythingToTarget(t *testing.T) {
	c := scene.NewContainer()
	overlay := newTestLeaf(10, 10)
	other := newTestLeaf(500, 500)
	c.AddBack(other)
	c.AddFront(overlay)
	overlay.SetPosition(200, 200)

	c.Grab(overlay)

	// Motion far outside the overlay still goes to it, translated.
	c.PointerMotion(motion(10, 10))
	require.Len(t, overlay.motions, 1)
	assert.Equal(t, -190, overlay.motions[0].X)
	assert.Empty(t, other.motions)

	c.PointerButton(input.PointerButton{Button: input.ButtonLeft, X: 10, Y: 10})
	require.Len(t, overlay.buttons, 1)
	assert.Empty(t, other.buttons)

	c.Key(input.KeyEvent{Keysym: 0xff1b})
	require.Len(t, overlay.keys, 1)
}

func TestContainer_SecondGrabPanics(t *testing.T) {
	c := scene.NewContainer()
	a := newTestLeaf(10, 10)
	b := newTestLeaf(10, 10)
	c.AddFront(a)
	c.AddFront(b)
	c.Grab(a)

	assert.Panics(t, func() {
		c.Grab(b)
	})
}

func TestContainer_ReleaseGrabRestoresHitTesting(t *testing.T) {
	c := scene.NewContainer()
	overlay := newTestLeaf(10, 10)
	under := newTestLeaf(50, 50)
	c.AddBack(under)
	c.AddFront(overlay)
	overlay.SetPosition(200, 200)

	c.Grab(overlay)
	c.PointerMotion(motion(10, 10))
	c.ReleaseGrab()

	assert.False(t, c.Grabbed())
	// Release refocuses at the last pointer position.
	assert.Equal(t, scene.Element(under), c.PointerFocus())
}

func TestContainer_RenderSubtreeMirrorsZOrder(t *testing.T) {
	g := rendertest.New()
	c := scene.NewContainer()
	bottom := newTestLeaf(10, 10)
	top := newTestLeaf(10, 10)
	c.AddFront(bottom)
	c.AddFront(top)

	c.CreateSceneNode(g, nil)

	kids := g.ChildrenOf(c.Node())
	require.Len(t, kids, 2)
	// Bottom-most first in stacking order; both nodes report the
	// container's node as parent.
	assert.Equal(t, g.State(bottom.Node()).ID, kids[0].ID)
	assert.Equal(t, g.State(top.Node()).ID, kids[1].ID)
}

func TestContainer_AddWhileAttachedCreatesAndRestacks(t *testing.T) {
	g := rendertest.New()
	c := scene.NewContainer()
	first := newTestLeaf(10, 10)
	c.AddFront(first)
	c.CreateSceneNode(g, nil)

	newFront := newTestLeaf(10, 10)
	c.AddFront(newFront)

	require.True(t, newFront.Attached())
	kids := g.ChildrenOf(c.Node())
	require.Len(t, kids, 2)
	assert.Equal(t, g.State(newFront.Node()).ID, kids[1].ID) // topmost
}

func TestContainer_RemoveDestroysRenderSubtree(t *testing.T) {
	g := rendertest.New()
	c := scene.NewContainer()
	inner := scene.NewContainer()
	leaf := newTestLeaf(10, 10)
	inner.AddFront(leaf)
	c.AddFront(inner)
	c.CreateSceneNode(g, nil)
	require.Equal(t, 3, g.NodeCount())

	c.Remove(inner)

	assert.Equal(t, 1, g.NodeCount())
	assert.False(t, inner.Attached())
	assert.False(t, leaf.Attached())
}

func TestContainer_DestroyDestroysChildren(t *testing.T) {
	c := scene.NewContainer()
	l1 := newTestLeaf(10, 10)
	l2 := newTestLeaf(10, 10)
	c.AddFront(l1)
	c.AddFront(l2)

	c.Destroy()

	assert.Equal(t, 0, c.Len())
	assert.Nil(t, l1.Parent())
	assert.Nil(t, l2.Parent())
}

func TestContainer_BoundsUnionOfChildren(t *testing.T) {
	c := scene.NewContainer()
	a := newTestLeaf(10, 10)
	b := newTestLeaf(20, 5)
	c.AddFront(a)
	c.AddFront(b)
	b.SetPosition(15, 2)
	c.UpdateLayout()

	assert.Equal(t, geometry.NewRect(0, 0, 35, 10), c.Bounds())
}

func TestContainer_NestedRouting(t *testing.T) {
	root := scene.NewContainer()
	inner := scene.NewContainer()
	leaf := newTestLeaf(10, 10)
	inner.AddFront(leaf)
	leaf.SetPosition(5, 5)
	inner.UpdateLayout()
	root.AddFront(inner)
	inner.SetPosition(100, 100)

	consumed := root.PointerMotion(motion(108, 109))

	assert.True(t, consumed)
	require.Len(t, leaf.motions, 1)
	assert.Equal(t, 3, leaf.motions[0].X)
	assert.Equal(t, 4, leaf.motions[0].Y)
	assert.Equal(t, scene.Element(inner), root.PointerFocus())
	assert.Equal(t, scene.Element(leaf), inner.PointerFocus())
}
