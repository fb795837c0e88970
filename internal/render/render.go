// Package render defines the interface to the external scene-graph rendering
// service. The toolkit never paints pixels itself: it mirrors the composition
// tree onto opaque render nodes owned by this service, the same way the UI
// tree is decoupled from its backing widgets for testing.
package render

// Node is an opaque handle to a render node. Handles are issued by a Graph
// and are only meaningful to the Graph that issued them.
type Node interface{}

// Graph is the rendering back-end. All operations are synchronous and
// infallible from the core's point of view: the service owns the actual
// GPU/buffer resources and is trusted to honor every call.
//
// Stacking: CreateNode places the new node above its existing siblings, and
// ReparentNode moves a node to the top of its new parent's stack. Callers
// that need a specific z-order re-issue ReparentNode back to front.
type Graph interface {
	// CreateNode creates a node under parent. A nil parent attaches the
	// node at the root of the graph.
	CreateNode(parent Node) Node
	SetNodePosition(n Node, x, y int)
	SetNodeEnabled(n Node, enabled bool)
	ReparentNode(n Node, newParent Node)
	DestroyNode(n Node)

	// Leaf-surface operations used by decoration widgets.
	SetNodeSize(n Node, width, height int)
	SetNodeFill(n Node, c Color)
	SetNodeText(n Node, text string)
	SetNodeIcon(n Node, icon string)

	// SetNodeDestroyedHandler registers the callback invoked when the
	// service destroys a node the core did not ask to be destroyed. The
	// core treats this as a broken collaborator invariant.
	SetNodeDestroyedHandler(fn func(Node))
}

// Color is a straight-alpha RGBA fill color.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}
