// Package rendertest provides an in-memory render.Graph that records every
// operation. Unit tests assert against the recorded node state and the demo
// binary uses it as a headless back-end.
package rendertest

import (
	"fmt"

	"github.com/slatewm/slate/internal/render"
)

// NodeState is the recorded state of one live node.
type NodeState struct {
	ID      int
	Parent  render.Node
	X, Y    int
	Width   int
	Height  int
	Enabled bool
	Fill    render.Color
	Text    string
	Icon    string

	// Stack orders siblings: higher means closer to the top. Assigned on
	// create and on every reparent, mirroring the Graph stacking contract.
	Stack int
}

// Graph is a recording render.Graph. It is not safe for concurrent use,
// matching the single-threaded contract of the core.
type Graph struct {
	nextID    int
	stackSeq  int
	nodes     map[render.Node]*NodeState
	destroyed []int
	ops       []string

	onNodeDestroyed func(render.Node)
}

var _ render.Graph = (*Graph)(nil)

// New creates an empty recording graph.
func New() *Graph {
	return &Graph{nodes: make(map[render.Node]*NodeState)}
}

type node struct{ id int }

func (g *Graph) CreateNode(parent render.Node) render.Node {
	if parent != nil {
		g.mustLive(parent, "CreateNode parent")
	}
	g.nextID++
	n := &node{id: g.nextID}
	g.stackSeq++
	g.nodes[n] = &NodeState{ID: n.id, Parent: parent, Enabled: true, Stack: g.stackSeq}
	g.record("create %d", n.id)
	return n
}

func (g *Graph) SetNodePosition(n render.Node, x, y int) {
	st := g.mustLive(n, "SetNodePosition")
	st.X, st.Y = x, y
	g.record("position %d %d,%d", st.ID, x, y)
}

func (g *Graph) SetNodeEnabled(n render.Node, enabled bool) {
	st := g.mustLive(n, "SetNodeEnabled")
	st.Enabled = enabled
	g.record("enabled %d %v", st.ID, enabled)
}

func (g *Graph) ReparentNode(n render.Node, newParent render.Node) {
	st := g.mustLive(n, "ReparentNode")
	if newParent != nil {
		g.mustLive(newParent, "ReparentNode parent")
	}
	st.Parent = newParent
	g.stackSeq++
	st.Stack = g.stackSeq
	g.record("reparent %d", st.ID)
}

func (g *Graph) DestroyNode(n render.Node) {
	st := g.mustLive(n, "DestroyNode")
	delete(g.nodes, n)
	g.destroyed = append(g.destroyed, st.ID)
	g.record("destroy %d", st.ID)
}

func (g *Graph) SetNodeSize(n render.Node, width, height int) {
	st := g.mustLive(n, "SetNodeSize")
	st.Width, st.Height = width, height
	g.record("size %d %dx%d", st.ID, width, height)
}

func (g *Graph) SetNodeFill(n render.Node, c render.Color) {
	st := g.mustLive(n, "SetNodeFill")
	st.Fill = c
	g.record("fill %d", st.ID)
}

func (g *Graph) SetNodeText(n render.Node, text string) {
	st := g.mustLive(n, "SetNodeText")
	st.Text = text
	g.record("text %d %q", st.ID, text)
}

func (g *Graph) SetNodeIcon(n render.Node, icon string) {
	st := g.mustLive(n, "SetNodeIcon")
	st.Icon = icon
	g.record("icon %d %q", st.ID, icon)
}

func (g *Graph) SetNodeDestroyedHandler(fn func(render.Node)) {
	g.onNodeDestroyed = fn
}

// NotifyNodeDestroyed simulates the back-end unilaterally destroying a node,
// which the core treats as fatal.
func (g *Graph) NotifyNodeDestroyed(n render.Node) {
	delete(g.nodes, n)
	if g.onNodeDestroyed != nil {
		g.onNodeDestroyed(n)
	}
}

// State returns the recorded state of a live node.
func (g *Graph) State(n render.Node) *NodeState {
	return g.nodes[n]
}

// Live reports whether n is a live node of this graph.
func (g *Graph) Live(n render.Node) bool {
	_, ok := g.nodes[n]
	return ok
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// DestroyedCount returns how many nodes have been destroyed so far.
func (g *Graph) DestroyedCount() int {
	return len(g.destroyed)
}

// Ops returns the recorded operation log, oldest first.
func (g *Graph) Ops() []string {
	return g.ops
}

// ChildrenOf returns the live children of parent in stacking order,
// bottom-most first. Creation and reparent order determine stacking.
func (g *Graph) ChildrenOf(parent render.Node) []*NodeState {
	var out []*NodeState
	for _, st := range g.nodes {
		if st.Parent == parent {
			out = append(out, st)
		}
	}
	// Map iteration order is random; order by stacking sequence.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].Stack > out[j].Stack; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func (g *Graph) mustLive(n render.Node, op string) *NodeState {
	st, ok := g.nodes[n]
	if !ok {
		panic(fmt.Sprintf("rendertest: %s on unknown or destroyed node", op))
	}
	return st
}

func (g *Graph) record(format string, args ...any) {
	g.ops = append(g.ops, fmt.Sprintf(format, args...))
}
