package shell

import (
	"github.com/rs/zerolog"

	"github.com/slatewm/slate/internal/geometry"
	"github.com/slatewm/slate/internal/input"
	"github.com/slatewm/slate/internal/render"
	"github.com/slatewm/slate/internal/scene"
)

// RemoteSurface is implemented by elements fronting a remote client
// surface, windows in practice. The workspace keeps activation in step
// with the pointer and consults the input back-end's remote focus to
// decide whether the peer needs an enter notification at all.
type RemoteSurface interface {
	scene.Element
	RemoteFocus() any
	SetActivated(on bool)
}

// Workspace is the root container for one output: panels stack above
// windows, and the usable area left over after exclusive zones is what
// maximized windows get.
type Workspace struct {
	scene.Container

	log     zerolog.Logger
	output  geometry.Rect
	usable  geometry.Rect
	panels  []*Panel
	backend input.Backend
	active  RemoteSurface
}

// NewWorkspace creates a workspace covering the given output extents.
func NewWorkspace(output geometry.Rect) *Workspace {
	w := &Workspace{log: zerolog.Nop(), output: output, usable: output}
	w.InitContainer()
	w.Init(w)
	w.SetBounds(geometry.NewRect(0, 0, output.Width, output.Height))
	return w
}

// SetWorkspaceLogger installs a logger for arrange diagnostics.
func (w *Workspace) SetWorkspaceLogger(log zerolog.Logger) {
	w.log = log
	w.SetLogger(log)
}

// BindInput registers the workspace as the sink of an input back-end, so
// decoded events route through the tree.
func (w *Workspace) BindInput(b input.Backend) {
	w.backend = b
	b.SetHandler(w)
}

// PointerMotion routes motion through the tree, then keeps window
// activation in step with the surface under the pointer.
func (w *Workspace) PointerMotion(ev input.PointerMotion) bool {
	consumed := w.Container.PointerMotion(ev)
	w.syncRemoteFocus()
	return consumed
}

// syncRemoteFocus activates the remote surface under the pointer and
// deactivates the previous one. A peer already holding remote input
// focus gets no enter notification.
func (w *Workspace) syncRemoteFocus() {
	if w.backend == nil {
		return
	}
	target, _ := w.PointerFocus().(RemoteSurface)
	if target == w.active {
		return
	}
	if w.active != nil {
		w.active.SetActivated(false)
	}
	w.active = target
	if target == nil || w.backend.RemoteInputFocus() == target.RemoteFocus() {
		return
	}
	target.SetActivated(true)
}

// CreateSceneNode attaches the workspace tree to the render graph and
// registers the handler for nodes the back-end destroys on its own. Node
// lifetime belongs to the tree, so an unsolicited destroy means the
// collaborator broke contract.
func (w *Workspace) CreateSceneNode(g render.Graph, parent render.Node) {
	g.SetNodeDestroyedHandler(func(n render.Node) {
		w.log.Fatal().Msg("render node destroyed by back-end without a request")
	})
	w.Container.CreateSceneNode(g, parent)
}

// Output returns the full output extents.
func (w *Workspace) Output() geometry.Rect { return w.output }

// Usable returns the output extents minus all exclusive zones, as of the
// last Arrange. Maximized windows are sized to this.
func (w *Workspace) Usable() geometry.Rect { return w.usable }

// SetOutput resizes the output and rearranges everything.
func (w *Workspace) SetOutput(output geometry.Rect) {
	w.output = output
	w.SetBounds(geometry.NewRect(0, 0, output.Width, output.Height))
	w.Arrange()
}

// AddPanel stacks a panel above all windows and arranges it. Panels claim
// exclusive zones in the order they were added.
func (w *Workspace) AddPanel(p *Panel) {
	w.panels = append(w.panels, p)
	w.AddFront(p)
	w.Arrange()
}

// RemovePanel detaches a panel and gives its exclusive zone back.
func (w *Workspace) RemovePanel(p *Panel) {
	for i, q := range w.panels {
		if q == p {
			w.panels = append(w.panels[:i], w.panels[i+1:]...)
			break
		}
	}
	w.Remove(p)
	w.Arrange()
}

// AddWindow stacks a window element above the other windows but below the
// panels.
func (w *Workspace) AddWindow(el scene.Element) {
	w.Add(el, len(w.panels))
}

// RemoveWindow detaches a window element.
func (w *Workspace) RemoveWindow(el scene.Element) {
	if sur, ok := el.(RemoteSurface); ok && sur == w.active {
		w.active = nil
	}
	w.Remove(el)
}

// RaiseWindow moves a window element to the top of the window stack, still
// below the panels.
func (w *Workspace) RaiseWindow(el scene.Element) {
	w.MoveTo(el, len(w.panels))
}

// Arrange lays out all panels against the output, front to back, threading
// the shrinking usable area through them. Panels that fail validation are
// skipped and keep their previous geometry.
func (w *Workspace) Arrange() {
	usable := w.output
	for _, p := range w.panels {
		if err := p.Layout(w.output, &usable); err != nil {
			w.log.Warn().Err(err).Msg("panel layout failed, keeping previous geometry")
			continue
		}
	}
	if usable != w.usable {
		w.log.Debug().
			Int("width", usable.Width).
			Int("height", usable.Height).
			Msg("usable area changed")
	}
	w.usable = usable
}

// UpdateLayout keeps the workspace pinned to its output extents.
func (w *Workspace) UpdateLayout() {}
