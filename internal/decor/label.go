package decor

import (
	"github.com/slatewm/slate/internal/geometry"
	"github.com/slatewm/slate/internal/render"
	"github.com/slatewm/slate/internal/scene"
)

// Label displays a single line of text. Text shaping happens in the render
// service; the label only carries the string and a caller-assigned extent.
type Label struct {
	scene.Core

	text   string
	width  int
	height int
}

// NewLabel creates a label.
func NewLabel(text string) *Label {
	l := &Label{text: text}
	l.Init(l)
	return l
}

// SetText replaces the label text.
func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	if l.Attached() {
		l.Graph().SetNodeText(l.Node(), text)
	}
}

// Text returns the current text.
func (l *Label) Text() string { return l.text }

// SetSize assigns the label's extent.
func (l *Label) SetSize(width, height int) {
	l.width, l.height = width, height
	l.SetBounds(geometry.NewRect(0, 0, width, height))
	if l.Attached() {
		l.Graph().SetNodeSize(l.Node(), width, height)
	}
}

// CreateSceneNode attaches the label and pushes its surface state.
func (l *Label) CreateSceneNode(g render.Graph, parent render.Node) {
	l.Core.CreateSceneNode(g, parent)
	g.SetNodeSize(l.Node(), l.width, l.height)
	g.SetNodeText(l.Node(), l.text)
}
