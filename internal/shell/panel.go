// Package shell implements anchored, auto-sized output regions: docks,
// bars and other panels laid out against the edges of an output, plus the
// Workspace that owns them and the window stack.
package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/slatewm/slate/internal/geometry"
	"github.com/slatewm/slate/internal/scene"
)

// ErrInvalidAnchors is returned when a panel's anchor/exclusive-zone
// combination does not describe a placeable region. The panel keeps its
// last known-good geometry.
var ErrInvalidAnchors = errors.New("shell: invalid anchor combination")

// Anchor is a bitmask of output edges a panel is pinned to.
type Anchor uint8

// Anchor bits.
const (
	AnchorTop Anchor = 1 << iota
	AnchorBottom
	AnchorLeft
	AnchorRight
)

func (a Anchor) String() string {
	var parts []string
	if a&AnchorTop != 0 {
		parts = append(parts, "top")
	}
	if a&AnchorBottom != 0 {
		parts = append(parts, "bottom")
	}
	if a&AnchorLeft != 0 {
		parts = append(parts, "left")
	}
	if a&AnchorRight != 0 {
		parts = append(parts, "right")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// exclusiveEdge returns the single edge an exclusive zone applies to: the
// panel must be anchored to exactly one edge, or to one edge plus both
// edges perpendicular to it.
func (a Anchor) exclusiveEdge() (Anchor, bool) {
	switch a {
	case AnchorTop, AnchorTop | AnchorLeft | AnchorRight:
		return AnchorTop, true
	case AnchorBottom, AnchorBottom | AnchorLeft | AnchorRight:
		return AnchorBottom, true
	case AnchorLeft, AnchorLeft | AnchorTop | AnchorBottom:
		return AnchorLeft, true
	case AnchorRight, AnchorRight | AnchorTop | AnchorBottom:
		return AnchorRight, true
	default:
		return 0, false
	}
}

// Panel is a container representing an anchored shell region. Its children
// are whatever widgets the dock or bar is assembled from; the panel itself
// only contributes placement and the exclusive zone.
type Panel struct {
	scene.Container

	log           zerolog.Logger
	anchors       Anchor
	width         int // 0 = stretch between the anchored horizontal edges
	height        int // 0 = stretch between the anchored vertical edges
	exclusiveZone int
}

// NewPanel creates a panel pinned to the given edges with the given
// requested extent.
func NewPanel(anchors Anchor, width, height int) *Panel {
	p := &Panel{anchors: anchors, width: width, height: height, log: zerolog.Nop()}
	p.InitContainer()
	p.Init(p)
	p.SetBounds(geometry.NewRect(0, 0, width, height))
	return p
}

// SetPanelLogger installs a logger for layout diagnostics.
func (p *Panel) SetPanelLogger(log zerolog.Logger) {
	p.log = log
	p.SetLogger(log)
}

// Anchors returns the anchor mask.
func (p *Panel) Anchors() Anchor { return p.anchors }

// SetAnchors replaces the anchor mask. The new placement takes effect on
// the next workspace arrange.
func (p *Panel) SetAnchors(a Anchor) { p.anchors = a }

// ExclusiveZone returns the reserved strip depth, 0 for none.
func (p *Panel) ExclusiveZone() int { return p.exclusiveZone }

// SetExclusiveZone reserves a strip of the given depth along the panel's
// anchored edge. A negative zone anchors the panel to the full output,
// ignoring the strips reserved by other panels.
func (p *Panel) SetExclusiveZone(zone int) { p.exclusiveZone = zone }

// ComputeDimensions places the panel against the caller's usable area and,
// when the panel is visible and claims an exclusive zone, shrinks usable
// for the panels laid out after it. A panel with a negative exclusive zone
// is placed against the full output instead, untouched by earlier
// reservations. Invisible panels are positioned but reserve nothing. On
// error usable is left untouched.
func (p *Panel) ComputeDimensions(output geometry.Rect, usable *geometry.Rect) (geometry.Rect, error) {
	if p.anchors == 0 {
		return geometry.Rect{}, fmt.Errorf("%w: panel anchored to no edge", ErrInvalidAnchors)
	}
	edge, hasEdge := p.anchors.exclusiveEdge()
	if p.exclusiveZone > 0 && !hasEdge {
		return geometry.Rect{}, fmt.Errorf("%w: exclusive zone with ambiguous edge %s", ErrInvalidAnchors, p.anchors)
	}

	ref := *usable
	if p.exclusiveZone < 0 {
		ref = output
	}

	var box geometry.Rect

	switch {
	case p.anchors&AnchorLeft != 0 && p.anchors&AnchorRight != 0:
		box.X = ref.X
		box.Width = ref.Width
	case p.anchors&AnchorLeft != 0:
		box.X = ref.X
		box.Width = p.width
	case p.anchors&AnchorRight != 0:
		box.X = ref.X + ref.Width - p.width
		box.Width = p.width
	default:
		box.X = ref.X + (ref.Width-p.width)/2
		box.Width = p.width
	}

	switch {
	case p.anchors&AnchorTop != 0 && p.anchors&AnchorBottom != 0:
		box.Y = ref.Y
		box.Height = ref.Height
	case p.anchors&AnchorTop != 0:
		box.Y = ref.Y
		box.Height = p.height
	case p.anchors&AnchorBottom != 0:
		box.Y = ref.Y + ref.Height - p.height
		box.Height = p.height
	default:
		box.Y = ref.Y + (ref.Height-p.height)/2
		box.Height = p.height
	}

	if box.Width <= 0 || box.Height <= 0 {
		return geometry.Rect{}, fmt.Errorf("%w: panel %s has no extent", ErrInvalidAnchors, p.anchors)
	}

	if p.Visible() && p.exclusiveZone > 0 {
		var in geometry.Insets
		switch edge {
		case AnchorTop:
			in.Top = p.exclusiveZone
		case AnchorBottom:
			in.Bottom = p.exclusiveZone
		case AnchorLeft:
			in.Left = p.exclusiveZone
		case AnchorRight:
			in.Right = p.exclusiveZone
		}
		*usable = usable.Inset(in)
	}

	return box, nil
}

// Layout computes the panel's placement and applies it. On a recoverable
// layout error the panel keeps its last known-good geometry.
func (p *Panel) Layout(output geometry.Rect, usable *geometry.Rect) error {
	box, err := p.ComputeDimensions(output, usable)
	if err != nil {
		p.log.Warn().Err(err).Str("anchors", p.anchors.String()).Msg("panel layout rejected")
		return err
	}
	p.SetPosition(box.X, box.Y)
	p.SetBounds(geometry.NewRect(0, 0, box.Width, box.Height))
	return nil
}

// UpdateLayout keeps the panel's assigned extent: children do not drive
// the panel's size the way they do for plain containers.
func (p *Panel) UpdateLayout() {
	p.PropagateLayout()
}
