// Package wmtest provides a scripted client surface for window tests.
package wmtest

import (
	"github.com/slatewm/slate/internal/geometry"
	"github.com/slatewm/slate/internal/scene"
)

// SizeRequest records one RequestSize call and the serial it was issued.
type SizeRequest struct {
	Serial uint32
	Width  int
	Height int
}

// Content is a stand-in for a remote client surface. Every request is
// recorded and assigned an increasing serial, and nothing takes effect
// until the test calls Commit (or CommitSize), which applies a size and
// reports the serial back through the OnSerial hook the way a real peer's
// commit would.
type Content struct {
	scene.Core

	nextSerial uint32
	width      int
	height     int

	requestedW int
	requestedH int
	lastSerial uint32

	SizeRequests       []SizeRequest
	CloseRequests      int
	MaximizeRequests   []bool
	FullscreenRequests []bool
	Activated          bool

	onSerial func(uint32)
}

// NewContent creates a content surface with the given committed size.
func NewContent(width, height int) *Content {
	c := &Content{width: width, height: height, nextSerial: 1}
	c.Init(c)
	c.SetBounds(geometry.NewRect(0, 0, width, height))
	return c
}

// SetOnSerial wires commit acknowledgements, normally to Window.OnSerial.
func (c *Content) SetOnSerial(fn func(uint32)) { c.onSerial = fn }

// SetNextSerial overrides the next serial to issue, for wraparound
// scenarios.
func (c *Content) SetNextSerial(s uint32) { c.nextSerial = s }

// LastSerial returns the serial of the most recent size request.
func (c *Content) LastSerial() uint32 { return c.lastSerial }

func (c *Content) issue() uint32 {
	s := c.nextSerial
	c.nextSerial++
	return s
}

func (c *Content) RequestSize(width, height int) uint32 {
	s := c.issue()
	c.requestedW, c.requestedH = width, height
	c.lastSerial = s
	c.SizeRequests = append(c.SizeRequests, SizeRequest{Serial: s, Width: width, Height: height})
	return s
}

func (c *Content) RequestClose() { c.CloseRequests++ }

func (c *Content) RequestMaximized(on bool) uint32 {
	c.MaximizeRequests = append(c.MaximizeRequests, on)
	return c.issue()
}

func (c *Content) RequestFullscreen(on bool) uint32 {
	c.FullscreenRequests = append(c.FullscreenRequests, on)
	return c.issue()
}

func (c *Content) SetActivated(on bool) { c.Activated = on }

func (c *Content) Size() (width, height int) { return c.width, c.height }

// Commit applies the most recent size request and acknowledges it.
func (c *Content) Commit() {
	c.CommitSize(c.requestedW, c.requestedH, c.lastSerial)
}

// CommitSize commits an arbitrary size under an arbitrary serial, for
// out-of-order, coalesced and client-driven scenarios.
func (c *Content) CommitSize(width, height int, serial uint32) {
	c.width, c.height = width, height
	c.SetBounds(geometry.NewRect(0, 0, width, height))
	if c.Attached() {
		c.Graph().SetNodeSize(c.Node(), width, height)
	}
	if c.onSerial != nil {
		c.onSerial(serial)
	}
}
