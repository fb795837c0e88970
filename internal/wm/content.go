// Package wm implements the window composite: a bordered box holding a
// client content surface plus optional titlebar and resizebar decorations,
// the maximize/fullscreen/shade state machine, and the serial-correlated
// pending-geometry queue that drives asynchronous resize transitions.
package wm

import "github.com/slatewm/slate/internal/scene"

// Content is the client's drawable surface. Size negotiation is
// asynchronous: every request returns a serial, an opaque monotonically
// issued (mod 2^32) correlation number, and the content later calls back
// into Window.OnSerial once the peer has applied and committed a size.
//
// A Content is itself an element of the composition tree; the Window wraps
// it and owns its placement, never its buffer.
type Content interface {
	scene.Element

	// RequestSize asks the remote peer to resize to width x height. The
	// peer may commit a different size, later, or not at all.
	RequestSize(width, height int) uint32

	// RequestClose asks the remote peer to close.
	RequestClose()

	// RequestMaximized and RequestFullscreen inform the peer of the
	// pending state so it can adjust its rendering.
	RequestMaximized(on bool) uint32
	RequestFullscreen(on bool) uint32

	// SetActivated tells the peer whether it holds the active-window
	// styling.
	SetActivated(on bool)

	// Size returns the last committed size.
	Size() (width, height int)
}
