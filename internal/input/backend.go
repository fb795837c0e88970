package input

// Handler receives decoded events from a Backend. Each method reports
// whether the event was consumed.
type Handler interface {
	PointerMotion(ev PointerMotion) bool
	PointerButton(ev PointerButton) bool
	PointerAxis(ev PointerAxis) bool
	Key(ev KeyEvent) bool
}

// Backend is the input back-end collaborator. It pushes events into the
// registered Handler on the core's control thread.
type Backend interface {
	// SetHandler registers the event sink. Passing nil detaches it.
	SetHandler(h Handler)

	// RemoteInputFocus returns the opaque object the back-end considers to
	// hold remote input focus, or nil. The core compares it against its own
	// focus target to decide whether enter/leave notifications must be sent
	// to the remote peer.
	RemoteInputFocus() any
}
