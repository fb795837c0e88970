package wm

import (
	"github.com/rs/zerolog"

	"github.com/slatewm/slate/internal/decor"
	"github.com/slatewm/slate/internal/geometry"
	"github.com/slatewm/slate/internal/scene"
)

// Options configures a new Window.
type Options struct {
	AppID string
	Title string

	// Theme supplies decoration metrics and colors; the zero value selects
	// DefaultTheme.
	Theme Theme

	// PendingPool caps the in-flight geometry queue; zero selects
	// DefaultPendingPool.
	PendingPool int

	Logger zerolog.Logger

	// MaximizeExtents and FullscreenExtents supply the decorated target
	// frames for the two inorganic states, in the window's parent space.
	// They are consulted at request time so output changes between requests
	// are picked up naturally.
	MaximizeExtents   func() geometry.Rect
	FullscreenExtents func() geometry.Rect
}

// Window is the client content wrapped in its decorations: a vertical box
// of titlebar, content and resizebar inside a border frame. It owns the
// maximize, fullscreen and shade state machine and the pending-geometry
// queue correlating asynchronous size commits back to the frames that
// requested them.
//
// Geometry changes involving the content never apply immediately. A
// request rides out with a serial; the intended frame waits in the queue
// until the content calls OnSerial with a serial at or past it.
type Window struct {
	decor.Bordered

	log   zerolog.Logger
	theme Theme
	appID string
	title string

	content   Content
	box       *scene.Box
	titlebar  *Titlebar
	resizebar *Resizebar

	pending *pendingRing

	// organic is the geometry the window returns to when it leaves
	// maximized or fullscreen. While inorganicSizing is set, committed
	// frames do not overwrite it.
	organic             geometry.Rect
	maximized           bool
	fullscreen          bool
	shaded              bool
	inorganicSizing     bool
	serverSideDecorated bool
	activated           bool

	maximizeExtents   func() geometry.Rect
	fullscreenExtents func() geometry.Rect

	onMaximized   func(bool)
	onFullscreen  func(bool)
	onShaded      func(bool)
	onResizeStart func(x, y int)
}

// NewWindow wraps content in a decorated window.
func NewWindow(content Content, opts Options) *Window {
	if opts.Theme == (Theme{}) {
		opts.Theme = DefaultTheme()
	}
	w := &Window{
		log:                 opts.Logger,
		theme:               opts.Theme,
		appID:               opts.AppID,
		title:               opts.Title,
		content:             content,
		pending:             newPendingRing(opts.PendingPool),
		serverSideDecorated: true,
		maximizeExtents:     opts.MaximizeExtents,
		fullscreenExtents:   opts.FullscreenExtents,
	}
	w.InitContainer()
	w.Init(w)
	w.SetLogger(opts.Logger)

	w.box = scene.NewBox(scene.Vertical, opts.Theme.BoxMargin)
	w.box.AddBack(content)
	w.InitBordered(w.box, opts.Theme.BorderWidth, opts.Theme.InactiveBorder)
	w.createDecorations()

	cw, ch := content.Size()
	frame := w.frameForContent(cw, ch)
	w.organic = geometry.NewRect(0, 0, frame.Width, frame.Height)
	return w
}

// AppID returns the stable application identifier.
func (w *Window) AppID() string { return w.appID }

// Title returns the cached window title.
func (w *Window) Title() string { return w.title }

// Content returns the wrapped client surface.
func (w *Window) Content() Content { return w.content }

// RemoteFocus returns the object the input back-end reports while this
// window's client holds remote input focus.
func (w *Window) RemoteFocus() any {
	if w.content == nil {
		return nil
	}
	return w.content
}

// Maximized reports the committed maximize state.
func (w *Window) Maximized() bool { return w.maximized }

// Fullscreen reports the committed fullscreen state.
func (w *Window) Fullscreen() bool { return w.fullscreen }

// Shaded reports whether the window is collapsed to its titlebar.
func (w *Window) Shaded() bool { return w.shaded }

// Activated reports whether the window carries the active styling.
func (w *Window) Activated() bool { return w.activated }

// ServerSideDecorated reports whether this side draws the decorations.
func (w *Window) ServerSideDecorated() bool { return w.serverSideDecorated }

// Geometry returns the current decorated frame in parent coordinates.
func (w *Window) Geometry() geometry.Rect {
	x, y := w.Position()
	b := w.Bounds()
	return geometry.NewRect(x, y, b.Width, b.Height)
}

// OrganicGeometry returns the frame the window restores to when leaving
// maximized or fullscreen.
func (w *Window) OrganicGeometry() geometry.Rect { return w.organic }

// PendingUpdates returns the number of geometry intents awaiting commit.
func (w *Window) PendingUpdates() int { return w.pending.Len() }

// SetOnMaximized installs the committed-maximize notification.
func (w *Window) SetOnMaximized(fn func(bool)) { w.onMaximized = fn }

// SetOnFullscreen installs the committed-fullscreen notification.
func (w *Window) SetOnFullscreen(fn func(bool)) { w.onFullscreen = fn }

// SetOnShaded installs the shade notification.
func (w *Window) SetOnShaded(fn func(bool)) { w.onShaded = fn }

// SetOnResizeStart installs the callback fired when the resizebar grip is
// pressed.
func (w *Window) SetOnResizeStart(fn func(x, y int)) { w.onResizeStart = fn }

// SetTitle updates the title cache and, when decorated, the titlebar.
func (w *Window) SetTitle(title string) {
	w.title = title
	if w.titlebar != nil {
		w.titlebar.SetTitle(title)
	}
}

// SetActivated applies the active styling to the content, titlebar and
// border.
func (w *Window) SetActivated(on bool) {
	if w.activated == on {
		return
	}
	w.activated = on
	w.content.SetActivated(on)
	if w.titlebar != nil {
		w.titlebar.SetActivated(on)
	}
	if on {
		w.SetColor(w.theme.ActiveBorder)
	} else {
		w.SetColor(w.theme.InactiveBorder)
	}
}

// Close asks the client to close. The window stays up until the content
// actually goes away.
func (w *Window) Close() {
	if w.content != nil {
		w.content.RequestClose()
	}
}

// Move repositions the window immediately. Pure moves need no size
// negotiation, so no serial is involved.
func (w *Window) Move(x, y int) {
	w.SetPosition(x, y)
	if !w.inorganicSizing {
		w.organic.X, w.organic.Y = x, y
	}
}

// RequestPositionAndSize asks for a new decorated frame. The content is
// asked for the matching inner size and the frame is queued until the
// commit for that request (or a later one) arrives.
func (w *Window) RequestPositionAndSize(frame geometry.Rect) {
	w.requestFrame(frame)
}

// RequestMaximized starts or reverts a maximize transition. Requests are
// ignored while fullscreen or shaded, and repeated requests for the
// current state are no-ops.
func (w *Window) RequestMaximized(on bool) {
	if on {
		if w.maximized || w.fullscreen || w.shaded {
			w.log.Debug().Str("app_id", w.appID).Msg("maximize request ignored in current state")
			return
		}
		if w.maximizeExtents == nil {
			w.log.Error().Str("app_id", w.appID).Msg("maximize requested without extents provider")
			return
		}
		w.snapshotOrganic()
		w.inorganicSizing = true
		w.content.RequestMaximized(true)
		w.requestFrame(w.maximizeExtents())
		return
	}
	if !w.maximized || w.fullscreen {
		return
	}
	w.content.RequestMaximized(false)
	w.requestFrame(w.organic)
}

// CommitMaximized records that the content committed the state change.
// Called by the content once the matching buffer is in.
func (w *Window) CommitMaximized(on bool) {
	if w.maximized == on {
		return
	}
	w.maximized = on
	if !on && !w.fullscreen {
		w.inorganicSizing = false
	}
	if w.onMaximized != nil {
		w.onMaximized(on)
	}
}

// RequestFullscreen starts or reverts a fullscreen transition. Entering
// fullscreen first unshades; the content is asked for the full output
// extent since the decorations are shed at commit.
func (w *Window) RequestFullscreen(on bool) {
	if on {
		if w.fullscreen {
			return
		}
		if w.fullscreenExtents == nil {
			w.log.Error().Str("app_id", w.appID).Msg("fullscreen requested without extents provider")
			return
		}
		if w.shaded {
			w.RequestShaded(false)
		}
		w.snapshotOrganic()
		w.inorganicSizing = true
		ext := w.fullscreenExtents()
		w.content.RequestFullscreen(true)
		serial := w.content.RequestSize(ext.Width, ext.Height)
		w.pushPending(serial, ext)
		return
	}
	if !w.fullscreen {
		return
	}
	w.content.RequestFullscreen(false)
	w.requestFrame(w.organic)
}

// CommitFullscreen records that the content committed the state change,
// shedding or restoring the decorations. A committed maximize is dropped
// on entry, so the window returns to organic geometry when fullscreen
// ends.
func (w *Window) CommitFullscreen(on bool) {
	if w.fullscreen == on {
		return
	}
	w.fullscreen = on
	if on {
		// The two states are never held together. Fullscreen takes over
		// and the window falls back to organic geometry when it leaves.
		if w.maximized {
			w.maximized = false
			if w.onMaximized != nil {
				w.onMaximized(false)
			}
		}
		w.destroyDecorations()
		w.SetFramed(false)
	} else {
		if w.serverSideDecorated {
			w.createDecorations()
			w.SetFramed(true)
		}
		if !w.maximized {
			w.inorganicSizing = false
		}
	}
	if w.onFullscreen != nil {
		w.onFullscreen(on)
	}
}

// RequestShaded collapses the window to its titlebar, or expands it back.
// Shading is a purely local rearrangement so it applies synchronously.
// Fullscreen and client-decorated windows cannot shade.
func (w *Window) RequestShaded(on bool) {
	if w.shaded == on {
		return
	}
	if on && (w.fullscreen || !w.serverSideDecorated) {
		w.log.Debug().
			Str("app_id", w.appID).
			Bool("fullscreen", w.fullscreen).
			Bool("decorated", w.serverSideDecorated).
			Msg("shade request rejected")
		return
	}
	w.shaded = on
	w.content.Base().SetVisible(!on)
	if w.resizebar != nil {
		w.resizebar.SetVisible(!on)
	}
	w.relayout()
	if w.onShaded != nil {
		w.onShaded(on)
	}
}

// SetServerSideDecorated switches between server and client decorations.
// A shaded window unshades first since shading needs the titlebar. The
// frame stays put: the content is asked to take up the space the
// decorations vacated, or to give it back.
func (w *Window) SetServerSideDecorated(on bool) {
	if w.serverSideDecorated == on {
		return
	}
	if !on && w.shaded {
		w.RequestShaded(false)
	}
	frame := w.Geometry()
	w.serverSideDecorated = on
	if !w.fullscreen {
		if on {
			w.createDecorations()
			w.SetFramed(true)
		} else {
			w.destroyDecorations()
			w.SetFramed(false)
		}
		if !w.inorganicSizing {
			w.requestFrame(frame)
		}
	}
}

// OnSerial is called by the content when the peer commits a size. Every
// queued frame issued at or before serial is applied in order; the last
// one wins the position. A commit with nothing queued is a client-driven
// resize and, outside transitions, re-derives the organic geometry from
// the committed content size.
func (w *Window) OnSerial(serial uint32) {
	if w.pending.Empty() {
		if !w.inorganicSizing {
			cw, ch := w.content.Size()
			frame := w.frameForContent(cw, ch)
			x, y := w.Position()
			w.organic = geometry.NewRect(x, y, frame.Width, frame.Height)
		}
		w.relayout()
		return
	}

	applied := false
	var last pendingUpdate
	for {
		u, ok := w.pending.PopThrough(serial)
		if !ok {
			break
		}
		w.SetPosition(u.x, u.y)
		last = u
		applied = true
	}
	if applied && !w.inorganicSizing {
		w.organic = geometry.NewRect(last.x, last.y, last.width, last.height)
	}
	w.relayout()
}

// Destroy unwraps the content, which outlives the window, then releases
// the decorations.
func (w *Window) Destroy() {
	if w.content != nil {
		w.box.Remove(w.content)
		w.content = nil
	}
	w.titlebar = nil
	w.resizebar = nil
	w.Bordered.Destroy()
}

func (w *Window) requestFrame(frame geometry.Rect) {
	inner := frame.Inset(w.decorationInsets())
	serial := w.content.RequestSize(inner.Width, inner.Height)
	w.pushPending(serial, frame)
}

func (w *Window) pushPending(serial uint32, frame geometry.Rect) {
	u := pendingUpdate{serial: serial, x: frame.X, y: frame.Y, width: frame.Width, height: frame.Height}
	if evicted, full := w.pending.Push(u); full {
		// Applying the evicted intent's position now keeps motion coherent
		// under pool pressure instead of dropping it on the floor.
		w.log.Warn().
			Str("app_id", w.appID).
			Uint32("serial", evicted.serial).
			Msg("pending geometry pool exhausted, applying oldest entry early")
		w.SetPosition(evicted.x, evicted.y)
	}
}

// decorationInsets returns the frame-to-content insets for the window's
// decoration flags, independent of which decoration widgets currently
// exist. Mid-transition requests target the post-commit state.
func (w *Window) decorationInsets() geometry.Insets {
	if !w.serverSideDecorated {
		return geometry.Insets{}
	}
	in := geometry.Uniform(w.theme.BorderWidth)
	in.Top += w.theme.TitlebarHeight + w.theme.BoxMargin
	in.Bottom += w.theme.ResizebarHeight + w.theme.BoxMargin
	return in
}

func (w *Window) frameForContent(width, height int) geometry.Rect {
	in := w.decorationInsets()
	return geometry.NewRect(0, 0, width+in.Left+in.Right, height+in.Top+in.Bottom)
}

func (w *Window) snapshotOrganic() {
	if w.inorganicSizing {
		return
	}
	w.organic = w.Geometry()
}

func (w *Window) createDecorations() {
	if w.titlebar == nil {
		w.titlebar = newTitlebar(w.theme, w.Close, func() { w.RequestShaded(!w.shaded) })
		w.titlebar.SetTitle(w.title)
		w.titlebar.SetActivated(w.activated)
		w.box.AddFront(w.titlebar)
	}
	if w.resizebar == nil {
		w.resizebar = newResizebar(w.theme)
		w.resizebar.SetOnDragStart(func(x, y int) {
			if w.onResizeStart != nil {
				w.onResizeStart(x, y)
			}
		})
		if w.shaded {
			w.resizebar.SetVisible(false)
		}
		w.box.AddBack(w.resizebar)
	}
	w.relayout()
}

func (w *Window) destroyDecorations() {
	if w.titlebar != nil {
		w.box.Remove(w.titlebar)
		w.titlebar.Destroy()
		w.titlebar = nil
	}
	if w.resizebar != nil {
		w.box.Remove(w.resizebar)
		w.resizebar.Destroy()
		w.resizebar = nil
	}
	w.relayout()
}

// relayout syncs the decoration strips to the content width and reruns
// the box and border layout.
func (w *Window) relayout() {
	if w.content == nil {
		return
	}
	d := w.content.Dimensions()
	if w.titlebar != nil {
		w.titlebar.SetWidth(d.Width)
	}
	if w.resizebar != nil {
		w.resizebar.SetWidth(d.Width)
	}
	w.box.UpdateLayout()
}
