// Package geometry provides the integer point/rect value types shared by the
// scene tree, the shell layout code and the window manager.
package geometry

// Point is a position in whatever coordinate space the caller is working in.
type Point struct {
	X int
	Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle. Width and Height are extents, not
// far-edge coordinates; an empty rect has zero (or negative) extent.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect builds a rect from origin and extents.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point (x, y) falls inside the rect.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Translate returns the rect moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Union returns the smallest rect covering both r and s. An empty rect is
// the identity so bounding boxes can be folded starting from Rect{}.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	x0 := min(r.X, s.X)
	y0 := min(r.Y, s.Y)
	x1 := max(r.X+r.Width, s.X+s.Width)
	y1 := max(r.Y+r.Height, s.Y+s.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Inset returns the rect shrunk by the given insets. Extents are clamped at
// zero so an oversized inset yields an empty rect, never a negative one.
func (r Rect) Inset(in Insets) Rect {
	r.X += in.Left
	r.Y += in.Top
	r.Width = max(0, r.Width-in.Left-in.Right)
	r.Height = max(0, r.Height-in.Top-in.Bottom)
	return r
}

// Insets is a per-edge shrink amount, used for exclusive zones and border
// margins.
type Insets struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Uniform returns insets with the same width on all four edges.
func Uniform(width int) Insets {
	return Insets{Top: width, Bottom: width, Left: width, Right: width}
}
