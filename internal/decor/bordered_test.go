package decor_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatewm/slate/internal/decor"
	"github.com/slatewm/slate/internal/geometry"
	"github.com/slatewm/slate/internal/render"
	"github.com/slatewm/slate/internal/render/rendertest"
	"github.com/slatewm/slate/internal/scene"
)

type sizedLeaf struct {
	scene.Core
}

func newSizedLeaf(w, h int) *sizedLeaf {
	l := &sizedLeaf{}
	l.Init(l)
	l.SetBounds(geometry.NewRect(0, 0, w, h))
	return l
}

// frameRects collects the four border rects in outer coordinates.
func frameRects(b *decor.Bordered) []geometry.Rect {
	var out []geometry.Rect
	for _, ch := range b.Children() {
		f, ok := ch.(*decor.Fill)
		if !ok {
			continue
		}
		w, h := f.Size()
		x, y := f.Position()
		out = append(out, geometry.NewRect(x, y, w, h))
	}
	return out
}

func assertTightFrame(t *testing.T, b *decor.Bordered, innerW, innerH, margin int) {
	t.Helper()

	rects := frameRects(b)
	require.Len(t, rects, 4)

	outerW := innerW + 2*margin
	outerH := innerH + 2*margin

	// The four rectangles plus the inner area must tile the outer rect
	// exactly: total area matches and no two rects overlap.
	area := 0
	for _, r := range rects {
		area += r.Width * r.Height
	}
	assert.Equal(t, outerW*outerH-innerW*innerH, area, "frame area must equal outer minus inner")

	for i, r := range rects {
		for j, s := range rects {
			if i >= j {
				continue
			}
			overlapW := min(r.X+r.Width, s.X+s.Width) - max(r.X, s.X)
			overlapH := min(r.Y+r.Height, s.Y+s.Height) - max(r.Y, s.Y)
			assert.False(t, overlapW > 0 && overlapH > 0, fmt.Sprintf("rects %v and %v overlap", r, s))
		}
		// Every border rect stays inside the outer box and outside the
		// inner box.
		assert.GreaterOrEqual(t, r.X, 0)
		assert.GreaterOrEqual(t, r.Y, 0)
		assert.LessOrEqual(t, r.X+r.Width, outerW)
		assert.LessOrEqual(t, r.Y+r.Height, outerH)
	}
}

func TestBordered_FramesWrappedElement(t *testing.T) {
	inner := newSizedLeaf(100, 20)
	b := decor.NewBordered(inner, 2, render.RGB(0x30, 0x30, 0x30))

	x, y := inner.Position()
	assert.Equal(t, 2, x)
	assert.Equal(t, 2, y)
	assert.Equal(t, geometry.NewRect(0, 0, 104, 24), b.Bounds())
	assertTightFrame(t, b, 100, 20, 2)
}

func TestBordered_FrameForSecondSize(t *testing.T) {
	// Regression against off-by-one margin arithmetic: verify a second,
	// odd-sized element too.
	inner := newSizedLeaf(37, 113)
	b := decor.NewBordered(inner, 5, render.RGB(0, 0, 0))

	assert.Equal(t, geometry.NewRect(0, 0, 47, 123), b.Bounds())
	assertTightFrame(t, b, 37, 113, 5)
}

func TestBordered_TracksWrappedResize(t *testing.T) {
	inner := newSizedLeaf(50, 50)
	b := decor.NewBordered(inner, 3, render.RGB(0, 0, 0))

	inner.SetBounds(geometry.NewRect(0, 0, 80, 40))
	b.UpdateLayout()

	assert.Equal(t, geometry.NewRect(0, 0, 86, 46), b.Bounds())
	assertTightFrame(t, b, 80, 40, 3)
}

func TestBordered_SetMarginReissuesAllFour(t *testing.T) {
	g := rendertest.New()
	inner := newSizedLeaf(10, 10)
	b := decor.NewBordered(inner, 1, render.RGB(0, 0, 0))
	b.CreateSceneNode(g, nil)

	b.SetMargin(4)

	assertTightFrame(t, b, 10, 10, 4)
	assert.Equal(t, geometry.NewRect(0, 0, 18, 18), b.Bounds())
	// Sizes are pushed to the render nodes too.
	for _, ch := range b.Children() {
		if f, ok := ch.(*decor.Fill); ok {
			w, h := f.Size()
			st := g.State(f.Node())
			require.NotNil(t, st)
			assert.Equal(t, w, st.Width)
			assert.Equal(t, h, st.Height)
		}
	}
}

func TestBordered_UnframedCollapsesMargin(t *testing.T) {
	inner := newSizedLeaf(60, 60)
	b := decor.NewBordered(inner, 4, render.RGB(0, 0, 0))

	b.SetFramed(false)

	x, y := inner.Position()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
	assert.Equal(t, geometry.NewRect(0, 0, 60, 60), b.Bounds())

	b.SetFramed(true)
	assert.Equal(t, geometry.NewRect(0, 0, 68, 68), b.Bounds())
}

func TestBordered_OffsetBoundingBoxLandsAtMargin(t *testing.T) {
	// An element whose bounding box does not start at its own origin must
	// still end up with the box's top-left at (margin, margin).
	inner := newSizedLeaf(30, 30)
	inner.SetBounds(geometry.NewRect(4, 6, 30, 30))
	b := decor.NewBordered(inner, 2, render.RGB(0, 0, 0))

	x, y := inner.Position()
	assert.Equal(t, -2, x)
	assert.Equal(t, -4, y)
	assertTightFrame(t, b, 30, 30, 2)
}
