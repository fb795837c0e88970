package wm

import "github.com/slatewm/slate/internal/render"

// Theme bundles the metrics and colors windows are decorated with.
type Theme struct {
	BorderWidth     int
	TitlebarHeight  int
	ResizebarHeight int
	BoxMargin       int

	ActiveBorder     render.Color
	InactiveBorder   render.Color
	ActiveTitlebar   render.Color
	InactiveTitlebar render.Color
	TitlebarText     render.Color
	Resizebar        render.Color
}

// DefaultTheme returns the stock dark theme.
func DefaultTheme() Theme {
	return Theme{
		BorderWidth:      2,
		TitlebarHeight:   24,
		ResizebarHeight:  6,
		BoxMargin:        0,
		ActiveBorder:     render.RGB(0x3a, 0x7b, 0xd5),
		InactiveBorder:   render.RGB(0x3c, 0x3c, 0x46),
		ActiveTitlebar:   render.RGB(0x2b, 0x2b, 0x33),
		InactiveTitlebar: render.RGB(0x1e, 0x1e, 0x24),
		TitlebarText:     render.RGB(0xe6, 0xe6, 0xe6),
		Resizebar:        render.RGB(0x2b, 0x2b, 0x33),
	}
}
