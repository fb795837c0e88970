package config

import "github.com/slatewm/slate/internal/wm"

// DefaultConfig returns the stock configuration. Color strings mirror
// wm.DefaultTheme so the generated config file documents the defaults.
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{
			BorderWidth:      2,
			TitlebarHeight:   24,
			ResizebarHeight:  6,
			BoxMargin:        0,
			ActiveBorder:     "#3a7bd5",
			InactiveBorder:   "#3c3c46",
			ActiveTitlebar:   "#2b2b33",
			InactiveTitlebar: "#1e1e24",
			TitlebarText:     "#e6e6e6",
			Resizebar:        "#2b2b33",
		},
		Window: WindowConfig{
			PendingUpdatePool: wm.DefaultPendingPool,
		},
		Session: SessionConfig{
			PersistGeometry: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
