package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/slatewm/slate/internal/render"
	"github.com/slatewm/slate/internal/wm"
)

// Config represents the complete configuration for slate.
type Config struct {
	Theme   ThemeConfig   `mapstructure:"theme" yaml:"theme"`
	Window  WindowConfig  `mapstructure:"window" yaml:"window"`
	Session SessionConfig `mapstructure:"session" yaml:"session"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ThemeConfig holds decoration metrics and colors. Colors are "#RRGGBB"
// strings; unparseable values fall back to the stock theme.
type ThemeConfig struct {
	BorderWidth     int `mapstructure:"border_width" yaml:"border_width"`
	TitlebarHeight  int `mapstructure:"titlebar_height" yaml:"titlebar_height"`
	ResizebarHeight int `mapstructure:"resizebar_height" yaml:"resizebar_height"`
	BoxMargin       int `mapstructure:"box_margin" yaml:"box_margin"`

	ActiveBorder     string `mapstructure:"active_border" yaml:"active_border"`
	InactiveBorder   string `mapstructure:"inactive_border" yaml:"inactive_border"`
	ActiveTitlebar   string `mapstructure:"active_titlebar" yaml:"active_titlebar"`
	InactiveTitlebar string `mapstructure:"inactive_titlebar" yaml:"inactive_titlebar"`
	TitlebarText     string `mapstructure:"titlebar_text" yaml:"titlebar_text"`
	Resizebar        string `mapstructure:"resizebar" yaml:"resizebar"`
}

// WindowConfig holds per-window behavior settings.
type WindowConfig struct {
	// PendingUpdatePool caps the number of in-flight geometry intents per
	// window before the oldest is applied early.
	PendingUpdatePool int `mapstructure:"pending_update_pool" yaml:"pending_update_pool"`
}

// SessionConfig holds geometry persistence settings.
type SessionConfig struct {
	// Path of the sqlite database; empty selects the XDG data directory.
	Path            string `mapstructure:"path" yaml:"path"`
	PersistGeometry bool   `mapstructure:"persist_geometry" yaml:"persist_geometry"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// WMTheme converts the configured theme into decoration metrics, falling
// back to the stock theme for missing or malformed values.
func (t ThemeConfig) WMTheme() wm.Theme {
	def := wm.DefaultTheme()
	out := def
	if t.BorderWidth > 0 {
		out.BorderWidth = t.BorderWidth
	}
	if t.TitlebarHeight > 0 {
		out.TitlebarHeight = t.TitlebarHeight
	}
	if t.ResizebarHeight > 0 {
		out.ResizebarHeight = t.ResizebarHeight
	}
	if t.BoxMargin >= 0 {
		out.BoxMargin = t.BoxMargin
	}
	out.ActiveBorder = parseColor(t.ActiveBorder, def.ActiveBorder)
	out.InactiveBorder = parseColor(t.InactiveBorder, def.InactiveBorder)
	out.ActiveTitlebar = parseColor(t.ActiveTitlebar, def.ActiveTitlebar)
	out.InactiveTitlebar = parseColor(t.InactiveTitlebar, def.InactiveTitlebar)
	out.TitlebarText = parseColor(t.TitlebarText, def.TitlebarText)
	out.Resizebar = parseColor(t.Resizebar, def.Resizebar)
	return out
}

// parseColor parses a "#RRGGBB" string, returning fallback on failure.
func parseColor(s string, fallback render.Color) render.Color {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[0] != '#' {
		return fallback
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return fallback
	}
	return render.RGB(r, g, b)
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	// Supports yaml, json, toml automatically.
	v.SetConfigName("config")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	v.SetEnvPrefix("SLATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"theme.border_width":         "THEME_BORDER_WIDTH",
		"theme.titlebar_height":      "THEME_TITLEBAR_HEIGHT",
		"theme.resizebar_height":     "THEME_RESIZEBAR_HEIGHT",
		"theme.box_margin":           "THEME_BOX_MARGIN",
		"window.pending_update_pool": "WINDOW_PENDING_UPDATE_POOL",
		"session.path":               "SESSION_PATH",
		"session.persist_geometry":   "SESSION_PERSIST_GEOMETRY",
		"logging.level":              "LOG_LEVEL",
		"logging.format":             "LOG_FORMAT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, "SLATE_"+env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if err := m.createDefaultConfig(); err != nil {
				return fmt.Errorf("failed to create default config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return m.unmarshalLocked()
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification.
	configCopy := *m.config
	return &configCopy
}

// Watch starts watching the config file for changes and reloads
// automatically, notifying registered callbacks.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(_ fsnotify.Event) {
		m.mu.Lock()
		err := m.unmarshalLocked()
		config := m.config
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.Unlock()

		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to reload config: %v\n", err)
			return
		}
		for _, callback := range callbacks {
			callback(config)
		}
	})

	m.watching = true
	return nil
}

// OnConfigChange registers a callback invoked after each successful reload.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// unmarshalLocked re-reads the viper state into the config struct. Must be
// called with the lock held.
func (m *Manager) unmarshalLocked() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Session.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Session.Path = dbPath
	}
	if config.Window.PendingUpdatePool <= 0 {
		config.Window.PendingUpdatePool = wm.DefaultPendingPool
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("theme.border_width", defaults.Theme.BorderWidth)
	m.viper.SetDefault("theme.titlebar_height", defaults.Theme.TitlebarHeight)
	m.viper.SetDefault("theme.resizebar_height", defaults.Theme.ResizebarHeight)
	m.viper.SetDefault("theme.box_margin", defaults.Theme.BoxMargin)
	m.viper.SetDefault("theme.active_border", defaults.Theme.ActiveBorder)
	m.viper.SetDefault("theme.inactive_border", defaults.Theme.InactiveBorder)
	m.viper.SetDefault("theme.active_titlebar", defaults.Theme.ActiveTitlebar)
	m.viper.SetDefault("theme.inactive_titlebar", defaults.Theme.InactiveTitlebar)
	m.viper.SetDefault("theme.titlebar_text", defaults.Theme.TitlebarText)
	m.viper.SetDefault("theme.resizebar", defaults.Theme.Resizebar)

	m.viper.SetDefault("window.pending_update_pool", defaults.Window.PendingUpdatePool)

	m.viper.SetDefault("session.path", defaults.Session.Path)
	m.viper.SetDefault("session.persist_geometry", defaults.Session.PersistGeometry)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

// createDefaultConfig writes the default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	configData, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.WriteFile(configFile, configData, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ConfigFileUsed returns the path to the configuration file being used.
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}
