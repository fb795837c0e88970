package shell

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/slatewm/slate/internal/geometry"
)

// Manifest is a declarative scene description: an output, the panels
// docked to it and the windows opened on it. The run command uses it to
// build a demo scene; tests use it for fixtures.
type Manifest struct {
	Output  RectSpec     `yaml:"output"`
	Panels  []PanelSpec  `yaml:"panels"`
	Windows []WindowSpec `yaml:"windows"`
}

// RectSpec is a rectangle in manifest form.
type RectSpec struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Rect converts the spec to a geometry rect.
func (r RectSpec) Rect() geometry.Rect {
	return geometry.NewRect(r.X, r.Y, r.Width, r.Height)
}

// PanelSpec describes one docked panel.
type PanelSpec struct {
	Name          string   `yaml:"name"`
	Anchors       []string `yaml:"anchors"`
	Width         int      `yaml:"width"`
	Height        int      `yaml:"height"`
	ExclusiveZone int      `yaml:"exclusive_zone"`
}

// WindowSpec describes one window. Width and height are the content
// extent; the decorations are added on top.
type WindowSpec struct {
	AppID     string `yaml:"app_id"`
	Title     string `yaml:"title"`
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Maximized bool   `yaml:"maximized"`
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("shell: failed to read manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest parses manifest YAML.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("shell: failed to parse manifest: %w", err)
	}
	if m.Output.Width <= 0 || m.Output.Height <= 0 {
		return nil, fmt.Errorf("shell: manifest output must have a positive extent")
	}
	for i, p := range m.Panels {
		if _, err := ParseAnchors(p.Anchors); err != nil {
			return nil, fmt.Errorf("shell: panel %d (%s): %w", i, p.Name, err)
		}
	}
	return &m, nil
}

// ParseAnchors converts manifest anchor names into an anchor mask.
func ParseAnchors(names []string) (Anchor, error) {
	var a Anchor
	for _, name := range names {
		switch name {
		case "top":
			a |= AnchorTop
		case "bottom":
			a |= AnchorBottom
		case "left":
			a |= AnchorLeft
		case "right":
			a |= AnchorRight
		default:
			return 0, fmt.Errorf("unknown anchor %q", name)
		}
	}
	return a, nil
}

// Panel builds the panel for a spec. The anchor names must already have
// been validated by ParseManifest.
func (p PanelSpec) Panel() (*Panel, error) {
	anchors, err := ParseAnchors(p.Anchors)
	if err != nil {
		return nil, err
	}
	panel := NewPanel(anchors, p.Width, p.Height)
	panel.SetExclusiveZone(p.ExclusiveZone)
	return panel, nil
}
