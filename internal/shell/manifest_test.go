package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatewm/slate/internal/geometry"
	"github.com/slatewm/slate/internal/shell"
)

const sampleManifest = `
output:
  width: 1920
  height: 1080
panels:
  - name: bar
    anchors: [top, left, right]
    height: 30
    exclusive_zone: 30
windows:
  - app_id: org.example.term
    title: term
    x: 100
    y: 80
    width: 640
    height: 480
`

func TestParseManifest(t *testing.T) {
	m, err := shell.ParseManifest([]byte(sampleManifest))
	require.NoError(t, err)

	assert.Equal(t, geometry.NewRect(0, 0, 1920, 1080), m.Output.Rect())

	require.Len(t, m.Panels, 1)
	p, err := m.Panels[0].Panel()
	require.NoError(t, err)
	assert.Equal(t, shell.AnchorTop|shell.AnchorLeft|shell.AnchorRight, p.Anchors())
	assert.Equal(t, 30, p.ExclusiveZone())

	require.Len(t, m.Windows, 1)
	assert.Equal(t, "org.example.term", m.Windows[0].AppID)
	assert.Equal(t, 640, m.Windows[0].Width)
}

func TestParseManifestRejectsUnknownAnchor(t *testing.T) {
	_, err := shell.ParseManifest([]byte(`
output: {width: 100, height: 100}
panels:
  - name: bad
    anchors: [center]
`))
	assert.Error(t, err)
}

func TestParseManifestRejectsEmptyOutput(t *testing.T) {
	_, err := shell.ParseManifest([]byte(`panels: []`))
	assert.Error(t, err)
}

func TestParseAnchors(t *testing.T) {
	a, err := shell.ParseAnchors([]string{"bottom", "right"})
	require.NoError(t, err)
	assert.Equal(t, shell.AnchorBottom|shell.AnchorRight, a)

	a, err = shell.ParseAnchors(nil)
	require.NoError(t, err)
	assert.Equal(t, shell.Anchor(0), a)
}
