package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatewm/slate/internal/decor"
	"github.com/slatewm/slate/internal/geometry"
	"github.com/slatewm/slate/internal/input"
	"github.com/slatewm/slate/internal/input/inputtest"
	"github.com/slatewm/slate/internal/render/rendertest"
	"github.com/slatewm/slate/internal/scene"
	"github.com/slatewm/slate/internal/shell"
	"github.com/slatewm/slate/internal/wm"
	"github.com/slatewm/slate/internal/wm/wmtest"
)

func TestWorkspace_UsableShrinksWithPanels(t *testing.T) {
	w := shell.NewWorkspace(output())

	bar := shell.NewPanel(shell.AnchorTop|shell.AnchorLeft|shell.AnchorRight, 0, 32)
	bar.SetExclusiveZone(32)
	w.AddPanel(bar)

	dock := shell.NewPanel(shell.AnchorLeft|shell.AnchorTop|shell.AnchorBottom, 48, 0)
	dock.SetExclusiveZone(48)
	w.AddPanel(dock)

	assert.Equal(t, geometry.NewRect(48, 32, 1872, 1048), w.Usable())
}

func TestWorkspace_RemovePanelRestoresUsable(t *testing.T) {
	w := shell.NewWorkspace(output())
	bar := shell.NewPanel(shell.AnchorTop|shell.AnchorLeft|shell.AnchorRight, 0, 32)
	bar.SetExclusiveZone(32)
	w.AddPanel(bar)
	require.NotEqual(t, output(), w.Usable())

	w.RemovePanel(bar)

	assert.Equal(t, output(), w.Usable())
}

func TestWorkspace_HiddenPanelReleasesZone(t *testing.T) {
	w := shell.NewWorkspace(output())
	bar := shell.NewPanel(shell.AnchorTop|shell.AnchorLeft|shell.AnchorRight, 0, 32)
	bar.SetExclusiveZone(32)
	w.AddPanel(bar)

	bar.SetVisible(false)
	w.Arrange()

	assert.Equal(t, output(), w.Usable())
}

func TestWorkspace_WindowsStackBelowPanels(t *testing.T) {
	g := rendertest.New()
	w := shell.NewWorkspace(output())
	bar := shell.NewPanel(shell.AnchorTop|shell.AnchorLeft|shell.AnchorRight, 0, 32)
	w.AddPanel(bar)

	win1 := scene.NewContainer()
	win2 := scene.NewContainer()
	w.AddWindow(win1)
	w.AddWindow(win2)

	// Panel at the very front, newest window next.
	assert.Equal(t, 0, w.Index(bar))
	assert.Equal(t, 1, w.Index(win2))
	assert.Equal(t, 2, w.Index(win1))

	w.CreateSceneNode(g, nil)
	w.RaiseWindow(win1)

	assert.Equal(t, 0, w.Index(bar))
	assert.Equal(t, 1, w.Index(win1))
	// Restacking must not destroy render nodes.
	assert.True(t, win1.Attached())
	assert.Equal(t, 0, g.DestroyedCount())
}

func TestWorkspace_BindInputRoutesEvents(t *testing.T) {
	w := shell.NewWorkspace(output())

	clicked := 0
	btn := decor.NewButton("launch", func() { clicked++ })
	btn.SetSize(40, 40)
	win := scene.NewContainer()
	win.AddBack(btn)
	w.AddWindow(win)
	win.Base().SetPosition(100, 100)

	b := inputtest.New()
	w.BindInput(b)

	assert.True(t, b.Click(input.ButtonLeft, 120, 120))
	assert.Equal(t, 1, clicked)

	assert.False(t, b.Motion(1900, 1000), "missing everything consumes nothing")
}

func TestWorkspace_PointerActivatesWindowUnderCursor(t *testing.T) {
	w := shell.NewWorkspace(output())

	contentA := wmtest.NewContent(196, 66)
	winA := wm.NewWindow(contentA, wm.Options{AppID: "org.example.a"})
	contentA.SetOnSerial(winA.OnSerial)
	w.AddWindow(winA)
	winA.Move(100, 100)

	contentB := wmtest.NewContent(196, 66)
	winB := wm.NewWindow(contentB, wm.Options{AppID: "org.example.b"})
	contentB.SetOnSerial(winB.OnSerial)
	w.AddWindow(winB)
	winB.Move(400, 100)

	b := inputtest.New()
	w.BindInput(b)

	b.Motion(150, 150)
	assert.True(t, winA.Activated())
	assert.True(t, contentA.Activated, "client notified of enter")

	b.Motion(450, 150)
	assert.False(t, winA.Activated(), "previous window notified of leave")
	assert.True(t, winB.Activated())

	b.Motion(1900, 1000)
	assert.False(t, winB.Activated(), "pointer off every window")
}

func TestWorkspace_RemoteFocusHolderSkipsEnterNotification(t *testing.T) {
	w := shell.NewWorkspace(output())

	content := wmtest.NewContent(196, 66)
	win := wm.NewWindow(content, wm.Options{AppID: "org.example.term"})
	content.SetOnSerial(win.OnSerial)
	w.AddWindow(win)
	win.Move(100, 100)

	b := inputtest.New()
	w.BindInput(b)

	// The back-end says this client already holds remote input focus, so
	// the pointer entering it must not re-notify the peer.
	b.SetRemoteInputFocus(win.RemoteFocus())
	b.Motion(150, 150)
	assert.False(t, content.Activated)
	assert.False(t, win.Activated())
}

func TestWorkspace_SetOutputRearranges(t *testing.T) {
	w := shell.NewWorkspace(output())
	bar := shell.NewPanel(shell.AnchorTop|shell.AnchorLeft|shell.AnchorRight, 0, 32)
	bar.SetExclusiveZone(32)
	w.AddPanel(bar)

	w.SetOutput(geometry.NewRect(0, 0, 1280, 720))

	assert.Equal(t, geometry.NewRect(0, 32, 1280, 688), w.Usable())
	assert.Equal(t, geometry.NewRect(0, 0, 1280, 688+32), w.Bounds())
}
