package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/slatewm/slate/internal/config"
	"github.com/slatewm/slate/internal/geometry"
	"github.com/slatewm/slate/internal/input/inputtest"
	"github.com/slatewm/slate/internal/logging"
	"github.com/slatewm/slate/internal/render/rendertest"
	"github.com/slatewm/slate/internal/scene"
	"github.com/slatewm/slate/internal/session"
	"github.com/slatewm/slate/internal/shell"
	"github.com/slatewm/slate/internal/wm"
)

var (
	runManifest  string
	runWatch     bool
	runEphemeral bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Bring up a scene from a manifest on the headless back-end",
	Long: `Compose the scene described by a manifest: dock its panels, open its
windows with stored geometry where available, and print the resulting
layout. Runs against the recording back-end, so no display is needed.`,
	RunE: runScene,
}

func init() {
	runCmd.Flags().StringVarP(&runManifest, "manifest", "m", "scene.yaml", "scene manifest file")
	runCmd.Flags().BoolVar(&runWatch, "watch", false, "keep running and reload the config on change")
	runCmd.Flags().BoolVar(&runEphemeral, "ephemeral", false, "use an in-memory session store")
	rootCmd.AddCommand(runCmd)
}

func runScene(_ *cobra.Command, _ []string) error {
	cfg := cfgManager.Get()
	log := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), log)

	manifest, err := shell.LoadManifest(runManifest)
	if err != nil {
		return err
	}

	var store *session.Store
	if cfg.Session.PersistGeometry {
		if runEphemeral {
			store, err = session.OpenInMemory(log)
		} else {
			store, err = session.Open(cfg.Session.Path, log)
		}
		if err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close session store")
			}
		}()
	}

	g := rendertest.New()
	ws := shell.NewWorkspace(manifest.Output.Rect())
	ws.SetWorkspaceLogger(log)
	ws.CreateSceneNode(g, nil)

	for _, ps := range manifest.Panels {
		p, err := ps.Panel()
		if err != nil {
			return err
		}
		p.SetPanelLogger(log)
		ws.AddPanel(p)
		log.Info().
			Str("panel", ps.Name).
			Str("anchors", p.Anchors().String()).
			Int("exclusive_zone", p.ExclusiveZone()).
			Msg("panel docked")
	}

	theme := cfg.Theme.WMTheme()
	windows := make([]*wm.Window, 0, len(manifest.Windows))
	for _, spec := range manifest.Windows {
		content := newDemoContent(spec.Width, spec.Height)
		win := wm.NewWindow(content, wm.Options{
			AppID:             spec.AppID,
			Title:             spec.Title,
			Theme:             theme,
			PendingPool:       cfg.Window.PendingUpdatePool,
			Logger:            log,
			MaximizeExtents:   ws.Usable,
			FullscreenExtents: ws.Output,
		})
		content.ack = win.OnSerial
		ws.AddWindow(win)
		win.Move(spec.X, spec.Y)

		maximized := spec.Maximized
		if store != nil {
			saved, err := store.Load(ctx, spec.AppID)
			switch {
			case err == nil:
				win.RequestPositionAndSize(saved.Frame)
				maximized = maximized || saved.Maximized
			case !errors.Is(err, session.ErrNotFound):
				log.Warn().Err(err).Str("app_id", spec.AppID).Msg("failed to load stored geometry")
			}
		}
		content.flush()

		if maximized {
			win.RequestMaximized(true)
			content.flush()
			win.CommitMaximized(true)
		}
		windows = append(windows, win)
	}

	backend := inputtest.New()
	ws.BindInput(backend)

	if len(windows) > 0 {
		// Seed pointer focus on the front window; the workspace activates
		// the window under the pointer.
		front := windows[len(windows)-1]
		frame := front.Geometry()
		backend.Motion(frame.X+frame.Width/2, frame.Y+frame.Height/2)
	}

	for _, win := range windows {
		frame := win.Geometry()
		log.Info().
			Str("app_id", win.AppID()).
			Int("x", frame.X).Int("y", frame.Y).
			Int("width", frame.Width).Int("height", frame.Height).
			Bool("maximized", win.Maximized()).
			Msg("window opened")
	}
	usable := ws.Usable()
	log.Info().
		Int("nodes", g.NodeCount()).
		Int("usable_width", usable.Width).
		Int("usable_height", usable.Height).
		Msg("scene composed")

	if runWatch {
		cfgManager.OnConfigChange(func(*config.Config) {
			log.Info().Str("file", cfgManager.ConfigFileUsed()).Msg("configuration reloaded")
		})
		if err := cfgManager.Watch(); err != nil {
			return err
		}
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
	}

	if store != nil {
		for _, win := range windows {
			saved := session.Geometry{Frame: win.OrganicGeometry(), Maximized: win.Maximized()}
			if err := store.Save(ctx, win.AppID(), saved); err != nil {
				log.Warn().Err(err).Str("app_id", win.AppID()).Msg("failed to save geometry")
			}
		}
	}
	return nil
}

// demoContent is the run command's stand-in for a remote client surface.
// Size requests accumulate until flush, which commits the latest one and
// acknowledges its serial, like a well-behaved client would.
type demoContent struct {
	scene.Core

	width      int
	height     int
	pendingW   int
	pendingH   int
	lastSerial uint32
	nextSerial uint32
	dirty      bool

	ack func(uint32)
}

var _ wm.Content = (*demoContent)(nil)

func newDemoContent(width, height int) *demoContent {
	c := &demoContent{width: width, height: height, nextSerial: 1}
	c.Init(c)
	c.SetBounds(geometry.NewRect(0, 0, width, height))
	return c
}

func (c *demoContent) issue() uint32 {
	s := c.nextSerial
	c.nextSerial++
	return s
}

func (c *demoContent) RequestSize(width, height int) uint32 {
	c.pendingW, c.pendingH = width, height
	c.dirty = true
	c.lastSerial = c.issue()
	return c.lastSerial
}

func (c *demoContent) RequestClose() {}

func (c *demoContent) RequestMaximized(bool) uint32 { return c.issue() }

func (c *demoContent) RequestFullscreen(bool) uint32 { return c.issue() }

func (c *demoContent) SetActivated(bool) {}

func (c *demoContent) Size() (width, height int) { return c.width, c.height }

func (c *demoContent) flush() {
	if !c.dirty {
		return
	}
	c.dirty = false
	c.width, c.height = c.pendingW, c.pendingH
	c.SetBounds(geometry.NewRect(0, 0, c.width, c.height))
	if c.Attached() {
		c.Graph().SetNodeSize(c.Node(), c.width, c.height)
	}
	if c.ack != nil {
		c.ack(c.lastSerial)
	}
}
