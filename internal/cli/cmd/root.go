// Package cmd provides the Cobra CLI commands for slate.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slatewm/slate/internal/config"
)

// BuildInfo carries the build-time version metadata set via ldflags.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

var (
	cfgManager *config.Manager
	buildInfo  BuildInfo

	rootCmd = &cobra.Command{
		Use:   "slate",
		Short: "A retained-mode scene composition layer for desktop shells",
		Long: `Slate composes desktop shells out of a tree of positioned elements:
panels docked to output edges, decorated windows wrapping client
surfaces, and the input routing and asynchronous geometry negotiation
between them.

Use 'slate run' to bring up a scene from a manifest on the headless
back-end, or explore the subcommands for configuration inspection.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need config
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			cfgManager, err = config.NewManager()
			if err != nil {
				return fmt.Errorf("initialize config: %w", err)
			}
			if err := cfgManager.Load(); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return nil
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetBuildInfo sets the build information (called from main before
// Execute).
func SetBuildInfo(info BuildInfo) {
	buildInfo = info
}
