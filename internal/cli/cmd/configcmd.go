package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Print the effective configuration after merging the config file,
environment variables and defaults.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg := cfgManager.Get()
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		if file := cfgManager.ConfigFileUsed(); file != "" {
			fmt.Printf("# %s\n", file)
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
