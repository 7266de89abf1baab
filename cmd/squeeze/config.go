package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmcdole/squeeze/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to the default config file",
	Long: `Write the configuration currently in effect (defaults, config file,
environment and flags merged) to ~/.config/squeeze/config.yaml.

Examples:
  squeeze config init                        # Start from the built-in defaults
  squeeze config init --quality 0.6 --format webp`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SaveConfig(cfg); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Configuration written")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}
