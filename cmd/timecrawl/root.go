package main

import (
	"github.com/spf13/cobra"

	"github.com/handiism/timecrawl/internal/config"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "timecrawl",
		Short:         "Find tracks released around a given year, starting from one artist",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Settings file path (default "+config.DefaultPath()+")")

	rootCmd.AddCommand(newDiscoverCommand(&configFlag))
	rootCmd.AddCommand(newConfigCommand(&configFlag))

	return rootCmd
}

// settingsPath returns the --config value or the default location.
func settingsPath(flag string) string {
	if flag != "" {
		return flag
	}
	return config.DefaultPath()
}
