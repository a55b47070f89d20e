package main

import (
	"github.com/spf13/cobra"

	"ytbackup/internal/notifications"
)

func newRootCommand() *cobra.Command {
	return newRootCommandWithCapability(notifications.DefaultCapability())
}

func newRootCommandWithCapability(capability notifications.Capability) *cobra.Command {
	var configFlag string
	var logLevelFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag, capability)

	rootCmd := &cobra.Command{
		Use:           "ytbackup",
		Short:         "YouTube channel backup notifications",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path (.toml, .yaml, or .json)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override the configured log level")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newNotifyCommand(ctx))

	return rootCmd
}
