// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roomwatch",
	Short: "roomwatch is the authorization and channel backbone of a multi-room chat platform",
	Long: `roomwatch resolves per-room permissions from positioned roles,
stores rooms, channels and messages, and exposes a REST API guarded by
the resolved permission flags.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
