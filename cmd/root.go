package cmd

import (
	"github.com/grovetools/core/cli"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for codeclean.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		"codeclean",
		"Line-by-line cleanup of machine code listings and other text files",
	)
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newSqueezeCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
