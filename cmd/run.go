package cmd

import (
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var flags transformFlags
	var transformName string

	cmd := &cobra.Command{
		Use:   "run [input] [output]",
		Short: "Run a transformation chosen by flag or config",
		Long:  "Runs the transformation named by --transform, or transform.default from the config when the flag is not given.",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, transformName, args, &flags)
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVarP(&transformName, "transform", "t", "", "Transformation to run (see 'codeclean list'). Overrides config.")
	return cmd
}
