package cmd

import (
	"github.com/spf13/cobra"
)

func newSqueezeCmd() *cobra.Command {
	var flags transformFlags

	cmd := &cobra.Command{
		Use:     "squeeze [input] [output]",
		Aliases: []string{"remove-spaces"},
		Short:   "Collapse runs of whitespace in each line into a single space",
		Long: `Rewrites every input line with leading and trailing whitespace removed and
each run of blanks between words replaced by one space. Every input line
produces exactly one output line; an all-blank line becomes an empty line.
A byte order mark at the start of the input is dropped, not copied.

Paths default to codes.txt and output.txt; "-" means stdin or stdout.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, "squeeze", args, &flags)
		},
	}

	flags.bind(cmd)
	return cmd
}
