package cmd

import (
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	var flags transformFlags

	cmd := &cobra.Command{
		Use:   "decode [input] [output]",
		Short: "Decode the binary digits of each line into a decimal number",
		Long: `Keeps only the 0 and 1 characters of every input line, reads them as an
unsigned binary number (most significant bit first, no size limit) and writes
its decimal value as one output line.

A line without any binary digit stops the run unless --on-empty is skip or zero.
Paths default to codes.txt and output.txt; "-" means stdin or stdout.`,
		Example: `  codeclean decode
  codeclean decode machine_codes.txt values.txt
  assembler | codeclean decode --on-empty=skip - -`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, "binary", args, &flags)
		},
	}

	flags.bind(cmd)
	return cmd
}
