package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/codeclean/config"
	"github.com/grovetools/codeclean/internal/display"
	"github.com/grovetools/codeclean/internal/transform"
)

func newListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list [flags]",
		Short: "List available transformations",
		Long:  "List the line transformations codeclean can run. The configured default is marked with '*'.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := transform.List()

			if jsonOutput {
				data, err := json.MarshalIndent(infos, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal transformations to JSON: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			defaultName := config.Default().Transform.Default
			if cfg, err := config.Load(""); err == nil {
				defaultName = cfg.Transform.Default
			}
			display.PrintTransformsTable(infos, defaultName, cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
