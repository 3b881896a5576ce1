package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/codeclean/config"
)

func newConfigCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long:  "Print the configuration after layering defaults, the grove.yml 'codeclean' extension, --config-file and CODECLEAN_* environment variables.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&configFile, "config-file", "", "YAML file with codeclean settings (layered over grove.yml)")
	return cmd
}
