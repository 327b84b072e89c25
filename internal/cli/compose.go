package cli

import (
	"encoding/json"
	"fmt"

	"github.com/0xalexb/sitecfg/site"

	"github.com/spf13/cobra"
)

func newComposeCommand() *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "compose <site-file>",
		Short: "Compose a site file and print the configuration as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := site.Load(args[0])
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			if !compact {
				encoder.SetIndent("", "  ")
			}

			if err := encoder.Encode(cfg); err != nil {
				return fmt.Errorf("writing configuration: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "print the JSON on a single line")

	return cmd
}
