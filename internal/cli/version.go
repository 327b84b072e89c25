package cli

import (
	"encoding/json"
	"fmt"

	"github.com/0xalexb/sitecfg"

	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := sitecfg.ReadBuildInfo()
			out := cmd.OutOrStdout()

			if asJSON {
				return json.NewEncoder(out).Encode(info) //nolint:wrapcheck
			}

			_, _ = fmt.Fprintf(out, "sitecfg %s (commit %s, built %s, %s)\n",
				info.Version, info.Commit, info.CompiledAt, info.GoVersion)

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}
