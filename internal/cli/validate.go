package cli

import (
	"fmt"

	"github.com/0xalexb/sitecfg/nav"
	"github.com/0xalexb/sitecfg/site"
	"github.com/0xalexb/sitecfg/siteerr"

	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <site-file>",
		Short: "Check a site file and list every problem found",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := site.Load(args[0])
			if err != nil {
				for _, path := range siteerr.Paths(err) {
					_, _ = fmt.Fprintf(out, "invalid: %s\n", path)
				}

				return err
			}

			stats := nav.Count(cfg.Sidebar())
			themes := cfg.Themes()

			_, _ = fmt.Fprintf(out, "ok: %q\n", cfg.Title())
			_, _ = fmt.Fprintf(out, "  sidebar: %d links, %d groups, %d autogenerated, depth %d\n",
				stats.Links, stats.Groups, stats.Autogen, stats.MaxDepth)
			_, _ = fmt.Fprintf(out, "  themes: %s / %s\n", themes.Dark.Name, themes.Light.Name)
			_, _ = fmt.Fprintf(out, "  plugins: %d, stylesheets: %d, head tags: %d\n",
				len(cfg.Plugins()), len(cfg.CustomCSS()), len(cfg.Head()))

			return nil
		},
	}
}
