package cli

import (
	"github.com/0xalexb/sitecfg"
	"github.com/0xalexb/sitecfg/listener"

	"github.com/spf13/cobra"
)

const siteListener = "site"

func newServeCommand(flags *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve <site-file>",
		Short: "Compose a site file and serve it over HTTP until interrupted",
		Long: `serve composes the site file once at startup and serves the result:

  GET /config.json        composed configuration
  GET /sidebar.json       sidebar tree
  GET /themes/dark.json   dark theme descriptor
  GET /themes/light.json  light theme descriptor
  GET /healthz            liveness
  GET /metrics            Prometheus metrics`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			envDefault(cmd, "addr", EnvAddr)

			app := sitecfg.NewApp(
				sitecfg.WithLogLevel(flags.logLevel),
				sitecfg.WithLogFormat(flags.logFormat),
				sitecfg.WithLogOutput(cmd.ErrOrStderr()),
				sitecfg.WithSite(args[0]),
				sitecfg.WithSiteListener(siteListener, listener.WithAddress(addr)),
			)

			if err := app.Err(); err != nil {
				return err
			}

			app.Run()

			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", listener.DefaultAddress, "listen address (env "+EnvAddr+")")

	return cmd
}
