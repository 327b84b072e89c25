package cli

import (
	"fmt"
	"os"

	"github.com/0xalexb/sitecfg/plugin"
	"github.com/0xalexb/sitecfg/site"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
)

func newRenderCommand() *cobra.Command {
	var siteFile string

	cmd := &cobra.Command{
		Use:   "render <page.md>",
		Short: "Render a Markdown page to HTML with the site's code-block plugins",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := plugin.NewRegistry(plugin.LanguageClass())

			if siteFile != "" {
				cfg, err := site.Load(siteFile)
				if err != nil {
					return err
				}

				registry = cfg.PluginRegistry()
			}

			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading page %q: %w", args[0], err)
			}

			markdown := goldmark.New(goldmark.WithExtensions(plugin.Extension(registry)))

			if err := markdown.Convert(source, cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("rendering page %q: %w", args[0], err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&siteFile, "site", "", "site file whose plugins are applied (default: language-class only)")

	return cmd
}
