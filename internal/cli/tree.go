package cli

import (
	"fmt"

	"github.com/0xalexb/sitecfg/nav"
	"github.com/0xalexb/sitecfg/site"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var (
	rootStyle    = lipgloss.NewStyle().Bold(true)
	groupStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	targetStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	autogenStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("10"))
)

func newTreeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <site-file>",
		Short: "Print the composed sidebar as a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := site.Load(args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSidebar(cfg.Title(), cfg.Sidebar()))

			return nil
		},
	}
}

func renderSidebar(title string, nodes []nav.Node) string {
	root := tree.Root(rootStyle.Render(title)).Enumerator(tree.RoundedEnumerator)
	addChildren(root, nodes)

	return root.String()
}

func addChildren(parent *tree.Tree, nodes []nav.Node) {
	for _, node := range nodes {
		switch typed := node.(type) {
		case nav.Link:
			parent.Child(typed.Label + " " + targetStyle.Render(typed.Target))
		case nav.AutogenGroup:
			parent.Child(groupLabel(typed.Label, typed.Collapsed) + " " +
				autogenStyle.Render("autogenerate: "+typed.Directory))
		case nav.Group:
			sub := tree.Root(groupLabel(typed.Label, typed.Collapsed)).Enumerator(tree.RoundedEnumerator)
			addChildren(sub, typed.Children)
			parent.Child(sub)
		}
	}
}

func groupLabel(label string, collapsed bool) string {
	if collapsed {
		label += " (collapsed)"
	}

	return groupStyle.Render(label)
}
