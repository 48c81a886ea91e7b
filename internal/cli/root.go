package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/labelrepel/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "labelrepel moves text labels apart so they do not overlap",
		Long: `labelrepel places text labels near the points they annotate without
overlapping each other or covering other points. Scenes are read from JSON,
TOML or YAML; layouts are written as JSON and can be rendered to SVG.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.repelCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
