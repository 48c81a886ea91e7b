package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/labelrepel/pkg/pipeline"
	"github.com/matzehuels/labelrepel/pkg/scene"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string // SVG output path
	anchors   bool   // draw anchor points
	leaders   bool   // draw leader lines from anchors to displaced labels
	conflicts bool   // outline labels the engine could not separate
	noCache   bool   // bypass the artifact cache
}

// renderCommand creates the render command, which draws a saved layout.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [layout]",
		Short: "Render a layout file to SVG",
		Example: `  labelrepel render cities.layout.json
  labelrepel render cities.layout.json -o cities.svg --anchors --leaders`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <layout>.svg)")
	cmd.Flags().BoolVar(&opts.anchors, "anchors", false, "draw anchor points")
	cmd.Flags().BoolVar(&opts.leaders, "leaders", false, "draw leader lines to displaced labels")
	cmd.Flags().BoolVar(&opts.conflicts, "conflicts", false, "outline unresolved labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, path string, opts renderOpts) error {
	l, err := scene.ReadLayoutFile(path)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	artifacts, hit, err := runner.RenderWithCacheInfo(ctx, l, pipeline.Options{
		Formats:   []string{pipeline.FormatSVG},
		Anchors:   opts.anchors,
		Leaders:   opts.leaders,
		Conflicts: opts.conflicts,
	})
	if err != nil {
		return err
	}
	c.Logger.Debug("rendered layout", "path", path, "cached", hit)

	output := opts.output
	if output == "" {
		output = defaultSVGPath(path)
	}
	if err := os.WriteFile(output, artifacts[pipeline.FormatSVG], 0o644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}

	printSuccess("Rendered %d labels", len(l.Placements))
	printFile(output)
	return nil
}

// defaultSVGPath derives the SVG path from a layout path, dropping a
// ".layout" infix: cities.layout.json → cities.svg.
func defaultSVGPath(layoutPath string) string {
	base := strings.TrimSuffix(layoutPath, filepath.Ext(layoutPath))
	base = strings.TrimSuffix(base, ".layout")
	return base + ".svg"
}
