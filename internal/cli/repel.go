package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/labelrepel/pkg/pipeline"
	"github.com/matzehuels/labelrepel/pkg/repel"
	"github.com/matzehuels/labelrepel/pkg/scene"
)

// repelOpts holds the command-line flags for the repel command.
type repelOpts struct {
	output    string  // layout JSON path
	svg       string  // optional SVG path
	force     float64 // engine force strength
	maxIter   int     // iteration cap
	seed      uint64  // jitter seed
	randomize bool    // seed from the clock
	anchors   bool    // draw anchors in the SVG
	leaders   bool    // draw leader lines in the SVG
	conflicts bool    // outline unresolved labels in the SVG
	noCache   bool    // bypass the layout cache
	refresh   bool    // recompute and overwrite cached layouts
	watch     bool    // interactive progress view
	quiet     bool    // skip the placement table
}

// repelCommand creates the repel command, which solves a scene file.
func (c *CLI) repelCommand() *cobra.Command {
	var opts repelOpts

	cmd := &cobra.Command{
		Use:   "repel [scene]",
		Short: "Move a scene's labels apart and write the layout",
		Long: `Repel reads a scene (JSON, TOML or YAML), pushes overlapping labels apart
and writes the resulting layout as JSON. Use --svg to also draw it.`,
		Example: `  labelrepel repel cities.toml
  labelrepel repel cities.toml -o cities.json --svg cities.svg --leaders
  labelrepel repel cities.yaml --max-iter 2000 --seed 7 --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRepel(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "layout output file (default: <scene>.layout.json)")
	cmd.Flags().StringVar(&opts.svg, "svg", "", "also render the layout to this SVG file")
	cmd.Flags().Float64Var(&opts.force, "force", pipeline.DefaultForce, "repulsion force strength")
	cmd.Flags().IntVar(&opts.maxIter, "max-iter", pipeline.DefaultMaxIter, "maximum number of iterations")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, fmt.Sprintf("seed for the tie-breaking jitter (0 uses %d, or the clock with --randomize)", pipeline.DefaultSeed))
	cmd.Flags().BoolVar(&opts.randomize, "randomize", false, "seed the jitter from the clock (disables caching)")
	cmd.Flags().BoolVar(&opts.anchors, "anchors", false, "draw anchor points in the SVG")
	cmd.Flags().BoolVar(&opts.leaders, "leaders", false, "draw leader lines in the SVG")
	cmd.Flags().BoolVar(&opts.conflicts, "conflicts", false, "outline unresolved labels in the SVG")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the layout cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if a cached layout exists")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "show live progress while solving")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "do not print the placement table")

	return cmd
}

func (c *CLI) runRepel(ctx context.Context, path string, opts repelOpts) error {
	s, err := scene.ReadFile(path)
	if err != nil {
		return err
	}
	c.Logger.Debug("loaded scene", "path", path, "labels", len(s.Labels))

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := opts.pipelineOptions()
	if opts.randomize {
		// Pin the seed so it can be reported.
		popts.SetLayoutDefaults()
	}

	prog := newProgress(c.Logger)
	var res *pipeline.Result
	if opts.watch {
		res, err = runWatch(ctx, runner, s, popts)
	} else {
		res, err = runWithSpinner(ctx, runner, s, popts)
	}
	if err != nil {
		return err
	}
	prog.done("solved", "labels", len(s.Labels), "seed", res.Layout.Seed)

	output := opts.output
	if output == "" {
		output = defaultLayoutPath(path)
	}
	if err := os.WriteFile(output, res.Artifacts[pipeline.FormatJSON], 0o644); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	printSuccess("Layout written")
	printFile(output)
	if opts.svg != "" {
		if err := os.WriteFile(opts.svg, res.Artifacts[pipeline.FormatSVG], 0o644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		printFile(opts.svg)
	}

	l := res.Layout
	printStats(len(l.Placements), l.Iterations, l.State, res.CacheInfo.LayoutHit)
	printKeyValue("Seed", StyleNumber.Render(strconv.FormatUint(l.Seed, 10)))
	printKeyValue("Max force", StyleNumber.Render(fmt.Sprintf("%.3g, %.3g", l.MaxForceX, l.MaxForceY)))
	if !l.Converged() {
		if n := len(l.Conflicts); n > 0 {
			printWarning("%d conflicts left after %d iterations", n, l.Iterations)
		} else {
			printWarning("labels still cover their anchors after %d iterations", l.Iterations)
		}
		printDetail("try a larger --max-iter or --force")
	}
	if !opts.quiet && len(l.Placements) > 0 {
		fmt.Println(placementTable(l, tableLimit))
	}
	if opts.svg == "" {
		printNextStep("Draw it", fmt.Sprintf("%s render %s", appName, output))
	}
	return nil
}

func (o repelOpts) pipelineOptions() pipeline.Options {
	formats := []string{pipeline.FormatJSON}
	if o.svg != "" {
		formats = append(formats, pipeline.FormatSVG)
	}
	return pipeline.Options{
		Force:     o.force,
		MaxIter:   o.maxIter,
		Seed:      o.seed,
		Randomize: o.randomize,
		Refresh:   o.refresh,
		Formats:   formats,
		Anchors:   o.anchors,
		Leaders:   o.leaders,
		Conflicts: o.conflicts,
	}
}

func runWithSpinner(ctx context.Context, runner *pipeline.Runner, s *scene.Scene, opts pipeline.Options) (*pipeline.Result, error) {
	sp := newSpinnerWithContext(ctx, fmt.Sprintf("Repelling %d labels", len(s.Labels)), opts.MaxIter)
	opts.Observer = func(it repel.Iteration) { sp.Set(it.N) }
	sp.Start()
	res, err := runner.Execute(ctx, s, opts)
	sp.Stop()
	return res, err
}

// defaultLayoutPath derives "<dir>/<name>.layout.json" from a scene path.
func defaultLayoutPath(scenePath string) string {
	base := strings.TrimSuffix(scenePath, filepath.Ext(scenePath))
	return base + ".layout.json"
}
