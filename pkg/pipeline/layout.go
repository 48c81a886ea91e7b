package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/labelrepel/pkg/force"
	"github.com/matzehuels/labelrepel/pkg/observability"
	"github.com/matzehuels/labelrepel/pkg/repel"
	"github.com/matzehuels/labelrepel/pkg/scene"
)

// ComputeLayout sizes the scene's labels and runs the repulsion engine in
// unit-square coordinates, mapping the result back onto the scene.
func ComputeLayout(ctx context.Context, s *scene.Scene, opts Options) (scene.Layout, error) {
	opts.SetLayoutDefaults()
	boxes := s.UnitBoxes()

	hooks := observability.Repel()
	hooks.OnRepelStart(ctx, len(boxes))
	start := time.Now()

	res, err := repel.RunContext(ctx, boxes, scene.Unit, scene.Unit, repel.Options{
		Force:    opts.Force,
		MaxIter:  opts.MaxIter,
		Anchors:  s.UnitAnchors(),
		Jitter:   force.NewGaussian(opts.Seed),
		Observer: opts.Observer,
		Logger:   opts.Logger,
	})
	if err != nil {
		hooks.OnRepelComplete(ctx, len(boxes), 0, "", time.Since(start), err)
		return scene.Layout{}, err
	}
	hooks.OnRepelComplete(ctx, len(boxes), res.Iterations, res.State.String(), time.Since(start), nil)

	res = s.Frame().Restore(res)
	if !res.Converged() {
		opts.Logger.Warn("labels still overlap",
			"iterations", res.Iterations,
			"conflicts", len(res.Conflicts()))
	}

	return scene.BuildLayout(s, res, opts.Seed), nil
}
