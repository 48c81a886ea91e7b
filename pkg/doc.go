// Package pkg holds the libraries behind labelrepel.
//
// # Overview
//
// labelrepel places text labels next to the points they annotate so that no
// two labels overlap and no label covers another label's point. The pkg
// directory is organized bottom-up:
//
//  1. [geom] - points, boxes, intervals, overlap and clamping
//  2. [force] - the pairwise inverse-square repulsion
//  3. [repel] - the iterative engine and its conflict report
//  4. [scene] - scene files, label sizing, and solved layouts
//  5. [render/svg] - SVG output
//  6. [pipeline] - scene → layout → render with caching
//  7. [server] - the HTTP API
//
// Supporting packages: [cache] (file, Redis and null backends), [errors]
// (coded errors), [observability] (hooks) and [metrics] (Prometheus).
//
// # Data Flow
//
//	scene file (JSON / TOML / YAML)
//	         ↓
//	    [scene] package (validate, size boxes, map to the unit square)
//	         ↓
//	    [repel] package (push boxes apart, pull them back to anchors)
//	         ↓
//	    [scene.Layout] (positions in scene units + diagnostics)
//	         ↓
//	    JSON / SVG
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/labelrepel/pkg/pipeline"
//	    "github.com/matzehuels/labelrepel/pkg/scene"
//	)
//
//	s, err := scene.ReadFile("cities.toml")
//	if err != nil {
//	    return err
//	}
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, err := runner.Execute(ctx, s, pipeline.Options{Formats: []string{"svg"}})
//
// The engine can also be used directly on boxes:
//
//	res, err := repel.Run(boxes, xlim, ylim, repel.DefaultOptions())
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/labelrepel/pkg/geom
// [force]: https://pkg.go.dev/github.com/matzehuels/labelrepel/pkg/force
// [repel]: https://pkg.go.dev/github.com/matzehuels/labelrepel/pkg/repel
// [scene]: https://pkg.go.dev/github.com/matzehuels/labelrepel/pkg/scene
// [scene.Layout]: https://pkg.go.dev/github.com/matzehuels/labelrepel/pkg/scene#Layout
// [render/svg]: https://pkg.go.dev/github.com/matzehuels/labelrepel/pkg/render/svg
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/labelrepel/pkg/pipeline
// [server]: https://pkg.go.dev/github.com/matzehuels/labelrepel/pkg/server
// [cache]: https://pkg.go.dev/github.com/matzehuels/labelrepel/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/labelrepel/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/labelrepel/pkg/observability
// [metrics]: https://pkg.go.dev/github.com/matzehuels/labelrepel/pkg/metrics
package pkg
