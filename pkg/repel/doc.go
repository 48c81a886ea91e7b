// Package repel moves overlapping boxes apart with a force-directed loop.
//
// Each box starts anchored to a point (by default its own initial
// centroid). Every iteration, each box is pushed away from boxes it
// overlaps, from foreign anchors it covers, and from its own anchor while it
// covers it. While no overlap has been seen in the current iteration, boxes
// are instead pulled gently back toward their anchors. The loop stops once a
// whole iteration passes without any overlap, or after MaxIter iterations.
//
// # Usage
//
//	boxes := []geom.Box{{X1: 0, Y1: 0, X2: 2, Y2: 1}, {X1: 1, Y1: 0, X2: 3, Y2: 1}}
//	res, err := repel.Run(boxes, geom.Interval{Min: 0, Max: 10}, geom.Interval{Min: 0, Max: 10}, repel.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	for i := range res.X {
//	    fmt.Println(res.X[i], res.Y[i])
//	}
//
// # Pull-back policy
//
// The decision to pull box i back toward its anchor looks at whether any
// overlap has been found so far in the current iteration, across all boxes
// processed up to and including i. Boxes later in the order therefore stop
// receiving pull-back as soon as any earlier box overlaps.
//
// # Determinism
//
// Forces carry Gaussian jitter drawn from Options.Jitter. With a seeded
// source (see force.NewGaussian) a run is fully reproducible. Concurrent runs
// must not share a source.
package repel
