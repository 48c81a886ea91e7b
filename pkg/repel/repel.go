package repel

import (
	"context"
	"math"
	"time"

	"github.com/matzehuels/labelrepel/pkg/errors"
	"github.com/matzehuels/labelrepel/pkg/force"
	"github.com/matzehuels/labelrepel/pkg/geom"
)

// Result is the outcome of a run.
type Result struct {
	// X and Y hold the final centroid of each box, in input order.
	X, Y []float64

	// Boxes holds the final box positions, in input order.
	Boxes []geom.Box

	// Anchors holds the anchor used for each box.
	Anchors []geom.Point

	// State is Converged or MaxIterReached.
	State State

	// Iterations is the number of iterations executed.
	Iterations int

	// Force is the strength actually used after defaulting.
	Force float64

	// MaxForce holds the largest horizontal and vertical force components
	// applied during the run. Only positive components are tracked; it is a
	// tuning aid, not a magnitude.
	MaxForce geom.Point
}

// Converged reports whether the run ended without overlaps.
func (r *Result) Converged() bool { return r.State == Converged }

// Centroids returns the final centroids as points.
func (r *Result) Centroids() []geom.Point {
	out := make([]geom.Point, len(r.X))
	for i := range r.X {
		out[i] = geom.Point{X: r.X[i], Y: r.Y[i]}
	}
	return out
}

// Run repositions boxes so that none overlap each other or cover a foreign
// anchor, keeping every box inside xlim × ylim. The input slice is not
// modified.
func Run(boxes []geom.Box, xlim, ylim geom.Interval, opts Options) (*Result, error) {
	return RunContext(context.Background(), boxes, xlim, ylim, opts)
}

// RunContext is Run with cancellation checked between iterations.
func RunContext(ctx context.Context, boxes []geom.Box, xlim, ylim geom.Interval, opts Options) (*Result, error) {
	e, err := newEngine(boxes, xlim, ylim, opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	state, iter := Running, 0
	if opts.MaxIter <= 0 {
		state = MaxIterReached
	}

	for state == Running {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeCanceled, err, "repel stopped after %d iterations", iter)
		}
		iter++
		overlap := e.step()

		if opts.Observer != nil {
			opts.Observer(Iteration{N: iter, Overlap: overlap, Boxes: e.boxes, MaxForce: e.maxForce})
		}

		switch {
		case !overlap:
			state = Converged
		case iter >= opts.MaxIter:
			state = MaxIterReached
		}
	}

	if opts.Logger != nil {
		opts.Logger.Debug("repel finished",
			"boxes", len(e.boxes),
			"iterations", iter,
			"state", state,
			"max_force_x", e.maxForce.X,
			"max_force_y", e.maxForce.Y,
			"duration", time.Since(start))
	}

	return e.result(state, iter), nil
}

// engine holds the mutable state of one run.
type engine struct {
	boxes    []geom.Box
	anchors  []geom.Point
	ratios   []float64
	xlim     geom.Interval
	ylim     geom.Interval
	strength float64
	jitter   force.Jitter
	maxForce geom.Point
}

func newEngine(boxes []geom.Box, xlim, ylim geom.Interval, opts Options) (*engine, error) {
	if !xlim.Ordered() {
		return nil, errors.New(errors.ErrCodeInvalidBounds, "xlim must satisfy min <= max, got [%g, %g]", xlim.Min, xlim.Max)
	}
	if !ylim.Ordered() {
		return nil, errors.New(errors.ErrCodeInvalidBounds, "ylim must satisfy min <= max, got [%g, %g]", ylim.Min, ylim.Max)
	}
	if opts.Force < 0 || math.IsInf(opts.Force, 0) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "force must be a positive number, got %g", opts.Force)
	}
	if opts.Anchors != nil && len(opts.Anchors) != len(boxes) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "got %d anchors for %d boxes", len(opts.Anchors), len(boxes))
	}

	n := len(boxes)
	e := &engine{
		boxes:    make([]geom.Box, n),
		anchors:  make([]geom.Point, n),
		ratios:   make([]float64, n),
		xlim:     xlim,
		ylim:     ylim,
		strength: force.Normalize(opts.Force),
		jitter:   opts.Jitter,
	}
	if e.jitter == nil {
		e.jitter = force.NewGaussian(uint64(time.Now().UnixNano()))
	}

	for i, b := range boxes {
		if !b.Valid() {
			return nil, errors.New(errors.ErrCodeInvalidBox, "box %d is malformed: %v", i, b)
		}
		if b.Width() <= 0 || b.Height() <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidBox, "box %d must have positive width and height, got %gx%g", i, b.Width(), b.Height())
		}
		e.boxes[i] = b
		e.ratios[i] = b.AspectRatio()
		e.anchors[i] = b.Centroid()
	}

	if opts.Anchors != nil {
		for i, a := range opts.Anchors {
			if math.IsNaN(a.X) || math.IsNaN(a.Y) || math.IsInf(a.X, 0) || math.IsInf(a.Y, 0) {
				return nil, errors.New(errors.ErrCodeInvalidInput, "anchor %d is not finite: %v", i, a)
			}
		}
		copy(e.anchors, opts.Anchors)
	}

	return e, nil
}

// step runs one iteration over all boxes and reports whether any overlap
// was found.
func (e *engine) step() bool {
	overlap := false
	for i := range e.boxes {
		ci := e.boxes[i].Centroid()

		f, hit := e.scan(i, ci)
		overlap = overlap || hit

		// Pull toward the anchor only while the iteration is still clean.
		if !overlap {
			f = f.Add(force.Compute(e.anchors[i], ci, e.strength, e.jitter))
		}

		f.X *= e.ratios[i]

		if f.X > e.maxForce.X {
			e.maxForce.X = f.X
		}
		if f.Y > e.maxForce.Y {
			e.maxForce.Y = f.Y
		}

		e.boxes[i] = geom.ClampToBounds(e.boxes[i].Translate(f), e.xlim, e.ylim)
	}
	return overlap
}

// scan accumulates the repulsive forces acting on box i, whose centroid is
// ci, and reports whether box i overlaps anything.
func (e *engine) scan(i int, ci geom.Point) (geom.Point, bool) {
	var f geom.Point
	hit := false
	bi := e.boxes[i]

	for j := range e.boxes {
		if i == j {
			// Repel the box from its own anchor.
			if geom.PointWithinBox(e.anchors[i], bi) {
				hit = true
				f = f.Add(force.Compute(ci, e.anchors[i], e.strength, e.jitter))
			}
			continue
		}

		if geom.Overlaps(bi, e.boxes[j]) {
			hit = true
			f = f.Add(force.Compute(ci, e.boxes[j].Centroid(), e.strength, e.jitter))
		}
		if geom.PointWithinBox(e.anchors[j], bi) {
			hit = true
			f = f.Add(force.Compute(ci, e.anchors[j], e.strength, e.jitter))
		}
	}
	return f, hit
}

func (e *engine) result(state State, iter int) *Result {
	n := len(e.boxes)
	r := &Result{
		X:          make([]float64, n),
		Y:          make([]float64, n),
		Boxes:      make([]geom.Box, n),
		Anchors:    make([]geom.Point, n),
		State:      state,
		Iterations: iter,
		Force:      e.strength,
		MaxForce:   e.maxForce,
	}
	copy(r.Boxes, e.boxes)
	copy(r.Anchors, e.anchors)
	for i, b := range e.boxes {
		c := b.Centroid()
		r.X[i], r.Y[i] = c.X, c.Y
	}
	return r
}
