package repel

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/labelrepel/pkg/force"
	"github.com/matzehuels/labelrepel/pkg/geom"
)

const (
	// DefaultForce is the default force strength.
	DefaultForce = force.DefaultStrength

	// DefaultMaxIter is the default iteration cap.
	DefaultMaxIter = 10000
)

// Options configures a run.
type Options struct {
	// Force scales every interaction. NaN or zero selects DefaultForce;
	// negative values are rejected.
	Force float64

	// MaxIter caps the number of iterations. Zero or negative runs no
	// iterations at all and returns the input centroids.
	MaxIter int

	// Anchors overrides the point each box is attracted to. When nil, every
	// box is anchored to its initial centroid. When set, it must have one
	// entry per box.
	Anchors []geom.Point

	// Jitter supplies the Gaussian tie-breaking noise. When nil, a source
	// seeded from the clock is used and the run is not reproducible.
	Jitter force.Jitter

	// Observer, when set, is called after every iteration.
	Observer func(Iteration)

	// Logger receives run diagnostics at debug level.
	Logger *log.Logger
}

// DefaultOptions returns options with the default force and iteration cap.
func DefaultOptions() Options {
	return Options{
		Force:   DefaultForce,
		MaxIter: DefaultMaxIter,
	}
}

// Iteration is the per-iteration snapshot passed to Options.Observer.
type Iteration struct {
	// N is the 1-based iteration number.
	N int
	// Overlap reports whether any overlap was detected during the iteration.
	Overlap bool
	// Boxes is the engine's working slice after the iteration. It is only
	// valid for the duration of the callback and must not be modified.
	Boxes []geom.Box
	// MaxForce holds the running maxima of the applied force components.
	MaxForce geom.Point
}
