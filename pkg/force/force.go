// Package force implements the pairwise repulsion used by the label
// repulsion engine.
//
// A force pushes point a away from point b with an inverse-square
// magnitude. Before the distance is measured, a is nudged by Gaussian
// jitter whose standard deviation equals the force strength; this breaks
// ties when two points coincide exactly. The jitter source is supplied by
// the caller so runs can be replayed deterministically.
package force

import (
	"math"
	"math/rand/v2"

	"github.com/matzehuels/labelrepel/pkg/geom"
)

const (
	// DefaultStrength is the force strength used when none is configured.
	DefaultStrength = 1e-6

	// MinDistance floors the distance between the two points so that the
	// inverse-square term stays finite.
	MinDistance = 0.01
)

// Jitter is a source of standard normal deviates. *rand.Rand from
// math/rand/v2 satisfies it.
type Jitter interface {
	NormFloat64() float64
}

// NoJitter is a Jitter that always returns zero. Forces computed with it are
// fully deterministic.
type NoJitter struct{}

// NormFloat64 returns 0.
func (NoJitter) NormFloat64() float64 { return 0 }

// NewGaussian returns a seeded PCG-backed jitter source.
func NewGaussian(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Compute returns the force on a exerted by b at the given strength.
func Compute(a, b geom.Point, strength float64, j Jitter) geom.Point {
	a = a.Add(geom.Point{
		X: j.NormFloat64() * strength,
		Y: j.NormFloat64() * strength,
	})
	d := max(geom.Distance(a, b), MinDistance)
	v := a.Sub(b).Scale(1 / d)
	return v.Scale(strength / (d * d))
}

// Normalize returns DefaultStrength when s is NaN or not positive, and s
// otherwise.
func Normalize(s float64) float64 {
	if math.IsNaN(s) || s <= 0 {
		return DefaultStrength
	}
	return s
}
