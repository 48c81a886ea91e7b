package geom

import "math"

// Point is a location in the plane. It doubles as a 2D vector for forces
// and displacements.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p multiplied by s on both axes.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Norm returns the Euclidean length of p.
func (p Point) Norm() float64 { return math.Hypot(p.X, p.Y) }

// Box is an axis-aligned rectangle given by two opposite corners.
type Box struct {
	X1, Y1 float64
	X2, Y2 float64
}

// BoxAround returns the box of the given size centred on c.
func BoxAround(c Point, width, height float64) Box {
	return Box{
		X1: c.X - width/2, Y1: c.Y - height/2,
		X2: c.X + width/2, Y2: c.Y + height/2,
	}
}

// Width returns the horizontal span of the box.
func (b Box) Width() float64 { return b.X2 - b.X1 }

// Height returns the vertical span of the box.
func (b Box) Height() float64 { return b.Y2 - b.Y1 }

// Centroid returns the midpoint of the box.
func (b Box) Centroid() Point { return Point{(b.X1 + b.X2) / 2, (b.Y1 + b.Y2) / 2} }

// AspectRatio returns height over width. It is infinite or NaN for boxes
// with zero width.
func (b Box) AspectRatio() float64 { return b.Height() / b.Width() }

// Translate moves both corners by d.
func (b Box) Translate(d Point) Box {
	return Box{b.X1 + d.X, b.Y1 + d.Y, b.X2 + d.X, b.Y2 + d.Y}
}

// Valid reports whether all coordinates are finite and the corners are ordered.
func (b Box) Valid() bool {
	for _, v := range [...]float64{b.X1, b.Y1, b.X2, b.Y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.X1 <= b.X2 && b.Y1 <= b.Y2
}

// Interval is the closed range [Min, Max].
type Interval struct {
	Min, Max float64
}

// Span returns Max - Min.
func (i Interval) Span() float64 { return i.Max - i.Min }

// Contains reports whether v lies in the closed interval.
func (i Interval) Contains(v float64) bool { return v >= i.Min && v <= i.Max }

// Ordered reports whether both ends are numbers and Min ≤ Max.
func (i Interval) Ordered() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max) && i.Min <= i.Max
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Centroid returns the midpoint of b.
func Centroid(b Box) Point { return b.Centroid() }

// Overlaps reports whether a and b intersect on both axes. Touching edges
// count as overlap. The relation is symmetric.
func Overlaps(a, b Box) bool {
	return b.X1 <= a.X2 &&
		b.Y1 <= a.Y2 &&
		b.X2 >= a.X1 &&
		b.Y2 >= a.Y1
}

// PointWithinBox reports whether p lies inside b or on its boundary.
func PointWithinBox(p Point, b Box) bool {
	return p.X >= b.X1 &&
		p.X <= b.X2 &&
		p.Y >= b.Y1 &&
		p.Y <= b.Y2
}

// ClampToBounds translates b so that it lies within xlim × ylim. On each
// axis at most one correction applies: a box below the lower bound is
// shifted up to it, otherwise a box past the upper bound is shifted back.
// The box is never resized; the corrected edge is placed exactly on the
// bound and the opposite edge follows by the same offset.
func ClampToBounds(b Box, xlim, ylim Interval) Box {
	if b.X1 < xlim.Min {
		d := xlim.Min - b.X1
		b.X1 = xlim.Min
		b.X2 += d
	} else if b.X2 > xlim.Max {
		d := b.X2 - xlim.Max
		b.X1 -= d
		b.X2 = xlim.Max
	}
	if b.Y1 < ylim.Min {
		d := ylim.Min - b.Y1
		b.Y1 = ylim.Min
		b.Y2 += d
	} else if b.Y2 > ylim.Max {
		d := b.Y2 - ylim.Max
		b.Y1 -= d
		b.Y2 = ylim.Max
	}
	return b
}

// WithinBounds reports whether b lies entirely inside xlim × ylim.
func WithinBounds(b Box, xlim, ylim Interval) bool {
	return xlim.Contains(b.X1) && xlim.Contains(b.X2) &&
		ylim.Contains(b.Y1) && ylim.Contains(b.Y2)
}
