package scene

import (
	"github.com/matzehuels/labelrepel/pkg/geom"
	"github.com/matzehuels/labelrepel/pkg/repel"
)

// Unit is the interval both axes are mapped onto before solving.
var Unit = geom.Interval{Min: 0, Max: 1}

// Frame maps scene coordinates onto the unit square and back. Force
// strengths are expressed in unit-square distances, so a scene drawn in
// pixels and the same scene drawn in millimetres solve identically.
type Frame struct {
	X, Y geom.Interval
}

// Frame returns the mapping for the scene's bounds.
func (s *Scene) Frame() Frame {
	x, y := s.Bounds()
	return Frame{X: x, Y: y}
}

// ToUnit maps a scene point into the unit square.
func (f Frame) ToUnit(p geom.Point) geom.Point {
	return geom.Point{
		X: (p.X - f.X.Min) / f.X.Span(),
		Y: (p.Y - f.Y.Min) / f.Y.Span(),
	}
}

// FromUnit maps a unit-square point back to scene coordinates.
func (f Frame) FromUnit(p geom.Point) geom.Point {
	return geom.Point{
		X: f.X.Min + p.X*f.X.Span(),
		Y: f.Y.Min + p.Y*f.Y.Span(),
	}
}

// BoxToUnit maps a scene box into the unit square.
func (f Frame) BoxToUnit(b geom.Box) geom.Box {
	lo := f.ToUnit(geom.Point{X: b.X1, Y: b.Y1})
	hi := f.ToUnit(geom.Point{X: b.X2, Y: b.Y2})
	return geom.Box{X1: lo.X, Y1: lo.Y, X2: hi.X, Y2: hi.Y}
}

// BoxFromUnit maps a unit-square box back to scene coordinates.
func (f Frame) BoxFromUnit(b geom.Box) geom.Box {
	lo := f.FromUnit(geom.Point{X: b.X1, Y: b.Y1})
	hi := f.FromUnit(geom.Point{X: b.X2, Y: b.Y2})
	return geom.Box{X1: lo.X, Y1: lo.Y, X2: hi.X, Y2: hi.Y}
}

// UnitBoxes returns the scene's label boxes in unit-square coordinates.
func (s *Scene) UnitBoxes() []geom.Box {
	f := s.Frame()
	boxes := s.Boxes()
	for i, b := range boxes {
		boxes[i] = f.BoxToUnit(b)
	}
	return boxes
}

// UnitAnchors returns the scene's anchors in unit-square coordinates.
func (s *Scene) UnitAnchors() []geom.Point {
	f := s.Frame()
	anchors := s.Anchors()
	for i, a := range anchors {
		anchors[i] = f.ToUnit(a)
	}
	return anchors
}

// Restore returns a copy of res with positions mapped back to scene
// coordinates. MaxForce is scaled per axis like a distance.
func (f Frame) Restore(res *repel.Result) *repel.Result {
	out := *res
	out.X = make([]float64, len(res.X))
	out.Y = make([]float64, len(res.Y))
	out.Boxes = make([]geom.Box, len(res.Boxes))
	out.Anchors = make([]geom.Point, len(res.Anchors))

	for i, b := range res.Boxes {
		out.Boxes[i] = f.BoxFromUnit(b)
		c := f.FromUnit(geom.Point{X: res.X[i], Y: res.Y[i]})
		out.X[i], out.Y[i] = c.X, c.Y
	}
	for i, a := range res.Anchors {
		out.Anchors[i] = f.FromUnit(a)
	}
	out.MaxForce = geom.Point{
		X: res.MaxForce.X * f.X.Span(),
		Y: res.MaxForce.Y * f.Y.Span(),
	}
	return &out
}
