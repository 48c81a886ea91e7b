package scene

import (
	"math"
	"testing"

	"github.com/matzehuels/labelrepel/pkg/geom"
	"github.com/matzehuels/labelrepel/pkg/repel"
)

func TestFrameRoundTrip(t *testing.T) {
	f := Frame{X: geom.Interval{Min: -50, Max: 150}, Y: geom.Interval{Min: 10, Max: 60}}

	tests := []struct {
		scene, unit geom.Point
	}{
		{geom.Point{X: -50, Y: 10}, geom.Point{X: 0, Y: 0}},
		{geom.Point{X: 150, Y: 60}, geom.Point{X: 1, Y: 1}},
		{geom.Point{X: 50, Y: 35}, geom.Point{X: 0.5, Y: 0.5}},
	}
	for _, tt := range tests {
		if got := f.ToUnit(tt.scene); got != tt.unit {
			t.Errorf("ToUnit(%v) = %v, want %v", tt.scene, got, tt.unit)
		}
		if got := f.FromUnit(tt.unit); got != tt.scene {
			t.Errorf("FromUnit(%v) = %v, want %v", tt.unit, got, tt.scene)
		}
	}

	b := geom.Box{X1: 0, Y1: 20, X2: 100, Y2: 40}
	u := f.BoxToUnit(b)
	if u != (geom.Box{X1: 0.25, Y1: 0.2, X2: 0.75, Y2: 0.6}) {
		t.Errorf("BoxToUnit = %+v", u)
	}
	back := f.BoxFromUnit(u)
	if math.Abs(back.X1-b.X1) > 1e-9 || math.Abs(back.Y2-b.Y2) > 1e-9 {
		t.Errorf("BoxFromUnit = %+v, want %+v", back, b)
	}
}

func TestUnitBoxesStayInUnitSquare(t *testing.T) {
	s := &Scene{Width: 200, Height: 100, Labels: []Label{{Text: "Alpha", X: 100, Y: 50}}}
	s.Normalize()

	boxes := s.UnitBoxes()
	anchors := s.UnitAnchors()
	if anchors[0] != (geom.Point{X: 0.5, Y: 0.5}) {
		t.Errorf("anchor = %v, want (0.5, 0.5)", anchors[0])
	}
	if !geom.WithinBounds(boxes[0], Unit, Unit) {
		t.Errorf("box %+v outside unit square", boxes[0])
	}
	// 5 runes * 12 * 0.55 + 4 = 37 wide in a 200 wide frame.
	if w := boxes[0].Width(); math.Abs(w-37.0/200) > 1e-12 {
		t.Errorf("unit width = %v, want %v", w, 37.0/200)
	}
}

func TestFrameRestore(t *testing.T) {
	f := Frame{X: geom.Interval{Min: 0, Max: 200}, Y: geom.Interval{Min: 0, Max: 100}}
	res := &repel.Result{
		X:        []float64{0.5},
		Y:        []float64{0.25},
		Boxes:    []geom.Box{{X1: 0.4, Y1: 0.2, X2: 0.6, Y2: 0.3}},
		Anchors:  []geom.Point{{X: 0.5, Y: 0.5}},
		State:    repel.Converged,
		MaxForce: geom.Point{X: 0.01, Y: 0.02},
	}

	out := f.Restore(res)
	if out.X[0] != 100 || out.Y[0] != 25 {
		t.Errorf("centroid = (%v, %v), want (100, 25)", out.X[0], out.Y[0])
	}
	if out.Anchors[0] != (geom.Point{X: 100, Y: 50}) {
		t.Errorf("anchor = %v", out.Anchors[0])
	}
	if out.MaxForce != (geom.Point{X: 2, Y: 2}) {
		t.Errorf("MaxForce = %v, want (2, 2)", out.MaxForce)
	}
	if out.State != repel.Converged {
		t.Errorf("State = %v", out.State)
	}
	if res.X[0] != 0.5 {
		t.Error("Restore modified its input")
	}
}
