package geom

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want float64
	}{
		{"same point", Point{1, 1}, Point{1, 1}, 0},
		{"unit x", Point{0, 0}, Point{1, 0}, 1},
		{"3-4-5", Point{0, 0}, Point{3, 4}, 5},
		{"negative", Point{-1, -1}, Point{2, 3}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.p, tt.q); got != tt.want {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
			if got := Distance(tt.q, tt.p); got != tt.want {
				t.Errorf("Distance() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	unit := Box{0, 0, 1, 1}
	tests := []struct {
		name string
		a, b Box
		want bool
	}{
		{"identical", unit, unit, true},
		{"contained", unit, Box{0.25, 0.25, 0.75, 0.75}, true},
		{"partial", unit, Box{0.5, 0.5, 1.5, 1.5}, true},
		{"touching edge", unit, Box{1, 0, 2, 1}, true},
		{"touching corner", unit, Box{1, 1, 2, 2}, true},
		{"apart on x", unit, Box{1.01, 0, 2, 1}, false},
		{"apart on y", unit, Box{0, -2, 1, -0.01}, false},
		{"apart diagonally", unit, Box{2, 2, 3, 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(a, b) = %v, want %v", got, tt.want)
			}
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointWithinBox(t *testing.T) {
	b := Box{0, 0, 2, 1}
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"centre", Point{1, 0.5}, true},
		{"corner", Point{0, 0}, true},
		{"edge", Point{2, 0.5}, true},
		{"left", Point{-0.1, 0.5}, false},
		{"above", Point{1, 1.1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointWithinBox(tt.p, b); got != tt.want {
				t.Errorf("PointWithinBox(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestBoxDimensions(t *testing.T) {
	b := Box{X1: 10, Y1: 20, X2: 60, Y2: 45}

	if b.Width() != 50 {
		t.Errorf("Width() = %v, want 50", b.Width())
	}
	if b.Height() != 25 {
		t.Errorf("Height() = %v, want 25", b.Height())
	}
	if c := b.Centroid(); c != (Point{35, 32.5}) {
		t.Errorf("Centroid() = %v, want {35 32.5}", c)
	}
	if b.AspectRatio() != 0.5 {
		t.Errorf("AspectRatio() = %v, want 0.5", b.AspectRatio())
	}
	if Centroid(b) != b.Centroid() {
		t.Error("Centroid(b) should match b.Centroid()")
	}
}

func TestBoxAround(t *testing.T) {
	b := BoxAround(Point{5, 5}, 4, 2)
	want := Box{3, 4, 7, 6}
	if b != want {
		t.Errorf("BoxAround() = %v, want %v", b, want)
	}
	if b.Centroid() != (Point{5, 5}) {
		t.Errorf("centroid moved: %v", b.Centroid())
	}
}

func TestBoxTranslate(t *testing.T) {
	b := Box{0, 0, 2, 1}.Translate(Point{1.5, -3})
	want := Box{1.5, -3, 3.5, -2}
	if b != want {
		t.Errorf("Translate() = %v, want %v", b, want)
	}
}

func TestBoxValid(t *testing.T) {
	tests := []struct {
		name string
		b    Box
		want bool
	}{
		{"unit", Box{0, 0, 1, 1}, true},
		{"degenerate", Box{1, 1, 1, 1}, true},
		{"swapped x", Box{1, 0, 0, 1}, false},
		{"swapped y", Box{0, 1, 1, 0}, false},
		{"nan", Box{math.NaN(), 0, 1, 1}, false},
		{"inf", Box{0, 0, math.Inf(1), 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClampToBounds(t *testing.T) {
	xlim := Interval{0, 10}
	ylim := Interval{0, 10}

	tests := []struct {
		name string
		in   Box
		want Box
	}{
		{"inside", Box{1, 1, 2, 2}, Box{1, 1, 2, 2}},
		{"left", Box{-3, 1, -1, 2}, Box{0, 1, 2, 2}},
		{"right", Box{11, 1, 12, 2}, Box{9, 1, 10, 2}},
		{"below", Box{1, -5, 2, -4}, Box{1, 0, 2, 1}},
		{"above", Box{1, 9.5, 2, 10.5}, Box{1, 9, 2, 10}},
		{"corner", Box{-2, 20, -1, 21}, Box{0, 9, 1, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampToBounds(tt.in, xlim, ylim)
			if got != tt.want {
				t.Errorf("ClampToBounds() = %v, want %v", got, tt.want)
			}
			if got.Width() != tt.in.Width() || got.Height() != tt.in.Height() {
				t.Errorf("size changed: %vx%v -> %vx%v", tt.in.Width(), tt.in.Height(), got.Width(), got.Height())
			}
			if !WithinBounds(got, xlim, ylim) {
				t.Errorf("%v not within bounds", got)
			}
		})
	}
}

func TestClampToBoundsWiderThanRegion(t *testing.T) {
	// Only the lower correction fires; the box still sticks out on the right.
	got := ClampToBounds(Box{-5, 0, 15, 1}, Interval{0, 10}, Interval{0, 10})
	want := Box{0, 0, 20, 1}
	if got != want {
		t.Errorf("ClampToBounds() = %v, want %v", got, want)
	}
}

func TestInterval(t *testing.T) {
	i := Interval{-1, 3}
	if i.Span() != 4 {
		t.Errorf("Span() = %v, want 4", i.Span())
	}
	if !i.Contains(-1) || !i.Contains(3) || i.Contains(3.5) {
		t.Error("Contains() should be inclusive on both ends")
	}
	if !i.Ordered() {
		t.Error("Ordered() = false, want true")
	}
	if (Interval{2, 1}).Ordered() {
		t.Error("reversed interval should not be ordered")
	}
	if (Interval{math.NaN(), 1}).Ordered() {
		t.Error("NaN interval should not be ordered")
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Point{3, 4}
	if p.Norm() != 5 {
		t.Errorf("Norm() = %v, want 5", p.Norm())
	}
	if got := p.Add(Point{1, 1}); got != (Point{4, 5}) {
		t.Errorf("Add() = %v", got)
	}
	if got := p.Sub(Point{1, 1}); got != (Point{2, 3}) {
		t.Errorf("Sub() = %v", got)
	}
	if got := p.Scale(2); got != (Point{6, 8}) {
		t.Errorf("Scale() = %v", got)
	}
}
