package geom

import "math"

// ClipSegment returns the point where the segment from a to b crosses the
// boundary of box, choosing the crossing closest to a. The second result is
// false when the segment never touches the boundary.
//
// Leader lines use it to stop at the label edge: with a at the anchor and b
// at the label centroid, the returned point is where the line enters the
// label.
func ClipSegment(a, b Point, box Box) (Point, bool) {
	d := b.Sub(a)
	best := math.Inf(1)

	// Vertical edges.
	if d.X != 0 {
		for _, x := range [2]float64{box.X1, box.X2} {
			t := (x - a.X) / d.X
			if y := a.Y + t*d.Y; t >= 0 && t <= 1 && y >= box.Y1 && y <= box.Y2 && t < best {
				best = t
			}
		}
	}
	// Horizontal edges.
	if d.Y != 0 {
		for _, y := range [2]float64{box.Y1, box.Y2} {
			t := (y - a.Y) / d.Y
			if x := a.X + t*d.X; t >= 0 && t <= 1 && x >= box.X1 && x <= box.X2 && t < best {
				best = t
			}
		}
	}

	if math.IsInf(best, 1) {
		return Point{}, false
	}
	return a.Add(d.Scale(best)), true
}
