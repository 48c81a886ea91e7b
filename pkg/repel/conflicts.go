package repel

import "github.com/matzehuels/labelrepel/pkg/geom"

// ConflictKind classifies a remaining overlap.
type ConflictKind string

const (
	// BoxOverlap means boxes I and J intersect.
	BoxOverlap ConflictKind = "box_overlap"
	// AnchorCovered means box I covers the anchor of another box J.
	AnchorCovered ConflictKind = "anchor_covered"
	// OwnAnchor means box I still covers its own anchor. I == J.
	OwnAnchor ConflictKind = "own_anchor"
)

// Conflict is a single unresolved interaction between two boxes.
type Conflict struct {
	Kind ConflictKind
	I, J int
}

// Conflicts lists every overlap the engine would react to for the given
// boxes and anchors. Box overlaps are reported once per pair with I < J.
// It is typically used to explain a run that hit MaxIterReached.
func Conflicts(boxes []geom.Box, anchors []geom.Point) []Conflict {
	var out []Conflict
	for i := range boxes {
		for j := range boxes {
			if i < j && geom.Overlaps(boxes[i], boxes[j]) {
				out = append(out, Conflict{Kind: BoxOverlap, I: i, J: j})
			}
			if j < len(anchors) && geom.PointWithinBox(anchors[j], boxes[i]) {
				kind := AnchorCovered
				if i == j {
					kind = OwnAnchor
				}
				out = append(out, Conflict{Kind: kind, I: i, J: j})
			}
		}
	}
	return out
}

// Between reports whether the conflict involves two different boxes.
func (c Conflict) Between() bool { return c.Kind != OwnAnchor }

// Conflicts lists the unresolved interactions in the final layout.
func (r *Result) Conflicts() []Conflict {
	return Conflicts(r.Boxes, r.Anchors)
}
