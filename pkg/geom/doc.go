// Package geom provides the planar primitives used by the label repulsion
// engine: points, axis-aligned boxes, closed intervals and the predicates
// defined on them.
//
// All predicates are inclusive. Two boxes that merely touch along an edge
// overlap, and a point lying on a box edge is within the box.
//
// # Coordinates
//
// A [Box] is described by two opposite corners (X1, Y1) and (X2, Y2) with
// X1 ≤ X2 and Y1 ≤ Y2. Box methods never reorder corners; callers that build
// boxes from untrusted input should check [Box.Valid] first.
//
// # Bounds
//
// [ClampToBounds] translates a box into a rectangular region described by two
// [Interval] values. It never resizes: a box larger than the region on some
// axis ends up aligned with the region's lower edge on that axis and still
// sticks out past the upper edge.
package geom
