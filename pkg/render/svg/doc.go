// Package svg draws a solved label layout as SVG.
//
// The layout's bounds become the viewBox. The y axis points up, as in a
// plot, so a label with a larger y is drawn higher on the page.
//
// Each label is drawn as a box with its text centred inside. Options add
// the anchor points, leader lines from each anchor to the nearest edge of
// its box, and a highlight for labels the engine could not separate:
//
//	out := svg.Render(layout, svg.WithAnchors(), svg.WithLeaders())
package svg
