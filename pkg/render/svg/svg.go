package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/labelrepel/pkg/geom"
	"github.com/matzehuels/labelrepel/pkg/scene"
)

const (
	anchorRadius  = 2.0
	boxFill       = "#ffffff"
	boxStroke     = "#333333"
	conflictColor = "#c0392b"
	leaderStroke  = "#888888"
	anchorFill    = "#1f77b4"
)

// Option configures Render.
type Option func(*renderer)

type renderer struct {
	anchors   bool
	leaders   bool
	conflicts bool
}

// WithAnchors draws a dot at every anchor.
func WithAnchors() Option { return func(r *renderer) { r.anchors = true } }

// WithLeaders connects every anchor that lies outside its box to the
// nearest point of the box outline.
func WithLeaders() Option { return func(r *renderer) { r.leaders = true } }

// WithConflicts outlines labels involved in unresolved conflicts in red.
func WithConflicts() Option { return func(r *renderer) { r.conflicts = true } }

// Render returns the layout as an SVG document.
func Render(l scene.Layout, opts ...Option) []byte {
	var r renderer
	for _, opt := range opts {
		opt(&r)
	}

	f := frame{xmin: l.XLim[0], ymax: l.YLim[1]}
	w, h := l.XLim[1]-l.XLim[0], l.YLim[1]-l.YLim[0]

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n", w, h, w, h)

	conflicted := map[string]bool{}
	if r.conflicts {
		for _, c := range l.Conflicts {
			conflicted[c.A] = true
			conflicted[c.B] = true
		}
	}

	if r.leaders {
		for _, p := range l.Placements {
			renderLeader(&buf, f, p)
		}
	}
	for _, p := range l.Placements {
		wrapURL(&buf, p.URL, func() {
			renderLabel(&buf, f, p, conflicted[p.ID])
		})
	}
	if r.anchors {
		for _, p := range l.Placements {
			a := f.point(p.Anchor())
			fmt.Fprintf(&buf, `  <circle class="anchor" cx="%.2f" cy="%.2f" r="%.1f" fill="%s"/>`+"\n", a.X, a.Y, anchorRadius, anchorFill)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// frame maps layout coordinates to SVG user space.
type frame struct {
	xmin, ymax float64
}

func (f frame) point(p geom.Point) geom.Point {
	return geom.Point{X: p.X - f.xmin, Y: f.ymax - p.Y}
}

func renderLabel(buf *bytes.Buffer, f frame, p scene.Placement, conflict bool) {
	b := p.Box()
	tl := f.point(geom.Point{X: b.X1, Y: b.Y2})
	c := f.point(b.Centroid())

	stroke := boxStroke
	if conflict {
		stroke = conflictColor
	}
	fmt.Fprintf(buf, `  <rect id="label-%s" class="label" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		escapeXML(p.ID), tl.X, tl.Y, b.Width(), b.Height(), boxFill, stroke)

	if p.Text == "" {
		return
	}
	size := p.FontSize
	if size <= 0 {
		size = scene.DefaultFontSize
	}
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.1f" font-family="sans-serif" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		c.X, c.Y, size, escapeXML(p.Text))
}

func renderLeader(buf *bytes.Buffer, f frame, p scene.Placement) {
	b := p.Box()
	a := p.Anchor()
	if geom.PointWithinBox(a, b) {
		return
	}
	end, ok := geom.ClipSegment(a, b.Centroid(), b)
	if !ok {
		return
	}
	s, e := f.point(a), f.point(end)
	fmt.Fprintf(buf, `  <line class="leader" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="0.75"/>`+"\n",
		s.X, s.Y, e.X, e.Y, leaderStroke)
}

func wrapURL(buf *bytes.Buffer, url string, fn func()) {
	if url != "" {
		fmt.Fprintf(buf, `  <a href="%s" target="_blank">`+"\n", escapeXML(url))
	}
	fn()
	if url != "" {
		buf.WriteString("  </a>\n")
	}
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
