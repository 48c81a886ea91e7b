package scene

import (
	"encoding/json"
	"os"

	"github.com/matzehuels/labelrepel/pkg/errors"
	"github.com/matzehuels/labelrepel/pkg/geom"
	"github.com/matzehuels/labelrepel/pkg/repel"
)

// Layout is a solved scene.
type Layout struct {
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	XLim   [2]float64 `json:"xlim"`
	YLim   [2]float64 `json:"ylim"`

	// Run diagnostics.
	State      string  `json:"state"`
	Iterations int     `json:"iterations"`
	Force      float64 `json:"force"`
	MaxForceX  float64 `json:"max_force_x"`
	MaxForceY  float64 `json:"max_force_y"`
	Seed       uint64  `json:"seed,omitempty"`

	Placements []Placement `json:"placements"`

	// Conflicts lists interactions left unresolved when the run stopped.
	Conflicts []Conflict `json:"conflicts,omitempty"`
}

// Placement is the final position of one label.
type Placement struct {
	ID       string  `json:"id"`
	Text     string  `json:"text,omitempty"`
	AnchorX  float64 `json:"anchor_x"`
	AnchorY  float64 `json:"anchor_y"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	X1       float64 `json:"x1"`
	Y1       float64 `json:"y1"`
	X2       float64 `json:"x2"`
	Y2       float64 `json:"y2"`
	FontSize float64 `json:"font_size,omitempty"`
	URL      string  `json:"url,omitempty"`
}

// Conflict names two labels the engine could not separate. For an anchor
// conflict, A's box covers B's anchor. A label covering only its own anchor
// is not a conflict.
type Conflict struct {
	Kind string `json:"kind"`
	A    string `json:"a"`
	B    string `json:"b"`
}

// Box returns the placement's box.
func (p Placement) Box() geom.Box {
	return geom.Box{X1: p.X1, Y1: p.Y1, X2: p.X2, Y2: p.Y2}
}

// Anchor returns the placement's anchor.
func (p Placement) Anchor() geom.Point {
	return geom.Point{X: p.AnchorX, Y: p.AnchorY}
}

// Converged reports whether the run ended without overlaps.
func (l *Layout) Converged() bool {
	return l.State == repel.Converged.String()
}

// BuildLayout combines a scene with the engine result for its boxes.
// res must come from running s.Boxes() with s.Anchors().
func BuildLayout(s *Scene, res *repel.Result, seed uint64) Layout {
	xlim, ylim := s.Bounds()
	l := Layout{
		Width:      s.Width,
		Height:     s.Height,
		XLim:       [2]float64{xlim.Min, xlim.Max},
		YLim:       [2]float64{ylim.Min, ylim.Max},
		State:      res.State.String(),
		Iterations: res.Iterations,
		Force:      res.Force,
		MaxForceX:  res.MaxForce.X,
		MaxForceY:  res.MaxForce.Y,
		Seed:       seed,
		Placements: make([]Placement, len(s.Labels)),
	}

	for i, lb := range s.Labels {
		b := res.Boxes[i]
		l.Placements[i] = Placement{
			ID:       lb.ID,
			Text:     lb.Text,
			AnchorX:  lb.X,
			AnchorY:  lb.Y,
			X:        res.X[i],
			Y:        res.Y[i],
			X1:       b.X1,
			Y1:       b.Y1,
			X2:       b.X2,
			Y2:       b.Y2,
			FontSize: lb.FontSize,
			URL:      lb.URL,
		}
	}

	for _, c := range res.Conflicts() {
		if !c.Between() {
			continue
		}
		l.Conflicts = append(l.Conflicts, Conflict{
			Kind: string(c.Kind),
			A:    s.Labels[c.I].ID,
			B:    s.Labels[c.J].ID,
		})
	}
	return l
}

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout and checks that the
// placements are well formed.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidLayout, err, "unmarshal layout")
	}

	if _, ok := repel.ParseState(l.State); !ok {
		return Layout{}, errors.New(errors.ErrCodeInvalidLayout, "unknown state %q", l.State)
	}
	for i, p := range l.Placements {
		if !p.Box().Valid() {
			return Layout{}, errors.New(errors.ErrCodeInvalidLayout, "placement %d (%s) has a malformed box", i, p.ID)
		}
	}
	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Layout{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout %s", path)
		}
		return Layout{}, err
	}
	return UnmarshalLayout(data)
}
