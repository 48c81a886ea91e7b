package scene

import (
	"math"
	"testing"

	"github.com/matzehuels/labelrepel/pkg/errors"
	"github.com/matzehuels/labelrepel/pkg/geom"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestTextWidth(t *testing.T) {
	tests := []struct {
		text     string
		fontSize float64
		want     float64
	}{
		{"", 12, 0},
		{"abc", 10, 16.5},
		{"Zürich", 10, 33},
		{"東京", 20, 22},
	}
	for _, tt := range tests {
		if got := TextWidth(tt.text, tt.fontSize); !approx(got, tt.want) {
			t.Errorf("TextWidth(%q, %v) = %v, want %v", tt.text, tt.fontSize, got, tt.want)
		}
	}
}

func TestLabelSize(t *testing.T) {
	tests := []struct {
		name         string
		label        Label
		fontSize     float64
		padding      float64
		wantW, wantH float64
	}{
		{"from text", Label{Text: "abcd"}, 10, 2, 4*10*0.55 + 4, 14},
		{"label font size wins", Label{Text: "ab", FontSize: 20}, 10, 1, 2*20*0.55 + 2, 22},
		{"explicit size", Label{Text: "ignored", Width: 30, Height: 8}, 10, 2, 30, 8},
		{"partial explicit size ignored", Label{Text: "a", Width: 30}, 10, 0, 5.5, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.label.Size(tt.fontSize, tt.padding)
			if !approx(w, tt.wantW) || !approx(h, tt.wantH) {
				t.Errorf("Size() = %vx%v, want %vx%v", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestSceneBoxesCentredOnAnchors(t *testing.T) {
	s := &Scene{
		Width: 100, Height: 100, FontSize: 10, Padding: 1,
		Labels: []Label{
			{Text: "ab", X: 10, Y: 20},
			{Width: 4, Height: 2, X: 50, Y: 50},
		},
	}

	boxes := s.Boxes()
	anchors := s.Anchors()
	if len(boxes) != 2 || len(anchors) != 2 {
		t.Fatalf("got %d boxes and %d anchors", len(boxes), len(anchors))
	}
	for i := range boxes {
		c := boxes[i].Centroid()
		if !approx(c.X, anchors[i].X) || !approx(c.Y, anchors[i].Y) {
			t.Errorf("box %d centred at %v, anchor %v", i, c, anchors[i])
		}
	}
	if want := (geom.Box{X1: 48, Y1: 49, X2: 52, Y2: 51}); boxes[1] != want {
		t.Errorf("explicit box = %v, want %v", boxes[1], want)
	}
}

func TestSceneBounds(t *testing.T) {
	s := &Scene{Width: 640, Height: 480}
	xlim, ylim := s.Bounds()
	if xlim != (geom.Interval{Min: 0, Max: 640}) || ylim != (geom.Interval{Min: 0, Max: 480}) {
		t.Errorf("default bounds = %v %v", xlim, ylim)
	}

	s.XLim = []float64{-10, 10}
	s.YLim = []float64{-5, 5}
	xlim, ylim = s.Bounds()
	if xlim != (geom.Interval{Min: -10, Max: 10}) || ylim != (geom.Interval{Min: -5, Max: 5}) {
		t.Errorf("explicit bounds = %v %v", xlim, ylim)
	}
}

func TestNormalize(t *testing.T) {
	s := &Scene{
		Width: 10, Height: 10,
		Labels: []Label{
			{Text: "a"},
			{Text: "b", ID: "keep-me", FontSize: 20},
			{Text: "a"},
		},
	}
	s.Normalize()

	if s.FontSize != DefaultFontSize || s.Padding != DefaultPadding {
		t.Errorf("defaults not applied: font %v padding %v", s.FontSize, s.Padding)
	}
	if s.Labels[0].FontSize != DefaultFontSize || s.Labels[1].FontSize != 20 {
		t.Errorf("label font sizes = %v, %v", s.Labels[0].FontSize, s.Labels[1].FontSize)
	}
	if s.Labels[1].ID != "keep-me" {
		t.Errorf("explicit id overwritten: %q", s.Labels[1].ID)
	}
	if s.Labels[0].ID == "" || s.Labels[0].ID == s.Labels[2].ID {
		t.Errorf("generated ids must be set and distinct: %q %q", s.Labels[0].ID, s.Labels[2].ID)
	}
	if err := errors.ValidateLabelID(s.Labels[0].ID); err != nil {
		t.Errorf("generated id is not a valid label id: %v", err)
	}

	again := &Scene{Width: 10, Height: 10, Labels: []Label{{Text: "a"}}}
	again.Normalize()
	if again.Labels[0].ID != s.Labels[0].ID {
		t.Errorf("generated ids are not stable: %q vs %q", again.Labels[0].ID, s.Labels[0].ID)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Scene {
		return &Scene{Width: 100, Height: 50, Labels: []Label{{ID: "a", Text: "A", X: 1, Y: 1}}}
	}

	tests := []struct {
		name   string
		mutate func(*Scene)
		code   errors.Code
	}{
		{"ok", func(*Scene) {}, ""},
		{"zero width", func(s *Scene) { s.Width = 0 }, errors.ErrCodeInvalidScene},
		{"negative height", func(s *Scene) { s.Height = -1 }, errors.ErrCodeInvalidScene},
		{"xlim wrong length", func(s *Scene) { s.XLim = []float64{1} }, errors.ErrCodeInvalidScene},
		{"reversed xlim", func(s *Scene) { s.XLim = []float64{5, 1} }, errors.ErrCodeInvalidBounds},
		{"infinite ylim", func(s *Scene) { s.YLim = []float64{0, math.Inf(1)} }, errors.ErrCodeInvalidBounds},
		{"negative padding", func(s *Scene) { s.Padding = -2 }, errors.ErrCodeInvalidScene},
		{"bad url", func(s *Scene) { s.Labels[0].URL = "not a url" }, errors.ErrCodeInvalidScene},
		{"script url", func(s *Scene) { s.Labels[0].URL = "javascript:alert(1)" }, errors.ErrCodeInvalidScene},
		{"empty xlim", func(s *Scene) { s.XLim = []float64{3, 3} }, errors.ErrCodeInvalidBounds},
		{"nan anchor", func(s *Scene) { s.Labels[0].X = math.NaN() }, errors.ErrCodeInvalidScene},
		{"no text or size", func(s *Scene) { s.Labels[0].Text = "" }, errors.ErrCodeInvalidScene},
		{"size without text", func(s *Scene) { s.Labels[0].Text = ""; s.Labels[0].Width = 3; s.Labels[0].Height = 2 }, ""},
		{"id with space", func(s *Scene) { s.Labels[0].ID = "a b" }, errors.ErrCodeInvalidScene},
		{"duplicate id", func(s *Scene) { s.Labels = append(s.Labels, Label{ID: "a", Text: "again"}) }, errors.ErrCodeInvalidScene},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)
			err := s.Validate()
			if tt.code == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Fatalf("Validate() = %v, want code %s", err, tt.code)
			}
		})
	}
}
