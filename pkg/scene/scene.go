package scene

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/matzehuels/labelrepel/pkg/geom"
)

const (
	// DefaultFontSize is the font size used when neither the scene nor the
	// label sets one.
	DefaultFontSize = 12.0

	// DefaultPadding is the space added around the text on every side.
	DefaultPadding = 2.0

	// charWidth approximates the advance of one character as a fraction of
	// the font size.
	charWidth = 0.55
)

// idNamespace seeds the name-based UUIDs given to labels without an id.
var idNamespace = uuid.MustParse("6f1c8a52-3d1e-4c8b-9a57-2b1f0e4d7c90")

// Scene is a label placement problem.
type Scene struct {
	// Width and Height give the frame. Bounds default to [0,Width]×[0,Height].
	Width  float64 `json:"width" toml:"width" yaml:"width" validate:"gt=0"`
	Height float64 `json:"height" toml:"height" yaml:"height" validate:"gt=0"`

	// XLim and YLim override the bounds when set.
	XLim []float64 `json:"xlim,omitempty" toml:"xlim,omitempty" yaml:"xlim,omitempty" validate:"omitempty,len=2"`
	YLim []float64 `json:"ylim,omitempty" toml:"ylim,omitempty" yaml:"ylim,omitempty" validate:"omitempty,len=2"`

	FontSize float64 `json:"font_size,omitempty" toml:"font_size,omitempty" yaml:"font_size,omitempty" validate:"gte=0"`
	Padding  float64 `json:"padding,omitempty" toml:"padding,omitempty" yaml:"padding,omitempty" validate:"gte=0"`

	Labels []Label `json:"labels" toml:"labels" yaml:"labels" validate:"dive"`
}

// Label is a piece of text attached to an anchor point.
type Label struct {
	ID   string  `json:"id,omitempty" toml:"id,omitempty" yaml:"id,omitempty" validate:"omitempty,max=256"`
	Text string  `json:"text" toml:"text" yaml:"text"`
	X    float64 `json:"x" toml:"x" yaml:"x"`
	Y    float64 `json:"y" toml:"y" yaml:"y"`

	// Width and Height, when both set, replace the size estimated from Text.
	Width  float64 `json:"width,omitempty" toml:"width,omitempty" yaml:"width,omitempty" validate:"gte=0"`
	Height float64 `json:"height,omitempty" toml:"height,omitempty" yaml:"height,omitempty" validate:"gte=0"`

	FontSize float64 `json:"font_size,omitempty" toml:"font_size,omitempty" yaml:"font_size,omitempty" validate:"gte=0"`
	URL      string  `json:"url,omitempty" toml:"url,omitempty" yaml:"url,omitempty" validate:"omitempty,url"`
}

// TextWidth estimates the rendered width of text at the given font size.
func TextWidth(text string, fontSize float64) float64 {
	return float64(utf8.RuneCountInString(text)) * fontSize * charWidth
}

// Normalize fills in defaults: scene and label font sizes, padding, and
// ids for labels that have none. Generated ids are derived from the label's
// position in the scene and its text, so normalizing the same scene twice
// yields the same ids.
func (s *Scene) Normalize() {
	if s.FontSize == 0 {
		s.FontSize = DefaultFontSize
	}
	if s.Padding == 0 {
		s.Padding = DefaultPadding
	}
	for i := range s.Labels {
		l := &s.Labels[i]
		if l.FontSize == 0 {
			l.FontSize = s.FontSize
		}
		if l.ID == "" {
			name := fmt.Sprintf("%d\x00%s", i, l.Text)
			l.ID = uuid.NewSHA1(idNamespace, []byte(name)).String()
		}
	}
}

// Bounds returns the region boxes must stay in.
func (s *Scene) Bounds() (xlim, ylim geom.Interval) {
	xlim = geom.Interval{Min: 0, Max: s.Width}
	ylim = geom.Interval{Min: 0, Max: s.Height}
	if len(s.XLim) == 2 {
		xlim = geom.Interval{Min: s.XLim[0], Max: s.XLim[1]}
	}
	if len(s.YLim) == 2 {
		ylim = geom.Interval{Min: s.YLim[0], Max: s.YLim[1]}
	}
	return xlim, ylim
}

// Size returns the box size of l given the scene padding. fontSize is used
// when the label has none of its own.
func (l Label) Size(fontSize, padding float64) (w, h float64) {
	if l.Width > 0 && l.Height > 0 {
		return l.Width, l.Height
	}
	if l.FontSize > 0 {
		fontSize = l.FontSize
	}
	return TextWidth(l.Text, fontSize) + 2*padding, fontSize + 2*padding
}

// Anchor returns the label's anchor point.
func (l Label) Anchor() geom.Point {
	return geom.Point{X: l.X, Y: l.Y}
}

// Boxes returns one box per label, centred on its anchor.
func (s *Scene) Boxes() []geom.Box {
	boxes := make([]geom.Box, len(s.Labels))
	for i, l := range s.Labels {
		w, h := l.Size(s.fontSize(), s.padding())
		boxes[i] = geom.BoxAround(l.Anchor(), w, h)
	}
	return boxes
}

// Anchors returns the anchor of every label.
func (s *Scene) Anchors() []geom.Point {
	anchors := make([]geom.Point, len(s.Labels))
	for i, l := range s.Labels {
		anchors[i] = l.Anchor()
	}
	return anchors
}

func (s *Scene) fontSize() float64 {
	if s.FontSize > 0 {
		return s.FontSize
	}
	return DefaultFontSize
}

func (s *Scene) padding() float64 {
	if s.Padding > 0 {
		return s.Padding
	}
	return DefaultPadding
}
