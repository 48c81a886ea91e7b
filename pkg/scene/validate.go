package scene

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/labelrepel/pkg/errors"
)

// validate is the shared validator instance; it caches struct metadata.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks struct constraints and the semantic rules the tags cannot
// express: finite coordinates, ordered bounds, unique valid ids, and a
// non-empty text or explicit size for every label.
func (s *Scene) Validate() error {
	if err := validate.Struct(s); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidScene, formatValidationError(err), "invalid scene")
	}

	xlim, ylim := s.Bounds()
	if xlim.Span() <= 0 || ylim.Span() <= 0 || !finite(xlim.Min, xlim.Max, ylim.Min, ylim.Max) {
		return errors.New(errors.ErrCodeInvalidBounds, "bounds must be finite with min < max, got x=[%g, %g] y=[%g, %g]",
			xlim.Min, xlim.Max, ylim.Min, ylim.Max)
	}

	seen := make(map[string]int, len(s.Labels))
	for i, l := range s.Labels {
		if !finite(l.X, l.Y, l.Width, l.Height, l.FontSize) {
			return errors.New(errors.ErrCodeInvalidScene, "label %d: coordinates and sizes must be finite", i)
		}
		if l.Text == "" && (l.Width == 0 || l.Height == 0) {
			return errors.New(errors.ErrCodeInvalidScene, "label %d: text or an explicit width and height is required", i)
		}
		if l.URL != "" {
			if err := errors.ValidateURL(l.URL); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidScene, err, "label %d", i)
			}
		}
		if l.ID == "" {
			continue
		}
		if err := errors.ValidateLabelID(l.ID); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "label %d", i)
		}
		if j, dup := seen[l.ID]; dup {
			return errors.New(errors.ErrCodeInvalidScene, "labels %d and %d share id %q", j, i, l.ID)
		}
		seen[l.ID] = i
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// formatValidationError turns the first validator failure into a short
// field-level message.
func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	for _, e := range validationErrs {
		field := e.Namespace()
		switch e.Tag() {
		case "gt":
			return fmt.Errorf("%s: must be greater than %s", field, e.Param())
		case "gte":
			return fmt.Errorf("%s: must be at least %s", field, e.Param())
		case "len":
			return fmt.Errorf("%s: must have exactly %s elements", field, e.Param())
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, e.Param())
		case "url":
			return fmt.Errorf("%s: must be a valid URL", field)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}
	return err
}
