// Package pipeline provides the scene → layout → render pipeline shared by
// the CLI and the HTTP server.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: size a box for every label and run the repulsion engine
//  2. Render: produce output artifacts (SVG, JSON) from the layout
//
// Each stage can be run independently or as part of the complete pipeline,
// and both are cached when the run is reproducible.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	s, _ := scene.ReadFile("cities.toml")
//	result, err := runner.Execute(ctx, s, pipeline.Options{Formats: []string{"svg"}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/labelrepel/pkg/cache"
	"github.com/matzehuels/labelrepel/pkg/errors"
	"github.com/matzehuels/labelrepel/pkg/repel"
	"github.com/matzehuels/labelrepel/pkg/scene"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultForce is the default engine force strength.
	DefaultForce = repel.DefaultForce

	// DefaultMaxIter is the default engine iteration cap.
	DefaultMaxIter = repel.DefaultMaxIter

	// DefaultSeed is the default jitter seed for reproducibility.
	DefaultSeed = uint64(42)
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options
	Force     float64 `json:"force,omitempty"`
	MaxIter   int     `json:"max_iter,omitempty"`
	Seed      uint64  `json:"seed,omitempty"`
	Randomize bool    `json:"randomize,omitempty"` // Seed from the clock; results are not cached
	Refresh   bool    `json:"refresh,omitempty"`   // Ignore cached layouts

	// Render options
	Formats   []string `json:"formats,omitempty"`
	Anchors   bool     `json:"anchors,omitempty"`
	Leaders   bool     `json:"leaders,omitempty"`
	Conflicts bool     `json:"conflicts,omitempty"`

	// Runtime options (not serialized)
	Logger   *log.Logger           `json:"-"`
	Observer func(repel.Iteration) `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the solved scene.
	Layout scene.Layout

	// LayoutHash is the content hash of the layout.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Labels     int
	Iterations int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults for the full pipeline and checks
// the result. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation. A
// randomized run draws its seed from the clock here, so the seed that was
// actually used ends up in the layout.
func (o *Options) SetLayoutDefaults() {
	if o.Force == 0 || math.IsNaN(o.Force) {
		o.Force = DefaultForce
	}
	if o.MaxIter == 0 {
		o.MaxIter = DefaultMaxIter
	}
	if o.Randomize && o.Seed == 0 {
		o.Seed = uint64(time.Now().UnixNano())
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if o.Force < 0 || math.IsInf(o.Force, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "force must be a positive number, got %g", o.Force)
	}
	if o.MaxIter < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max_iter must not be negative, got %d", o.MaxIter)
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// Cacheable reports whether layouts computed with these options may be
// cached. Randomized runs are never cached.
func (o *Options) Cacheable() bool {
	return !o.Randomize
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Force:   o.Force,
		MaxIter: o.MaxIter,
		Seed:    o.Seed,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:    format,
		Anchors:   o.Anchors,
		Leaders:   o.Leaders,
		Conflicts: o.Conflicts,
	}
}
