package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/matzehuels/labelrepel/pkg/buildinfo"
	"github.com/matzehuels/labelrepel/pkg/errors"
	"github.com/matzehuels/labelrepel/pkg/pipeline"
	"github.com/matzehuels/labelrepel/pkg/scene"
)

// MaxIterLimit bounds the iteration cap a client may request.
const MaxIterLimit = 1_000_000

// RepelRequest is a scene plus the engine parameters to solve it with.
type RepelRequest struct {
	scene.Scene
	Force     float64 `json:"force,omitempty"`
	MaxIter   int     `json:"max_iter,omitempty"`
	Seed      uint64  `json:"seed,omitempty"`
	Randomize bool    `json:"randomize,omitempty"`
}

// HealthResponse is returned by /healthz.
type HealthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
	Uptime string         `json:"uptime"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Build:  buildinfo.Get(),
		Uptime: time.Since(s.started).Round(time.Second).String(),
	})
}

func (s *Server) handleRepel(w http.ResponseWriter, r *http.Request) {
	var req RepelRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err := dec.Decode(&req); err != nil {
		s.respondError(w, decodeError(err, "decode scene"))
		return
	}

	if req.MaxIter > MaxIterLimit {
		s.respondError(w, errors.New(errors.ErrCodeInvalidInput, "max_iter must be at most %d, got %d", MaxIterLimit, req.MaxIter))
		return
	}

	sc := &req.Scene
	if err := sc.Validate(); err != nil {
		s.respondError(w, err)
		return
	}
	sc.Normalize()

	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatJSON
	}
	opts := pipeline.Options{
		Force:     req.Force,
		MaxIter:   req.MaxIter,
		Seed:      req.Seed,
		Randomize: req.Randomize,
		Formats:   []string{format},
	}
	if err := renderOptions(r, &opts); err != nil {
		s.respondError(w, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), sc, opts)
	if err != nil {
		s.respondError(w, err)
		return
	}

	w.Header().Set("X-Cache", cacheHeader(res.CacheInfo.LayoutHit))
	w.Header().Set("X-Repel-State", res.Layout.State)
	w.Header().Set("X-Repel-Iterations", strconv.Itoa(res.Layout.Iterations))
	s.respondBytes(w, contentType(format), res.Artifacts[format])
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		s.respondError(w, err)
		return
	}
	l, err := scene.UnmarshalLayout(data)
	if err != nil {
		s.respondError(w, err)
		return
	}

	opts := pipeline.Options{Formats: []string{pipeline.FormatSVG}}
	if err := renderOptions(r, &opts); err != nil {
		s.respondError(w, err)
		return
	}

	artifacts, hit, err := s.runner.RenderWithCacheInfo(r.Context(), l, opts)
	if err != nil {
		s.respondError(w, err)
		return
	}
	w.Header().Set("X-Cache", cacheHeader(hit))
	s.respondBytes(w, contentType(pipeline.FormatSVG), artifacts[pipeline.FormatSVG])
}

// renderOptions reads the anchors, leaders and conflicts query flags.
func renderOptions(r *http.Request, opts *pipeline.Options) error {
	q := r.URL.Query()
	for name, dst := range map[string]*bool{
		"anchors":   &opts.Anchors,
		"leaders":   &opts.Leaders,
		"conflicts": &opts.Conflicts,
	} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidInput, "query parameter %s must be a boolean, got %q", name, v)
		}
		*dst = b
	}
	return nil
}

func decodeError(err error, msg string) error {
	return errors.Wrap(errors.ErrCodeInvalidInput, err, "%s", msg)
}

func contentType(format string) string {
	if format == pipeline.FormatSVG {
		return "image/svg+xml"
	}
	return "application/json"
}
