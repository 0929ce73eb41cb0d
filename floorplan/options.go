// SPDX-License-Identifier: MIT
// Package: roomplan/floorplan
//
// options.go: functional options and deterministic defaults.
//
// Invalid option values are recorded in the config and surfaced by New as
// ErrOptionViolation; options themselves never panic.

package floorplan

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/roomplan/clip"
)

// Deterministic defaults. DefaultFacingDot is cos(175°).
const (
	DefaultSafetyMargin         = 0.01
	DefaultMaxNeighbourDistance = 1.0
	DefaultFacingDot            = -0.99619469809
	DefaultMinSegmentLength     = 0.05
	DefaultMinWallSectionLength = 0.2
	DefaultBoundaryTolerance    = 0.1
	DefaultScale                = clip.DefaultScale
)

const (
	degenerateArea          = 1e-6
	sideTestEpsilon         = 1.1920929e-07
	minimumSideTestsOutside = 3
)

// EngineFactory returns a fresh Boolean engine. It is called once per Add or
// TestRoom so engine state never outlives a single operation.
type EngineFactory func() clip.Engine

// Option configures a Floorplan.
type Option func(*config)

type config struct {
	safetyMargin      float64
	maxDistance       float64
	facingDot         float64
	minSegment        float64
	minWallSection    float64
	boundaryTolerance float64
	scale             float64
	engine            EngineFactory
	logger            *slog.Logger

	err error
}

func newConfig(opts ...Option) config {
	cfg := config{
		safetyMargin:      DefaultSafetyMargin,
		maxDistance:       DefaultMaxNeighbourDistance,
		facingDot:         DefaultFacingDot,
		minSegment:        DefaultMinSegmentLength,
		minWallSection:    DefaultMinWallSectionLength,
		boundaryTolerance: DefaultBoundaryTolerance,
		scale:             DefaultScale,
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.engine == nil && cfg.err == nil {
		// Context keeps no state between operations, so one is shared.
		c, err := clip.NewContext(cfg.scale)
		if err != nil {
			cfg.err = fmt.Errorf("%w: %w", ErrOptionViolation, err)
			return cfg
		}
		cfg.engine = func() clip.Engine { return c }
	}

	return cfg
}

func (c *config) violate(name string, v any) {
	if c.err == nil {
		c.err = fmt.Errorf("%w: %s(%v)", ErrOptionViolation, name, v)
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// WithSafetyMargin sets the inward shrink applied to every placed room so
// adjacent rooms never touch exactly. Must be finite and non-negative.
func WithSafetyMargin(d float64) Option {
	return func(c *config) {
		if !finite(d) || d < 0 {
			c.violate("WithSafetyMargin", d)
			return
		}
		c.safetyMargin = d
	}
}

// WithMaxNeighbourDistance sets how far apart two facing walls may be and
// still count as neighbours. Must be positive.
func WithMaxNeighbourDistance(d float64) Option {
	return func(c *config) {
		if !finite(d) || d <= 0 {
			c.violate("WithMaxNeighbourDistance", d)
			return
		}
		c.maxDistance = d
	}
}

// WithFacingDot sets the threshold below which the dot product of two edge
// normals marks the edges as facing. Must lie in [-1, 0).
func WithFacingDot(dot float64) Option {
	return func(c *config) {
		if !finite(dot) || dot < -1 || dot >= 0 {
			c.violate("WithFacingDot", dot)
			return
		}
		c.facingDot = dot
	}
}

// WithMinSegmentLength sets the shortest shared stretch kept as a Neighbour.
func WithMinSegmentLength(d float64) Option {
	return func(c *config) {
		if !finite(d) || d < 0 {
			c.violate("WithMinSegmentLength", d)
			return
		}
		c.minSegment = d
	}
}

// WithMinWallSectionLength sets the shortest uncovered gap emitted as an
// external wall section.
func WithMinWallSectionLength(d float64) Option {
	return func(c *config) {
		if !finite(d) || d < 0 {
			c.violate("WithMinWallSectionLength", d)
			return
		}
		c.minWallSection = d
	}
}

// WithBoundaryTolerance sets how close a wall section's midpoint must be to
// the floor boundary to be flagged OnBoundary.
func WithBoundaryTolerance(d float64) Option {
	return func(c *config) {
		if !finite(d) || d < 0 {
			c.violate("WithBoundaryTolerance", d)
			return
		}
		c.boundaryTolerance = d
	}
}

// WithScale sets the fixed-point multiplier used by the Boolean engine.
func WithScale(s float64) Option {
	return func(c *config) {
		if !finite(s) || s <= 0 {
			c.violate("WithScale", s)
			return
		}
		c.scale = s
	}
}

// WithEngine replaces the Clipper-backed Boolean engine.
func WithEngine(f EngineFactory) Option {
	return func(c *config) {
		if f == nil {
			c.violate("WithEngine", "nil")
			return
		}
		c.engine = f
	}
}

// WithLogger routes debug records (rejections, added rooms, recomputes) to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l == nil {
			c.violate("WithLogger", "nil")
			return
		}
		c.logger = l
	}
}
