// SPDX-License-Identifier: MIT
// Package: roomplan/layout
//
// layout.go: YAML document model, decoding and replay onto a Floorplan.

package layout

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roomplan/floorplan"
)

var (
	// ErrNoBoundary is returned for a document without a boundary.
	ErrNoBoundary = errors.New("layout: document has no boundary")

	// ErrBadPoint is returned for a coordinate that is not an [x, y] pair.
	ErrBadPoint = errors.New("layout: point must have exactly two coordinates")
)

// Document is a decoded layout file.
type Document struct {
	Boundary [][]float64 `yaml:"boundary"`
	Settings Settings    `yaml:"settings,omitempty"`
	Rooms    []RoomSpec  `yaml:"rooms"`
}

// Settings overrides floorplan defaults. Unset fields keep the defaults.
type Settings struct {
	SafetyMargin         *float64 `yaml:"safety_margin,omitempty"`
	MaxNeighbourDistance *float64 `yaml:"max_neighbour_distance,omitempty"`
	MinSegmentLength     *float64 `yaml:"min_segment_length,omitempty"`
	MinWallSectionLength *float64 `yaml:"min_wall_section_length,omitempty"`
	BoundaryTolerance    *float64 `yaml:"boundary_tolerance,omitempty"`
}

// RoomSpec is one room request.
type RoomSpec struct {
	Name          string      `yaml:"name"`
	Footprint     [][]float64 `yaml:"footprint"`
	WallThickness float64     `yaml:"wall_thickness"`
	AllowSplit    bool        `yaml:"allow_split,omitempty"`
}

// Decode reads a Document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("layout: decode: %w", err)
	}
	if len(doc.Boundary) == 0 {
		return nil, ErrNoBoundary
	}

	return &doc, nil
}

// Load decodes the layout file at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Ring converts a list of [x, y] pairs to an orb.Ring.
func Ring(points [][]float64) (orb.Ring, error) {
	r := make(orb.Ring, len(points))
	for i, p := range points {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: point %d has %d", ErrBadPoint, i, len(p))
		}
		r[i] = orb.Point{p[0], p[1]}
	}

	return r, nil
}

// Options returns the floorplan options selected by s.
func (s Settings) Options() []floorplan.Option {
	var opts []floorplan.Option
	if s.SafetyMargin != nil {
		opts = append(opts, floorplan.WithSafetyMargin(*s.SafetyMargin))
	}
	if s.MaxNeighbourDistance != nil {
		opts = append(opts, floorplan.WithMaxNeighbourDistance(*s.MaxNeighbourDistance))
	}
	if s.MinSegmentLength != nil {
		opts = append(opts, floorplan.WithMinSegmentLength(*s.MinSegmentLength))
	}
	if s.MinWallSectionLength != nil {
		opts = append(opts, floorplan.WithMinWallSectionLength(*s.MinWallSectionLength))
	}
	if s.BoundaryTolerance != nil {
		opts = append(opts, floorplan.WithBoundaryTolerance(*s.BoundaryTolerance))
	}

	return opts
}

// Build creates a Floorplan from doc and adds every room to it. Options in
// opts are applied after the document's settings. The returned map holds
// the rooms built for each named request; requests that produced nothing
// map to an empty slice.
func Build(doc *Document, opts ...floorplan.Option) (*floorplan.Floorplan, map[string][]*floorplan.Room, error) {
	if doc == nil || len(doc.Boundary) == 0 {
		return nil, nil, ErrNoBoundary
	}
	boundary, err := Ring(doc.Boundary)
	if err != nil {
		return nil, nil, fmt.Errorf("boundary: %w", err)
	}
	plan, err := floorplan.New(boundary, append(doc.Settings.Options(), opts...)...)
	if err != nil {
		return nil, nil, err
	}
	byName, err := Apply(plan, doc.Rooms)
	if err != nil {
		return nil, nil, err
	}

	return plan, byName, nil
}

// Apply adds rooms to plan in order. Unnamed requests are keyed by their
// index ("#3"); a repeated name accumulates rooms under the same key.
func Apply(plan *floorplan.Floorplan, rooms []RoomSpec) (map[string][]*floorplan.Room, error) {
	byName := make(map[string][]*floorplan.Room, len(rooms))
	for i, spec := range rooms {
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		fp, err := Ring(spec.Footprint)
		if err != nil {
			return nil, fmt.Errorf("room %s: %w", name, err)
		}
		built, err := plan.Add(fp, spec.WallThickness, spec.AllowSplit)
		if err != nil {
			return nil, fmt.Errorf("room %s: %w", name, err)
		}
		byName[name] = append(byName[name], built...)
		if byName[name] == nil {
			byName[name] = []*floorplan.Room{}
		}
	}

	return byName, nil
}
