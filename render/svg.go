// SPDX-License-Identifier: MIT
// Package: roomplan/render
//
// svg.go: SVG output for a plan.

package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/roomplan/floorplan"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("render: invalid option supplied")

// Defaults.
const (
	DefaultPixelsPerUnit = 4.0
	DefaultPadding       = 10.0
)

// Option configures SVG.
type Option func(*options)

type options struct {
	ppu        float64
	padding    float64
	neighbours bool
	err        error
}

// WithPixelsPerUnit sets the drawing scale. Must be positive.
func WithPixelsPerUnit(ppu float64) Option {
	return func(o *options) {
		if math.IsNaN(ppu) || math.IsInf(ppu, 0) || ppu <= 0 {
			o.err = fmt.Errorf("%w: pixels per unit %v", ErrOptionViolation, ppu)
			return
		}
		o.ppu = ppu
	}
}

// WithNeighbours toggles drawing of neighbour quads (on by default).
func WithNeighbours(on bool) Option {
	return func(o *options) { o.neighbours = on }
}

// SVG writes plan to w.
func SVG(w io.Writer, plan floorplan.Plan, opts ...Option) error {
	o := options{ppu: DefaultPixelsPerUnit, padding: DefaultPadding, neighbours: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}

	boundary := plan.Boundary()
	c := canvas{w: w, bound: boundary.Bound(), ppu: o.ppu, pad: o.padding}
	width := (c.bound.Max[0]-c.bound.Min[0])*o.ppu + 2*o.padding
	height := (c.bound.Max[1]-c.bound.Min[1])*o.ppu + 2*o.padding

	c.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.2f %.2f">`+"\n",
		math.Ceil(width), math.Ceil(height), width, height)
	c.printf(`<polygon class="boundary" points="%s" fill="none" stroke="black" stroke-width="2"/>`+"\n", c.points(boundary))

	rooms := plan.Rooms()
	for _, r := range rooms {
		c.printf(`<g class="room" data-room="%d">`+"\n", r.ID())
		c.printf(`<polygon class="outer" points="%s" fill="#dddddd" stroke="#333333"/>`+"\n", c.points(r.OuterFootprint()))
		c.printf(`<polygon class="inner" points="%s" fill="white" stroke="#999999"/>`+"\n", c.points(r.InnerFootprint()))
		c.printf("</g>\n")
	}

	if o.neighbours {
		for _, r := range rooms {
			ns, err := plan.Neighbours(r)
			if err != nil {
				return err
			}
			for _, n := range ns {
				if n.RoomB.ID() < r.ID() {
					continue
				}
				c.printf(`<polygon class="neighbour" data-rooms="%d-%d" points="%s" fill="red" fill-opacity="0.5"/>`+"\n",
					r.ID(), n.RoomB.ID(), c.points(n.Quad()))
			}
		}
	}
	c.printf("</svg>\n")

	return c.err
}

// canvas maps plan coordinates to pixels and remembers the first write error.
type canvas struct {
	w     io.Writer
	bound orb.Bound
	ppu   float64
	pad   float64
	err   error
}

func (c *canvas) printf(format string, args ...any) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintf(c.w, format, args...)
}

func (c *canvas) points(r orb.Ring) string {
	var sb strings.Builder
	for i, p := range r {
		if i > 0 {
			sb.WriteByte(' ')
		}
		x := (p[0]-c.bound.Min[0])*c.ppu + c.pad
		y := (c.bound.Max[1]-p[1])*c.ppu + c.pad
		fmt.Fprintf(&sb, "%.2f,%.2f", x, y)
	}

	return sb.String()
}
