// SPDX-License-Identifier: MIT

package clip_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomplan/clip"
	"github.com/katalvlaran/roomplan/geom"
)

func rect(minX, minY, maxX, maxY float64) orb.Ring {
	return orb.Ring{{minX, minY}, {minX, maxY}, {maxX, maxY}, {maxX, minY}}
}

func newContext(t *testing.T) *clip.Context {
	t.Helper()
	c, err := clip.NewContext(clip.DefaultScale)
	require.NoError(t, err)

	return c
}

func TestNewContext_BadScale(t *testing.T) {
	for _, s := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := clip.NewContext(s)
		assert.ErrorIs(t, err, clip.ErrBadScale)
	}
}

func TestIntersect(t *testing.T) {
	c := newContext(t)

	out, err := c.Intersect(rect(-10, -10, 10, 10), rect(0, -5, 20, 5))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.InDelta(t, 100, geom.Area(out[0]), 1e-6)
	assert.True(t, geom.IsClockwise(out[0]))

	out, err = c.Intersect(rect(-10, -10, 10, 10), rect(50, 50, 60, 60))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestIntersect_EitherWinding(t *testing.T) {
	c := newContext(t)
	ccw := rect(0, -5, 20, 5)
	ccw.Reverse()

	out, err := c.Intersect(rect(-10, -10, 10, 10), ccw)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.InDelta(t, 100, geom.Area(out[0]), 1e-6)
}

func TestIntersect_EmptyPath(t *testing.T) {
	c := newContext(t)
	_, err := c.Intersect(orb.Ring{{0, 0}, {1, 1}}, rect(0, 0, 1, 1))
	assert.ErrorIs(t, err, clip.ErrEmptyPath)
}

func TestDifference(t *testing.T) {
	cases := []struct {
		name    string
		clips   []orb.Ring
		regions int
		area    float64
		holed   bool
	}{
		{"Disjoint", []orb.Ring{rect(50, 50, 60, 60)}, 1, 400, false},
		{"Strip", []orb.Ring{rect(-1, -20, 1, 20)}, 2, 360, false},
		{"Hole", []orb.Ring{rect(-2, -2, 2, 2)}, 1, 400, true},
		{"Covered", []orb.Ring{rect(-20, -20, 20, 20)}, 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newContext(t)
			out, holed, err := c.Difference(rect(-10, -10, 10, 10), tc.clips)
			require.NoError(t, err)
			assert.Equal(t, tc.holed, holed)
			require.Len(t, out, tc.regions)

			total := 0.0
			for _, r := range out {
				assert.True(t, geom.IsClockwise(r))
				total += geom.Area(r)
			}
			assert.InDelta(t, tc.area, total, 1e-6)
		})
	}
}

func TestContext_ReuseDoesNotLeak(t *testing.T) {
	c := newContext(t)
	square := rect(-10, -10, 10, 10)

	_, _, err := c.Difference(square, []orb.Ring{rect(-1, -20, 1, 20)})
	require.NoError(t, err)

	// Disjoint inputs: any edge left over from the previous call would
	// surface as a non-empty result here.
	out, err := c.Intersect(square, rect(20, 20, 30, 30))
	require.NoError(t, err)
	assert.Empty(t, out)

	// The earlier strip must not be subtracted again.
	left, holed, err := c.Difference(square, []orb.Ring{rect(-10, -10, 0, 10)})
	require.NoError(t, err)
	assert.False(t, holed)
	require.Len(t, left, 1)
	assert.InDelta(t, 200, geom.Area(left[0]), 1e-6)
	assert.InDelta(t, 0, left[0].Bound().Min.X(), 1e-9)

	out, err = c.Intersect(square, square)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.InDelta(t, 400, geom.Area(out[0]), 1e-6)
}

func TestShrink(t *testing.T) {
	out, err := clip.Shrink(rect(-10, -10, 10, 10), 1, clip.DefaultScale)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.InDelta(t, 324, geom.Area(out[0]), 1e-6)
	assert.True(t, geom.IsClockwise(out[0]))

	out, err = clip.Shrink(rect(-10, -10, 10, 10), 11, clip.DefaultScale)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestShrink_SplitsDumbbell(t *testing.T) {
	dumbbell := orb.Ring{
		{0, 0}, {0, 10}, {10, 10}, {10, 5.5}, {20, 5.5}, {20, 10},
		{30, 10}, {30, 0}, {20, 0}, {20, 4.5}, {10, 4.5}, {10, 0},
	}
	out, err := clip.Shrink(dumbbell, 1, clip.DefaultScale)
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, r := range out {
		assert.InDelta(t, 64, geom.Area(r), 1)
	}

	_, idx := geom.Largest(out)
	assert.GreaterOrEqual(t, idx, 0)
}

func TestShrink_Errors(t *testing.T) {
	_, err := clip.Shrink(rect(0, 0, 1, 1), 0.1, 0)
	assert.ErrorIs(t, err, clip.ErrBadScale)

	_, err = clip.Shrink(orb.Ring{{0, 0}}, 0.1, clip.DefaultScale)
	assert.ErrorIs(t, err, clip.ErrEmptyPath)
}

func TestQuantize(t *testing.T) {
	q := clip.Quantize(orb.Ring{{0.123456789, -0.000004}}, clip.DefaultScale)
	assert.InDelta(t, 0.12346, q[0][0], 1e-12)
	assert.InDelta(t, 0, q[0][1], 1e-12)
}
