// SPDX-License-Identifier: MIT

package spherical_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/origami/spherical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// TestSolveTriangleAngles_Degenerate covers the zero-side shortcuts and the
// self-dual octant triangle.
func TestSolveTriangleAngles_Degenerate(t *testing.T) {
	cases := []struct {
		name    string
		a, b, c float64
		want    [3]float64
	}{
		{"a zero", 0, 10, 10, [3]float64{0, 90, 90}},
		{"b zero", 10, 0, 10, [3]float64{90, 0, 90}},
		{"c zero", 10, 10, 0, [3]float64{90, 90, 0}},
		{"all zero", 0, 0, 0, [3]float64{60, 60, 60}},
		{"octant", 90, 90, 90, [3]float64{90, 90, 90}},
		{"great circle", 120, 120, 120, [3]float64{180, 180, 180}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			A, B, C, err := spherical.SolveTriangleAngles(tc.a, tc.b, tc.c)
			require.NoError(t, err)
			assert.InDelta(t, tc.want[0], A, eps)
			assert.InDelta(t, tc.want[1], B, eps)
			assert.InDelta(t, tc.want[2], C, eps)
		})
	}
}

// TestSolveTriangleAngles_Inequality ensures infeasible sides are reported,
// not solved.
func TestSolveTriangleAngles_Inequality(t *testing.T) {
	for _, sides := range [][3]float64{
		{10, 20, 40},
		{40, 10, 20},
		{20, 40, 10},
		{170, 170, 170},
	} {
		_, _, _, err := spherical.SolveTriangleAngles(sides[0], sides[1], sides[2])
		assert.ErrorIs(t, err, spherical.ErrTriangleInequality, "sides %v", sides)
		assert.False(t, spherical.Feasible(sides[0], sides[1], sides[2]))
	}

	// Inside the slack the equality case is accepted.
	_, _, _, err := spherical.SolveTriangleAngles(30, 10, 20+1e-9)
	assert.NoError(t, err)
}

// TestFindOppositeSide_Known checks the fixed points listed for the octant.
func TestFindOppositeSide_Known(t *testing.T) {
	assert.InDelta(t, 90.0, spherical.FindOppositeSide(90, 90, 90), eps)
	assert.InDelta(t, 0.0, spherical.FindOppositeSide(0, 90, 90), eps)
	assert.InDelta(t, 180.0, spherical.FindOppositeSide(180, 90, 90), eps)

	// zero adjacent side short-circuits to the other side
	assert.Equal(t, 35.0, spherical.FindOppositeSide(123, 0, 35))
	assert.Equal(t, 35.0, spherical.FindOppositeSide(123, 35, 0))
}

// TestRoundTrip verifies that FindOppositeSide inverts SolveTriangleAngles.
func TestRoundTrip(t *testing.T) {
	triangles := [][3]float64{
		{30, 40, 50},
		{60, 70, 80},
		{10, 100, 95},
		{45, 45, 60},
		{100, 120, 130},
	}
	for _, s := range triangles {
		a, b, c := s[0], s[1], s[2]
		A, B, C, err := spherical.SolveTriangleAngles(a, b, c)
		require.NoError(t, err)

		assert.InDelta(t, a, spherical.FindOppositeSide(A, b, c), eps, "a of %v", s)
		assert.InDelta(t, b, spherical.FindOppositeSide(B, c, a), eps, "b of %v", s)
		assert.InDelta(t, c, spherical.FindOppositeSide(C, a, b), eps, "c of %v", s)
		assert.NoError(t, spherical.CheckLawOfSines(a, b, c, A, B, C))
	}
}

// TestCheckLawOfSines_Detects a deliberately wrong angle triple.
func TestCheckLawOfSines_Detects(t *testing.T) {
	A, B, C, err := spherical.SolveTriangleAngles(30, 40, 50)
	require.NoError(t, err)
	err = spherical.CheckLawOfSines(30, 40, 50, A+5, B, C)
	assert.ErrorIs(t, err, spherical.ErrLawOfSines)
}

// TestTolerances_Validate rejects nonsensical thresholds.
func TestTolerances_Validate(t *testing.T) {
	assert.NoError(t, spherical.DefaultTolerances().Validate())

	tol := spherical.DefaultTolerances()
	tol.Zero = -1
	assert.ErrorIs(t, tol.Validate(), spherical.ErrTolerance)

	tol = spherical.DefaultTolerances()
	tol.Consistency = math.NaN()
	assert.ErrorIs(t, tol.Validate(), spherical.ErrTolerance)
}

func TestSameAngleAndNormalize(t *testing.T) {
	tol := spherical.DefaultTolerances()
	assert.True(t, tol.SameAngle(0, 360))
	assert.True(t, tol.SameAngle(359.9999999999, 0))
	assert.False(t, tol.SameAngle(10, 20))

	assert.Equal(t, 0.0, spherical.Normalize(360))
	assert.Equal(t, 350.0, spherical.Normalize(-10))
	assert.Equal(t, 90.0, spherical.Normalize(450))
	assert.Equal(t, 0.0, spherical.Normalize(-1e-18))
}
