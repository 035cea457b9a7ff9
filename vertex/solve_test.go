// SPDX-License-Identifier: MIT

package vertex_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/origami/spherical"
	"github.com/katalvlaran/origami/vertex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const eps = 1e-6

// unknowns returns n Unknown angles.
func unknowns(n int) []vertex.Angle {
	return make([]vertex.Angle, n)
}

// closure walks once around the vertex, folding about each crease and
// turning through each wedge. A consistent assignment returns to the start,
// so the largest deviation from the identity is ~0.
func closure(wedges, angles []float64) float64 {
	acc := r3.Eye()
	for k := range wedges {
		fold := r3.NewRotation((angles[k]-180)*math.Pi/180, r3.Vec{X: 1}).Mat()
		turn := r3.NewRotation(wedges[k]*math.Pi/180, r3.Vec{Z: 1}).Mat()
		acc.Mul(acc, fold)
		acc.Mul(acc, turn)
	}
	worst := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			worst = math.Max(worst, math.Abs(acc.At(i, j)-want))
		}
	}
	return worst
}

func assertAngles(t *testing.T, want, got []float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.Len(t, got, len(want), msgAndArgs...)
	for j := range want {
		assert.Less(t, angleGap(want[j], got[j]), eps, msgAndArgs...)
	}
}

// angleGap is the distance between two angles on the circle, so 0 and
// 359.9999999 compare as equal.
func angleGap(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	return math.Min(d, 360-d)
}

// TestSolve_BaseFlat checks the mountain/valley duality of a flat degree-3
// vertex.
func TestSolve_BaseFlat(t *testing.T) {
	sols, err := vertex.Solve([]float64{120, 120, 120}, unknowns(3))
	require.NoError(t, err)
	require.Len(t, sols, 2)
	for j := 0; j < 3; j++ {
		assert.InDelta(t, 360.0, sols[0][j]+sols[1][j], 1e-9)
	}
}

// TestSolve_BaseTriangle checks the corner mapping of the degree-3 case on a
// non-flat vertex: crease j is opposite wedge j+1.
func TestSolve_BaseTriangle(t *testing.T) {
	A, B, C, err := spherical.SolveTriangleAngles(30, 40, 50)
	require.NoError(t, err)

	sols, err := vertex.Solve([]float64{30, 40, 50}, unknowns(3))
	require.NoError(t, err)
	require.Len(t, sols, 2)
	assertAngles(t, []float64{B, C, A}, sols[0])
	assertAngles(t, []float64{360 - B, 360 - C, 360 - A}, sols[1])

	// one known angle picks the matching branch
	sols, err = vertex.Solve([]float64{30, 40, 50}, []vertex.Angle{vertex.Unknown(), vertex.Known(360 - C), vertex.Unknown()})
	require.NoError(t, err)
	require.Len(t, sols, 1)
	assertAngles(t, []float64{360 - B, 360 - C, 360 - A}, sols[0])
}

// TestSolve_BaseDegenerate returns a single solution for a zero wedge.
func TestSolve_BaseDegenerate(t *testing.T) {
	sols, err := vertex.Solve([]float64{0, 180, 180}, unknowns(3))
	require.NoError(t, err)
	require.Len(t, sols, 1)
	assertAngles(t, []float64{90, 90, 0}, sols[0])
}

// TestSolve_Plus folds a four-crease "+" vertex by one crease and expects
// the two fold modes.
func TestSolve_Plus(t *testing.T) {
	wedges := []float64{90, 90, 90, 90}

	sols, err := vertex.Solve(wedges, []vertex.Angle{vertex.Known(90), {}, {}, {}})
	require.NoError(t, err)
	require.Len(t, sols, 2)
	assertAngles(t, []float64{90, 180, 90, 180}, sols[0])
	assertAngles(t, []float64{90, 0, 270, 0}, sols[1])

	// a known angle above 180 is solved as the mirror image
	sols, err = vertex.Solve(wedges, []vertex.Angle{vertex.Known(270), {}, {}, {}})
	require.NoError(t, err)
	require.Len(t, sols, 2)
	assertAngles(t, []float64{270, 180, 270, 180}, sols[0])
	assertAngles(t, []float64{270, 0, 90, 0}, sols[1])

	for _, s := range sols {
		assert.Less(t, closure(wedges, s), 1e-9)
	}
}

// TestSolve_Kawasaki exercises a generic flat-foldable degree-4 vertex and
// verifies every returned solution closes rigidly around the vertex.
func TestSolve_Kawasaki(t *testing.T) {
	wedges := []float64{60, 100, 120, 80}

	sols, err := vertex.Solve(wedges, []vertex.Angle{vertex.Known(150), {}, {}, {}})
	require.NoError(t, err)
	require.Len(t, sols, 2)
	assertAngles(t, []float64{150, 185.669372, 150, 174.330628}, sols[0])
	assertAngles(t, []float64{150, 255.302452, 210, 255.302452}, sols[1])

	// the known crease need not be the first one
	last, err := vertex.Solve(wedges, []vertex.Angle{{}, {}, {}, vertex.Known(150)})
	require.NoError(t, err)
	require.Len(t, last, 2)
	assertAngles(t, []float64{190.633013, 150, 169.366987, 150}, last[0])
	assertAngles(t, []float64{69.184573, 210, 69.184573, 150}, last[1])

	for _, s := range append(sols, last...) {
		assert.Less(t, closure(wedges, s), 1e-9, "solution %v", s)
	}
}

// TestSolve_Degree5 reduces twice before the base case.
func TestSolve_Degree5(t *testing.T) {
	wedges := []float64{50, 70, 60, 90, 90}
	sols, err := vertex.Solve(wedges,
		[]vertex.Angle{vertex.Known(150), vertex.Known(170), {}, {}, {}},
		vertex.WithSelfCheck(true))
	require.NoError(t, err)
	require.Len(t, sols, 2)
	assertAngles(t, []float64{150, 170, 187.802439, 139.697427, 178.89093}, sols[0])
	for _, s := range sols {
		assert.InDelta(t, 150.0, s[0], 1e-12)
		assert.InDelta(t, 170.0, s[1], 1e-12)
		assert.Less(t, closure(wedges, s), 1e-9, "solution %v", s)
	}
}

// TestSolve_Overconstrained rejects known angles that contradict each other.
func TestSolve_Overconstrained(t *testing.T) {
	_, err := vertex.Solve([]float64{120, 120, 120}, []vertex.Angle{vertex.Known(90), {}, {}})
	assert.ErrorIs(t, err, vertex.ErrOverconstrained)

	_, err = vertex.Solve([]float64{90, 90, 90, 90}, []vertex.Angle{vertex.Known(90), vertex.Known(170), {}, {}})
	assert.ErrorIs(t, err, vertex.ErrOverconstrained)

	// consistent extra knowledge is fine
	sols, err := vertex.Solve([]float64{90, 90, 90, 90}, []vertex.Angle{vertex.Known(90), vertex.Known(180), {}, {}})
	require.NoError(t, err)
	require.Len(t, sols, 1)
	assertAngles(t, []float64{90, 180, 90, 180}, sols[0])
}

func TestSolve_Errors(t *testing.T) {
	cases := []struct {
		name   string
		wedges []float64
		angles []vertex.Angle
		opts   []vertex.Option
		want   error
	}{
		{"length", []float64{90, 90, 180}, unknowns(2), nil, vertex.ErrLengthMismatch},
		{"degree", []float64{180, 180}, unknowns(2), nil, vertex.ErrDegree},
		{"range", []float64{120, 120, 120}, []vertex.Angle{vertex.Known(360), {}, {}}, nil, vertex.ErrAngleRange},
		{"underconstrained", []float64{90, 90, 90, 90}, unknowns(4), nil, vertex.ErrUnderconstrained},
		{"negative wedge", []float64{-1, 181, 90, 90}, []vertex.Angle{vertex.Known(180), {}, {}, {}}, nil, vertex.ErrInvalidWedge},
		{"wide wedge", []float64{200, 80, 80}, unknowns(3), nil, vertex.ErrInfeasibleWedge},
		{"triangle", []float64{10, 20, 40}, unknowns(3), nil, vertex.ErrInfeasibleTriangle},
		{"inconsistent", []float64{0, 120, 120, 120}, []vertex.Angle{vertex.Known(150), {}, {}, {}}, nil, vertex.ErrInconsistentInput},
		{"option", []float64{120, 120, 120}, unknowns(3),
			[]vertex.Option{vertex.WithTolerances(spherical.Tolerances{Zero: -1})}, vertex.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := vertex.Solve(tc.wedges, tc.angles, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAngle(t *testing.T) {
	var zero vertex.Angle
	assert.False(t, zero.IsKnown(), "zero value is unknown")
	assert.Equal(t, "?", vertex.Unknown().String())

	v, ok := vertex.Known(42.5).Value()
	assert.True(t, ok)
	assert.Equal(t, 42.5, v)
	assert.Equal(t, "42.5", vertex.Known(42.5).String())
}
