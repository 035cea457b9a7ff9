// SPDX-License-Identifier: MIT

package vertex

import (
	"fmt"
	"math"

	"github.com/katalvlaran/origami/spherical"
)

// level records one cut made while reducing a vertex, enough to re-expand a
// solution of the smaller problem.
type level struct {
	n        int     // degree before the cut
	pivot    int     // index of the removed crease
	angle    float64 // pivot angle in this level's (possibly mirrored) frame
	mirrored bool    // the level was solved as its mirror image
	prevFix  float64 // cut-triangle corner at crease pivot-1
	nextFix  float64 // cut-triangle corner at crease pivot+1
}

// solver carries the options through one Solve call.
type solver struct {
	tol       spherical.Tolerances
	selfCheck bool
}

// Solve returns every assignment of the n crease angles around a vertex that
// is consistent with the wedges and with the known entries of angles.
// wedges[k] spans from crease k to crease k+1 (degrees, summing to 360 for an
// interior vertex of a flat sheet). Each returned slice has length n, in the
// same crease order, with angles in [0, 360).
func Solve(wedges []float64, angles []Angle, opts ...Option) ([][]float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := validate(wedges, angles, o.Tol); err != nil {
		return nil, err
	}

	s := &solver{tol: o.Tol, selfCheck: o.SelfCheck}
	return s.solve(wedges, angles)
}

// validate applies the preconditions in a fixed order so that each input
// problem maps to exactly one error.
func validate(wedges []float64, angles []Angle, tol spherical.Tolerances) error {
	if len(wedges) != len(angles) {
		return fmt.Errorf("%w: %d wedges, %d angles", ErrLengthMismatch, len(wedges), len(angles))
	}
	if len(angles) < 3 {
		return fmt.Errorf("%w: degree %d", ErrDegree, len(angles))
	}
	unknown := 0
	for k, a := range angles {
		v, ok := a.Value()
		if !ok {
			unknown++
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v >= 360 {
			return fmt.Errorf("%w: crease %d = %v", ErrAngleRange, k, v)
		}
	}
	if unknown > MaxUnknowns {
		return fmt.Errorf("%w: %d unknown", ErrUnderconstrained, unknown)
	}
	for k, w := range wedges {
		switch {
		case math.IsNaN(w) || w < -tol.Zero:
			return fmt.Errorf("%w: wedge %d = %v", ErrInvalidWedge, k, w)
		case w > 180+tol.Zero:
			return fmt.Errorf("%w: wedge %d = %v", ErrInfeasibleWedge, k, w)
		}
	}
	return nil
}

// solve reduces the vertex to degree 3 with an explicit stack, solves the
// spherical triangle and unwinds the stack.
func (s *solver) solve(wedges []float64, angles []Angle) ([][]float64, error) {
	w := append([]float64(nil), wedges...)
	k := append([]Angle(nil), angles...)

	// Reduce: cut one triangle per level down to degree 3
	stack := make([]level, 0, len(k)-3)
	for len(k) > 3 {
		lv, nw, nk, err := s.reduce(w, k)
		if err != nil {
			return nil, err
		}
		stack = append(stack, lv)
		w, k = nw, nk
	}

	// Base case
	sols, err := s.base(w, k)
	if err != nil {
		return nil, err
	}

	// Unwind levels in reverse
	for i := len(stack) - 1; i >= 0; i-- {
		sols = stack[i].expand(sols)
	}
	return sols, nil
}

// reduce cuts off the spherical triangle at the first known crease and
// returns the level record with the smaller wedge and angle lists.
func (s *solver) reduce(w []float64, k []Angle) (level, []float64, []Angle, error) {
	n := len(k)
	pivot := -1
	for i, a := range k {
		if a.IsKnown() {
			pivot = i
			break
		}
	}
	if pivot < 0 {
		return level{}, nil, nil, fmt.Errorf("%w: no known angle at degree %d", ErrUnderconstrained, n)
	}

	// Mirror so the pivot is a proper interior angle
	lv := level{n: n, pivot: pivot}
	if v, _ := k[pivot].Value(); v > 180+s.tol.Zero {
		k = mirror(k)
		lv.mirrored = true
	}
	lv.angle, _ = k[pivot].Value()

	prev, next := (pivot-1+n)%n, (pivot+1)%n
	b, c := w[prev], w[pivot]
	a := s.tol.FindOppositeSide(lv.angle, b, c)
	A, B, C, err := s.triangle(a, b, c)
	if err != nil {
		return level{}, nil, nil, err
	}
	if !s.tol.SameAngle(A, lv.angle) {
		return level{}, nil, nil, fmt.Errorf("%w: crease %d given %g, geometry gives %g",
			ErrInconsistentInput, pivot, lv.angle, A)
	}
	lv.prevFix, lv.nextFix = C, B

	// Drop the pivot crease; its two wedges merge into side a
	rk := append([]Angle(nil), k...)
	rk[prev] = shift(rk[prev], -lv.prevFix)
	rk[next] = shift(rk[next], -lv.nextFix)
	rk = append(rk[:pivot], rk[pivot+1:]...)

	rw := append([]float64(nil), w...)
	rw[prev] = a
	rw = append(rw[:pivot], rw[pivot+1:]...)

	return lv, rw, rk, nil
}

// base solves the degree-3 vertex and filters the candidates against the
// known angles.
func (s *solver) base(w []float64, k []Angle) ([][]float64, error) {
	A, B, C, err := s.triangle(w[0], w[1], w[2])
	if err != nil {
		return nil, err
	}
	// crease j is the corner opposite wedge j+1
	raw := []float64{B, C, A}

	candidates := [][]float64{raw}
	if !s.tol.IsZero(w[0]) && !s.tol.IsZero(w[1]) && !s.tol.IsZero(w[2]) {
		candidates = append(candidates, explement(raw))
	}

	out := make([][]float64, 0, len(candidates))
	for _, cand := range candidates {
		if sol, ok := s.agree(cand, k); ok {
			out = append(out, sol)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: given %v, geometry allows %v", ErrOverconstrained, k, candidates)
	}
	return out, nil
}

// triangle wraps the spherical solve with the solver's error taxonomy and
// optional self-check.
func (s *solver) triangle(a, b, c float64) (A, B, C float64, err error) {
	A, B, C, err = s.tol.SolveTriangleAngles(a, b, c)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %v", ErrInfeasibleTriangle, err)
	}
	if s.selfCheck {
		if err = s.tol.CheckLawOfSines(a, b, c, A, B, C); err != nil {
			return 0, 0, 0, err
		}
	}
	return A, B, C, nil
}

// agree reports whether cand matches every known angle, returning a copy
// with the known entries snapped to their given values.
func (s *solver) agree(cand []float64, k []Angle) ([]float64, bool) {
	sol := make([]float64, len(cand))
	for j, c := range cand {
		sol[j] = spherical.Normalize(c)
		v, ok := k[j].Value()
		if !ok {
			continue
		}
		if !s.tol.SameAngle(c, v) {
			return nil, false
		}
		sol[j] = v
	}
	return sol, true
}

// expand lifts solutions of the reduced problem back to this level.
func (lv level) expand(sols [][]float64) [][]float64 {
	out := make([][]float64, 0, len(sols))
	prev, next := (lv.pivot-1+lv.n)%lv.n, (lv.pivot+1)%lv.n
	for _, sol := range sols {
		full := make([]float64, 0, lv.n)
		full = append(full, sol[:lv.pivot]...)
		full = append(full, lv.angle)
		full = append(full, sol[lv.pivot:]...)

		full[prev] += lv.prevFix
		full[next] += lv.nextFix
		for j := range full {
			full[j] = spherical.Normalize(full[j])
			if lv.mirrored {
				full[j] = spherical.Normalize(360 - full[j])
			}
		}
		out = append(out, full)
	}
	return out
}

// mirror reflects every known angle through the sheet (θ → 360 − θ).
func mirror(k []Angle) []Angle {
	out := make([]Angle, len(k))
	for j, a := range k {
		if v, ok := a.Value(); ok {
			out[j] = Known(spherical.Normalize(360 - v))
		}
	}
	return out
}

func explement(angles []float64) []float64 {
	out := make([]float64, len(angles))
	for j, a := range angles {
		out[j] = spherical.Normalize(360 - a)
	}
	return out
}

// shift adds d to a known angle, leaving unknown ones alone.
func shift(a Angle, d float64) Angle {
	if v, ok := a.Value(); ok {
		return Known(spherical.Normalize(v + d))
	}
	return a
}
