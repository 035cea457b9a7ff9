// SPDX-License-Identifier: MIT

package spherical

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
)

// SolveTriangleAngles returns the angles A, B, C (degrees) opposite the sides
// a, b, c (degrees) of a spherical triangle, using DefaultTolerances.
func SolveTriangleAngles(a, b, c float64) (A, B, C float64, err error) {
	return DefaultTolerances().SolveTriangleAngles(a, b, c)
}

// FindOppositeSide returns the side opposite angle A given the two sides b
// and c adjacent to it, using DefaultTolerances.
func FindOppositeSide(A, b, c float64) float64 {
	return DefaultTolerances().FindOppositeSide(A, b, c)
}

// Feasible reports whether a, b, c satisfy the spherical triangle
// inequalities under DefaultTolerances.
func Feasible(a, b, c float64) bool {
	return DefaultTolerances().Feasible(a, b, c)
}

// CheckLawOfSines verifies sin(A)/sin(a) ≈ sin(B)/sin(b) ≈ sin(C)/sin(c)
// under DefaultTolerances.
func CheckLawOfSines(a, b, c, A, B, C float64) error {
	return DefaultTolerances().CheckLawOfSines(a, b, c, A, B, C)
}

// Feasible reports whether each side is at most the sum of the other two and
// the perimeter is at most 360°, both within TriangleSlack.
func (t Tolerances) Feasible(a, b, c float64) bool {
	s := t.TriangleSlack
	if math.IsNaN(a) || math.IsNaN(b) || math.IsNaN(c) {
		return false
	}
	return a <= b+c+s && b <= c+a+s && c <= a+b+s && a+b+c <= 360+s
}

// SolveTriangleAngles returns the angles opposite sides a, b and c.
//
// Steps:
//  1. Reject infeasible sides with ErrTriangleInequality.
//  2. Degenerate shortcuts: two or three zero sides give (60, 60, 60); one
//     zero side gives 0 opposite it and 90 at both ends; a perimeter of 360
//     gives (180, 180, 180).
//  3. Otherwise cos(A) = (cos a − cos b·cos c) / (sin b·sin c) and cyclic,
//     each cosine clamped to [−1, 1] before arccos.
func (t Tolerances) SolveTriangleAngles(a, b, c float64) (A, B, C float64, err error) {
	if !t.Feasible(a, b, c) {
		return 0, 0, 0, fmt.Errorf("%w: sides (%g, %g, %g)", ErrTriangleInequality, a, b, c)
	}

	za, zb, zc := t.IsZero(a), t.IsZero(b), t.IsZero(c)
	switch zeros := count(za, zb, zc); {
	case zeros >= 2:
		return 60, 60, 60, nil
	case za:
		return 0, 90, 90, nil
	case zb:
		return 90, 0, 90, nil
	case zc:
		return 90, 90, 0, nil
	}
	if a+b+c >= 360-t.TriangleSlack {
		return 180, 180, 180, nil
	}

	ra, rb, rc := radians(a), radians(b), radians(c)
	A = degrees(math.Acos(clamp(cosAngle(ra, rb, rc))))
	B = degrees(math.Acos(clamp(cosAngle(rb, rc, ra))))
	C = degrees(math.Acos(clamp(cosAngle(rc, ra, rb))))
	return A, B, C, nil
}

// FindOppositeSide returns a from cos(a) = cos(b)cos(c) + sin(b)sin(c)cos(A),
// normalised into [0, 360). A zero adjacent side makes the opposite side equal
// to the other one, which sidesteps the 0/0 form.
func (t Tolerances) FindOppositeSide(A, b, c float64) float64 {
	if t.IsZero(b) {
		return c
	}
	if t.IsZero(c) {
		return b
	}
	rA, rb, rc := radians(A), radians(b), radians(c)
	cosA := math.Cos(rb)*math.Cos(rc) + math.Sin(rb)*math.Sin(rc)*math.Cos(rA)
	return Normalize(degrees(math.Acos(clamp(cosA))))
}

// CheckLawOfSines compares the sine ratios of every pair whose side has a
// non-zero sine. Sides of 0 or 180 degrees carry no information and are
// skipped.
func (t Tolerances) CheckLawOfSines(a, b, c, A, B, C float64) error {
	sides := [3]float64{a, b, c}
	angles := [3]float64{A, B, C}
	var ratios []float64
	for i := range sides {
		s := math.Sin(radians(sides[i]))
		if math.Abs(s) < t.Zero {
			continue
		}
		ratios = append(ratios, math.Sin(radians(angles[i]))/s)
	}
	for i := 1; i < len(ratios); i++ {
		if math.Abs(ratios[i]-ratios[0]) > t.LawOfSines {
			return fmt.Errorf("%w: sides (%g, %g, %g) angles (%g, %g, %g)",
				ErrLawOfSines, a, b, c, A, B, C)
		}
	}
	return nil
}

// cosAngle is the law of cosines for the angle opposite side x.
func cosAngle(x, y, z float64) float64 {
	return (math.Cos(x) - math.Cos(y)*math.Cos(z)) / (math.Sin(y) * math.Sin(z))
}

func clamp(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}

func radians(deg float64) float64 {
	return (s1.Angle(deg) * s1.Degree).Radians()
}

func degrees(rad float64) float64 {
	return s1.Angle(rad).Degrees()
}

func count(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
