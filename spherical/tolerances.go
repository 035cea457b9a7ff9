// SPDX-License-Identifier: MIT

package spherical

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors.
var (
	// ErrTriangleInequality is returned when three sides cannot form a
	// spherical triangle.
	ErrTriangleInequality = errors.New("spherical: triangle inequality violated")

	// ErrLawOfSines is returned by CheckLawOfSines when the sine ratios of a
	// solved triangle disagree.
	ErrLawOfSines = errors.New("spherical: law of sines check failed")

	// ErrTolerance is returned for negative or non-finite tolerances.
	ErrTolerance = errors.New("spherical: invalid tolerance")
)

// Default tolerances.
const (
	// DefaultZero is the magnitude, in degrees, under which an angle or side
	// counts as zero.
	DefaultZero = 1e-9

	// DefaultTriangleSlack absorbs floating-point noise in triangle-inequality
	// and perimeter checks.
	DefaultTriangleSlack = 1e-7

	// DefaultLawOfSines bounds the spread of sin(A)/sin(a) ratios.
	DefaultLawOfSines = 1e-4

	// DefaultConsistency is how far, in degrees, a computed angle may drift
	// from a given one before the two are considered different.
	DefaultConsistency = 1e-6
)

// Tolerances groups every numeric threshold used by the solver and the
// propagator so that they are configured once.
type Tolerances struct {
	Zero          float64
	TriangleSlack float64
	LawOfSines    float64
	Consistency   float64
}

// DefaultTolerances returns the package defaults.
func DefaultTolerances() Tolerances {
	return Tolerances{
		Zero:          DefaultZero,
		TriangleSlack: DefaultTriangleSlack,
		LawOfSines:    DefaultLawOfSines,
		Consistency:   DefaultConsistency,
	}
}

// Validate reports ErrTolerance if any field is negative, NaN or infinite.
func (t Tolerances) Validate() error {
	fields := [...]struct {
		name string
		v    float64
	}{
		{"Zero", t.Zero},
		{"TriangleSlack", t.TriangleSlack},
		{"LawOfSines", t.LawOfSines},
		{"Consistency", t.Consistency},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0 {
			return fmt.Errorf("%w: %s=%v", ErrTolerance, f.name, f.v)
		}
	}
	return nil
}

// IsZero reports whether |x| is below the zero tolerance.
func (t Tolerances) IsZero(x float64) bool {
	return math.Abs(x) < t.Zero
}

// SameAngle reports whether two angles in degrees agree modulo 360 within
// the consistency tolerance.
func (t Tolerances) SameAngle(x, y float64) bool {
	d := math.Mod(math.Abs(x-y), 360)
	if d > 180 {
		d = 360 - d
	}
	return d <= t.Consistency
}

// Normalize maps an angle in degrees into [0, 360).
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}
