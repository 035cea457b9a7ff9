// SPDX-License-Identifier: MIT

package vertex

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/origami/spherical"
)

// Sentinel errors for vertex solving.
var (
	ErrLengthMismatch     = errors.New("vertex: wedges and angles differ in length")
	ErrDegree             = errors.New("vertex: at least three creases required")
	ErrAngleRange         = errors.New("vertex: known angle outside [0, 360)")
	ErrUnderconstrained   = errors.New("vertex: more than three unknown angles")
	ErrInvalidWedge       = errors.New("vertex: negative wedge angle")
	ErrInfeasibleWedge    = errors.New("vertex: wedge angle above 180")
	ErrInfeasibleTriangle = errors.New("vertex: wedges violate the triangle inequality")
	ErrInconsistentInput  = errors.New("vertex: known angle inconsistent with geometry")
	ErrOverconstrained    = errors.New("vertex: known angles contradict each other")
	ErrOptionViolation    = errors.New("vertex: invalid option supplied")
)

// MaxUnknowns is the largest number of unknown angles a single vertex can
// resolve.
const MaxUnknowns = 3

// Angle is either a known dihedral angle in degrees or a slot to solve for.
// The zero value is Unknown.
type Angle struct {
	deg   float64
	known bool
}

// Known returns an Angle fixed at deg degrees.
func Known(deg float64) Angle { return Angle{deg: deg, known: true} }

// Unknown returns an Angle to be solved for.
func Unknown() Angle { return Angle{} }

// Value returns the angle and whether it is known.
func (a Angle) Value() (float64, bool) { return a.deg, a.known }

// IsKnown reports whether the angle is fixed.
func (a Angle) IsKnown() bool { return a.known }

// String renders a known angle as a number and an unknown one as "?".
func (a Angle) String() string {
	if !a.known {
		return "?"
	}
	return strconv.FormatFloat(a.deg, 'g', -1, 64)
}

// Option configures Solve.
type Option func(*Options)

// Options holds solver settings.
type Options struct {
	// Tol holds every threshold used by the solver.
	Tol spherical.Tolerances

	// SelfCheck runs the law-of-sines check after every triangle solve.
	SelfCheck bool

	err error
}

// DefaultOptions returns spherical.DefaultTolerances and no self-check.
func DefaultOptions() Options {
	return Options{Tol: spherical.DefaultTolerances()}
}

// WithTolerances replaces the numeric thresholds. Invalid tolerances surface
// as ErrOptionViolation from Solve.
func WithTolerances(t spherical.Tolerances) Option {
	return func(o *Options) {
		if err := t.Validate(); err != nil {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, err)
			return
		}
		o.Tol = t
	}
}

// WithSelfCheck enables the law-of-sines check on every solved triangle.
// A failing check is returned as spherical.ErrLawOfSines.
func WithSelfCheck(on bool) Option {
	return func(o *Options) {
		o.SelfCheck = on
	}
}
