// SPDX-License-Identifier: MIT

// Package vertex solves the dihedral fold angles around a single vertex of a
// crease pattern with spherical trigonometry.
//
// What
//
//	Around a vertex of degree n the paper is split into n wedges by n
//	creases. Crease k sits between wedge k−1 and wedge k; wedge k spans from
//	crease k to crease k+1. Folding maps the crease directions onto a unit
//	sphere: wedges become the sides of a spherical polygon and the dihedral
//	angles of the creases become its interior angles.
//
//	Solve takes the wedges and a list of Angle values, each Known(deg) or
//	Unknown(), and returns every consistent assignment of all n angles.
//
// How
//
//   - Degree 3: the wedges are the sides of a spherical triangle; crease k is
//     the corner opposite wedge k+1. Two solutions come back, the raw triple
//     and its explement (360 − θ), one per fold direction. A zero wedge
//     leaves a single degenerate solution.
//   - Degree n > 3: the first known crease is cut off together with its two
//     wedges; the cut triangle's corners are subtracted from the neighbouring
//     creases and the problem shrinks by one crease. A known angle above 180
//     is handled by mirroring the whole level (θ → 360 − θ) so that the cut
//     triangle has a proper interior angle. Levels are kept on an explicit
//     stack and unwound after the degree-3 solve.
//   - Every solution is checked against the known angles; solutions that
//     disagree are dropped.
//
// Errors
//
//   - ErrLengthMismatch       wedges and angles differ in length.
//   - ErrDegree               fewer than three creases.
//   - ErrAngleRange           a known angle outside [0, 360).
//   - ErrUnderconstrained     more than three unknown angles.
//   - ErrInvalidWedge         a negative wedge (a bug upstream, never user input).
//   - ErrInfeasibleWedge      a wedge above 180°.
//   - ErrInfeasibleTriangle   wedges violating the spherical triangle inequality.
//   - ErrInconsistentInput    a known angle the geometry cannot produce.
//   - ErrOverconstrained      known angles that contradict each other.
//   - ErrOptionViolation      invalid options.
//
// Complexity
//
//	O(n²) time (each of the n−3 reductions copies the arrays), O(n²) memory
//	for the level stack. n is the vertex degree.
package vertex
