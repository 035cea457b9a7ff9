// SPDX-License-Identifier: MIT

// Package spherical holds the closed-form spherical-trigonometry primitives
// used by the vertex fold solver.
//
// What
//
//   - SolveTriangleAngles: the three angles of a spherical triangle from its
//     three sides (spherical law of cosines).
//   - FindOppositeSide: one side from the opposite angle and the two adjacent
//     sides (the inverse direction).
//   - CheckLawOfSines: a self-check that a solved triangle is consistent.
//
// Units
//
//	Every argument and result is in degrees. Conversion to radians happens at
//	the boundary through s1.Angle and never leaks into the API.
//
// Degenerate triangles
//
//	A side below Tolerances.Zero is treated as exactly zero:
//	  (0, 0, 0)   → (60, 60, 60)
//	  (0, b, c)   → (0, 90, 90)   and its cyclic permutations
//	A triangle whose perimeter reaches 360° lies on a great circle; all three
//	angles are then 180° (this is a flat, unfolded vertex).
//
// Errors
//
//   - ErrTriangleInequality if a > b+c (or a cyclic variant), or the
//     perimeter exceeds 360°, beyond Tolerances.TriangleSlack.
//   - ErrLawOfSines from CheckLawOfSines.
//   - ErrTolerance from Tolerances.Validate.
package spherical
