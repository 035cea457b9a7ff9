// SPDX-License-Identifier: MIT

// Package frame embeds a folded, triangulated crease pattern in 3D.
//
// Every triangle carries a frame: the rotation taking its flat-sheet
// coordinates to its folded orientation. The seed triangle keeps the identity
// and its corners stay at (x, y, 0). A breadth-first walk then crosses each
// shared edge u→v of a reached triangle into the unreached neighbour that owns
// v→u, folding about the edge by the crease's dihedral angle:
//
//	axis     = unit(pos[v] − pos[u]),  z = 0
//	R        = rotation(axis, dihedral − 180°)
//	F'       = (F·R·Fᵀ)·F = F·R
//	pos3D[w] = pos3D[u] + F'·(pos[w] − pos[u])
//
// A dihedral of 180° leaves the sheet flat; 90° and 270° fold the neighbour
// up or down by a right angle. After every step the frame is snapped back
// onto the rotation group by SVD so rounding does not accumulate along long
// chains.
//
// Each frame and each 3D position is written once. Triangles that cannot be
// reached from the seed keep a nil frame; nodes that are never placed report
// false from Result.Position.
//
// Options follow the usual functional style: WithContext for cancellation
// between dequeues, WithOnVisit and WithOnPlace hooks for observation, and
// WithRenormalize to switch the SVD step off.
package frame
