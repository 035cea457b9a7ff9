// SPDX-License-Identifier: MIT

// Package pattern defines the data model of a flat crease pattern: nodes with
// 2D positions, creases tagged mountain/valley/unassigned, triangles of an
// external triangulation, and the directed crease-angle map (Creases) that the
// vertex solver fills and the frame propagator consumes.
//
// Angles
//
//	Dihedral angles are in degrees, in [0, 360). 180 means flat (no fold).
//	A valley fold is below 180, a mountain fold above it.
//
// Creases map
//
//	Creases stores one entry per directed node pair and always writes both
//	directions with the same value. A write that disagrees with an existing
//	entry fails with ErrCreaseConflict instead of overwriting it.
//
//	  c := pattern.NewCreases()
//	  _ = c.Set(0, 1, 270)           // (0,1) and (1,0) both 270
//	  _ = c.AddNodeCreases(4, nbrs, solution)
//	  c.AddFlatCreases(triangles)   // every untouched mesh edge → 180
//
// File format
//
//	Parse reads the line-oriented .creasepattern format:
//
//	  begin nodes
//	  0.0 0.0
//	  1.0 0.0
//	  begin creases
//	  0 1 M
//	  1 2
package pattern
