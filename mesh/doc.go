// SPDX-License-Identifier: MIT

// Package mesh indexes a triangulated crease pattern by directed edge.
//
// Every triangle is stored counter-clockwise in the flat sheet, so each of
// its three directed edges (t[k], t[k+1]) has a unique owner. The triangle on
// the other side of an edge is the owner of the reversed edge; an edge whose
// reverse has no owner lies on the paper boundary.
//
//	  2
//	 / \        triangle 0 owns 0→1, 1→2, 2→0
//	0---1       triangle 1 owns 1→0, ... and is the neighbour across 0→1
//	 \ /
//	  3
//
// The index is immutable after NewEdgeIndex returns.
package mesh
