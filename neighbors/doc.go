// SPDX-License-Identifier: MIT

// Package neighbors builds the angular neighbour index of a crease pattern:
// for every node, the adjacent nodes sorted counter-clockwise by polar angle
// and the wedge of paper between each neighbour and the next.
//
//	wedge[k] = mod(angle(nbr[k+1 mod n]) − angle(nbr[k]) + 720, 360)
//
// The +720 keeps the difference positive across the ±180° seam of atan2, so
// the wedges of any node with two or more neighbours sum to 360. A node with a
// single neighbour has one wedge of 0.
//
// Build is a pure function of node positions and crease topology; parallel
// creases between the same two nodes count once.
package neighbors
