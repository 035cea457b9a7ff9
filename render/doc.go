// SPDX-License-Identifier: MIT

// Package render writes crease patterns and folded results to files.
//
// WriteSVG draws the flat pattern with the y axis pointing up: mountain
// creases solid black, valley creases dashed black, unassigned creases blue,
// every node as a dot with its index beside it. WriteOBJ writes the folded
// surface as a Wavefront OBJ mesh of the triangles that propagation reached.
package render
