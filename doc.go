// SPDX-License-Identifier: MIT

// Package origami folds flat crease patterns into 3D shapes: given where the
// creases of a sheet run and how far a few of them are folded, it works out
// every other fold angle and then places each point of the sheet in space.
//
// 🚀 What is origami?
//
//	A small, deterministic, single-threaded library that brings together:
//		• Crease patterns: nodes, tagged creases, .creasepattern parsing
//		• Angular neighbourhoods: creases sorted around every node, wedge angles
//		• Spherical trigonometry: the triangle a folded vertex traces on the unit sphere
//		• Vertex solving: n-crease vertices reduced to the three-crease case
//		• Frame propagation: rotations carried across a triangulated sheet
//		• Output: SVG of the flat pattern, Wavefront OBJ of the folded surface
//
// ✨ Why choose origami?
//
//   - Plain data in, plain data out: float64 degrees, node ids, gonum vectors
//   - Sentinel errors for every rejected input, testable with errors.Is
//   - Hooks (OnVisit, OnPlace, OnSolve) for progress and debugging
//   - Tolerances configured in one place (spherical.Tolerances)
//
// Packages:
//
//	pattern/    Node, Crease, Kind, Triangle, Creases (resolved angles), Parse
//	neighbors/  counter-clockwise neighbour order and wedges per node
//	spherical/  law of cosines and sines for spherical triangles
//	vertex/     fold angles of a single vertex
//	mesh/       triangles indexed by directed edge
//	frame/      BFS over triangles, rotation frames and 3D positions
//	fold/       the whole pipeline from pattern to folded surface
//	render/     SVG and OBJ writers
//
// Quick ASCII example:
//
//	3───────2
//	│ ╲   ╱ │      fold the diagonal 0─4─2 to 90°:
//	│   4   │      creases 4─1 and 4─3 stay flat,
//	│ ╱   ╲ │      node 3 rises to height √2/2
//	0───────1
//
//	go run ./cmd/origami -config origami.toml square.creasepattern square.tri
package origami
