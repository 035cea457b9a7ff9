// SPDX-License-Identifier: MIT

// Package fold runs the whole pipeline from a flat crease pattern to a folded
// 3D surface:
//
//  1. neighbors.Build orders the creases around every node.
//  2. SolveCreases sweeps the interior nodes. Any node left with at most
//     three unknown creases is handed to vertex.Solve; the first solution whose
//     angles every mountain and valley tag admits is written back with
//     AddNodeCreases. Newly fixed creases make neighbouring nodes solvable, so
//     sweeps repeat until one makes no progress.
//  3. Triangulation edges that are not creases are set flat.
//  4. frame.Propagate walks the triangles from a seed and places every node.
//
// Nodes that remain underconstrained are reported together through
// ErrUnresolved; per-node failures are wrapped with the node id so that
// errors.Is still sees the vertex sentinel underneath.
package fold
