// SPDX-License-Identifier: MIT

package mesh

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jbeda/geom"
	"github.com/katalvlaran/origami/pattern"
	"github.com/katalvlaran/origami/spherical"
)

// Sentinel errors.
var (
	// ErrNodeOutOfRange is returned for a triangle corner that is not a node.
	ErrNodeOutOfRange = errors.New("mesh: node id out of range")

	// ErrDegenerateTriangle is returned for a triangle with a repeated corner
	// or zero area.
	ErrDegenerateTriangle = errors.New("mesh: degenerate triangle")

	// ErrNonManifold is returned when two triangles claim the same directed
	// edge, i.e. overlap or disagree in orientation.
	ErrNonManifold = errors.New("mesh: directed edge shared by two triangles")
)

// EdgeIndex maps directed edges to the counter-clockwise triangle that owns
// them.
type EdgeIndex struct {
	tris  []pattern.Triangle
	owner map[pattern.Edge]int
}

// NewEdgeIndex orients every triangle counter-clockwise by its signed area in
// positions and records the owner of each of its directed edges.
func NewEdgeIndex(positions []geom.Coord, tris []pattern.Triangle) (*EdgeIndex, error) {
	idx := &EdgeIndex{
		tris:  make([]pattern.Triangle, len(tris)),
		owner: make(map[pattern.Edge]int, 3*len(tris)),
	}
	for t, tri := range tris {
		for _, id := range tri {
			if id < 0 || id >= len(positions) {
				return nil, fmt.Errorf("%w: triangle %d has node %d", ErrNodeOutOfRange, t, id)
			}
		}
		if tri[0] == tri[1] || tri[1] == tri[2] || tri[2] == tri[0] {
			return nil, fmt.Errorf("%w: triangle %d %v repeats a node", ErrDegenerateTriangle, t, tri)
		}
		area := SignedArea(positions[tri[0]], positions[tri[1]], positions[tri[2]])
		switch {
		case area < -spherical.DefaultZero:
			tri[1], tri[2] = tri[2], tri[1]
		case area <= spherical.DefaultZero:
			return nil, fmt.Errorf("%w: triangle %d %v has zero area", ErrDegenerateTriangle, t, tri)
		}
		idx.tris[t] = tri
		for k := 0; k < 3; k++ {
			e := tri.Edge(k)
			if other, ok := idx.owner[e]; ok {
				return nil, fmt.Errorf("%w: %d→%d in triangles %d and %d", ErrNonManifold, e.From, e.To, other, t)
			}
			idx.owner[e] = t
		}
	}
	return idx, nil
}

// SignedArea is half the cross product of (b − a) and (c − a); positive when
// a, b, c turn counter-clockwise.
func SignedArea(a, b, c geom.Coord) float64 {
	ab, ac := b.Minus(a), c.Minus(a)
	return (ab.X*ac.Y - ab.Y*ac.X) / 2
}

// Len returns the number of triangles.
func (x *EdgeIndex) Len() int { return len(x.tris) }

// Triangle returns triangle t in counter-clockwise order.
func (x *EdgeIndex) Triangle(t int) pattern.Triangle { return x.tris[t] }

// Triangles returns a copy of every triangle in counter-clockwise order.
func (x *EdgeIndex) Triangles() []pattern.Triangle {
	return append([]pattern.Triangle(nil), x.tris...)
}

// Owner returns the triangle owning the directed edge u→v.
func (x *EdgeIndex) Owner(u, v int) (int, bool) {
	t, ok := x.owner[pattern.Edge{From: u, To: v}]
	return t, ok
}

// Neighbor returns the triangle across the k-th edge of t together with that
// edge as t sees it. ok is false on the boundary.
func (x *EdgeIndex) Neighbor(t, k int) (int, pattern.Edge, bool) {
	e := x.tris[t].Edge(k)
	n, ok := x.owner[e.Reverse()]
	return n, e, ok
}

// Boundary returns the set of nodes lying on an edge with no twin.
func (x *EdgeIndex) Boundary() map[int]bool {
	out := make(map[int]bool)
	for e := range x.owner {
		if _, ok := x.owner[e.Reverse()]; !ok {
			out[e.From] = true
			out[e.To] = true
		}
	}
	return out
}

// BoundaryEdges returns the directed boundary edges, sorted.
func (x *EdgeIndex) BoundaryEdges() []pattern.Edge {
	var out []pattern.Edge
	for e := range x.owner {
		if _, ok := x.owner[e.Reverse()]; !ok {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}
