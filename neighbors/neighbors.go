// SPDX-License-Identifier: MIT

package neighbors

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/golang/geo/s1"
	"github.com/jbeda/geom"
)

var (
	// ErrNodeOutOfRange is returned when a crease references a missing node.
	ErrNodeOutOfRange = errors.New("neighbors: node id out of range")

	// ErrCoincidentNodes is returned when a crease joins two nodes at the
	// same position, which has no direction.
	ErrCoincidentNodes = errors.New("neighbors: crease endpoints coincide")
)

// Record is the neighbourhood of one node. Wedges[k] is the angle in degrees
// swept from Neighbors[k] to Neighbors[k+1 mod n].
type Record struct {
	Neighbors []int
	Wedges    []float64
}

// Degree returns the number of distinct neighbours.
func (r Record) Degree() int { return len(r.Neighbors) }

// WedgeSum returns the sum of all wedges.
func (r Record) WedgeSum() float64 {
	var s float64
	for _, w := range r.Wedges {
		s += w
	}
	return s
}

// Index holds one Record per node, indexed by node id.
type Index struct {
	records []Record
}

// Len returns the number of nodes.
func (ix *Index) Len() int { return len(ix.records) }

// Record returns the neighbourhood of node id; ok is false if id is out of
// range.
func (ix *Index) Record(id int) (Record, bool) {
	if id < 0 || id >= len(ix.records) {
		return Record{}, false
	}
	return ix.records[id], true
}

// Build computes the index for positions (node id = slice index) and the
// undirected crease pairs.
func Build(positions []geom.Coord, creases [][2]int) (*Index, error) {
	n := len(positions)
	adj := make([]map[int]struct{}, n)
	for i, c := range creases {
		a, b := c[0], c[1]
		if a < 0 || a >= n || b < 0 || b >= n {
			return nil, fmt.Errorf("%w: crease %d (%d, %d)", ErrNodeOutOfRange, i, a, b)
		}
		if a == b {
			continue
		}
		if positions[a].Minus(positions[b]).Magnitude() == 0 {
			return nil, fmt.Errorf("%w: crease %d (%d, %d)", ErrCoincidentNodes, i, a, b)
		}
		link(adj, a, b)
		link(adj, b, a)
	}

	ix := &Index{records: make([]Record, n)}
	for id := range positions {
		ix.records[id] = record(positions, id, adj[id])
	}
	return ix, nil
}

// polar pairs a neighbour with its direction from the centre node.
type polar struct {
	id    int
	angle float64
}

func record(positions []geom.Coord, id int, set map[int]struct{}) Record {
	if len(set) == 0 {
		return Record{}
	}
	centre := positions[id]
	ps := make([]polar, 0, len(set))
	for nb := range set {
		d := positions[nb].Minus(centre)
		ps = append(ps, polar{id: nb, angle: s1.Angle(math.Atan2(d.Y, d.X)).Degrees()})
	}
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].angle != ps[j].angle {
			return ps[i].angle < ps[j].angle
		}
		return ps[i].id < ps[j].id
	})

	k := len(ps)
	rec := Record{
		Neighbors: make([]int, k),
		Wedges:    make([]float64, k),
	}
	for i, p := range ps {
		next := ps[(i+1)%k]
		rec.Neighbors[i] = p.id
		rec.Wedges[i] = math.Mod(next.angle-p.angle+720, 360)
	}
	return rec
}

func link(adj []map[int]struct{}, a, b int) {
	if adj[a] == nil {
		adj[a] = make(map[int]struct{})
	}
	adj[a][b] = struct{}{}
}
