// SPDX-License-Identifier: MIT

package fold

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/origami/frame"
	"github.com/katalvlaran/origami/mesh"
	"github.com/katalvlaran/origami/neighbors"
	"github.com/katalvlaran/origami/pattern"
	"github.com/katalvlaran/origami/vertex"
)

// SolveCreases resolves the unknown creases around every node for which
// interior returns true (every node when interior is nil), starting from the
// angles in known. Nodes on the paper boundary must be excluded by interior:
// their wedges do not close. Nodes with fewer than three creases are never
// solved and count as unresolved while any of their creases is unknown.
// known is not modified. On ErrUnresolved the partial map is returned with
// the error.
func SolveCreases(p *pattern.Pattern, known *pattern.Creases, interior func(int) bool, opts ...Option) (*pattern.Creases, error) {
	if p == nil {
		return nil, ErrNilPattern
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ix, err := neighbors.Build(p.Positions(), p.Pairs())
	if err != nil {
		return nil, err
	}
	out := pattern.NewCreases()
	if known != nil {
		out = known.Clone()
	}
	s := &sweeper{ix: ix, kinds: p.Kinds(), creases: out, opts: o}

	pending := make([]int, 0, ix.Len())
	for id := 0; id < ix.Len(); id++ {
		if interior == nil || interior(id) {
			pending = append(pending, id)
		}
	}

	for progress := true; progress; {
		progress = false
		next := pending[:0]
		for _, id := range pending {
			done, err := s.node(id)
			if err != nil {
				return nil, fmt.Errorf("fold: node %d: %w", id, err)
			}
			if done {
				progress = true
				continue
			}
			next = append(next, id)
		}
		pending = next
	}

	if len(pending) > 0 {
		sort.Ints(pending)
		return out, fmt.Errorf("%w: %v", ErrUnresolved, pending)
	}
	return out, nil
}

// Solve triangulates the folded state of p: it indexes tris, solves the
// creases around every node off the triangulation boundary, sets the
// remaining triangle edges flat and propagates frames from triangle seed.
// Mountain or valley creases that end up flat are listed in
// Result.Flattened.
// The Result gathered so far is returned with any error.
func Solve(p *pattern.Pattern, tris []pattern.Triangle, known *pattern.Creases, seed int, opts ...Option) (*Result, error) {
	if p == nil {
		return nil, ErrNilPattern
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	idx, err := mesh.NewEdgeIndex(p.Positions(), tris)
	if err != nil {
		return nil, err
	}
	res := &Result{Index: idx}

	boundary := idx.Boundary()
	res.Creases, err = SolveCreases(p, known, func(id int) bool { return !boundary[id] }, opts...)
	if err != nil {
		return res, err
	}
	res.Flattened = taggedUnresolved(p, idx, res.Creases)
	res.Creases.AddFlatCreases(idx.Triangles())

	res.Frames, err = frame.Propagate(p.Positions(), idx, res.Creases, seed, o.Frame...)
	return res, err
}

// taggedUnresolved lists the mountain and valley creases of p that lie on
// the triangulation but have no angle yet, as (low, high) node pairs.
func taggedUnresolved(p *pattern.Pattern, idx *mesh.EdgeIndex, c *pattern.Creases) []pattern.Edge {
	var out []pattern.Edge
	for _, cr := range p.Creases {
		if cr.Kind == pattern.Unassigned || c.Has(cr.A, cr.B) {
			continue
		}
		_, fwd := idx.Owner(cr.A, cr.B)
		_, rev := idx.Owner(cr.B, cr.A)
		if !fwd && !rev {
			continue
		}
		e := pattern.Edge{From: cr.A, To: cr.B}
		if e.From > e.To {
			e = e.Reverse()
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// sweeper holds the shared state of one SolveCreases call.
type sweeper struct {
	ix      *neighbors.Index
	kinds   map[pattern.Edge]pattern.Kind
	creases *pattern.Creases
	opts    Options
}

// node tries to finish one node. It reports true once every crease around
// the node has an angle, and false while too many are still unknown. A node
// whose angles were all given is still run through vertex.Solve so that
// contradicting angles surface as vertex.ErrOverconstrained.
func (s *sweeper) node(id int) (bool, error) {
	rec, _ := s.ix.Record(id)
	angles := make([]vertex.Angle, rec.Degree())
	unknown := 0
	for k, nb := range rec.Neighbors {
		if v, ok := s.creases.Lookup(id, nb); ok {
			angles[k] = vertex.Known(v)
			continue
		}
		unknown++
	}
	switch {
	case rec.Degree() < 3:
		return unknown == 0, nil
	case unknown == 0:
		// fully given: only check that the angles close
		if _, err := vertex.Solve(rec.Wedges, angles, s.opts.Vertex...); err != nil {
			return false, err
		}
		return true, nil
	case unknown > vertex.MaxUnknowns:
		return false, nil
	}

	sols, err := vertex.Solve(rec.Wedges, angles, s.opts.Vertex...)
	if err != nil {
		return false, err
	}
	sol, ok := s.admissible(id, rec.Neighbors, angles, sols)
	if !ok {
		return false, fmt.Errorf("%w: %d candidates", ErrNoAdmissibleSolution, len(sols))
	}
	if err = s.creases.AddNodeCreases(id, rec.Neighbors, sol); err != nil {
		return false, err
	}
	s.opts.OnSolve(id, sol)
	return true, nil
}

// admissible returns the first solution whose newly solved angles agree with
// the mountain and valley tags of their creases.
func (s *sweeper) admissible(id int, nbrs []int, angles []vertex.Angle, sols [][]float64) ([]float64, bool) {
	tol := s.creases.Tol.Consistency
	for _, sol := range sols {
		ok := true
		for k, nb := range nbrs {
			if angles[k].IsKnown() {
				continue
			}
			if !s.kinds[pattern.Edge{From: id, To: nb}].Admits(sol[k], tol) {
				ok = false
				break
			}
		}
		if ok {
			return sol, true
		}
	}
	return nil, false
}
