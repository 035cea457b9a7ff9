// SPDX-License-Identifier: MIT

package frame

import (
	"context"
	"fmt"
	"sort"

	"github.com/jbeda/geom"
	"github.com/katalvlaran/origami/mesh"
	"github.com/katalvlaran/origami/pattern"
	"gonum.org/v1/gonum/spatial/r3"
)

// queueItem pairs a triangle with its BFS depth.
type queueItem struct {
	tri   int
	depth int
}

// walker encapsulates mutable propagation state.
type walker struct {
	pos     []geom.Coord
	idx     *mesh.EdgeIndex
	creases *pattern.Creases
	opts    Options
	ctx     context.Context
	queue   []queueItem
	res     *Result
}

// Propagate assigns a frame to every triangle reachable from seed and a 3D
// position to every corner of those triangles. It returns ErrSeedOutOfRange,
// ErrNilInput or ErrOptionViolation for bad input, ErrMissingCrease when an
// interior edge has no angle, and any hook or context error. On error the
// partial Result is returned alongside.
func Propagate(positions []geom.Coord, idx *mesh.EdgeIndex, creases *pattern.Creases, seed int, opts ...Option) (*Result, error) {
	// Validate inputs and options
	if idx == nil || creases == nil {
		return nil, ErrNilInput
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if seed < 0 || seed >= idx.Len() {
		return nil, fmt.Errorf("%w: %d of %d", ErrSeedOutOfRange, seed, idx.Len())
	}

	// Prepare walker
	n := idx.Len()
	w := &walker{
		pos:     positions,
		idx:     idx,
		creases: creases,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		res: &Result{
			Frames:    make([]*r3.Mat, n),
			Positions: make([]r3.Vec, len(positions)),
			Placed:    make([]bool, len(positions)),
			Order:     make([]int, 0, n),
			Parent:    make(map[int]int, n),
			Depth:     make(map[int]int, n),
		},
	}

	// Seed triangle stays flat in the z = 0 plane
	w.res.Frames[seed] = r3.Eye()
	for _, id := range idx.Triangle(seed) {
		w.place(id, r3.Vec{X: positions[id].X, Y: positions[id].Y})
	}
	w.enqueue(seed, 0)

	return w.res, w.loop()
}

func (w *walker) enqueue(t, d int) {
	w.res.Depth[t] = d
	w.queue = append(w.queue, queueItem{tri: t, depth: d})
}

// place records the first 3D position of a node.
func (w *walker) place(id int, p r3.Vec) {
	if w.res.Placed[id] {
		return
	}
	w.res.Placed[id] = true
	w.res.Positions[id] = p
	w.opts.OnPlace(id, p)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.tri)
		if err := w.opts.OnVisit(item.tri, item.depth); err != nil {
			return fmt.Errorf("frame: OnVisit error at triangle %d: %w", item.tri, err)
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}
	return nil
}

// expand crosses every interior edge of item into unreached neighbours,
// assigns their frames and places their far corners. New triangles are
// enqueued in ascending index order.
func (w *walker) expand(item queueItem) error {
	F := w.res.Frames[item.tri]
	var found []int
	for k := 0; k < 3; k++ {
		nb, e, ok := w.idx.Neighbor(item.tri, k)
		if !ok || w.res.Frames[nb] != nil {
			continue
		}
		// Fold the frame across the shared edge
		dihedral, ok := w.creases.Lookup(e.From, e.To)
		if !ok {
			return fmt.Errorf("%w: %d→%d between triangles %d and %d",
				ErrMissingCrease, e.From, e.To, item.tri, nb)
		}
		next, err := propagate(F, w.pos[e.From], w.pos[e.To], dihedral, w.opts.Tol)
		if err != nil {
			return fmt.Errorf("triangle %d: %w", nb, err)
		}
		if w.opts.Renormalize {
			if next, err = Renormalize(next); err != nil {
				return fmt.Errorf("triangle %d: %w", nb, err)
			}
		}
		w.res.Frames[nb] = next
		w.res.Parent[nb] = item.tri

		// Place the corner opposite the shared edge
		u := e.From
		for _, id := range w.idx.Triangle(nb) {
			if id == e.From || id == e.To {
				continue
			}
			w.place(id, embed(next, w.res.Positions[u], w.pos[u], w.pos[id]))
		}
		found = append(found, nb)
	}

	sort.Ints(found)
	for _, nb := range found {
		w.enqueue(nb, item.depth+1)
	}
	return nil
}
