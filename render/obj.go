// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/origami/frame"
	"github.com/katalvlaran/origami/mesh"
)

// WriteOBJ writes every placed node as a vertex and every reached triangle as
// a counter-clockwise face. Vertices are renumbered densely from 1 in node
// order; unplaced nodes are left out.
func WriteOBJ(w io.Writer, idx *mesh.EdgeIndex, res *frame.Result) error {
	if idx == nil || res == nil {
		return ErrNilInput
	}
	ref := make([]int, len(res.Placed))
	next := 1
	for n := range res.Placed {
		p, ok := res.Position(n)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "v %f %f %f\n", p.X, p.Y, p.Z); err != nil {
			return err
		}
		ref[n] = next
		next++
	}
	for t := 0; t < idx.Len(); t++ {
		if !res.Reached(t) {
			continue
		}
		tri := idx.Triangle(t)
		if _, err := fmt.Fprintf(w, "f %d %d %d\n", ref[tri[0]], ref[tri[1]], ref[tri[2]]); err != nil {
			return err
		}
	}
	return nil
}
