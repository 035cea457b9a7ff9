// SPDX-License-Identifier: MIT

package pattern

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/origami/spherical"
)

// Flat is the dihedral angle of an unfolded crease.
const Flat = 180.0

// Creases maps directed node pairs to resolved dihedral angles (degrees).
// Entries are always written in both directions. The zero value is not
// usable; call NewCreases.
type Creases struct {
	// Tol decides when two angles for the same crease agree.
	Tol spherical.Tolerances

	angles map[Edge]float64
}

// NewCreases returns an empty map using spherical.DefaultTolerances.
func NewCreases() *Creases {
	return &Creases{
		Tol:    spherical.DefaultTolerances(),
		angles: make(map[Edge]float64),
	}
}

// Clone returns an independent copy sharing the tolerances.
func (c *Creases) Clone() *Creases {
	out := &Creases{Tol: c.Tol, angles: make(map[Edge]float64, len(c.angles))}
	for e, a := range c.angles {
		out.angles[e] = a
	}
	return out
}

// Set records angle for (a, b) and (b, a). Re-setting an equal angle is a
// no-op; a different one returns ErrCreaseConflict and leaves the map as is.
func (c *Creases) Set(a, b int, angle float64) error {
	if err := c.check(a, b, angle); err != nil {
		return err
	}
	if c.Has(a, b) {
		return nil
	}
	c.angles[Edge{a, b}] = angle
	c.angles[Edge{b, a}] = angle
	return nil
}

// Lookup returns the angle stored for the directed pair (a, b).
func (c *Creases) Lookup(a, b int) (float64, bool) {
	v, ok := c.angles[Edge{a, b}]
	return v, ok
}

// Has reports whether (a, b) is resolved.
func (c *Creases) Has(a, b int) bool {
	_, ok := c.angles[Edge{a, b}]
	return ok
}

// Len returns the number of directed entries (twice the number of creases).
func (c *Creases) Len() int { return len(c.angles) }

// Edges returns every directed entry sorted by (From, To).
func (c *Creases) Edges() []Edge {
	out := make([]Edge, 0, len(c.angles))
	for e := range c.angles {
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

// AddNodeCreases writes one vertex solution: angles[k] is the dihedral of
// the crease (node, neighbors[k]). Either every crease is written or, on the
// first conflict, none is. Creases that already agree keep their stored
// value.
func (c *Creases) AddNodeCreases(node int, neighbors []int, angles []float64) error {
	if len(neighbors) != len(angles) {
		return fmt.Errorf("%w: %d neighbors, %d angles", ErrLengthMismatch, len(neighbors), len(angles))
	}
	for k, nb := range neighbors {
		if err := c.check(node, nb, angles[k]); err != nil {
			return fmt.Errorf("node %d: %w", node, err)
		}
	}
	for k, nb := range neighbors {
		if c.Has(node, nb) {
			continue
		}
		c.angles[Edge{node, nb}] = angles[k]
		c.angles[Edge{nb, node}] = angles[k]
	}
	return nil
}

// AddFlatCreases gives every triangle edge that has no entry yet the flat
// angle, and returns how many undirected edges were added. Existing entries
// are never touched.
func (c *Creases) AddFlatCreases(tris []Triangle) int {
	added := 0
	for _, t := range tris {
		for k := 0; k < 3; k++ {
			e := t.Edge(k)
			if e.From == e.To || c.Has(e.From, e.To) {
				continue
			}
			c.angles[e] = Flat
			c.angles[e.Reverse()] = Flat
			added++
		}
	}
	return added
}

func (c *Creases) check(a, b int, angle float64) error {
	if a == b {
		return fmt.Errorf("%w: node %d", ErrSelfLoop, a)
	}
	if math.IsNaN(angle) || math.IsInf(angle, 0) || angle < 0 || angle >= 360 {
		return fmt.Errorf("%w: (%d, %d) = %v", ErrAngleRange, a, b, angle)
	}
	if old, ok := c.angles[Edge{a, b}]; ok && !c.Tol.SameAngle(old, angle) {
		return fmt.Errorf("%w: (%d, %d) has %g, got %g", ErrCreaseConflict, a, b, old, angle)
	}
	return nil
}
