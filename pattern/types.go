// SPDX-License-Identifier: MIT

package pattern

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jbeda/geom"
)

// Sentinel errors.
var (
	// ErrNodeOutOfRange is returned when a crease or triangle references a
	// node id that does not exist.
	ErrNodeOutOfRange = errors.New("pattern: node id out of range")

	// ErrSelfLoop is returned for a crease whose endpoints coincide.
	ErrSelfLoop = errors.New("pattern: crease joins a node to itself")

	// ErrNonFinite is returned for NaN or infinite node coordinates.
	ErrNonFinite = errors.New("pattern: non-finite coordinate")

	// ErrKind is returned for an unrecognised crease tag.
	ErrKind = errors.New("pattern: unknown crease kind")

	// ErrAngleRange is returned for a dihedral angle outside [0, 360).
	ErrAngleRange = errors.New("pattern: angle outside [0, 360)")

	// ErrCreaseConflict is returned when a crease already carries a
	// different angle.
	ErrCreaseConflict = errors.New("pattern: conflicting crease angle")

	// ErrLengthMismatch is returned when parallel slices differ in length.
	ErrLengthMismatch = errors.New("pattern: length mismatch")

	// ErrSyntax is returned by Parse for malformed lines.
	ErrSyntax = errors.New("pattern: syntax error")
)

// Kind tags a crease as mountain, valley or unassigned.
type Kind int

const (
	// Unassigned creases carry no fold direction and admit any angle.
	Unassigned Kind = iota
	// Mountain creases fold to angles of 180 or more.
	Mountain
	// Valley creases fold to angles of 180 or less.
	Valley
)

// String returns the tag used in .creasepattern files.
func (k Kind) String() string {
	switch k {
	case Mountain:
		return "M"
	case Valley:
		return "V"
	default:
		return ""
	}
}

// ParseKind maps "M", "V" and "" (any case, surrounding space ignored) to a
// Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "M":
		return Mountain, nil
	case "V":
		return Valley, nil
	case "":
		return Unassigned, nil
	}
	return Unassigned, fmt.Errorf("%w: %q", ErrKind, s)
}

// Admits reports whether angle is compatible with the tag. A flat angle is
// admitted by every kind; tol absorbs noise around 180.
func (k Kind) Admits(angle, tol float64) bool {
	switch k {
	case Mountain:
		return angle >= 180-tol
	case Valley:
		return angle <= 180+tol
	default:
		return true
	}
}

// Node is a pattern vertex at its flat-sheet position.
type Node struct {
	ID  int
	Pos geom.Coord
}

// Crease is an unordered pair of node ids with a fold tag.
type Crease struct {
	A, B int
	Kind Kind
}

// Edge is a directed node pair.
type Edge struct {
	From, To int
}

// Reverse returns the edge with its endpoints swapped.
func (e Edge) Reverse() Edge { return Edge{From: e.To, To: e.From} }

// Triangle holds three node ids of a triangulation element.
type Triangle [3]int

// Edge returns the k-th directed edge (t[k], t[k+1 mod 3]).
func (t Triangle) Edge(k int) Edge {
	return Edge{From: t[k%3], To: t[(k+1)%3]}
}

// Pattern is a crease pattern: node positions plus tagged creases.
type Pattern struct {
	Nodes   []Node
	Creases []Crease
}

// New builds a Pattern from parallel coordinate, pair and tag slices, as
// produced by a crease-pattern loader. kinds may be nil (all unassigned).
func New(positions []geom.Coord, pairs [][2]int, kinds []Kind) (*Pattern, error) {
	if kinds != nil && len(kinds) != len(pairs) {
		return nil, fmt.Errorf("%w: %d creases, %d kinds", ErrLengthMismatch, len(pairs), len(kinds))
	}
	p := &Pattern{
		Nodes:   make([]Node, len(positions)),
		Creases: make([]Crease, len(pairs)),
	}
	for i, pos := range positions {
		p.Nodes[i] = Node{ID: i, Pos: pos}
	}
	for i, pr := range pairs {
		c := Crease{A: pr[0], B: pr[1]}
		if kinds != nil {
			c.Kind = kinds[i]
		}
		p.Creases[i] = c
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks that node ids equal their index, coordinates are finite,
// and every crease joins two distinct existing nodes.
func (p *Pattern) Validate() error {
	for i, n := range p.Nodes {
		if n.ID != i {
			return fmt.Errorf("%w: node at index %d has id %d", ErrNodeOutOfRange, i, n.ID)
		}
		if !finite(n.Pos.X) || !finite(n.Pos.Y) {
			return fmt.Errorf("%w: node %d", ErrNonFinite, i)
		}
	}
	for i, c := range p.Creases {
		if !p.has(c.A) || !p.has(c.B) {
			return fmt.Errorf("%w: crease %d (%d, %d)", ErrNodeOutOfRange, i, c.A, c.B)
		}
		if c.A == c.B {
			return fmt.Errorf("%w: crease %d at node %d", ErrSelfLoop, i, c.A)
		}
	}
	return nil
}

// Positions returns the node coordinates indexed by node id.
func (p *Pattern) Positions() []geom.Coord {
	out := make([]geom.Coord, len(p.Nodes))
	for i, n := range p.Nodes {
		out[i] = n.Pos
	}
	return out
}

// Pairs returns the crease endpoints in crease order.
func (p *Pattern) Pairs() [][2]int {
	out := make([][2]int, len(p.Creases))
	for i, c := range p.Creases {
		out[i] = [2]int{c.A, c.B}
	}
	return out
}

// Kinds returns the tag of every crease keyed by both of its directions.
// For parallel creases the last one wins.
func (p *Pattern) Kinds() map[Edge]Kind {
	out := make(map[Edge]Kind, 2*len(p.Creases))
	for _, c := range p.Creases {
		out[Edge{c.A, c.B}] = c.Kind
		out[Edge{c.B, c.A}] = c.Kind
	}
	return out
}

func (p *Pattern) has(id int) bool {
	return id >= 0 && id < len(p.Nodes)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
