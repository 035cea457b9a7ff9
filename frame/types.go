// SPDX-License-Identifier: MIT

package frame

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/origami/spherical"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors.
var (
	// ErrMissingCrease is returned when an interior edge has no dihedral
	// angle in the crease map.
	ErrMissingCrease = errors.New("frame: edge has no crease angle")

	// ErrSeedOutOfRange is returned for a seed that is not a triangle index.
	ErrSeedOutOfRange = errors.New("frame: seed triangle out of range")

	// ErrNilInput is returned when the index or the crease map is nil.
	ErrNilInput = errors.New("frame: nil index or crease map")

	// ErrDegenerateEdge is returned when a fold axis has zero length.
	ErrDegenerateEdge = errors.New("frame: zero-length fold axis")

	// ErrRenormalize is returned when a frame cannot be factorised.
	ErrRenormalize = errors.New("frame: SVD renormalisation failed")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("frame: invalid option supplied")
)

// Option configures Propagate. Invalid options are recorded and surface as
// ErrOptionViolation when Propagate is called.
type Option func(*Options)

// Options holds parameters and callbacks for Propagate.
type Options struct {
	// Ctx allows cancellation; it is checked once per dequeued triangle.
	Ctx context.Context

	// Renormalize snaps every new frame to the nearest rotation.
	Renormalize bool

	// Tol decides when a fold axis is too short to use.
	Tol spherical.Tolerances

	// OnVisit is called for each dequeued triangle with its BFS depth. An
	// error aborts the walk.
	OnVisit func(tri, depth int) error

	// OnPlace is called once for every node that receives a 3D position.
	OnPlace func(node int, p r3.Vec)

	err error
}

// DefaultOptions returns a background context, renormalisation on,
// spherical.DefaultTolerances and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Renormalize: true,
		Tol:         spherical.DefaultTolerances(),
		OnVisit:     func(int, int) error { return nil },
		OnPlace:     func(int, r3.Vec) {},
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRenormalize switches SVD renormalisation on or off.
func WithRenormalize(on bool) Option {
	return func(o *Options) {
		o.Renormalize = on
	}
}

// WithTolerances replaces the numeric thresholds.
func WithTolerances(t spherical.Tolerances) Option {
	return func(o *Options) {
		if err := t.Validate(); err != nil {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, err)
			return
		}
		o.Tol = t
	}
}

// WithOnVisit registers a callback run on every dequeued triangle.
func WithOnVisit(fn func(tri, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnPlace registers a callback run when a node is placed in 3D.
func WithOnPlace(fn func(node int, p r3.Vec)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPlace = fn
		}
	}
}

// Result holds the outcome of a propagation:
//   - Frames: per-triangle rotation, nil where unreached.
//   - Positions, Placed: per-node 3D position, valid where Placed is true.
//   - Order: triangles in visit sequence.
//   - Parent, Depth: the BFS tree over triangles.
type Result struct {
	Frames    []*r3.Mat
	Positions []r3.Vec
	Placed    []bool
	Order     []int
	Parent    map[int]int
	Depth     map[int]int
}

// Reached reports whether triangle t received a frame.
func (r *Result) Reached(t int) bool {
	return t >= 0 && t < len(r.Frames) && r.Frames[t] != nil
}

// Position returns the 3D position of node n if it was placed.
func (r *Result) Position(n int) (r3.Vec, bool) {
	if n < 0 || n >= len(r.Placed) || !r.Placed[n] {
		return r3.Vec{}, false
	}
	return r.Positions[n], true
}
