// SPDX-License-Identifier: MIT

package fold

import (
	"errors"

	"github.com/katalvlaran/origami/frame"
	"github.com/katalvlaran/origami/mesh"
	"github.com/katalvlaran/origami/pattern"
	"github.com/katalvlaran/origami/vertex"
)

// Sentinel errors.
var (
	// ErrNilPattern is returned when no pattern is supplied.
	ErrNilPattern = errors.New("fold: pattern is nil")

	// ErrUnresolved is returned when sweeping stops with nodes that still
	// have more than three unknown creases.
	ErrUnresolved = errors.New("fold: nodes left underconstrained")

	// ErrNoAdmissibleSolution is returned when the mountain and valley tags
	// around a node rule out every geometric solution.
	ErrNoAdmissibleSolution = errors.New("fold: no solution admitted by crease tags")
)

// Option configures Solve and SolveCreases.
type Option func(*Options)

// Options holds the per-stage options and the solve hook.
type Options struct {
	// Vertex is passed to every vertex.Solve call.
	Vertex []vertex.Option

	// Frame is passed to frame.Propagate.
	Frame []frame.Option

	// OnSolve is called after a node's creases are written, with the angles
	// in the node's counter-clockwise neighbour order.
	OnSolve func(node int, angles []float64)
}

// DefaultOptions returns no stage options and a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnSolve: func(int, []float64) {},
	}
}

// WithVertexOptions appends options for every vertex solve.
func WithVertexOptions(opts ...vertex.Option) Option {
	return func(o *Options) {
		o.Vertex = append(o.Vertex, opts...)
	}
}

// WithFrameOptions appends options for frame propagation.
func WithFrameOptions(opts ...frame.Option) Option {
	return func(o *Options) {
		o.Frame = append(o.Frame, opts...)
	}
}

// WithOnSolve registers a callback run after each node is solved.
func WithOnSolve(fn func(node int, angles []float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSolve = fn
		}
	}
}

// Result is the outcome of Solve.
type Result struct {
	// Creases holds every resolved angle, flat triangulation edges included.
	Creases *pattern.Creases

	// Frames is the propagation result; nil if solving failed earlier.
	Frames *frame.Result

	// Index is the oriented triangulation.
	Index *mesh.EdgeIndex

	// Flattened lists the mountain and valley creases no vertex solved,
	// which were set to the flat angle with the rest of the triangulation.
	Flattened []pattern.Edge
}
