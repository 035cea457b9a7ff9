// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/jbeda/geom"
	"github.com/katalvlaran/origami/pattern"
)

// Sentinel errors.
var (
	// ErrNilInput is returned when there is nothing to draw.
	ErrNilInput = errors.New("render: nil input")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("render: invalid option supplied")
)

// Option configures WriteSVG.
type Option func(*Options)

// Options holds drawing settings. Lengths are fractions of the larger side
// of the pattern's bounding box.
type Options struct {
	// Labels draws node indices.
	Labels bool

	// Margin pads the view box on every side.
	Margin float64

	// Stroke is the crease line width.
	Stroke float64

	err error
}

// DefaultOptions returns labels on, a 5% margin and a 0.5% stroke.
func DefaultOptions() Options {
	return Options{Labels: true, Margin: 0.05, Stroke: 0.005}
}

// WithLabels switches node index labels on or off.
func WithLabels(on bool) Option {
	return func(o *Options) {
		o.Labels = on
	}
}

// WithMargin sets the view box padding; it must be non-negative.
func WithMargin(m float64) Option {
	return func(o *Options) {
		if m < 0 || math.IsNaN(m) {
			o.err = fmt.Errorf("%w: margin %v", ErrOptionViolation, m)
			return
		}
		o.Margin = m
	}
}

// WithStroke sets the crease line width; it must be positive.
func WithStroke(s float64) Option {
	return func(o *Options) {
		if s <= 0 || math.IsNaN(s) {
			o.err = fmt.Errorf("%w: stroke %v", ErrOptionViolation, s)
			return
		}
		o.Stroke = s
	}
}

// svg writes elements and keeps the first write error.
type svg struct {
	w   io.Writer
	err error
}

func (s *svg) printf(format string, a ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

func (s *svg) start(viewBox geom.Rect) {
	s.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg">
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height())
}

func (s *svg) end() {
	s.printf("</svg>\n")
}

func (s *svg) line(p1, p2 geom.Coord, style string) {
	s.printf("<line x1='%f' y1='%f' x2='%f' y2='%f' style='%s'/>\n", p1.X, p1.Y, p2.X, p2.Y, style)
}

func (s *svg) circle(c geom.Coord, r float64, style string) {
	s.printf("<circle cx='%f' cy='%f' r='%f' style='%s'/>\n", c.X, c.Y, r, style)
}

func (s *svg) text(at geom.Coord, size float64, label string) {
	s.printf("<text x='%f' y='%f' font-size='%f'>%s</text>\n", at.X, at.Y, size, label)
}

// WriteSVG draws p to w.
func WriteSVG(w io.Writer, p *pattern.Pattern, opts ...Option) error {
	if p == nil || len(p.Nodes) == 0 {
		return ErrNilInput
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	if err := p.Validate(); err != nil {
		return err
	}

	pos := make([]geom.Coord, len(p.Nodes))
	for i, n := range p.Nodes {
		pos[i] = flip(n.Pos)
	}
	bounds := geom.Rect{Min: pos[0], Max: pos[0]}
	for _, c := range pos[1:] {
		bounds.ExpandToContainCoord(c)
	}
	size := math.Max(bounds.Width(), bounds.Height())
	if size == 0 {
		size = 1
	}
	pad := geom.Coord{X: o.Margin * size, Y: o.Margin * size}
	view := geom.Rect{Min: bounds.Min.Minus(pad), Max: bounds.Min.Minus(pad)}
	view.ExpandToContainCoord(geom.Coord{
		X: bounds.Min.X + bounds.Width() + pad.X,
		Y: bounds.Min.Y + bounds.Height() + pad.Y,
	})

	stroke := o.Stroke * size
	s := &svg{w: w}
	s.start(view)
	for _, c := range p.Creases {
		s.line(pos[c.A], pos[c.B], creaseStyle(c.Kind, stroke))
	}
	for i, c := range pos {
		s.circle(c, 1.5*stroke, "fill:blue")
		if o.Labels {
			off := geom.Coord{X: 2 * stroke, Y: -2 * stroke}
			s.text(c.Plus(off), 6*stroke, fmt.Sprintf("%d", i))
		}
	}
	s.end()
	return s.err
}

// flip mirrors c in the x axis so the sheet reads the way it is drawn on
// paper. Zero stays positive.
func flip(c geom.Coord) geom.Coord {
	if c.Y != 0 {
		c.Y = -c.Y
	}
	return c
}

func creaseStyle(k pattern.Kind, stroke float64) string {
	switch k {
	case pattern.Mountain:
		return fmt.Sprintf("stroke:black;stroke-width:%f", stroke)
	case pattern.Valley:
		return fmt.Sprintf("stroke:black;stroke-width:%f;stroke-dasharray:%f,%f", stroke, 4*stroke, 2*stroke)
	default:
		return fmt.Sprintf("stroke:blue;stroke-width:%f", stroke)
	}
}
