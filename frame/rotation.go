// SPDX-License-Identifier: MIT

package frame

import (
	"fmt"

	"github.com/golang/geo/s1"
	"github.com/jbeda/geom"
	"github.com/katalvlaran/origami/pattern"
	"github.com/katalvlaran/origami/spherical"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Rotation returns the right-handed rotation by deg degrees about axis.
// axis need not be unit length but must be non-zero unless deg is 0.
func Rotation(axis r3.Vec, deg float64) *r3.Mat {
	rad := (s1.Angle(deg) * s1.Degree).Radians()
	return r3.NewRotation(rad, axis).Mat()
}

// PropagateFrame returns the frame of the triangle across the edge from→to
// of a triangle with frame F, folded by dihedral degrees. The result is not
// renormalised.
func PropagateFrame(F *r3.Mat, from, to geom.Coord, dihedral float64) (*r3.Mat, error) {
	return propagate(F, from, to, dihedral, spherical.DefaultTolerances())
}

// propagate computes F·R rather than the conjugation F·R·Fᵀ alone: the
// conjugate is the fold as a global rotation and still has to be applied to
// F, otherwise frames stop being rigid after the second crease.
func propagate(F *r3.Mat, from, to geom.Coord, dihedral float64, tol spherical.Tolerances) (*r3.Mat, error) {
	d := to.Minus(from)
	if tol.IsZero(d.Magnitude()) {
		return nil, fmt.Errorf("%w: (%g, %g)→(%g, %g)", ErrDegenerateEdge, from.X, from.Y, to.X, to.Y)
	}
	axis := r3.Unit(r3.Vec{X: d.X, Y: d.Y})
	R := Rotation(axis, dihedral-pattern.Flat)

	// the edge axis is expressed in the triangle's flat coordinates, so the
	// conjugated global rotation (F·R·Fᵀ)·F reduces to F·R
	var next r3.Mat
	next.Mul(F, R)
	return &next, nil
}

// Renormalize returns the rotation nearest to F: F = U·Σ·Vᵀ with Σ replaced by
// the identity, and the last column of U negated if that would leave a
// reflection.
func Renormalize(F *r3.Mat) (*r3.Mat, error) {
	var svd mat.SVD
	if !svd.Factorize(F, mat.SVDFull) {
		return nil, ErrRenormalize
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	out := r3.NewMat(nil)
	out.Mul(&u, v.T())
	if out.Det() < 0 {
		for i := 0; i < 3; i++ {
			u.Set(i, 2, -u.At(i, 2))
		}
		out.Mul(&u, v.T())
	}
	return out, nil
}

// embed places the flat point p under frame F, anchored at the node whose flat
// position is origin and whose 3D position is at.
func embed(F *r3.Mat, at r3.Vec, origin, p geom.Coord) r3.Vec {
	d := p.Minus(origin)
	return r3.Add(at, F.MulVec(r3.Vec{X: d.X, Y: d.Y}))
}
