// SPDX-License-Identifier: MIT

package frame_test

import (
	"testing"

	"github.com/jbeda/geom"
	"github.com/katalvlaran/origami/frame"
	"github.com/katalvlaran/origami/mesh"
	"github.com/katalvlaran/origami/pattern"
)

// grid returns an n×n square grid split into 2n² triangles, all flat.
func grid(b *testing.B, n int) ([]geom.Coord, *mesh.EdgeIndex, *pattern.Creases) {
	b.Helper()
	id := func(i, j int) int { return j*(n+1) + i }
	var pos []geom.Coord
	for j := 0; j <= n; j++ {
		for i := 0; i <= n; i++ {
			pos = append(pos, geom.Coord{X: float64(i), Y: float64(j)})
		}
	}
	var tris []pattern.Triangle
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			tris = append(tris,
				pattern.Triangle{id(i, j), id(i+1, j), id(i+1, j+1)},
				pattern.Triangle{id(i, j), id(i+1, j+1), id(i, j+1)})
		}
	}
	idx, err := mesh.NewEdgeIndex(pos, tris)
	if err != nil {
		b.Fatalf("NewEdgeIndex failed: %v", err)
	}
	creases := pattern.NewCreases()
	creases.AddFlatCreases(tris)
	return pos, idx, creases
}

// BenchmarkPropagate_Grid32 walks 2048 triangles with renormalisation.
func BenchmarkPropagate_Grid32(b *testing.B) {
	pos, idx, creases := grid(b, 32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := frame.Propagate(pos, idx, creases, 0); err != nil {
			b.Fatalf("Propagate failed: %v", err)
		}
	}
}

// BenchmarkPropagate_Grid32Raw skips renormalisation.
func BenchmarkPropagate_Grid32Raw(b *testing.B) {
	pos, idx, creases := grid(b, 32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := frame.Propagate(pos, idx, creases, 0, frame.WithRenormalize(false)); err != nil {
			b.Fatalf("Propagate failed: %v", err)
		}
	}
}
