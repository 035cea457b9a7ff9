// SPDX-License-Identifier: MIT

package spherical_test

import (
	"testing"

	"github.com/katalvlaran/origami/spherical"
)

// BenchmarkSolveTriangleAngles measures the general (non-degenerate) path.
func BenchmarkSolveTriangleAngles(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, _, err := spherical.SolveTriangleAngles(30, 40, 50); err != nil {
			b.Fatalf("solve failed: %v", err)
		}
	}
}

// BenchmarkFindOppositeSide measures the inverse direction.
func BenchmarkFindOppositeSide(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = spherical.FindOppositeSide(44.6, 40, 50)
	}
}
