// SPDX-License-Identifier: MIT

package vertex_test

import (
	"testing"

	"github.com/katalvlaran/origami/vertex"
)

// benchmarkSolve runs Solve on a fixed vertex and fails on unexpected errors.
func benchmarkSolve(b *testing.B, wedges []float64, angles []vertex.Angle) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := vertex.Solve(wedges, angles); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Degree3 measures the base case alone.
func BenchmarkSolve_Degree3(b *testing.B) {
	benchmarkSolve(b, []float64{30, 40, 50}, make([]vertex.Angle, 3))
}

// BenchmarkSolve_Degree6 measures three reductions.
func BenchmarkSolve_Degree6(b *testing.B) {
	wedges := []float64{60, 60, 60, 60, 60, 60}
	angles := []vertex.Angle{vertex.Known(150), vertex.Known(180), vertex.Known(180), {}, {}, {}}
	benchmarkSolve(b, wedges, angles)
}
