// SPDX-License-Identifier: MIT

package neighbors_test

import (
	"fmt"

	"github.com/jbeda/geom"
	"github.com/katalvlaran/origami/neighbors"
)

// ExampleBuild lists the neighbours of a degree-4 vertex in angular order.
func ExampleBuild() {
	pos := []geom.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 1}, {X: 0, Y: -1}}
	ix, err := neighbors.Build(pos, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	rec, _ := ix.Record(0)
	fmt.Println(rec.Neighbors)
	fmt.Printf("%.0f\n", rec.Wedges)
	// Output:
	// [4 1 2 3]
	// [90 90 45 135]
}
