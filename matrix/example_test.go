package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/deliveryroute/matrix"
)

// ExampleFromEdges builds the four-stop map used throughout the docs and
// prints each road once.
func ExampleFromEdges() {
	m, err := matrix.FromEdges(4, []matrix.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 2},
		{U: 0, V: 2, Weight: 4},
		{U: 2, V: 3, Weight: 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, e := range m.Edges() {
		fmt.Printf("%d-%d:%d\n", e.U, e.V, e.Weight)
	}
	// Output:
	// 0-1:1
	// 0-2:4
	// 1-2:2
	// 2-3:1
}
