// Package dijkstra_test provides examples demonstrating the delivery router.
// Each example is runnable via “go test -run Example”.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/deliveryroute/dijkstra"
	"github.com/katalvlaran/deliveryroute/matrix"
)

// ExampleFind routes from the restaurant at 0 to the customer at 3.
// The direct road 0–2 costs 4, but 0→1→2 costs 3, so the detour wins.
func ExampleFind() {
	g, err := matrix.FromEdges(4, []matrix.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 2},
		{U: 0, V: 2, Weight: 4},
		{U: 2, V: 3, Weight: 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	route, err := dijkstra.Find(g, 0, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("distance=%d path=%s\n", route.Distance, dijkstra.FormatPath(route.Path, dijkstra.DefaultSeparator))
	// Output: distance=4 path=0 -> 1 -> 2 -> 3
}

// ExampleDijkstra_unreachable shows that an isolated customer is reported,
// not treated as a failure.
func ExampleDijkstra_unreachable() {
	g, _ := matrix.FromEdges(3, []matrix.Edge{{U: 0, V: 1, Weight: 5}})

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for v := range res.Dist {
		if res.Reachable(v) {
			fmt.Printf("%d: %d\n", v, res.Dist[v])
		} else {
			fmt.Printf("%d: no path\n", v)
		}
	}
	// Output:
	// 0: 0
	// 1: 5
	// 2: no path
}
