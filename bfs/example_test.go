package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/regmap/bfs"
)

// ExampleBFS demonstrates levels and a shortest path on a small graph.
func ExampleBFS() {
	//   A
	//  / \
	// B   C
	//      \
	//       D
	g := adjGraph{}
	g.addEdge("A", "B")
	g.addEdge("A", "C")
	g.addEdge("C", "D")

	res, err := bfs.BFS[string](g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("D")
	fmt.Println("order:", res.Order)
	fmt.Println("depth of D:", res.Depth["D"])
	fmt.Println("path to D:", path)
	// Output:
	// order: [A B C D]
	// depth of D: 2
	// path to D: [A C D]
}

// ExampleWithMaxDepth shows how the depth cap trims the frontier.
func ExampleWithMaxDepth() {
	g := adjGraph{}
	g.addEdge("A", "B")
	g.addEdge("B", "C")

	res, _ := bfs.BFS[string](g, "A", bfs.WithMaxDepth[string](1))
	fmt.Println(res.Order)
	// Output: [A B]
}
