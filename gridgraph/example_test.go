package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/regmap/builder"
	"github.com/katalvlaran/regmap/core"
	"github.com/katalvlaran/regmap/gridgraph"
)

// ExampleGridGraph_NeighborIDs lists the rooms one door away.
func ExampleGridGraph_NeighborIDs() {
	g, err := builder.Build("^WNE$")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	gg, _ := gridgraph.New(g)

	ids, _ := gg.NeighborIDs(core.Coordinate{X: -2, Y: 0})
	fmt.Println(gg.Len(), "rooms")
	fmt.Println(ids)
	// Output:
	// 4 rooms
	// [-2,-2 0,0]
}

// ExampleGridGraph_ConnectedComponents counts reachable regions.
func ExampleGridGraph_ConnectedComponents() {
	g, _ := core.ParseRendering("#####\n#.#.#\n#-###\n#.#X#\n#####")
	gg, _ := gridgraph.New(g)
	for _, comp := range gg.ConnectedComponents() {
		fmt.Println(len(comp))
	}
	// Output:
	// 2
	// 1
	// 1
}
