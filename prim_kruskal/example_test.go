package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/prim_kruskal"
)

func ExampleKruskal() {
	_, mst, err := prim_kruskal.Kruskal(builder.SampleGraph())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range mst.Edges {
		fmt.Printf("%d-%d(%d) ", e.Source, e.Target, e.Weight)
	}
	fmt.Println("total", mst.Total)
	// Output: 0-2(2) 2-4(3) 0-1(4) 4-3(4) 4-5(6) total 19
}
