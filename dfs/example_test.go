package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/dfs"
)

func ExampleTrace() {
	_, res, err := dfs.Trace(builder.SampleGraph(), 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output: [0 1 2 4 3 5]
}
