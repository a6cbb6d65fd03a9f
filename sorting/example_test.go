package sorting_test

import (
	"fmt"

	"github.com/katalvlaran/algoviz/snapshot"
	"github.com/katalvlaran/algoviz/sorting"
)

// ExampleTrace sorts four values with bubble sort and prints the opening
// frames and the final array.
func ExampleTrace() {
	tr, err := sorting.Trace(sorting.Bubble, []int{5, 3, 8, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < 3; i++ {
		fmt.Println(tr.At(i).Status())
	}
	fmt.Println(tr.Last().(*snapshot.ArraySnapshot).Values(), tr.Len())
	// Output:
	// start
	// Comparing 5 and 3
	// Swapped 5 and 3
	// [1 3 5 8] 12
}
