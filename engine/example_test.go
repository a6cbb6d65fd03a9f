package engine_test

import (
	"fmt"

	"github.com/katalvlaran/algoviz/engine"
)

// ExampleSession_Apply inserts into the seed BST and then finds the new value.
func ExampleSession_Apply() {
	s := engine.NewSession()

	out, err := s.Apply(engine.StructureBST, engine.OpInsert, 30)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out.Summary)
	fmt.Println(s.Tree(engine.StructureBST))

	out, _ = s.Apply(engine.StructureBST, engine.OpSearch, 30)
	fmt.Println(out.Summary, s.Phase())
	// Output:
	// Inserted 30 as the left child of 40
	// 50(25(10,40(30)),75(60,90))
	// found 30 idle
}
