package motif_test

import (
	"fmt"

	"github.com/katalvlaran/motifnet/motif"
)

// ExampleLookup resolves a configured shape and builds one instance.
func ExampleLookup() {
	b, err := motif.Lookup("clique", 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	pairs, _ := b.Build([]int{4, 8, 15})
	fmt.Println(pairs)
	// Output:
	// [{4 8} {4 15} {8 15}]
}
