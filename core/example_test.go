package core_test

import (
	"fmt"

	"github.com/katalvlaran/motifnet/core"
)

// ExampleNetwork demonstrates a triangle motif stored with its provenance.
func ExampleNetwork() {
	// 1) Three vertices, two topologies.
	net := core.NewNetwork(3, []string{"2-clique", "3-clique"})

	// 2) One 3-clique motif instance with id 1.
	_ = net.AddEdge(0, 1, "3-clique", 1)
	_ = net.AddEdge(1, 2, "3-clique", 1)
	_ = net.AddEdge(2, 0, "3-clique", 1)
	for v := 0; v < 3; v++ {
		_ = net.IncrementJointDegree(v, 1)
	}

	// 3) Inspect.
	for _, e := range net.Edges() {
		fmt.Println(e.U, e.V, e.Topology, e.MotifID)
	}
	jd, _ := net.JointDegree(2)
	fmt.Println("joint degree of 2:", jd)

	// Output:
	// 0 1 3-clique 1
	// 0 2 3-clique 1
	// 1 2 3-clique 1
	// joint degree of 2: [0 1]
}
