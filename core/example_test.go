package core_test

import (
	"fmt"

	"github.com/katalvlaran/boundgraph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create a directed graph bounded at 5 nodes:
	g := core.NewGraph[string](5)

	// 2) Insert three labeled nodes:
	g.InsertNode(core.NewNodeWithLabel(20, "Furniture"))
	g.InsertNode(core.NewNodeWithLabel(30, "Laptop"))
	g.InsertNode(core.NewNodeWithLabel(40, "Clock"))

	// 3) Connect 40 → 20 and inspect the stored edge:
	g.InsertEdge(40, 20, 1012.10)
	e, _ := g.GetEdge(40, 20)
	fmt.Printf("edge %d→%d weight %.2f\n", e.From, e.To, e.Weight)

	// 4) Membership queries:
	fmt.Println("has node 30?", g.HasNode(30))
	fmt.Println("has node 400?", g.HasNode(400))
	fmt.Println("has edge 20→40?", g.HasEdge(20, 40))

	// Output:
	// edge 40→20 weight 1012.10
	// has node 30? true
	// has node 400? false
	// has edge 20→40? false
}

// ExampleNode demonstrates the adjacency operations of a single node.
func ExampleNode() {
	n := core.NewNode[string](10)

	// Fan out to three neighbors:
	n.AddEdge(40, 2024.0)
	n.AddEdge(20, 24.33)
	n.AddEdge(30, 8902.0)
	fmt.Println("edges:", n.EdgeCount())

	// Lookup and removal:
	e, _ := n.GetEdge(20)
	fmt.Printf("10→20 weighs %.2f\n", e.Weight)
	_, removed := n.RemoveEdge(20)
	fmt.Println("removed?", removed)
	_, removed = n.RemoveEdge(20)
	fmt.Println("removed again?", removed)

	// Output:
	// edges: 3
	// 10→20 weighs 24.33
	// removed? true
	// removed again? false
}

// ExampleGraph_capacity shows the capacity bound refusing a sixth node.
func ExampleGraph_capacity() {
	g := core.NewGraph[struct{}](5)
	for id := core.NodeID(1); id <= 6; id++ {
		fmt.Printf("insert %d: %v\n", id, g.InsertNode(core.NewNode[struct{}](id)))
	}
	fmt.Println("nodes:", g.NodeCount())

	// Output:
	// insert 1: true
	// insert 2: true
	// insert 3: true
	// insert 4: true
	// insert 5: true
	// insert 6: false
	// nodes: 5
}

// ExampleWithEdgeObserver shows mutation diagnostics through the hook
// instead of console writes baked into the data structure.
func ExampleWithEdgeObserver() {
	g := core.NewGraph[string](3, core.WithEdgeObserver(func(e core.Edge) {
		fmt.Printf("observed %d→%d (%.2f)\n", e.From, e.To, e.Weight)
	}))
	g.InsertNode(core.NewNode[string](10))
	g.InsertEdge(10, 20, 24.33)

	// Output:
	// observed 10→20 (24.33)
}
