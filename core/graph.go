// Package core: Graph operations.
//
// The Graph mediates every cross-node operation: edge insertion and lookup
// resolve the source node first, then delegate to that node's adjacency
// map. Source-node resolution goes through an id→slot index that mirrors
// the insertion-ordered node sequence; because duplicate ids are refused at
// insertion, the index observes exactly what a first-match linear scan
// over the sequence would.
package core

// InsertNode appends n to the node sequence if the graph is below capacity
// and no node with the same id is already present. It returns true on
// success and false on refusal (graph at capacity, or duplicate id).
// Refusal is a strict no-op: the graph is unchanged and the caller keeps
// the node.
// Complexity: O(1) amortized.
func (g *Graph[T]) InsertNode(n *Node[T]) bool {
	// Capacity bound: never truncate, never evict.
	if len(g.nodes) == g.capacity {
		return false
	}
	// Duplicate ids would make id-based lookup ambiguous.
	if _, exists := g.index[n.ID]; exists {
		return false
	}
	// Stamp the graph-wide observer onto nodes that carry none.
	if n.observer == nil {
		n.observer = g.observer
	}
	g.index[n.ID] = len(g.nodes)
	g.nodes = append(g.nodes, n)

	return true
}

// InsertEdge locates the node with id 'from' and delegates to its AddEdge,
// returning the previous edge and whether one was replaced. It fails with
// ErrMissingNode when the source node is absent.
//
// The destination id is deliberately not validated: an edge may point at a
// node not (or not yet) present in the graph. Edges store identifiers, not
// node references, so such a dangling edge is harmless by construction.
// Complexity: O(1) expected.
func (g *Graph[T]) InsertEdge(from, to NodeID, weight float64) (Edge, bool, error) {
	slot, ok := g.index[from]
	if !ok {
		return Edge{}, false, ErrMissingNode
	}
	prev, replaced := g.nodes[slot].AddEdge(to, weight)

	return prev, replaced, nil
}

// HasNode reports whether a node with the given id exists in the graph.
// Complexity: O(1) expected.
func (g *Graph[T]) HasNode(id NodeID) bool {
	_, ok := g.index[id]

	return ok
}

// HasEdge reports whether an edge from 'from' to 'to' exists.
// Complexity: O(1) expected.
func (g *Graph[T]) HasEdge(from, to NodeID) bool {
	_, ok := g.GetEdge(from, to)

	return ok
}

// GetEdge returns the edge from 'from' to 'to' if both the source node and
// the adjacency entry exist. A missing source node yields plain absence,
// not an error, which is the intentional asymmetry with InsertEdge: lookup
// against a missing node means "no such edge", while insertion against a
// missing node means a violated prerequisite.
// Complexity: O(1) expected.
func (g *Graph[T]) GetEdge(from, to NodeID) (Edge, bool) {
	slot, ok := g.index[from]
	if !ok {
		return Edge{}, false
	}

	return g.nodes[slot].GetEdge(to)
}

// Node returns the inserted node with the given id, if present, for direct
// node-level operations.
// Complexity: O(1) expected.
func (g *Graph[T]) Node(id NodeID) (*Node[T], bool) {
	slot, ok := g.index[id]
	if !ok {
		return nil, false
	}

	return g.nodes[slot], true
}

// NodeIDs returns all node ids in insertion order.
// Complexity: O(n).
func (g *Graph[T]) NodeIDs() []NodeID {
	ids := make([]NodeID, len(g.nodes))
	for i, n := range g.nodes {
		ids[i] = n.ID
	}

	return ids
}

// NodeCount returns the number of nodes currently in the graph. O(1).
func (g *Graph[T]) NodeCount() int {
	return len(g.nodes)
}

// Capacity returns the fixed maximum number of nodes the graph accepts. O(1).
func (g *Graph[T]) Capacity() int {
	return g.capacity
}

// Undirected reports whether the graph was flagged undirected at
// construction. The flag is interpretation only; see the package docs.
func (g *Graph[T]) Undirected() bool {
	return g.undirected
}
