// Package core: Node constructors and adjacency-map operations.
//
// Every mutation here touches this node's own adjacency map only. Edges are
// one-directional records: adding or removing an edge never reaches into
// the neighbor node, even when the owning Graph is flagged undirected.
package core

import "sort"

// NewNode creates a Node with the given id, an empty adjacency map, and no
// label.
// Complexity: O(1).
func NewNode[T any](id NodeID, opts ...NodeOption) *Node[T] {
	var cfg nodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Node[T]{
		ID:       id,
		edges:    make(map[NodeID]Edge),
		observer: cfg.observer,
	}
}

// NewNodeWithLabel creates a Node with the given id and label and an empty
// adjacency map. The label type T carries no capability requirement.
// Complexity: O(1).
func NewNodeWithLabel[T any](id NodeID, label T, opts ...NodeOption) *Node[T] {
	n := NewNode[T](id, opts...)
	n.label = &label

	return n
}

// Label returns the node's payload and whether one is set.
func (n *Node[T]) Label() (T, bool) {
	if n.label == nil {
		var zero T
		return zero, false
	}

	return *n.label, true
}

// EdgeCount returns the number of outgoing adjacency entries.
// Complexity: O(1).
func (n *Node[T]) EdgeCount() int {
	return len(n.edges)
}

// GetEdge returns the outgoing edge to 'neighbor' if present. Absence is a
// normal lookup outcome, not an error.
// Complexity: O(1) expected.
func (n *Node[T]) GetEdge(neighbor NodeID) (Edge, bool) {
	e, ok := n.edges[neighbor]

	return e, ok
}

// AddEdge constructs NewEdge(n.ID, neighbor, weight) and inserts it into
// the adjacency map, overwriting any existing entry for 'neighbor'. It
// returns the previous Edge and true when an entry was replaced (update
// semantics), or a zero Edge and false when the edge is new.
//
// Side effect: mutates this node's adjacency map only; the neighbor node is
// never touched and no reciprocal edge is created. The node's observer, if
// installed, fires after the mutation with the stored edge.
// Complexity: O(1) expected.
func (n *Node[T]) AddEdge(neighbor NodeID, weight float64) (Edge, bool) {
	prev, existed := n.edges[neighbor]
	e := NewEdge(n.ID, neighbor, weight)
	n.edges[neighbor] = e

	// Observer runs after the map is updated, so it sees committed state.
	if n.observer != nil {
		n.observer(e)
	}

	return prev, existed
}

// RemoveEdge removes and returns the adjacency entry for 'neighbor' if
// present. A missing edge is not an error: repeated calls after the first
// removal simply report absence, leaving the map untouched.
// Complexity: O(1) expected.
func (n *Node[T]) RemoveEdge(neighbor NodeID) (Edge, bool) {
	e, ok := n.edges[neighbor]
	if !ok {
		return Edge{}, false
	}
	delete(n.edges, neighbor)

	return e, true
}

// Neighbors returns a snapshot of all outgoing edges, sorted by destination
// id for deterministic ordering.
// Complexity: O(d log d), where d is the number of outgoing edges.
func (n *Node[T]) Neighbors() []Edge {
	out := make([]Edge, 0, len(n.edges))
	for _, e := range n.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out
}
