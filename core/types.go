// Package core: type declarations, sentinel errors, and construction options.
//
// This file declares NodeID, Edge, Node, Graph, their functional options,
// and the EdgeObserver hook. Operations live in node.go and graph.go.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrMissingNode indicates an edge insertion referenced a source node
	// id that is not present in the graph.
	ErrMissingNode = errors.New("core: missing source node")
)

// NodeID uniquely identifies a Node within one Graph.
// IDs are caller-assigned; the Graph rejects duplicates at insertion.
type NodeID uint32

// Edge is a weighted directed connection record between two node ids.
//
// An Edge is immutable once constructed: it is stored and handed out by
// value, so callers can never mutate the copy held in a Node's adjacency
// map. From→To direction is fixed even when the owning Graph was built
// with WithUndirected: undirectedness is a graph-level interpretation
// flag, not an edge-level symmetry guarantee.
type Edge struct {
	// From is the source node id.
	From NodeID

	// To is the destination node id.
	To NodeID

	// Weight is the cost attached to the connection.
	Weight float64
}

// NewEdge builds an Edge from 'from' to 'to' with the given weight.
// Pure constructor: no validation against any graph (an Edge has no
// awareness of a containing Graph) and no failure modes.
// Complexity: O(1).
func NewEdge(from, to NodeID, weight float64) Edge {
	return Edge{From: from, To: to, Weight: weight}
}

// EdgeObserver is an optional hook invoked after an edge has been inserted
// into a node's adjacency map. It receives the freshly stored Edge by
// value. The hook must not mutate the graph it observes.
type EdgeObserver func(Edge)

// Node is a vertex identified by ID, owning its outgoing adjacency map and
// an optional label payload of type T.
//
// The label carries no capability requirement: any T works. Each Edge in
// the adjacency map is owned exclusively by this Node and lives exactly as
// long as it stays in the map.
type Node[T any] struct {
	// ID is the unique identifier for this Node within its Graph.
	ID NodeID

	// edges maps neighbor id → outgoing Edge.
	edges map[NodeID]Edge

	// label holds the optional payload; nil means no label.
	label *T

	// observer, when non-nil, fires after each edge insertion.
	observer EdgeObserver
}

// NodeOption configures a Node at construction.
type NodeOption func(*nodeConfig)

type nodeConfig struct {
	observer EdgeObserver
}

// WithObserver installs fn as the node's edge-insertion hook.
func WithObserver(fn EdgeObserver) NodeOption {
	return func(c *nodeConfig) { c.observer = fn }
}

// Graph is a capacity-bounded, ordered collection of nodes.
//
// Invariant: the node count never exceeds capacity; insertion beyond the
// bound is refused, never truncated or evicted. Node ids are unique within
// a Graph (duplicate insertion is refused). The ordered node sequence is
// shadowed by an id→slot index so lookups stay O(1) while preserving
// insertion order exactly as a first-match linear scan would observe it.
type Graph[T any] struct {
	// Configuration, fixed at construction.
	capacity   int
	undirected bool
	observer   EdgeObserver

	// Storage
	nodes []*Node[T]     // insertion-ordered node sequence
	index map[NodeID]int // node id → slot in nodes
}

// GraphOption configures a Graph before creation.
type GraphOption func(*graphConfig)

type graphConfig struct {
	undirected bool
	observer   EdgeObserver
}

// WithUndirected marks the Graph as undirected for the caller's own
// interpretation. No edge operation consults the flag: edges stay strictly
// directional records and no reciprocal edge is managed automatically.
func WithUndirected() GraphOption {
	return func(c *graphConfig) { c.undirected = true }
}

// WithEdgeObserver sets a graph-wide default EdgeObserver. InsertNode
// stamps it onto any inserted node that has no observer of its own.
func WithEdgeObserver(fn EdgeObserver) GraphOption {
	return func(c *graphConfig) { c.observer = fn }
}

// NewGraph creates an empty Graph with the given fixed capacity and
// options. By default the Graph is directed and unobserved. A negative
// capacity behaves as zero: no node is ever accepted. The Graph is never
// resized after construction.
// Complexity: O(1).
func NewGraph[T any](capacity int, opts ...GraphOption) *Graph[T] {
	if capacity < 0 {
		capacity = 0
	}
	var cfg graphConfig
	// Apply options
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[T]{
		capacity:   capacity,
		undirected: cfg.undirected,
		observer:   cfg.observer,
		nodes:      make([]*Node[T], 0, capacity),
		index:      make(map[NodeID]int, capacity),
	}
}
