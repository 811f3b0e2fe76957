// Package core provides a capacity-bounded, adjacency-list graph of
// generically labeled nodes connected by immutable weighted directed edges.
//
// What:
//
//   - Edge is a value record {From, To, Weight}; directional even when the
//     owning Graph is flagged undirected.
//   - Node[T] owns a map from neighbor NodeID to Edge (its outgoing
//     adjacency list) plus an optional label payload of any type T.
//   - Graph[T] owns an ordered, capacity-bounded sequence of nodes and
//     mediates every cross-node operation.
//
// Why:
//
//   - Teaching: the smallest graph model with real ownership and invariant
//     contracts (no duplicate ids, capacity never exceeded, consistent
//     edge direction).
//   - Building block: label nodes with your own types, observe mutations
//     through an EdgeObserver hook, and keep full control of identifiers.
//
// Complexity:
//
//   - Node.AddEdge / GetEdge / RemoveEdge / EdgeCount: O(1) expected.
//   - Graph.InsertNode / InsertEdge / HasNode / GetEdge: O(1) expected
//     (an id→slot index shadows the ordered node sequence).
//   - Node.Neighbors / Graph.NodeIDs: O(d log d) / O(n) snapshots.
//
// Options:
//
//   - WithUndirected: store the undirected interpretation flag. Edge
//     operations do not consult it; edges remain one-way records and no
//     reciprocal edge is created or removed. Callers wanting undirected
//     semantics must insert and remove both directions themselves.
//   - WithEdgeObserver / WithObserver: optional callback invoked after each
//     successful edge insertion, replacing any console diagnostics.
//
// Errors:
//
//   - ErrMissingNode: InsertEdge referenced a source node id not present in
//     the graph. Every other "not found" outcome (node lookup, edge lookup,
//     edge removal, Graph.GetEdge against an absent source node) is normal
//     comma-ok absence, not an error. Insertion refusal (graph at capacity,
//     or duplicate node id) is a boolean false, never an error. No
//     operation panics for any reachable input.
//
// Concurrency:
//
//   - None inside the package: all operations are synchronous in-memory
//     mutations with no internal locking. Share a Graph across goroutines
//     only behind a single external mutex guarding the whole aggregate;
//     operations routinely touch the node sequence and a node's adjacency
//     map together, so fine-grained locking has no safe seam.
package core
