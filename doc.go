// Package boundgraph is a small in-memory home for labeled, weighted,
// capacity-bounded graphs — node and edge creation, lookup, and removal
// with contracts you can lean on.
//
// 🚀 What is boundgraph?
//
//	A compact, zero-dependency container that brings together:
//		• Edge: an immutable weighted directed connection record
//		• Node: a generic-labeled vertex owning its adjacency map
//		• Graph: a capacity-bounded, ordered collection of nodes
//
// ✨ Why choose boundgraph?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Correctness-focused – every operation documents its exact contract
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – attach an EdgeObserver hook for custom diagnostics
//
// Everything lives under one subpackage:
//
//	core/ — fundamental Graph, Node, Edge types and their operations
//
// Quick ASCII example:
//
//	    10──▶40
//	    │
//	    ▼
//	    20──▶30
//
//	a directed graph of four nodes and three weighted edges.
//
// boundgraph is a teaching-grade container, not a graph engine: no
// persistence, no traversal algorithms, no visualization. Dive into the
// core package docs for the full contract.
//
//	go get github.com/katalvlaran/boundgraph/core
package boundgraph
