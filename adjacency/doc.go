// SPDX-License-Identifier: MIT

// Package adjacency is a small undirected, weighted graph of rooms with
// breadth-first traversal and connected components.
//
// What
//
//   - Vertices are rooms, identified by string IDs and carrying free-form
//     metadata (area, wall thickness ...).
//   - An edge joins two rooms that share at least one stretch of wall; its
//     weight is the total shared length.
//   - BFS walks the graph level by level from a start room and returns the
//     visit order, depth and parent of every reached room, plus the length
//     of the wall crossed to enter it. WithMinShared keeps the walk to walls
//     wide enough to pass, and Narrowest reports the tightest wall on a route.
//   - Components groups rooms that can reach each other through shared walls.
//
// Determinism
//
//	Vertices, Edges and NeighborIDs return sorted slices, and BFS enqueues
//	neighbours in that order, so every traversal is reproducible.
//
// Concurrency
//
//	Graph methods are guarded by a sync.RWMutex and safe for concurrent use.
//	BFS and Components take read snapshots through the same methods.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - AddVertex, AddEdge, HasEdge: O(1) amortized.
//   - NeighborIDs: O(d log d) for a vertex of degree d.
//   - BFS, Components: O(V + E) plus the sorting above.
package adjacency
