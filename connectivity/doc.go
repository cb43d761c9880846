// Package connectivity labels the connected components of a static graph
// given as an adjacency list, and ships builders for the adjacency lists
// it consumes.
//
// What:
//
//   - Labeler wraps an immutable adjacency list over vertices [0, N).
//   - Labels floods components depth-first and returns one label per
//     vertex: labels start at 0 and are allocated in scan order of the
//     first unvisited vertex, so label values (not just the partition)
//     are deterministic given the adjacency ordering.
//   - Count, Components, Connected: derived views over a labeling run.
//   - FromEdges / FromGrid: adjacency lists from edge lists and 2D grids.
//
// Why:
//
//   - Connectivity checks before a solve: split a domain into independent
//     subproblems.
//   - Percolation-style analysis: which vertices can reach which.
//   - Preprocessing: component ids as plain []int for any downstream use.
//
// The flood uses an explicit stack, never recursion: the largest component
// a Labeler can handle is bounded by memory, not by call-stack depth.
// Neighbors are pushed in reverse list order so vertices are marked in the
// same order a recursive descent along the list would produce.
//
// The labeler follows exactly the edges listed: for full undirected
// connectivity the adjacency list must contain reciprocal entries
// (FromEdges with undirected=true adds them).
//
// Complexity:
//
//   - Labels:      O(V + E) time, O(V) memory.
//   - Components:  O(V + E) time, O(V) memory.
//   - FromEdges:   O(V + E) time.
//   - FromGrid:    O(W·H·d) time, d = 4 or 8.
//
// Errors:
//
//   - ErrEmptyAdjacency: adjacency list with no vertices.
//   - ErrVertexOutOfRange: a neighbor or edge endpoint outside [0, N).
//   - ErrEmptyGrid: FromGrid given non-positive dimensions.
package connectivity
