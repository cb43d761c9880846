// Package connectivity defines core types and sentinel errors
// for the connectivity subpackage of github.com/katalvlaran/conngraph.
package connectivity

import (
	"errors"
)

// Sentinel errors for connectivity operations.
var (
	// ErrEmptyAdjacency indicates an adjacency list with no vertices.
	ErrEmptyAdjacency = errors.New("connectivity: adjacency list must contain at least one vertex")
	// ErrVertexOutOfRange indicates a neighbor or endpoint id outside [0, N).
	ErrVertexOutOfRange = errors.New("connectivity: vertex id out of range")
	// ErrEmptyGrid indicates non-positive grid dimensions.
	ErrEmptyGrid = errors.New("connectivity: grid must have positive width and height")
)

// Unvisited is the label sentinel for a vertex the flood has not reached
// yet. Labels returns only values in [0, K); Unvisited never escapes a
// completed run.
const Unvisited = -1

// AdjacencyList maps each vertex to its ordered neighbor ids:
// index = vertex, value = neighbors in traversal order. The list may be
// asymmetric in storage; the labeler follows exactly the edges listed.
type AdjacencyList [][]int

// Connectivity selects grid neighbor connectivity for FromGrid:
// orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)
