package connectivity

import "fmt"

// FromEdges builds an adjacency list over n vertices from an edge list.
// Neighbors are appended in edge order; with undirected=true each edge
// also appends the reciprocal entry, which the labeler needs to walk the
// edge in both directions. Duplicate edges are kept as listed.
//
// Error conditions:
//   - ErrEmptyAdjacency: n <= 0.
//   - ErrVertexOutOfRange: an endpoint outside [0, n).
//
// Complexity: O(V + E).
func FromEdges(n int, edges [][2]int, undirected bool) (AdjacencyList, error) {
	if n <= 0 {
		return nil, ErrEmptyAdjacency
	}

	adj := make(AdjacencyList, n)
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n {
			return nil, fmt.Errorf("connectivity: edge endpoint %d outside [0,%d): %w", u, n, ErrVertexOutOfRange)
		}
		if v < 0 || v >= n {
			return nil, fmt.Errorf("connectivity: edge endpoint %d outside [0,%d): %w", v, n, ErrVertexOutOfRange)
		}
		adj[u] = append(adj[u], v)
		if undirected {
			adj[v] = append(adj[v], u)
		}
	}

	return adj, nil
}

// FromGrid builds the adjacency list of a width×height lattice with
// row-major vertex ids (vertex = y*width + x) and the chosen connectivity.
// Neighbor order follows the fixed offset order below, clipped at the
// grid boundary.
//
// Error conditions:
//   - ErrEmptyGrid: width <= 0 or height <= 0.
//
// Complexity: O(W·H·d), d = 4 or 8.
func FromGrid(width, height int, conn Connectivity) (AdjacencyList, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}

	var offsets [][2]int
	if conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	adj := make(AdjacencyList, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := y*width + x
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				adj[v] = append(adj[v], ny*width+nx)
			}
		}
	}

	return adj, nil
}
