package connectivity

import "fmt"

// Labeler computes connected-component labels over an immutable adjacency
// list. Construct once with NewLabeler; each Labels call is an independent
// one-shot computation over a fresh label array.
type Labeler struct {
	adj AdjacencyList
}

// NewLabeler constructs a Labeler from an adjacency list. The list is
// deep-copied; its length defines N, and every neighbor id must lie in
// [0, N).
//
// Error conditions:
//   - ErrEmptyAdjacency: adj has no vertices.
//   - ErrVertexOutOfRange: a neighbor id outside [0, N).
//
// Complexity: O(V + E).
func NewLabeler(adj AdjacencyList) (*Labeler, error) {
	n := len(adj)
	if n == 0 {
		return nil, ErrEmptyAdjacency
	}

	cp := make(AdjacencyList, n)
	for v, nbrs := range adj {
		for _, u := range nbrs {
			if u < 0 || u >= n {
				return nil, fmt.Errorf("connectivity: neighbor %d of vertex %d outside [0,%d): %w",
					u, v, n, ErrVertexOutOfRange)
			}
		}
		cp[v] = append([]int(nil), nbrs...)
	}

	return &Labeler{adj: cp}, nil
}

// Len returns the number of vertices N. Complexity: O(1).
func (l *Labeler) Len() int {
	return len(l.adj)
}

// Labels assigns every vertex a component label and returns the label
// array: index = vertex, value = label in [0, K) for K components.
// Vertices 0..N-1 are scanned in order; each still-unvisited vertex opens
// the next label (starting at 0) and its component is flooded depth-first
// with an explicit stack. Neighbors are pushed in reverse list order so
// marking order matches a recursive descent along the adjacency list.
//
// Two vertices share a label iff one is reachable from the other along
// the listed edges.
//
// Complexity: O(V + E) time, O(V) memory.
func (l *Labeler) Labels() []int {
	labels := make([]int, len(l.adj))
	for v := range labels {
		labels[v] = Unvisited
	}

	next := 0
	stack := make([]int, 0, len(l.adj))
	for v := range l.adj {
		if labels[v] != Unvisited {
			continue
		}

		labels[v] = next
		stack = append(stack[:0], v)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			nbrs := l.adj[u]
			for k := len(nbrs) - 1; k >= 0; k-- {
				if w := nbrs[k]; labels[w] == Unvisited {
					labels[w] = next
					stack = append(stack, w)
				}
			}
		}
		next++
	}

	return labels
}

// Count returns the number of connected components K: the highest label
// plus one. Complexity: O(V + E).
func (l *Labeler) Count() int {
	k := 0
	for _, lab := range l.Labels() {
		if lab+1 > k {
			k = lab + 1
		}
	}

	return k
}

// Components groups vertices by label: result[k] lists the vertices of
// component k in ascending vertex order, components in label order.
//
// Complexity: O(V + E) time, O(V) memory.
func (l *Labeler) Components() [][]int {
	labels := l.Labels()
	k := 0
	for _, lab := range labels {
		if lab+1 > k {
			k = lab + 1
		}
	}

	comps := make([][]int, k)
	for v, lab := range labels {
		comps[lab] = append(comps[lab], v)
	}

	return comps
}

// Connected reports whether u and v share a component.
//
// Error conditions:
//   - ErrVertexOutOfRange: u or v outside [0, N).
//
// Complexity: O(V + E) per call; label once with Labels for repeated queries.
func (l *Labeler) Connected(u, v int) (bool, error) {
	n := len(l.adj)
	if u < 0 || u >= n {
		return false, fmt.Errorf("connectivity: vertex %d outside [0,%d): %w", u, n, ErrVertexOutOfRange)
	}
	if v < 0 || v >= n {
		return false, fmt.Errorf("connectivity: vertex %d outside [0,%d): %w", v, n, ErrVertexOutOfRange)
	}

	labels := l.Labels()

	return labels[u] == labels[v], nil
}
