package unionfind

import "fmt"

// Forest is an array-backed encoding of a partition of vertices [0, N)
// into disjoint trees. parent[v] is v's direct parent; roots are
// self-parented. All operations preserve the forest property: following
// parent links from any vertex terminates at a root.
//
// A Forest exclusively owns its arrays and is not safe for concurrent use.
type Forest struct {
	parent []int

	// Size-table state, lazily derived by WeightedUnion.
	// sizes maps a live root to the number of vertices in its tree;
	// rootsSnapshot records each vertex's root at table-build time so the
	// table can be updated per merge without rescanning all vertices.
	// A length mismatch between rootsSnapshot and parent invalidates both.
	sizes         map[int]int
	rootsSnapshot []int
}

// New constructs a Forest from an initial parent array. The input is
// copied; it must encode a valid forest: every value in [0, len(parents)),
// every parent chain terminating at a self-parented root.
//
// Error conditions:
//   - ErrEmptyForest: parents is empty.
//   - ErrVertexOutOfRange: a parent value outside [0, N).
//   - ErrNotAForest: a parent chain that never reaches a root.
//
// Complexity: O(N).
func New(parents []int) (*Forest, error) {
	n := len(parents)
	if n == 0 {
		return nil, ErrEmptyForest
	}
	for v, p := range parents {
		if p < 0 || p >= n {
			return nil, fmt.Errorf("unionfind: parent of vertex %d is %d, outside [0,%d): %w",
				v, p, n, ErrVertexOutOfRange)
		}
	}

	f := &Forest{parent: append([]int(nil), parents...)}
	if err := f.checkAcyclic(); err != nil {
		return nil, err
	}

	return f, nil
}

// NewIdentity constructs a Forest of n singleton trees: every vertex is
// its own root. Complexity: O(N).
func NewIdentity(n int) (*Forest, error) {
	if n <= 0 {
		return nil, ErrEmptyForest
	}
	parent := make([]int, n)
	for v := range parent {
		parent[v] = v
	}

	return &Forest{parent: parent}, nil
}

// checkAcyclic verifies that every parent chain terminates at a root.
// Each vertex is stamped with the walk that first reached it; re-entering
// a vertex stamped by the current walk means a rootless cycle.
func (f *Forest) checkAcyclic() error {
	seenBy := make([]int, len(f.parent))
	for v := range seenBy {
		seenBy[v] = -1
	}
	for start := range f.parent {
		v := start
		for seenBy[v] == -1 && f.parent[v] != v {
			seenBy[v] = start
			v = f.parent[v]
		}
		if seenBy[v] == start && f.parent[v] != v {
			return fmt.Errorf("unionfind: cycle through vertex %d: %w", v, ErrNotAForest)
		}
	}

	return nil
}

// Len returns the number of vertices N. Complexity: O(1).
func (f *Forest) Len() int {
	return len(f.parent)
}

// Parents returns a copy of the current parent array. Complexity: O(N).
func (f *Forest) Parents() []int {
	return append([]int(nil), f.parent...)
}

// validateIDs checks every id against [0, N) before any operation touches
// the parent array, so failed calls leave the forest unmodified.
func (f *Forest) validateIDs(ids []int) error {
	n := len(f.parent)
	for _, v := range ids {
		if v < 0 || v >= n {
			return fmt.Errorf("unionfind: vertex %d outside [0,%d): %w", v, n, ErrVertexOutOfRange)
		}
	}

	return nil
}

// allRooted reports whether every element of cur is self-parented.
func (f *Forest) allRooted(cur []int) bool {
	for _, v := range cur {
		if f.parent[v] != v {
			return false
		}
	}

	return true
}

// rootsLockStep locates the root of every id without mutation. The whole
// batch advances together: each round every element hops to its parent,
// elements already at a root self-hop harmlessly until the rest catch up.
// The caller owns the returned slice.
func (f *Forest) rootsLockStep(ids []int) []int {
	cur := append([]int(nil), ids...)
	for !f.allRooted(cur) {
		for k, v := range cur {
			cur[k] = f.parent[v]
		}
	}

	return cur
}

// Roots returns the root of each id, element-wise aligned with ids.
// Pure lookup: the parent array is never modified.
//
// Complexity: O(B·H), B = batch size, H = max tree height.
func (f *Forest) Roots(ids []int) ([]int, error) {
	if err := f.validateIDs(ids); err != nil {
		return nil, err
	}

	return f.rootsLockStep(ids), nil
}

// Root returns the root of a single vertex. Pure lookup. Complexity: O(H).
func (f *Forest) Root(v int) (int, error) {
	if err := f.validateIDs([]int{v}); err != nil {
		return 0, err
	}
	for f.parent[v] != v {
		v = f.parent[v]
	}

	return v, nil
}

// Connected reports whether u and v currently share a root. Pure lookup.
// Complexity: O(H).
func (f *Forest) Connected(u, v int) (bool, error) {
	ru, err := f.Root(u)
	if err != nil {
		return false, err
	}
	rv, err := f.Root(v)
	if err != nil {
		return false, err
	}

	return ru == rv, nil
}
