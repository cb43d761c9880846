package unionfind

// CompressRoots returns the root of each id and rewrites parents along the
// walked paths according to mode. The returned roots align element-wise
// with ids. Like Roots, the whole batch advances in lock step; parent
// rewrites within one round are applied after the round's reads, and
// duplicate ids in a batch resolve last-write-wins, so the post-call
// parent array is fully deterministic.
//
// This is a side-effecting query: it mutates shared forest state. Use
// Roots for a pure lookup.
//
// Error conditions:
//   - ErrVertexOutOfRange: an id outside [0, N); the forest is untouched.
//   - ErrUnknownCompression: mode is not PathHalving or FullCompression.
//
// Complexity: O(B·H); FullCompression walks each path twice.
func (f *Forest) CompressRoots(ids []int, mode CompressionMode) ([]int, error) {
	if err := f.validateIDs(ids); err != nil {
		return nil, err
	}

	switch mode {
	case PathHalving:
		return f.compressHalving(ids), nil
	case FullCompression:
		return f.compressFull(ids), nil
	default:
		return nil, ErrUnknownCompression
	}
}

// compressHalving advances the batch one grandparent hop per round:
// every element's parent is rewritten to its current grandparent, then the
// element moves there. Grandparents for the whole round are read before
// any write, matching the lock-step contract.
func (f *Forest) compressHalving(ids []int) []int {
	cur := append([]int(nil), ids...)
	grand := make([]int, len(cur))
	for !f.allRooted(cur) {
		for k, v := range cur {
			grand[k] = f.parent[f.parent[v]]
		}
		for k, v := range cur {
			f.parent[v] = grand[k]
		}
		for k, v := range cur {
			cur[k] = f.parent[v]
		}
	}

	return cur
}

// compressFull locates every root without mutation, then re-walks the same
// paths in lock step rewriting each visited vertex's parent directly to
// its located root. Next hops for a round are read before the round's
// writes, so elements sharing a path segment see consistent state.
func (f *Forest) compressFull(ids []int) []int {
	roots := f.rootsLockStep(ids)

	cur := append([]int(nil), ids...)
	next := make([]int, len(cur))
	for !equalIDs(cur, roots) {
		for k, v := range cur {
			next[k] = f.parent[v]
		}
		for k, v := range cur {
			f.parent[v] = roots[k]
		}
		copy(cur, next)
	}

	return roots
}

// equalIDs reports element-wise equality of two equally sized id slices.
func equalIDs(a, b []int) bool {
	for k := range a {
		if a[k] != b[k] {
			return false
		}
	}

	return true
}
