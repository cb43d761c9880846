package unionfind

// Union merges components pairwise: for each k, the tree rooted at
// minor[k]'s root is attached under main[k]'s root. Batched quick union:
// no balancing by size, and no size-table bookkeeping (any materialized
// size table is rebuilt by the next WeightedUnion).
//
// Roots for the whole batch are resolved up front with the configured
// compression (DefaultOptions: PathHalving). If every pair already shares
// a root the call is a complete no-op. Otherwise every pair is linked,
// including pairs whose roots already coincide (a harmless
// self-assignment): the short-circuit is batch-level, not per-pair. Links
// are written in batch order, so a minor root appearing twice takes the
// later pair's main root.
//
// Error conditions:
//   - ErrBatchLengthMismatch: len(minor) != len(main).
//   - ErrVertexOutOfRange: any id outside [0, N); the forest is untouched.
//   - ErrUnknownCompression: options carry an invalid mode.
//
// Complexity: O(B·H) for the lookups plus O(B) link writes.
func (f *Forest) Union(minor, main []int, opts ...Option) error {
	if len(minor) != len(main) {
		return ErrBatchLengthMismatch
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if err := f.validateIDs(minor); err != nil {
		return err
	}
	if err := f.validateIDs(main); err != nil {
		return err
	}

	i, j, err := f.pairRoots(minor, main, o)
	if err != nil {
		return err
	}

	// All pairs already connected: nothing to link.
	if equalIDs(i, j) {
		return nil
	}

	for k := range i {
		f.parent[i[k]] = j[k]
	}

	return nil
}

// pairRoots resolves the roots of both sides of a union under the given
// options. Ids must already be validated.
func (f *Forest) pairRoots(minor, main []int, o UnionOptions) (i, j []int, err error) {
	if o.Compress {
		if i, err = f.CompressRoots(minor, o.Mode); err != nil {
			return nil, nil, err
		}
		if j, err = f.CompressRoots(main, o.Mode); err != nil {
			return nil, nil, err
		}

		return i, j, nil
	}

	return f.rootsLockStep(minor), f.rootsLockStep(main), nil
}
