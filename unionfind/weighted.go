package unionfind

// WeightedUnion merges the components of two single vertices, attaching
// the smaller tree (by vertex count) under the larger one's root. The
// scalar-only signature is deliberate: size bookkeeping is per-pair, so
// this entry point takes exactly one pair; use Union for batches.
//
// Roots are resolved with the configured compression (DefaultOptions:
// PathHalving). Equal roots are a no-op. Otherwise the root-size table is
// materialized if absent or stale (see ensureSizeTable), the smaller root
// is attached under the larger (ties go to main's root), and the table
// and snapshot are updated incrementally: the losing root's vertices are
// reassigned in the snapshot, its size added to the winner, its entry
// dropped. The sum of all table entries always equals N.
//
// Error conditions:
//   - ErrVertexOutOfRange: either id outside [0, N); the forest is untouched.
//   - ErrUnknownCompression: options carry an invalid mode.
//
// Complexity: O(H) lookups, O(N) table build on first use, O(N) snapshot
// rewrite per merge.
func (f *Forest) WeightedUnion(minor, main int, opts ...Option) error {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if err := f.validateIDs([]int{minor, main}); err != nil {
		return err
	}

	i, j, err := f.pairRootsScalar(minor, main, o)
	if err != nil {
		return err
	}
	if i == j {
		return nil
	}

	f.ensureSizeTable()

	// Invariant: every live root has a table entry; unions only attach
	// existing roots under other existing roots.
	if f.sizes[i] <= f.sizes[j] {
		f.attachRoot(i, j)
	} else {
		f.attachRoot(j, i)
	}

	return nil
}

// pairRootsScalar resolves the roots of one vertex pair under the given
// options. Ids must already be validated.
func (f *Forest) pairRootsScalar(minor, main int, o UnionOptions) (i, j int, err error) {
	if o.Compress {
		var r []int
		if r, err = f.CompressRoots([]int{minor}, o.Mode); err != nil {
			return 0, 0, err
		}
		i = r[0]
		if r, err = f.CompressRoots([]int{main}, o.Mode); err != nil {
			return 0, 0, err
		}

		return i, r[0], nil
	}

	i = minor
	for f.parent[i] != i {
		i = f.parent[i]
	}
	j = main
	for f.parent[j] != j {
		j = f.parent[j]
	}

	return i, j, nil
}

// attachRoot links root loser under root winner and updates the derived
// size state: every snapshot entry recorded under loser moves to winner,
// winner absorbs loser's size, loser's table entry is dropped.
func (f *Forest) attachRoot(loser, winner int) {
	f.parent[loser] = winner

	for v, r := range f.rootsSnapshot {
		if r == loser {
			f.rootsSnapshot[v] = winner
		}
	}
	f.sizes[winner] += f.sizes[loser]
	delete(f.sizes, loser)
}

// ensureSizeTable materializes the root-size table on first use and
// rebuilds it whenever the snapshot's length disagrees with the parent
// array's. A mismatch is self-healing, never an error.
func (f *Forest) ensureSizeTable() {
	if f.sizes != nil && len(f.rootsSnapshot) == len(f.parent) {
		return
	}
	f.rebuildSizeTable()
}

// rebuildSizeTable runs a full-compression root pass over all N vertices,
// snapshots the resulting roots, and tallies root frequencies.
func (f *Forest) rebuildSizeTable() {
	all := make([]int, len(f.parent))
	for v := range all {
		all[v] = v
	}
	roots := f.compressFull(all)

	f.rootsSnapshot = roots
	f.sizes = make(map[int]int)
	for _, r := range roots {
		f.sizes[r]++
	}
}

// Sizes returns a copy of the root-size table and whether it is currently
// materialized. The table only exists after a WeightedUnion has needed it;
// while it exists, its values sum to N. Complexity: O(R).
func (f *Forest) Sizes() (map[int]int, bool) {
	if f.sizes == nil {
		return nil, false
	}
	out := make(map[int]int, len(f.sizes))
	for r, s := range f.sizes {
		out[r] = s
	}

	return out, true
}
