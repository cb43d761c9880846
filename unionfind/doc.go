// Package unionfind implements an incremental disjoint-set (union-find)
// engine over a plain parent array, with batched root lookup, two
// path-compression flavors, quick union, and size-weighted union.
//
// What:
//
//   - Forest wraps a parent array: index = vertex, value = parent id,
//     roots are self-parented.
//   - Roots / Root: pure root lookup, no mutation.
//   - CompressRoots: mutating lookup with PathHalving (one pass,
//     grandparent rewrite) or FullCompression (locate pass + rewrite pass).
//   - Union: batched quick union; minor roots attached under main roots,
//     no balancing.
//   - WeightedUnion: scalar union by component size; smaller tree under
//     larger, backed by a lazily derived root-size table.
//
// Why:
//
//   - Connectivity checks: two vertices are connected iff they share a root.
//   - Incremental merging: grow components edge by edge without rebuilding.
//   - Preprocessing: flatten a forest before handing labels to a solver.
//
// Batched operations advance the whole batch in lock step, one parent hop
// per round for every element at once, so the exact post-call parent array
// is deterministic, including the last-write-wins overwrite when the same
// root appears twice in one batch. Callers that need reproducible parent
// arrays (not just the partition) get them.
//
// Complexity:
//
//   - Roots / CompressRoots: O(B·H) per batch of B ids, H = max tree height;
//     amortized near-constant per id once compression has flattened paths.
//   - Union: two root lookups + O(B) link writes.
//   - WeightedUnion: two root lookups + O(N) on the first call (size-table
//     build) + O(N) snapshot rewrite per merge.
//
// Errors:
//
//   - ErrEmptyForest: constructor given no vertices.
//   - ErrVertexOutOfRange: an id outside [0, N).
//   - ErrNotAForest: constructor given a parent array with a rootless cycle.
//   - ErrBatchLengthMismatch: Union batches of different lengths.
//   - ErrUnknownCompression: unrecognized CompressionMode.
//
// A Forest is exclusively owned: no method is safe for concurrent use on
// the same instance, since lookups may rewrite parents as a compression
// side effect.
package unionfind
