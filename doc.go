// Package conngraph is a small toolkit for answering one question fast:
// which vertices of a graph belong together?
//
// 🚀 What is conngraph?
//
//	Two focused packages over plain integer arrays:
//		• unionfind    — incremental disjoint-set engine: batched root lookup,
//		  two path-compression flavors (halving & full), quick union and
//		  size-weighted union with a lazily derived root-size table
//		• connectivity — one-shot depth-first component labeler over an
//		  adjacency list, plus adjacency builders for edge lists and 2D grids
//
// ✨ Why choose conngraph?
//
//   - Plain-data contract – parent arrays ([]int) and adjacency lists ([][]int)
//     in, root/label arrays out; no graph object to learn, no id mapping
//   - Reproducible – batched operations advance in lock step, so results are
//     deterministic down to the exact post-call parent array
//   - No recursion – labeling floods components with an explicit stack;
//     component size never threatens the call stack
//   - Pure Go – no cgo, the only dependency is testify (tests only)
//
// Quick ASCII example (one forest, three components):
//
//	  (0)       (3)       (7)
//	   /\        /\
//	 (1)  (2) (4)  (5)
//	           |
//	          (9)
//	           /\
//	         (6) (8)
//	              |
//	             (10)
//
// Root lookup tells you 2 and 10 live in different trees; one weighted
// union later they share a root.
//
//	go get github.com/katalvlaran/conngraph
package conngraph
