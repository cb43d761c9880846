// File: unionfind/example_test.go
package unionfind_test

import (
	"fmt"

	"github.com/katalvlaran/conngraph/unionfind"
)

////////////////////////////////////////////////////////////////////////////////
// Example: CompressRoots
////////////////////////////////////////////////////////////////////////////////

// ExampleForest_CompressRoots demonstrates a full-compression root lookup:
// the queried vertices resolve to their roots and every vertex on the
// walked paths ends up pointing directly at its root.
//
// Forest (3 components):
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
func ExampleForest_CompressRoots() {
	f, _ := unionfind.New([]int{0, 0, 0, 3, 3, 3, 9, 7, 9, 4, 8})

	roots, _ := f.CompressRoots([]int{2, 10, 7}, unionfind.FullCompression)
	fmt.Println("roots:  ", roots)
	fmt.Println("parents:", f.Parents())

	// Output:
	// roots:   [0 3 7]
	// parents: [0 0 0 3 3 3 9 7 3 3 3]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Union
////////////////////////////////////////////////////////////////////////////////

// ExampleForest_Union merges components pairwise: each minor root is
// attached under the matching main root, with no balancing.
func ExampleForest_Union() {
	f, _ := unionfind.New([]int{0, 0, 0, 3, 3, 3, 9, 7, 9, 4, 8})

	_ = f.Union([]int{2, 0}, []int{7, 6})
	fmt.Println("parents:", f.Parents())

	connected, _ := f.Connected(2, 6)
	fmt.Println("2~6:", connected)

	// Output:
	// parents: [3 0 0 3 3 3 4 7 9 4 8]
	// 2~6: true
}

////////////////////////////////////////////////////////////////////////////////
// Example: WeightedUnion
////////////////////////////////////////////////////////////////////////////////

// ExampleForest_WeightedUnion merges by component size: vertex 7's
// singleton tree goes under vertex 2's 3-vertex tree, and the lazily
// built size table tracks the surviving roots.
func ExampleForest_WeightedUnion() {
	f, _ := unionfind.New([]int{0, 0, 0, 3, 3, 3, 9, 7, 9, 4, 8})

	_ = f.WeightedUnion(2, 7)
	fmt.Println("parents:", f.Parents())

	sizes, _ := f.Sizes()
	fmt.Println("size of component 0:", sizes[0])
	fmt.Println("size of component 3:", sizes[3])

	// Output:
	// parents: [0 0 0 3 3 3 3 0 3 3 3]
	// size of component 0: 4
	// size of component 3: 7
}
