package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conngraph/unionfind"
)

// sampleParents is the 11-vertex, 3-component forest used across the
// package tests:
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
func sampleParents() []int {
	return []int{0, 0, 0, 3, 3, 3, 9, 7, 9, 4, 8}
}

func TestNew_CopiesInput(t *testing.T) {
	parents := sampleParents()
	f, err := unionfind.New(parents)
	require.NoError(t, err)

	parents[0] = 3 // mutating the caller's slice must not reach the forest
	assert.Equal(t, sampleParents(), f.Parents())
	assert.Equal(t, 11, f.Len())
}

func TestNew_EmptyInput(t *testing.T) {
	f, err := unionfind.New(nil)
	assert.Nil(t, f)
	assert.ErrorIs(t, err, unionfind.ErrEmptyForest)
}

func TestNew_ParentOutOfRange(t *testing.T) {
	f, err := unionfind.New([]int{0, 5, 1})
	assert.Nil(t, f)
	assert.ErrorIs(t, err, unionfind.ErrVertexOutOfRange)

	f, err = unionfind.New([]int{0, -1})
	assert.Nil(t, f)
	assert.ErrorIs(t, err, unionfind.ErrVertexOutOfRange)
}

func TestNew_RejectsRootlessCycle(t *testing.T) {
	// 0→1→2→0 never reaches a self-parented vertex.
	f, err := unionfind.New([]int{1, 2, 0})
	assert.Nil(t, f)
	assert.ErrorIs(t, err, unionfind.ErrNotAForest)
}

func TestNew_AcceptsDeepChain(t *testing.T) {
	// 4→3→2→1→0, root 0: a valid (if tall) single tree.
	f, err := unionfind.New([]int{0, 0, 1, 2, 3})
	require.NoError(t, err)

	r, err := f.Root(4)
	require.NoError(t, err)
	assert.Equal(t, 0, r)
}

func TestNewIdentity(t *testing.T) {
	f, err := unionfind.NewIdentity(4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, f.Parents())

	_, err = unionfind.NewIdentity(0)
	assert.ErrorIs(t, err, unionfind.ErrEmptyForest)
}

func TestRoots_PureLookup(t *testing.T) {
	f, err := unionfind.New(sampleParents())
	require.NoError(t, err)

	roots, err := f.Roots([]int{2, 10, 7})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 7}, roots)
	// No compression side effect.
	assert.Equal(t, sampleParents(), f.Parents())
}

func TestRoots_EmptyBatch(t *testing.T) {
	f, err := unionfind.New(sampleParents())
	require.NoError(t, err)

	roots, err := f.Roots(nil)
	require.NoError(t, err)
	assert.Empty(t, roots)
}

func TestRoots_OutOfRange(t *testing.T) {
	f, err := unionfind.New(sampleParents())
	require.NoError(t, err)

	_, err = f.Roots([]int{2, 11})
	assert.ErrorIs(t, err, unionfind.ErrVertexOutOfRange)
	_, err = f.Roots([]int{-1})
	assert.ErrorIs(t, err, unionfind.ErrVertexOutOfRange)
}

func TestRoot_Scalar(t *testing.T) {
	f, err := unionfind.New(sampleParents())
	require.NoError(t, err)

	r, err := f.Root(10)
	require.NoError(t, err)
	assert.Equal(t, 3, r)

	_, err = f.Root(11)
	assert.ErrorIs(t, err, unionfind.ErrVertexOutOfRange)
}

func TestConnected(t *testing.T) {
	f, err := unionfind.New(sampleParents())
	require.NoError(t, err)

	got, err := f.Connected(6, 10)
	require.NoError(t, err)
	assert.True(t, got, "6 and 10 share root 3")

	got, err = f.Connected(2, 7)
	require.NoError(t, err)
	assert.False(t, got, "2 and 7 live in different trees")

	_, err = f.Connected(0, 99)
	assert.ErrorIs(t, err, unionfind.ErrVertexOutOfRange)
}
