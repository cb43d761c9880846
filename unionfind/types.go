// Package unionfind defines types, options, and sentinel errors
// for the unionfind subpackage of github.com/katalvlaran/conngraph.
package unionfind

import (
	"errors"
)

// Sentinel errors for unionfind operations.
var (
	// ErrEmptyForest indicates a constructor received no vertices.
	ErrEmptyForest = errors.New("unionfind: forest must contain at least one vertex")
	// ErrVertexOutOfRange indicates a vertex id outside [0, N).
	ErrVertexOutOfRange = errors.New("unionfind: vertex id out of range")
	// ErrNotAForest indicates a parent array whose links do not all terminate at a root.
	ErrNotAForest = errors.New("unionfind: parent array contains a rootless cycle")
	// ErrBatchLengthMismatch indicates Union received minor/main batches of different lengths.
	ErrBatchLengthMismatch = errors.New("unionfind: minor and main batches must have equal length")
	// ErrUnknownCompression indicates an unrecognized CompressionMode value.
	ErrUnknownCompression = errors.New("unionfind: unknown compression mode")
)

// CompressionMode selects how a compressing root lookup rewrites parents.
type CompressionMode int

const (
	// PathHalving rewrites each visited vertex's parent to its grandparent
	// while walking: a single pass producing moderately flat trees.
	PathHalving CompressionMode = iota
	// FullCompression locates the root first, then re-walks the same path
	// rewriting every visited vertex's parent directly to the root:
	// two passes producing fully flat paths.
	FullCompression
)

// Option configures optional behavior of Union and WeightedUnion.
// Use with f.Union(minor, main, opts...).
type Option func(*UnionOptions)

// UnionOptions holds configurable parameters for union operations.
// It controls whether root lookups compress paths, and with which mode.
type UnionOptions struct {
	// Compress enables path compression during the root lookups a union
	// performs. Default is true.
	Compress bool

	// Mode selects the compression flavor when Compress is true.
	// Default is PathHalving.
	Mode CompressionMode
}

// DefaultOptions returns a UnionOptions struct with:
//   - Compression enabled
//   - PathHalving mode
func DefaultOptions() UnionOptions {
	return UnionOptions{
		Compress: true,
		Mode:     PathHalving,
	}
}

// WithCompression returns an Option that enables path compression with the
// given mode during a union's root lookups.
func WithCompression(mode CompressionMode) Option {
	return func(o *UnionOptions) {
		o.Compress = true
		o.Mode = mode
	}
}

// WithoutCompression returns an Option that disables path compression during
// a union's root lookups; roots are located without mutating the forest.
func WithoutCompression() Option {
	return func(o *UnionOptions) {
		o.Compress = false
	}
}
