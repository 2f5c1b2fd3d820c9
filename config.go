package chunkseq

import (
	"fmt"

	"github.com/gopherseq/chunkseq/chunk"
	"github.com/gopherseq/chunkseq/measure"
)

// DefaultChunkCapacity is the default number of items a finger or leaf chunk
// holds before it spills into (or is refilled from) the middle tree.
const DefaultChunkCapacity = 512

// DefaultTreeDegree is the default branching factor of the middle tree.
const DefaultTreeDegree = 32

// Config describes how a Sequence stores and measures its items. S is the
// item type; T is the type of the folded measurement callers read back via
// Measure.
type Config[S, T any] struct {
	// Algebra combines per-item measurements into the running fold. Required.
	Algebra measure.Algebra[T]
	// Measure computes a single item's measurement. Required.
	Measure measure.Measure[S, T]
	// ChunkCapacity bounds the size of every finger chunk and every leaf
	// chunk held in the middle tree. Defaults to DefaultChunkCapacity.
	ChunkCapacity int
	// ChunkKind selects the end-operation behavior of item-level chunks.
	// Defaults to chunk.Ring.
	ChunkKind chunk.Kind
	// TreeDegree bounds the fan-out of the middle tree. Defaults to
	// DefaultTreeDegree.
	TreeDegree int
	// Allocator, if set, supplies the backing buffer for every finger and
	// leaf chunk instead of a plain make(). Optional.
	Allocator Allocator[S]
}

func (cfg Config[S, T]) normalized() Config[S, T] {
	if cfg.ChunkCapacity <= 0 {
		cfg.ChunkCapacity = DefaultChunkCapacity
	}
	if cfg.TreeDegree <= 0 {
		cfg.TreeDegree = DefaultTreeDegree
	}
	return cfg
}

func (cfg Config[S, T]) validate() error {
	cfg = cfg.normalized()
	if cfg.Algebra == nil {
		return fmt.Errorf("%w: algebra is required", ErrInvalidConfig)
	}
	if cfg.Measure == nil {
		return fmt.Errorf("%w: measure is required", ErrInvalidConfig)
	}
	if cfg.ChunkCapacity <= 0 || cfg.ChunkCapacity%2 != 0 {
		return fmt.Errorf("%w: chunk capacity must be a positive even integer", ErrInvalidConfig)
	}
	if cfg.TreeDegree < 4 || cfg.TreeDegree%2 != 0 {
		return fmt.Errorf("%w: tree degree must be an even integer >= 4", ErrInvalidConfig)
	}
	return nil
}
