package btree

import (
	"fmt"

	"github.com/gopherseq/chunkseq/measure"
)

const (
	// DefaultDegree is the default max fanout at every level of the tree.
	DefaultDegree = 32
	// DefaultMinDegree is the default minimum occupancy that Check requires
	// of every non-root node except the tree's leftmost and rightmost leaf.
	DefaultMinDegree = DefaultDegree / 2
)

// Measured constrains a tree's payload type to one that carries its own
// measurement. The tree only needs to know T, not the underlying item type
// S the payload was itself measured from.
type Measured[T any] interface {
	Measure() T
}

// Config configures a weighted B+ tree.
type Config[T any] struct {
	// Algebra combines child measurements up the tree.
	Algebra measure.Algebra[T]
	// Degree is the max fanout (leaf items or interior children) per node.
	// Must be a positive even integer at least 4.
	Degree int
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Degree <= 0 {
		cfg.Degree = DefaultDegree
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	cfg = cfg.normalized()
	if cfg.Algebra == nil {
		return fmt.Errorf("%w: algebra is required", ErrInvalidConfig)
	}
	if cfg.Degree < 4 || cfg.Degree%2 != 0 {
		return fmt.Errorf("%w: degree must be an even integer >= 4", ErrInvalidConfig)
	}
	return nil
}

func (cfg Config[T]) minDegree() int {
	return cfg.Degree / 2
}
