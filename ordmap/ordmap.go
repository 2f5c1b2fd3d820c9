/*
Package ordmap configures a chunked sequence as an ordered key-value map:
entries kept sorted ascending by key in a ring-chunk sequence, with insert,
erase and lookup all reduced to one split_by plus a concat, per the
associative-map derived configuration.

The underlying cached measurement tracks the largest key seen in any
prefix. For an ascending-sorted sequence that value is exactly the key of
the prefix's last entry, so it grows monotonically as the prefix grows —
the property split_by's binary descent requires. This is a min-key policy
run over the reverse key order (the smallest key under "greater than" is
the largest key under the natural order), reusing measure.MinKey rather
than introducing a separate max-key policy.
*/
package ordmap

import (
	"github.com/gopherseq/chunkseq"
	"github.com/gopherseq/chunkseq/chunk"
	"github.com/gopherseq/chunkseq/measure"
)

// Entry is one key-value pair stored in a Map.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Map is an ordered key-value map backed by a chunked sequence. Keys are
// compared with a caller-supplied Less function; the zero value is not
// usable, create one with New.
type Map[K, V any] struct {
	seq  *chunkseq.Sequence[Entry[K, V], measure.MinKeyValue[K]]
	cfg  chunkseq.Config[Entry[K, V], measure.MinKeyValue[K]]
	less func(a, b K) bool
}

// New creates an empty ordered map, keys compared by less, with the given
// chunk capacity (0 selects chunkseq's default).
func New[K, V any](less func(a, b K) bool, chunkCapacity int) (*Map[K, V], error) {
	policy := measure.MinKey[Entry[K, V], K]{
		KeyOf: func(e Entry[K, V]) K { return e.Key },
		Less:  func(a, b K) bool { return less(b, a) }, // reversed: min-of-reverse = max-of-natural
	}
	cfg := chunkseq.Config[Entry[K, V], measure.MinKeyValue[K]]{
		Algebra:       policy,
		Measure:       policy,
		ChunkCapacity: chunkCapacity,
		ChunkKind:     chunk.Ring,
	}
	seq, err := chunkseq.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{seq: seq, cfg: cfg, less: less}, nil
}

func (m *Map[K, V]) equal(a, b K) bool { return !m.less(a, b) && !m.less(b, a) }

// atLeast(acc) is true once the largest key in the prefix reaches key,
// i.e. once the sorted prefix has grown to include an entry with key >=
// the target key.
func (m *Map[K, V]) atLeast(key K) func(measure.MinKeyValue[K]) bool {
	return func(acc measure.MinKeyValue[K]) bool { return acc.Valid && !m.less(acc.Key, key) }
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int { return m.seq.Len() }

// Get looks up key, reporting whether it is present.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	index, _, found := m.seq.SearchBy(m.atLeast(key))
	if !found {
		return value, false
	}
	entry, err := m.seq.At(index)
	if err != nil || !m.equal(entry.Key, key) {
		return value, false
	}
	return entry.Value, true
}

// Set inserts key with value, or overwrites the value if key is already
// present.
func (m *Map[K, V]) Set(key K, value V) error {
	left, right, err := m.seq.SplitBy(m.atLeast(key))
	if err != nil {
		return err
	}
	if right.Len() > 0 {
		first, err := right.At(0)
		if err != nil {
			return err
		}
		if m.equal(first.Key, key) {
			if err := right.Set(0, Entry[K, V]{Key: key, Value: value}); err != nil {
				return err
			}
			if err := left.Concat(right); err != nil {
				return err
			}
			m.seq = left
			return nil
		}
	}
	mid, err := chunkseq.New(m.cfg)
	if err != nil {
		return err
	}
	if err := mid.PushBack(Entry[K, V]{Key: key, Value: value}); err != nil {
		return err
	}
	if err := left.Concat(mid); err != nil {
		return err
	}
	if err := left.Concat(right); err != nil {
		return err
	}
	m.seq = left
	return nil
}

// Delete removes key, reporting whether it was present.
func (m *Map[K, V]) Delete(key K) (ok bool, err error) {
	left, right, err := m.seq.SplitBy(m.atLeast(key))
	if err != nil {
		return false, err
	}
	if right.Len() == 0 {
		if err := left.Concat(right); err != nil {
			return false, err
		}
		m.seq = left
		return false, nil
	}
	first, err := right.At(0)
	if err != nil {
		return false, err
	}
	if !m.equal(first.Key, key) {
		if err := left.Concat(right); err != nil {
			return false, err
		}
		m.seq = left
		return false, nil
	}
	rest, tail, err := right.Split(1)
	if err != nil {
		return false, err
	}
	_ = rest
	if err := left.Concat(tail); err != nil {
		return false, err
	}
	m.seq = left
	return true, nil
}

// ForEach visits every entry in ascending key order, stopping early if fn
// returns false.
func (m *Map[K, V]) ForEach(fn func(Entry[K, V]) bool) {
	cur := m.seq.NewCursor()
	for {
		entry, ok := cur.Next()
		if !ok || !fn(entry) {
			return
		}
	}
}
