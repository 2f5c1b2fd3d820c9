/*
Package chunkseq implements a generic bootstrapped chunked sequence: an
ordered, mutable container supporting amortized O(1) push/pop at both ends,
O(log n) positional index/split/concat, and a pluggable cached
measurement that lets callers fold an arbitrary associative summary (size,
byte/line counts, key order, ...) over the live items in O(1).

A Sequence is built from four small "finger" chunks (front_outer,
front_inner, back_inner, back_outer) around a recursively-structured middle:
a weighted B+ tree (package btree) whose own leaf payloads are themselves
chunks (package chunk). End operations touch only the fingers; once a finger
overflows, a whole chunk spills into the middle tree, and amortizes the cost
of that spill over the K pushes that filled it.

A Sequence has exactly one owner at a time: every mutating method assumes no
concurrent reader or writer, and iterators are invalidated by any mutation
of the sequence.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package chunkseq

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
