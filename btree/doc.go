/*
Package btree provides a generic, in-place-mutating weighted B+ tree: the
interior structural backbone of a chunked sequence.

Leaves and interior nodes are both bounded-fanout arrays ("chunks" one level
up from package chunk): a leaf holds up to Degree payload values, an interior
node holds up to Degree child pointers. Every node caches the ⊕-fold of its
children's measurements (see package measure), refreshed in place on every
mutation, so any node's Measure() is O(1) and the whole tree's is O(1) at the
root.

Unlike a persistent, path-copying tree, every mutation here modifies existing
node fields directly: there is exactly one owner, and no reader may observe a
tree mid-mutation. This follows the chunked sequence's single-owner ownership
model rather than any copy-on-write discipline.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
