// Package visited provides a resettable visited-node set for graph traversals,
// backed by a growable bitvec.BitVector.
//
// Reset only touches the bits set since the previous Reset, so a Set can be
// reused across traversals of a large graph at a cost proportional to the
// nodes actually visited. Pool wraps sync.Pool for reuse across goroutines;
// an individual Set is not safe for concurrent use.
package visited
