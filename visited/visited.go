package visited

import (
	"sync"

	"github.com/hupe1980/bitvec"
)

// Set tracks visited nodes using a bit vector and a dirty list for fast reset.
type Set struct {
	bits  *bitvec.BitVector
	dirty []uint
}

// New creates a new visited set sized for capacity nodes.
// It grows on demand when a larger id is visited.
func New(capacity uint, opts ...bitvec.Option) *Set {
	return &Set{
		bits:  bitvec.WithBits(capacity, opts...),
		dirty: make([]uint, 0, 128), // Initial capacity for dirty list
	}
}

// Visit marks a node as visited.
// Returns true if the node was already visited, false otherwise.
func (s *Set) Visit(id uint) bool {
	if s.Visited(id) {
		return true
	}
	s.bits.Set(id, bitvec.On)
	s.dirty = append(s.dirty, id)
	return false
}

// Visited returns true if the node has been visited.
func (s *Set) Visited(id uint) bool {
	state, err := s.bits.Get(id)
	return err == nil && state.IsOn()
}

// Count returns the number of nodes visited since the last Reset.
func (s *Set) Count() int {
	return len(s.dirty)
}

// Capacity returns the number of node ids tracked without growing.
func (s *Set) Capacity() uint {
	return s.bits.Len()
}

// EnsureCapacity ensures the set can hold at least the given number of nodes.
func (s *Set) EnsureCapacity(capacity uint) {
	s.bits.Reserve(capacity)
}

// Reset clears the visited status for all nodes visited in the current session.
// Cost is proportional to the number of visited nodes, not the capacity.
func (s *Set) Reset() {
	for _, id := range s.dirty {
		s.bits.Set(id, bitvec.Off)
	}
	s.dirty = s.dirty[:0]
}

// Pool reuses visited sets across traversals.
type Pool struct {
	pool     sync.Pool
	capacity uint
}

// NewPool creates a pool whose sets start with the given capacity.
func NewPool(capacity uint, opts ...bitvec.Option) *Pool {
	p := &Pool{capacity: capacity}
	p.pool.New = func() any {
		return New(capacity, opts...)
	}
	return p
}

// Get retrieves an empty Set from the pool.
func (p *Pool) Get() *Set {
	return p.pool.Get().(*Set)
}

// Put resets s and returns it to the pool. Sets that grew far beyond the
// pool's capacity are dropped so one huge traversal does not pin memory.
func (p *Pool) Put(s *Set) {
	if s.Capacity() > 10*max(p.capacity, bitvec.WordBits) {
		return
	}
	s.Reset()
	p.pool.Put(s)
}
