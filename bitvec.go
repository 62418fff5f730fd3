package bitvec

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/hupe1980/bitvec/internal/conv"
)

// WordBits is the number of bits per block (the native word width).
const WordBits = bits.UintSize

// BitState is the logical value of a single bit.
type BitState uint8

const (
	// Off is a cleared bit. It is the zero value.
	Off BitState = iota
	// On is a set bit.
	On
)

// StateOf converts a bool to a BitState.
func StateOf(b bool) BitState {
	if b {
		return On
	}
	return Off
}

// IsOn reports whether s is On.
func (s BitState) IsOn() bool { return s == On }

func (s BitState) String() string {
	if s == On {
		return "on"
	}
	return "off"
}

// BitVector is a growable sequence of bits packed into machine words.
//
// Bits that were never written read as Off. Writes beyond the current
// length grow the vector; reads beyond it fail with *ErrOutOfBounds.
//
// A BitVector is not safe for concurrent use. Callers sharing one across
// goroutines must serialize Set, Flip and Reserve with their own lock.
//
// The zero value is an empty vector ready to use.
type BitVector struct {
	blocks  []uint
	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty bit vector. It does not allocate blocks.
func New(opts ...Option) *BitVector {
	return newBitVector(0, opts)
}

// WithBits creates a bit vector able to hold at least n bits without
// growing. The length is rounded up to a whole number of blocks.
func WithBits(n uint, opts ...Option) *BitVector {
	return newBitVector(blocksNeeded(n), opts)
}

// WithBlocks creates a bit vector with exactly k preallocated blocks.
func WithBlocks(k uint, opts ...Option) *BitVector {
	return newBitVector(k, opts)
}

func newBitVector(numBlocks uint, opts []Option) *BitVector {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	v := &BitVector{
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
	if numBlocks > 0 {
		v.blocks = make([]uint, mustInt(numBlocks))
	}
	return v
}

// Len returns the number of bits addressable without further allocation.
// It is always a multiple of WordBits.
func (v *BitVector) Len() uint {
	return uint(len(v.blocks)) * WordBits
}

// NumBlocks returns the number of allocated blocks.
func (v *BitVector) NumBlocks() int {
	return len(v.blocks)
}

// Get returns the state of the bit at index.
//
// If index >= Len() it returns Off and an *ErrOutOfBounds carrying the
// current length. Get never grows the vector.
func (v *BitVector) Get(index uint) (BitState, error) {
	if index >= v.Len() {
		return Off, &ErrOutOfBounds{Index: index, Length: v.Len()}
	}

	if v.blocks[blockOf(index)]>>shiftOf(index)&1 == 1 {
		return On, nil
	}
	return Off, nil
}

// Set writes state to the bit at index, growing the vector if needed.
// Any state other than On clears the bit.
func (v *BitVector) Set(index uint, state BitState) {
	v.ensure(index)

	mask := uint(1) << shiftOf(index)
	if state == On {
		v.blocks[blockOf(index)] |= mask
	} else {
		v.blocks[blockOf(index)] &^= mask
	}
}

// Flip toggles the bit at index, growing the vector if needed.
func (v *BitVector) Flip(index uint) {
	v.ensure(index)

	v.blocks[blockOf(index)] ^= uint(1) << shiftOf(index)
}

// Reserve grows the vector so that Len() >= n. It never shrinks and
// does not change any bit.
func (v *BitVector) Reserve(n uint) {
	v.grow(blocksNeeded(n), n)
}

// ensure makes index addressable.
func (v *BitVector) ensure(index uint) {
	if index < v.Len() {
		return
	}
	// blockOf(index)+1 rather than blocksNeeded(index+1): index+1 wraps at MaxUint.
	v.grow(blockOf(index)+1, index)
}

// grow appends zero blocks until there are at least numBlocks.
// index is the bit that triggered the growth and is only used for logging.
func (v *BitVector) grow(numBlocks uint, index uint) {
	target := mustInt(numBlocks)
	oldBlocks := len(v.blocks)
	if target <= oldBlocks {
		return
	}

	v.blocks = append(v.blocks, make([]uint, target-oldBlocks)...)

	if v.metrics != nil {
		v.metrics.RecordGrow(oldBlocks, target)
	}
	if v.logger != nil {
		v.logger.LogGrow(context.Background(), index, oldBlocks, target)
	}
}

func blockOf(i uint) uint { return i / WordBits }

func shiftOf(i uint) uint { return i % WordBits }

// blocksNeeded returns ceil(n / WordBits) without overflowing near MaxUint.
func blocksNeeded(n uint) uint {
	k := n / WordBits
	if n%WordBits != 0 {
		k++
	}
	return k
}

// mustInt converts a block count to a slice length. A count that does not
// fit an int could never be allocated, so it panics like an allocation
// failure would.
func mustInt(numBlocks uint) int {
	n, err := conv.UintToInt(numBlocks)
	if err != nil {
		panic(fmt.Errorf("bitvec: cannot allocate %d blocks: %w", numBlocks, err))
	}
	return n
}
