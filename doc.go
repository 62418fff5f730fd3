// Package bitvec provides a dynamically growable bit vector.
//
// A BitVector packs individual on/off flags into native machine words
// ("blocks" of WordBits bits each) and grows automatically when a write
// targets a bit beyond its current length. It is meant as a building block
// for visited-node markers, free-lists and presence bitmaps.
//
// # Quick Start
//
//	v := bitvec.New()
//	v.Set(200, bitvec.On) // grows to cover bit 200
//	v.Flip(3)
//
//	state, err := v.Get(200)
//	if err != nil {
//	    var oob *bitvec.ErrOutOfBounds
//	    if errors.As(err, &oob) {
//	        // oob.Length is the length at the time of the call
//	    }
//	}
//
// # Length and Growth
//
// Len reports the number of bits addressable without reallocation. It is
// always a multiple of WordBits and never decreases:
//
//	bitvec.WithBits(100).Len()  // 128 on 64-bit platforms
//	bitvec.WithBits(128).Len()  // 128, exact multiples are not padded
//	bitvec.WithBlocks(3).Len()  // 3 * WordBits
//
// Set and Flip grow the vector to exactly the block that owns the target
// bit. New blocks are zeroed, so bits that were never written read as Off.
// Get never grows; it fails with *ErrOutOfBounds instead.
//
// # Concurrency
//
// A BitVector is not safe for concurrent use. Growth replaces the backing
// slice, so callers that share a vector must guard every Set, Flip and
// Reserve (and any Get racing with them) with their own sync.RWMutex.
//
// # Observability
//
// Growth can be reported through a *Logger (debug level) and a
// MetricsCollector:
//
//	mc := &bitvec.BasicMetricsCollector{}
//	v := bitvec.New(
//	    bitvec.WithLogger(bitvec.NewTextLogger(slog.LevelDebug)),
//	    bitvec.WithMetricsCollector(mc),
//	)
package bitvec
