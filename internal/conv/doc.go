// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow
// when converting between Go's platform-sized signed and unsigned integers.
//
// Use cases:
//   - Turning a requested block count (uint) into a slice length (int)
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
