package conv

import (
	"fmt"
	"math"
)

// UintToInt converts uint to int safely.
func UintToInt(v uint) (int, error) {
	if v > math.MaxInt {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}
