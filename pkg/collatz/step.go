package collatz

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when a value leaves the uint64 domain.
var ErrOverflow = errors.New("arithmetic overflow")

// maxOdd is the largest n for which 3n+1 still fits in a uint64.
const maxOdd = (math.MaxUint64 - 1) / 3

// Next applies the Collatz step: n/2 for even n, 3n+1 for odd n.
func Next(n uint64) (uint64, error) {
	if n%2 == 0 {
		return n / 2, nil
	}
	if n > maxOdd {
		return 0, fmt.Errorf("collatz step of %d: %w", n, ErrOverflow)
	}
	return 3*n + 1, nil
}
