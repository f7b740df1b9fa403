// Package factorial computes exact factorials and records them in an append-only CSV ledger.
package factorial

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// ErrNegative is returned for negative inputs.
var ErrNegative = errors.New("factorial is not defined for negative integers")

// Compute returns n! exactly.
// Products that fit in 256 bits (n <= 57) stay on the fixed-width path;
// larger ones use a binary-splitting product over math/big.
func Compute(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegative, n)
	}
	if v, ok := small(n); ok {
		return v.ToBig(), nil
	}
	return new(big.Int).MulRange(1, int64(n)), nil
}

// small multiplies 2..n in 256-bit words and reports false on overflow.
func small(n int) (*uint256.Int, bool) {
	acc := uint256.NewInt(1)
	for i := 2; i <= n; i++ {
		var overflow bool
		acc, overflow = new(uint256.Int).MulOverflow(acc, uint256.NewInt(uint64(i)))
		if overflow {
			return nil, false
		}
	}
	return acc, true
}

// Digits returns the number of decimal digits of v (ignoring sign).
func Digits(v *big.Int) int {
	return len(new(big.Int).Abs(v).String())
}
