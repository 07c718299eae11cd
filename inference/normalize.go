// SPDX-License-Identifier: MIT

package inference

import (
	"fmt"
	"math"
)

// Normalize scales d so that False + True = 1.
//
// Errors:
//   - ErrDegenerateDistribution if either entry is negative or not finite,
//     or the sum is zero.
//
// Normalizing an already normalized pair returns it unchanged (up to
// rounding of x/1).
func Normalize(d Distribution) (Distribution, error) {
	for _, v := range []float64{d.False, d.True} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return Distribution{}, fmt.Errorf("Normalize%v: %w", d, ErrDegenerateDistribution)
		}
	}
	sum := d.Sum()
	if sum == 0 {
		return Distribution{}, fmt.Errorf("Normalize%v: zero mass: %w", d, ErrDegenerateDistribution)
	}

	return Distribution{False: d.False / sum, True: d.True / sum}, nil
}
