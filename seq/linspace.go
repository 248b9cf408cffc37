// SPDX-License-Identifier: MIT

package seq

import (
	"fmt"

	"github.com/katalvlaran/interptab/table"
)

// Linspace returns an n×1 column of n evenly spaced values from x0 to x1.
// Element i is x0 + i*(x1-x0)/(n-1); the step is computed in float64 and
// the final element is exactly x1.
//
// Errors:
//   - table.ErrTooFewPoints when n < 2.
//
// Complexity:
//   - Time O(n), Space O(n).
func Linspace[T table.Float](x0, x1 T, n int) (*table.Table[T], error) {
	if n < 2 {
		return nil, fmt.Errorf("Linspace(n=%d): %w", n, table.ErrTooFewPoints)
	}
	step := (float64(x1) - float64(x0)) / float64(n-1)
	vals := make([]T, n)
	for i := 0; i < n-1; i++ {
		vals[i] = T(float64(x0) + float64(i)*step)
	}
	vals[n-1] = x1

	return table.Column(vals...), nil
}
