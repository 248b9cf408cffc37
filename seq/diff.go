// SPDX-License-Identifier: MIT

package seq

import (
	"fmt"
	"math"

	"github.com/katalvlaran/interptab/table"
)

// Diff returns the first-order differences s[i+1] - s[i] of a 1D sequence.
// A row (1×n) yields a 1×(n-1) row; a column yields an (n-1)×1 column.
// Integer kinds are computed in int64 and saturated to T's range, so
// uint8 3-10 is 0 and int8 127-(-128) is 127. Floating kinds subtract in T.
//
// Errors:
//   - table.ErrNilTable, table.ErrNot1D.
//
// Complexity:
//   - Time O(n), Space O(n).
func Diff[T table.Element](s *table.Table[T]) (*table.Table[T], error) {
	if s == nil {
		return nil, fmt.Errorf("Diff: %w", table.ErrNilTable)
	}
	if err := table.Validate1D(s); err != nil {
		return nil, fmt.Errorf("Diff: %w", err)
	}

	vals := s.Values()
	n := len(vals) - 1
	if n < 0 {
		n = 0
	}
	out := make([]T, n)
	if kind := table.KindOf[T](); kind.IsFloat() {
		for i := 0; i < n; i++ {
			out[i] = vals[i+1] - vals[i]
		}
	} else {
		lo, hi := intBounds(kind)
		for i := 0; i < n; i++ {
			out[i] = T(saturate(int64(vals[i+1])-int64(vals[i]), lo, hi))
		}
	}

	if s.Rows() == 1 {
		return table.FromSlice(1, n, out)
	}

	return table.FromSlice(n, 1, out)
}

// intBounds returns the representable range of an integer kind.
func intBounds(k table.Kind) (lo, hi int64) {
	switch k {
	case table.KindInt8:
		return math.MinInt8, math.MaxInt8
	case table.KindUint8:
		return 0, math.MaxUint8
	case table.KindInt16:
		return math.MinInt16, math.MaxInt16
	case table.KindUint16:
		return 0, math.MaxUint16
	}

	return math.MinInt32, math.MaxInt32
}

func saturate(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
