// SPDX-License-Identifier: MIT

package seq

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/interptab/table"
)

// indexed pairs a value with its original row-major position.
type indexed[T table.Element] struct {
	v T
	i int
}

// Argsort returns the permutation that sorts the 1D sequence s.
// MAIN DESCRIPTION:
//   - Pair each element with its index, stable-sort the pairs by value in
//     the requested direction, return the indices.
//
// Behavior highlights:
//   - Equal values keep their original relative order in both directions,
//     so the result is deterministic and always a bijection.
//   - NaN orders before every other value (cmp.Compare), i.e. first when
//     ascending and last when descending.
//
// Errors:
//   - table.ErrNilTable, table.ErrNot1D.
//
// Complexity:
//   - Time O(n log n), Space O(n).
func Argsort[T table.Element](s *table.Table[T], ascending bool) (table.Permutation, error) {
	if s == nil {
		return nil, fmt.Errorf("Argsort: %w", table.ErrNilTable)
	}
	if err := table.Validate1D(s); err != nil {
		return nil, fmt.Errorf("argsort only supports 1D sequences: %w", err)
	}

	vals := s.Values()
	pairs := make([]indexed[T], len(vals))
	for i, v := range vals {
		pairs[i] = indexed[T]{v: v, i: i}
	}
	if ascending {
		slices.SortStableFunc(pairs, func(a, b indexed[T]) int { return cmp.Compare(a.v, b.v) })
	} else {
		slices.SortStableFunc(pairs, func(a, b indexed[T]) int { return cmp.Compare(b.v, a.v) })
	}

	perm := make(table.Permutation, len(pairs))
	for i, p := range pairs {
		perm[i] = p.i
	}

	return perm, nil
}
