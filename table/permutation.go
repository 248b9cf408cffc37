// SPDX-License-Identifier: MIT

package table

import "fmt"

// Permutation describes a reordering: position i of the output takes the
// row (or column) Permutation[i] of the input.
// Entries are plain indices into the source table. Duplicates are legal for
// reordering; Argsort always yields a bijection.
type Permutation []int

// Validate checks that every entry lies in [0, n).
//
// Errors:
//   - ErrOutOfRange naming the first offending position.
//
// Complexity: O(len(p)).
func (p Permutation) Validate(n int) error {
	for i, v := range p {
		if v < 0 || v >= n {
			return fmt.Errorf("Permutation[%d]=%d not in [0,%d): %w", i, v, n, ErrOutOfRange)
		}
	}

	return nil
}

// IsBijection reports whether p contains every index 0..len(p)-1 exactly once.
func (p Permutation) IsBijection() bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}
