// SPDX-License-Identifier: MIT

package table

import "fmt"

const (
	ctxReorderRows = "ReorderRows"
	ctxReorderCols = "ReorderColumns"
)

// ReorderRows returns a new table whose row i is a copy of src row perm[i].
// MAIN DESCRIPTION:
//   - Apply an index permutation to the rows of src without touching src.
//
// Implementation:
//   - Stage 1: validate src, len(perm) == rows and every entry in range.
//   - Stage 2: allocate the result and copy whole rows with flat offsets.
//
// Errors:
//   - ErrNilTable, ErrDimensionMismatch (len(perm) != rows), ErrOutOfRange.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ReorderRows[T Element](src *Table[T], perm Permutation) (*Table[T], error) {
	if err := checkReorder(ctxReorderRows, src, perm, true); err != nil {
		return nil, err
	}
	dst := newZeroOK[T](src.r, src.c)
	copyRows(dst, src, perm)

	return dst, nil
}

// ReorderRowsInto writes the row-permuted src into dst.
// dst must have the shape of src and may be src itself.
//
// Errors:
//   - ErrNilTable, ErrDimensionMismatch, ErrOutOfRange. dst is untouched on error.
func ReorderRowsInto[T Element](dst, src *Table[T], perm Permutation) error {
	if err := checkReorder(ctxReorderRows, src, perm, true); err != nil {
		return err
	}
	if err := checkDst(ctxReorderRows, dst, src); err != nil {
		return err
	}
	if dst == src {
		src = src.Clone()
	}
	copyRows(dst, src, perm)

	return nil
}

// ReorderColumns returns a new table whose column j is a copy of src column perm[j].
//
// Errors:
//   - ErrNilTable, ErrDimensionMismatch (len(perm) != cols), ErrOutOfRange.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ReorderColumns[T Element](src *Table[T], perm Permutation) (*Table[T], error) {
	if err := checkReorder(ctxReorderCols, src, perm, false); err != nil {
		return nil, err
	}
	dst := newZeroOK[T](src.r, src.c)
	copyCols(dst, src, perm)

	return dst, nil
}

// ReorderColumnsInto writes the column-permuted src into dst.
// dst must have the shape of src and may be src itself.
func ReorderColumnsInto[T Element](dst, src *Table[T], perm Permutation) error {
	if err := checkReorder(ctxReorderCols, src, perm, false); err != nil {
		return err
	}
	if err := checkDst(ctxReorderCols, dst, src); err != nil {
		return err
	}
	if dst == src {
		src = src.Clone()
	}
	copyCols(dst, src, perm)

	return nil
}

// checkReorder validates src and perm against the reordered axis.
func checkReorder[T Element](ctx string, src *Table[T], perm Permutation, rows bool) error {
	if src == nil {
		return fmt.Errorf("%s: %w", ctx, ErrNilTable)
	}
	n := src.c
	if rows {
		n = src.r
	}
	if len(perm) != n {
		return fmt.Errorf("%s: permutation length %d, want %d: %w", ctx, len(perm), n, ErrDimensionMismatch)
	}
	if err := perm.Validate(n); err != nil {
		return fmt.Errorf("%s: %w", ctx, err)
	}

	return nil
}

func checkDst[T Element](ctx string, dst, src *Table[T]) error {
	if dst == nil {
		return fmt.Errorf("%s: dst: %w", ctx, ErrNilTable)
	}
	if err := ValidateSameShape(dst, src); err != nil {
		return fmt.Errorf("%s: dst: %w", ctx, err)
	}

	return nil
}

// copyRows assumes validated, non-aliasing operands.
func copyRows[T Element](dst, src *Table[T], perm Permutation) {
	c := src.c
	for i, p := range perm {
		copy(dst.data[i*c:(i+1)*c], src.data[p*c:(p+1)*c])
	}
}

// copyCols assumes validated, non-aliasing operands.
func copyCols[T Element](dst, src *Table[T], perm Permutation) {
	var i, base int
	for i = 0; i < src.r; i++ {
		base = i * src.c
		for j, p := range perm {
			dst.data[base+j] = src.data[base+p]
		}
	}
}
