// SPDX-License-Identifier: MIT

// Package table - Table storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep every constructor copy-in so no Table aliases caller memory.
//
// Complexity quicksheet:
//   - New/FromSlice/Column/Row: O(r*c); At/Set: O(1); Clone/Values: O(r*c).

package table

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"  // method tag used in error wrappers
	ctxSet  = "Set" // method tag used in error wrappers
	ctxFrom = "FromRows"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// tableErrorf wraps an error with a uniform Table context and callsite indices.
func tableErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is the element-type-erased view of a Table.
// Every *Table[T] implements it; code that only learns the element type at
// runtime accepts Matrix and dispatches on Kind once.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// Kind returns the element type tag.
	Kind() Kind
}

// Table is a row-major r×c grid of T.
//   - r,c hold dimensions (rows, cols); either may be zero for results such
//     as the Diff of a one-element sequence.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Table[T Element] struct {
	r, c int // row and column counts (>= 0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Table[float64])(nil)
	_ fmt.Stringer = (*Table[int8])(nil)
)

// New creates an r×c zero table.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Element](rows, cols int) (*Table[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Table[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// newZeroOK is the internal constructor allowing rows==0 or cols==0.
func newZeroOK[T Element](rows, cols int) *Table[T] {
	return &Table[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// FromSlice builds an r×c table from row-major values (copied).
// Zero-area shapes are accepted.
//
// Errors:
//   - ErrInvalidDimensions when rows < 0 or cols < 0.
//   - ErrDimensionMismatch when len(data) != rows*cols.
func FromSlice[T Element](rows, cols int, data []T) (*Table[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("FromSlice: %d values for %dx%d: %w", len(data), rows, cols, ErrDimensionMismatch)
	}
	t := newZeroOK[T](rows, cols)
	copy(t.data, data)

	return t, nil
}

// Column returns an n×1 table holding a copy of vals.
func Column[T Element](vals ...T) *Table[T] {
	t := newZeroOK[T](len(vals), 1)
	copy(t.data, vals)

	return t
}

// Row returns a 1×n table holding a copy of vals.
func Row[T Element](vals ...T) *Table[T] {
	t := newZeroOK[T](1, len(vals))
	copy(t.data, vals)

	return t
}

// FromRows builds a table from a slice of equally long rows.
//
// Errors:
//   - ErrInvalidDimensions for an empty input or empty first row.
//   - ErrDimensionMismatch when a row length differs from the first.
func FromRows[T Element](rows [][]T) (*Table[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	c := len(rows[0])
	t := newZeroOK[T](len(rows), c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxFrom, i, len(row), c, ErrDimensionMismatch)
		}
		copy(t.data[i*c:(i+1)*c], row)
	}

	return t, nil
}

// Rows returns the row count.
func (t *Table[T]) Rows() int { return t.r }

// Cols returns the column count.
func (t *Table[T]) Cols() int { return t.c }

// Shape packs Rows() and Cols() into a single call.
func (t *Table[T]) Shape() (rows, cols int) { return t.r, t.c }

// Len returns the total number of elements (rows*cols).
func (t *Table[T]) Len() int { return len(t.data) }

// Kind returns the element type tag of T.
func (t *Table[T]) Kind() Kind { return KindOf[T]() }

// Is1D reports whether the table is a single row or a single column.
func (t *Table[T]) Is1D() bool { return t.r == 1 || t.c == 1 }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (t *Table[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= t.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= t.c {
		return 0, ErrOutOfRange
	}

	return row*t.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (t *Table[T]) At(row, col int) (T, error) {
	off, err := t.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, tableErrorf(ctxAt, row, col, err)
	}

	return t.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (t *Table[T]) Set(row, col int, v T) error {
	off, err := t.indexOf(row, col)
	if err != nil {
		return tableErrorf(ctxSet, row, col, err)
	}
	t.data[off] = v

	return nil
}

// Clone returns a deep copy with identical shape and data.
func (t *Table[T]) Clone() *Table[T] {
	cp := newZeroOK[T](t.r, t.c)
	copy(cp.data, t.data)

	return cp
}

// Values returns a copy of the elements in row-major order.
// For a 1D table this is the sequence itself.
func (t *Table[T]) Values() []T {
	out := make([]T, len(t.data))
	copy(out, t.data)

	return out
}

// String renders rows as lines of comma-separated values.
// Intended for debugging; not for hot paths.
func (t *Table[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < t.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * t.c
		for j = 0; j < t.c; j++ {
			fmt.Fprintf(&b, "%v", t.data[base+j])
			if j+1 < t.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
