// SPDX-License-Identifier: MIT
// Package: table
//
// Purpose:
//  - Provide a single source of truth for the shape checks shared by
//    table, seq and interp.
//  - Return sentinel errors wrapped with the validator tag so call sites
//    can wrap once more with their own context.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).

package table

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the Matrix is non-nil, including a typed nil
// *Table hidden inside the interface.
func ValidateNotNil(m Matrix) error {
	if m == nil || isNilTable(m) {
		return validatorErrorf("ValidateNotNil", ErrNilTable)
	}

	return nil
}

// isNilTable detects (*Table[T])(nil) for every Element kind.
func isNilTable(m Matrix) bool {
	switch t := m.(type) {
	case *Table[int8]:
		return t == nil
	case *Table[uint8]:
		return t == nil
	case *Table[int16]:
		return t == nil
	case *Table[uint16]:
		return t == nil
	case *Table[int32]:
		return t == nil
	case *Table[float32]:
		return t == nil
	case *Table[float64]:
		return t == nil
	}

	return false
}

// Validate1D ensures m is non-nil and has exactly one row or one column.
func Validate1D(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("Validate1D", err)
	}
	if m.Rows() != 1 && m.Cols() != 1 {
		return validatorErrorf("Validate1D", ErrNot1D)
	}

	return nil
}

// ValidateColumn ensures m is non-nil and has exactly one column.
func ValidateColumn(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateColumn", err)
	}
	if m.Cols() != 1 {
		return validatorErrorf("ValidateColumn", ErrNotColumn)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes both are non-nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameKind ensures all operands carry the same element Kind.
// Assumes all are non-nil.
func ValidateSameKind(ms ...Matrix) error {
	for i := 1; i < len(ms); i++ {
		if ms[i].Kind() != ms[0].Kind() {
			return validatorErrorf("ValidateSameKind",
				fmt.Errorf("operand %d is %s, want %s: %w", i, ms[i].Kind(), ms[0].Kind(), ErrTypeMismatch))
		}
	}

	return nil
}
