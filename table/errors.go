// SPDX-License-Identifier: MIT
// Package table: sentinel error set.
// Every exported operation of table, seq and interp returns one of these
// sentinels (possibly wrapped with call-site context), and tests match them
// with errors.Is. Nothing panics on user-triggered error conditions.

package table

import (
	"errors"
	"fmt"
)

// Categories. Each specific sentinel below wraps exactly one of these, so
// callers may match either the precise condition or its broad kind.
var (
	// ErrInvalidArgument covers wrong dimensionality, too-small inputs and
	// unsupported element types.
	ErrInvalidArgument = errors.New("table: invalid argument")

	// ErrDimensionMismatch indicates incompatible shapes between paired
	// operands (X vs Y, table vs permutation length, dst vs src).
	ErrDimensionMismatch = errors.New("table: dimension mismatch")

	// ErrOutOfRange indicates that a row, column or permutation index is
	// outside valid bounds.
	ErrOutOfRange = errors.New("table: index out of range")

	// ErrTypeMismatch indicates operands carrying different element kinds.
	ErrTypeMismatch = errors.New("table: element type mismatch")

	// ErrZeroSpan is returned when integer interpolation meets a bracket
	// whose abscissas are equal. It is a numeric condition, not a bad
	// argument; floating kinds propagate Inf/NaN instead.
	ErrZeroSpan = errors.New("table: zero-width interpolation segment")
)

// Specific conditions.
var (
	// ErrInvalidDimensions indicates non-positive dimensions passed to New.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrInvalidArgument)

	// ErrNilTable indicates a nil table argument.
	ErrNilTable = fmt.Errorf("%w: nil table", ErrInvalidArgument)

	// ErrNot1D is returned when a 1D sequence (1×n or n×1) was required.
	ErrNot1D = fmt.Errorf("%w: only 1D sequences supported", ErrInvalidArgument)

	// ErrNotColumn is returned when a single-column table was required.
	ErrNotColumn = fmt.Errorf("%w: only column vectors supported", ErrInvalidArgument)

	// ErrTooFewPoints is returned by ramp generation when n < 2.
	ErrTooFewPoints = fmt.Errorf("%w: at least two points required", ErrInvalidArgument)

	// ErrTooFewSamples is returned by interpolation on tables with < 2 rows.
	ErrTooFewSamples = fmt.Errorf("%w: at least two samples required", ErrInvalidArgument)

	// ErrUnsupportedType is returned when runtime dispatch meets an element
	// kind (or Matrix implementation) it cannot serve.
	ErrUnsupportedType = fmt.Errorf("%w: unsupported element type", ErrInvalidArgument)
)
