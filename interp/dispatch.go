// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"

	"github.com/katalvlaran/interptab/table"
)

const ctxInterp1Any = "Interp1Any"

// Interp1Any is Interp1 for callers that hold type-erased tables.
// The element kind is checked once here and the generic body runs for the
// matching T.
//
// Errors:
//   - table.ErrNilTable for a nil operand.
//   - table.ErrTypeMismatch when X, Y and XI differ in Kind.
//   - table.ErrUnsupportedType for an unknown Kind or a Matrix that is not
//     a *table.Table of its reported Kind.
//   - anything Interp1 returns.
func Interp1Any(x, y, xi table.Matrix, opts ...Option) (table.Matrix, error) {
	for _, m := range []table.Matrix{x, y, xi} {
		if err := table.ValidateNotNil(m); err != nil {
			return nil, fmt.Errorf("%s: %w", ctxInterp1Any, err)
		}
	}
	if err := table.ValidateSameKind(x, y, xi); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxInterp1Any, err)
	}

	switch x.Kind() {
	case table.KindInt8:
		return interp1As[int8](x, y, xi, opts)
	case table.KindUint8:
		return interp1As[uint8](x, y, xi, opts)
	case table.KindInt16:
		return interp1As[int16](x, y, xi, opts)
	case table.KindUint16:
		return interp1As[uint16](x, y, xi, opts)
	case table.KindInt32:
		return interp1As[int32](x, y, xi, opts)
	case table.KindFloat32:
		return interp1As[float32](x, y, xi, opts)
	case table.KindFloat64:
		return interp1As[float64](x, y, xi, opts)
	}

	return nil, fmt.Errorf("%s: kind %s: %w", ctxInterp1Any, x.Kind(), table.ErrUnsupportedType)
}

// interp1As asserts all operands to *table.Table[T] and runs Interp1.
func interp1As[T table.Element](x, y, xi table.Matrix, opts []Option) (table.Matrix, error) {
	tx, okX := x.(*table.Table[T])
	ty, okY := y.(*table.Table[T])
	txi, okXI := xi.(*table.Table[T])
	if !okX || !okY || !okXI {
		return nil, fmt.Errorf("%s: %T: %w", ctxInterp1Any, x, table.ErrUnsupportedType)
	}
	out, err := Interp1(tx, ty, txi, opts...)
	if err != nil {
		return nil, err
	}

	return out, nil
}
