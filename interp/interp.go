// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"

	"github.com/katalvlaran/interptab/seq"
	"github.com/katalvlaran/interptab/table"
)

// Interpolator holds a sample table sorted by ascending X.
// It is immutable after New and safe for concurrent use.
type Interpolator[T table.Element] struct {
	xs, ys  []T  // sorted abscissas and matching ordinates, len >= 2
	integer bool // T is an integer kind: evaluate in int64
	opts    Options
}

// New validates the sample table (X, Y) and sorts it by X.
// MAIN DESCRIPTION:
//   - Sort once so that repeated queries cost O(log n) each.
//
// Implementation:
//   - Stage 1: X must be a single column, Y must have X's shape, n >= 2.
//   - Stage 2: order := Argsort(X, ascending); reorder both X and Y rows.
//
// Errors:
//   - table.ErrNilTable, table.ErrNotColumn, table.ErrDimensionMismatch,
//     table.ErrTooFewSamples.
//
// Complexity:
//   - Time O(n log n), Space O(n).
func New[T table.Element](x, y *table.Table[T], opts ...Option) (*Interpolator[T], error) {
	if x == nil || y == nil {
		return nil, fmt.Errorf("interp.New: %w", table.ErrNilTable)
	}
	if err := table.ValidateColumn(x); err != nil {
		return nil, fmt.Errorf("interp.New: X: %w", err)
	}
	if err := table.ValidateSameShape(x, y); err != nil {
		return nil, fmt.Errorf("interp.New: X and Y: %w", err)
	}
	if x.Rows() < 2 {
		return nil, fmt.Errorf("interp.New: %d rows: %w", x.Rows(), table.ErrTooFewSamples)
	}

	order, err := seq.Argsort(x, true)
	if err != nil {
		return nil, fmt.Errorf("interp.New: %w", err)
	}
	xs, err := table.ReorderRows(x, order)
	if err != nil {
		return nil, fmt.Errorf("interp.New: X: %w", err)
	}
	ys, err := table.ReorderRows(y, order)
	if err != nil {
		return nil, fmt.Errorf("interp.New: Y: %w", err)
	}

	return &Interpolator[T]{
		xs:      xs.Values(),
		ys:      ys.Values(),
		integer: !table.KindOf[T]().IsFloat(),
		opts:    gatherOptions(opts...),
	}, nil
}

// Len returns the number of samples.
func (ip *Interpolator[T]) Len() int { return len(ip.xs) }

// Domain returns the smallest and largest sample abscissa.
func (ip *Interpolator[T]) Domain() (lo, hi T) { return ip.xs[0], ip.xs[len(ip.xs)-1] }

// Bracket returns the sorted-sample indices (lo, lo+1) used to evaluate xq.
// In-range queries satisfy xs[lo] <= xq <= xs[hi]; queries below the range
// get the first segment and queries above it get the last.
// Complexity: O(log n).
func (ip *Interpolator[T]) Bracket(xq T) (lo, hi int) {
	lo, hi = 0, len(ip.xs)-1
	if xq < ip.xs[lo] {
		hi = 1
	}
	if xq > ip.xs[hi] {
		lo = hi - 1
	}
	var mid int
	for hi-lo > 1 {
		mid = lo + (hi-lo)/2
		if xq > ip.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo, hi
}

// At evaluates the interpolant at xq.
//
// Errors:
//   - table.ErrOutOfRange under ExtrapolateReject for queries outside Domain.
//   - table.ErrZeroSpan for integer kinds when the bracket has equal abscissas.
func (ip *Interpolator[T]) At(xq T) (T, error) {
	last := len(ip.xs) - 1
	switch ip.opts.extrapolation {
	case ExtrapolateClamp:
		if xq < ip.xs[0] {
			return ip.ys[0], nil
		}
		if xq > ip.xs[last] {
			return ip.ys[last], nil
		}
	case ExtrapolateReject:
		if xq < ip.xs[0] || xq > ip.xs[last] {
			var zero T
			return zero, fmt.Errorf("query %v outside [%v, %v]: %w", xq, ip.xs[0], ip.xs[last], table.ErrOutOfRange)
		}
	}

	lo, hi := ip.Bracket(xq)
	y, ok := lerp(ip.integer, xq, ip.xs[lo], ip.xs[hi], ip.ys[lo], ip.ys[hi])
	if !ok {
		return y, fmt.Errorf("query %v on segment [%d,%d]: %w", xq, lo, hi, table.ErrZeroSpan)
	}

	return y, nil
}

// Eval evaluates every element of xi in row-major order.
// The result has xi's shape.
// Eval is all-or-nothing: the first failing query (table.ErrZeroSpan or,
// under ExtrapolateReject, table.ErrOutOfRange) fails the whole batch and
// no table is returned. Use At to skip individual queries instead.
func (ip *Interpolator[T]) Eval(xi *table.Table[T]) (*table.Table[T], error) {
	if xi == nil {
		return nil, fmt.Errorf("Interpolator.Eval: %w", table.ErrNilTable)
	}
	qs := xi.Values()
	out := make([]T, len(qs))
	var err error
	for i, xq := range qs {
		if out[i], err = ip.At(xq); err != nil {
			return nil, fmt.Errorf("Interpolator.Eval: query %d: %w", i, err)
		}
	}

	return table.FromSlice(xi.Rows(), xi.Cols(), out)
}

// Interp1 interpolates the sample table (X, Y) at every element of XI.
// X and Y are single columns of equal length in any order; the result has
// XI's shape and element type.
//
// Errors: see New and Interpolator.At; a nil XI is table.ErrNilTable.
//
// Complexity:
//   - Time O(n log n + m log n) for n samples and m queries.
func Interp1[T table.Element](x, y, xi *table.Table[T], opts ...Option) (*table.Table[T], error) {
	ip, err := New(x, y, opts...)
	if err != nil {
		return nil, err
	}

	return ip.Eval(xi)
}

// lerp evaluates the line through (x0,y0) and (x1,y1) at xq.
// Integer kinds are deliberately widened to int64 for every kind, int32
// included, so products such as 50000*100000 do not overflow; the quotient
// truncates toward zero and is converted back to T. ok is false when the
// division would be by zero.
func lerp[T table.Element](integer bool, xq, x0, x1, y0, y1 T) (y T, ok bool) {
	if integer {
		dx := int64(x1) - int64(x0)
		if dx == 0 {
			return y0, false
		}

		return T(int64(y0) + (int64(xq)-int64(x0))*(int64(y1)-int64(y0))/dx), true
	}

	return y0 + (xq-x0)*(y1-y0)/(x1-x0), true
}
