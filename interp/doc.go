// Package interp performs piecewise-linear interpolation over sample tables
// whose abscissas may be unsorted and non-uniformly spaced.
//
// 🚀 How it works:
//
//  1. order := seq.Argsort(X, ascending)
//  2. Xs, Ys := table.ReorderRows(X, order), table.ReorderRows(Y, order)
//  3. for each query xq: binary-search the bracket [lo, lo+1] in Xs and
//     evaluate Ys[lo] + (xq-Xs[lo])*(Ys[hi]-Ys[lo])/(Xs[hi]-Xs[lo]).
//
// Queries outside [Xs[0], Xs[n-1]] extend the nearest edge segment's line
// by default; WithExtrapolation selects clamping or rejection instead.
//
// ✨ Entry points:
//   - Interp1      — one-shot generic call, same element type throughout
//   - Interp1Any   — runtime dispatch over table.Matrix, reports ErrTypeMismatch
//   - New / Interpolator[T] — sort once, evaluate many times (safe for
//     concurrent use)
//
// Numeric edge cases are not errors for floating kinds: a zero-width
// bracket (duplicate abscissas) yields ±Inf or NaN. Integer kinds use
// truncating 64-bit arithmetic and report table.ErrZeroSpan instead, since
// integer division by zero traps.
//
//	import "github.com/katalvlaran/interptab/interp"
//
//	x := table.Column(10.0, 0.0)
//	y := table.Column(100.0, 0.0)
//	yi, err := interp.Interp1(x, y, table.Column(5.0, -5.0, 15.0))
//	// yi is [50, -50, 150]ᵀ
package interp
