// Package seq implements the 1D sequence utilities interpolation is built on.
//
//   - Linspace — evenly spaced ramp between two bounds (n×1 column)
//   - Argsort  — stable sort permutation, ascending or descending
//   - Diff     — first-order discrete differences along the 1D extent
//
// Every function is pure: inputs are read-only and results are freshly
// allocated table.Table values. Failures are table sentinels
// (table.ErrNot1D, table.ErrTooFewPoints, ...) matched with errors.Is.
//
//	import "github.com/katalvlaran/interptab/seq"
//
//	ramp, err := seq.Linspace(0.0, 1.0, 5)       // [0 .25 .5 .75 1]ᵀ
//	order, err := seq.Argsort(ramp, false)       // [4 3 2 1 0]
//	steps, err := seq.Diff(ramp)                 // [.25 .25 .25 .25]ᵀ
package seq
