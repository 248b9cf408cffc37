// Package interptab is a small numeric-table toolkit for building smooth
// interpolated sequences such as colormap lookup tables.
//
// 🚀 What is in the box?
//
//	A pure-Go, generic core that works on int8, uint8, int16, uint16,
//	int32, float32 and float64 tables alike:
//		• table/  — Table[T] container, Kind tags, Permutation, row/column reordering
//		• seq/    — Linspace ramps, stable Argsort, Diff
//		• interp/ — piecewise-linear Interp1 over unsorted samples, with
//		            linear extrapolation (or clamp/reject via options)
//
// ✨ Why choose interptab?
//
//   - Unsorted, non-uniform sample tables just work: samples are argsorted
//     once and every query is a binary search
//   - Every failure is a sentinel error (errors.Is), never a panic
//   - Stateless functions; results never alias inputs
//
// Quick example:
//
//	x := table.Column(0.0, 0.5, 1.0)     // control-point positions
//	r := table.Column(0.0, 0.9, 1.0)     // red channel at each position
//	xi, _ := seq.Linspace(0.0, 1.0, 256) // LUT positions
//	lut, _ := interp.Interp1(x, r, xi)   // 256×1 red channel
//
// See examples/colormap_lut for a runnable program.
package interptab
