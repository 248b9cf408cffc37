// Package table provides the numeric containers shared by seq and interp.
//
// 🚀 What is a Table?
//
//	A Table[T] is a row-major r×c grid of a single numeric element type.
//	A Table whose shape is 1×n or n×1 is a 1D sequence; which orientation
//	is used is up to the caller.
//
// ✨ Key features:
//   - one generic container for int8, uint8, int16, uint16, int32,
//     float32 and float64 elements
//   - Kind tags and the Matrix interface for dispatching once at an API
//     boundary when the element type is only known at runtime
//   - Permutation-driven row/column reordering (ReorderRows, ReorderColumns)
//     with copy and in-place variants
//   - sentinel errors matched via errors.Is; no panics on bad input
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/interptab/table"
//
//	x := table.Column[float64](3, 1, 2)
//	y, err := table.ReorderRows(x, table.Permutation{1, 2, 0})
//	// y is the column [1, 2, 3]
//
// Complexity:
//
//   - New/Clone/Values: O(r*c); At/Set: O(1)
//   - ReorderRows/ReorderColumns: O(r*c)
package table
