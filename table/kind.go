// SPDX-License-Identifier: MIT

package table

// Element is the set of numeric element types a Table may hold.
// Exact types only: Kind dispatch relies on a plain type switch.
type Element interface {
	int8 | uint8 | int16 | uint16 | int32 | float32 | float64
}

// Float is the floating-point subset of Element.
type Float interface {
	float32 | float64
}

// Kind tags the element type of a Table at runtime.
type Kind int

const (
	KindInvalid Kind = iota
	KindInt8
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindFloat32
	KindFloat64
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindInt8:    "int8",
	KindUint8:   "uint8",
	KindInt16:   "int16",
	KindUint16:  "uint16",
	KindInt32:   "int32",
	KindFloat32: "float32",
	KindFloat64: "float64",
}

// String returns the Go name of the element type.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindInvalid]
	}

	return kindNames[k]
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool { return k == KindFloat32 || k == KindFloat64 }

// KindOf returns the Kind of T.
// Complexity: O(1).
func KindOf[T Element]() Kind {
	var zero T
	switch any(zero).(type) {
	case int8:
		return KindInt8
	case uint8:
		return KindUint8
	case int16:
		return KindInt16
	case uint16:
		return KindUint16
	case int32:
		return KindInt32
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	}

	return KindInvalid
}
