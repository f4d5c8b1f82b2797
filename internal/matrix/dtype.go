// Package matrix implements jagged-matrix construction for the Jagged library.
package matrix

import "fmt"

// Numeric is a constraint for supported matrix element types.
// It uses Go generics to ensure compile-time type safety.
type Numeric interface {
	~float32 | ~float64 | ~int | ~int32 | ~int64 | ~uint8
}

// Float is a constraint for element types usable with the uniform generator.
type Float interface {
	~float32 | ~float64
}

// one returns the multiplicative identity for T.
// The runtime switch recognizes the base types only: a named type with a
// numeric underlying kind panics with ErrUnsupportedType.
func one[T Numeric]() T {
	var dummy T
	var v any
	switch any(dummy).(type) {
	case float32:
		v = float32(1)
	case float64:
		v = float64(1)
	case int:
		v = int(1)
	case int32:
		v = int32(1)
	case int64:
		v = int64(1)
	case uint8:
		v = uint8(1)
	default:
		panic(fmt.Errorf("%w: no unit value for %T", ErrUnsupportedType, dummy))
	}
	return v.(T)
}
