package matrix

import "errors"

// Sentinel errors carried by panics raised at the point of violation.
// The package has no recovery path of its own; callers that need to
// classify a failure can errors.Is against these inside a recover.
// Out-of-range index access surfaces as a native slice bounds panic
// rather than a sentinel: hot construction loops carry no defensive
// checks.
var (
	// ErrDimensionMismatch reports a flat value count that does not
	// equal rows*cols.
	ErrDimensionMismatch = errors.New("jagged: dimension mismatch")

	// ErrUnsupportedType reports an element type the runtime unit-value
	// switch cannot produce a one for.
	ErrUnsupportedType = errors.New("jagged: unsupported element type")
)
