package structure

import "errors"

var (
	// ErrInvalidSizeRange indicates a per-layer size range with max < min
	// or a non-positive minimum.
	ErrInvalidSizeRange = errors.New("structure: invalid per-layer size range")
	// ErrInvalidLayerCount indicates a layer count below 2.
	ErrInvalidLayerCount = errors.New("structure: layer count must be at least 2")
	// ErrNoCategorization indicates the catalog holds no categorization
	// deep enough for the requested layer count.
	ErrNoCategorization = errors.New("structure: no categorization with enough levels")
)
