package mocksensors

import "errors"

// Sentinel errors for common error conditions
var (
	// Input errors
	ErrInvalidCount     = errors.New("count must not be negative")
	ErrUnknownGenerator = errors.New("unknown generator")
	ErrNoOutput         = errors.New("output path is required")
)
