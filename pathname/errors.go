package pathname

import "errors"

// Sentinel errors for path parsing and normalization failures.
// They can be checked using errors.Is() for error handling and testing.
var (
	// ErrInvalidPath indicates that a path could not be parsed or normalized.
	// This covers malformed prefixes (a UNC path with a missing or invalid
	// hostname, a drive prefix without a drive letter) and ".." segments that
	// would climb above the path's root.
	ErrInvalidPath = errors.New("invalid path")

	// ErrNullByte indicates that a path contains an embedded NUL byte.
	// There is no legitimate use for NUL bytes in paths, but several
	// injection attacks rely on them, so such input is rejected before any
	// other processing rather than reported as an ordinary invalid path.
	ErrNullByte = errors.New("null byte in path")
)
