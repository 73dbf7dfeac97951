package filename

import "errors"

// Sentinel errors for name measuring, truncation, and legalization.
// They can be checked using errors.Is() for error handling and testing.
var (
	// ErrEmptyName indicates that an empty string was given where a file
	// name is required. Empty names are never legal and cannot be repaired.
	ErrEmptyName = errors.New("empty file name")

	// ErrIllegalReplacement indicates that the replacement character passed
	// to ToLegalName is itself illegal under the profile, so substituting it
	// could never produce a legal name.
	ErrIllegalReplacement = errors.New("replacement character is illegal for the profile")

	// ErrExtensionTooLong indicates that a name's extension alone exceeds
	// the length limit, leaving no budget for any base name. Truncation
	// preserves extensions whole and cannot shorten such a name.
	ErrExtensionTooLong = errors.New("extension exceeds the length limit")

	// ErrUnencodable indicates that a name cannot be represented in the
	// requested character set. For length purposes such a name is treated as
	// exceeding every finite budget.
	ErrUnencodable = errors.New("name cannot be encoded in the requested charset")
)
