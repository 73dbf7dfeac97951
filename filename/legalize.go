package filename

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/encoding"
)

// IsLegalNameRune reports whether r may appear in a file name under the
// profile.
func (p *Profile) IsLegalNameRune(r rune) bool {
	return !p.IsIllegalNameRune(r)
}

// IsIllegalNameRune reports whether the profile forbids r in file names.
func (p *Profile) IsIllegalNameRune(r rune) bool {
	_, found := slices.BinarySearch(p.illegalRunes, r)
	return found
}

// IsReservedName reports whether name collides with a name the filesystem
// reserves for itself, such as the DOS device names on Windows. When the
// profile ignores extensions the comparison strips everything from the
// first non-leading dot, so "CON.txt" is as reserved as "CON". The
// comparison is case-insensitive.
func (p *Profile) IsReservedName(name string) bool {
	if len(p.reservedNames) == 0 {
		return false
	}
	base := name
	if p.reservedIgnoresExt {
		if ext := extensionOf(name); ext != "" {
			base = name[:len(name)-len(ext)]
		}
	}
	_, found := slices.BinarySearch(p.reservedNames, strings.ToUpper(base))
	return found
}

// IsLegalName reports whether name can be created on filesystems described
// by the profile. A name is illegal when it is empty, when its measure in
// the profile's unit exceeds MaxNameLength (or it cannot be measured in the
// character set at all), when it is reserved, or when it contains an
// illegal character. The character set is only consulted by byte-measured
// profiles; nil means UTF-8.
func (p *Profile) IsLegalName(name string, cs encoding.Encoding) bool {
	if name == "" {
		return false
	}
	n, err := p.lengthUnit.Measure(name, cs)
	if err != nil || n > p.maxNameLength {
		return false
	}
	if p.IsReservedName(name) {
		return false
	}
	for _, r := range name {
		if p.IsIllegalNameRune(r) {
			return false
		}
	}
	return true
}

// ToLegalName converts a candidate name into one the profile accepts: the
// name is truncated to MaxNameLength (preserving its extension, see
// LengthUnit.Truncate), then every illegal rune is substituted with
// replacement.
//
// ToLegalName returns ErrEmptyName for an empty candidate and
// ErrIllegalReplacement when the replacement rune is itself illegal.
// Truncation failures (ErrExtensionTooLong, ErrUnencodable) propagate.
//
// The result is not re-checked against the reserved-name table: a
// substitution can produce a name like "CON" that IsLegalName still
// rejects. Callers that must rule this out can check the result.
func (p *Profile) ToLegalName(name string, replacement rune, cs encoding.Encoding) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}
	if p.IsIllegalNameRune(replacement) {
		return "", fmt.Errorf("%w: %q", ErrIllegalReplacement, replacement)
	}
	truncated, err := p.lengthUnit.Truncate(name, p.maxNameLength, cs)
	if err != nil {
		return "", err
	}
	return strings.Map(func(r rune) rune {
		if p.IsIllegalNameRune(r) {
			return replacement
		}
		return r
	}, truncated), nil
}
