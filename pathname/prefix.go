package pathname

import "strings"

// notFound is the sentinel returned by PrefixLength for unparseable paths.
const notFound = -1

// PrefixKind identifies the form of a path prefix.
type PrefixKind int

const (
	// KindRelative is a path with no prefix, resolved against the current
	// directory ("a/b.txt").
	KindRelative PrefixKind = iota

	// KindRootAbsolute is a path anchored at the root of the current drive
	// ("/a/b.txt").
	KindRootAbsolute

	// KindDriveRelative is a path relative to the current directory of a
	// named drive ("C:a\b.txt").
	KindDriveRelative

	// KindDriveAbsolute is a path anchored at the root of a named drive
	// ("C:\a\b.txt").
	KindDriveAbsolute

	// KindUNC is a network share path ("\\server\share\a.txt").
	KindUNC

	// KindHomeCurrentUser is a path anchored in the current user's home
	// directory ("~/a.txt").
	KindHomeCurrentUser

	// KindHomeNamedUser is a path anchored in a named user's home directory
	// ("~user/a.txt").
	KindHomeNamedUser
)

// String returns the string representation of the PrefixKind.
func (k PrefixKind) String() string {
	switch k {
	case KindRelative:
		return "relative"
	case KindRootAbsolute:
		return "root-absolute"
	case KindDriveRelative:
		return "drive-relative"
	case KindDriveAbsolute:
		return "drive-absolute"
	case KindUNC:
		return "unc"
	case KindHomeCurrentUser:
		return "home-current-user"
	case KindHomeNamedUser:
		return "home-named-user"
	default:
		return "unknown"
	}
}

// Prefix describes the prefix of a path: its form and its length in bytes.
//
// Length may exceed the length of the parsed path. The one-character path
// "~" has a prefix length of 2 because the prefix notionally includes a
// trailing separator that is absent from the input; normalization makes the
// separator concrete.
type Prefix struct {
	Kind   PrefixKind
	Length int
}

// ParsePrefix parses the prefix of a path. Both separator conventions are
// recognized. It returns ErrInvalidPath when the path starts with what looks
// like a prefix that cannot be completed: a lone ":", a drive colon without a
// letter, or a UNC marker without a valid hostname.
//
// The empty path parses as a relative prefix of length zero.
func ParsePrefix(path string) (Prefix, error) {
	if len(path) == 0 {
		return Prefix{Kind: KindRelative}, nil
	}
	if path == ":" {
		return Prefix{}, ErrInvalidPath
	}
	c0 := path[0]
	if len(path) == 1 {
		switch {
		case c0 == '~':
			return Prefix{Kind: KindHomeCurrentUser, Length: 2}, nil
		case isSeparator(c0):
			return Prefix{Kind: KindRootAbsolute, Length: 1}, nil
		default:
			return Prefix{Kind: KindRelative}, nil
		}
	}
	if c0 == '~' {
		kind := KindHomeNamedUser
		if isSeparator(path[1]) {
			kind = KindHomeCurrentUser
		}
		pos := indexSeparator(path, 1)
		if pos == notFound {
			// No separator: the whole path is the prefix, plus a
			// separator yet to be written.
			return Prefix{Kind: kind, Length: len(path) + 1}, nil
		}
		return Prefix{Kind: kind, Length: pos + 1}, nil
	}
	if path[1] == ':' {
		switch {
		case isDriveLetter(c0):
			if len(path) == 2 || !isSeparator(path[2]) {
				return Prefix{Kind: KindDriveRelative, Length: 2}, nil
			}
			return Prefix{Kind: KindDriveAbsolute, Length: 3}, nil
		case c0 == '/':
			return Prefix{Kind: KindRootAbsolute, Length: 1}, nil
		default:
			return Prefix{}, ErrInvalidPath
		}
	}
	if isSeparator(c0) && isSeparator(path[1]) {
		pos := indexSeparator(path, 2)
		if pos == notFound || pos == 2 {
			// Unterminated share marker or empty hostname.
			return Prefix{}, ErrInvalidPath
		}
		if !isValidHostname(path[2:pos]) {
			return Prefix{}, ErrInvalidPath
		}
		return Prefix{Kind: KindUNC, Length: pos + 1}, nil
	}
	if isSeparator(c0) {
		return Prefix{Kind: KindRootAbsolute, Length: 1}, nil
	}
	return Prefix{Kind: KindRelative}, nil
}

// PrefixLength returns the length in bytes of the path's prefix, or -1 when
// the path cannot be parsed. See ParsePrefix for the recognized forms.
//
// The length may exceed len(path) for home prefixes whose trailing separator
// is implied rather than present ("~" has prefix length 2).
func PrefixLength(path string) int {
	p, err := ParsePrefix(path)
	if err != nil {
		return notFound
	}
	return p.Length
}

// indexSeparator returns the index of the first separator of either
// convention at or after from, or notFound.
func indexSeparator(path string, from int) int {
	i := strings.IndexAny(path[from:], `/\`)
	if i < 0 {
		return notFound
	}
	return from + i
}

// isDriveLetter reports whether c can name a Windows drive.
func isDriveLetter(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}
