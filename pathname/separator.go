package pathname

import "os"

// Separator identifies a path separator convention.
type Separator int

const (
	// SeparatorUnix is the forward-slash convention used by POSIX systems.
	SeparatorUnix Separator = iota

	// SeparatorWindows is the backslash convention used by Windows.
	SeparatorWindows
)

// HostSeparator returns the separator convention of the host operating
// system.
func HostSeparator() Separator {
	if os.PathSeparator == '\\' {
		return SeparatorWindows
	}
	return SeparatorUnix
}

// Byte returns the separator character. Both conventions use a single ASCII
// byte, so paths can be scanned bytewise regardless of their encoding.
func (s Separator) Byte() byte {
	if s == SeparatorWindows {
		return '\\'
	}
	return '/'
}

// Rune returns the separator character as a rune.
func (s Separator) Rune() rune {
	return rune(s.Byte())
}

// other returns the separator character of the opposite convention.
func (s Separator) other() byte {
	if s == SeparatorWindows {
		return '/'
	}
	return '\\'
}

// String returns the name of the separator convention.
func (s Separator) String() string {
	if s == SeparatorWindows {
		return "windows"
	}
	return "unix"
}

// isSeparator reports whether c is a separator under either convention.
func isSeparator(c byte) bool {
	return c == '/' || c == '\\'
}
