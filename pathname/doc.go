// Package pathname provides cross-platform path string handling: prefix
// parsing, normalization, and concatenation.
//
// The package operates purely on strings. It never touches the filesystem,
// which makes every operation safe to run on paths for a platform other than
// the host (Windows paths on Linux and vice versa).
//
// # Path Anatomy
//
// A path is treated as an optional prefix followed by separator-delimited
// segments. Both separator conventions are recognized everywhere, so
// "C:\docs/report.txt" parses the same as "C:\docs\report.txt". Recognized
// prefix forms:
//
//   - ""              relative (no prefix)
//   - "/"             absolute on the current drive
//   - "C:"            drive relative ("C:a.txt" is relative to the C: drive)
//   - "C:\"           drive absolute
//   - "\\server\"     UNC, with a validated hostname
//   - "~/"            current user's home (the "~" alone implies a trailing
//     separator that is not present in the input)
//   - "~user/"        a named user's home
//
// UNC hostnames must be an IPv4 address, an IPv6 address, or an RFC 3986
// reg-name; anything else makes the whole path invalid.
//
// # Normalization
//
// Normalize collapses double separators, "." segments, and ".." segments,
// rewrites every separator to a single convention, and refuses paths whose
// ".." segments would climb above the root:
//
//	pathname.NormalizeWith("/foo//./bar/../baz", pathname.SeparatorUnix)
//	// "/foo/baz", nil
//
//	pathname.NormalizeWith("/../etc/passwd", pathname.SeparatorUnix)
//	// "", pathname.ErrInvalidPath
//
// A trailing separator marks a directory and is kept by Normalize and dropped
// by NormalizeNoEndSeparator. Paths containing a NUL byte are rejected
// outright with ErrNullByte before any other processing.
//
// # Concatenation
//
// Concat joins a base path with a path to add, letting a prefixed addition
// win over the base:
//
//	pathname.Concat("/srv/data", "logs/app.log") // "/srv/data/logs/app.log"
//	pathname.Concat("/srv/data", "/etc/hosts")   // "/etc/hosts"
//
// All functions in this package are pure and safe for concurrent use.
package pathname
