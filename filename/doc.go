// Package filename decides whether file names are legal on a target
// filesystem family and rewrites illegal ones into legal form.
//
// Rules vary by platform, so they are bundled into immutable profiles:
//
//   - Windows: reserved device names (CON, NUL, LPT1...), a large illegal
//     character set, 255 UTF-16 code units per name
//   - Linux: 255 bytes per name, NUL and "/" illegal
//   - MacOSX: 255 bytes per name, NUL, "/" and ":" illegal
//   - Generic: a conservative fallback that only outlaws NUL
//
// Current returns the profile matching the host operating system. Profiles
// are plain data; checking a name never touches the filesystem, so Windows
// names can be validated on a Linux build host and vice versa.
//
// # Checking and Repairing Names
//
//	filename.Windows.IsLegalName("CON.txt", nil)        // false: reserved device
//	filename.Windows.IsLegalName("report: v2", nil)     // false: ":" is illegal
//	filename.Windows.ToLegalName("report: v2", '_', nil) // "report_ v2", nil
//
// ToLegalName truncates an overlong name before substituting illegal
// characters. Truncation preserves the extension (everything from the first
// non-leading dot) and never splits a surrogate pair or a multibyte
// sequence.
//
// # Length Units
//
// Windows filesystems bound names in UTF-16 code units; Linux and macOS
// bound them in bytes of the on-disk encoding. Each profile declares its
// unit, and the byte unit takes a golang.org/x/text/encoding.Encoding so
// callers can measure against the encoding their target actually uses
// (nil means UTF-8):
//
//	unit := filename.Linux.LengthUnit()
//	n, err := unit.Measure("résumé.txt", charmap.ISO8859_1)
//
// A name that cannot be encoded at all is treated as exceeding every limit.
//
// All types in this package are immutable after construction and safe for
// concurrent use.
package filename
