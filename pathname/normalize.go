package pathname

import "strings"

// Normalize normalizes a path to the host separator convention, collapsing
// double separators and resolving "." and ".." segments. A trailing
// separator is kept, so the result records whether the input named a
// directory:
//
//	Normalize("/foo//./bar")  // "/foo/bar"
//	Normalize("/foo/bar/..")  // "/foo/"
//	Normalize("C:\\temp\\..\\file.txt") // "C:\file.txt" on Windows hosts
//
// Normalize returns ErrInvalidPath when the prefix cannot be parsed or a
// ".." segment would climb above the root, and ErrNullByte when the path
// contains an embedded NUL. The empty path normalizes to itself.
func Normalize(path string) (string, error) {
	return doNormalize(path, HostSeparator(), true)
}

// NormalizeWith is Normalize with an explicit target separator convention,
// for handling foreign paths on any host.
func NormalizeWith(path string, sep Separator) (string, error) {
	return doNormalize(path, sep, true)
}

// NormalizeNoEndSeparator normalizes like Normalize but drops a trailing
// separator from the result, except when the result is nothing but a prefix:
//
//	NormalizeNoEndSeparator("/foo/bar/") // "/foo/bar"
//	NormalizeNoEndSeparator("/foo/..")   // "/"
func NormalizeNoEndSeparator(path string) (string, error) {
	return doNormalize(path, HostSeparator(), false)
}

// NormalizeNoEndSeparatorWith is NormalizeNoEndSeparator with an explicit
// target separator convention.
func NormalizeNoEndSeparatorWith(path string, sep Separator) (string, error) {
	return doNormalize(path, sep, false)
}

// Concat concatenates a path to a base path and normalizes the result using
// the host separator convention. When pathToAdd carries its own prefix it
// wins and basePath is ignored, mirroring how a shell treats an absolute
// argument:
//
//	Concat("/srv/app", "etc/app.cfg")  // "/srv/app/etc/app.cfg"
//	Concat("/srv/app", "/etc/app.cfg") // "/etc/app.cfg"
//	Concat("/srv/app", "../lib")       // "/srv/lib"
//
// Concat returns an error when pathToAdd is invalid, or when the joined path
// fails to normalize.
func Concat(basePath, pathToAdd string) (string, error) {
	p, err := ParsePrefix(pathToAdd)
	if err != nil {
		return "", err
	}
	if p.Length > 0 || len(basePath) == 0 {
		return Normalize(pathToAdd)
	}
	if isSeparator(basePath[len(basePath)-1]) {
		return Normalize(basePath + pathToAdd)
	}
	return Normalize(basePath + "/" + pathToAdd)
}

// doNormalize is the single implementation behind the four Normalize
// variants. It works left to right in one mutable byte buffer, splicing out
// collapsed segments in place. Separators are ASCII under both conventions,
// so all scanning is bytewise and never lands inside a multibyte rune.
func doNormalize(path string, sep Separator, keepSeparator bool) (string, error) {
	if strings.IndexByte(path, 0) != -1 {
		return "", ErrNullByte
	}
	size := len(path)
	if size == 0 {
		return "", nil
	}
	p, err := ParsePrefix(path)
	if err != nil {
		return "", err
	}
	prefix := p.Length

	// Two spare bytes: one for the appended separator, one so splices can
	// copy a fixed-size tail without bounds juggling.
	buf := make([]byte, size+2)
	copy(buf, path)
	target := sep.Byte()
	other := sep.other()
	for i := 0; i < size; i++ {
		if buf[i] == other {
			buf[i] = target
		}
	}

	// A trailing separator simplifies every rule below to "segment followed
	// by separator". Remember whether it was real.
	lastIsDirectory := true
	if buf[size-1] != target {
		buf[size] = target
		size++
		lastIsDirectory = false
	}

	// Collapse adjoining separators. The prefix's own separators stay; a UNC
	// prefix legitimately starts with two.
	start := prefix
	if start == 0 {
		start = 1
	}
	for i := start; i < size; i++ {
		if buf[i] == target && buf[i-1] == target {
			copy(buf[i-1:], buf[i:size])
			size--
			i--
		}
	}

	// Collapse "./" segments.
	for i := prefix + 1; i < size; i++ {
		if buf[i] == target && buf[i-1] == '.' &&
			(i == prefix+1 || buf[i-2] == target) {
			if i == size-1 {
				lastIsDirectory = true
			}
			copy(buf[i-1:], buf[i+1:size])
			size -= 2
			i--
		}
	}

	// Resolve "../" segments against their preceding segment, rescanning
	// from the splice point so freshly adjacent ".." pairs resolve too.
outer:
	for i := prefix + 2; i < size; i++ {
		if buf[i] == target && buf[i-1] == '.' && buf[i-2] == '.' &&
			(i == prefix+2 || buf[i-3] == target) {
			if i == prefix+2 {
				// ".." directly after the prefix climbs out of the root.
				return "", ErrInvalidPath
			}
			if i == size-1 {
				lastIsDirectory = true
			}
			for j := i - 4; j >= prefix; j-- {
				if buf[j] == target {
					// Splice out "segment/../".
					copy(buf[j+1:], buf[i+1:size])
					size -= i - j
					i = j + 1
					continue outer
				}
			}
			// No separator between prefix and "..": splice back to the
			// prefix itself.
			copy(buf[prefix:], buf[i+1:size])
			size -= i + 1 - prefix
			i = prefix + 1
		}
	}

	if size <= 0 {
		return "", nil
	}
	if size <= prefix {
		// Nothing but the prefix remains; it keeps its separator. For the
		// virtual home prefixes this is where the implied separator becomes
		// concrete ("~" normalizes to "~/").
		return string(buf[:size]), nil
	}
	if lastIsDirectory && keepSeparator {
		return string(buf[:size]), nil
	}
	return string(buf[:size-1]), nil
}
