package filename

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LengthUnit is the unit a profile measures name lengths in.
type LengthUnit int

const (
	// UnitBytes measures names by their encoded byte count in a caller
	// supplied character set. Used by profiles whose filesystems store and
	// bound names as byte sequences (ext4, APFS).
	UnitBytes LengthUnit = iota

	// UnitUTF16 measures names in UTF-16 code units, the native unit of
	// NTFS name limits. Runes above U+FFFF count as two units.
	UnitUTF16
)

// String returns the string representation of the LengthUnit.
func (u LengthUnit) String() string {
	if u == UnitUTF16 {
		return "utf16"
	}
	return "bytes"
}

// Measure returns the length of name in the unit. The character set is only
// consulted by UnitBytes; nil means UTF-8. A name the character set cannot
// represent yields ErrUnencodable, which callers should treat as exceeding
// any finite budget.
func (u LengthUnit) Measure(name string, cs encoding.Encoding) (int, error) {
	if u == UnitUTF16 {
		return utf16Length(name), nil
	}
	encoded, err := encodeName(name, cs)
	if err != nil {
		return 0, err
	}
	return len(encoded), nil
}

// Truncate shortens name so that its measure fits limit, preserving the
// extension (see extensionOf) whole at the end. The cut never lands inside a
// surrogate pair or a multibyte sequence; when a code point straddles the
// budget the whole code point is dropped. Names that already fit are
// returned unchanged, so Truncate is idempotent.
//
// Truncate returns ErrExtensionTooLong when the extension alone exceeds
// limit, and ErrUnencodable when UnitBytes cannot encode the name in the
// character set.
func (u LengthUnit) Truncate(name string, limit int, cs encoding.Encoding) (string, error) {
	if u == UnitUTF16 {
		return truncateUTF16(name, limit)
	}
	return truncateBytes(name, limit, cs)
}

func truncateUTF16(name string, limit int) (string, error) {
	if utf16Length(name) <= limit {
		return name, nil
	}
	ext := extensionOf(name)
	budget := limit - utf16Length(ext)
	if budget < 0 {
		return "", fmt.Errorf("%w: %q against limit %d", ErrExtensionTooLong, ext, limit)
	}
	base := name[:len(name)-len(ext)]
	cut, units := 0, 0
	for cut < len(base) {
		r, size := utf8.DecodeRuneInString(base[cut:])
		w := 1
		if r >= 0x10000 {
			w = 2
		}
		if units+w > budget {
			break
		}
		units += w
		cut += size
	}
	return base[:cut] + ext, nil
}

func truncateBytes(name string, limit int, cs encoding.Encoding) (string, error) {
	encoded, err := encodeName(name, cs)
	if err != nil {
		return "", err
	}
	if len(encoded) <= limit {
		return name, nil
	}
	ext := extensionOf(name)
	extEncoded, err := encodeName(ext, cs)
	if err != nil {
		return "", err
	}
	if len(extEncoded) > limit {
		return "", fmt.Errorf("%w: %q against limit %d", ErrExtensionTooLong, ext, limit)
	}
	base := name[:len(name)-len(ext)]

	// Feed the base through the encoder into a budget-sized buffer; the
	// transformer consumes whole code points, so when the buffer fills the
	// consumed count is the last boundary that fits.
	dst := make([]byte, limit-len(extEncoded))
	enc := encoderFor(cs)
	_, nSrc, err := enc.Transform(dst, []byte(base), true)
	if err != nil && err != transform.ErrShortDst {
		return "", fmt.Errorf("%w: %v", ErrUnencodable, err)
	}
	return base[:nSrc] + ext, nil
}

// utf16Length counts UTF-16 code units without materializing the encoding.
func utf16Length(name string) int {
	n := 0
	for _, r := range name {
		n++
		if r >= 0x10000 {
			n++
		}
	}
	return n
}

// extensionOf returns the substring of name starting at the first "." that
// is not the leading character, or "" when there is none. A leading dot
// marks a hidden file, not an extension.
func extensionOf(name string) string {
	if len(name) <= 1 {
		return ""
	}
	i := strings.IndexByte(name[1:], '.')
	if i < 0 {
		return ""
	}
	return name[1+i:]
}

// encoderFor returns a fresh encoder that reports unrepresentable input
// instead of substituting replacement characters. nil selects UTF-8.
func encoderFor(cs encoding.Encoding) *encoding.Encoder {
	if cs == nil {
		cs = unicode.UTF8
	}
	return cs.NewEncoder()
}

func encodeName(name string, cs encoding.Encoding) ([]byte, error) {
	encoded, err := encoderFor(cs).Bytes([]byte(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnencodable, err)
	}
	return encoded, nil
}
