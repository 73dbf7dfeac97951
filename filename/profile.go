package filename

import (
	"math"
	"runtime"
	"sync"
)

// Profile describes the file name rules of one filesystem family: its
// length limit and the unit it is expressed in, the characters and names it
// forbids, and assorted facts (case handling, block size, drive letter
// support). Profiles are immutable; the package-level instances are shared
// and safe for concurrent use.
type Profile struct {
	name                string
	blockSize           int
	caseSensitive       bool
	casePreserving      bool
	maxNameLength       int
	maxPathLength       int
	lengthUnit          LengthUnit
	illegalRunes        []rune   // sorted for binary search
	reservedNames       []string // sorted uppercase for binary search
	reservedIgnoresExt  bool
	supportsDriveLetter bool
	nameSeparator       byte
}

var (
	// Generic is a conservative profile for unknown filesystems. It only
	// outlaws NUL and imposes no practical length limit.
	Generic = &Profile{
		name:          "generic",
		blockSize:     4096,
		maxNameLength: math.MaxInt,
		maxPathLength: math.MaxInt,
		lengthUnit:    UnitUTF16,
		illegalRunes:  []rune{0},
		nameSeparator: '/',
	}

	// Linux describes mainstream Linux filesystems (ext4 and friends):
	// names of up to 255 bytes, NUL and the separator forbidden.
	Linux = &Profile{
		name:           "linux",
		blockSize:      8192,
		caseSensitive:  true,
		casePreserving: true,
		maxNameLength:  255,
		maxPathLength:  4096,
		lengthUnit:     UnitBytes,
		illegalRunes:   []rune{0, '/'},
		nameSeparator:  '/',
	}

	// MacOSX describes macOS filesystems: like Linux plus the legacy ":"
	// separator, with a tighter path limit.
	MacOSX = &Profile{
		name:           "macosx",
		blockSize:      4096,
		caseSensitive:  true,
		casePreserving: true,
		maxNameLength:  255,
		maxPathLength:  1024,
		lengthUnit:     UnitBytes,
		illegalRunes:   []rune{0, '/', ':'},
		nameSeparator:  '/',
	}

	// Windows describes NTFS and its relatives: names of up to 255 UTF-16
	// code units, control characters and reserved punctuation forbidden,
	// and the classic DOS device names reserved with or without an
	// extension.
	Windows = &Profile{
		name:           "windows",
		blockSize:      4096,
		casePreserving: true,
		maxNameLength:  255,
		maxPathLength:  32000,
		lengthUnit:     UnitUTF16,
		illegalRunes: []rune{
			0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
			0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
			0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17,
			0x18, 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f,
			'"', '*', '/', ':', '<', '>', '?', '\\', '|',
		},
		reservedNames: []string{
			"AUX",
			"COM1", "COM2", "COM3", "COM4", "COM5", "COM6", "COM7", "COM8", "COM9",
			"CON", "CONIN$", "CONOUT$",
			"LPT1", "LPT2", "LPT3", "LPT4", "LPT5", "LPT6", "LPT7", "LPT8", "LPT9",
			"NUL", "PRN",
		},
		reservedIgnoresExt:  true,
		supportsDriveLetter: true,
		nameSeparator:       '\\',
	}
)

// current resolves the host profile once; the mapping cannot change while
// the process runs.
var current = sync.OnceValue(func() *Profile {
	switch runtime.GOOS {
	case "linux":
		return Linux
	case "darwin":
		return MacOSX
	case "windows":
		return Windows
	default:
		return Generic
	}
})

// Current returns the profile for the host operating system. Hosts that are
// none of Linux, macOS, or Windows get the Generic profile.
func Current() *Profile {
	return current()
}

// Name returns the profile's name ("linux", "windows", ...).
func (p *Profile) Name() string { return p.name }

// String returns the profile's name.
func (p *Profile) String() string { return p.name }

// BlockSize returns the filesystem's typical allocation block size in bytes.
func (p *Profile) BlockSize() int { return p.blockSize }

// IsCaseSensitive reports whether the filesystem distinguishes names that
// differ only by case.
func (p *Profile) IsCaseSensitive() bool { return p.caseSensitive }

// IsCasePreserving reports whether the filesystem stores names with the
// case they were created with.
func (p *Profile) IsCasePreserving() bool { return p.casePreserving }

// MaxNameLength returns the limit on a single name, in LengthUnit units.
func (p *Profile) MaxNameLength() int { return p.maxNameLength }

// MaxPathLength returns the limit on a whole path, in LengthUnit units.
func (p *Profile) MaxPathLength() int { return p.maxPathLength }

// LengthUnit returns the unit name and path limits are expressed in.
func (p *Profile) LengthUnit() LengthUnit { return p.lengthUnit }

// SupportsDriveLetter reports whether paths may start with a drive letter.
func (p *Profile) SupportsDriveLetter() bool { return p.supportsDriveLetter }

// NameSeparator returns the filesystem's native separator character.
func (p *Profile) NameSeparator() byte { return p.nameSeparator }
