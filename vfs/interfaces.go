package vfs

import (
	"io"
	"io/fs"
)

// FSType identifies the backing store of a filesystem provider.
type FSType int

const (
	// TypeUnknown indicates the filesystem type is unknown or unspecified.
	TypeUnknown FSType = iota
	// TypeLocal indicates a disk-backed filesystem.
	TypeLocal
	// TypeMemory indicates an in-memory filesystem.
	TypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case TypeLocal:
		return "local"
	case TypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the full filesystem interface implemented by every provider.
// It embeds fs.FS so providers can be used with stdlib io/fs helpers.
type FS interface {
	fs.FS
	ReadFS
	WriteFS
	ManageFS
	WalkFS

	// Type reports the backing store of this filesystem, allowing
	// callers to distinguish disk-backed from in-memory providers.
	Type() FSType
}

// ReadFS defines read-only filesystem operations.
type ReadFS interface {
	// Open opens the named file for reading. The returned fs.File can
	// be type-asserted to File when write access is needed.
	Open(name string) (fs.File, error)

	// Stat returns metadata for the named file or directory.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir reads the named directory and returns its entries
	// sorted by filename.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the named file and returns its contents.
	// A successful call returns err == nil, not err == io.EOF.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named file or directory exists.
	// A false result with a non-nil error means existence could not
	// be determined, not that the path is absent.
	Exists(name string) (bool, error)
}

// WriteFS defines write operations.
type WriteFS interface {
	// Create creates or truncates the named file for writing.
	// The returned file must be closed when no longer needed.
	Create(name string) (File, error)

	// OpenFile opens a file with the given flags and permission bits.
	// Flag support varies by backend.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// WriteFile writes data to the named file, creating it if
	// necessary and truncating it if it already exists.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Mkdir creates a single directory. It fails with ErrExist if the
	// path already exists and fails if the parent is missing.
	Mkdir(name string, perm fs.FileMode) error

	// MkdirAll creates a directory along with any missing parents.
	// It returns nil if the path is already a directory.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines operations that restructure the filesystem.
type ManageFS interface {
	// Remove removes the named file or empty directory.
	Remove(name string) error

	// RemoveAll removes path and any children it contains.
	// It returns nil if the path does not exist.
	RemoveAll(path string) error

	// Rename renames (moves) oldpath to newpath.
	Rename(oldpath, newpath string) error
}

// WalkFS defines directory tree traversal.
type WalkFS interface {
	// Walk walks the tree rooted at root in lexical order, calling fn
	// for each file or directory including root itself. fs.SkipDir and
	// fs.SkipAll returned from fn are honored.
	Walk(root string, fn fs.WalkDirFunc) error
}

// File is an open file handle supporting both reads and writes.
// Provider files also implement fs.File.
type File interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer

	// Name returns the name the file was opened or created with.
	Name() string
}
