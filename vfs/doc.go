// Package vfs defines a small filesystem abstraction used by the file
// helpers in this module, together with go-billy-backed providers for
// local disk and in-memory storage.
//
// The FS interface is composed of four narrow capability interfaces
// (ReadFS, WriteFS, ManageFS, WalkFS) so helpers can accept only the
// capabilities they need. All paths are slash-separated and interpreted
// relative to the provider root; incoming paths are normalized before
// they reach the backend.
//
// # Providers
//
// NewLocalFS returns a filesystem rooted at a directory on disk. All
// operations are confined to that directory:
//
//	fsys := vfs.NewLocalFS("/srv/data")
//	data, err := fsys.ReadFile("reports/latest.csv")
//
// NewMemFS returns an empty in-memory filesystem, useful for tests:
//
//	fsys := vfs.NewMemFS()
//	err := fsys.WriteFile("tmp.txt", []byte("scratch"), 0o644)
//
// Both providers expose Unwrap for direct access to the underlying
// billy.Filesystem.
//
// # Errors
//
// Providers return the io/fs sentinel errors (ErrNotExist, ErrExist,
// ErrPermission), re-exported here for convenience. Operations a
// provider cannot support report ErrUnsupported.
//
// # Thread Safety
//
// LocalFS is safe for concurrent use by multiple goroutines, as the
// operating system serializes access. MemFS is not synchronized and
// needs external locking when shared across goroutines. File handles
// are never safe for concurrent use.
package vfs
