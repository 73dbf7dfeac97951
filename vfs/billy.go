package vfs

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/jmgilman/pathkit/pathname"
)

// LocalFS is a disk-backed filesystem rooted at a directory. All
// operations are confined to the root: absolute paths are re-rooted
// beneath it and paths that climb out of it are refused by the
// underlying billy chroot.
type LocalFS struct {
	billyFS
}

// MemFS is an in-memory filesystem. It starts empty and is discarded
// when garbage collected, making it useful for tests.
type MemFS struct {
	billyFS
}

// NewLocalFS returns a filesystem rooted at dir. The directory does
// not need to exist yet; it is created on the first write beneath it.
func NewLocalFS(dir string) *LocalFS {
	return &LocalFS{billyFS{bfs: osfs.New(dir)}}
}

// NewMemFS returns a new, empty in-memory filesystem.
func NewMemFS() *MemFS {
	return &MemFS{billyFS{bfs: memfs.New()}}
}

// Type returns TypeLocal.
func (*LocalFS) Type() FSType { return TypeLocal }

// Type returns TypeMemory.
func (*MemFS) Type() FSType { return TypeMemory }

// normalize rewrites an incoming path to clean slash form using the
// path engine. Inputs the engine rejects or erases (leading "..", NUL
// bytes, ".") fall back to a plain Clean and are left for the backend
// to accept or refuse.
func normalize(p string) string {
	n, err := pathname.NormalizeNoEndSeparatorWith(p, pathname.SeparatorUnix)
	if err != nil || n == "" {
		return filepath.ToSlash(filepath.Clean(p))
	}
	return n
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// billyFS implements the provider method set over a billy.Filesystem.
// LocalFS and MemFS embed it and differ only in backend and Type.
type billyFS struct {
	bfs billy.Filesystem
}

// Unwrap returns the underlying billy.Filesystem for use with APIs
// that consume billy directly.
func (b *billyFS) Unwrap() billy.Filesystem {
	return b.bfs
}

// Open opens the named file for reading.
func (b *billyFS) Open(name string) (fs.File, error) {
	name = normalize(name)
	f, err := b.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	return &billyFile{file: f, bfs: b.bfs, name: name}, nil
}

// Stat returns metadata for the named file or directory.
func (b *billyFS) Stat(name string) (fs.FileInfo, error) {
	return b.bfs.Stat(normalize(name))
}

// ReadDir reads the named directory and returns its entries sorted by
// filename. Billy reports []fs.FileInfo, so each entry is adapted.
func (b *billyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := b.bfs.ReadDir(normalize(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// ReadFile reads the named file and returns its contents.
func (b *billyFS) ReadFile(name string) ([]byte, error) {
	f, err := b.bfs.Open(normalize(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// Exists reports whether the named file or directory exists.
func (b *billyFS) Exists(name string) (bool, error) {
	_, err := b.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Create creates or truncates the named file for writing.
func (b *billyFS) Create(name string) (File, error) {
	name = normalize(name)
	f, err := b.bfs.Create(name)
	if err != nil {
		return nil, err
	}
	return &billyFile{file: f, bfs: b.bfs, name: name}, nil
}

// OpenFile opens a file with the given flags and permission bits.
func (b *billyFS) OpenFile(name string, flag int, perm fs.FileMode) (File, error) {
	name = normalize(name)
	f, err := b.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &billyFile{file: f, bfs: b.bfs, name: name}, nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (b *billyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	f, err := b.bfs.OpenFile(normalize(name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Mkdir creates a single directory. Billy only offers MkdirAll, so the
// existing-path and missing-parent failures are checked up front.
func (b *billyFS) Mkdir(name string, perm fs.FileMode) error {
	name = normalize(name)
	if _, err := b.bfs.Stat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	if parent := path.Dir(name); parent != "." && parent != "/" {
		if _, err := b.bfs.Stat(parent); err != nil {
			return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrNotExist}
		}
	}
	return b.bfs.MkdirAll(name, perm)
}

// MkdirAll creates a directory along with any missing parents.
func (b *billyFS) MkdirAll(p string, perm fs.FileMode) error {
	return b.bfs.MkdirAll(normalize(p), perm)
}

// Remove removes the named file or empty directory.
func (b *billyFS) Remove(name string) error {
	return b.bfs.Remove(normalize(name))
}

// RemoveAll removes path and any children it contains. Billy has no
// RemoveAll, so the tree is removed depth first.
func (b *billyFS) RemoveAll(p string) error {
	p = normalize(p)
	info, err := b.bfs.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if !info.IsDir() {
		return b.bfs.Remove(p)
	}

	infos, err := b.bfs.ReadDir(p)
	if err != nil {
		return err
	}
	for _, child := range infos {
		if err := b.RemoveAll(path.Join(p, child.Name())); err != nil {
			return err
		}
	}
	return b.bfs.Remove(p)
}

// Rename renames (moves) oldpath to newpath.
func (b *billyFS) Rename(oldpath, newpath string) error {
	return b.bfs.Rename(normalize(oldpath), normalize(newpath))
}

// Walk walks the tree rooted at root in lexical order.
func (b *billyFS) Walk(root string, fn fs.WalkDirFunc) error {
	root = normalize(root)
	info, err := b.bfs.Stat(root)
	if err != nil {
		err = fn(root, nil, err)
	} else {
		err = b.walk(root, &dirEntry{info: info}, fn)
	}
	if errors.Is(err, fs.SkipDir) || errors.Is(err, fs.SkipAll) {
		return nil
	}
	return err
}

func (b *billyFS) walk(p string, d fs.DirEntry, fn fs.WalkDirFunc) error {
	if err := fn(p, d, nil); err != nil || !d.IsDir() {
		if errors.Is(err, fs.SkipDir) && d.IsDir() {
			err = nil
		}
		return err
	}

	infos, err := b.bfs.ReadDir(p)
	if err != nil {
		if err := fn(p, d, err); err != nil {
			if errors.Is(err, fs.SkipDir) && d.IsDir() {
				err = nil
			}
			return err
		}
	}

	for _, info := range infos {
		if err := b.walk(path.Join(p, info.Name()), &dirEntry{info: info}, fn); err != nil {
			if errors.Is(err, fs.SkipDir) {
				// A SkipDir from a file skips the rest of this directory;
				// one from a directory was already absorbed below it.
				break
			}
			return err
		}
	}
	return nil
}

// Compile-time interface checks.
var (
	_ FS = (*LocalFS)(nil)
	_ FS = (*MemFS)(nil)
)
