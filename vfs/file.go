package vfs

import (
	"io/fs"

	"github.com/go-git/go-billy/v5"
)

// billyFile adapts billy.File to both File and fs.File. The name is
// stored at open time because billy backends disagree on the format
// returned by billy.File.Name, and a filesystem reference is kept
// because billy files have no Stat method of their own.
type billyFile struct {
	file billy.File
	bfs  billy.Basic
	name string
}

func (f *billyFile) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

func (f *billyFile) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

func (f *billyFile) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

func (f *billyFile) Close() error {
	return f.file.Close()
}

// Stat implements fs.File by asking the owning filesystem, since
// billy.File itself cannot be stat'd.
func (f *billyFile) Stat() (fs.FileInfo, error) {
	return f.bfs.Stat(f.name)
}

// Name returns the normalized name the file was opened with.
func (f *billyFile) Name() string {
	return f.name
}

// Truncate changes the size of the file without moving the I/O offset.
func (f *billyFile) Truncate(size int64) error {
	return f.file.Truncate(size)
}

// Sync commits the file contents to stable storage. Handles that
// cannot do that, such as in-memory files, report ErrUnsupported.
func (f *billyFile) Sync() error {
	if s, ok := f.file.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return &fs.PathError{Op: "sync", Path: f.name, Err: ErrUnsupported}
}

// Compile-time interface checks.
var (
	_ File    = (*billyFile)(nil)
	_ fs.File = (*billyFile)(nil)
)
