package fileutil

import (
	"fmt"
	"path"

	"github.com/jmgilman/pathkit/vfs"
)

// MoveFile moves the file src to dst, creating any missing parent
// directories of dst. A backend rename is attempted first; when the
// backend cannot rename, the file is copied and the source removed.
func MoveFile(fsys vfs.FS, src, dst string, opts ...Option) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return fmt.Errorf("move %s: %w", src, err)
	}
	if info.IsDir() {
		return fmt.Errorf("move %s: %w", src, ErrIsDirectory)
	}

	if renamed, err := rename(fsys, src, dst); renamed {
		return err
	}
	if err := CopyFile(fsys, src, dst, opts...); err != nil {
		return fmt.Errorf("move %s: %w", src, err)
	}
	if err := fsys.Remove(src); err != nil {
		return fmt.Errorf("move %s: remove source: %w", src, err)
	}
	return nil
}

// MoveDir moves the directory src to dst, creating any missing parent
// directories of dst. A backend rename is attempted first, falling back
// to a recursive copy and delete.
func MoveDir(fsys vfs.FS, src, dst string, opts ...Option) error {
	src, dst = cleanPath(src), cleanPath(dst)

	info, err := fsys.Stat(src)
	if err != nil {
		return fmt.Errorf("move %s: %w", src, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("move %s: %w", src, ErrNotDirectory)
	}
	if containsPath(src, dst) {
		return fmt.Errorf("move %s to %s: %w", src, dst, ErrCopyIntoSelf)
	}

	if renamed, err := rename(fsys, src, dst); renamed {
		return err
	}
	if err := CopyDir(fsys, src, dst, opts...); err != nil {
		return fmt.Errorf("move %s: %w", src, err)
	}
	if err := fsys.RemoveAll(src); err != nil {
		return fmt.Errorf("move %s: remove source: %w", src, err)
	}
	return nil
}

// rename prepares dst's parent and attempts a backend rename. The bool
// reports whether the rename was accepted; a false return means the
// caller should fall back to copy and delete.
func rename(fsys vfs.FS, src, dst string) (bool, error) {
	if dir := path.Dir(dst); dir != "." && dir != "/" {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return true, fmt.Errorf("move %s: %w", src, err)
		}
	}
	if err := fsys.Rename(src, dst); err != nil {
		return false, nil
	}
	return true, nil
}
