package fileutil

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/jmgilman/pathkit/vfs"
)

// CleanDir removes every entry inside dir while keeping dir itself.
func CleanDir(fsys vfs.FS, dir string) error {
	info, err := fsys.Stat(dir)
	if err != nil {
		return fmt.Errorf("clean %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("clean %s: %w", dir, ErrNotDirectory)
	}

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("clean %s: %w", dir, err)
	}
	for _, entry := range entries {
		if err := fsys.RemoveAll(path.Join(dir, entry.Name())); err != nil {
			return fmt.Errorf("clean %s: %w", dir, err)
		}
	}
	return nil
}

// SizeOf returns the size of a file, or the total size of all files
// beneath a directory.
func SizeOf(fsys vfs.FS, p string) (int64, error) {
	info, err := fsys.Stat(p)
	if err != nil {
		return 0, fmt.Errorf("size %s: %w", p, err)
	}
	if !info.IsDir() {
		return info.Size(), nil
	}

	var total int64
	err = fsys.Walk(p, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		total += fi.Size()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("size %s: %w", p, err)
	}
	return total, nil
}
