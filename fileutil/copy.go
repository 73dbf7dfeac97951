package fileutil

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/pathkit/pathname"
	"github.com/jmgilman/pathkit/vfs"
)

// CopyFile copies the contents and permission bits of the file src to
// dst, creating any missing parent directories of dst. An existing dst
// is truncated.
func CopyFile(fsys vfs.FS, src, dst string, opts ...Option) error {
	o := newOptions(opts...)

	info, err := fsys.Stat(src)
	if err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	if info.IsDir() {
		return fmt.Errorf("copy %s: %w", src, ErrIsDirectory)
	}
	return copyPayload(fsys, src, dst, info.Mode().Perm(), o.bufferSize)
}

// CopyDir recursively copies the directory src to dst. Directories are
// created in walk order; file payloads are copied through a worker pool
// bounded by WithWorkers, serially by default.
func CopyDir(fsys vfs.FS, src, dst string, opts ...Option) error {
	o := newOptions(opts...)
	src, dst = cleanPath(src), cleanPath(dst)

	info, err := fsys.Stat(src)
	if err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("copy %s: %w", src, ErrNotDirectory)
	}
	if containsPath(src, dst) {
		return fmt.Errorf("copy %s to %s: %w", src, dst, ErrCopyIntoSelf)
	}

	eg := new(errgroup.Group)
	eg.SetLimit(o.workers)

	walkErr := fsys.Walk(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := path.Join(dst, relativeTo(src, p))
		if d.IsDir() {
			return fsys.MkdirAll(target, 0o755)
		}

		fi, err := d.Info()
		if err != nil {
			return err
		}
		eg.Go(func() error {
			return copyPayload(fsys, p, target, fi.Mode().Perm(), o.bufferSize)
		})
		return nil
	})

	err = eg.Wait()
	if walkErr != nil {
		err = walkErr
	}
	if err != nil {
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return nil
}

// copyPayload streams one file, creating dst with the given permission
// bits and any missing parent directories.
func copyPayload(fsys vfs.FS, src, dst string, perm fs.FileMode, bufSize int) error {
	if dir := path.Dir(dst); dir != "." && dir != "/" {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("copy %s: %w", src, err)
		}
	}

	in, err := fsys.Open(src)
	if err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	_, err = io.CopyBuffer(out, in, make([]byte, bufSize))
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return nil
}

// cleanPath rewrites a path to clean slash form, leaving inputs the
// path engine rejects or erases untouched.
func cleanPath(p string) string {
	n, err := pathname.NormalizeNoEndSeparatorWith(p, pathname.SeparatorUnix)
	if err != nil || n == "" {
		return p
	}
	return n
}

// relativeTo strips the walk root from a visited path. Both arguments
// are clean slash paths with p at or below root.
func relativeTo(root, p string) string {
	rel := strings.TrimPrefix(p, root)
	return strings.TrimPrefix(rel, "/")
}

// containsPath reports whether p equals dir or sits anywhere beneath
// it. Both arguments are clean slash paths.
func containsPath(dir, p string) bool {
	if p == dir {
		return true
	}
	if !strings.HasSuffix(dir, "/") {
		dir += "/"
	}
	return strings.HasPrefix(p, dir)
}
