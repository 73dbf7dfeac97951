package fileutil

import (
	"bytes"
	"errors"
	"fmt"
	"hash"
	"hash/crc32"
	"io"

	"github.com/jmgilman/pathkit/vfs"
)

// ContentEquals reports whether two files have identical contents. Two
// missing paths compare equal; a missing path never equals an existing
// one. Comparing a directory is an error.
func ContentEquals(fsys vfs.FS, a, b string) (bool, error) {
	aExists, err := fsys.Exists(a)
	if err != nil {
		return false, fmt.Errorf("compare %s: %w", a, err)
	}
	bExists, err := fsys.Exists(b)
	if err != nil {
		return false, fmt.Errorf("compare %s: %w", b, err)
	}
	if aExists != bExists {
		return false, nil
	}
	if !aExists {
		return true, nil
	}

	aInfo, err := fsys.Stat(a)
	if err != nil {
		return false, fmt.Errorf("compare %s: %w", a, err)
	}
	bInfo, err := fsys.Stat(b)
	if err != nil {
		return false, fmt.Errorf("compare %s: %w", b, err)
	}
	if aInfo.IsDir() {
		return false, fmt.Errorf("compare %s: %w", a, ErrIsDirectory)
	}
	if bInfo.IsDir() {
		return false, fmt.Errorf("compare %s: %w", b, ErrIsDirectory)
	}
	if aInfo.Size() != bInfo.Size() {
		return false, nil
	}
	if cleanPath(a) == cleanPath(b) {
		return true, nil
	}

	fa, err := fsys.Open(a)
	if err != nil {
		return false, fmt.Errorf("compare %s: %w", a, err)
	}
	defer func() { _ = fa.Close() }()
	fb, err := fsys.Open(b)
	if err != nil {
		return false, fmt.Errorf("compare %s: %w", b, err)
	}
	defer func() { _ = fb.Close() }()

	return streamsEqual(fa, fb)
}

// streamsEqual compares two readers chunk by chunk.
func streamsEqual(a, b io.Reader) (bool, error) {
	bufA := make([]byte, defaultBufferSize)
	bufB := make([]byte, defaultBufferSize)
	for {
		n, errA := a.Read(bufA)
		if n > 0 {
			if _, err := io.ReadFull(b, bufB[:n]); err != nil {
				if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
					return false, nil
				}
				return false, err
			}
			if !bytes.Equal(bufA[:n], bufB[:n]) {
				return false, nil
			}
		}
		if errA != nil {
			if !errors.Is(errA, io.EOF) {
				return false, errA
			}
			// a is exhausted; b must be as well.
			if n, err := b.Read(bufB[:1]); n > 0 {
				return false, nil
			} else if err != nil && !errors.Is(err, io.EOF) {
				return false, err
			}
			return true, nil
		}
	}
}

// Checksum streams the named file through h and returns the digest.
// The hash is not reset first, so digests can span several files.
func Checksum(fsys vfs.FS, p string, h hash.Hash) ([]byte, error) {
	info, err := fsys.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("checksum %s: %w", p, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("checksum %s: %w", p, ErrIsDirectory)
	}

	f, err := fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("checksum %s: %w", p, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(h, f); err != nil {
		return nil, fmt.Errorf("checksum %s: %w", p, err)
	}
	return h.Sum(nil), nil
}

// ChecksumCRC32 returns the IEEE CRC-32 of the named file.
func ChecksumCRC32(fsys vfs.FS, p string) (uint32, error) {
	h := crc32.NewIEEE()
	if _, err := Checksum(fsys, p, h); err != nil {
		return 0, err
	}
	return h.Sum32(), nil
}
