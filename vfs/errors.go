package vfs

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotExist is returned when a file or directory does not exist.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a file or directory already exists.
	// Re-exported from io/fs for convenience.
	ErrExist = fs.ErrExist

	// ErrInvalid is returned when an argument is invalid.
	// Re-exported from io/fs for convenience.
	ErrInvalid = fs.ErrInvalid

	// ErrPermission is returned when permission is denied.
	// Re-exported from io/fs for convenience.
	ErrPermission = fs.ErrPermission

	// ErrUnsupported is returned when a provider cannot support an
	// operation, such as syncing an in-memory file to stable storage.
	ErrUnsupported = errors.New("operation not supported")
)
