package fileutil

import "errors"

var (
	// ErrIsDirectory is returned when a file operation is given a
	// directory path.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrNotDirectory is returned when a directory operation is given
	// a file path.
	ErrNotDirectory = errors.New("path is not a directory")

	// ErrCopyIntoSelf is returned when a directory copy or move would
	// place the destination inside the source tree.
	ErrCopyIntoSelf = errors.New("destination is inside source")
)
