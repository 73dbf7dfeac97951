// Package fileutil provides file and directory manipulation helpers on
// top of a vfs.FS: copying, moving, cleaning, sizing, comparing, and
// checksumming.
//
// All helpers accept the filesystem as their first argument, so the
// same code runs against disk-backed and in-memory providers:
//
//	fsys := vfs.NewLocalFS("/srv/data")
//	err := fileutil.CopyDir(fsys, "current", "backup",
//		fileutil.WithWorkers(4))
//
// # Concurrency
//
// CopyDir and MoveDir fan file payload copies out through a bounded
// worker pool when WithWorkers is set above one. Directory creation
// stays ordered regardless of the worker count, so a parent directory
// always exists before files beneath it are written. Worker counts
// above one require a filesystem that is safe for concurrent use; see
// the vfs package notes on thread safety.
package fileutil
