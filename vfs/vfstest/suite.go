// Package vfstest provides a conformance test suite for vfs.FS
// providers.
//
// Provider packages import the suite and run it against a constructor
// that returns a fresh, empty filesystem:
//
//	func TestMemFS(t *testing.T) {
//	    vfstest.TestSuite(t, func() vfs.FS {
//	        return vfs.NewMemFS()
//	    })
//	}
//
// The suite validates the interface contracts shared by all providers.
// Backend-specific behavior, such as permission handling on disk,
// belongs in the provider's own tests.
package vfstest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"slices"
	"testing"

	"github.com/jmgilman/pathkit/vfs"
)

// TestSuite runs all conformance tests against a provider. newFS must
// return a fresh, empty filesystem on each call; the tests create,
// modify, and delete files, so instances cannot be shared.
func TestSuite(t *testing.T, newFS func() vfs.FS) {
	t.Run("Read", func(t *testing.T) { testRead(t, newFS()) })
	t.Run("Write", func(t *testing.T) { testWrite(t, newFS()) })
	t.Run("File", func(t *testing.T) { testFile(t, newFS()) })
	t.Run("Manage", func(t *testing.T) { testManage(t, newFS()) })
	t.Run("Walk", func(t *testing.T) { testWalk(t, newFS()) })
}

func testRead(t *testing.T, fsys vfs.FS) {
	content := []byte("conformance test content")
	if err := fsys.MkdirAll("docs", 0o755); err != nil {
		t.Fatalf("MkdirAll(docs): setup failed: %v", err)
	}
	if err := fsys.WriteFile("docs/readme.txt", content, 0o644); err != nil {
		t.Fatalf("WriteFile(docs/readme.txt): setup failed: %v", err)
	}

	t.Run("Open", func(t *testing.T) {
		f, err := fsys.Open("docs/readme.txt")
		if err != nil {
			t.Fatalf("Open: got error %v, want nil", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				t.Errorf("Close: got error %v, want nil", err)
			}
		}()
		data, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("ReadAll: got error %v, want nil", err)
		}
		if !bytes.Equal(data, content) {
			t.Errorf("ReadAll: got %q, want %q", data, content)
		}
	})

	t.Run("OpenNotExist", func(t *testing.T) {
		_, err := fsys.Open("docs/absent.txt")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Open: got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("StatFile", func(t *testing.T) {
		info, err := fsys.Stat("docs/readme.txt")
		if err != nil {
			t.Fatalf("Stat: got error %v, want nil", err)
		}
		if info.IsDir() {
			t.Error("Stat: IsDir() = true, want false")
		}
		if info.Size() != int64(len(content)) {
			t.Errorf("Stat: Size() = %d, want %d", info.Size(), len(content))
		}
	})

	t.Run("StatDir", func(t *testing.T) {
		info, err := fsys.Stat("docs")
		if err != nil {
			t.Fatalf("Stat: got error %v, want nil", err)
		}
		if !info.IsDir() {
			t.Error("Stat: IsDir() = false, want true")
		}
	})

	t.Run("StatNotExist", func(t *testing.T) {
		_, err := fsys.Stat("docs/absent.txt")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat: got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("ReadDir", func(t *testing.T) {
		entries, err := fsys.ReadDir("docs")
		if err != nil {
			t.Fatalf("ReadDir: got error %v, want nil", err)
		}
		if len(entries) != 1 {
			t.Fatalf("ReadDir: got %d entries, want 1", len(entries))
		}
		if got := entries[0].Name(); got != "readme.txt" {
			t.Errorf("ReadDir: entry name = %q, want %q", got, "readme.txt")
		}
		if entries[0].IsDir() {
			t.Error("ReadDir: entry IsDir() = true, want false")
		}
	})

	t.Run("ReadFile", func(t *testing.T) {
		data, err := fsys.ReadFile("docs/readme.txt")
		if err != nil {
			t.Fatalf("ReadFile: got error %v, want nil", err)
		}
		if !bytes.Equal(data, content) {
			t.Errorf("ReadFile: got %q, want %q", data, content)
		}
	})

	t.Run("Exists", func(t *testing.T) {
		for _, tt := range []struct {
			path string
			want bool
		}{
			{path: "docs/readme.txt", want: true},
			{path: "docs", want: true},
			{path: "docs/absent.txt", want: false},
		} {
			got, err := fsys.Exists(tt.path)
			if err != nil {
				t.Errorf("Exists(%q): got error %v, want nil", tt.path, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Exists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		}
	})
}

func testWrite(t *testing.T, fsys vfs.FS) {
	t.Run("CreateWriteRead", func(t *testing.T) {
		f, err := fsys.Create("new.txt")
		if err != nil {
			t.Fatalf("Create: got error %v, want nil", err)
		}
		if _, err := f.Write([]byte("fresh")); err != nil {
			t.Fatalf("Write: got error %v, want nil", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close: got error %v, want nil", err)
		}
		data, err := fsys.ReadFile("new.txt")
		if err != nil {
			t.Fatalf("ReadFile: got error %v, want nil", err)
		}
		if string(data) != "fresh" {
			t.Errorf("ReadFile: got %q, want %q", data, "fresh")
		}
	})

	t.Run("CreateTruncates", func(t *testing.T) {
		if err := fsys.WriteFile("trunc.txt", []byte("previous content"), 0o644); err != nil {
			t.Fatalf("WriteFile: setup failed: %v", err)
		}
		f, err := fsys.Create("trunc.txt")
		if err != nil {
			t.Fatalf("Create: got error %v, want nil", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close: got error %v, want nil", err)
		}
		info, err := fsys.Stat("trunc.txt")
		if err != nil {
			t.Fatalf("Stat: got error %v, want nil", err)
		}
		if info.Size() != 0 {
			t.Errorf("Stat: Size() = %d, want 0", info.Size())
		}
	})

	t.Run("WriteFileOverwrites", func(t *testing.T) {
		if err := fsys.WriteFile("over.txt", []byte("first"), 0o644); err != nil {
			t.Fatalf("WriteFile: got error %v, want nil", err)
		}
		if err := fsys.WriteFile("over.txt", []byte("second"), 0o644); err != nil {
			t.Fatalf("WriteFile: got error %v, want nil", err)
		}
		data, err := fsys.ReadFile("over.txt")
		if err != nil {
			t.Fatalf("ReadFile: got error %v, want nil", err)
		}
		if string(data) != "second" {
			t.Errorf("ReadFile: got %q, want %q", data, "second")
		}
	})

	t.Run("OpenFileAppend", func(t *testing.T) {
		if err := fsys.WriteFile("append.txt", []byte("base"), 0o644); err != nil {
			t.Fatalf("WriteFile: setup failed: %v", err)
		}
		f, err := fsys.OpenFile("append.txt", os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			t.Fatalf("OpenFile: got error %v, want nil", err)
		}
		if _, err := f.Write([]byte("+more")); err != nil {
			t.Fatalf("Write: got error %v, want nil", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close: got error %v, want nil", err)
		}
		data, err := fsys.ReadFile("append.txt")
		if err != nil {
			t.Fatalf("ReadFile: got error %v, want nil", err)
		}
		if string(data) != "base+more" {
			t.Errorf("ReadFile: got %q, want %q", data, "base+more")
		}
	})

	t.Run("Mkdir", func(t *testing.T) {
		if err := fsys.Mkdir("single", 0o755); err != nil {
			t.Fatalf("Mkdir: got error %v, want nil", err)
		}
		info, err := fsys.Stat("single")
		if err != nil {
			t.Fatalf("Stat: got error %v, want nil", err)
		}
		if !info.IsDir() {
			t.Error("Stat: IsDir() = false, want true")
		}
	})

	t.Run("MkdirExisting", func(t *testing.T) {
		if err := fsys.Mkdir("dup", 0o755); err != nil {
			t.Fatalf("Mkdir: setup failed: %v", err)
		}
		if err := fsys.Mkdir("dup", 0o755); !errors.Is(err, fs.ErrExist) {
			t.Errorf("Mkdir: got error %v, want fs.ErrExist", err)
		}
	})

	t.Run("MkdirMissingParent", func(t *testing.T) {
		if err := fsys.Mkdir("absent/child", 0o755); err == nil {
			t.Error("Mkdir: got nil error, want non-nil")
		}
	})

	t.Run("MkdirAll", func(t *testing.T) {
		if err := fsys.MkdirAll("deep/nested/tree", 0o755); err != nil {
			t.Fatalf("MkdirAll: got error %v, want nil", err)
		}
		info, err := fsys.Stat("deep/nested/tree")
		if err != nil {
			t.Fatalf("Stat: got error %v, want nil", err)
		}
		if !info.IsDir() {
			t.Error("Stat: IsDir() = false, want true")
		}
		if err := fsys.MkdirAll("deep/nested/tree", 0o755); err != nil {
			t.Errorf("MkdirAll: repeat call got error %v, want nil", err)
		}
	})
}

func testFile(t *testing.T, fsys vfs.FS) {
	f, err := fsys.Create("handle.txt")
	if err != nil {
		t.Fatalf("Create: got error %v, want nil", err)
	}
	defer func() { _ = f.Close() }()

	if got := f.Name(); got != "handle.txt" {
		t.Errorf("Name() = %q, want %q", got, "handle.txt")
	}
	if _, err := f.Write([]byte("seek target")); err != nil {
		t.Fatalf("Write: got error %v, want nil", err)
	}
	if _, err := f.Seek(5, io.SeekStart); err != nil {
		t.Fatalf("Seek: got error %v, want nil", err)
	}
	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll: got error %v, want nil", err)
	}
	if string(data) != "target" {
		t.Errorf("ReadAll after Seek: got %q, want %q", data, "target")
	}
}

func testManage(t *testing.T, fsys vfs.FS) {
	t.Run("RemoveFile", func(t *testing.T) {
		if err := fsys.WriteFile("gone.txt", []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile: setup failed: %v", err)
		}
		if err := fsys.Remove("gone.txt"); err != nil {
			t.Fatalf("Remove: got error %v, want nil", err)
		}
		if _, err := fsys.Stat("gone.txt"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat after Remove: got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("RemoveNotExist", func(t *testing.T) {
		if err := fsys.Remove("never.txt"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Remove: got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("RemoveNonEmptyDir", func(t *testing.T) {
		if err := fsys.MkdirAll("full", 0o755); err != nil {
			t.Fatalf("MkdirAll: setup failed: %v", err)
		}
		if err := fsys.WriteFile("full/kept.txt", []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile: setup failed: %v", err)
		}
		if err := fsys.Remove("full"); err == nil {
			t.Error("Remove: got nil error, want non-nil")
		}
	})

	t.Run("RemoveAll", func(t *testing.T) {
		if err := fsys.MkdirAll("tree/sub", 0o755); err != nil {
			t.Fatalf("MkdirAll: setup failed: %v", err)
		}
		if err := fsys.WriteFile("tree/a.txt", []byte("a"), 0o644); err != nil {
			t.Fatalf("WriteFile: setup failed: %v", err)
		}
		if err := fsys.WriteFile("tree/sub/b.txt", []byte("b"), 0o644); err != nil {
			t.Fatalf("WriteFile: setup failed: %v", err)
		}
		if err := fsys.RemoveAll("tree"); err != nil {
			t.Fatalf("RemoveAll: got error %v, want nil", err)
		}
		exists, err := fsys.Exists("tree")
		if err != nil {
			t.Fatalf("Exists: got error %v, want nil", err)
		}
		if exists {
			t.Error("Exists after RemoveAll: got true, want false")
		}
	})

	t.Run("RemoveAllNotExist", func(t *testing.T) {
		if err := fsys.RemoveAll("never"); err != nil {
			t.Errorf("RemoveAll: got error %v, want nil", err)
		}
	})

	t.Run("Rename", func(t *testing.T) {
		if err := fsys.WriteFile("old.txt", []byte("payload"), 0o644); err != nil {
			t.Fatalf("WriteFile: setup failed: %v", err)
		}
		if err := fsys.Rename("old.txt", "new-name.txt"); err != nil {
			t.Fatalf("Rename: got error %v, want nil", err)
		}
		if _, err := fsys.Stat("old.txt"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(old): got error %v, want fs.ErrNotExist", err)
		}
		data, err := fsys.ReadFile("new-name.txt")
		if err != nil {
			t.Fatalf("ReadFile(new): got error %v, want nil", err)
		}
		if string(data) != "payload" {
			t.Errorf("ReadFile(new): got %q, want %q", data, "payload")
		}
	})

	t.Run("RenameNotExist", func(t *testing.T) {
		if err := fsys.Rename("never.txt", "still-never.txt"); err == nil {
			t.Error("Rename: got nil error, want non-nil")
		}
	})
}

func testWalk(t *testing.T, fsys vfs.FS) {
	if err := fsys.MkdirAll("top/a/b", 0o755); err != nil {
		t.Fatalf("MkdirAll(top/a/b): setup failed: %v", err)
	}
	for _, file := range []string{"top/a/1.txt", "top/a/b/2.txt", "top/c.txt"} {
		if err := fsys.WriteFile(file, []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(%s): setup failed: %v", file, err)
		}
	}

	t.Run("VisitsLexically", func(t *testing.T) {
		var visited []string
		err := fsys.Walk("top", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, p)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk: got error %v, want nil", err)
		}
		want := []string{"top", "top/a", "top/a/1.txt", "top/a/b", "top/a/b/2.txt", "top/c.txt"}
		if !slices.Equal(visited, want) {
			t.Errorf("Walk visited %v, want %v", visited, want)
		}
	})

	t.Run("SkipDir", func(t *testing.T) {
		var visited []string
		err := fsys.Walk("top", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, p)
			if p == "top/a" {
				return fs.SkipDir
			}
			return nil
		})
		if err != nil {
			t.Fatalf("Walk: got error %v, want nil", err)
		}
		want := []string{"top", "top/a", "top/c.txt"}
		if !slices.Equal(visited, want) {
			t.Errorf("Walk visited %v, want %v", visited, want)
		}
	})

	t.Run("SkipAll", func(t *testing.T) {
		var visited []string
		err := fsys.Walk("top", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, p)
			if p == "top/a/1.txt" {
				return fs.SkipAll
			}
			return nil
		})
		if err != nil {
			t.Fatalf("Walk: got error %v, want nil", err)
		}
		want := []string{"top", "top/a", "top/a/1.txt"}
		if !slices.Equal(visited, want) {
			t.Errorf("Walk visited %v, want %v", visited, want)
		}
	})

	t.Run("MissingRoot", func(t *testing.T) {
		calls := 0
		err := fsys.Walk("absent", func(p string, d fs.DirEntry, err error) error {
			calls++
			if d != nil {
				t.Error("Walk: got non-nil DirEntry for missing root")
			}
			return err
		})
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Walk: got error %v, want fs.ErrNotExist", err)
		}
		if calls != 1 {
			t.Errorf("Walk: callback invoked %d times, want 1", calls)
		}
	})
}
