package vfs

import (
	"testing"
)

// TestNormalize verifies incoming paths are rewritten to clean slash
// form before reaching the billy backend.
func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple", input: "test.txt", want: "test.txt"},
		{name: "nested", input: "dir/file.txt", want: "dir/file.txt"},
		{name: "double slash", input: "dir//file.txt", want: "dir/file.txt"},
		{name: "dot segment", input: "dir/./file.txt", want: "dir/file.txt"},
		{name: "dotdot resolved", input: "dir/../file.txt", want: "file.txt"},
		{name: "backslashes rewritten", input: `dir\file.txt`, want: "dir/file.txt"},
		{name: "trailing slash dropped", input: "dir/", want: "dir"},
		{name: "root", input: "/", want: "/"},
		{name: "absolute", input: "/dir/file.txt", want: "/dir/file.txt"},
		{name: "dot", input: ".", want: "."},
		{name: "empty", input: "", want: "."},
		{name: "climbing passes through", input: "../escape.txt", want: "../escape.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize(tt.input); got != tt.want {
				t.Errorf("normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestDirEntry verifies the fs.FileInfo adapter reports entry metadata.
func TestDirEntry(t *testing.T) {
	fsys := NewMemFS()
	if err := fsys.MkdirAll("d", 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := fsys.WriteFile("f.txt", []byte("data"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	entries, err := fsys.ReadDir(".")
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ReadDir() returned %d entries, want 2", len(entries))
	}

	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			t.Fatalf("Info() error = %v", err)
		}
		if info.Name() != entry.Name() {
			t.Errorf("Info().Name() = %q, want %q", info.Name(), entry.Name())
		}
		if entry.IsDir() != info.IsDir() {
			t.Errorf("IsDir() = %v, want %v", entry.IsDir(), info.IsDir())
		}
		if entry.Type() != info.Mode().Type() {
			t.Errorf("Type() = %v, want %v", entry.Type(), info.Mode().Type())
		}
	}
}
