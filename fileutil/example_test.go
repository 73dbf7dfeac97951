package fileutil_test

import (
	"fmt"

	"github.com/jmgilman/pathkit/fileutil"
	"github.com/jmgilman/pathkit/vfs"
)

func ExampleCopyFile() {
	fsys := vfs.NewMemFS()
	if err := fsys.WriteFile("config.yml", []byte("retries: 3\n"), 0o644); err != nil {
		panic(err)
	}

	if err := fileutil.CopyFile(fsys, "config.yml", "backup/config.yml"); err != nil {
		panic(err)
	}

	data, err := fsys.ReadFile("backup/config.yml")
	if err != nil {
		panic(err)
	}
	fmt.Print(string(data))
	// Output:
	// retries: 3
}

func ExampleSizeOf() {
	fsys := vfs.NewMemFS()
	for name, content := range map[string]string{
		"site/index.html": "<html></html>",
		"site/robots.txt": "User-agent: *",
	} {
		if err := fsys.WriteFile(name, []byte(content), 0o644); err != nil {
			panic(err)
		}
	}

	n, err := fileutil.SizeOf(fsys, "site")
	if err != nil {
		panic(err)
	}
	fmt.Println(n)
	// Output:
	// 26
}

func ExampleContentEquals() {
	fsys := vfs.NewMemFS()
	if err := fsys.WriteFile("a.txt", []byte("same"), 0o644); err != nil {
		panic(err)
	}
	if err := fsys.WriteFile("b.txt", []byte("same"), 0o644); err != nil {
		panic(err)
	}

	equal, err := fileutil.ContentEquals(fsys, "a.txt", "b.txt")
	if err != nil {
		panic(err)
	}
	fmt.Println(equal)
	// Output:
	// true
}
