package filename_test

import (
	"fmt"
	"strings"

	"github.com/jmgilman/pathkit/filename"
)

func ExampleProfile_IsLegalName() {
	fmt.Println(filename.Windows.IsLegalName("report: v2", nil))
	fmt.Println(filename.Windows.IsLegalName("CON.txt", nil))
	fmt.Println(filename.Linux.IsLegalName("report: v2", nil))
	// Output:
	// false
	// false
	// true
}

func ExampleProfile_ToLegalName() {
	name, err := filename.Windows.ToLegalName("report: v2", '_', nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(name)
	// Output:
	// report_ v2
}

func ExampleProfile_ToLegalName_truncation() {
	long := strings.Repeat("a", 300) + ".log"
	name, err := filename.Windows.ToLegalName(long, '_', nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(name), strings.HasSuffix(name, ".log"))
	// Output:
	// 255 true
}

func ExampleLengthUnit_Truncate() {
	name, err := filename.UnitUTF16.Truncate("archive-2024.tar.gz", 10, nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(name)
	// Output:
	// arc.tar.gz
}
