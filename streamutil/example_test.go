package streamutil_test

import (
	"fmt"
	"strings"

	"github.com/jmgilman/pathkit/streamutil"
)

func ExampleLines() {
	report := "ok: disk\nok: network\nfail: dns\n"

	for line, err := range streamutil.Lines(strings.NewReader(report)) {
		if err != nil {
			panic(err)
		}
		if rest, found := strings.CutPrefix(line, "fail: "); found {
			fmt.Println(rest)
		}
	}
	// Output:
	// dns
}

func ExampleWriteLines() {
	var out strings.Builder
	err := streamutil.WriteLines(&out, []string{"first", "second"}, "")
	if err != nil {
		panic(err)
	}
	fmt.Print(out.String())
	// Output:
	// first
	// second
}
