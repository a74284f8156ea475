// Command regex compiles a pattern, prints its NFA, and reports whether
// it matches an input. It takes its defaults from the original engine's
// own sample invocation: pattern "ab.*c|+" (itself a malformed-pattern
// demonstration, see spec's §9 open question) against "ccababc".
package main

import (
	"fmt"
	"os"

	"github.com/adam-mcdaniel/regex-engine/pkg/regex"
)

func main() {
	pattern := "ab.*c|+"
	if len(os.Args) > 1 {
		pattern = os.Args[1]
	}
	content := "ccababc"
	if len(os.Args) > 2 {
		content = os.Args[2]
	}

	fmt.Println("Pattern:", pattern)
	fmt.Println("Compiling regex")

	r, err := regex.Compile(pattern)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Println("Compiled regex")
	fmt.Println("NFA:")
	fmt.Println(r.Render())

	result := "no"
	if r.Match(content) {
		result = "yes"
	}
	fmt.Printf("Does `%s` match: %s\n", content, result)

	os.Exit(0)
}
