// Command regex-cli is the verbose, argument-validating sibling of
// cmd/regex: it requires both a pattern and an input, and accepts an
// optional trailing -v to enable phase-by-phase compile logging.
package main

import (
	"fmt"
	"os"

	"github.com/adam-mcdaniel/regex-engine/pkg/regex"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <pattern> <input> [-v]\n", os.Args[0])
}

func main() {
	args := os.Args[1:]
	if len(args) < 2 {
		usage()
		os.Exit(1)
	}

	verbose := false
	switch len(args) {
	case 2:
	case 3:
		if args[2] != "-v" {
			usage()
			os.Exit(1)
		}
		verbose = true
	default:
		usage()
		os.Exit(1)
	}

	pattern, input := args[0], args[1]

	fmt.Println("Pattern:", pattern)
	fmt.Println("Compiling regex")

	r, err := regex.CompileWithOptions(regex.Options{Pattern: pattern, Verbose: verbose})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Println("Compiled regex")
	fmt.Println("NFA:")
	fmt.Println(r.Render())

	result := "no"
	if r.Match(input) {
		result = "yes"
	}
	fmt.Printf("Does `%s` match: %s\n", input, result)
}
