// Command litgrep matches a single line of input against a pattern,
// grep-style:
//
//	echo "cat cat" | litgrep -E '(cat|dog) \1'
//
// It exits 0 when the input matches, 1 when it does not, and 2 on a usage
// or pattern-compilation error.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/coregx/regexlite"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stderr))
}

func run(args []string, stdin io.Reader, stderr io.Writer) int {
	if len(args) < 2 || args[0] != "-E" {
		fmt.Fprintln(stderr, "usage: litgrep -E <pattern>")
		return 2
	}
	pattern := args[1]

	re, err := regexlite.Compile(pattern)
	if err != nil {
		fmt.Fprintf(stderr, "litgrep: %v\n", err)
		return 2
	}

	reader := bufio.NewReader(stdin)
	line, err := reader.ReadBytes('\n')
	if err != nil && err != io.EOF {
		fmt.Fprintf(stderr, "litgrep: read input: %v\n", err)
		return 2
	}
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}

	if !re.Match(line) {
		return 1
	}
	return 0
}
