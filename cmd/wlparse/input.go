// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

// readInput returns the bytes to parse: the named file's contents, or
// stdin if no path (or "-") is given. This, and nothing more, is the
// extent of the CLI's own file I/O; the bytes handed to the library are
// exactly the bytes read.
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// stderrIsTerminal reports whether stderr is a terminal (native or
// Cygwin). It does not look at --no-color; callers check that flag
// themselves.
func stderrIsTerminal() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

// printStats prints a --stats-style summary line: input size (human
// formatted, e.g. "4.1 kB") and elapsed time.
func printStats(label string, inputLen int, elapsed time.Duration) {
	fmt.Fprintf(os.Stderr, "%s: %s in %s\n", label, humanize.Bytes(uint64(inputLen)), elapsed)
}
