// Command textutil is a command line front end for the text and math
// utilities. Like the HTTP server it is a thin wrapper: all computation
// happens in the library.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
