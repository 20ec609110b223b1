// ABOUTME: Entry point for the seed CLI.
// ABOUTME: Invokes the root Cobra command and maps errors to exit status 1.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
