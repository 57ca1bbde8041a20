// Command funneltree runs the geodesic-distance engine over one or more
// mesh files and, if a matching expected-distance fixture exists, checks
// the result against it per spec.md §6.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
