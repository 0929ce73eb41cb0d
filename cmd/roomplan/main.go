// SPDX-License-Identifier: MIT

// Command roomplan loads a YAML floor layout and reports what the engine
// makes of it: shared walls, wall sections, or an SVG drawing.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
