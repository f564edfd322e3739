// Command pathviz finds shortest paths on wall boards, either once on the
// terminal or behind an HTTP API.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
