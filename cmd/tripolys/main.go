// Command tripolys decides, for a given triad (or a range of enumerated
// core triads), whether a polymorphism satisfying a named identity
// specification exists.
package main

import (
	"os"

	"github.com/tripolys/tripolys/cmd/tripolys/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
