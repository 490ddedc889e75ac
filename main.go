// changebase - convert numbers between binary, octal, decimal and
// hexadecimal with arbitrary precision.
package main

import (
	"os"

	"changebase/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		os.Exit(cmd.Report(err, os.Stderr))
	}
}
