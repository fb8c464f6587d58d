// Command bigdec evaluates decimal operations and converts decimals to and
// from their binary stream form.
package main

import (
	"os"
)

func main() {
	err := execute(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(1)
	}
}
