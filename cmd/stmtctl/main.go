// Command stmtctl inspects statement and DATEV files offline: format
// detection, parse previews and the DATEV shape check.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
