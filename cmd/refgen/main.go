// refgen generates an AsciiDoc reference manual from command and settings
// metadata, and rewrites marker-delimited authors blocks from git history.
package main

import (
	"os"

	"github.com/schmitthub/refgen/internal/refgen"
)

func main() {
	os.Exit(refgen.Main())
}
