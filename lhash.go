// Compute message digests and HMACs of files and standard input
package main

import (
	"github.com/lhash/lhash/cmd"
	_ "github.com/lhash/lhash/cmd/all" // import all commands
)

func main() {
	cmd.Main()
}
