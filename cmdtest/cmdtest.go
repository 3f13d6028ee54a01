// Package cmdtest creates a testable interface to lhash main
//
// The interface is used to perform end-to-end test of
// commands, flags, environment variables etc.
package cmdtest

import (
	"github.com/lhash/lhash/cmd"
	_ "github.com/lhash/lhash/cmd/all" // import all commands
)

// main is called by TestMain in a fresh process for each test run
func main() {
	cmd.Main()
}
