// Package all imports all the commands
package all

import (
	// Active commands
	_ "github.com/lhash/lhash/cmd"
	_ "github.com/lhash/lhash/cmd/hashsum"
	_ "github.com/lhash/lhash/cmd/hmacsum"
	_ "github.com/lhash/lhash/cmd/selftest"
	_ "github.com/lhash/lhash/cmd/version"
)
