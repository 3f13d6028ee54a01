// Package invariant holds internal consistency checks which are only
// compiled in with the lhash_debug build tag.
//
// Normal builds pay nothing for the checks, debug builds panic as soon
// as one fails.
package invariant

import "fmt"

// Check panics with the formatted message if ok is false and the
// package was built with the lhash_debug tag.
func Check(ok bool, format string, args ...interface{}) {
	if Enabled && !ok {
		panic(fmt.Sprintf("internal error: "+format, args...))
	}
}
