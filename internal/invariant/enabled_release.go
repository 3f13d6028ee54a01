//go:build !lhash_debug

package invariant

// Enabled is true when built with -tags lhash_debug
const Enabled = false
