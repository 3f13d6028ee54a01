// Package exitcode exports lhash's exit status numbers.
package exitcode

const (
	// Success is returned when lhash finished without error.
	Success = iota
	// UsageError is returned when there was a syntax or usage error in the arguments.
	UsageError
	// UncategorizedError is returned for any error not categorised otherwise.
	UncategorizedError
	// FileNotFound is returned when an input or key file is not found.
	FileNotFound
	// Mismatch is returned when a checksum or test vector did not match.
	Mismatch
)
