// Package configflags defines the global flags used by lhash.  It is
// decoupled into a separate package so it can be replaced.
package configflags

import (
	"github.com/lhash/lhash/config"
	"github.com/lhash/lhash/config/flags"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

var (
	// these will get interpreted into the config via SetFlags() below
	verbose int
	quiet   bool
)

// AddFlags adds the global flags to the flag set
func AddFlags(ci *config.ConfigInfo, flagSet *pflag.FlagSet) {
	// NB defaults which aren't the zero for the type should be set in config/config.go NewConfig
	flags.CountVarP(flagSet, &verbose, "verbose", "v", "Print lots more stuff (repeat for more)")
	flags.BoolVarP(flagSet, &quiet, "quiet", "q", false, "Print as little stuff as possible")
	flags.FVarP(flagSet, &ci.LogLevel, "log-level", "", "Log level DEBUG|INFO|NOTICE|ERROR")
	flags.BoolVarP(flagSet, &ci.UseJSONLog, "use-json-log", "", ci.UseJSONLog, "Use json log format")
	flags.FVarP(flagSet, &ci.Encoding, "encoding", "", "Checksum encoding hex|base64|multihash|multibase")
	flags.IntVarP(flagSet, &ci.Concurrency, "concurrency", "", ci.Concurrency, "Number of inputs to hash in parallel")
}

// SetFlags converts any flags into config which weren't straight forward
func SetFlags(ci *config.ConfigInfo, flagSet *pflag.FlagSet) error {
	if verbose >= 2 {
		ci.LogLevel = config.LogLevelDebug
	} else if verbose >= 1 {
		ci.LogLevel = config.LogLevelInfo
	}
	if quiet {
		if verbose > 0 {
			return errors.New("can't set -v and -q")
		}
		ci.LogLevel = config.LogLevelError
	}
	logLevelFlag := flagSet.Lookup("log-level")
	if logLevelFlag != nil && logLevelFlag.Changed {
		if verbose > 0 {
			return errors.New("can't set -v and --log-level")
		}
		if quiet {
			return errors.New("can't set -q and --log-level")
		}
	}
	if ci.Concurrency < 1 {
		return errors.Errorf("--concurrency must be at least 1, got %d", ci.Concurrency)
	}
	return nil
}
