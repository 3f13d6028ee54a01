package configflags

import (
	"testing"

	"github.com/lhash/lhash/config"
	"github.com/lhash/lhash/hash"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*config.ConfigInfo, error) {
	verbose, quiet = 0, false
	ci := config.NewConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(ci, fs)
	require.NoError(t, fs.Parse(args))
	return ci, SetFlags(ci, fs)
}

func TestDefaults(t *testing.T) {
	ci, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, config.LogLevelNotice, ci.LogLevel)
	assert.Equal(t, hash.Hex, ci.Encoding)
}

func TestVerbosity(t *testing.T) {
	ci, err := parse(t, "-v")
	require.NoError(t, err)
	assert.Equal(t, config.LogLevelInfo, ci.LogLevel)

	ci, err = parse(t, "-vv")
	require.NoError(t, err)
	assert.Equal(t, config.LogLevelDebug, ci.LogLevel)

	ci, err = parse(t, "-q")
	require.NoError(t, err)
	assert.Equal(t, config.LogLevelError, ci.LogLevel)

	ci, err = parse(t, "--log-level", "INFO")
	require.NoError(t, err)
	assert.Equal(t, config.LogLevelInfo, ci.LogLevel)
}

func TestConflicts(t *testing.T) {
	_, err := parse(t, "-v", "-q")
	assert.Error(t, err)
	_, err = parse(t, "-v", "--log-level", "DEBUG")
	assert.Error(t, err)
	_, err = parse(t, "-q", "--log-level", "DEBUG")
	assert.Error(t, err)
	_, err = parse(t, "--concurrency", "0")
	assert.Error(t, err)
}

func TestEncodingFlag(t *testing.T) {
	ci, err := parse(t, "--encoding", "base64", "--concurrency", "8")
	require.NoError(t, err)
	assert.Equal(t, hash.Base64, ci.Encoding)
	assert.Equal(t, 8, ci.Concurrency)
}
