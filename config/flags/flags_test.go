package flags

import (
	"testing"

	"github.com/lhash/lhash/hash"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentDefaults(t *testing.T) {
	t.Setenv("LHASH_KEY", "Jefe")
	t.Setenv("LHASH_BASE64", "true")
	t.Setenv("LHASH_CONCURRENCY", "9")
	t.Setenv("LHASH_ENCODING", "multibase")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var (
		key         string
		base64      bool
		concurrency int
		verbose     int
		encoding    hash.Encoding
	)
	StringVarP(fs, &key, "key", "k", "", "")
	BoolVarP(fs, &base64, "base64", "", false, "")
	IntVarP(fs, &concurrency, "concurrency", "", 4, "")
	CountVarP(fs, &verbose, "verbose", "v", "")
	FVarP(fs, &encoding, "encoding", "", "")

	assert.Equal(t, "Jefe", key)
	assert.True(t, base64)
	assert.Equal(t, 9, concurrency)
	assert.Equal(t, 0, verbose)
	assert.Equal(t, hash.Multibase, encoding)
	assert.Equal(t, "9", fs.Lookup("concurrency").DefValue)

	// the command line still wins
	require.NoError(t, fs.Parse([]string{"--concurrency", "2", "-vv"}))
	assert.Equal(t, 2, concurrency)
	assert.Equal(t, 2, verbose)
}
