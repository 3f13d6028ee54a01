package hashsum

import (
	"bytes"
	"context"
	gohash "hash"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/lhash/lhash/cmd"
	"github.com/lhash/lhash/hash"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memOpener serves inputs from a map
func memOpener(files map[string]string) Opener {
	return func(name string) (io.ReadCloser, error) {
		s, ok := files[name]
		if !ok {
			return nil, os.ErrNotExist
		}
		return io.NopCloser(strings.NewReader(s)), nil
	}
}

func newMD5() (gohash.Hash, error) {
	return hash.New(hash.MD5)
}

func TestParseArgs(t *testing.T) {
	ht, names, err := ParseArgs([]string{"sha256"})
	require.NoError(t, err)
	assert.Equal(t, hash.SHA256, ht)
	assert.Equal(t, []string{"-"}, names)

	ht, names, err = ParseArgs([]string{"MD5", "a", "b"})
	require.NoError(t, err)
	assert.Equal(t, hash.MD5, ht)
	assert.Equal(t, []string{"a", "b"}, names)

	_, _, err = ParseArgs([]string{"whirlpool"})
	assert.Error(t, err)

	_, _, err = ParseArgs([]string{"none"})
	assert.Equal(t, hash.ErrUnsupported, err)

	_, names, err = ParseArgs([]string{"md5", "a", "-", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "-", "b"}, names)

	_, _, err = ParseArgs([]string{"md5", "-", "a", "-"})
	assert.Equal(t, cmd.ErrorUsage, errors.Cause(err))
}

func TestSumInputsOrder(t *testing.T) {
	files := map[string]string{}
	var names []string
	for i := 0; i < 20; i++ {
		name := strings.Repeat("x", i)
		files[name] = name
		names = append(names, name)
	}
	results, err := SumInputs(context.Background(), names, memOpener(files), newMD5)
	require.NoError(t, err)
	require.Len(t, results, len(names))
	for i, r := range results {
		assert.Equal(t, names[i], r.Name)
		h, _ := newMD5()
		_, _ = h.Write([]byte(names[i]))
		assert.Equal(t, h.Sum(nil), r.Sum, r.Name)
	}
}

func TestSumInputsMissing(t *testing.T) {
	files := map[string]string{"a": "abc"}
	_, err := SumInputs(context.Background(), []string{"a", "missing"}, memOpener(files), newMD5)
	require.Error(t, err)
	assert.Equal(t, os.ErrNotExist, errors.Cause(err))
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestPrint(t *testing.T) {
	files := map[string]string{"abc": "abc", "empty": ""}
	results, err := SumInputs(context.Background(), []string{"abc", "empty"}, memOpener(files), newMD5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, hash.MD5, results, hash.Hex))
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72  abc\nd41d8cd98f00b204e9800998ecf8427e  empty\n", buf.String())

	buf.Reset()
	require.NoError(t, Print(&buf, hash.MD5, results[:1], hash.Base64))
	assert.Equal(t, "kAFQmDzST7DWlj99KOF/cg==  abc\n", buf.String())
}

func TestCheck(t *testing.T) {
	results := []Result{{Name: "abc", Sum: mustSum(t, "abc")}}

	var buf bytes.Buffer
	require.NoError(t, Check(&buf, hash.MD5, results, "900150983cd24fb0d6963f7d28e17f72", hash.Hex))
	assert.Equal(t, "abc: OK\n", buf.String())

	buf.Reset()
	require.NoError(t, Check(&buf, hash.MD5, results, "900150983CD24FB0D6963F7D28E17F72", hash.Hex))

	buf.Reset()
	err := Check(&buf, hash.MD5, results, "d41d8cd98f00b204e9800998ecf8427e", hash.Hex)
	assert.Equal(t, cmd.ErrorMismatch, errors.Cause(err))
	assert.Equal(t, "abc: FAILED\n", buf.String())

	err = Check(&buf, hash.MD5, results, "zz", hash.Hex)
	assert.Error(t, err)
	assert.NotEqual(t, cmd.ErrorMismatch, errors.Cause(err))

	err = Check(&buf, hash.MD5, append(results, results[0]), "900150983cd24fb0d6963f7d28e17f72", hash.Hex)
	assert.Error(t, err)
}

func TestOutputFlags(t *testing.T) {
	defer func() {
		outputBase64 = false
		checkSum = ""
	}()
	ctx := context.Background()
	results := []Result{{Name: "abc", Sum: mustSum(t, "abc")}}

	var buf bytes.Buffer
	outputBase64 = true
	require.NoError(t, Output(ctx, &buf, hash.MD5, results))
	assert.Equal(t, "kAFQmDzST7DWlj99KOF/cg==  abc\n", buf.String())

	assert.Equal(t, hash.Base64, OutputEncoding(ctx))

	buf.Reset()
	checkSum = "kAFQmDzST7DWlj99KOF/cg=="
	require.NoError(t, Output(ctx, &buf, hash.MD5, results))
	assert.Equal(t, "abc: OK\n", buf.String())
}

func TestListHashes(t *testing.T) {
	var buf bytes.Buffer
	ListHashes(&buf)
	for _, name := range []string{"md5", "sha1", "sha256", "sha512"} {
		assert.Contains(t, buf.String(), "  * "+name+"\n")
	}
}

func mustSum(t *testing.T, s string) []byte {
	h, err := newMD5()
	require.NoError(t, err)
	_, _ = h.Write([]byte(s))
	return h.Sum(nil)
}
