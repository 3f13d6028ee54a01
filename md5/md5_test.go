package md5

import (
	stdmd5 "crypto/md5"
	"fmt"
	"hash"
	"os"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testVectors = []struct {
	in  string
	out string
}{
	{"", "d41d8cd98f00b204e9800998ecf8427e"},
	{"a", "0cc175b9c0f1b6a831c399e269772661"},
	{"abc", "900150983cd24fb0d6963f7d28e17f72"},
	{"message digest", "f96b697d7cb7938d525a2f31aaf161d0"},
	{"abcdefghijklmnopqrstuvwxyz", "c3fcd3d76192e4007dfb496cca67e13b"},
	{"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", "d174ab98d277d9f5a5611c2c9f419d9f"},
	{strings.Repeat("1234567890", 8), "57edf4a22be3c955ac49da2e2107b67a"},
}

func TestMD5(t *testing.T) {
	d := New()
	for _, test := range testVectors {
		what := fmt.Sprintf("input %q", test.in)
		assert.Equal(t, test.out, Sum([]byte(test.in)).String(), what)

		d.Update([]byte(test.in))
		assert.Equal(t, test.out, d.Result().String(), what)
		d.Reset()

		assert.Equal(t, test.out, New().Fold([]byte(test.in)).Final().String(), what)
	}
}

func TestMD5ByBlock(t *testing.T) {
	for _, blockSize := range []int{1, 2, 7, 10, 63, 64, 65} {
		for _, test := range testVectors {
			what := fmt.Sprintf("input %q blockSize %d", test.in, blockSize)
			in := []byte(test.in)
			h := New()
			folded := *New()
			for i := 0; i < len(in); i += blockSize {
				end := i + blockSize
				if end > len(in) {
					end = len(in)
				}
				n, err := h.Write(in[i:end])
				require.Equal(t, end-i, n, what)
				require.NoError(t, err, what)
				folded = folded.Fold(in[i:end])
			}
			assert.Equal(t, test.out, fmt.Sprintf("%x", h.Sum(nil)), what)
			assert.Equal(t, test.out, folded.Final().String(), what)
		}
	}
}

func TestBlockBoundaries(t *testing.T) {
	for _, n := range []int{BlockSize - 9, BlockSize - 8, BlockSize - 1, BlockSize, BlockSize + 1, 2*BlockSize - 9, 2 * BlockSize} {
		in := []byte(strings.Repeat("x", n))
		want := Checksum(stdmd5.Sum(in))
		assert.Equal(t, want, Sum(in), "length %d", n)
		d := New()
		d.Update(in[:n/2])
		d.Update(in[n/2:])
		assert.Equal(t, want, d.Result(), "length %d", n)
	}
}

func TestEmptyUpdates(t *testing.T) {
	d := New()
	d.Update(nil)
	d.Update([]byte("ab"))
	d.Update([]byte{})
	d.Update([]byte("c"))
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", d.Result().String())
}

func TestSize(t *testing.T) {
	d := New()
	assert.Equal(t, 16, d.Size())
}

func TestBlockSize(t *testing.T) {
	d := New()
	assert.Equal(t, 64, d.BlockSize())
}

func TestReset(t *testing.T) {
	d := New()
	zeroHash := d.Sum(nil)
	_, _ = d.Write([]byte{1})
	assert.NotEqual(t, zeroHash, d.Sum(nil))
	d.Reset()
	assert.Equal(t, zeroHash, d.Sum(nil))
}

func TestSumDoesNotConsume(t *testing.T) {
	d := New()
	d.Update([]byte("ab"))
	_ = d.Sum(nil)
	d.Update([]byte("c"))
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", d.Result().String())
}

func TestResultCalledTwice(t *testing.T) {
	d := New()
	d.Update([]byte("abc"))
	first := d.Result()
	assert.NotEqual(t, first, d.Result())
}

func TestBytes(t *testing.T) {
	c := Sum([]byte("abc"))
	b := c.Bytes()
	b[0] ^= 0xff
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", c.String())
}

func TestMarshal(t *testing.T) {
	in := []byte(strings.Repeat("resumable", 20))
	for _, split := range []int{0, 1, 63, 64, 65, 100, len(in)} {
		d := New()
		d.Update(in[:split])
		state, err := d.MarshalBinary()
		require.NoError(t, err)

		var r Digest
		require.NoError(t, r.UnmarshalBinary(state))
		r.Update(in[split:])
		assert.Equal(t, Sum(in), r.Result(), "split %d", split)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	var d Digest
	assert.Error(t, d.UnmarshalBinary(nil))
	assert.Error(t, d.UnmarshalBinary([]byte("sha\x01")))
	state, err := New().MarshalBinary()
	require.NoError(t, err)
	assert.Error(t, d.UnmarshalBinary(state[:len(state)-1]))
}

func TestProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1)
	parameters.MinSuccessfulTests = 200
	props := gopter.NewProperties(parameters)

	props.Property("agrees with crypto/md5", prop.ForAll(
		func(in []byte) bool {
			return Sum(in) == Checksum(stdmd5.Sum(in))
		},
		gen.SliceOf(gen.UInt8()),
	))

	props.Property("chunking does not change the result", prop.ForAll(
		func(in []byte, chunk int) bool {
			want := Sum(in)
			d := New()
			for len(in) > 0 {
				n := chunk
				if n > len(in) {
					n = len(in)
				}
				d.Update(in[:n])
				in = in[n:]
			}
			return d.Result() == want
		},
		gen.SliceOf(gen.UInt8()), gen.IntRange(1, 200),
	))

	props.Property("reset forgets earlier input", prop.ForAll(
		func(x, y []byte) bool {
			d := New()
			d.Update(x)
			_ = d.Result()
			d.Reset()
			d.Update(y)
			return d.Result() == Sum(y)
		},
		gen.SliceOf(gen.UInt8()), gen.SliceOf(gen.UInt8()),
	))

	reporter := gopter.NewFormatedReporter(true, 160, os.Stdout)
	if !props.Run(reporter) {
		t.Errorf("failed with initial seed: %d", 1)
	}
}

// Check interfaces
var (
	_ hash.Hash = (*Digest)(nil)
)

func BenchmarkMD5(b *testing.B) {
	buf := make([]byte, 8192)
	d := New()
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Reset()
		d.Update(buf)
		_ = d.Result()
	}
}
