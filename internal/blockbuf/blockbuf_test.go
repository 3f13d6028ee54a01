package blockbuf

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder keeps a copy of every block it is handed
type recorder struct {
	blocks [][]byte
}

func (r *recorder) Compress(block []byte) {
	r.blocks = append(r.blocks, append([]byte(nil), block...))
}

func (r *recorder) joined() []byte {
	return bytes.Join(r.blocks, nil)
}

func sequence(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i)
	}
	return p
}

func TestNewInvalid(t *testing.T) {
	assert.Panics(t, func() { New(0) })
	assert.Panics(t, func() { New(MaxBlockSize + 1) })
	assert.NotPanics(t, func() { New(64) })
}

func TestWriteEmpty(t *testing.T) {
	b := New(64)
	var r recorder
	b.Write(&r, nil)
	b.Write(&r, []byte{})
	assert.Empty(t, r.blocks)
	assert.Equal(t, uint64(0), b.Len())
	assert.Equal(t, 0, b.Buffered())
}

func TestWriteChunked(t *testing.T) {
	data := sequence(1000)
	for _, size := range []int{64, 128} {
		for _, chunk := range []int{1, 3, 7, 63, 64, 65, 127, 128, 129, 1000} {
			b := New(size)
			var r recorder
			for p := data; len(p) > 0; {
				n := chunk
				if n > len(p) {
					n = len(p)
				}
				b.Write(&r, p[:n])
				p = p[n:]
			}
			full := len(data) / size * size
			require.Len(t, r.blocks, len(data)/size, "size=%d chunk=%d", size, chunk)
			assert.Equal(t, data[:full], r.joined(), "size=%d chunk=%d", size, chunk)
			assert.Equal(t, len(data)-full, b.Buffered())
			assert.Equal(t, uint64(len(data)), b.Len())
		}
	}
}

func TestWriteExactBlock(t *testing.T) {
	b := New(64)
	var r recorder
	b.Write(&r, sequence(64))
	assert.Len(t, r.blocks, 1)
	assert.Equal(t, 0, b.Buffered())
}

func TestFinishBoundaries(t *testing.T) {
	for _, tc := range []struct {
		size   int
		field  LengthField
		n      int
		blocks int
	}{
		{64, BigEndian64, 0, 1},
		{64, BigEndian64, 55, 1},
		{64, BigEndian64, 56, 2},
		{64, BigEndian64, 63, 2},
		{64, BigEndian64, 64, 2},
		{64, LittleEndian64, 55, 1},
		{64, LittleEndian64, 56, 2},
		{128, BigEndian128, 111, 1},
		{128, BigEndian128, 112, 2},
		{128, BigEndian128, 128, 2},
	} {
		b := New(tc.size)
		var r recorder
		b.Write(&r, sequence(tc.n))
		b.Finish(&r, tc.field)

		out := r.joined()
		require.Len(t, out, tc.blocks*tc.size, "n=%d", tc.n)
		assert.Equal(t, sequence(tc.n), out[:tc.n])
		assert.Equal(t, byte(0x80), out[tc.n])
		end := len(out) - tc.field.Size()
		for i := tc.n + 1; i < end; i++ {
			require.Zero(t, out[i], "n=%d offset %d", tc.n, i)
		}
		bits := uint64(tc.n) * 8
		switch tc.field {
		case LittleEndian64:
			assert.Equal(t, bits, binary.LittleEndian.Uint64(out[end:]))
		case BigEndian64:
			assert.Equal(t, bits, binary.BigEndian.Uint64(out[end:]))
		case BigEndian128:
			assert.Equal(t, uint64(0), binary.BigEndian.Uint64(out[end:]))
			assert.Equal(t, bits, binary.BigEndian.Uint64(out[end+8:]))
		}
		assert.Equal(t, 0, b.Buffered())
	}
}

func TestFinishHighLengthBits(t *testing.T) {
	b := New(128)
	b.len = 1<<61 | 5
	var r recorder
	b.Finish(&r, BigEndian128)
	out := r.joined()
	assert.Equal(t, uint64(1), binary.BigEndian.Uint64(out[112:]))
	assert.Equal(t, uint64(5*8), binary.BigEndian.Uint64(out[120:]))
}

func TestReset(t *testing.T) {
	b := New(64)
	var r recorder
	b.Write(&r, sequence(100))
	b.Reset()
	assert.Equal(t, uint64(0), b.Len())
	assert.Equal(t, 0, b.Buffered())
	assert.Equal(t, 64, b.BlockSize())
}

func TestBinaryRoundTrip(t *testing.T) {
	b := New(64)
	var r recorder
	b.Write(&r, sequence(70))

	state := b.AppendBinary([]byte("x"))
	require.Len(t, state, 1+b.MarshaledSize())

	c := New(64)
	rest := c.ConsumeBinary(append(state[1:], 'y'))
	assert.Equal(t, []byte("y"), rest)
	assert.Equal(t, b.Len(), c.Len())
	assert.Equal(t, b.Buffered(), c.Buffered())

	var r1, r2 recorder
	b.Finish(&r1, BigEndian64)
	c.Finish(&r2, BigEndian64)
	assert.Equal(t, r1.joined(), r2.joined())
}
