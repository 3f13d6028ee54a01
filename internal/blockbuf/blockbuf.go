// Package blockbuf implements the streaming and padding protocol shared
// by the Merkle–Damgård digests in this module.
//
// A Buffer collects input into fixed size blocks and hands each full
// block to a Compressor. Finish terminates the stream with the 0x80
// marker, zero fill and the bit length of the message.
package blockbuf

import (
	"encoding/binary"

	"github.com/lhash/lhash/internal/invariant"
)

// MaxBlockSize is the largest block size a Buffer can hold.
const MaxBlockSize = 128

// A Compressor absorbs exactly one block into its running state.
type Compressor interface {
	Compress(block []byte)
}

// LengthField describes how the message length is stored in the final
// block.
type LengthField int

// Length field layouts
const (
	LittleEndian64 LengthField = iota // MD5
	BigEndian64                       // SHA-1, SHA-256
	BigEndian128                      // SHA-512
)

// Size returns the number of bytes the length field occupies.
func (f LengthField) Size() int {
	if f == BigEndian128 {
		return 16
	}
	return 8
}

// Buffer holds the unconsumed tail of the input and the total number
// of bytes written.
//
// The zero value is not usable, create one with New.
type Buffer struct {
	x    [MaxBlockSize]byte
	size int    // block size in use
	nx   int    // bytes held in x, always < size between calls
	len  uint64 // bytes written since the last Reset, wraps on overflow
}

// New returns an empty Buffer for the given block size.
//
// It panics if blockSize is not in 1..MaxBlockSize.
func New(blockSize int) Buffer {
	if blockSize <= 0 || blockSize > MaxBlockSize {
		panic("blockbuf: invalid block size")
	}
	return Buffer{size: blockSize}
}

// Reset empties the buffer and zeroes the length counter.
func (b *Buffer) Reset() {
	b.nx = 0
	b.len = 0
}

// BlockSize returns the block size the buffer was created with.
func (b *Buffer) BlockSize() int {
	return b.size
}

// Len returns the number of bytes written since the last Reset.
func (b *Buffer) Len() uint64 {
	return b.len
}

// Buffered returns the number of bytes waiting for a full block.
func (b *Buffer) Buffered() int {
	return b.nx
}

// Write absorbs p, calling c.Compress for every block that fills up.
//
// Full blocks inside p are compressed in place without copying. Only
// the trailing partial block is kept.
func (b *Buffer) Write(c Compressor, p []byte) {
	if len(p) == 0 {
		return
	}
	b.len += uint64(len(p))

	if b.nx > 0 {
		n := copy(b.x[b.nx:b.size], p)
		b.nx += n
		if b.nx < b.size {
			return
		}
		c.Compress(b.x[:b.size])
		b.nx = 0
		p = p[n:]
	}

	for len(p) >= b.size {
		c.Compress(p[:b.size])
		p = p[b.size:]
	}

	if len(p) > 0 {
		b.nx = copy(b.x[:b.size], p)
	}
	invariant.Check(b.nx < b.size, "blockbuf: %d bytes buffered with block size %d", b.nx, b.size)
}

// Finish pads the message and compresses the final block(s).
//
// The padding is a single 0x80 byte, zeros up to the length field and
// then the message length in bits laid out as f describes. When the
// marker does not leave room for the length field the padding spills
// into one extra block.
//
// Finish leaves the buffer empty but keeps the length counter, so
// calling it twice without Reset pads a message which was never
// written. The caller must not do that.
func (b *Buffer) Finish(c Compressor, f LengthField) {
	end := b.size - f.Size()
	invariant.Check(end > 0, "blockbuf: block size %d too small for length field", b.size)

	b.x[b.nx] = 0x80
	b.nx++
	for b.nx != end {
		if b.nx == b.size {
			c.Compress(b.x[:b.size])
			b.nx = 0
			continue
		}
		b.x[b.nx] = 0
		b.nx++
	}

	bits := b.len << 3
	switch f {
	case LittleEndian64:
		binary.LittleEndian.PutUint64(b.x[end:], bits)
	case BigEndian64:
		binary.BigEndian.PutUint64(b.x[end:], bits)
	case BigEndian128:
		binary.BigEndian.PutUint64(b.x[end:], b.len>>61)
		binary.BigEndian.PutUint64(b.x[end+8:], bits)
	}
	b.nx += f.Size()
	invariant.Check(b.nx == b.size, "blockbuf: final block holds %d of %d bytes", b.nx, b.size)

	c.Compress(b.x[:b.size])
	b.nx = 0
}

// MarshaledSize is the number of bytes AppendBinary adds.
func (b *Buffer) MarshaledSize() int {
	return b.size + 8
}

// AppendBinary appends the buffered block (zero padded) and the length
// counter to dst.
func (b *Buffer) AppendBinary(dst []byte) []byte {
	dst = append(dst, b.x[:b.nx]...)
	dst = append(dst, make([]byte, b.size-b.nx)...)
	return binary.BigEndian.AppendUint64(dst, b.len)
}

// ConsumeBinary restores the state written by AppendBinary from the
// front of src and returns the rest. src must hold at least
// MarshaledSize bytes.
func (b *Buffer) ConsumeBinary(src []byte) []byte {
	copy(b.x[:b.size], src[:b.size])
	b.len = binary.BigEndian.Uint64(src[b.size:])
	b.nx = int(b.len % uint64(b.size))
	return src[b.size+8:]
}
