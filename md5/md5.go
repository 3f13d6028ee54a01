// Package md5 implements the MD5 message digest of RFC 1321.
//
// MD5 is broken for collision resistance. It is provided for checking
// legacy checksums and for HMAC-MD5.
package md5

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/lhash/lhash/internal/blockbuf"
	"github.com/pkg/errors"
)

const (
	// Size of an MD5 checksum in bytes
	Size = 16
	// BlockSize of MD5 in bytes
	BlockSize = 64
)

const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476
)

const (
	magic         = "md5\x01"
	marshaledSize = len(magic) + 4*4 + BlockSize + 8
)

// Checksum is an MD5 digest value.
type Checksum [Size]byte

// Bytes returns a copy of the checksum as a slice.
func (c Checksum) Bytes() []byte {
	return append([]byte(nil), c[:]...)
}

// String returns the checksum in lower case hex.
func (c Checksum) String() string {
	return hex.EncodeToString(c[:])
}

type state [4]uint32

func (s *state) Compress(p []byte) {
	block(s, p)
}

// Digest is a streaming MD5 computation.
//
// The zero value is not ready for use, call New or Reset first.
type Digest struct {
	s   state
	buf blockbuf.Buffer
}

// New returns a Digest holding the MD5 initial state.
func New() *Digest {
	d := new(Digest)
	d.Reset()
	return d
}

// Reset the digest to its initial state.
func (d *Digest) Reset() {
	d.s = state{init0, init1, init2, init3}
	d.buf = blockbuf.New(BlockSize)
}

// Size returns Size.
func (d *Digest) Size() int { return Size }

// BlockSize returns BlockSize.
func (d *Digest) BlockSize() int { return BlockSize }

// Update adds p to the running hash.
func (d *Digest) Update(p []byte) {
	d.buf.Write(&d.s, p)
}

// Write adds p to the running hash. It never returns an error.
func (d *Digest) Write(p []byte) (int, error) {
	d.Update(p)
	return len(p), nil
}

// Result pads the message and returns its checksum.
//
// Result consumes the digest. Calling it a second time without Reset
// hashes the padding of the first call and returns a wrong value.
func (d *Digest) Result() Checksum {
	d.buf.Finish(&d.s, blockbuf.LittleEndian64)
	var out Checksum
	for i, v := range d.s {
		binary.LittleEndian.PutUint32(out[4*i:], v)
	}
	return out
}

// Sum appends the checksum of the data written so far to b. The digest
// itself is left unchanged.
func (d *Digest) Sum(b []byte) []byte {
	c := *d
	out := c.Result()
	return append(b, out[:]...)
}

// Fold returns a copy of d with p added, leaving d untouched.
func (d Digest) Fold(p []byte) Digest {
	d.Update(p)
	return d
}

// Final returns the checksum of a copy of d, leaving d untouched.
func (d Digest) Final() Checksum {
	return d.Result()
}

// MarshalBinary encodes the digest state so it can be resumed later.
func (d *Digest) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, marshaledSize)
	b = append(b, magic...)
	for _, v := range d.s {
		b = binary.BigEndian.AppendUint32(b, v)
	}
	return d.buf.AppendBinary(b), nil
}

// UnmarshalBinary restores a state produced by MarshalBinary.
func (d *Digest) UnmarshalBinary(b []byte) error {
	if len(b) < len(magic) || string(b[:len(magic)]) != magic {
		return errors.New("md5: invalid hash state identifier")
	}
	if len(b) != marshaledSize {
		return errors.Errorf("md5: invalid hash state size %d", len(b))
	}
	b = b[len(magic):]
	for i := range d.s {
		d.s[i] = binary.BigEndian.Uint32(b)
		b = b[4:]
	}
	d.buf = blockbuf.New(BlockSize)
	d.buf.ConsumeBinary(b)
	return nil
}

// Sum returns the MD5 checksum of data.
func Sum(data []byte) Checksum {
	var d Digest
	d.Reset()
	d.Update(data)
	return d.Result()
}
