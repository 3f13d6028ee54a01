// Package sha1 implements the SHA-1 hash algorithm of FIPS 180-4.
package sha1

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/lhash/lhash/internal/blockbuf"
	"github.com/pkg/errors"
)

const (
	// Size of a SHA-1 checksum in bytes
	Size = 20
	// BlockSize of SHA-1 in bytes
	BlockSize = 64
)

const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476
	init4 = 0xc3d2e1f0
)

const (
	magic         = "sha\x01"
	marshaledSize = len(magic) + 5*4 + BlockSize + 8
)

// Checksum is a SHA-1 digest value.
type Checksum [Size]byte

// Bytes returns a copy of the checksum as a slice.
func (c Checksum) Bytes() []byte {
	return append([]byte(nil), c[:]...)
}

// String returns the checksum in lower case hex.
func (c Checksum) String() string {
	return hex.EncodeToString(c[:])
}

type state [5]uint32

func (s *state) Compress(p []byte) {
	block(s, p)
}

// Digest is a streaming SHA-1 computation. Create one with New.
type Digest struct {
	s   state
	buf blockbuf.Buffer
}

// New returns a Digest ready for use.
func New() *Digest {
	d := new(Digest)
	d.Reset()
	return d
}

// Reset the digest to its initial state.
func (d *Digest) Reset() {
	d.s = state{init0, init1, init2, init3, init4}
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
// Result consumes the digest: it must be Reset before it is used
// again. A second call returns a wrong value rather than an error.
func (d *Digest) Result() Checksum {
	d.buf.Finish(&d.s, blockbuf.BigEndian64)
	var out Checksum
	for i, v := range d.s {
		binary.BigEndian.PutUint32(out[4*i:], v)
	}
	return out
}

// Sum appends the current checksum to b without changing the digest.
func (d *Digest) Sum(b []byte) []byte {
	c := *d
	out := c.Result()
	return append(b, out[:]...)
}

// Fold returns a copy of d with p added.
func (d Digest) Fold(p []byte) Digest {
	d.Update(p)
	return d
}

// Final returns the checksum of a copy of d.
func (d Digest) Final() Checksum {
	return d.Result()
}

// MarshalBinary encodes the digest state.
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
		return errors.New("sha1: invalid hash state identifier")
	}
	if len(b) != marshaledSize {
		return errors.Errorf("sha1: invalid hash state size %d", len(b))
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

// Sum returns the SHA-1 checksum of data.
func Sum(data []byte) Checksum {
	var d Digest
	d.Reset()
	d.Update(data)
	return d.Result()
}
