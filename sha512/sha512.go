// Package sha512 implements the SHA-512 hash algorithm of FIPS 180-4.
//
// SHA-512 works on 128 byte blocks of 64 bit words and stores the
// message length as a 128 bit field.
package sha512

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/lhash/lhash/internal/blockbuf"
	"github.com/pkg/errors"
)

const (
	// Size of a SHA-512 checksum in bytes
	Size = 64
	// BlockSize of SHA-512 in bytes
	BlockSize = 128
)

var initial = state{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

const (
	magic         = "sha\x07"
	marshaledSize = len(magic) + 8*8 + BlockSize + 8
)

// Checksum is a SHA-512 digest value.
type Checksum [Size]byte

// Bytes returns a copy of the checksum as a slice.
func (c Checksum) Bytes() []byte {
	return append([]byte(nil), c[:]...)
}

func (c Checksum) String() string {
	return hex.EncodeToString(c[:])
}

type state [8]uint64

func (s *state) Compress(p []byte) {
	block(s, p)
}

// Digest is a streaming SHA-512 computation. Create one with New.
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
	d.s = initial
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
// The digest is spent afterwards. Reset it before writing again, a
// second Result on the same data is wrong.
func (d *Digest) Result() Checksum {
	d.buf.Finish(&d.s, blockbuf.BigEndian128)
	var out Checksum
	for i, v := range d.s {
		binary.BigEndian.PutUint64(out[8*i:], v)
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
		b = binary.BigEndian.AppendUint64(b, v)
	}
	return d.buf.AppendBinary(b), nil
}

// UnmarshalBinary restores a state produced by MarshalBinary.
func (d *Digest) UnmarshalBinary(b []byte) error {
	if len(b) < len(magic) || string(b[:len(magic)]) != magic {
		return errors.New("sha512: invalid hash state identifier")
	}
	if len(b) != marshaledSize {
		return errors.Errorf("sha512: invalid hash state size %d", len(b))
	}
	b = b[len(magic):]
	for i := range d.s {
		d.s[i] = binary.BigEndian.Uint64(b)
		b = b[8:]
	}
	d.buf = blockbuf.New(BlockSize)
	d.buf.ConsumeBinary(b)
	return nil
}

// Sum returns the SHA-512 checksum of data.
func Sum(data []byte) Checksum {
	var d Digest
	d.Reset()
	d.Update(data)
	return d.Result()
}
