// Package sha256 implements the SHA-256 hash algorithm of FIPS 180-4.
package sha256

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/lhash/lhash/internal/blockbuf"
	"github.com/pkg/errors"
)

const (
	// Size of a SHA-256 checksum in bytes
	Size = 32
	// BlockSize of SHA-256 in bytes
	BlockSize = 64
)

var initial = state{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

const (
	magic         = "sha\x03"
	marshaledSize = len(magic) + 8*4 + BlockSize + 8
)

// Checksum is a SHA-256 digest value.
type Checksum [Size]byte

// Bytes returns a copy of the checksum as a slice.
func (c Checksum) Bytes() []byte {
	return append([]byte(nil), c[:]...)
}

func (c Checksum) String() string {
	return hex.EncodeToString(c[:])
}

type state [8]uint32

func (s *state) Compress(p []byte) {
	block(s, p)
}

// Digest is a streaming SHA-256 computation. Create one with New.
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

// Result pads the message and returns its checksum. The digest must be
// Reset before it is used again.
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
		return errors.New("sha256: invalid hash state identifier")
	}
	if len(b) != marshaledSize {
		return errors.Errorf("sha256: invalid hash state size %d", len(b))
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

// Sum returns the SHA-256 checksum of data.
func Sum(data []byte) Checksum {
	var d Digest
	d.Reset()
	d.Update(data)
	return d.Result()
}
