// Package digest defines the capability shared by every hash algorithm
// in lhash.
//
// Each algorithm package (md5, sha1, sha256, sha512) provides a type
// satisfying Digest together with a fixed size Checksum output. Generic
// code such as HMAC is written against these interfaces so that one
// implementation serves all algorithms.
package digest

import (
	"encoding/hex"
)

// Output is a fixed size digest value.
//
// Outputs are plain arrays so they compare with == and copy by value.
type Output interface {
	comparable
	// Bytes returns a fresh copy of the digest bytes
	Bytes() []byte
	// String returns the lower case hex encoding
	String() string
}

// Digest is a streaming hash computation producing an O.
//
// A Digest is not safe for concurrent use.
type Digest[O Output] interface {
	// Reset returns the digest to its freshly constructed state.
	Reset()
	// Update absorbs p. Writing a message in pieces gives the same
	// result as writing it in one call.
	Update(p []byte)
	// Result pads the message and returns the digest. The digest must
	// be Reset before it is used again, calling Result twice returns a
	// meaningless value.
	Result() O
	// Size is the output length in bytes.
	Size() int
	// BlockSize is the compression block length in bytes.
	BlockSize() int
}

// Sum hashes data with a digest made by newDigest.
func Sum[O Output, D Digest[O]](newDigest func() D, data []byte) O {
	d := newDigest()
	d.Update(data)
	return d.Result()
}

// Hex returns the lower case hex encoding of o.
func Hex[O Output](o O) string {
	return hex.EncodeToString(o.Bytes())
}
