// Package hash is a registry of the digest algorithms lhash provides,
// addressed by name so the command line and other callers can pick
// them at run time.
package hash

import (
	"fmt"
	"hash"
	"io"
	"strings"

	"github.com/lhash/lhash/hmac"
	"github.com/lhash/lhash/md5"
	"github.com/lhash/lhash/sha1"
	"github.com/lhash/lhash/sha256"
	"github.com/lhash/lhash/sha512"
	"github.com/multiformats/go-multihash"
	"github.com/pkg/errors"
)

// Type indicates a hashing algorithm
type Type int

type hashDefinition struct {
	width    int // hex digits
	name     string
	alias    string
	code     uint64 // multihash code
	newFunc  func() hash.Hash
	newKey   func(secret []byte) func() hash.Hash
	hashType Type
}

var (
	type2hash  = map[Type]*hashDefinition{}
	name2hash  = map[string]*hashDefinition{}
	alias2hash = map[string]*hashDefinition{}
	code2hash  = map[uint64]*hashDefinition{}
	supported  = []Type{}
)

// RegisterHash adds a new Hash to the list and returns its Type.
//
// code is the multihash code of the algorithm. newKey derives an HMAC
// key from secret and returns a constructor for MACs under that key.
func RegisterHash(name, alias string, width int, code uint64, newFunc func() hash.Hash, newKey func(secret []byte) func() hash.Hash) Type {
	hashType := Type(1 << len(supported))
	supported = append(supported, hashType)

	definition := &hashDefinition{
		name:     name,
		alias:    alias,
		width:    width,
		code:     code,
		newFunc:  newFunc,
		newKey:   newKey,
		hashType: hashType,
	}

	type2hash[hashType] = definition
	name2hash[name] = definition
	alias2hash[alias] = definition
	code2hash[code] = definition

	return hashType
}

// ErrUnsupported is returned when a hash type is requested that is
// not registered.
var ErrUnsupported = errors.New("hash type not supported")

var (
	// None indicates no hashes are supported
	None Type

	// MD5 indicates MD5 support
	MD5 Type

	// SHA1 indicates SHA-1 support
	SHA1 Type

	// SHA256 indicates SHA-256 support
	SHA256 Type

	// SHA512 indicates SHA-512 support
	SHA512 Type
)

func init() {
	MD5 = RegisterHash("md5", "MD5", 2*md5.Size, multihash.MD5,
		func() hash.Hash { return md5.New() },
		func(secret []byte) func() hash.Hash {
			key := hmac.NewSigningKey[md5.Checksum](md5.New, secret)
			return func() hash.Hash { return key.NewMAC() }
		})
	SHA1 = RegisterHash("sha1", "SHA-1", 2*sha1.Size, multihash.SHA1,
		func() hash.Hash { return sha1.New() },
		func(secret []byte) func() hash.Hash {
			key := hmac.NewSigningKey[sha1.Checksum](sha1.New, secret)
			return func() hash.Hash { return key.NewMAC() }
		})
	SHA256 = RegisterHash("sha256", "SHA-256", 2*sha256.Size, multihash.SHA2_256,
		func() hash.Hash { return sha256.New() },
		func(secret []byte) func() hash.Hash {
			key := hmac.NewSigningKey[sha256.Checksum](sha256.New, secret)
			return func() hash.Hash { return key.NewMAC() }
		})
	SHA512 = RegisterHash("sha512", "SHA-512", 2*sha512.Size, multihash.SHA2_512,
		func() hash.Hash { return sha512.New() },
		func(secret []byte) func() hash.Hash {
			key := hmac.NewSigningKey[sha512.Checksum](sha512.New, secret)
			return func() hash.Hash { return key.NewMAC() }
		})
}

// Supported returns a set of all the registered hashes.
func Supported() Set {
	return NewHashSet(supported...)
}

// Width returns the width in hex characters for any hash Type
func Width(hashType Type) int {
	if hash := type2hash[hashType]; hash != nil {
		return hash.width
	}
	return 0
}

// New returns a fresh hasher of the given type.
func New(hashType Type) (hash.Hash, error) {
	hash := type2hash[hashType]
	if hash == nil {
		return nil, ErrUnsupported
	}
	return hash.newFunc(), nil
}

// NewMAC returns an HMAC of the given type keyed with secret.
func NewMAC(hashType Type, secret []byte) (hash.Hash, error) {
	newMAC, err := NewMACFunc(hashType, secret)
	if err != nil {
		return nil, err
	}
	return newMAC(), nil
}

// NewMACFunc derives the HMAC key for secret once and returns a
// function making MACs under it. The function is safe for concurrent
// use, each MAC it returns is not.
func NewMACFunc(hashType Type, secret []byte) (func() hash.Hash, error) {
	hash := type2hash[hashType]
	if hash == nil {
		return nil, ErrUnsupported
	}
	return hash.newKey(secret), nil
}

// Stream will calculate hashes of all supported hash types.
func Stream(r io.Reader) (map[Type]string, error) {
	return StreamTypes(r, Supported())
}

// StreamTypes will calculate hashes of the requested hash types and
// return them hex encoded.
func StreamTypes(r io.Reader, set Set) (map[Type]string, error) {
	m, err := NewMultiHasherTypes(set)
	if err != nil {
		return nil, err
	}
	if _, err = io.Copy(m, r); err != nil {
		return nil, errors.Wrap(err, "failed to read input")
	}
	return m.Sums(), nil
}

// String returns a string representation of the hash type.
// The function will panic if the hash type is unknown.
func (h Type) String() string {
	if h == None {
		return "none"
	}
	if hash := type2hash[h]; hash != nil {
		return hash.name
	}
	panic(fmt.Sprintf("internal error: unknown hash type: 0x%x", int(h)))
}

// Set a Type from a flag.
// Both name and alias are accepted.
func (h *Type) Set(s string) error {
	if s == "none" || s == "None" {
		*h = None
		return nil
	}
	if hash := name2hash[strings.ToLower(s)]; hash != nil {
		*h = hash.hashType
		return nil
	}
	if hash := alias2hash[s]; hash != nil {
		*h = hash.hashType
		return nil
	}
	return errors.Errorf("unknown hash type %q", s)
}

// Type of the value
func (h Type) Type() string {
	return "string"
}

// fromTypes returns a hasher for every type in set.
func fromTypes(set Set) (map[Type]hash.Hash, error) {
	if !set.SubsetOf(Supported()) {
		return nil, errors.Errorf("requested set %08x contains unknown hash types", int(set))
	}
	hashers := map[Type]hash.Hash{}
	for _, t := range set.Array() {
		hashers[t] = type2hash[t].newFunc()
	}
	return hashers, nil
}

// toMultiWriter joins the hashers so one write updates them all.
func toMultiWriter(h map[Type]hash.Hash) io.Writer {
	var w = make([]io.Writer, 0, len(h))
	for _, v := range h {
		w = append(w, v)
	}
	return io.MultiWriter(w...)
}

// A MultiHasher will construct various hashes on
// all incoming writes.
type MultiHasher struct {
	w    io.Writer
	size int64
	h    map[Type]hash.Hash // Hashes
}

// NewMultiHasher will return a hash writer that will write all
// supported hash types.
func NewMultiHasher() *MultiHasher {
	h, err := NewMultiHasherTypes(Supported())
	if err != nil {
		panic("internal error: could not create multihasher")
	}
	return h
}

// NewMultiHasherTypes will return a hash writer that will write
// the requested hash types.
func NewMultiHasherTypes(set Set) (*MultiHasher, error) {
	hashers, err := fromTypes(set)
	if err != nil {
		return nil, err
	}
	m := MultiHasher{h: hashers, w: toMultiWriter(hashers)}
	return &m, nil
}

func (m *MultiHasher) Write(p []byte) (n int, err error) {
	n, err = m.w.Write(p)
	m.size += int64(n)
	return n, err
}

// Sums returns the sums of all accumulated hashes as hex encoded
// strings.
func (m *MultiHasher) Sums() map[Type]string {
	dst := make(map[Type]string)
	for k, v := range m.h {
		dst[k], _ = Encode(k, v.Sum(nil), Hex)
	}
	return dst
}

// Sum returns the specified hash from the multihasher
func (m *MultiHasher) Sum(hashType Type) ([]byte, error) {
	h, ok := m.h[hashType]
	if !ok {
		return nil, ErrUnsupported
	}
	return h.Sum(nil), nil
}

// Size returns the number of bytes written
func (m *MultiHasher) Size() int64 {
	return m.size
}

// Equals checks to see if src == dst, but ignores empty strings
// and returns true if either is empty.
func Equals(src, dst string) bool {
	if src == "" || dst == "" {
		return true
	}
	return src == dst
}
