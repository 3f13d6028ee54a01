// Package hmac implements the keyed-hash message authentication code
// of RFC 2104 on top of any digest.Digest.
//
// The algorithm is picked by passing its constructor, for example
//
//	mac := hmac.HMAC[sha256.Checksum](sha256.New, message, secret)
//
// Secrets longer than the digest block size are hashed first, which
// limits their strength to the digest output size as RFC 2104 states.
package hmac

import (
	"bytes"
	"encoding"
	"fmt"

	"github.com/lhash/lhash/digest"
	"github.com/lhash/lhash/internal/blockbuf"
	"github.com/pkg/errors"
)

const (
	ipad = 0x36
	opad = 0x5c
)

// xorInto sets dst[i] = src[i] ^ pad
func xorInto(dst, src []byte, pad byte) {
	for i := range src {
		dst[i] = src[i] ^ pad
	}
}

// DeriveKey turns secret into a key of the digest block size.
//
// Short secrets are zero padded, long ones are hashed and the checksum
// is zero padded.
func DeriveKey[O digest.Output, D digest.Digest[O]](newDigest func() D, secret []byte) []byte {
	d := newDigest()
	key := make([]byte, d.BlockSize())
	if len(secret) > len(key) {
		d.Update(secret)
		sum := d.Result()
		copy(key, sum.Bytes())
	} else {
		copy(key, secret)
	}
	return key
}

// Sign computes the MAC of message under key, which must have been
// made by DeriveKey with the same digest.
//
// It panics if key is not exactly one block long.
func Sign[O digest.Output, D digest.Digest[O]](newDigest func() D, key, message []byte) O {
	d := newDigest()
	if len(key) != d.BlockSize() {
		panic(fmt.Sprintf("hmac: key is %d bytes, want the %d byte block size from DeriveKey", len(key), d.BlockSize()))
	}
	var buf [blockbuf.MaxBlockSize]byte
	inner := buf[:len(key)]
	xorInto(inner, key, ipad)
	return sign[O](d, inner, message)
}

// sign runs both digest passes on d. inner holds key ^ ipad and is not
// modified, the outer pad is built in a separate buffer.
func sign[O digest.Output, D digest.Digest[O]](d D, inner, message []byte) O {
	d.Update(inner)
	d.Update(message)
	sum := d.Result()

	var buf [blockbuf.MaxBlockSize]byte
	outer := buf[:len(inner)]
	xorInto(outer, inner, ipad^opad)

	d.Reset()
	d.Update(outer)
	d.Update(sum.Bytes())
	return d.Result()
}

// HMAC returns the MAC of message under secret.
func HMAC[O digest.Output, D digest.Digest[O]](newDigest func() D, message, secret []byte) O {
	return Sign[O](newDigest, DeriveKey[O](newDigest, secret), message)
}

// SigningKey is a derived key ready for signing many messages.
//
// It is immutable after creation and so may be shared between
// goroutines.
type SigningKey[O digest.Output, D digest.Digest[O]] struct {
	newDigest func() D
	inner     []byte // derived key ^ ipad
}

// NewSigningKey derives a SigningKey from secret.
func NewSigningKey[O digest.Output, D digest.Digest[O]](newDigest func() D, secret []byte) *SigningKey[O, D] {
	key := DeriveKey[O](newDigest, secret)
	xorInto(key, key, ipad)
	return &SigningKey[O, D]{
		newDigest: newDigest,
		inner:     key,
	}
}

// Sign returns the MAC of message.
func (k *SigningKey[O, D]) Sign(message []byte) O {
	return sign[O](k.newDigest(), k.inner, message)
}

// NewMAC returns a streaming MAC sharing this key.
func (k *SigningKey[O, D]) NewMAC() *MAC[O, D] {
	m := &MAC[O, D]{
		newDigest: k.newDigest,
		inner:     k.newDigest(),
		outer:     k.newDigest(),
		ipad:      k.inner,
		opad:      make([]byte, len(k.inner)),
	}
	xorInto(m.opad, k.inner, ipad^opad)
	m.Reset()
	return m
}

// MAC computes an HMAC over a stream of writes. It implements
// hash.Hash.
type MAC[O digest.Output, D digest.Digest[O]] struct {
	newDigest func() D
	inner     D
	outer     D
	ipad      []byte
	opad      []byte
}

// NewMAC returns a MAC keyed with secret.
func NewMAC[O digest.Output, D digest.Digest[O]](newDigest func() D, secret []byte) *MAC[O, D] {
	return NewSigningKey[O](newDigest, secret).NewMAC()
}

// Reset discards everything written so far.
func (m *MAC[O, D]) Reset() {
	m.inner.Reset()
	m.inner.Update(m.ipad)
}

// Update adds p to the authenticated message.
func (m *MAC[O, D]) Update(p []byte) {
	m.inner.Update(p)
}

// Write adds p to the authenticated message. It never returns an error.
func (m *MAC[O, D]) Write(p []byte) (int, error) {
	m.inner.Update(p)
	return len(p), nil
}

// Result returns the MAC. Like digest.Digest.Result it consumes the
// MAC, call Reset before using it again.
func (m *MAC[O, D]) Result() O {
	sum := m.inner.Result()
	m.outer.Reset()
	m.outer.Update(m.opad)
	m.outer.Update(sum.Bytes())
	return m.outer.Result()
}

// Sum appends the current MAC to b without changing the state.
//
// The digest must implement encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler so the inner state can be copied.
func (m *MAC[O, D]) Sum(b []byte) []byte {
	saved := m.inner
	m.inner = m.newDigest()
	if err := copyState(m.inner, saved); err != nil {
		m.inner = saved
		panic(err)
	}
	out := m.Result()
	m.inner = saved
	return append(b, out.Bytes()...)
}

// Size returns the MAC size in bytes.
func (m *MAC[O, D]) Size() int { return m.outer.Size() }

// BlockSize returns the block size of the underlying digest.
func (m *MAC[O, D]) BlockSize() int { return m.inner.BlockSize() }

func copyState(dst, src any) error {
	marshaler, ok := src.(encoding.BinaryMarshaler)
	if !ok {
		return errors.Errorf("hmac: %T does not support MarshalBinary", src)
	}
	unmarshaler, ok := dst.(encoding.BinaryUnmarshaler)
	if !ok {
		return errors.Errorf("hmac: %T does not support UnmarshalBinary", dst)
	}
	state, err := marshaler.MarshalBinary()
	if err != nil {
		return errors.Wrap(err, "hmac: copy digest state")
	}
	return unmarshaler.UnmarshalBinary(state)
}

// Equal compares two MACs for equality.
//
// The comparison is not constant time.
func Equal(mac1, mac2 []byte) bool {
	return bytes.Equal(mac1, mac2)
}
