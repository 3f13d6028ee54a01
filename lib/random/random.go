// Package random holds a few functions for working with random numbers
package random

import (
	cryptorand "crypto/rand"
	"encoding/base64"
	"io"
	"math/rand"

	"github.com/pkg/errors"
)

// String create a random string for test purposes.
//
// Do not use these for keys.
func String(n int) string {
	const (
		vowel     = "aeiou"
		consonant = "bcdfghjklmnpqrstvwxyz"
		digit     = "0123456789"
	)
	pattern := []string{consonant, vowel, consonant, vowel, consonant, vowel, consonant, digit}
	out := make([]byte, n)
	p := 0
	for i := range out {
		source := pattern[p]
		p = (p + 1) % len(pattern)
		out[i] = source[rand.Intn(len(source))]
	}
	return string(out)
}

// Key reads n crypto strong random bytes, suitable as an HMAC secret.
func Key(n int) ([]byte, error) {
	key := make([]byte, n)
	read, err := io.ReadFull(cryptorand.Reader, key)
	if err != nil {
		return nil, errors.Wrap(err, "key read failed")
	}
	if read != n {
		return nil, errors.Errorf("key short read: %d", read)
	}
	return key, nil
}

// Password creates a crypto strong password which is just about
// memorable.  The password is composed of printable ASCII characters
// from the base64 alphabet.
//
// Requires password strength in bits.
// 64 is just about memorable
// 128 is secure
func Password(bits int) (password string, err error) {
	bytes := bits / 8
	if bits%8 != 0 {
		bytes++
	}
	pw, err := Key(bytes)
	if err != nil {
		return "", errors.Wrap(err, "password")
	}
	return base64.RawURLEncoding.EncodeToString(pw), nil
}
