package hash

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multihash"
	"github.com/pkg/errors"
)

// Encoding selects how a checksum is rendered as text.
type Encoding int

// Supported encodings
const (
	Hex       Encoding = iota // lower case hex, the default
	Base64                    // standard base64 with padding
	Multihash                 // hex of the self describing multihash
	Multibase                 // base32 multibase of the multihash
)

var encodingNames = []string{
	Hex:       "hex",
	Base64:    "base64",
	Multihash: "multihash",
	Multibase: "multibase",
}

// String turns an Encoding into its name
func (e Encoding) String() string {
	if e < 0 || int(e) >= len(encodingNames) {
		return "unknown"
	}
	return encodingNames[e]
}

// SelfDescribing reports whether the encoding names the hash algorithm
// in its output. Such encodings only fit plain digests, an HMAC has no
// multihash code.
func (e Encoding) SelfDescribing() bool {
	return e == Multihash || e == Multibase
}

// Set an Encoding from a flag
func (e *Encoding) Set(s string) error {
	for i, name := range encodingNames {
		if strings.EqualFold(s, name) {
			*e = Encoding(i)
			return nil
		}
	}
	return errors.Errorf("unknown encoding %q", s)
}

// Type of the value
func (e Encoding) Type() string {
	return "string"
}

// Encode renders the checksum sum of type t.
func Encode(t Type, sum []byte, e Encoding) (string, error) {
	switch e {
	case Hex:
		return hex.EncodeToString(sum), nil
	case Base64:
		return base64.StdEncoding.EncodeToString(sum), nil
	}
	def := type2hash[t]
	if def == nil {
		return "", ErrUnsupported
	}
	mh, err := multihash.Encode(sum, def.code)
	if err != nil {
		return "", errors.Wrapf(err, "failed to encode %v multihash", t)
	}
	switch e {
	case Multihash:
		return multihash.Multihash(mh).HexString(), nil
	case Multibase:
		return multibase.Encode(multibase.Base32, mh)
	}
	return "", errors.Errorf("unknown encoding %d", int(e))
}

// Decode parses a checksum produced by Encode.
//
// Hex and Base64 carry no algorithm so t must be given. The multihash
// forms name their own algorithm, which must match t unless t is None.
func Decode(t Type, s string, e Encoding) (Type, []byte, error) {
	var raw []byte
	var err error
	switch e {
	case Hex:
		raw, err = hex.DecodeString(s)
	case Base64:
		raw, err = base64.StdEncoding.DecodeString(s)
	case Multihash:
		var mh multihash.Multihash
		mh, err = multihash.FromHexString(s)
		if err == nil {
			return fromMultihash(t, mh)
		}
	case Multibase:
		_, raw, err = multibase.Decode(s)
		if err == nil {
			return fromMultihash(t, raw)
		}
	default:
		return None, nil, errors.Errorf("unknown encoding %d", int(e))
	}
	if err != nil {
		return None, nil, errors.Wrapf(err, "failed to decode %v checksum", e)
	}
	if t == None {
		return None, nil, errors.Errorf("%v checksum needs a hash type", e)
	}
	if want := Width(t) / 2; len(raw) != want {
		return None, nil, errors.Errorf("%v checksum is %d bytes, want %d", t, len(raw), want)
	}
	return t, raw, nil
}

func fromMultihash(t Type, mh []byte) (Type, []byte, error) {
	decoded, err := multihash.Decode(mh)
	if err != nil {
		return None, nil, errors.Wrap(err, "failed to decode multihash")
	}
	def := code2hash[decoded.Code]
	if def == nil {
		return None, nil, errors.Wrapf(ErrUnsupported, "multihash %s", decoded.Name)
	}
	if t != None && t != def.hashType {
		return None, nil, errors.Errorf("checksum is %v, want %v", def.hashType, t)
	}
	return def.hashType, decoded.Digest, nil
}
