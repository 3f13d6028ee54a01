package selftest

import (
	"strings"

	"github.com/lhash/lhash/hash"
)

const (
	nist2        = "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"
	hashKeyFirst = "Test Using Larger Than Block-Size Key - Hash Key First"
)

// vector is a published test case. When mac is set the output is the
// HMAC of in under key.
type vector struct {
	ht  hash.Type
	mac bool
	key string
	in  string
	out string
}

// vectors are from RFC 1321, FIPS 180-4, RFC 2202 and RFC 4231
var vectors = []vector{
	{hash.MD5, false, "", "", "d41d8cd98f00b204e9800998ecf8427e"},
	{hash.MD5, false, "", "abc", "900150983cd24fb0d6963f7d28e17f72"},
	{hash.MD5, false, "", nist2, "8215ef0796a20bcaaae116d3876c664a"},
	{hash.MD5, true, "Jefe", "what do ya want for nothing?", "750c783e6ab0b503eaa86e310a5db738"},
	{hash.MD5, true, strings.Repeat("\x0b", 20), "Hi There", "5ccec34ea9656392457fa1ac27f08fbc"},
	{hash.MD5, true, strings.Repeat("\xaa", 131), hashKeyFirst, "bfecaf4efff90a3a668f3922fec3762d"},
	{hash.SHA1, false, "", "", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
	{hash.SHA1, false, "", "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
	{hash.SHA1, false, "", nist2, "84983e441c3bd26ebaae4aa1f95129e5e54670f1"},
	{hash.SHA1, true, "Jefe", "what do ya want for nothing?", "effcdf6ae5eb2fa2d27416d5f184df9c259a7c79"},
	{hash.SHA1, true, strings.Repeat("\x0b", 20), "Hi There", "b617318655057264e28bc0b6fb378c8ef146be00"},
	{hash.SHA1, true, strings.Repeat("\xaa", 131), hashKeyFirst, "90d0dace1c1bdc957339307803160335bde6df2b"},
	{hash.SHA256, false, "", "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	{hash.SHA256, false, "", "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	{hash.SHA256, false, "", nist2, "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"},
	{hash.SHA256, true, "Jefe", "what do ya want for nothing?", "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843"},
	{hash.SHA256, true, strings.Repeat("\x0b", 20), "Hi There", "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7"},
	{hash.SHA256, true, strings.Repeat("\xaa", 131), hashKeyFirst, "60e431591ee0b67f0d8a26aacbf5b77f8e0bc6213728c5140546040f0ee37f54"},
	{hash.SHA512, false, "", "", "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"},
	{hash.SHA512, false, "", "abc", "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
	{hash.SHA512, false, "", nist2, "204a8fc6dda82f0a0ced7beb8e08a41657c16ef468b228a8279be331a703c33596fd15c13b1b07f9aa1d3bea57789ca031ad85c7a71dd70354ec631238ca3445"},
	{hash.SHA512, true, "Jefe", "what do ya want for nothing?", "164b7a7bfcf819e2e395fbe73b56e0a387bd64222e831fd610270cd7ea2505549758bf75c05a994a6d034f65f8f0e6fdcaeab1a34d4a6b4b636e070a38bce737"},
	{hash.SHA512, true, strings.Repeat("\x0b", 20), "Hi There", "87aa7cdea5ef619d4ff0b4241a1d6cb02379f4e2ce4ec2787ad0b30545e17cdedaa833b7d6b8a702038b274eaea3f4e4be9d914eeb61f1702e696c203a126854"},
	{hash.SHA512, true, strings.Repeat("\xaa", 131), hashKeyFirst, "80b24263c7c1a3ebb71493c1dd7be8b49b46d1f41b4aeec1121b013783f8f3526b56d037e05f2598bd0fd2215d6a1e5295e64f73f63f0aec8b915a985d786598"},
}
