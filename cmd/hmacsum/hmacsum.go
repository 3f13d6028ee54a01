// Package hmacsum provides the hmacsum command.
package hmacsum

import (
	"context"
	"encoding/hex"
	"fmt"
	gohash "hash"
	"io"
	"os"

	"github.com/lhash/lhash/cmd"
	"github.com/lhash/lhash/cmd/hashsum"
	"github.com/lhash/lhash/config/flags"
	"github.com/lhash/lhash/hash"
	"github.com/lhash/lhash/lib/env"
	"github.com/lhash/lhash/lib/random"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	key         = ""
	keyHex      = ""
	keyFile     = ""
	generateKey = 0
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
	cmdFlags := commandDefinition.Flags()
	flags.StringVarP(cmdFlags, &key, "key", "k", key, "Secret key as a string")
	flags.StringVarP(cmdFlags, &keyHex, "key-hex", "", keyHex, "Secret key in hex")
	flags.StringVarP(cmdFlags, &keyFile, "key-file", "", keyFile, "Read the secret key from this file"+env.ShellExpandHelp)
	flags.IntVarP(cmdFlags, &generateKey, "generate-key", "", generateKey, "Print a random hex key of this many bytes and exit")
	hashsum.AddHashFlags(cmdFlags)
}

// Secret returns the key from the command flags
//
// A key file is used byte for byte, including any trailing newline.
func Secret() ([]byte, error) {
	set := 0
	for _, s := range []string{key, keyHex, keyFile} {
		if s != "" {
			set++
		}
	}
	switch {
	case set > 1:
		return nil, errors.New("use only one of --key, --key-hex and --key-file")
	case keyFile != "":
		secret, err := env.ReadFile(keyFile)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read --key-file")
		}
		return secret, nil
	case keyHex != "":
		secret, err := hex.DecodeString(keyHex)
		if err != nil {
			return nil, errors.Wrap(err, "bad --key-hex")
		}
		return secret, nil
	case key != "":
		return []byte(key), nil
	}
	return nil, errors.New("need --key, --key-hex or --key-file")
}

// CheckEncoding rejects the encodings which would label an HMAC as a
// plain digest of the input
func CheckEncoding(enc hash.Encoding) error {
	if enc.SelfDescribing() {
		return errors.Wrapf(cmd.ErrorUsage, "%v encoding names a plain hash and can't hold an HMAC", enc)
	}
	return nil
}

// GenerateKey prints a random key of n bytes in hex
func GenerateKey(w io.Writer, n int) error {
	if n <= 0 {
		return errors.Errorf("--generate-key needs a positive size, got %d", n)
	}
	k, err := random.Key(n)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, hex.EncodeToString(k))
	return err
}

var commandDefinition = &cobra.Command{
	Use:   "hmacsum <hash> [input...]",
	Short: `Produces keyed HMACs of the inputs.`,
	Long: `
Produces an HMAC for each input using the hash named and the secret
given with --key, --key-hex or --key-file. The output is in the same format as
hashsum and --check verifies a single input in the same way. Only
the hex and base64 encodings are accepted, multihash and multibase
would label the HMAC as a plain hash.

The key is derived once and reused for every input.

    $ lhash hmacsum sha256 --key-hex 0b0b0b0b file.txt

Use --generate-key to make a new random key, e.g.

    $ lhash hmacsum --generate-key 32
`,
	RunE: func(command *cobra.Command, args []string) error {
		if generateKey != 0 {
			if err := cmd.CheckArgs(0, 0, command, args); err != nil {
				return err
			}
			return cmd.Run(command, func() error {
				return GenerateKey(os.Stdout, generateKey)
			})
		}
		if err := cmd.CheckArgs(1, 1<<16, command, args); err != nil {
			return err
		}
		ctx := context.Background()
		if err := CheckEncoding(hashsum.OutputEncoding(ctx)); err != nil {
			return err
		}
		ht, names, err := hashsum.ParseArgs(args)
		if err != nil {
			return err
		}
		secret, err := Secret()
		if err != nil {
			return err
		}
		newMAC, err := hash.NewMACFunc(ht, secret)
		if err != nil {
			return err
		}
		return cmd.Run(command, func() error {
			results, err := hashsum.SumInputs(ctx, names, hashsum.OpenFile, func() (gohash.Hash, error) {
				return newMAC(), nil
			})
			if err != nil {
				return err
			}
			return hashsum.Output(ctx, os.Stdout, ht, results)
		})
	},
}
