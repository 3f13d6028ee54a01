// Package selftest provides the selftest command.
package selftest

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lhash/lhash/cmd"
	"github.com/lhash/lhash/config"
	"github.com/lhash/lhash/digest"
	"github.com/lhash/lhash/hash"
	"github.com/lhash/lhash/hmac"
	"github.com/lhash/lhash/md5"
	"github.com/lhash/lhash/sha1"
	"github.com/lhash/lhash/sha256"
	"github.com/lhash/lhash/sha512"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
}

// oneShot computes a vector through the generic functions rather than
// the registry.
var oneShot = map[hash.Type]func(v vector) string{
	hash.MD5: func(v vector) string {
		if v.mac {
			return digest.Hex(hmac.HMAC[md5.Checksum](md5.New, []byte(v.in), []byte(v.key)))
		}
		return digest.Hex(digest.Sum[md5.Checksum](md5.New, []byte(v.in)))
	},
	hash.SHA1: func(v vector) string {
		if v.mac {
			return digest.Hex(hmac.HMAC[sha1.Checksum](sha1.New, []byte(v.in), []byte(v.key)))
		}
		return digest.Hex(digest.Sum[sha1.Checksum](sha1.New, []byte(v.in)))
	},
	hash.SHA256: func(v vector) string {
		if v.mac {
			return digest.Hex(hmac.HMAC[sha256.Checksum](sha256.New, []byte(v.in), []byte(v.key)))
		}
		return digest.Hex(digest.Sum[sha256.Checksum](sha256.New, []byte(v.in)))
	},
	hash.SHA512: func(v vector) string {
		if v.mac {
			return digest.Hex(hmac.HMAC[sha512.Checksum](sha512.New, []byte(v.in), []byte(v.key)))
		}
		return digest.Hex(digest.Sum[sha512.Checksum](sha512.New, []byte(v.in)))
	},
}

// streamed computes a vector through the registry, feeding the input
// one byte at a time.
func streamed(v vector) (string, error) {
	var h io.Writer
	var sum func([]byte) []byte
	if v.mac {
		m, err := hash.NewMAC(v.ht, []byte(v.key))
		if err != nil {
			return "", err
		}
		h, sum = m, m.Sum
	} else {
		d, err := hash.New(v.ht)
		if err != nil {
			return "", err
		}
		h, sum = d, d.Sum
	}
	for i := 0; i < len(v.in); i++ {
		if _, err := h.Write([]byte{v.in[i]}); err != nil {
			return "", err
		}
	}
	return hash.Encode(v.ht, sum(nil), hash.Hex)
}

// check runs one vector both ways and returns a description of any
// mismatch, or "" if it passed.
func check(v vector) (string, error) {
	got, err := streamed(v)
	if err != nil {
		return "", err
	}
	if got != v.out {
		return fmt.Sprintf("streamed got %s", got), nil
	}
	if got = oneShot[v.ht](v); got != v.out {
		return fmt.Sprintf("one-shot got %s", got), nil
	}
	return "", nil
}

func (v vector) name() string {
	if v.mac {
		return fmt.Sprintf("hmac-%v(%q)", v.ht, truncate(v.in))
	}
	return fmt.Sprintf("%v(%q)", v.ht, truncate(v.in))
}

func truncate(s string) string {
	if len(s) > 20 {
		return s[:20] + "..."
	}
	return s
}

// Run checks every vector and writes a line per vector to w.
//
// It returns cmd.ErrorMismatch if any vector failed.
func Run(ctx context.Context, w io.Writer) error {
	ci := config.GetConfig(ctx)
	failures := make([]string, len(vectors))
	g := new(errgroup.Group)
	g.SetLimit(ci.Concurrency)
	for i, v := range vectors {
		i, v := i, v
		g.Go(func() (err error) {
			failures[i], err = check(v)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	failed := 0
	for i, v := range vectors {
		if failures[i] != "" {
			failed++
			_, _ = fmt.Fprintf(w, "%s: FAILED %s\n", v.name(), failures[i])
			continue
		}
		config.Debugf(v.ht, "vector %s passed", v.name())
		_, _ = fmt.Fprintf(w, "%s: OK\n", v.name())
	}
	if failed > 0 {
		return errors.Wrapf(cmd.ErrorMismatch, "%d of %d vectors failed", failed, len(vectors))
	}
	config.Infof(nil, "All %d vectors passed", len(vectors))
	return nil
}

var commandDefinition = &cobra.Command{
	Use:   "selftest",
	Short: `Check the hashes against published test vectors.`,
	Long: `
Runs the test vectors from RFC 1321, FIPS 180-4, RFC 2202 and RFC 4231
through every supported hash and HMAC, both streamed a byte at a time
and in one shot, and prints OK or FAILED for each.

The exit code is 4 if any vector fails.
`,
	RunE: func(command *cobra.Command, args []string) error {
		if err := cmd.CheckArgs(0, 0, command, args); err != nil {
			return err
		}
		return cmd.Run(command, func() error {
			return Run(context.Background(), os.Stdout)
		})
	},
}
