// Package hashsum provides the hashsum command.
package hashsum

import (
	"bytes"
	"context"
	"fmt"
	gohash "hash"
	"io"
	"os"

	"github.com/lhash/lhash/cmd"
	"github.com/lhash/lhash/config"
	"github.com/lhash/lhash/config/flags"
	"github.com/lhash/lhash/hash"
	"github.com/lhash/lhash/lib/readers"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

var (
	outputBase64 = false
	checkSum     = ""
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
	cmdFlags := commandDefinition.Flags()
	AddHashFlags(cmdFlags)
}

// AddHashFlags is a convenience function to add the command flags
// shared by hashsum and hmacsum
func AddHashFlags(cmdFlags *pflag.FlagSet) {
	flags.BoolVarP(cmdFlags, &outputBase64, "base64", "", outputBase64, "Output base64 encoded hashsum")
	flags.StringVarP(cmdFlags, &checkSum, "check", "C", checkSum, "Compare the single input against this checksum")
}

// Opener opens a named input. The name "-" means standard input.
type Opener func(name string) (io.ReadCloser, error)

// OpenFile is the Opener used by the commands
func OpenFile(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

// Result is the checksum of one input
type Result struct {
	Name string
	Sum  []byte
}

// SumInputs hashes each of names with a hasher from newHash.
//
// Up to Concurrency inputs from the config are read in parallel, each
// with its own hasher. The results are in the same order as names.
func SumInputs(ctx context.Context, names []string, open Opener, newHash func() (gohash.Hash, error)) ([]Result, error) {
	ci := config.GetConfig(ctx)
	results := make([]Result, len(names))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(ci.Concurrency)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			h, err := newHash()
			if err != nil {
				return err
			}
			in, err := open(name)
			if err != nil {
				return errors.Wrapf(err, "failed to open %q", name)
			}
			cr := readers.NewContextReader(gCtx, in)
			_, err = io.Copy(h, cr)
			closeErr := in.Close()
			if err != nil {
				return errors.Wrapf(err, "failed to read %q", name)
			}
			if closeErr != nil {
				return errors.Wrapf(closeErr, "failed to close %q", name)
			}
			config.Infof(name, "Hashed %d bytes", cr.BytesRead())
			results[i] = Result{Name: name, Sum: h.Sum(nil)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Print writes results in the format of the md5sum tool
func Print(w io.Writer, ht hash.Type, results []Result, enc hash.Encoding) error {
	for _, r := range results {
		s, err := hash.Encode(ht, r.Sum, enc)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintf(w, "%s  %s\n", s, r.Name); err != nil {
			return err
		}
	}
	return nil
}

// Check compares the single result against want, parsed with enc.
//
// It prints an OK or FAILED line and returns cmd.ErrorMismatch when
// the checksums differ.
func Check(w io.Writer, ht hash.Type, results []Result, want string, enc hash.Encoding) error {
	if len(results) != 1 {
		return errors.Errorf("--check needs exactly one input, got %d", len(results))
	}
	_, wantSum, err := hash.Decode(ht, want, enc)
	if err != nil {
		return err
	}
	r := results[0]
	if !bytes.Equal(wantSum, r.Sum) {
		_, _ = fmt.Fprintf(w, "%s: FAILED\n", r.Name)
		return errors.Wrap(cmd.ErrorMismatch, r.Name)
	}
	_, err = fmt.Fprintf(w, "%s: OK\n", r.Name)
	return err
}

// OutputEncoding returns the encoding picked by --encoding and --base64
func OutputEncoding(ctx context.Context) hash.Encoding {
	if outputBase64 {
		return hash.Base64
	}
	return config.GetConfig(ctx).Encoding
}

// Output prints or checks results following the command flags
func Output(ctx context.Context, w io.Writer, ht hash.Type, results []Result) error {
	enc := OutputEncoding(ctx)
	if checkSum != "" {
		return Check(w, ht, results, checkSum, enc)
	}
	return Print(w, ht, results, enc)
}

// ParseArgs reads the hash type and the inputs from args. With no
// inputs standard input is used. Standard input may be named once.
func ParseArgs(args []string) (hash.Type, []string, error) {
	var ht hash.Type
	if err := ht.Set(args[0]); err != nil {
		return hash.None, nil, err
	}
	if ht == hash.None {
		return hash.None, nil, hash.ErrUnsupported
	}
	names := args[1:]
	stdin := 0
	for _, name := range names {
		if name == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return hash.None, nil, errors.Wrap(cmd.ErrorUsage, `standard input "-" can only be read once`)
	}
	if len(names) == 0 {
		names = []string{"-"}
	}
	return ht, names, nil
}

// ListHashes prints the supported hashes
func ListHashes(w io.Writer) {
	_, _ = fmt.Fprintf(w, "Supported hashes are:\n")
	for _, ht := range hash.Supported().Array() {
		_, _ = fmt.Fprintf(w, "  * %v\n", ht)
	}
}

var commandDefinition = &cobra.Command{
	Use:   "hashsum <hash> [input...]",
	Short: `Produces a hashsum file for the inputs.`,
	Long: `
Produces a hash file for the inputs using the hash named. The output
is in the same format as the standard md5sum/sha1sum tool. With no
inputs, or an input of "-", standard input is read.

Run without a hash to see the list of supported hashes, e.g.

    $ lhash hashsum
    Supported hashes are:
      * md5
      * sha1
      * sha256
      * sha512

Then

    $ lhash hashsum sha256 file.txt

Use --encoding to print base64, multihash or multibase checksums and
--check to verify a single input against a known checksum.
`,
	RunE: func(command *cobra.Command, args []string) error {
		if err := cmd.CheckArgs(0, 1<<16, command, args); err != nil {
			return err
		}
		if len(args) == 0 {
			ListHashes(os.Stdout)
			return nil
		}
		ht, names, err := ParseArgs(args)
		if err != nil {
			return err
		}
		return cmd.Run(command, func() error {
			ctx := context.Background()
			results, err := SumInputs(ctx, names, OpenFile, func() (gohash.Hash, error) {
				return hash.New(ht)
			})
			if err != nil {
				return err
			}
			return Output(ctx, os.Stdout, ht, results)
		})
	},
}
