// Package cmd implements the lhash command
//
// It is in a sub package so it's internals can be re-used elsewhere
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/lhash/lhash/config"
	"github.com/lhash/lhash/config/configflags"
	"github.com/lhash/lhash/lib/buildinfo"
	"github.com/lhash/lhash/lib/exitcode"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Version of lhash, overridden at link time
var Version = "v0.1.0-DEV"

// Errors
var (
	errorNotEnoughArguments = errors.New("not enough arguments")
	errorTooManyArguments   = errors.New("too many arguments")
	// ErrorMismatch is returned when a checksum does not match
	ErrorMismatch = errors.New("checksum mismatch")
	// ErrorUsage is returned for flags or arguments which can't be used together
	ErrorUsage = errors.New("usage error")
)

// Root is the main lhash command
var Root = &cobra.Command{
	Use:   "lhash",
	Short: "Compute message digests and HMACs",
	Long: `
lhash computes MD5, SHA-1, SHA-256 and SHA-512 digests of files or
standard input and keyed HMACs over them.

Run "lhash hashsum" to see the supported hashes.
`,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

func init() {
	configflags.AddFlags(config.GetConfig(context.Background()), Root.PersistentFlags())
}

// ShowVersion prints the version to w
func ShowVersion(w io.Writer) {
	_, _ = fmt.Fprintf(w, "lhash %s\n", Version)
	_, _ = fmt.Fprintf(w, "- os/type: %s\n", runtime.GOOS)
	_, _ = fmt.Fprintf(w, "- os/arch: %s\n", runtime.GOARCH)
	_, _ = fmt.Fprintf(w, "- go/version: %s\n", runtime.Version())
	linking, tags := buildinfo.GetLinkingAndTags()
	_, _ = fmt.Fprintf(w, "- go/linking: %s\n", linking)
	_, _ = fmt.Fprintf(w, "- go/tags: %s\n", tags)
}

// CheckArgs checks there are enough arguments and returns an error if not
func CheckArgs(MinArgs, MaxArgs int, cmd *cobra.Command, args []string) error {
	if len(args) < MinArgs {
		_ = cmd.Usage()
		return errors.Wrapf(errorNotEnoughArguments, "command %s needs %d arguments minimum: you provided %d non flag arguments: %q", cmd.Name(), MinArgs, len(args), args)
	} else if len(args) > MaxArgs {
		_ = cmd.Usage()
		return errors.Wrapf(errorTooManyArguments, "command %s needs %d arguments maximum: you provided %d non flag arguments: %q", cmd.Name(), MaxArgs, len(args), args)
	}
	return nil
}

// Run the function and log the error if there was one
func Run(cmd *cobra.Command, f func() error) error {
	err := f()
	config.Debugf(nil, "%d go routines active", runtime.NumGoroutine())
	if err != nil {
		config.Errorf(nil, "Failed to %s: %v", cmd.Name(), err)
	}
	return err
}

// initConfig is run by cobra after initialising the flags
func initConfig(command *cobra.Command, args []string) error {
	ci := config.GetConfig(context.Background())

	// Finish parsing any command line flags
	if err := configflags.SetFlags(ci, command.Root().PersistentFlags()); err != nil {
		return err
	}

	// Start the logger
	config.InitLogging(context.Background())

	// Write the args for debug purposes
	config.Debugf("lhash", "Version %q starting with parameters %q", Version, os.Args)
	return nil
}

// exitCode maps the error from a command to the process exit code
func exitCode(err error) int {
	cause := errors.Cause(err)
	switch {
	case err == nil:
		return exitcode.Success
	case cause == ErrorMismatch:
		return exitcode.Mismatch
	case cause == errorNotEnoughArguments, cause == errorTooManyArguments, cause == ErrorUsage:
		return exitcode.UsageError
	case os.IsNotExist(cause):
		return exitcode.FileNotFound
	default:
		return exitcode.UncategorizedError
	}
}

// Main runs lhash
func Main() {
	err := Root.Execute()
	if err != nil && errors.Cause(err) != ErrorMismatch {
		log.Printf("Fatal error: %v", err)
	}
	os.Exit(exitCode(err))
}
