package cmd

import (
	"bytes"
	"os"
	"runtime"
	"testing"

	"github.com/lhash/lhash/lib/exitcode"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestCheckArgs(t *testing.T) {
	c := &cobra.Command{Use: "test"}
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})

	assert.NoError(t, CheckArgs(1, 2, c, []string{"a"}))
	assert.NoError(t, CheckArgs(1, 2, c, []string{"a", "b"}))

	err := CheckArgs(1, 2, c, nil)
	assert.Equal(t, errorNotEnoughArguments, errors.Cause(err))
	err = CheckArgs(1, 2, c, []string{"a", "b", "c"})
	assert.Equal(t, errorTooManyArguments, errors.Cause(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitcode.Success, exitCode(nil))
	assert.Equal(t, exitcode.Mismatch, exitCode(errors.Wrap(ErrorMismatch, "input")))
	assert.Equal(t, exitcode.UsageError, exitCode(errors.Wrap(errorTooManyArguments, "x")))
	assert.Equal(t, exitcode.UsageError, exitCode(errors.Wrap(ErrorUsage, "x")))
	assert.Equal(t, exitcode.UncategorizedError, exitCode(errors.New("boom")))
	_, err := os.Open("/this/does/not/exist")
	assert.Equal(t, exitcode.FileNotFound, exitCode(errors.Wrap(err, "open")))
}

func TestShowVersion(t *testing.T) {
	var buf bytes.Buffer
	ShowVersion(&buf)
	assert.Contains(t, buf.String(), "lhash "+Version)
	assert.Contains(t, buf.String(), runtime.GOARCH)
}

func TestRun(t *testing.T) {
	c := &cobra.Command{Use: "test"}
	assert.NoError(t, Run(c, func() error { return nil }))
	boom := errors.New("boom")
	assert.Equal(t, boom, Run(c, func() error { return boom }))
}
