// Package version provides the version command.
package version

import (
	"os"

	"github.com/lhash/lhash/cmd"
	"github.com/spf13/cobra"
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
}

var commandDefinition = &cobra.Command{
	Use:   "version",
	Short: `Show the version number.`,
	Long: `Show the lhash version number, the go version and the build target
OS and architecture, the type of executable (static or dynamic) and
the build tags.

For example:

    $ lhash version
    lhash v0.1.0
    - os/type: linux
    - os/arch: amd64
    - go/version: go1.21.6
    - go/linking: static
    - go/tags: none
`,
	RunE: func(command *cobra.Command, args []string) error {
		if err := cmd.CheckArgs(0, 0, command, args); err != nil {
			return err
		}
		cmd.ShowVersion(os.Stdout)
		return nil
	},
}
