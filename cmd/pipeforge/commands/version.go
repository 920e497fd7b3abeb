package commands

import (
	"fmt"

	"github.com/pipeforge/pipeforge/version"
	"github.com/spf13/cobra"
)

// VersionCmd prints build information.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print pipeforge version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Get().String())
	},
}
