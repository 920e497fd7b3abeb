package main

import (
	"fmt"
	"os"

	"github.com/pipeforge/pipeforge/cmd/pipeforge/commands"
	"github.com/pipeforge/pipeforge/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pipeforge",
	Short: "pipeforge - publish pipeline definitions and detect drift",
	Long: `pipeforge renders compiled pipeline definitions to YAML files and
detects drift between the files on disk and what the definitions would
produce now.

Definitions live in a compiled Go plugin artifact. pipeforge loads the
artifact, discovers every registered definition, validates each one,
publishes it to its target path, and classifies the write as created,
unchanged, or changed.

Examples:
  pipeforge publish ./pipelines.so                     # publish all definitions
  pipeforge publish ./pipelines.so --fail-if-changed   # CI verification step
  pipeforge list ./pipelines.so                        # show what would publish
  pipeforge watch ./pipelines.so                       # report out-of-band drift live`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.Initialize(verbosity, jsonOutput); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json", false, "Emit machine-readable JSON log lines")

	rootCmd.AddCommand(commands.PublishCmd)
	rootCmd.AddCommand(commands.ListCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
