// Package commands implements the pipeforge CLI commands.
package commands

import (
	"os"

	"github.com/pipeforge/pipeforge/config"
	"github.com/pipeforge/pipeforge/definition"
	"github.com/pipeforge/pipeforge/errors"
	"github.com/pipeforge/pipeforge/loader"
	"github.com/pipeforge/pipeforge/logger"
	"github.com/spf13/cobra"
)

// loadCatalog applies configuration and loads the artifact named by the
// command's positional argument. All commands that touch definitions come
// through here, so loading stays one-shot and consistent.
func loadCatalog(cmd *cobra.Command, args []string, extraRequired []string) (*definition.Catalog, *config.Config, error) {
	if len(args) == 0 || args[0] == "" {
		return nil, nil, errors.WithHint(
			errors.New("no artifact path given"),
			"pass the compiled definition artifact, e.g. pipeforge publish ./pipelines.so")
	}
	artifact := args[0]

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	if cfg.Publish.Root != "" {
		// Relative target paths resolve against the configured root.
		if err := os.Chdir(cfg.Publish.Root); err != nil {
			return nil, nil, errors.Wrapf(err, "failed to switch to publish root %s", cfg.Publish.Root)
		}
		logger.Debugw("Switched to publish root", "root", cfg.Publish.Root)
	}

	required := append([]string{}, cfg.Loader.Required...)
	required = append(required, extraRequired...)

	catalog, err := loader.New(loader.Options{Required: required}).Load(artifact)
	if err != nil {
		return nil, nil, err
	}
	return catalog, cfg, nil
}

// verbosity returns the root -v flag count.
func verbosity(cmd *cobra.Command) int {
	n, _ := cmd.Flags().GetCount("verbose")
	return n
}
