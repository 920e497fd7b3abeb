package commands

import (
	"fmt"

	"github.com/pipeforge/pipeforge/errors"
	"github.com/pipeforge/pipeforge/logger"
	"github.com/pipeforge/pipeforge/publish"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	publishFailIfChanged bool
	publishRequired      []string
)

// PublishCmd publishes every discovered definition and reports drift.
var PublishCmd = &cobra.Command{
	Use:   "publish <artifact>",
	Short: "Publish all pipeline definitions from a compiled artifact",
	Long: `Publish loads the compiled definition artifact, discovers every
registered pipeline definition, validates each one, renders it to its
target file, and classifies the write as created, unchanged, or changed.

With --fail-if-changed, any created or changed classification fails the
run even though the files are still written. Use this as a CI step to
verify that generated pipelines were committed before the build ran.

Examples:
  pipeforge publish ./pipelines.so
  pipeforge publish ./pipelines.so --fail-if-changed
  pipeforge publish ./pipelines.so --required shared-steps.so`,
	Args: cobra.ExactArgs(1),
	RunE: runPublish,
}

func init() {
	PublishCmd.Flags().BoolVar(&publishFailIfChanged, "fail-if-changed", false,
		"Fail the run when any pipeline file is created or changed")
	PublishCmd.Flags().StringSliceVar(&publishRequired, "required", nil,
		"Sibling artifacts that must load before the primary (repeatable)")
}

func runPublish(cmd *cobra.Command, args []string) error {
	catalog, cfg, err := loadCatalog(cmd, args, publishRequired)
	if err != nil {
		return renderFatal(cmd, err)
	}

	failIfChanged := publishFailIfChanged || cfg.Publish.FailIfChanged

	result, err := publish.New(publish.Options{FailIfChanged: failIfChanged}).Run(cmd.Context(), catalog)
	if err != nil {
		return renderFatal(cmd, err)
	}

	renderSummary(result)

	if !result.Success() {
		drifted := result.Drifted()
		return errors.Newf("%d pipeline(s) drifted and --fail-if-changed is set (first: %s)",
			len(drifted), drifted[0].Definition)
	}
	return nil
}

// renderSummary prints the per-definition outcome table.
func renderSummary(result *publish.RunResult) {
	if logger.JSONOutput {
		// The zap JSON stream already carries everything; no table.
		return
	}

	rows := pterm.TableData{{"Definition", "Outcome", "Path"}}
	for _, rep := range result.Reports {
		detail := rep.Path
		if rep.Err != nil {
			detail = rep.Err.Error()
		}
		rows = append(rows, []string{rep.Definition, string(rep.Outcome), detail})
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()

	failed := result.Count(publish.OutcomeValidationFailed) + result.Count(publish.OutcomePublishError)
	if failed > 0 {
		pterm.Warning.Printfln("%d of %d definition(s) failed", failed, len(result.Reports))
	} else {
		pterm.Success.Printfln("Published %d definition(s)", len(result.Reports))
	}
}

// renderFatal logs a fatal run error, with full detail at -vvv.
func renderFatal(cmd *cobra.Command, err error) error {
	if logger.ShouldLogStacks(verbosity(cmd)) {
		logger.Errorf("%+v", err)
	}
	for _, hint := range errors.GetAllHints(err) {
		logger.Warnf("hint: %s", hint)
	}
	return fmt.Errorf("publish failed: %w", err)
}
