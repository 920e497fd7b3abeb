package commands

import (
	"github.com/pipeforge/pipeforge/definition"
	"github.com/pipeforge/pipeforge/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// ListCmd shows the definitions an artifact registers without publishing.
var ListCmd = &cobra.Command{
	Use:   "list <artifact>",
	Short: "List the pipeline definitions registered by an artifact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, _, err := loadCatalog(cmd, args, nil)
		if err != nil {
			return renderFatal(cmd, err)
		}

		discovered, err := definition.Discover(catalog)
		if err != nil {
			return renderFatal(cmd, err)
		}
		if len(discovered) == 0 {
			return renderFatal(cmd, errors.WithStack(errors.ErrNoDefinitions))
		}

		rows := pterm.TableData{{"Definition", "Version", "Target"}}
		for _, d := range discovered {
			rows = append(rows, []string{d.Name, d.Version, d.Definition.TargetPath()})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	},
}
