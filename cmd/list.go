package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/scramble/internal/domain"
)

const listLongDescription = `List the source files a run would touch, with their line counts.

Uses the same discovery rules as a run: configured extensions, exclusion
globs and recursive directory walks. Nothing is read beyond what is needed to
count lines and nothing is written.`

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <paths...>",
		Short: "List source files that would be scrambled",
		Long:  listLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			return workflowFactory(cmd, settings).Estimate(domain.EstimateArgs{
				Paths:  parsePaths(args),
				Filter: filterFor(settings),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
