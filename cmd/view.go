package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/scramble/internal/domain"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View reports of previous runs",
		Long:  "View the reports previous runs saved in the reports directory (--reports).",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			return workflowFactory(cmd, settings).View(domain.ViewArgs{Reports: settings.Reports})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
