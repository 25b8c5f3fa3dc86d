package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/scramble/internal/domain"
	m "github.com/mouse-blink/scramble/internal/model"
)

const runLongDescription = `Scramble rewrites Java and Kotlin sources with randomized formatting noise:
indentation, spacing around punctuation and operators, brace placement, blank
lines, trailing spaces and line splits. The chaos level (1-10) decides which
transformations run and how often they fire.

Directories are scanned recursively; "dir/..." is accepted as well:
  - scramble src              scramble every .java/.kt file under src
  - scramble -d --diff src    preview the changes without writing
  - scramble -l 9 A.java      scramble one file at a high level

Targets are backed up next to themselves before any file is written unless
--no-backup or --dry-run is given. Files whose header comments contain
"scramble:ignore" are skipped.`

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [flags] <paths...>",
		Short: "Scramble source files (same as the root command)",
		Long:  runLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runScramble,
	}

	addRunFlags(cmd)

	return cmd
}

func runScramble(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	return workflowFactory(cmd, settings).Run(cmd.Context(), domain.RunArgs{
		EstimateArgs: domain.EstimateArgs{
			Paths:  parsePaths(args),
			Filter: filterFor(settings),
		},
		Config:      settings.Config(),
		DryRun:      settings.DryRun,
		Backup:      settings.Backup,
		Threads:     settings.Parallel,
		CheckSyntax: settings.CheckSyntax,
		Diff:        settings.Diff,
		Verbose:     settings.Verbose,
		Reports:     settings.Reports,
	})
}

func filterFor(settings m.Settings) m.SourceFilter {
	return m.SourceFilter{Extensions: settings.Extensions, Exclude: settings.Exclude}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
