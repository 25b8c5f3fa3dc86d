package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/scramble/internal/adapter"
	m "github.com/mouse-blink/scramble/internal/model"
)

var configFlag string
var reportsFlag string
var verboseFlag bool
var excludeFlags []string

var dryRunFlag bool
var noBackupFlag bool
var levelFlag int
var parallelFlag int
var seedFlag uint64
var checkSyntaxFlag bool
var diffFlag bool
var skipStageFlags []string

func addPersistentFlags(cmd *cobra.Command) {
	defaults := m.DefaultSettings()

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFlag, "config", adapter.DefaultConfigFile, "config file; a missing default file is ignored")
	flags.StringVar(&reportsFlag, "reports", string(defaults.Reports), "directory for run reports, empty disables them")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "print every processed file and debug logs")
	flags.StringArrayVarP(&excludeFlags, "exclude", "x", nil, "skip files and directories matching a glob (can be repeated)")
}

func addRunFlags(cmd *cobra.Command) {
	defaults := m.DefaultSettings()

	flags := cmd.Flags()
	flags.BoolVarP(&dryRunFlag, "dry-run", "d", false, "scramble in memory only, write nothing")
	flags.BoolVar(&noBackupFlag, "no-backup", false, "do not copy targets before writing")
	flags.IntVarP(&levelFlag, "level", "l", defaults.Level, "chaos level 1-10, out of range values are clamped")
	flags.IntVarP(&parallelFlag, "parallel", "p", defaults.Parallel, "number of files processed concurrently")
	flags.Uint64Var(&seedFlag, "seed", 0, "random seed for reproducible output, 0 picks one")
	flags.BoolVar(&checkSyntaxFlag, "check-syntax", false, "parse Java files before and after and report new syntax errors")
	flags.BoolVar(&diffFlag, "diff", false, "show a diff for every changed file")
	flags.StringArrayVar(&skipStageFlags, "skip-stage", nil, "disable a stage by name (can be repeated)")
}

// loadSettings layers the config file and the flags set on cmd over the defaults.
func loadSettings(cmd *cobra.Command) (m.Settings, error) {
	flags := cmd.Flags()

	settings, err := configLoader.Load(m.Path(configFlag), flags.Changed("config"))
	if err != nil {
		return m.Settings{}, err
	}

	if flags.Changed("reports") {
		settings.Reports = m.Path(reportsFlag)
	}

	if flags.Changed("verbose") {
		settings.Verbose = verboseFlag
	}

	settings.Exclude = append(settings.Exclude, excludeFlags...)

	if flags.Changed("dry-run") {
		settings.DryRun = dryRunFlag
	}

	if flags.Changed("no-backup") {
		settings.Backup = !noBackupFlag
	}

	if flags.Changed("level") {
		settings.Level = levelFlag
	}

	if flags.Changed("parallel") {
		settings.Parallel = parallelFlag
	}

	if flags.Changed("seed") {
		settings.Seed = seedFlag
	}

	if flags.Changed("check-syntax") {
		settings.CheckSyntax = checkSyntaxFlag
	}

	if flags.Changed("diff") {
		settings.Diff = diffFlag
	}

	for _, stage := range skipStageFlags {
		settings.DisabledStages = append(settings.DisabledStages, m.StageName(stage))
	}

	if err := adapter.ValidateSettings(settings); err != nil {
		return m.Settings{}, fmt.Errorf("flags: %w", err)
	}

	return settings, nil
}
