package model

// ChaosLevel scales how aggressively text is scrambled.
type ChaosLevel int

const (
	// MinChaosLevel is the mildest level.
	MinChaosLevel ChaosLevel = 1
	// MaxChaosLevel enables every stage.
	MaxChaosLevel ChaosLevel = 10
	// DefaultChaosLevel is used when nothing else is configured.
	DefaultChaosLevel ChaosLevel = 5
)

// StageName identifies one transformation of the pipeline.
type StageName string

// Pipeline stages in the order they run.
const (
	StageWhitespace  StageName = "whitespace"
	StagePunctuation StageName = "punctuation"
	StageBraces      StageName = "braces"
	StageBlankLines  StageName = "blank-lines"
	StageOperators   StageName = "operators"
	StageTrailing    StageName = "trailing"
	StageLineSplit   StageName = "line-split"
)

// AllStages lists every stage name in pipeline order.
func AllStages() []StageName {
	return []StageName{
		StageWhitespace,
		StagePunctuation,
		StageBraces,
		StageBlankLines,
		StageOperators,
		StageTrailing,
		StageLineSplit,
	}
}

// IsKnownStage reports whether name is one of AllStages.
func IsKnownStage(name StageName) bool {
	for _, stage := range AllStages() {
		if stage == name {
			return true
		}
	}

	return false
}

// Config is the immutable per-run configuration read by every stage.
type Config struct {
	Level    ChaosLevel
	disabled map[StageName]struct{}
}

// NewConfig builds a Config, clamping level into [MinChaosLevel, MaxChaosLevel].
func NewConfig(level int, disabled ...StageName) Config {
	clamped := ChaosLevel(min(max(level, int(MinChaosLevel)), int(MaxChaosLevel)))

	return Config{Level: clamped}.WithDisabled(disabled...)
}

// WithDisabled returns a copy of c with the given stages switched off.
func (c Config) WithDisabled(stages ...StageName) Config {
	if len(stages) == 0 {
		return c
	}

	disabled := make(map[StageName]struct{}, len(c.disabled)+len(stages))
	for name := range c.disabled {
		disabled[name] = struct{}{}
	}

	for _, name := range stages {
		disabled[name] = struct{}{}
	}

	return Config{Level: c.Level, disabled: disabled}
}

// Enabled reports whether the stage has not been switched off.
func (c Config) Enabled(stage StageName) bool {
	_, off := c.disabled[stage]
	return !off
}

// Settings is the user-facing configuration assembled from the config file and
// command-line flags.
type Settings struct {
	Level          int         `yaml:"level"`
	DryRun         bool        `yaml:"dry_run"`
	Backup         bool        `yaml:"backup"`
	Verbose        bool        `yaml:"verbose"`
	Parallel       int         `yaml:"parallel" validate:"min=1,max=256"`
	Seed           uint64      `yaml:"seed"`
	Extensions     []string    `yaml:"extensions" validate:"min=1,dive,startswith=."`
	Exclude        []string    `yaml:"exclude" validate:"dive,glob"`
	DisabledStages []StageName `yaml:"disabled_stages" validate:"dive,stage"`
	CheckSyntax    bool        `yaml:"check_syntax"`
	Diff           bool        `yaml:"diff"`
	Reports        Path        `yaml:"reports"`
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() Settings {
	return Settings{
		Level:      int(DefaultChaosLevel),
		Backup:     true,
		Parallel:   1,
		Extensions: []string{".java", ".kt"},
		Reports:    ".scramble-reports",
	}
}

// Config derives the pipeline configuration from the settings.
func (s Settings) Config() Config {
	return NewConfig(s.Level, s.DisabledStages...)
}
