package model

import "time"

// ScrambleResult is the outcome of running the pipeline over one text.
type ScrambleResult struct {
	Text string
	// Changed is false when Text is byte-identical to the input.
	Changed bool
	// Applied lists the stages that ran, in order.
	Applied []StageName
}

// FileStatus describes what happened to a single file during a run.
type FileStatus string

// Available FileStatus values.
const (
	StatusChanged   FileStatus = "changed"
	StatusUnchanged FileStatus = "unchanged"
	StatusIgnored   FileStatus = "ignored"
	StatusFailed    FileStatus = "failed"
)

// FileResult holds the outcome of processing one source file.
type FileResult struct {
	Source        Source
	Status        FileStatus
	Applied       []StageName
	LinesAffected int
	Diff          string
	SyntaxChecked bool
	SyntaxBefore  int
	SyntaxAfter   int
	Err           error
}

// SyntaxRegressed reports whether the scrambled file parses worse than the original.
func (r FileResult) SyntaxRegressed() bool {
	return r.SyntaxChecked && r.SyntaxAfter > r.SyntaxBefore
}

// RunInfo describes a run before any file is touched.
type RunInfo struct {
	Targets []Path
	Level   ChaosLevel
	DryRun  bool
	Backup  bool
	Threads int
	Files   int
}

// RunStats aggregates counters over a run.
type RunStats struct {
	FilesScanned      int `yaml:"files_scanned"`
	FilesChanged      int `yaml:"files_changed"`
	LinesAffected     int `yaml:"lines_affected"`
	FilesIgnored      int `yaml:"files_ignored"`
	FilesFailed       int `yaml:"files_failed"`
	SyntaxRegressions int `yaml:"syntax_regressions"`
}

// FileReport is the persisted summary of one FileResult.
type FileReport struct {
	Path             Path        `yaml:"path"`
	Hash             string      `yaml:"hash,omitempty"`
	Status           FileStatus  `yaml:"status"`
	Applied          []StageName `yaml:"applied,omitempty"`
	LinesAffected    int         `yaml:"lines_affected,omitempty"`
	SyntaxRegression bool        `yaml:"syntax_regression,omitempty"`
	Error            string      `yaml:"error,omitempty"`
}

// RunReport is the persisted record of one run.
type RunReport struct {
	ID         string       `yaml:"id"`
	StartedAt  time.Time    `yaml:"started_at"`
	FinishedAt time.Time    `yaml:"finished_at"`
	Targets    []Path       `yaml:"targets"`
	Level      ChaosLevel   `yaml:"level"`
	DryRun     bool         `yaml:"dry_run"`
	Backups    []Path       `yaml:"backups,omitempty"`
	Stats      RunStats     `yaml:"stats"`
	Files      []FileReport `yaml:"files"`
}
