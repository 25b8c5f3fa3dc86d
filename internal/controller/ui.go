// Package controller provides the user-facing output of scramble runs.
package controller

import (
	m "github.com/mouse-blink/scramble/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeEstimate StartMode = iota
	ModeRun
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode    StartMode
	verbose bool
}

// WithEstimateMode sets the UI to list discovered sources.
func WithEstimateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEstimate
	}
}

// WithRunMode sets the UI to follow a scramble run.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithViewMode sets the UI to browse saved run reports.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// WithVerbose makes the UI report every processed file, not only failures.
func WithVerbose(verbose bool) StartOption {
	return func(c *StartConfig) {
		c.verbose = verbose
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	var cfg StartConfig
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI displays the progress and results of the workflow.
// Implementations must accept Display calls from several goroutines.
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayEstimation(sources []m.Source, err error) error
	DisplayRunInfo(info m.RunInfo)
	DisplayBackup(target, backup m.Path)
	DisplayFileResult(result m.FileResult)
	DisplaySummary(report m.RunReport)
	DisplayReports(reports []m.RunReport, err error) error
}
