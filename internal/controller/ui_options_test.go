package controller

import "testing"

func TestStartOptions(t *testing.T) {
	cfg := &StartConfig{}
	WithEstimateMode()(cfg)
	if cfg.mode != ModeEstimate {
		t.Fatalf("WithEstimateMode() mode = %v, want %v", cfg.mode, ModeEstimate)
	}

	WithRunMode()(cfg)
	if cfg.mode != ModeRun {
		t.Fatalf("WithRunMode() mode = %v, want %v", cfg.mode, ModeRun)
	}

	WithViewMode()(cfg)
	if cfg.mode != ModeView {
		t.Fatalf("WithViewMode() mode = %v, want %v", cfg.mode, ModeView)
	}

	WithVerbose(true)(cfg)
	if !cfg.verbose {
		t.Fatalf("WithVerbose(true) did not set verbose")
	}
}

func TestNewStartConfig_Defaults(t *testing.T) {
	cfg := newStartConfig()
	if cfg.mode != ModeEstimate || cfg.verbose {
		t.Fatalf("newStartConfig() = %+v, want estimate mode without verbose", cfg)
	}

	cfg = newStartConfig(WithRunMode(), WithVerbose(true))
	if cfg.mode != ModeRun || !cfg.verbose {
		t.Fatalf("newStartConfig(run, verbose) = %+v", cfg)
	}
}
