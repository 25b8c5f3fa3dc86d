package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/scramble/internal/model"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	return NewSimpleUI(cmd), &buf
}

func assertOutputContains(t *testing.T, output string, wants ...string) {
	t.Helper()

	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayEstimation_PrintsTable(t *testing.T) {
	ui, buf := newTestSimpleUI()

	sources := []m.Source{
		{Origin: &m.File{Path: "src/b/B.kt"}, Lines: 8},
		{Origin: &m.File{Path: "src/a/A.java"}, Lines: 26},
		{Origin: nil, Lines: 99},
	}

	if err := ui.DisplayEstimation(sources, nil); err != nil {
		t.Fatalf("DisplayEstimation() error = %v", err)
	}

	output := buf.String()
	assertOutputContains(t, output, "src/a/A.java", "src/b/B.kt", "26", "8", "TOTAL FILES 2", "34")

	if strings.Index(output, "src/a/A.java") > strings.Index(output, "src/b/B.kt") {
		t.Fatalf("paths are not sorted\noutput:\n%s", output)
	}
}

func TestSimpleUI_DisplayEstimation_Empty(t *testing.T) {
	ui, buf := newTestSimpleUI()

	if err := ui.DisplayEstimation(nil, nil); err != nil {
		t.Fatalf("DisplayEstimation() error = %v", err)
	}

	assertOutputContains(t, buf.String(), "No source files found")
}

func TestSimpleUI_DisplayEstimation_Error(t *testing.T) {
	ui, buf := newTestSimpleUI()
	boom := errors.New("boom")

	if err := ui.DisplayEstimation(nil, boom); !errors.Is(err, boom) {
		t.Fatalf("DisplayEstimation() error = %v, want boom", err)
	}

	assertOutputContains(t, buf.String(), "estimation error: boom")
}

func TestSimpleUI_DisplayRunInfo(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplayRunInfo(m.RunInfo{Targets: []m.Path{"src", "lib"}, Files: 3, Level: 7, Threads: 2, DryRun: true})
	assertOutputContains(t, buf.String(), "Scrambling 3 file(s) in src, lib at level 7 with 2 worker(s)", "Dry run")

	buf.Reset()
	ui.DisplayRunInfo(m.RunInfo{Files: 1, Level: 5, Threads: 1})
	assertOutputContains(t, buf.String(), "Backup disabled")

	buf.Reset()
	ui.DisplayRunInfo(m.RunInfo{Files: 1, Level: 5, Threads: 1, Backup: true})

	if strings.Contains(buf.String(), "Backup disabled") || strings.Contains(buf.String(), "Dry run") {
		t.Fatalf("unexpected notice\noutput:\n%s", buf.String())
	}
}

func TestSimpleUI_DisplayBackup(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplayBackup("/work/app", "/work/app_backup_20240305_140709")
	assertOutputContains(t, buf.String(), "Backup of /work/app created at /work/app_backup_20240305_140709")
}

func TestSimpleUI_DisplayFileResult(t *testing.T) {
	changed := m.FileResult{
		Source:        m.Source{Origin: &m.File{Path: "/src/A.java"}},
		Status:        m.StatusChanged,
		LinesAffected: 12,
	}

	t.Run("quiet mode hides successful files", func(t *testing.T) {
		ui, buf := newTestSimpleUI()
		_ = ui.Start(WithRunMode())

		ui.DisplayFileResult(changed)
		ui.DisplayFileResult(m.FileResult{Source: changed.Source, Status: m.StatusIgnored})

		if buf.Len() != 0 {
			t.Fatalf("quiet mode printed %q", buf.String())
		}
	})

	t.Run("verbose mode lists every file", func(t *testing.T) {
		ui, buf := newTestSimpleUI()
		_ = ui.Start(WithRunMode(), WithVerbose(true))

		ui.DisplayFileResult(changed)
		ui.DisplayFileResult(m.FileResult{Source: m.Source{Origin: &m.File{Path: "/src/B.java"}}, Status: m.StatusIgnored})

		assertOutputContains(t, buf.String(), "changed   /src/A.java (12 lines)", "ignored   /src/B.java")
	})

	t.Run("failures are always printed", func(t *testing.T) {
		ui, buf := newTestSimpleUI()

		ui.DisplayFileResult(m.FileResult{
			Source: changed.Source,
			Status: m.StatusFailed,
			Err:    errors.New("permission denied"),
		})

		assertOutputContains(t, buf.String(), "FAILED /src/A.java: permission denied")
	})

	t.Run("syntax regressions and diffs are always printed", func(t *testing.T) {
		ui, buf := newTestSimpleUI()

		result := changed
		result.SyntaxChecked = true
		result.SyntaxBefore = 0
		result.SyntaxAfter = 2
		result.Diff = "--- /src/A.java (original)\n+++ /src/A.java (scrambled)"

		ui.DisplayFileResult(result)

		output := buf.String()
		assertOutputContains(t, output, "WARNING /src/A.java: syntax errors 0 -> 2", "+++ /src/A.java (scrambled)\n")
	})
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, buf := newTestSimpleUI()

	started := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

	ui.DisplaySummary(m.RunReport{
		ID:         "run-1",
		StartedAt:  started,
		FinishedAt: started.Add(1500 * time.Millisecond),
		DryRun:     true,
		Stats: m.RunStats{
			FilesScanned:      5,
			FilesChanged:      3,
			LinesAffected:     120,
			FilesIgnored:      1,
			FilesFailed:       1,
			SyntaxRegressions: 2,
		},
	})

	assertOutputContains(t, buf.String(),
		"METRIC", "Files scanned", "Files changed", "120", "Syntax regressions",
		"Dry run: no files were written", "Run run-1 finished in 1.5s")
}

func TestSimpleUI_DisplayReports(t *testing.T) {
	ui, buf := newTestSimpleUI()

	reports := []m.RunReport{
		{
			ID:        "0f8fad5b-d9cb-469f-a165-70867728950e",
			StartedAt: time.Date(2024, 3, 5, 14, 7, 9, 0, time.Local),
			Level:     9,
			DryRun:    true,
			Stats:     m.RunStats{FilesScanned: 4, FilesChanged: 2},
		},
		{ID: "short", Level: 5},
	}

	if err := ui.DisplayReports(reports, nil); err != nil {
		t.Fatalf("DisplayReports() error = %v", err)
	}

	assertOutputContains(t, buf.String(), "RUN", "STARTED", "0f8fad5b", "2024-03-05 14:07:09", "dry-run", "write", "short")

	if strings.Contains(buf.String(), "d9cb-469f") {
		t.Fatalf("run ids should be shortened\noutput:\n%s", buf.String())
	}
}

func TestSimpleUI_DisplayReports_EmptyAndError(t *testing.T) {
	ui, buf := newTestSimpleUI()

	if err := ui.DisplayReports(nil, nil); err != nil {
		t.Fatalf("DisplayReports() error = %v", err)
	}

	assertOutputContains(t, buf.String(), "No run reports found")

	boom := errors.New("boom")
	if err := ui.DisplayReports(nil, boom); !errors.Is(err, boom) {
		t.Fatalf("DisplayReports() error = %v, want boom", err)
	}

	assertOutputContains(t, buf.String(), "report error: boom")
}

func TestSimpleUI_StartWaitClose(t *testing.T) {
	ui, buf := newTestSimpleUI()

	if err := ui.Start(WithEstimateMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ui.Wait()
	ui.Close()

	if buf.Len() != 0 {
		t.Fatalf("lifecycle calls printed %q", buf.String())
	}
}
