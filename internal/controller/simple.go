package controller

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/scramble/internal/model"
)

// SimpleUI implements UI with plain text written through the cobra command.
// Failures, syntax regressions and diffs are always printed; other per-file
// lines only in verbose mode.
type SimpleUI struct {
	cmd     *cobra.Command
	mu      sync.Mutex
	verbose bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options...)

	s.mu.Lock()
	s.verbose = cfg.verbose
	s.mu.Unlock()

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; there is nothing to dismiss.
func (s *SimpleUI) Wait() {}

// DisplayEstimation prints the discovered sources as a table.
func (s *SimpleUI) DisplayEstimation(sources []m.Source, err error) error {
	if err != nil {
		s.printf("estimation error: %v\n", err)
		return err
	}

	lines := make(map[string]int)

	for _, source := range sources {
		if source.Origin == nil {
			continue
		}

		lines[string(source.Origin.Path)] = source.Lines
	}

	if len(lines) == 0 {
		s.printf("No source files found\n")
		return nil
	}

	paths := make([]string, 0, len(lines))
	for path := range lines {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer)
	table.SetHeader([]string{"Path", "Lines"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	total := 0

	for _, path := range paths {
		table.Append([]string{path, fmt.Sprintf("%d", lines[path])})
		total += lines[path]
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(paths)),
		fmt.Sprintf("%d", total),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayRunInfo prints the run parameters.
func (s *SimpleUI) DisplayRunInfo(info m.RunInfo) {
	targets := make([]string, 0, len(info.Targets))
	for _, target := range info.Targets {
		targets = append(targets, string(target))
	}

	s.printf("Scrambling %d file(s) in %s at level %d with %d worker(s)\n",
		info.Files, strings.Join(targets, ", "), info.Level, info.Threads)

	switch {
	case info.DryRun:
		s.printf("Dry run: no files will be written\n")
	case !info.Backup && info.Files > 0:
		s.printf("Backup disabled\n")
	}
}

// DisplayBackup prints where a target was copied.
func (s *SimpleUI) DisplayBackup(target, backup m.Path) {
	s.printf("Backup of %s created at %s\n", target, backup)
}

// DisplayFileResult prints one processed file.
func (s *SimpleUI) DisplayFileResult(result m.FileResult) {
	s.mu.Lock()
	verbose := s.verbose
	s.mu.Unlock()

	path := ""
	if result.Source.Origin != nil {
		path = string(result.Source.Origin.Path)
	}

	var b strings.Builder

	switch {
	case result.Status == m.StatusFailed:
		fmt.Fprintf(&b, "FAILED %s: %v\n", path, result.Err)
	case verbose && result.Status == m.StatusChanged:
		fmt.Fprintf(&b, "%-9s %s (%d lines)\n", result.Status, path, result.LinesAffected)
	case verbose:
		fmt.Fprintf(&b, "%-9s %s\n", result.Status, path)
	}

	if result.SyntaxRegressed() {
		fmt.Fprintf(&b, "WARNING %s: syntax errors %d -> %d\n", path, result.SyntaxBefore, result.SyntaxAfter)
	}

	if result.Diff != "" {
		b.WriteString(result.Diff)

		if !strings.HasSuffix(result.Diff, "\n") {
			b.WriteString("\n")
		}
	}

	if b.Len() > 0 {
		s.printf("%s", b.String())
	}
}

// DisplaySummary prints the run statistics.
func (s *SimpleUI) DisplaySummary(report m.RunReport) {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	stats := report.Stats
	table.AppendBulk([][]string{
		{"Files scanned", fmt.Sprintf("%d", stats.FilesScanned)},
		{"Files changed", fmt.Sprintf("%d", stats.FilesChanged)},
		{"Lines affected", fmt.Sprintf("%d", stats.LinesAffected)},
		{"Files ignored", fmt.Sprintf("%d", stats.FilesIgnored)},
		{"Files failed", fmt.Sprintf("%d", stats.FilesFailed)},
		{"Syntax regressions", fmt.Sprintf("%d", stats.SyntaxRegressions)},
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	if report.DryRun {
		s.printf("Dry run: no files were written\n")
	}

	if report.ID != "" {
		s.printf("Run %s finished in %s\n", report.ID, report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond))
	}
}

// DisplayReports prints saved run reports as a table.
func (s *SimpleUI) DisplayReports(reports []m.RunReport, err error) error {
	if err != nil {
		s.printf("report error: %v\n", err)
		return err
	}

	if len(reports) == 0 {
		s.printf("No run reports found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer)
	table.SetHeader([]string{"Run", "Started", "Level", "Scanned", "Changed", "Failed", "Mode"})

	for _, report := range reports {
		mode := "write"
		if report.DryRun {
			mode = "dry-run"
		}

		table.Append([]string{
			shortID(report.ID),
			report.StartedAt.Local().Format(time.DateTime),
			fmt.Sprintf("%d", report.Level),
			fmt.Sprintf("%d", report.Stats.FilesScanned),
			fmt.Sprintf("%d", report.Stats.FilesChanged),
			fmt.Sprintf("%d", report.Stats.FilesFailed),
			mode,
		})
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func newTable(buf *bytes.Buffer) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetBorder(false)
	table.SetCenterSeparator("")

	return table
}

func (s *SimpleUI) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
