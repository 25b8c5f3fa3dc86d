package controller

import (
	"fmt"
	"strconv"
	"time"

	m "github.com/mouse-blink/scramble/internal/model"
)

// Message types.
type tickMsg time.Time

type estimationMsg struct {
	files      []fileItem
	totalLines int
	err        error
}

type reportsMsg struct {
	reports []reportItem
	err     error
}

type runInfoMsg struct {
	info m.RunInfo
}

type backupMsg struct {
	target string
	backup string
}

type fileResultMsg struct {
	result resultItem
}

type summaryMsg struct {
	id     string
	dryRun bool
	stats  m.RunStats
}

// listRow is an item of the two-column list shared by the estimate and view screens.
type listRow interface {
	FilterValue() string
	count() string
	label() string
}

// List item types.
type fileItem struct {
	path  string
	lines int
}

func (f fileItem) FilterValue() string {
	return f.path
}

func (f fileItem) count() string { return strconv.Itoa(f.lines) }
func (f fileItem) label() string { return f.path }

type reportItem struct {
	id      string
	started time.Time
	level   m.ChaosLevel
	scanned int
	changed int
	failed  int
	dryRun  bool
}

func (r reportItem) FilterValue() string {
	return r.id + " " + r.started.Format(time.DateTime)
}

func (r reportItem) count() string {
	return fmt.Sprintf("%d/%d", r.changed, r.scanned)
}

func (r reportItem) label() string {
	text := fmt.Sprintf("%s  %s  level %d", r.started.Local().Format(time.DateTime), shortID(r.id), r.level)
	if r.failed > 0 {
		text += fmt.Sprintf("  %d failed", r.failed)
	}

	if r.dryRun {
		text += "  dry run"
	}

	return text
}

// resultItem is one processed file in the run results list.
type resultItem struct {
	path      string
	status    m.FileStatus
	lines     int
	regressed bool
	diff      string
	err       string
}

func (r resultItem) FilterValue() string {
	return r.path + " " + string(r.status)
}

func newResultItem(result m.FileResult) resultItem {
	item := resultItem{
		status:    result.Status,
		lines:     result.LinesAffected,
		regressed: result.SyntaxRegressed(),
		diff:      result.Diff,
	}

	if result.Source.Origin != nil {
		item.path = string(result.Source.Origin.Path)
	}

	if result.Err != nil {
		item.err = result.Err.Error()
	}

	return item
}

func newReportItem(report m.RunReport) reportItem {
	return reportItem{
		id:      report.ID,
		started: report.StartedAt,
		level:   report.Level,
		scanned: report.Stats.FilesScanned,
		changed: report.Stats.FilesChanged,
		failed:  report.Stats.FilesFailed,
		dryRun:  report.DryRun,
	}
}

func shortID(id string) string {
	const size = 8
	if len(id) <= size {
		return id
	}

	return id[:size]
}
