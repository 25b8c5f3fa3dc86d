package controller

import (
	"errors"
	"strings"
	"testing"
	"time"

	m "github.com/mouse-blink/scramble/internal/model"
)

func TestFileItem_FilterValue(t *testing.T) {
	item := fileItem{path: "src/Main.java", lines: 12}
	if got := item.FilterValue(); got != item.path {
		t.Fatalf("FilterValue() = %q, want %q", got, item.path)
	}

	if item.count() != "12" || item.label() != "src/Main.java" {
		t.Fatalf("columns = %q/%q", item.count(), item.label())
	}
}

func TestReportItem_Columns(t *testing.T) {
	report := m.RunReport{
		ID:        "0f8fad5b-d9cb-469f-a165-70867728950e",
		StartedAt: time.Date(2024, 3, 5, 14, 7, 9, 0, time.Local),
		Level:     7,
		DryRun:    true,
		Stats:     m.RunStats{FilesScanned: 4, FilesChanged: 3, FilesFailed: 1},
	}

	item := newReportItem(report)

	if got := item.count(); got != "3/4" {
		t.Fatalf("count() = %q, want 3/4", got)
	}

	label := item.label()
	for _, want := range []string{"2024-03-05 14:07:09", "0f8fad5b", "level 7", "1 failed", "dry run"} {
		if !strings.Contains(label, want) {
			t.Fatalf("label() = %q, missing %q", label, want)
		}
	}

	if strings.Contains(label, report.ID) {
		t.Fatalf("label() should shorten the run id: %q", label)
	}
}

func TestNewResultItem(t *testing.T) {
	result := m.FileResult{
		Source:        m.Source{Origin: &m.File{Path: "/src/A.java"}},
		Status:        m.StatusFailed,
		LinesAffected: 3,
		SyntaxChecked: true,
		SyntaxBefore:  0,
		SyntaxAfter:   1,
		Diff:          "--- a",
		Err:           errors.New("write failed"),
	}

	item := newResultItem(result)
	if item.path != "/src/A.java" || item.status != m.StatusFailed || item.lines != 3 {
		t.Fatalf("newResultItem() = %+v", item)
	}

	if !item.regressed || item.err != "write failed" || item.diff != "--- a" {
		t.Fatalf("newResultItem() = %+v", item)
	}

	if got := newResultItem(m.FileResult{}); got.path != "" {
		t.Fatalf("newResultItem(no origin) path = %q", got.path)
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("abc"); got != "abc" {
		t.Fatalf("shortID(abc) = %q", got)
	}

	if got := shortID("0123456789"); got != "01234567" {
		t.Fatalf("shortID(long) = %q", got)
	}
}
