package controller

import (
	"bytes"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/scramble/internal/model"
)

type quitModel struct{}

func (q quitModel) Init() tea.Cmd                       { return tea.Quit }
func (q quitModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return q, tea.Quit }
func (q quitModel) View() string                        { return "" }

var errSentinel = errors.New("boom")

func newTestTUI(buf *bytes.Buffer) *TUI {
	return NewTUI(buf, tea.WithInput(nil))
}

func waitOrFail(t *testing.T, name string, fn func()) {
	t.Helper()

	done := make(chan struct{})

	go func() {
		fn()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("%s timed out", name)
	}
}

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	var buf bytes.Buffer

	tui := newTestTUI(&buf)

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	// a second start is a no-op
	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("second startWithModel error = %v", err)
	}

	// sending to a program that already quit must not block
	tui.send(runInfoMsg{info: m.RunInfo{Files: 2}})

	waitOrFail(t, "Wait()", tui.Wait)
	waitOrFail(t, "Close()", tui.Close)
}

func TestTUI_Send_And_EnsureStarted_NoPanic(t *testing.T) {
	var buf bytes.Buffer

	tui := newTestTUI(&buf)

	// send before start is a no-op
	tui.send(runInfoMsg{})

	// ensureStarted does not restart a started TUI
	tui.started = true
	tui.ensureStarted()

	if tui.program != nil {
		t.Fatalf("ensureStarted created a program although started was set")
	}
}

func TestTUI_RunMode_FullRun(t *testing.T) {
	var buf bytes.Buffer

	tui := newTestTUI(&buf)

	if err := tui.Start(WithRunMode(), WithVerbose(true)); err != nil {
		t.Fatalf("Start error = %v", err)
	}

	tui.DisplayRunInfo(m.RunInfo{Files: 1, Level: 5, Threads: 1})
	tui.DisplayBackup("/src", "/src_backup_20240305_140709")
	tui.DisplayFileResult(m.FileResult{
		Source: m.Source{Origin: &m.File{Path: "/src/A.java"}},
		Status: m.StatusChanged,
		Diff:   "--- a\n+++ b\n",
	})
	tui.DisplaySummary(m.RunReport{ID: "run-1", Stats: m.RunStats{FilesScanned: 1, FilesChanged: 1}})

	waitOrFail(t, "Close()", tui.Close)
}

func TestTUI_EstimateMode(t *testing.T) {
	var buf bytes.Buffer

	tui := newTestTUI(&buf)

	if err := tui.Start(WithEstimateMode()); err != nil {
		t.Fatalf("Start error = %v", err)
	}

	sources := []m.Source{
		{Origin: &m.File{Path: "/src/B.java"}, Lines: 3},
		{Origin: &m.File{Path: "/src/A.java"}, Lines: 4},
		{Origin: nil},
	}

	if err := tui.DisplayEstimation(sources, nil); err != nil {
		t.Fatalf("DisplayEstimation error = %v", err)
	}

	waitOrFail(t, "Close()", tui.Close)
}

func TestTUI_ViewMode(t *testing.T) {
	var buf bytes.Buffer

	tui := newTestTUI(&buf)

	if err := tui.Start(WithViewMode()); err != nil {
		t.Fatalf("Start error = %v", err)
	}

	if err := tui.DisplayReports([]m.RunReport{{ID: "run-1"}}, nil); err != nil {
		t.Fatalf("DisplayReports error = %v", err)
	}

	waitOrFail(t, "Close()", tui.Close)
}

func TestTUI_DisplayBeforeStartOpensDefaultScreen(t *testing.T) {
	var buf bytes.Buffer

	tui := newTestTUI(&buf)

	if err := tui.DisplayEstimation(nil, nil); err != nil {
		t.Fatalf("DisplayEstimation error = %v", err)
	}

	if !tui.started || tui.program == nil {
		t.Fatalf("DisplayEstimation did not start the program")
	}

	waitOrFail(t, "Close()", tui.Close)
}

func TestTUI_MultipleClose(t *testing.T) {
	var buf bytes.Buffer

	tui := newTestTUI(&buf)
	if err := tui.Start(); err != nil {
		t.Fatalf("Start error = %v", err)
	}

	waitOrFail(t, "Close()", tui.Close)
	waitOrFail(t, "second Close()", tui.Close)

	// Wait and Close without Start return immediately
	waitOrFail(t, "Wait() without start", newTestTUI(&buf).Wait)
	waitOrFail(t, "Close() without start", newTestTUI(&buf).Close)
}

func TestTUI_DisplayMethods_NoProgram(t *testing.T) {
	var buf bytes.Buffer

	tui := newTestTUI(&buf)

	// keep Bubble Tea out of this test
	tui.started = true

	if err := tui.DisplayEstimation(nil, nil); err != nil {
		t.Fatalf("DisplayEstimation unexpected error = %v", err)
	}

	if err := tui.DisplayEstimation(nil, errSentinel); !errors.Is(err, errSentinel) {
		t.Fatalf("DisplayEstimation error = %v, want %v", err, errSentinel)
	}

	if err := tui.DisplayReports(nil, errSentinel); !errors.Is(err, errSentinel) {
		t.Fatalf("DisplayReports error = %v, want %v", err, errSentinel)
	}

	if err := tui.DisplayReports([]m.RunReport{{ID: "x"}}, nil); err != nil {
		t.Fatalf("DisplayReports unexpected error = %v", err)
	}

	tui.DisplayRunInfo(m.RunInfo{Files: 3})
	tui.DisplayBackup("/a", "/a_backup")
	tui.DisplayFileResult(m.FileResult{Status: m.StatusUnchanged})
	tui.DisplaySummary(m.RunReport{})
}
