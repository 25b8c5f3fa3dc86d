package controller

import (
	"io"
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/scramble/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	options []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
	started bool
	done    chan struct{}
}

// NewTUI creates a new TUI writing to output. Extra program options are
// passed to Bubble Tea, e.g. tea.WithInput(nil) to run without a keyboard.
func NewTUI(output io.Writer, options ...tea.ProgramOption) *TUI {
	return &TUI{output: output, options: options}
}

// Start launches the Bubble Tea program for the requested mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options...)

	var model tea.Model

	switch cfg.mode {
	case ModeRun:
		model = newRunModel()
	case ModeView:
		model = newReportsModel()
	case ModeEstimate:
		model = newEstimateModel()
	}

	extra := []tea.ProgramOption{}
	if cfg.mode == ModeRun {
		extra = append(extra, tea.WithMouseCellMotion())
	}

	return t.startWithModel(model, extra...)
}

func (t *TUI) startWithModel(model tea.Model, extra ...tea.ProgramOption) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	options := append([]tea.ProgramOption{tea.WithOutput(t.output)}, t.options...)
	options = append(options, extra...)

	program := tea.NewProgram(model, options...)
	done := make(chan struct{})

	go func() {
		defer close(done)

		_, _ = program.Run()
	}()

	t.program = program
	t.done = done
	t.started = true

	return nil
}

// ensureStarted opens the default screen when a Display call arrives before Start.
func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if !started {
		_ = t.Start()
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

// Wait blocks until the user quits the program.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done
}

// Close stops the program and waits for the terminal to be restored.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	done := t.done
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// DisplayEstimation lists the discovered sources with their line counts.
func (t *TUI) DisplayEstimation(sources []m.Source, err error) error {
	t.ensureStarted()

	if err != nil {
		t.send(estimationMsg{err: err})
		return err
	}

	msg := estimationMsg{files: make([]fileItem, 0, len(sources))}

	for _, source := range sources {
		if source.Origin == nil {
			continue
		}

		msg.files = append(msg.files, fileItem{path: string(source.Origin.Path), lines: source.Lines})
		msg.totalLines += source.Lines
	}

	sort.Slice(msg.files, func(i, j int) bool { return msg.files[i].path < msg.files[j].path })

	t.send(msg)

	return nil
}

// DisplayRunInfo shows the run parameters and sizes the progress bar.
func (t *TUI) DisplayRunInfo(info m.RunInfo) {
	t.ensureStarted()
	t.send(runInfoMsg{info: info})
}

// DisplayBackup records a created backup.
func (t *TUI) DisplayBackup(target, backup m.Path) {
	t.ensureStarted()
	t.send(backupMsg{target: string(target), backup: string(backup)})
}

// DisplayFileResult advances the progress bar and adds the file to the results list.
func (t *TUI) DisplayFileResult(result m.FileResult) {
	t.ensureStarted()
	t.send(fileResultMsg{result: newResultItem(result)})
}

// DisplaySummary switches to the results screen.
func (t *TUI) DisplaySummary(report m.RunReport) {
	t.ensureStarted()
	t.send(summaryMsg{id: report.ID, dryRun: report.DryRun, stats: report.Stats})
}

// DisplayReports lists saved run reports, newest last.
func (t *TUI) DisplayReports(reports []m.RunReport, err error) error {
	t.ensureStarted()

	if err != nil {
		t.send(reportsMsg{err: err})
		return err
	}

	msg := reportsMsg{reports: make([]reportItem, 0, len(reports))}
	for _, report := range reports {
		msg.reports = append(msg.reports, newReportItem(report))
	}

	t.send(msg)

	return nil
}
