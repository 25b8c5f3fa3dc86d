package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/scramble/internal/adapter"
	"github.com/mouse-blink/scramble/internal/controller"
	m "github.com/mouse-blink/scramble/internal/model"
)

// ErrNoPaths is returned when a command is invoked without any target.
var ErrNoPaths = errors.New("no paths given")

// EstimateArgs selects the sources a command works on.
type EstimateArgs struct {
	Paths  []m.Path
	Filter m.SourceFilter
}

// RunArgs configures a scramble run.
type RunArgs struct {
	EstimateArgs
	Config      m.Config
	DryRun      bool
	Backup      bool
	Threads     int
	CheckSyntax bool
	Diff        bool
	Verbose     bool
	// Reports is the directory run reports are written to; empty disables them.
	Reports m.Path
}

// ViewArgs selects the reports directory to browse.
type ViewArgs struct {
	Reports m.Path
}

// Workflow coordinates discovery, scrambling and reporting.
type Workflow interface {
	Estimate(args EstimateArgs) error
	Run(ctx context.Context, args RunArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	reportStore adapter.ReportStore
	syntax      adapter.SyntaxChecker
	differ      adapter.DiffRenderer
	ui          controller.UI
	scrambler   Scrambler
	logger      *slog.Logger
	now         func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	syntax adapter.SyntaxChecker,
	differ adapter.DiffRenderer,
	ui controller.UI,
	scrambler Scrambler,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		syntax:      syntax,
		differ:      differ,
		ui:          ui,
		scrambler:   scrambler,
		logger:      logger,
		now:         time.Now,
	}
}

func (w *workflow) Estimate(args EstimateArgs) error {
	if len(args.Paths) == 0 {
		return ErrNoPaths
	}

	if err := w.ui.Start(controller.WithEstimateMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	sources, err := w.fsAdapter.Get(args.Paths, args.Filter)
	if err != nil {
		err = fmt.Errorf("get sources: %w", err)
		_ = w.ui.DisplayEstimation(nil, err)

		return err
	}

	if err := w.ui.DisplayEstimation(sources, nil); err != nil {
		return fmt.Errorf("display estimation: %w", err)
	}

	w.ui.Wait()

	return nil
}

func (w *workflow) View(args ViewArgs) error {
	if err := w.ui.Start(controller.WithViewMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	reports, err := w.reportStore.LoadReports(args.Reports)
	if err != nil {
		err = fmt.Errorf("load reports: %w", err)
		_ = w.ui.DisplayReports(nil, err)

		return err
	}

	if err := w.ui.DisplayReports(reports, nil); err != nil {
		return fmt.Errorf("display reports: %w", err)
	}

	w.ui.Wait()

	return nil
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	if len(args.Paths) == 0 {
		return ErrNoPaths
	}

	if args.Threads <= 0 {
		args.Threads = 1
	}

	if err := w.ui.Start(controller.WithRunMode(), controller.WithVerbose(args.Verbose)); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	sources, err := w.fsAdapter.Get(args.Paths, args.Filter)
	if err != nil {
		return fmt.Errorf("get sources: %w", err)
	}

	startedAt := w.now()

	w.ui.DisplayRunInfo(m.RunInfo{
		Targets: args.Paths,
		Level:   args.Config.Level,
		DryRun:  args.DryRun,
		Backup:  w.shouldBackup(args, sources),
		Threads: args.Threads,
		Files:   len(sources),
	})

	backups, err := w.backupTargets(args, sources, startedAt)
	if err != nil {
		return err
	}

	results, stats, runErr := w.processSources(ctx, sources, args)

	report := w.buildReport(args, startedAt, backups, results, stats)
	w.saveReport(args.Reports, report)
	w.ui.DisplaySummary(report)
	w.ui.Wait()

	if runErr != nil {
		return fmt.Errorf("run interrupted: %w", runErr)
	}

	return nil
}

func (w *workflow) shouldBackup(args RunArgs, sources []m.Source) bool {
	return args.Backup && !args.DryRun && len(sources) > 0
}

// backupTargets copies every target before any file is touched. A failed
// backup aborts the run.
func (w *workflow) backupTargets(args RunArgs, sources []m.Source, now time.Time) ([]m.Path, error) {
	if !w.shouldBackup(args, sources) {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(args.Paths))
	backups := make([]m.Path, 0, len(args.Paths))

	for _, target := range args.Paths {
		root, err := adapter.NormalizeRootPath(string(target))
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", target, err)
		}

		if _, ok := seen[root]; ok {
			continue
		}

		seen[root] = struct{}{}

		backup, err := w.fsAdapter.Backup(m.Path(root), now)
		if err != nil {
			return nil, fmt.Errorf("backup %s: %w", target, err)
		}

		w.logger.Debug("backup created", "target", root, "backup", backup)
		w.ui.DisplayBackup(target, backup)
		backups = append(backups, backup)
	}

	return backups, nil
}

// runStats collects counters from concurrent workers.
type runStats struct {
	scanned           atomic.Int64
	changed           atomic.Int64
	linesAffected     atomic.Int64
	ignored           atomic.Int64
	failed            atomic.Int64
	syntaxRegressions atomic.Int64
}

func (s *runStats) record(result m.FileResult) {
	s.scanned.Add(1)

	switch result.Status {
	case m.StatusChanged:
		s.changed.Add(1)
		s.linesAffected.Add(int64(result.LinesAffected))
	case m.StatusIgnored:
		s.ignored.Add(1)
	case m.StatusFailed:
		s.failed.Add(1)
	case m.StatusUnchanged:
	}

	if result.SyntaxRegressed() {
		s.syntaxRegressions.Add(1)
	}
}

func (s *runStats) snapshot() m.RunStats {
	return m.RunStats{
		FilesScanned:      int(s.scanned.Load()),
		FilesChanged:      int(s.changed.Load()),
		LinesAffected:     int(s.linesAffected.Load()),
		FilesIgnored:      int(s.ignored.Load()),
		FilesFailed:       int(s.failed.Load()),
		SyntaxRegressions: int(s.syntaxRegressions.Load()),
	}
}

// processSources scrambles every source with at most args.Threads workers.
// Per-file failures are recorded, never returned; only cancellation stops the run.
func (w *workflow) processSources(ctx context.Context, sources []m.Source, args RunArgs) ([]*m.FileResult, m.RunStats, error) {
	results := make([]*m.FileResult, len(sources))

	var stats runStats

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(args.Threads)

	for i, source := range sources {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			result := w.processSource(gctx, source, args)
			results[i] = &result

			stats.record(result)
			w.ui.DisplayFileResult(result)

			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	return results, stats.snapshot(), err
}

func (w *workflow) processSource(ctx context.Context, source m.Source, args RunArgs) m.FileResult {
	result := m.FileResult{Source: source, Status: m.StatusUnchanged}
	path := source.Origin.Path

	content, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		return w.fail(result, fmt.Errorf("read %s: %w", path, err))
	}

	text := string(content)

	rule := fileIgnoreRule(text)
	if rule.all {
		w.logger.Debug("file ignored by directive", "path", path)

		result.Status = m.StatusIgnored

		return result
	}

	if unknown := rule.unknown(); len(unknown) > 0 {
		w.logger.Warn("unknown stages in ignore directive", "path", path, "stages", unknown)
	}

	scrambled := w.scrambler.Scramble(text, rule.apply(args.Config))
	result.Applied = scrambled.Applied

	if !scrambled.Changed {
		return result
	}

	result.Status = m.StatusChanged
	result.LinesAffected = m.SplitLines(scrambled.Text).Len()

	if args.CheckSyntax {
		w.checkSyntax(ctx, &result, content, []byte(scrambled.Text))
	}

	if args.Diff {
		result.Diff = w.differ.Render(path, text, scrambled.Text)
	}

	if args.DryRun {
		return result
	}

	if err := w.fsAdapter.WriteFile(path, []byte(scrambled.Text)); err != nil {
		return w.fail(result, fmt.Errorf("write %s: %w", path, err))
	}

	w.logger.Debug("file scrambled", "path", path, "lines", result.LinesAffected)

	return result
}

func (w *workflow) checkSyntax(ctx context.Context, result *m.FileResult, before, after []byte) {
	path := result.Source.Origin.Path

	errsBefore, ok, err := w.syntax.CountErrors(ctx, result.Source.Language, before)
	if err != nil || !ok {
		if err != nil {
			w.logger.Warn("syntax check failed", "path", path, "error", err)
		}

		return
	}

	errsAfter, ok, err := w.syntax.CountErrors(ctx, result.Source.Language, after)
	if err != nil || !ok {
		if err != nil {
			w.logger.Warn("syntax check failed", "path", path, "error", err)
		}

		return
	}

	result.SyntaxChecked = true
	result.SyntaxBefore = errsBefore
	result.SyntaxAfter = errsAfter

	if result.SyntaxRegressed() {
		w.logger.Warn("scrambled output parses worse", "path", path, "before", errsBefore, "after", errsAfter)
	}
}

func (w *workflow) fail(result m.FileResult, err error) m.FileResult {
	w.logger.Error("file failed", "path", result.Source.Origin.Path, "error", err)

	result.Status = m.StatusFailed
	result.Err = err

	return result
}

func (w *workflow) buildReport(
	args RunArgs,
	startedAt time.Time,
	backups []m.Path,
	results []*m.FileResult,
	stats m.RunStats,
) m.RunReport {
	files := make([]m.FileReport, 0, len(results))

	for _, result := range results {
		if result == nil {
			continue
		}

		files = append(files, fileReport(*result))
	}

	return m.RunReport{
		ID:         uuid.NewString(),
		StartedAt:  startedAt,
		FinishedAt: w.now(),
		Targets:    args.Paths,
		Level:      args.Config.Level,
		DryRun:     args.DryRun,
		Backups:    backups,
		Stats:      stats,
		Files:      files,
	}
}

func fileReport(result m.FileResult) m.FileReport {
	report := m.FileReport{
		Path:             result.Source.Origin.Path,
		Hash:             result.Source.Origin.Hash,
		Status:           result.Status,
		Applied:          result.Applied,
		LinesAffected:    result.LinesAffected,
		SyntaxRegression: result.SyntaxRegressed(),
	}

	if result.Err != nil {
		report.Error = result.Err.Error()
	}

	return report
}

func (w *workflow) saveReport(dir m.Path, report m.RunReport) {
	if dir == "" {
		return
	}

	if err := w.reportStore.SaveReport(dir, report); err != nil {
		w.logger.Warn("saving run report failed", "dir", dir, "error", err)
		return
	}

	w.logger.Debug("run report saved", "dir", dir, "id", report.ID)
}
