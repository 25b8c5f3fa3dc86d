package cmd

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/scramble/internal/domain"
	m "github.com/mouse-blink/scramble/internal/model"
)

func TestRootCmd_DefaultRun(t *testing.T) {
	mockWorkflow, settings := useMockWorkflow(t)
	cmd, _ := newTestRootCmd()

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return len(args.Paths) == 1 &&
			args.Paths[0] == m.Path("src") &&
			args.Config.Level == m.DefaultChaosLevel &&
			args.Backup &&
			!args.DryRun &&
			args.Threads == 1 &&
			args.Reports == m.Path(".scramble-reports") &&
			assert.ObjectsAreEqual([]string{".java", ".kt"}, args.Filter.Extensions)
	})).Return(nil)

	cmd.SetArgs([]string{"src"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, m.DefaultSettings(), *settings)
}

func TestRootCmd_RunFlags(t *testing.T) {
	mockWorkflow, settings := useMockWorkflow(t)
	cmd, _ := newTestRootCmd()

	var got domain.RunArgs

	mockWorkflow.EXPECT().Run(mock.Anything, mock.Anything).
		Run(func(_ context.Context, args domain.RunArgs) { got = args }).
		Return(nil)

	cmd.SetArgs([]string{
		"-d", "--no-backup", "-l", "9", "-p", "4", "-v",
		"-x", "**/generated/**", "--exclude", "*Test.java",
		"--seed", "42", "--check-syntax", "--diff",
		"--skip-stage", "braces", "--skip-stage", "trailing",
		"--reports", "out/reports",
		"src", "lib/...",
	})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, []m.Path{"src", "lib/..."}, got.Paths)
	assert.True(t, got.DryRun)
	assert.False(t, got.Backup)
	assert.Equal(t, m.ChaosLevel(9), got.Config.Level)
	assert.False(t, got.Config.Enabled(m.StageBraces))
	assert.False(t, got.Config.Enabled(m.StageTrailing))
	assert.True(t, got.Config.Enabled(m.StageLineSplit))
	assert.Equal(t, 4, got.Threads)
	assert.True(t, got.CheckSyntax)
	assert.True(t, got.Diff)
	assert.True(t, got.Verbose)
	assert.Equal(t, m.Path("out/reports"), got.Reports)
	assert.Equal(t, []string{"**/generated/**", "*Test.java"}, got.Filter.Exclude)
	assert.Equal(t, uint64(42), settings.Seed)
}

func TestRootCmd_LevelIsClampedNotRejected(t *testing.T) {
	mockWorkflow, _ := useMockWorkflow(t)
	cmd, _ := newTestRootCmd()

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Config.Level == m.MaxChaosLevel
	})).Return(nil)

	cmd.SetArgs([]string{"--level", "42", "src"})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_RequiresPaths(t *testing.T) {
	useMockWorkflow(t)
	cmd, _ := newTestRootCmd()

	cmd.SetArgs([]string{})
	require.Error(t, cmd.Execute())
}

func TestRootCmd_InvalidFlagsAreRejected(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown stage", []string{"--skip-stage", "indent", "src"}},
		{"zero workers", []string{"--parallel", "0", "src"}},
		{"bad glob", []string{"--exclude", "src/[", "src"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useMockWorkflow(t)
			cmd, _ := newTestRootCmd()

			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid settings")
		})
	}
}

func TestRootCmd_WorkflowErrorIsReturned(t *testing.T) {
	mockWorkflow, _ := useMockWorkflow(t)
	cmd, _ := newTestRootCmd()
	boom := errors.New("boom")

	mockWorkflow.EXPECT().Run(mock.Anything, mock.Anything).Return(boom)

	cmd.SetArgs([]string{"src"})
	assert.ErrorIs(t, cmd.Execute(), boom)
}

func TestRootCmd_PassesCommandContext(t *testing.T) {
	mockWorkflow, _ := useMockWorkflow(t)
	cmd, _ := newTestRootCmd()

	type ctxKey struct{}

	ctx := context.WithValue(context.Background(), ctxKey{}, "marker")

	mockWorkflow.EXPECT().Run(mock.MatchedBy(func(got context.Context) bool {
		return got.Value(ctxKey{}) == "marker"
	}), mock.Anything).Return(nil)

	cmd.SetArgs([]string{"src"})
	require.NoError(t, cmd.ExecuteContext(ctx))
}

func TestRunCmd_MatchesRootCommand(t *testing.T) {
	mockWorkflow, _ := useMockWorkflow(t)
	cmd, _ := newTestRootCmd(newRunCmd())

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.DryRun && args.Config.Level == 3 && args.Verbose
	})).Return(nil)

	cmd.SetArgs([]string{"-v", "run", "--dry-run", "--level", "3", "src"})
	require.NoError(t, cmd.Execute())
}

func TestNewWorkflow_BuildsWorkflow(t *testing.T) {
	cmd, _ := newTestRootCmd()

	wf := newWorkflow(cmd, m.DefaultSettings())
	require.NotNil(t, wf)
}

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer

	quiet := newLogger(&buf, false)
	assert.False(t, quiet.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, quiet.Enabled(context.Background(), slog.LevelWarn))

	verbose := newLogger(&buf, true)
	assert.True(t, verbose.Enabled(context.Background(), slog.LevelDebug))

	verbose.Debug("file scrambled", "path", "A.java")
	assert.Contains(t, buf.String(), "path=A.java")
}

func TestParsePaths(t *testing.T) {
	assert.Equal(t, []m.Path{"a", "b/..."}, parsePaths([]string{"a", "b/..."}))
	assert.Empty(t, parsePaths(nil))
}
