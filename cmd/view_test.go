package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/scramble/internal/domain"
	m "github.com/mouse-blink/scramble/internal/model"
)

func TestViewCmd_DefaultReportsDir(t *testing.T) {
	mockWorkflow, _ := useMockWorkflow(t)
	cmd, _ := newTestRootCmd(newViewCmd())

	mockWorkflow.EXPECT().View(mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Reports == m.Path(".scramble-reports")
	})).Return(nil)

	cmd.SetArgs([]string{"view"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_ReportsFlag(t *testing.T) {
	mockWorkflow, _ := useMockWorkflow(t)
	cmd, _ := newTestRootCmd(newViewCmd())

	mockWorkflow.EXPECT().View(domain.ViewArgs{Reports: "out/reports"}).Return(nil)

	cmd.SetArgs([]string{"view", "--reports", "out/reports"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_ReportsFromConfig(t *testing.T) {
	mockWorkflow, _ := useMockWorkflow(t)
	cmd, _ := newTestRootCmd(newViewCmd())

	config := writeConfig(t, "reports: ci/reports\n")

	mockWorkflow.EXPECT().View(domain.ViewArgs{Reports: "ci/reports"}).Return(nil)

	cmd.SetArgs([]string{"view", "--config", config})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_RejectsArguments(t *testing.T) {
	useMockWorkflow(t)
	cmd, _ := newTestRootCmd(newViewCmd())

	cmd.SetArgs([]string{"view", "src"})
	require.Error(t, cmd.Execute())
}
