package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/scramble/internal/domain"
	domainmocks "github.com/mouse-blink/scramble/internal/domain/mocks"
	m "github.com/mouse-blink/scramble/internal/model"
)

// useMockWorkflow routes every command to a mock and records the settings it was built with.
func useMockWorkflow(t *testing.T) (*domainmocks.MockWorkflow, *m.Settings) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	captured := &m.Settings{}

	original := workflowFactory
	workflowFactory = func(_ *cobra.Command, settings m.Settings) domain.Workflow {
		*captured = settings
		return mockWorkflow
	}

	t.Cleanup(func() { workflowFactory = original })

	return mockWorkflow, captured
}

func newTestRootCmd(subcommands ...*cobra.Command) (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.AddCommand(subcommands...)
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	return cmd, &out
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scramble.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return path
}
