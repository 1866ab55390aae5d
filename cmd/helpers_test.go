package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"gooze.dev/pkg/artifactpath/internal/domain"
)

// executeCommand runs sub under a fresh root command, logging into a temp file.
func executeCommand(t *testing.T, sub *cobra.Command, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(sub)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	logFile := filepath.Join(t.TempDir(), "artifactpath.log")
	cmd.SetArgs(append(args, "--"+logFileFlagName, logFile))

	err := cmd.Execute()

	return out.String(), err
}

// useWorkflow swaps the package workflow for the duration of the test.
func useWorkflow(t *testing.T, wf domain.Workflow) {
	t.Helper()

	originalWorkflow := workflow
	workflow = wf

	t.Cleanup(func() { workflow = originalWorkflow })
}
