package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closedWriter struct{}

func (closedWriter) Write(p []byte) (int, error) {
	return 0, errors.New("write on closed pipe")
}

func TestRunSession_WritesProgramToOutput(t *testing.T) {
	var out, logs bytes.Buffer

	err := RunSession(context.Background(), RunOptions{
		Input:     strings.NewReader("\n"),
		Output:    &out,
		LogOutput: &logs,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.String(), "Hello\nError\n"))
	assert.True(t, strings.HasSuffix(out.String(), "The next sentence is a lie\nion is best\n"))
	assert.Empty(t, logs.String(), "logs are silent without debug")
}

func TestRunSession_DebugLogsStayOffOutput(t *testing.T) {
	var plain, debugOut, logs bytes.Buffer

	require.NoError(t, RunSession(context.Background(), RunOptions{
		Input:  strings.NewReader(""),
		Output: &plain,
	}))
	require.NoError(t, RunSession(context.Background(), RunOptions{
		Input:     strings.NewReader(""),
		Output:    &debugOut,
		Debug:     true,
		LogOutput: &logs,
	}))

	assert.Equal(t, plain.String(), debugOut.String())
	assert.Contains(t, logs.String(), "action started")
	assert.Contains(t, logs.String(), "to=awaiting_input")
	assert.Contains(t, logs.String(), "interactive=false")
}

func TestRunSession_OutputFailure(t *testing.T) {
	var logs bytes.Buffer

	err := RunSession(context.Background(), RunOptions{
		Input:     strings.NewReader("\n"),
		Output:    closedWriter{},
		Debug:     true,
		LogOutput: &logs,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed pipe")
	assert.Contains(t, logs.String(), "err=")
}

func TestIsInteractive(t *testing.T) {
	assert.False(t, isInteractive(strings.NewReader("")))

	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isInteractive(f))
}
