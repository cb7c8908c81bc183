package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/vlist/internal/window"
)

func runWindowCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := WindowCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestWindowCmdFixedHeights(t *testing.T) {
	out, err := runWindowCmd(t, "--offset", "2750")
	require.NoError(t, err)
	assert.Contains(t, out, "visible: [55, 65]")
	assert.Contains(t, out, "render:  [52, 68]")
	assert.Contains(t, out, "total:   50000")
	assert.NotContains(t, out, "State")
}

func TestWindowCmdTable(t *testing.T) {
	out, err := runWindowCmd(t, "--count", "10", "--height", "1", "--viewport", "3", "--overscan", "1", "--table")
	require.NoError(t, err)
	assert.Contains(t, out, "visible: [0, 3]")
	assert.Contains(t, out, "render:  [0, 4]")
	assert.Contains(t, out, "State")
	// One "visible:" summary line plus four visible rows.
	assert.Equal(t, 5, strings.Count(out, "visible"))
	assert.Equal(t, 1, strings.Count(out, "overscan"))
}

func TestWindowCmdCyclicHeightsAndGap(t *testing.T) {
	out, err := runWindowCmd(t, "--count", "4", "--heights", "10,30", "--gap", "5", "--viewport", "20", "--offset", "15")
	require.NoError(t, err)
	// Positions 0, 15, 50, 65.
	assert.Contains(t, out, "visible: [1, 1]")
	assert.Contains(t, out, "total:   95")
}

func TestWindowCmdEmptyList(t *testing.T) {
	out, err := runWindowCmd(t, "--count", "0", "--table")
	require.NoError(t, err)
	assert.Contains(t, out, "visible: []")
	assert.Contains(t, out, "total:   0")
}

func TestRunWindowRejectsInvalidInput(t *testing.T) {
	var buf bytes.Buffer

	err := RunWindow(&buf, WindowOptions{Count: 3, Heights: []float64{1, 0}, Viewport: 5})
	var heightErr *window.InvalidHeightError
	require.True(t, errors.As(err, &heightErr))
	assert.Equal(t, 1, heightErr.Index)

	err = RunWindow(&buf, WindowOptions{Count: 3, Height: 1, Viewport: 0})
	assert.ErrorIs(t, err, window.ErrInvalidViewport)

	err = RunWindow(&buf, WindowOptions{Count: -1, Height: 1, Viewport: 5})
	assert.ErrorIs(t, err, window.ErrInvalidCount)
	assert.Empty(t, buf.String())
}
