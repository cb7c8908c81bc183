package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableGridLinesHaveTableWidth(t *testing.T) {
	cols := []TableColumn{
		{Header: "Index", Width: 6, Align: lipgloss.Right},
		{Header: "Top", Width: 8, Align: lipgloss.Right},
		{Header: "Title", Width: 10},
	}
	rows := [][]string{
		{"52", "2600", "Compact Lamp #53"},
		{"53", "2650", strings.Repeat("long title ", 10)},
	}

	out := TableGrid(cols, rows, 50, 1)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.Equal(t, 50, lipgloss.Width(line))
	}

	clean := SanitizeText(out)
	assert.Contains(t, clean, "Index")
	assert.Contains(t, clean, "Compact Lamp #53")
	assert.Contains(t, clean, "…")
}

func TestTableGridDegenerateInputs(t *testing.T) {
	assert.Equal(t, "", TableGrid(nil, nil, 0, -1))
	assert.Equal(t, "     ", TableGrid(nil, nil, 5, -1))
}

func TestRenderGridCellAlignment(t *testing.T) {
	assert.Equal(t, "ab   ", renderGridCell("ab", 5, lipgloss.Left))
	assert.Equal(t, "   ab", renderGridCell("ab", 5, lipgloss.Right))
	assert.Equal(t, " ab  ", renderGridCell("ab", 5, lipgloss.Center))
}
