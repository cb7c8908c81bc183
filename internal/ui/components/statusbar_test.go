package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/gravitrone/vlist/internal/window"
)

func TestHintIncludesKeyAndDesc(t *testing.T) {
	out := Hint("↑/↓", "Scroll")
	assert.Contains(t, out, "Scroll")
	assert.Contains(t, out, "↑/↓")
}

func TestStatusBarRendersHints(t *testing.T) {
	out := StatusBar([]string{Hint("q", "Quit")}, 0)
	assert.Contains(t, out, "Quit")
	assert.Contains(t, out, "q")
}

func TestWrapSegmentsWrapsWhenNarrow(t *testing.T) {
	segments := []string{"123456", "abcdef", "ghijkl"}
	rows := wrapSegments(segments, 10)
	assert.Len(t, rows, 3)
	for _, row := range rows {
		assert.LessOrEqual(t, lipgloss.Width(row), 10)
	}
}

func TestPosition(t *testing.T) {
	out := SanitizeText(Position(window.Range{Start: 55, End: 65}, 1000, 2750, 49500))
	assert.Equal(t, "56-66 of 1000 · 5%", out)

	assert.Equal(t, "0 of 0", SanitizeText(Position(window.EmptyRange, 0, 0, 0)))
	assert.Contains(t, SanitizeText(Position(window.Range{Start: 0, End: 2}, 3, 0, 0)), "100%")
}
