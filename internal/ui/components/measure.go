package components

import "github.com/charmbracelet/lipgloss"

// MeasuredHeights is a window.Heighter that renders each item once at the
// current width and caches its line count.
type MeasuredHeights[T any] struct {
	render RenderFunc[T]
	items  []T
	width  int
	cache  map[int]int
}

// NewMeasuredHeights creates an empty cache for render.
func NewMeasuredHeights[T any](render RenderFunc[T]) *MeasuredHeights[T] {
	return &MeasuredHeights[T]{
		render: render,
		cache:  make(map[int]int),
	}
}

// Reset drops all cached heights and measures items at width from now on.
func (m *MeasuredHeights[T]) Reset(items []T, width int) {
	m.items = items
	m.width = width
	clear(m.cache)
}

// ItemHeight implements window.Heighter. Out-of-range indices report 0,
// which the position table rejects.
func (m *MeasuredHeights[T]) ItemHeight(index int) float64 {
	if h, ok := m.cache[index]; ok {
		return float64(h)
	}
	if index < 0 || index >= len(m.items) {
		return 0
	}
	h := lipgloss.Height(m.render(m.items[index], index, m.width, false))
	m.cache[index] = h
	return float64(h)
}

// Cached returns how many heights are currently cached.
func (m *MeasuredHeights[T]) Cached() int {
	return len(m.cache)
}
