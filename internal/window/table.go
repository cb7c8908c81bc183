package window

import (
	"math"
	"sort"
)

// Table holds the cumulative start offset of every item in a list.
//
// positions[0] is always 0 and positions[i] = positions[i-1] + height(i-1) + gap,
// so the table is strictly increasing. Heights are captured at build time;
// the height source is not consulted again until the table is rebuilt.
type Table struct {
	positions []float64
	heights   []float64
	gap       float64
	total     float64
}

// Build computes the position table for n items. Every height is validated
// eagerly: the first zero, negative or non-finite value aborts the build with
// an *InvalidHeightError.
func Build(n int, h Heighter, gap float64) (*Table, error) {
	if n < 0 {
		return nil, ErrInvalidCount
	}
	if gap < 0 || !finite(gap) {
		return nil, ErrInvalidGap
	}
	t := &Table{gap: gap}
	if n == 0 {
		return t, nil
	}
	if h == nil {
		return nil, ErrNoHeighter
	}

	t.positions = make([]float64, n)
	t.heights = make([]float64, n)
	pos := 0.0
	for i := 0; i < n; i++ {
		ih := h.ItemHeight(i)
		if !(ih > 0) || math.IsInf(ih, 0) {
			return nil, &InvalidHeightError{Index: i, Height: ih}
		}
		t.positions[i] = pos
		t.heights[i] = ih
		pos += ih + gap
	}
	t.total = t.positions[n-1] + t.heights[n-1]
	return t, nil
}

// Len returns the number of items in the table. A nil table is empty.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.positions)
}

// Gap returns the inter-item spacing the table was built with.
func (t *Table) Gap() float64 {
	if t == nil {
		return 0
	}
	return t.gap
}

// TotalHeight returns the height of the whole content, gaps included.
func (t *Table) TotalHeight() float64 {
	if t == nil {
		return 0
	}
	return t.total
}

// Position returns the start offset of item i. It panics when i is out of range.
func (t *Table) Position(i int) float64 {
	return t.positions[i]
}

// ItemHeight returns the height item i had when the table was built.
func (t *Table) ItemHeight(i int) float64 {
	return t.heights[i]
}

// Bottom returns the end offset of item i (exclusive of the trailing gap).
func (t *Table) Bottom(i int) float64 {
	return t.positions[i] + t.heights[i]
}

// IndexAt returns the greatest index whose start offset is <= offset,
// clamped to [0, Len()-1]. It returns -1 for an empty table.
func (t *Table) IndexAt(offset float64) int {
	n := t.Len()
	if n == 0 {
		return -1
	}
	i := sort.Search(n, func(i int) bool {
		return t.positions[i] > offset
	}) - 1
	if i < 0 {
		return 0
	}
	return i
}

// snap moves offset up to the next item boundary when it sits less than
// BoundaryEpsilon below it, so accumulated float error in a scroll offset
// does not pull the previous item into the window.
func (t *Table) snap(offset float64) float64 {
	i := t.IndexAt(offset)
	if i < 0 || i+1 >= t.Len() {
		return offset
	}
	next := t.positions[i+1]
	if next-offset < BoundaryEpsilon {
		return next
	}
	return offset
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Layout owns the position table of one list and rebuilds it wholesale when
// the item count or gap changes, or after Invalidate.
type Layout struct {
	table  *Table
	stale  bool
	builds int
}

// Table returns the current table, rebuilding it when needed. A failed build
// leaves the layout empty so the next call retries.
func (l *Layout) Table(n int, h Heighter, gap float64) (*Table, error) {
	if l.table != nil && !l.stale && l.table.Len() == n && l.table.gap == gap {
		return l.table, nil
	}
	t, err := Build(n, h, gap)
	if err != nil {
		l.table = nil
		return nil, err
	}
	l.table = t
	l.stale = false
	l.builds++
	return t, nil
}

// Current returns the last successfully built table, or nil.
func (l *Layout) Current() *Table {
	return l.table
}

// Invalidate forces the next Table call to rebuild, for when the height
// source changed without the item count changing.
func (l *Layout) Invalidate() {
	l.stale = true
}

// Builds returns how many times the table has been rebuilt.
func (l *Layout) Builds() int {
	return l.builds
}
