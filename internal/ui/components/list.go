package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/gravitrone/vlist/internal/window"
)

// RenderFunc draws one item. The rendered height must not depend on
// selected, because heights are measured with selected=false.
type RenderFunc[T any] func(item T, index, width int, selected bool) string

// VirtualList is a scrollable list that only renders the items inside the
// resolved window. Offsets and heights are in terminal rows.
//
// Scrolling and cursor moves only mark the list dirty; the owner decides when
// to call Resolve (once per frame), and View always draws the last resolved
// window.
type VirtualList[T any] struct {
	items    []T
	render   RenderFunc[T]
	fixed    int
	custom   window.Heighter
	measured *MeasuredHeights[T]
	layout   window.Layout
	gap      int
	overscan int

	width  int
	height int
	offset int
	cursor int

	win       window.Window
	winOffset int
	dirty     bool
	reveal    bool
	err       error

	materialized int
}

// NewVirtualList creates a list whose item heights are measured from render.
func NewVirtualList[T any](render RenderFunc[T]) *VirtualList[T] {
	return &VirtualList[T]{
		render:   render,
		measured: NewMeasuredHeights(render),
		overscan: window.DefaultOverscan,
		win:      window.Window{Visible: window.EmptyRange, Render: window.EmptyRange},
		dirty:    true,
	}
}

// SetItemHeight switches to a constant item height. Zero or less selects
// measured heights.
func (l *VirtualList[T]) SetItemHeight(rows int) {
	if rows < 0 {
		rows = 0
	}
	if rows == l.fixed {
		return
	}
	l.fixed = rows
	if rows == 0 {
		l.measured.Reset(l.items, l.width)
	}
	l.layout.Invalidate()
	l.dirty = true
}

// SetHeighter installs a caller-supplied height source, overriding both
// fixed and measured heights. Pass nil to go back to them.
func (l *VirtualList[T]) SetHeighter(h window.Heighter) {
	l.custom = h
	l.layout.Invalidate()
	l.dirty = true
}

// SetGap sets the number of blank rows between items.
func (l *VirtualList[T]) SetGap(rows int) {
	if rows < 0 {
		rows = 0
	}
	l.gap = rows
	l.dirty = true
}

// SetOverscan sets how many items are rendered beyond each viewport edge.
func (l *VirtualList[T]) SetOverscan(n int) {
	if n < 0 {
		n = window.DefaultOverscan
	}
	l.overscan = n
	l.dirty = true
}

// SetItems replaces items and resets cursor and scroll position.
func (l *VirtualList[T]) SetItems(items []T) {
	l.items = items
	l.cursor = 0
	l.offset = 0
	l.measured.Reset(items, l.width)
	// Constant heights only change the table when the count changes.
	if l.fixed == 0 || l.custom != nil {
		l.layout.Invalidate()
	}
	l.dirty = true
}

// SetSize sets the viewport size. A width change re-measures item heights.
func (l *VirtualList[T]) SetSize(width, height int) {
	if width == l.width && height == l.height {
		return
	}
	if width != l.width && l.fixed == 0 {
		l.measured.Reset(l.items, width)
		l.layout.Invalidate()
	}
	l.width = width
	l.height = height
	l.dirty = true
}

// Items returns the list contents.
func (l *VirtualList[T]) Items() []T {
	return l.items
}

// Len returns the item count.
func (l *VirtualList[T]) Len() int {
	return len(l.items)
}

// Cursor returns the index of the selected item.
func (l *VirtualList[T]) Cursor() int {
	return l.cursor
}

// SelectedItem returns the item under the cursor.
func (l *VirtualList[T]) SelectedItem() (T, bool) {
	var zero T
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return zero, false
	}
	return l.items[l.cursor], true
}

// Offset returns the pending scroll offset in rows.
func (l *VirtualList[T]) Offset() int {
	return l.offset
}

// Dirty reports whether the window needs resolving.
func (l *VirtualList[T]) Dirty() bool {
	return l.dirty
}

// Err returns the error from the last Resolve, typically an
// *window.InvalidHeightError from the height source.
func (l *VirtualList[T]) Err() error {
	return l.err
}

// Window returns the last resolved window.
func (l *VirtualList[T]) Window() window.Window {
	return l.win
}

// TotalHeight returns the content height in rows, or 0 before the first
// successful Resolve.
func (l *VirtualList[T]) TotalHeight() int {
	return int(l.layout.Current().TotalHeight())
}

// Materialized returns how many items the last View rendered.
func (l *VirtualList[T]) Materialized() int {
	return l.materialized
}

// ScrollBy moves the viewport by delta rows without moving the cursor. The
// offset stays within the last built table's scroll range.
func (l *VirtualList[T]) ScrollBy(delta int) {
	l.offset += delta
	if t := l.layout.Current(); t != nil && t.Len() == len(l.items) && l.height > 0 {
		l.offset = min(l.offset, int(window.MaxOffset(t, float64(l.height))))
	}
	if l.offset < 0 {
		l.offset = 0
	}
	l.dirty = true
}

// Up moves the cursor up one item.
func (l *VirtualList[T]) Up() {
	l.moveCursor(l.cursor - 1)
}

// Down moves the cursor down one item.
func (l *VirtualList[T]) Down() {
	l.moveCursor(l.cursor + 1)
}

// PageUp moves the cursor up by roughly one viewport.
func (l *VirtualList[T]) PageUp() {
	l.moveCursor(l.cursor - l.pageItems())
}

// PageDown moves the cursor down by roughly one viewport.
func (l *VirtualList[T]) PageDown() {
	l.moveCursor(l.cursor + l.pageItems())
}

// Top moves the cursor to the first item.
func (l *VirtualList[T]) Top() {
	l.moveCursor(0)
}

// Bottom moves the cursor to the last item.
func (l *VirtualList[T]) Bottom() {
	l.moveCursor(len(l.items) - 1)
}

// Select moves the cursor to idx, clamped to the list bounds.
func (l *VirtualList[T]) Select(idx int) {
	l.moveCursor(idx)
}

func (l *VirtualList[T]) moveCursor(idx int) {
	if len(l.items) == 0 {
		return
	}
	l.cursor = max(0, min(idx, len(l.items)-1))
	l.reveal = true
	l.dirty = true
}

func (l *VirtualList[T]) pageItems() int {
	if n := l.win.Visible.Len(); n > 1 {
		return n - 1
	}
	return 1
}

func (l *VirtualList[T]) heighter() window.Heighter {
	if l.custom != nil {
		return l.custom
	}
	if l.fixed > 0 {
		return window.FixedHeight(l.fixed)
	}
	return l.measured
}

// Resolve rebuilds the position table when needed, clamps the scroll
// offset and recomputes the window. It is a no-op when nothing changed.
func (l *VirtualList[T]) Resolve() error {
	if !l.dirty {
		return l.err
	}
	l.dirty = false

	t, err := l.layout.Table(len(l.items), l.heighter(), float64(l.gap))
	if err != nil {
		l.err = err
		l.win = window.Window{Visible: window.EmptyRange, Render: window.EmptyRange}
		return err
	}
	l.err = nil

	if l.height <= 0 {
		l.win = window.Window{Visible: window.EmptyRange, Render: window.EmptyRange}
		return nil
	}

	vp := window.Viewport{Offset: float64(l.offset), Height: float64(l.height)}
	if l.reveal {
		vp.Offset = window.ScrollToItem(t, l.cursor, vp)
		l.reveal = false
	}
	l.offset = int(window.ClampOffset(t, vp.Offset, vp.Height))
	vp.Offset = float64(l.offset)

	win, err := window.Resolve(t, vp, l.overscan)
	if err != nil {
		l.err = err
		return err
	}
	l.win = win
	l.winOffset = l.offset
	return nil
}

// View draws the last resolved window as exactly height lines. Each item in
// the render range is drawn at its absolute position and the viewport slice
// is cut out of that virtual canvas.
func (l *VirtualList[T]) View() string {
	l.materialized = 0
	if l.height <= 0 {
		return ""
	}
	lines := make([]string, l.height)
	t := l.layout.Current()
	if t == nil || t.Len() != len(l.items) || l.win.Render.Empty() {
		return strings.Join(lines, "\n")
	}

	for i := l.win.Render.Start; i <= l.win.Render.End; i++ {
		block := l.render(l.items[i], i, l.width, i == l.cursor)
		l.materialized++

		top := int(t.Position(i)) - l.winOffset
		rows := strings.Split(block, "\n")
		h := int(t.ItemHeight(i))
		for r := 0; r < h && r < len(rows); r++ {
			y := top + r
			if y < 0 || y >= l.height {
				continue
			}
			lines[y] = ansi.Truncate(rows[r], l.width, "")
		}
	}
	return strings.Join(lines, "\n")
}
