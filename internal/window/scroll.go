package window

// MaxOffset returns the largest scroll offset that still fills a viewport of
// the given height.
func MaxOffset(t *Table, height float64) float64 {
	m := t.TotalHeight() - height
	if m < 0 {
		return 0
	}
	return m
}

// ClampOffset clamps offset to [0, MaxOffset].
func ClampOffset(t *Table, offset, height float64) float64 {
	if offset < 0 || !finite(offset) {
		return 0
	}
	if m := MaxOffset(t, height); offset > m {
		return m
	}
	return offset
}

// ScrollToItem returns the offset needed to bring item index into view,
// moving as little as possible. The current offset is returned unchanged when
// the item is already fully visible or index is out of range. Items taller
// than the viewport are aligned to their top edge.
func ScrollToItem(t *Table, index int, vp Viewport) float64 {
	if index < 0 || index >= t.Len() {
		return vp.Offset
	}
	top := t.Position(index)
	bottom := t.Bottom(index)

	if top < vp.Offset {
		return top
	}
	if bottom > vp.Offset+vp.Height {
		if bottom-top > vp.Height {
			return top
		}
		return bottom - vp.Height
	}
	return vp.Offset
}
