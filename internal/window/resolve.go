package window

import "fmt"

const (
	// DefaultOverscan is the number of extra items rendered on each side of
	// the visible range when the caller passes a negative overscan.
	DefaultOverscan = 3

	// BoundaryEpsilon is how far below an item boundary an offset may sit
	// and still be treated as lying on it.
	BoundaryEpsilon = 1e-6
)

// Viewport is the scroll state of the host container.
type Viewport struct {
	Offset float64
	Height float64
}

func (v Viewport) validate() error {
	if !finite(v.Offset) || v.Offset < 0 {
		return fmt.Errorf("%w: offset %v", ErrInvalidViewport, v.Offset)
	}
	if !finite(v.Height) || v.Height <= 0 {
		return fmt.Errorf("%w: height %v", ErrInvalidViewport, v.Height)
	}
	return nil
}

// Range is an inclusive span of item indices. End < Start means empty.
type Range struct {
	Start int
	End   int
}

// EmptyRange is the range returned for an empty list.
var EmptyRange = Range{Start: 0, End: -1}

// Empty reports whether the range holds no indices.
func (r Range) Empty() bool {
	return r.End < r.Start
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start + 1
}

// Contains reports whether i lies in the range.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i <= r.End
}

func (r Range) String() string {
	if r.Empty() {
		return "[]"
	}
	return fmt.Sprintf("[%d, %d]", r.Start, r.End)
}

// Window is the result of resolving a viewport against a table.
// Visible covers the viewport exactly; Render adds the overscan margin.
type Window struct {
	Visible Range
	Render  Range
}

// Resolve returns the items that must be materialized to cover vp.
//
// The start is the greatest index whose offset is <= vp.Offset (binary
// search); the end is found by scanning forward to the greatest index whose
// offset is <= vp.Offset+vp.Height. Both bounds are then widened by overscan
// and clamped to the list. An offset past the content resolves to the last
// items. A negative overscan selects DefaultOverscan.
func Resolve(t *Table, vp Viewport, overscan int) (Window, error) {
	if err := vp.validate(); err != nil {
		return Window{}, err
	}
	n := t.Len()
	if n == 0 {
		return Window{Visible: EmptyRange, Render: EmptyRange}, nil
	}
	if overscan < 0 {
		overscan = DefaultOverscan
	}

	offset := t.snap(vp.Offset)
	start := t.IndexAt(offset)
	limit := offset + vp.Height
	end := start
	for end+1 < n && t.positions[end+1] <= limit {
		end++
	}

	return Window{
		Visible: Range{Start: start, End: end},
		Render: Range{
			Start: max(0, start-overscan),
			End:   min(n-1, end+overscan),
		},
	}, nil
}
