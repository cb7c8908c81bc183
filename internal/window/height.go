package window

// Heighter reports the height of the item at index. Implementations may
// carry state (a measured-height cache, for example) but must return the
// same value for the same index until the owning Layout is invalidated.
type Heighter interface {
	ItemHeight(index int) float64
}

// FixedHeight gives every item the same height.
type FixedHeight float64

// ItemHeight implements Heighter.
func (h FixedHeight) ItemHeight(int) float64 {
	return float64(h)
}

// HeightFunc adapts a plain function to Heighter.
type HeightFunc func(index int) float64

// ItemHeight implements Heighter.
func (f HeightFunc) ItemHeight(index int) float64 {
	return f(index)
}
