package sticky

// DefaultItemHeight is used when measuring the header template yields no
// height.
const DefaultItemHeight = 30

// HeightPredictor estimates the rendered height of a header stack of
// pathLength rows ending at context, without measuring those rows.
type HeightPredictor func(context Node, pathLength int) int

// Uniform predicts pathLength rows of itemHeight each.
func Uniform(itemHeight int) HeightPredictor {
	return func(_ Node, pathLength int) int {
		return pathLength * itemHeight
	}
}

// RowHeight measures a representative header row once and caches it.
type RowHeight struct {
	measure func() int
	warn    func(format string, args ...interface{})
	value   int
}

// NewRowHeight wraps a measurement function. A nil measure always falls
// back to DefaultItemHeight.
func NewRowHeight(measure func() int, warn func(format string, args ...interface{})) *RowHeight {
	return &RowHeight{measure: measure, warn: warn}
}

// Get returns the cached height, measuring on first use.
func (r *RowHeight) Get() int {
	if r.value > 0 {
		return r.value
	}
	h := 0
	if r.measure != nil {
		h = r.measure()
	}
	if h <= 0 {
		if r.warn != nil {
			r.warn("sticky headers: could not measure item height, defaulting to %d", DefaultItemHeight)
		}
		h = DefaultItemHeight
	}
	r.value = h
	return h
}

// Measured reports whether Get has already produced a value.
func (r *RowHeight) Measured() bool {
	return r.value > 0
}
