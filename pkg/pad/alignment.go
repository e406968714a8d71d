package pad

// Alignment selects which side(s) of a source receive fill, or which window
// of the source is kept during truncation.
type Alignment int

const (
	// AlignRight pads on the leading side (content flushes right).
	// This is the zero value and the default alignment.
	AlignRight Alignment = iota

	// AlignLeft pads on the trailing side (content flushes left).
	AlignLeft

	// AlignCenter splits fill between both sides. When the fill count is
	// odd, the trailing side receives the extra element.
	AlignCenter
)

// String returns the lowercase name of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	default:
		return "right"
	}
}

// split divides a non-negative size difference into leading and trailing
// fill counts such that lead+trail == diff.
func (a Alignment) split(diff int) (lead, trail int) {
	switch a {
	case AlignLeft:
		return 0, diff
	case AlignCenter:
		return diff / 2, diff - diff/2
	default:
		return diff, 0
	}
}

// window selects the [lo, hi) sub-window of width elements kept when
// truncating a source of n elements, 0 <= width <= n. Center keeps the
// extra element on the trailing side when width is odd, mirroring the
// split of odd fill counts.
func (a Alignment) window(n, width int) (lo, hi int) {
	switch a {
	case AlignLeft:
		return 0, width
	case AlignCenter:
		lo = n/2 - width/2
		return lo, n/2 + width/2 + width%2
	default:
		return n - width, n
	}
}
