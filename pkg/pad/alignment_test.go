package pad

import "testing"

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		mode  Alignment
		diff  int
		lead  int
		trail int
	}{
		{"left", AlignLeft, 4, 0, 4},
		{"right", AlignRight, 4, 4, 0},
		{"center even", AlignCenter, 4, 2, 2},
		{"center odd", AlignCenter, 5, 2, 3},
		{"center one", AlignCenter, 1, 0, 1},
		{"left zero", AlignLeft, 0, 0, 0},
		{"right zero", AlignRight, 0, 0, 0},
		{"center zero", AlignCenter, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead, trail := tt.mode.split(tt.diff)
			if lead != tt.lead || trail != tt.trail {
				t.Errorf("%v.split(%d) = (%d, %d), want (%d, %d)",
					tt.mode, tt.diff, lead, trail, tt.lead, tt.trail)
			}
			if lead+trail != tt.diff {
				t.Errorf("split counts do not sum to diff: %d+%d != %d", lead, trail, tt.diff)
			}
		})
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name   string
		mode   Alignment
		n      int
		width  int
		lo, hi int
	}{
		{"left prefix", AlignLeft, 10, 4, 0, 4},
		{"right suffix", AlignRight, 10, 4, 6, 10},
		{"center even n even w", AlignCenter, 10, 4, 3, 7},
		{"center odd n odd w", AlignCenter, 5, 3, 1, 4},
		{"center odd n even w", AlignCenter, 5, 4, 0, 4},
		{"full width", AlignCenter, 6, 6, 0, 6},
		{"zero width left", AlignLeft, 5, 0, 0, 0},
		{"zero width right", AlignRight, 5, 0, 5, 5},
		{"zero width center", AlignCenter, 5, 0, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := tt.mode.window(tt.n, tt.width)
			if lo != tt.lo || hi != tt.hi {
				t.Errorf("%v.window(%d, %d) = [%d, %d), want [%d, %d)",
					tt.mode, tt.n, tt.width, lo, hi, tt.lo, tt.hi)
			}
		})
	}
}

// Every window must stay inside [0, n] and span exactly width elements,
// including both boundaries.
func TestWindowBounds(t *testing.T) {
	for _, mode := range []Alignment{AlignLeft, AlignRight, AlignCenter} {
		for n := 0; n <= 9; n++ {
			for width := 0; width <= n; width++ {
				lo, hi := mode.window(n, width)
				if lo < 0 || hi > n || hi-lo != width {
					t.Errorf("%v.window(%d, %d) = [%d, %d): out of bounds or wrong span",
						mode, n, width, lo, hi)
				}
			}
		}
	}
}

func TestAlignmentString(t *testing.T) {
	if AlignLeft.String() != "left" || AlignRight.String() != "right" || AlignCenter.String() != "center" {
		t.Error("unexpected alignment names")
	}
	var zero Alignment
	if zero != AlignRight {
		t.Error("zero value should be AlignRight")
	}
}
