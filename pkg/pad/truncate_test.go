package pad

import "testing"

func TestTruncate(t *testing.T) {
	src := []int{0, 1, 2, 3, 4}

	tests := []struct {
		name  string
		width int
		mode  Alignment
		want  []int
	}{
		{"left prefix", 2, AlignLeft, []int{0, 1}},
		{"right suffix", 2, AlignRight, []int{3, 4}},
		{"center even", 4, AlignCenter, []int{0, 1, 2, 3}},
		{"center odd keeps trailing", 3, AlignCenter, []int{1, 2, 3}},
		{"zero width", 0, AlignCenter, []int{}},
		{"negative width", -3, AlignLeft, []int{}},
		{"full width", 5, AlignRight, []int{0, 1, 2, 3, 4}},
		{"over width", 9, AlignLeft, []int{0, 1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(src, tt.width, tt.mode)
			if len(got) != len(tt.want) {
				t.Fatalf("Truncate(%v, %d, %v) = %v, want %v", src, tt.width, tt.mode, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("Truncate(%v, %d, %v) = %v, want %v", src, tt.width, tt.mode, got, tt.want)
				}
			}
		})
	}
}

// Appending to a truncated view must not clobber the discarded tail.
func TestTruncateCapsCapacity(t *testing.T) {
	src := []byte("kappa")
	got := Truncate(src, 2, AlignLeft)
	got = append(got, 'X')
	if string(src) != "kappa" {
		t.Errorf("append through view modified source: %q", src)
	}
	if string(got) != "kaX" {
		t.Errorf("got %q", got)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		width int
		mode  Alignment
		want  string
	}{
		{"left", "hejsan", 3, AlignLeft, "hej"},
		{"right", "hejsan", 3, AlignRight, "san"},
		{"center even source odd width", "kappa", 3, AlignCenter, "app"},
		{"center even source even width", "hejjag", 2, AlignCenter, "jj"},
		{"full width unchanged", "hej", 3, AlignCenter, "hej"},
		{"over width unchanged", "hej", 10, AlignLeft, "hej"},
		{"zero width", "hej", 0, AlignRight, ""},
		{"empty source", "", 0, AlignCenter, ""},
		{"unicode boundaries", "åäöåä", 3, AlignCenter, "äöå"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateString(tt.s, tt.width, tt.mode)
			if got != tt.want {
				t.Errorf("TruncateString(%q, %d, %v) = %q, want %q",
					tt.s, tt.width, tt.mode, got, tt.want)
			}
		})
	}
}
