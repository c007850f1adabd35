package vtengine

import "testing"

func TestIsWide(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'A', false},
		{' ', false},
		{0x4E00, true},  // CJK unified ideograph
		{0xAC00, true},  // Hangul syllable
		{0x1F600, true}, // emoji
		{0x0041, false},
		{0x3000 - 1, true}, // within 0x2E80-0x303E
	}
	for _, tt := range tests {
		if got := isWide(tt.r); got != tt.want {
			t.Errorf("isWide(%#x) = %v, want %v", tt.r, got, tt.want)
		}
	}
}
