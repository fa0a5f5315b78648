package fuzzy

import "testing"

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"iphon", "iphone", 1},
		{"coffee-makrs", "coffee-makers", 1},
		{"tv", "pc", 2},
		{"café", "cafe", 1},
	}
	for _, tc := range tests {
		if got := Distance(tc.a, tc.b); got != tc.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDistance_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"stereo", "tereos"},
		{"refrigerator", "refridgerator"},
		{"", "anything"},
		{"a", "ba"},
	}
	for _, p := range pairs {
		if Distance(p[0], p[1]) != Distance(p[1], p[0]) {
			t.Errorf("Distance(%q, %q) not symmetric", p[0], p[1])
		}
	}
}

func TestMaxResolveDistance(t *testing.T) {
	tests := []struct {
		length, want int
	}{
		{1, 1},
		{3, 1},
		{4, 2},
		{6, 2},
		{7, 3},  // ceil(2.45)
		{13, 5}, // ceil(4.55)
		{20, 7},
	}
	for _, tc := range tests {
		if got := MaxResolveDistance(tc.length); got != tc.want {
			t.Errorf("MaxResolveDistance(%d) = %d, want %d", tc.length, got, tc.want)
		}
	}
}

func TestMaxWordDistance(t *testing.T) {
	// max(6, 5) = 6 -> ceil(2.1) = 3
	if got := MaxWordDistance("iphone", "iphon"); got != 3 {
		t.Errorf("MaxWordDistance(iphone, iphon) = %d, want 3", got)
	}
	// max(2, 2) = 2 -> ceil(0.7) = 1
	if got := MaxWordDistance("tv", "pc"); got != 1 {
		t.Errorf("MaxWordDistance(tv, pc) = %d, want 1", got)
	}
}

func TestBestWordDistance(t *testing.T) {
	words := []string{"iphone", "13", "for", "sale"}
	if got := BestWordDistance(words, "iphon"); got != 1 {
		t.Errorf("BestWordDistance = %d, want 1", got)
	}
	if got := BestWordDistance(words, "sale"); got != 0 {
		t.Errorf("BestWordDistance exact = %d, want 0", got)
	}
	if got := BestWordDistance(nil, "x"); got != -1 {
		t.Errorf("BestWordDistance(nil) = %d, want -1", got)
	}
}
