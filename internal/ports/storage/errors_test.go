package storage

import "testing"

func TestSameName(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"Fire", "  fire  ", true},
		{"WATER", "water", true},
		{"Fire", "Fir", false},
		{"", "   ", true},
		{"Éclair", " ÉCLAIR ", true},
	}
	for _, tc := range cases {
		if got := SameName(tc.a, tc.b); got != tc.want {
			t.Fatalf("SameName(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestNameKey(t *testing.T) {
	if got := NameKey("  ÑANDÚ "); got != "ñandú" {
		t.Fatalf("NameKey = %q, want %q", got, "ñandú")
	}
}
