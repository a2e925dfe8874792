package repositories

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		prefix string
		day    string
		n      int
		want   string
	}{
		{PrefixOrder, "260831", 1, "CMD2608310001"},
		{PrefixContainer, "260831", 42, "CTN2608310042"},
		{PrefixGroupage, "270101", 9999, "GRP2701019999"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.prefix, tt.day, tt.n); got != tt.want {
			t.Errorf("FormatNumber(%q, %q, %d) = %q, want %q", tt.prefix, tt.day, tt.n, got, tt.want)
		}
	}
}
