package util

import "testing"

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		def  int64
		want int64
	}{
		{"10MB", 0, 10 * 1024 * 1024},
		{"512KB", 0, 512 * 1024},
		{"2GB", 0, 2 * 1024 * 1024 * 1024},
		{"1024", 0, 1024},
		{" 5mb ", 0, 5 * 1024 * 1024},
		{"", 42, 42},
		{"garbage", 42, 42},
	}
	for _, tt := range tests {
		if got := ParseSize(tt.in, tt.def); got != tt.want {
			t.Errorf("ParseSize(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
