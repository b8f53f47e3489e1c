package bitfmt

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0"},
		{10, "1010"},
		{16, "1 0000"},
		{255, "1111 1111"},
		{65536, "1 0000 0000 0000 0000"},
		{0x5555555555555555, "101 0101 0101 0101 0101 0101 0101 0101 0101 0101 0101 0101 0101 0101 0101 0101"},
	}

	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormat32(t *testing.T) {
	if got := Format32(10); got != "1010" {
		t.Errorf("Format32(10) = %q", got)
	}
	// Negative values render through their 32-bit pattern, not 64 bits.
	if got := Format32(-1); got != "1111 1111 1111 1111 1111 1111 1111 1111" {
		t.Errorf("Format32(-1) = %q", got)
	}
}
