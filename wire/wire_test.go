package wire

import "testing"

func TestAlign(t *testing.T) {
	cases := []struct {
		in, want uint32
	}{
		{0, 0},
		{1, 8},
		{7, 8},
		{8, 8},
		{9, 16},
		{24, 24},
	}
	for _, c := range cases {
		if got := Align(c.in); got != c.want {
			t.Errorf("Align(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestIsAligned(t *testing.T) {
	if !IsAligned(0) || !IsAligned(8) || !IsAligned(24) {
		t.Error("expected multiples of 8 to be aligned")
	}
	if IsAligned(1) || IsAligned(7) || IsAligned(9) {
		t.Error("expected non-multiples of 8 to be unaligned")
	}
}

func TestElementStride(t *testing.T) {
	cases := []struct {
		size, want uint32
	}{
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{8, 8},
		{16, 8},
	}
	for _, c := range cases {
		if got := ElementStride(c.size); got != c.want {
			t.Errorf("ElementStride(%d) = %d, want %d", c.size, got, c.want)
		}
	}
}
