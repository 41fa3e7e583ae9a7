// Copyright (c) 2026 Aleksandr Smorodinov
// SPDX-License-Identifier: MIT

package bitops

import "testing"

func TestHighestBitMask(t *testing.T) {
	t.Parallel()

	cases := []struct {
		x, want uint32
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{0b0110_1001, 0b0100_0000},
		{1 << 31, 1 << 31},
		{^uint32(0), 1 << 31},
	}
	for _, c := range cases {
		if got := HighestBitMask(c.x); got != c.want {
			t.Errorf("HighestBitMask(%b) = %b, want %b", c.x, got, c.want)
		}
	}
}

func TestBranchMask(t *testing.T) {
	t.Parallel()

	// classic example: 0 and 0x8000_0000 diverge at the top bit.
	if got, want := BranchMask(uint32(0), uint32(0x8000_0000)), uint32(0x8000_0000); got != want {
		t.Errorf("BranchMask(0, 0x8000_0000) = %#x, want %#x", got, want)
	}

	// two keys differing only in the lowest bit produce mask == 1.
	if got, want := BranchMask(uint32(4), uint32(5)), uint32(1); got != want {
		t.Errorf("BranchMask(4, 5) = %#x, want %#x", got, want)
	}
}

func TestHighBitsOfAndMatchBranch(t *testing.T) {
	t.Parallel()

	mask := uint32(0x0000_0008) // bit 3
	p1, p2 := uint32(0x23), uint32(0x2B)
	m := BranchMask(p1, p2)
	if m != mask {
		t.Fatalf("BranchMask(%#x, %#x) = %#x, want %#x", p1, p2, m, mask)
	}
	prefix := HighBitsOf(p1, m)
	if !MatchBranch(p1, prefix, m) || !MatchBranch(p2, prefix, m) {
		t.Fatalf("expected both p1 and p2 to match branch prefix %#x mask %#x", prefix, m)
	}
	if MatchBranch(uint32(0xFFFF_FFFF), prefix, m) {
		t.Errorf("expected an unrelated key not to match branch prefix")
	}
}

func TestPrefixSuffixOf(t *testing.T) {
	t.Parallel()

	const suffixBits = 6 // s for a uint64 bitmap
	k := uint64(130)     // 0b1000_0010
	if got, want := SuffixOf(k, suffixBits), uint64(2); got != want {
		t.Errorf("SuffixOf(%d) = %d, want %d", k, got, want)
	}
	if got, want := PrefixOf(k, suffixBits), uint64(128); got != want {
		t.Errorf("PrefixOf(%d) = %d, want %d", k, got, want)
	}
	if got, want := PrefixOf(k, 0), k; got != want {
		t.Errorf("PrefixOf with suffixBits=0 should be identity, got %d want %d", got, want)
	}
}

func TestLog2(t *testing.T) {
	t.Parallel()

	cases := map[uint]uint{0: 0, 1: 0, 2: 1, 63: 5, 64: 6, 127: 6, 128: 7}
	for n, want := range cases {
		if got := Log2(n); got != want {
			t.Errorf("Log2(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestBitWidth(t *testing.T) {
	t.Parallel()

	if BitWidth[uint8]() != 8 {
		t.Error("BitWidth[uint8]() != 8")
	}
	if BitWidth[uint64]() != 64 {
		t.Error("BitWidth[uint64]() != 64")
	}
}
