// Copyright (c) 2026 Aleksandr Smorodinov
// SPDX-License-Identifier: MIT

package patriciatree

import (
	"fmt"

	"github.com/asmorodinov/patricia/internal/bitops"
	"github.com/asmorodinov/patricia/internal/nodealloc"
)

// BitmapLeaf stores the set of keys sharing prefix as the positions of
// 1-bits in bitmap: key k belongs to this leaf iff PrefixOf(k) ==
// prefix and bit SuffixOf(k) is set in bitmap. Invariant: bitmap != 0;
// prefix has its low suffixBits bits cleared.
type BitmapLeaf[K bitops.Unsigned, B bitops.Unsigned] struct {
	prefix     K
	bitmap     B
	suffixBits uint
}

func (l *BitmapLeaf[K, B]) isLeaf() bool { return true }

// Prefix returns the key bits common to every key this leaf represents.
func (l *BitmapLeaf[K, B]) Prefix() K { return l.prefix }

// Bitmap returns the raw bitmap word; bit i set means prefix|i is a
// member.
func (l *BitmapLeaf[K, B]) Bitmap() B { return l.bitmap }

func (l *BitmapLeaf[K, B]) SamePrefix(k K) bool {
	return bitops.PrefixOf(k, l.suffixBits) == l.prefix
}

// Validate checks I5: bitmap must be non-zero and prefix must have its
// low suffixBits bits cleared.
func (l *BitmapLeaf[K, B]) Validate() error {
	if l.bitmap == 0 {
		return fmt.Errorf("bitmap leaf at prefix %v has a zero bitmap", l.prefix)
	}
	if l.prefix != bitops.PrefixOf(l.prefix, l.suffixBits) {
		return fmt.Errorf("bitmap leaf prefix %v has nonzero low suffix bits", l.prefix)
	}
	return nil
}

func (l *BitmapLeaf[K, B]) Contains(k K) bool {
	if !l.SamePrefix(k) {
		return false
	}
	suffix := bitops.SuffixOf(k, l.suffixBits)
	bit := B(1) << B(suffix)
	return l.bitmap&bit != 0
}

// BitmapStrategy is the LeafStrategy realizing bitmap-compressed leaves:
// suffixBits low-order bits of each key are folded into the leaf's
// bitmap word instead of costing a separate tree node.
type BitmapStrategy[K bitops.Unsigned, B bitops.Unsigned] struct {
	SuffixBits uint
	Alloc      nodealloc.Allocator[BitmapLeaf[K, B]]
}

// NewBitmapStrategy derives suffixBits from B's bit width (s =
// floor(log2(W_B)), per the spec) and pairs it with alloc.
func NewBitmapStrategy[K bitops.Unsigned, B bitops.Unsigned](alloc nodealloc.Allocator[BitmapLeaf[K, B]]) BitmapStrategy[K, B] {
	return BitmapStrategy[K, B]{
		SuffixBits: bitops.Log2(bitops.BitWidth[B]()),
		Alloc:      alloc,
	}
}

func (s BitmapStrategy[K, B]) NewLeaf(key K) (LeafPayload[K], error) {
	l, err := s.Alloc.New()
	if err != nil {
		return nil, err
	}
	l.prefix = bitops.PrefixOf(key, s.SuffixBits)
	l.suffixBits = s.SuffixBits
	suffix := bitops.SuffixOf(key, s.SuffixBits)
	l.bitmap = B(1) << B(suffix)
	return l, nil
}

func (s BitmapStrategy[K, B]) TryMerge(existing LeafPayload[K], key K) (LeafPayload[K], bool, error) {
	old := existing.(*BitmapLeaf[K, B])
	suffix := bitops.SuffixOf(key, s.SuffixBits)
	bit := B(1) << B(suffix)
	if old.bitmap&bit != 0 {
		return nil, true, nil // already present
	}
	l, err := s.Alloc.New()
	if err != nil {
		return nil, false, err
	}
	l.prefix = old.prefix
	l.suffixBits = s.SuffixBits
	l.bitmap = old.bitmap | bit
	return l, false, nil
}
