// Copyright (c) 2026 Aleksandr Smorodinov
// SPDX-License-Identifier: MIT

package patriciatree

import (
	"testing"

	"github.com/asmorodinov/patricia/internal/nodealloc"
)

func TestReplaceChild_IdentityNotKey(t *testing.T) {
	t.Parallel()

	balloc := nodealloc.NewHeap[Branch[uint32]]()
	lalloc := nodealloc.NewHeap[BitmapLeaf[uint32, uint64]]()
	strat := NewBitmapStrategy[uint32, uint64](lalloc)

	leftLeaf, err := strat.NewLeaf(0)
	if err != nil {
		t.Fatal(err)
	}
	rightLeaf, err := strat.NewLeaf(1 << 10)
	if err != nil {
		t.Fatal(err)
	}

	b, err := makeBranch[uint32](balloc, leftLeaf.Prefix(), leftLeaf, rightLeaf.Prefix(), rightLeaf)
	if err != nil {
		t.Fatal(err)
	}

	replacementLeaf, err := strat.NewLeaf(1 << 10) // same prefix, different identity from rightLeaf
	if err != nil {
		t.Fatal(err)
	}

	nb, err := replaceChild[uint32](balloc, b, rightLeaf, replacementLeaf)
	if err != nil {
		t.Fatal(err)
	}
	if nb.left != b.left {
		t.Error("unrelated child should be shared, not cloned")
	}
	if nb.right != Node[uint32](replacementLeaf) {
		t.Error("targeted child should be swapped for the replacement")
	}
	if nb == b {
		t.Error("replaceChild must allocate a fresh Branch, not mutate in place")
	}
}

func TestIsSameNode(t *testing.T) {
	t.Parallel()

	lalloc := nodealloc.NewHeap[BitmapLeaf[uint32, uint64]]()
	strat := NewBitmapStrategy[uint32, uint64](lalloc)

	a, _ := strat.NewLeaf(5)
	b, _ := strat.NewLeaf(5) // same key, distinct allocation

	if isSameNode[uint32](a, b) {
		t.Error("two distinct allocations with equal keys must not be identity-equal")
	}
	if !isSameNode[uint32](a, a) {
		t.Error("a node must be identity-equal to itself")
	}
}
