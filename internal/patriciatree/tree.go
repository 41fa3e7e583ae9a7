// Copyright (c) 2026 Aleksandr Smorodinov
// SPDX-License-Identifier: MIT

package patriciatree

import (
	"github.com/asmorodinov/patricia/internal/bitops"
	"github.com/asmorodinov/patricia/internal/nodealloc"
)

// LeafStrategy lets Insert stay agnostic to whether bitmap compression
// is enabled: it is the only place the tree algorithm touches leaf
// construction or merging. BitmapStrategy and SingleKeyStrategy are the
// two concrete implementations.
type LeafStrategy[K bitops.Unsigned] interface {
	// NewLeaf allocates a fresh leaf representing exactly key (plus,
	// under bitmap compression, every other key sharing its prefix
	// region — there are none yet, so this is always a singleton leaf
	// at the moment of creation).
	NewLeaf(key K) (LeafPayload[K], error)

	// TryMerge is called once Insert has located a leaf whose prefix
	// region already contains key (SamePrefix(key) is true). If key is
	// already a member, already is true and merged is unspecified. If
	// not, merged is a freshly allocated leaf with key folded in.
	TryMerge(existing LeafPayload[K], key K) (merged LeafPayload[K], already bool, err error)
}

// Lookup walks the tree for key, returning true iff it is a member.
// Lookup never allocates and never fails.
func Lookup[K bitops.Unsigned](root Node[K], key K) bool {
	if root == nil {
		return false
	}
	cur := root
	for {
		br, ok := cur.(*Branch[K])
		if !ok {
			break
		}
		if !bitops.MatchBranch(key, br.prefix, br.mask) {
			return false
		}
		if bitops.BranchingBitIsZero(key, br.mask) {
			cur = br.left
		} else {
			cur = br.right
		}
	}
	leaf, ok := cur.(LeafPayload[K])
	if !ok {
		return false
	}
	return leaf.Contains(key)
}

// Insert returns a new root representing root's keys union {key}. root
// is left completely unmodified: every node on the path from the root
// to the point of change is cloned, and every other subtree is shared
// verbatim with the returned tree.
//
// If key is already a member, Insert returns root itself, unchanged at
// the handle level — callers may test the returned Node for pointer
// identity with root to detect a no-op insert.
func Insert[K bitops.Unsigned](
	root Node[K],
	key K,
	strat LeafStrategy[K],
	branchAlloc nodealloc.Allocator[Branch[K]],
) (Node[K], error) {
	if root == nil {
		leaf, err := strat.NewLeaf(key)
		if err != nil {
			return nil, err
		}
		return leaf, nil
	}

	// Descend, recording every Branch ancestor whose prefix still
	// matches key; max depth is bounded by K's bit width, so this slice
	// never grows unreasonably large.
	var ancestors []*Branch[K]
	cur := root
	for {
		br, ok := cur.(*Branch[K])
		if !ok || !bitops.MatchBranch(key, br.prefix, br.mask) {
			break
		}
		ancestors = append(ancestors, br)
		if bitops.BranchingBitIsZero(key, br.mask) {
			cur = br.left
		} else {
			cur = br.right
		}
	}

	// cur is now the diverging subtree: either a leaf (possibly already
	// covering key's prefix region) or a Branch whose prefix disagrees
	// with key.
	var replacement Node[K]
	if leaf, ok := cur.(LeafPayload[K]); ok && leaf.SamePrefix(key) {
		merged, already, err := strat.TryMerge(leaf, key)
		if err != nil {
			return nil, err
		}
		if already {
			return root, nil
		}
		replacement = merged
	} else {
		newLeaf, err := strat.NewLeaf(key)
		if err != nil {
			return nil, err
		}
		b, err := makeBranch(branchAlloc, cur.Prefix(), cur, newLeaf.Prefix(), Node[K](newLeaf))
		if err != nil {
			return nil, err
		}
		replacement = b
	}

	// Path copying: walk back up, cloning each ancestor Branch with
	// exactly the child that led to cur swapped for the running
	// replacement.
	old := cur
	newChild := replacement
	for i := len(ancestors) - 1; i >= 0; i-- {
		nb, err := replaceChild(branchAlloc, ancestors[i], old, newChild)
		if err != nil {
			return nil, err
		}
		old = ancestors[i]
		newChild = nb
	}
	return newChild, nil
}

// makeBranch builds the Branch distinguishing two subtrees rooted at
// differing prefixes p1 and p2, arranging children so the one with a
// zero at the branching bit goes left.
func makeBranch[K bitops.Unsigned](alloc nodealloc.Allocator[Branch[K]], p1 K, t1 Node[K], p2 K, t2 Node[K]) (*Branch[K], error) {
	mask := bitops.BranchMask(p1, p2)
	prefix := bitops.HighBitsOf(p1, mask)
	if bitops.BranchingBitIsZero(p1, mask) {
		return newBranch(alloc, prefix, mask, t1, t2)
	}
	return newBranch(alloc, prefix, mask, t2, t1)
}
