// Copyright (c) 2026 Aleksandr Smorodinov
// SPDX-License-Identifier: MIT

// Package patriciatree implements the big-endian Patricia tree at the
// core of the persistent integer set: its two node shapes, the
// bit-arithmetic branching logic, and the path-copying Lookup/Insert
// algorithms. Nodes are immutable once constructed and reached only
// through Node handles; a nil Handle denotes the empty tree.
package patriciatree

import (
	"github.com/asmorodinov/patricia/internal/bitops"
	"github.com/asmorodinov/patricia/internal/nodealloc"
)

// Node is the common shape every tree node satisfies: the "is this a
// leaf" discriminator plus the prefix accessor, both polymorphic over
// Leaf and Branch. A Handle is simply a Node value (nil for the empty
// tree); Go's garbage collector provides the acyclic, multi-owner
// lifetime management the spec assigns to reference-counted handles.
type Node[K bitops.Unsigned] interface {
	isLeaf() bool
	Prefix() K
}

// LeafPayload is the interface every leaf shape must satisfy so the
// tree algorithms can stay agnostic to whether bitmap compression is
// enabled. Concrete implementations are BitmapLeaf (compressed, several
// keys per leaf) and SingleLeaf (one key per leaf, used when bitmap
// compression is disabled).
type LeafPayload[K bitops.Unsigned] interface {
	Node[K]

	// Contains reports whether this leaf represents key k.
	Contains(k K) bool

	// SamePrefix reports whether k's high bits equal this leaf's prefix,
	// i.e. whether k belongs in this leaf's bitmap region at all.
	SamePrefix(k K) bool

	// Validate reports a violation of this leaf's own shape invariant
	// (I5), or nil. Used by CheckInvariants, never on the hot path.
	Validate() error
}

// Branch is the internal node: prefix holds the key bits strictly above
// mask, which has exactly one bit set — the branching bit. All keys
// under left have a 0 at the mask bit; all keys under right have a 1.
type Branch[K bitops.Unsigned] struct {
	prefix, mask K
	left, right  Node[K]
}

func (b *Branch[K]) isLeaf() bool { return false }

// Prefix returns the key bits common to every descendant of b.
func (b *Branch[K]) Prefix() K { return b.prefix }

// Mask returns the branching bit mask (exactly one bit set).
func (b *Branch[K]) Mask() K { return b.mask }

// Left returns the subtree holding keys with a zero at the branch bit.
func (b *Branch[K]) Left() Node[K] { return b.left }

// Right returns the subtree holding keys with a one at the branch bit.
func (b *Branch[K]) Right() Node[K] { return b.right }

// newBranch allocates a Branch from alloc with the given prefix, mask
// and children.
func newBranch[K bitops.Unsigned](alloc nodealloc.Allocator[Branch[K]], prefix, mask K, left, right Node[K]) (*Branch[K], error) {
	b, err := alloc.New()
	if err != nil {
		return nil, err
	}
	b.prefix, b.mask, b.left, b.right = prefix, mask, left, right
	return b, nil
}

// replaceChild constructs a fresh Branch identical to b, except that
// whichever of {left, right} was identity-equal to oldChild has been
// swapped for newChild. Identity comparison, not key comparison, is
// used: path copying relies on pinpointing the exact handle just
// rewritten.
func replaceChild[K bitops.Unsigned](alloc nodealloc.Allocator[Branch[K]], b *Branch[K], oldChild Node[K], newChild Node[K]) (*Branch[K], error) {
	if isSameNode(b.left, oldChild) {
		return newBranch(alloc, b.prefix, b.mask, newChild, b.right)
	}
	return newBranch(alloc, b.prefix, b.mask, b.left, newChild)
}

// isSameNode compares two Node values for pointer identity, ignoring
// the dynamic type's comparability quirks: both operands are always
// either *Branch[K], *BitmapLeaf[K,B] or *SingleLeaf[K], all pointer
// types, so == on the interface value is exactly the identity
// comparison the spec requires.
func isSameNode[K bitops.Unsigned](a, b Node[K]) bool {
	return a == b
}
