// Copyright (c) 2026 Aleksandr Smorodinov
// SPDX-License-Identifier: MIT

package patriciatree

import (
	"github.com/asmorodinov/patricia/internal/bitops"
	"github.com/asmorodinov/patricia/internal/nodealloc"
)

// SingleLeaf represents exactly one key, key itself. It realizes the
// spec's NoBitmap sentinel: bitmap compression is disabled, s = 0, and
// the tree degenerates to a standard big-endian binary Patricia trie.
type SingleLeaf[K bitops.Unsigned] struct {
	key K
}

func (l *SingleLeaf[K]) isLeaf() bool { return true }

// Prefix returns the leaf's sole key (prefix and key coincide when s=0).
func (l *SingleLeaf[K]) Prefix() K { return l.key }

func (l *SingleLeaf[K]) SamePrefix(k K) bool { return k == l.key }

func (l *SingleLeaf[K]) Contains(k K) bool { return k == l.key }

// Validate always succeeds: a SingleLeaf has no internal invariant
// beyond "holds one key", which its type already guarantees.
func (l *SingleLeaf[K]) Validate() error { return nil }

// SingleKeyStrategy is the LeafStrategy used when bitmap compression is
// disabled: every leaf holds exactly one key, so TryMerge is only ever
// called when the key is already present (SamePrefix already means
// k == existing.key).
type SingleKeyStrategy[K bitops.Unsigned] struct {
	Alloc nodealloc.Allocator[SingleLeaf[K]]
}

func NewSingleKeyStrategy[K bitops.Unsigned](alloc nodealloc.Allocator[SingleLeaf[K]]) SingleKeyStrategy[K] {
	return SingleKeyStrategy[K]{Alloc: alloc}
}

func (s SingleKeyStrategy[K]) NewLeaf(key K) (LeafPayload[K], error) {
	l, err := s.Alloc.New()
	if err != nil {
		return nil, err
	}
	l.key = key
	return l, nil
}

func (s SingleKeyStrategy[K]) TryMerge(existing LeafPayload[K], key K) (LeafPayload[K], bool, error) {
	// SamePrefix(key) already established existing.key == key: a
	// single-key leaf's prefix region is the key itself, so reaching
	// here always means key is already a member.
	return nil, true, nil
}
