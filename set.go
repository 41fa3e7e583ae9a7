// Copyright (c) 2026 Aleksandr Smorodinov
// SPDX-License-Identifier: MIT

package patricia

import (
	"github.com/rs/zerolog"

	"github.com/asmorodinov/patricia/internal/bitops"
	"github.com/asmorodinov/patricia/internal/nodealloc"
	"github.com/asmorodinov/patricia/internal/patriciatree"
)

// Set is a persistent set of K values, with the low log2(BitWidth(B))
// bits of each key (6 for a uint64 bitmap) folded into a leaf's bitmap
// word instead of costing a separate tree node. The zero Set is not usable; build one with
// NewSet.
//
// A Set value is immutable: Insert never modifies the receiver, it
// returns a new Set. Concurrent reads (Contains) against the same Set,
// or against two Sets obtained by Fork, are safe without external
// synchronization, because nodes are never mutated after construction.
// Concurrent Insert calls sharing one underlying allocator ARE NOT
// safe — allocators carry no internal locking, matching the teacher's
// own single-writer assumption for its pooled structures.
type Set[K bitops.Unsigned, B bitops.Unsigned] struct {
	root   patriciatree.Node[K]
	strat  patriciatree.BitmapStrategy[K, B]
	branch nodealloc.Allocator[patriciatree.Branch[K]]
	logger zerolog.Logger
}

// NewSet builds an empty Set. By default both node shapes are served
// from an unbounded nodealloc.Heap and diagnostics are discarded
// (zerolog.Nop()); pass options to override either.
func NewSet[K bitops.Unsigned, B bitops.Unsigned](opts ...Option[K, B]) *Set[K, B] {
	cfg := config[K, B]{
		leafAlloc:   nodealloc.NewHeap[patriciatree.BitmapLeaf[K, B]](),
		branchAlloc: nodealloc.NewHeap[patriciatree.Branch[K]](),
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Set[K, B]{
		root:   nil,
		strat:  patriciatree.NewBitmapStrategy[K, B](cfg.leafAlloc),
		branch: cfg.branchAlloc,
		logger: cfg.logger,
	}
}

// Contains reports whether k is a member. It never allocates and never
// fails.
func (s *Set[K, B]) Contains(k K) bool {
	if s == nil {
		return false
	}
	return patriciatree.Lookup[K](s.root, k)
}

// Insert returns a new Set representing the receiver's members union
// {k}. The receiver is left completely unmodified: every node on the
// path from the root to the point of change is cloned, every other
// subtree is shared verbatim. If k is already a member, the returned
// Set shares its root with the receiver at the pointer level — no
// allocation occurs.
//
// Insert fails only if a configured allocator is exhausted, in which
// case it returns the receiver's own root unchanged alongside a
// non-nil error satisfying errors.Is(err, ErrPoolExhausted).
func (s *Set[K, B]) Insert(k K) (*Set[K, B], error) {
	newRoot, err := patriciatree.Insert[K](s.root, k, s.strat, s.branch)
	if err != nil {
		s.logger.Error().Err(err).Msg("patricia: insert failed, root left untouched")
		return s, wrapAllocErr("node", err)
	}
	if newRoot == s.root {
		return s, nil
	}
	return &Set[K, B]{
		root:   newRoot,
		strat:  s.strat,
		branch: s.branch,
		logger: s.logger,
	}, nil
}

// Clear returns a new, empty Set sharing this Set's allocators and
// logger. It does not affect the receiver or any other Set derived
// from it — dropping a handle never reaches back into a sibling
// version.
func (s *Set[K, B]) Clear() *Set[K, B] {
	return &Set[K, B]{
		root:   nil,
		strat:  s.strat,
		branch: s.branch,
		logger: s.logger,
	}
}

// Fork returns a copy of the Set. Because the underlying tree is
// immutable and structurally shared, this is an O(1) handle copy, not
// a deep clone — the returned Set and the receiver are two independent
// handles onto the same nodes until one of them calls Insert.
func (s *Set[K, B]) Fork() *Set[K, B] {
	forked := *s
	return &forked
}
