// Copyright (c) 2026 Aleksandr Smorodinov
// SPDX-License-Identifier: MIT

package patricia

import (
	"github.com/rs/zerolog"

	"github.com/asmorodinov/patricia/internal/bitops"
	"github.com/asmorodinov/patricia/internal/nodealloc"
	"github.com/asmorodinov/patricia/internal/patriciatree"
)

// NoBitmapSet is the uncompressed counterpart to Set: every leaf holds
// exactly one key (bitmap compression disabled, s = 0), degenerating
// to a plain big-endian binary Patricia trie. It is a distinct type
// rather than Set instantiated with some placeholder B, because a
// disabled bitmap carries no bit-width to derive suffixBits from —
// there is no honest unsigned-integer B standing in for "none"; see
// the NoBitmap entry in DESIGN.md for the reasoning.
type NoBitmapSet[K bitops.Unsigned] struct {
	root   patriciatree.Node[K]
	strat  patriciatree.SingleKeyStrategy[K]
	branch nodealloc.Allocator[patriciatree.Branch[K]]
	logger zerolog.Logger
}

// noBitmapConfig mirrors config but for NoBitmapSet's single leaf shape.
type noBitmapConfig[K bitops.Unsigned] struct {
	leafAlloc   nodealloc.Allocator[patriciatree.SingleLeaf[K]]
	branchAlloc nodealloc.Allocator[patriciatree.Branch[K]]
	logger      zerolog.Logger
}

// NoBitmapOption configures a NoBitmapSet at construction time.
type NoBitmapOption[K bitops.Unsigned] func(*noBitmapConfig[K])

// WithNoBitmapLeafAllocator overrides the allocation strategy used for
// single-key leaves. The default is an unbounded nodealloc.Heap.
func WithNoBitmapLeafAllocator[K bitops.Unsigned](alloc nodealloc.Allocator[patriciatree.SingleLeaf[K]]) NoBitmapOption[K] {
	return func(c *noBitmapConfig[K]) { c.leafAlloc = alloc }
}

// WithNoBitmapBranchAllocator overrides the allocation strategy used
// for branch nodes. The default is an unbounded nodealloc.Heap.
func WithNoBitmapBranchAllocator[K bitops.Unsigned](alloc nodealloc.Allocator[patriciatree.Branch[K]]) NoBitmapOption[K] {
	return func(c *noBitmapConfig[K]) { c.branchAlloc = alloc }
}

// WithNoBitmapLogger attaches a zerolog.Logger for diagnostic events.
func WithNoBitmapLogger[K bitops.Unsigned](logger zerolog.Logger) NoBitmapOption[K] {
	return func(c *noBitmapConfig[K]) { c.logger = logger }
}

// NewNoBitmapSet builds an empty NoBitmapSet.
func NewNoBitmapSet[K bitops.Unsigned](opts ...NoBitmapOption[K]) *NoBitmapSet[K] {
	cfg := noBitmapConfig[K]{
		leafAlloc:   nodealloc.NewHeap[patriciatree.SingleLeaf[K]](),
		branchAlloc: nodealloc.NewHeap[patriciatree.Branch[K]](),
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &NoBitmapSet[K]{
		root:   nil,
		strat:  patriciatree.NewSingleKeyStrategy[K](cfg.leafAlloc),
		branch: cfg.branchAlloc,
		logger: cfg.logger,
	}
}

// Contains reports whether k is a member.
func (s *NoBitmapSet[K]) Contains(k K) bool {
	if s == nil {
		return false
	}
	return patriciatree.Lookup[K](s.root, k)
}

// Insert returns a new NoBitmapSet representing the receiver's members
// union {k}, leaving the receiver unmodified. See Set.Insert for the
// identical persistence and error-handling contract.
func (s *NoBitmapSet[K]) Insert(k K) (*NoBitmapSet[K], error) {
	newRoot, err := patriciatree.Insert[K](s.root, k, s.strat, s.branch)
	if err != nil {
		s.logger.Error().Err(err).Msg("patricia: insert failed, root left untouched")
		return s, wrapAllocErr("node", err)
	}
	if newRoot == s.root {
		return s, nil
	}
	return &NoBitmapSet[K]{
		root:   newRoot,
		strat:  s.strat,
		branch: s.branch,
		logger: s.logger,
	}, nil
}

// Clear returns a new, empty NoBitmapSet sharing this one's allocators
// and logger.
func (s *NoBitmapSet[K]) Clear() *NoBitmapSet[K] {
	return &NoBitmapSet[K]{
		root:   nil,
		strat:  s.strat,
		branch: s.branch,
		logger: s.logger,
	}
}

// Fork returns an O(1) handle copy of the NoBitmapSet.
func (s *NoBitmapSet[K]) Fork() *NoBitmapSet[K] {
	forked := *s
	return &forked
}
