// Copyright (c) 2026 Aleksandr Smorodinov
// SPDX-License-Identifier: MIT

package patricia

import (
	"github.com/rs/zerolog"

	"github.com/asmorodinov/patricia/internal/bitops"
	"github.com/asmorodinov/patricia/internal/nodealloc"
	"github.com/asmorodinov/patricia/internal/patriciatree"
)

// config collects everything NewSet's options may override; NewSet
// fills in whatever a caller leaves unset with nodealloc.Heap allocators
// and a zerolog.Nop() logger.
type config[K bitops.Unsigned, B bitops.Unsigned] struct {
	leafAlloc   nodealloc.Allocator[patriciatree.BitmapLeaf[K, B]]
	branchAlloc nodealloc.Allocator[patriciatree.Branch[K]]
	logger      zerolog.Logger
}

// Option configures a Set at construction time. The zero Set is not
// valid; always build one through NewSet.
type Option[K bitops.Unsigned, B bitops.Unsigned] func(*config[K, B])

// WithLeafAllocator overrides the allocation strategy used for bitmap
// leaves. The default is an unbounded nodealloc.Heap.
func WithLeafAllocator[K bitops.Unsigned, B bitops.Unsigned](alloc nodealloc.Allocator[patriciatree.BitmapLeaf[K, B]]) Option[K, B] {
	return func(c *config[K, B]) { c.leafAlloc = alloc }
}

// WithBranchAllocator overrides the allocation strategy used for branch
// nodes. The default is an unbounded nodealloc.Heap.
func WithBranchAllocator[K bitops.Unsigned, B bitops.Unsigned](alloc nodealloc.Allocator[patriciatree.Branch[K]]) Option[K, B] {
	return func(c *config[K, B]) { c.branchAlloc = alloc }
}

// WithLogger attaches a zerolog.Logger that receives one diagnostic
// event: an Insert that fails, such as on pool exhaustion. The default is zerolog.Nop(): a
// Set stays silent unless a caller opts in.
func WithLogger[K bitops.Unsigned, B bitops.Unsigned](logger zerolog.Logger) Option[K, B] {
	return func(c *config[K, B]) { c.logger = logger }
}
