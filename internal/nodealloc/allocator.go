// Copyright (c) 2026 Aleksandr Smorodinov
// SPDX-License-Identifier: MIT

// Package nodealloc implements the pluggable node-allocation strategies
// the Patricia tree consumes as a capability: Heap, a fixed-size Pool,
// a conditional TwoPool dispatching by node shape, and an unbounded
// FreeList. None of these strategies know anything about Patricia trees
// — they allocate and recycle values of an arbitrary type T, exactly the
// "allocate/deallocate" capability boundary the tree is built against.
package nodealloc

import "errors"

// ErrPoolExhausted is returned by New when a bounded pool has no spare
// capacity. The caller's prior state is left untouched.
var ErrPoolExhausted = errors.New("nodealloc: pool exhausted")

// ErrAllocatorMisuse is returned by NewTwoPool when a node shape's
// actual byte size disagrees with the size the caller declared for it
// — a tree wired to the wrong pool, not a transient condition. It is
// never retried, and is returned before either underlying pool has
// allocated anything.
var ErrAllocatorMisuse = errors.New("nodealloc: allocator misuse")

// Allocator is the capability the tree consumes to obtain and recycle
// node storage. New returns a fresh, zero-valued *T (or an error on
// exhaustion). Release returns a *T the caller has proven unreachable
// from any retained Handle back to the strategy, which may reuse its
// storage for a future New; strategies that never reuse storage (Heap)
// may treat Release as a no-op.
//
// Allocator is a capability, not a singleton: a tree never assumes two
// Allocator values of the same type share storage, and two Set
// instances built against different Allocators must never have their
// handles mixed.
type Allocator[T any] interface {
	New() (*T, error)
	Release(*T)
}
