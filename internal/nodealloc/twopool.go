// Copyright (c) 2026 Aleksandr Smorodinov
// SPDX-License-Identifier: MIT

package nodealloc

// TwoPool pairs two fixed-size pools, one per node shape, so a tree can
// keep Leaf allocations and Branch allocations in physically separate
// arenas — the Go rendition of the "Conditional two-pool" strategy
// (TwoPoolsAllocator, layered on ConditionalAllocator's size-matching
// dispatch).
//
// The C++ original dispatches New/Release on a runtime byte size and
// throws unconditionally — independent of either pool's remaining
// capacity — when the requested size matches neither configured slot
// size. NewTwoPool reproduces that as an eager, construction-time
// check: the caller states the byte size it expects each shape to have
// (sizeA, sizeB), and construction fails with ErrAllocatorMisuse if
// TA's or TB's actual size disagrees. That keeps "wrong shape wired to
// this pool" (a configuration bug, kind 2, never retried) distinct from
// "pool temporarily out of slots" (ErrPoolExhausted, kind 1, surfaced
// from New on the hot path).
type TwoPool[TA, TB any] struct {
	a *Pool[TA]
	b *Pool[TB]
}

// NewTwoPool builds a TwoPool with capA slots for TA and capB slots for
// TB, after checking that TA and TB actually have the byte sizes the
// caller expects (sizeA, sizeB) — the Go stand-in for
// ConditionalAllocator's EqualsCondition<Size1>/EqualsCondition<Size2>
// match. A mismatch is a wiring bug, not a transient condition, and is
// reported as ErrAllocatorMisuse before either pool has handed out a
// single value.
func NewTwoPool[TA, TB any](capA int, sizeA uintptr, capB int, sizeB uintptr) (*TwoPool[TA, TB], error) {
	a := NewPool[TA](capA)
	b := NewPool[TB](capB)
	if a.SlotSize() != sizeA || b.SlotSize() != sizeB {
		return nil, ErrAllocatorMisuse
	}
	return &TwoPool[TA, TB]{a: a, b: b}, nil
}

// NewA allocates from the A-shaped pool.
func (t *TwoPool[TA, TB]) NewA() (*TA, error) { return t.a.New() }

// NewB allocates from the B-shaped pool.
func (t *TwoPool[TA, TB]) NewB() (*TB, error) { return t.b.New() }

// ReleaseA returns a value to the A-shaped pool.
func (t *TwoPool[TA, TB]) ReleaseA(n *TA) { t.a.Release(n) }

// ReleaseB returns a value to the B-shaped pool.
func (t *TwoPool[TA, TB]) ReleaseB(n *TB) { t.b.Release(n) }

// StatsA returns the A-shaped pool's live/total counters.
func (t *TwoPool[TA, TB]) StatsA() (live, total int64) { return t.a.Stats() }

// StatsB returns the B-shaped pool's live/total counters.
func (t *TwoPool[TA, TB]) StatsB() (live, total int64) { return t.b.Stats() }

// AsAllocatorA returns a view of the A-shaped pool satisfying
// Allocator[TA] — the adapter a tree needs to actually consume a
// TwoPool, the Go equivalent of AdapterAllocator wrapping a
// size-dispatching allocator in a typed allocation interface.
func (t *TwoPool[TA, TB]) AsAllocatorA() Allocator[TA] { return twoPoolAView[TA, TB]{t} }

// AsAllocatorB returns a view of the B-shaped pool satisfying
// Allocator[TB]; see AsAllocatorA.
func (t *TwoPool[TA, TB]) AsAllocatorB() Allocator[TB] { return twoPoolBView[TA, TB]{t} }

type twoPoolAView[TA, TB any] struct{ tp *TwoPool[TA, TB] }

func (v twoPoolAView[TA, TB]) New() (*TA, error) { return v.tp.NewA() }
func (v twoPoolAView[TA, TB]) Release(n *TA)     { v.tp.ReleaseA(n) }

type twoPoolBView[TA, TB any] struct{ tp *TwoPool[TA, TB] }

func (v twoPoolBView[TA, TB]) New() (*TB, error) { return v.tp.NewB() }
func (v twoPoolBView[TA, TB]) Release(n *TB)     { v.tp.ReleaseB(n) }
