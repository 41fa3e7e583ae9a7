// Copyright (c) 2026 Aleksandr Smorodinov
// SPDX-License-Identifier: MIT

package nodealloc

import (
	"sync/atomic"
	"unsafe"

	"github.com/bits-and-blooms/bitset"
)

// Pool is a fixed-size pool: a preallocated contiguous slab divided into
// equal slots, tracked by a free-slot bitmap. Release is O(1); New
// scans the bitmap from slot 0 for the lowest free slot, so its cost
// grows with the number of occupied low slots. Capacity and slot size are fixed at construction;
// exhaustion returns ErrPoolExhausted rather than growing, per the
// "Fixed-size pool" strategy of the allocation interface.
//
// Pool is not safe for concurrent use without external synchronization,
// matching the allocator's documented thread-unsafety contract.
type Pool[T any] struct {
	slab []T
	free *bitset.BitSet // bit i set means slab[i] is available

	totalAllocated atomic.Int64
	currentLive    atomic.Int64
}

// NewPool preallocates a Pool with room for capacity values of T.
func NewPool[T any](capacity int) *Pool[T] {
	p := &Pool[T]{
		slab: make([]T, capacity),
		free: bitset.New(uint(capacity)),
	}
	for i := 0; i < capacity; i++ {
		p.free.Set(uint(i))
	}
	return p
}

// SlotSize reports the byte size of one slab element, the Go stand-in
// for the spec's allocate(size)/deallocate(size, ptr) size parameter.
// TwoPool uses it to detect a misconfigured pool at construction time.
func (p *Pool[T]) SlotSize() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

func (p *Pool[T]) New() (*T, error) {
	idx, ok := p.free.NextSet(0)
	if !ok {
		return nil, ErrPoolExhausted
	}
	p.free.Clear(idx)
	p.totalAllocated.Add(1)
	p.currentLive.Add(1)

	n := &p.slab[idx]
	var zero T
	*n = zero
	return n, nil
}

func (p *Pool[T]) Release(n *T) {
	idx := p.indexOf(n)
	if idx < 0 {
		return // not ours; nothing to recycle
	}
	var zero T
	*n = zero
	p.free.Set(uint(idx))
	p.currentLive.Add(-1)
}

func (p *Pool[T]) indexOf(n *T) int {
	if len(p.slab) == 0 {
		return -1
	}
	base := uintptr(unsafe.Pointer(&p.slab[0]))
	addr := uintptr(unsafe.Pointer(n))
	sz := unsafe.Sizeof(p.slab[0])
	if addr < base {
		return -1
	}
	idx := (addr - base) / sz
	if idx >= uintptr(len(p.slab)) {
		return -1
	}
	return int(idx)
}

// Stats returns the number of currently checked-out slots and the total
// number of New() calls that succeeded.
func (p *Pool[T]) Stats() (live, total int64) {
	return p.currentLive.Load(), p.totalAllocated.Load()
}

// Capacity returns the fixed number of slots in the pool.
func (p *Pool[T]) Capacity() int {
	return len(p.slab)
}
