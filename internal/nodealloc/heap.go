// Copyright (c) 2026 Aleksandr Smorodinov
// SPDX-License-Identifier: MIT

package nodealloc

// Heap delegates directly to the Go runtime allocator. It never fails
// and Release is a no-op — the garbage collector reclaims storage once
// the last reference drops, which is the Go-native rendition of "node
// lifetime ends when the last handle referring to it is dropped".
type Heap[T any] struct{}

// NewHeap returns a Heap allocator for T.
func NewHeap[T any]() Heap[T] { return Heap[T]{} }

func (Heap[T]) New() (*T, error) { return new(T), nil }

func (Heap[T]) Release(*T) {}
