// Copyright (c) 2026 Aleksandr Smorodinov
// SPDX-License-Identifier: MIT

// Package patricia implements a persistent, structurally-shared set of
// unsigned integers backed by a big-endian Patricia tree with
// bitmap-compressed leaves. Every Insert returns a new Set sharing as
// much structure as possible with its predecessor; a forked Set (a
// plain Go assignment) never observes later mutations made through a
// sibling handle.
//
// Package layout:
//
//	internal/bitops       bit arithmetic shared by every package
//	internal/nodealloc    pluggable node allocation strategies
//	internal/patriciatree the tree: node shapes, Lookup, Insert
//	patricia (here)       Set / NoBitmapSet façades, options, errors
package patricia
