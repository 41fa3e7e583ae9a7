// Copyright (c) 2026 Aleksandr Smorodinov
// SPDX-License-Identifier: MIT

package patricia

import (
	"fmt"

	"github.com/asmorodinov/patricia/internal/nodealloc"
)

// ErrPoolExhausted is the sentinel a caller can errors.Is-check after a
// failed Insert; it is nodealloc.ErrPoolExhausted re-exported at the
// package boundary so callers never need to import internal packages.
var ErrPoolExhausted = nodealloc.ErrPoolExhausted

// wrapAllocErr annotates an allocator failure with the label shape,
// while keeping errors.Is(err, ErrPoolExhausted) working for callers
// that only care about the sentinel. Set and NoBitmapSet pass the label
// "node", so the wrapped error does not say whether the leaf or the
// branch allocator failed.
func wrapAllocErr(shape string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("patricia: allocate %s: %w", shape, err)
}
