// Copyright (c) 2026 Aleksandr Smorodinov
// SPDX-License-Identifier: MIT

package patriciatree

import (
	"fmt"

	"github.com/asmorodinov/patricia/internal/bitops"
)

// CheckInvariants walks root and reports the first violation of I1–I5
// found, or nil if none. It is not on any hot path — it exists for
// tests and fuzzing to assert structural soundness after a sequence of
// inserts.
func CheckInvariants[K bitops.Unsigned](root Node[K]) error {
	if root == nil {
		return nil // I1: empty set <=> nil root, trivially satisfied
	}
	return checkNode[K](root, nil, 0)
}

func checkNode[K bitops.Unsigned](n Node[K], parentMask *K, depth int) error {
	if br, ok := n.(*Branch[K]); ok {
		if br.left == nil || br.right == nil {
			return fmt.Errorf("I2 violated: branch at depth %d has a nil child", depth)
		}
		for _, child := range []Node[K]{br.left, br.right} {
			if !bitops.MatchBranch(child.Prefix(), br.prefix, br.mask) {
				return fmt.Errorf("I4 violated: child prefix %#x does not match branch prefix %#x mask %#x", child.Prefix(), br.prefix, br.mask)
			}
		}
		if parentMask != nil && br.mask >= *parentMask {
			return fmt.Errorf("I3 violated: branch mask %#x not strictly below ancestor mask %#x", br.mask, *parentMask)
		}
		if err := checkNode[K](br.left, &br.mask, depth+1); err != nil {
			return err
		}
		return checkNode[K](br.right, &br.mask, depth+1)
	}

	leaf, ok := n.(LeafPayload[K])
	if !ok {
		return fmt.Errorf("unrecognized node shape at depth %d", depth)
	}
	return leaf.Validate()
}
