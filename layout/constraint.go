// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout implements the constraint reducer, the two-pass flex
// solver, the transform/opacity differ and the hit tester described in
// spec.md §4.1-§4.4, operating over an embedder-supplied tree.StyledTree
// and styles.PropertyCache.
package layout

import "github.com/0xSalik/azul/styles"

// WhConstraint is the reduced width-or-height constraint for one axis of
// one node, standing in for azul's WhConstraint enum. Exactly one of the
// three states holds at a time.
type WhConstraint struct {
	kind  whKind
	value float32 // meaningful for EqualTo and as the upper bound of Between
	min   float32 // meaningful only for Between
}

type whKind uint8

const (
	whUnconstrained whKind = iota
	whEqualTo
	whBetween
)

// Unconstrained returns a constraint with no lower or upper bound.
func Unconstrained() WhConstraint { return WhConstraint{kind: whUnconstrained} }

// EqualTo returns a constraint pinned to exactly v.
func EqualTo(v float32) WhConstraint { return WhConstraint{kind: whEqualTo, value: v} }

// Between returns a constraint bounded to [min, max].
func Between(min, max float32) WhConstraint {
	return WhConstraint{kind: whBetween, min: min, value: max}
}

// IsUnconstrained, IsEqualTo and IsBetween report which of the three
// states the constraint is in, for callers that need to branch without
// extracting bounds (e.g. diagnostics).
func (w WhConstraint) IsUnconstrained() bool { return w.kind == whUnconstrained }
func (w WhConstraint) IsEqualTo() bool       { return w.kind == whEqualTo }
func (w WhConstraint) IsBetween() bool       { return w.kind == whBetween }

// Max returns the constraint's upper bound and whether one exists.
func (w WhConstraint) Max() (float32, bool) {
	switch w.kind {
	case whEqualTo, whBetween:
		return w.value, true
	default:
		return 0, false
	}
}

// Min returns the constraint's lower bound and whether one exists.
func (w WhConstraint) Min() (float32, bool) {
	switch w.kind {
	case whEqualTo:
		return w.value, true
	case whBetween:
		return w.min, true
	default:
		return 0, false
	}
}

// DeterminePreferred collapses min/max/preferred style values for one axis
// into a single WhConstraint, following azul's WhConstraint derivation
// table (spec.md §4.1): an exact size wins outright; otherwise a min and/or
// max narrow an Unconstrained/Between range, and a min that exceeds a max
// collapses to EqualTo(max) (spec.md §7's "invalid CSS constraints" rule).
func DeterminePreferred(preferred, min, max styles.Value[float32]) WhConstraint {
	if exact, ok := preferred.Get(); ok {
		if minV, hasMin := min.Get(); hasMin && exact < minV {
			exact = minV
		}
		if maxV, hasMax := max.Get(); hasMax && exact > maxV {
			exact = maxV
		}
		return EqualTo(exact)
	}

	minV, hasMin := min.Get()
	maxV, hasMax := max.Get()

	switch {
	case hasMin && hasMax:
		if minV >= maxV {
			return EqualTo(maxV)
		}
		return Between(minV, maxV)
	case hasMin:
		return Between(minV, maxInfinity)
	case hasMax:
		return Between(0, maxV)
	default:
		return Unconstrained()
	}
}

// maxInfinity stands in for "no upper bound" when a Between constraint's
// max must still be representable as a float32 (callers treat it as
// unbounded, never display it).
const maxInfinity = float32(1) << 30

// ResolveAgainstParent resolves an absolutely positioned node's width (or
// height) from its left/right (top/bottom) offsets against the containing
// block's size, per SPEC_FULL.md §4's calculate_from_relative_parent
// supplement: an explicit max-width still wins over the offset-derived
// size, but the offsets themselves take priority over an unconstrained
// auto width.
func (w WhConstraint) ResolveAgainstParent(parentSize float32, start, end styles.Value[float32], max styles.Value[float32]) WhConstraint {
	if w.IsEqualTo() {
		return w
	}
	s, hasStart := start.Get()
	e, hasEnd := end.Get()
	if hasStart && hasEnd {
		derived := parentSize - s - e
		if derived < 0 {
			derived = 0
		}
		if maxV, hasMax := max.Get(); hasMax && derived > maxV {
			derived = maxV
		}
		return EqualTo(derived)
	}
	return w
}
