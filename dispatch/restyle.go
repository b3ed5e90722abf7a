// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dispatch

import (
	"github.com/0xSalik/azul/styles"
	"github.com/0xSalik/azul/tree"
)

// PropertyChange is one property's before/after on one node, the unit
// StyleAndLayoutChanges sorts into a restyle or relayout bucket. It
// stands in for azul's ChangedCssProperty.
type PropertyChange struct {
	Node     tree.NodeID
	Property styles.PropertyKind
}

// Restyler applies a pseudo-class transition (:hover or :active entering
// or leaving) to a node and reports which properties changed value,
// matching azul's StyledNode::restyle_hover/restyle_active. An embedder
// supplies the concrete cascade; this package only consumes its output.
type Restyler interface {
	RestyleHover(id tree.NodeID, entering bool) []styles.PropertyKind
	RestyleActive(id tree.NodeID, entering bool) []styles.PropertyKind
}

// StyleAndLayoutChanges is the per-frame restyle/relayout classification
// that NodesToCheck's hover transitions produce: every changed property
// lands in StyleChanges (paint-only) or LayoutChanges
// (box-model-affecting). Focus changes are not restyled.
// NewStyleAndLayoutChanges runs no relayout and never fills ResizedNodes;
// it stays empty unless the caller sets it.
type StyleAndLayoutChanges struct {
	StyleChanges  []PropertyChange
	LayoutChanges []PropertyChange
	ResizedNodes  []tree.NodeID
}

// NewStyleAndLayoutChanges runs the hover/active restyle for every node
// NodesToCheck flagged as entering or leaving hover, classifying each
// changed property via PropertyKind.CanTriggerRelayout, matching
// window_state.rs::StyleAndLayoutChanges::new.
func NewStyleAndLayoutChanges(nodes *NodesToCheck, restyler Restyler) *StyleAndLayoutChanges {
	out := &StyleAndLayoutChanges{}

	apply := func(id tree.NodeID, entering bool) {
		for _, p := range restyler.RestyleHover(id, entering) {
			out.classify(id, p)
		}
		if nodes.MouseIsDown {
			for _, p := range restyler.RestyleActive(id, entering) {
				out.classify(id, p)
			}
		}
	}

	for id := range nodes.OnMouseEnter {
		apply(id, true)
	}
	for id := range nodes.OnMouseLeave {
		apply(id, false)
	}

	return out
}

func (s *StyleAndLayoutChanges) classify(id tree.NodeID, p styles.PropertyKind) {
	change := PropertyChange{Node: id, Property: p}
	if p.CanTriggerRelayout() {
		s.LayoutChanges = append(s.LayoutChanges, change)
	} else if !p.IsGPUOnly() {
		s.StyleChanges = append(s.StyleChanges, change)
	}
	// GPU-only property changes (opacity/transform) are handled entirely
	// by layout.GpuValueCache.Synchronize and never enter either bucket.
}

// IsEmpty reports whether nothing changed this frame.
func (s *StyleAndLayoutChanges) IsEmpty() bool {
	return len(s.StyleChanges) == 0 && len(s.LayoutChanges) == 0 && len(s.ResizedNodes) == 0
}

// NeedsRedraw reports whether any category of change occurred. The
// original source (original_source/azul-core/src/window_state.rs,
// StyleAndLayoutChanges::need_redraw) ANDs the three non-empty checks
// together, which would require every category to be non-empty
// simultaneously before ever redrawing — contradicted by spec.md §4.7's
// prose ("a redraw is needed when any of the three categories is
// non-empty"). This implementation follows the prose: OR, not AND.
func (s *StyleAndLayoutChanges) NeedsRedraw() bool {
	return len(s.StyleChanges) > 0 || len(s.LayoutChanges) > 0 || len(s.ResizedNodes) > 0
}
