// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dispatch turns a frame's derived events into the set of nodes
// that actually need attention (§4.6), classifies the resulting style and
// layout changes (§4.7), and runs the callback dispatcher that walks the
// hit-tested tree deepest-first (§4.8).
package dispatch

import (
	"github.com/0xSalik/azul/events"
	"github.com/0xSalik/azul/layout"
	"github.com/0xSalik/azul/tree"
)

// NodesToCheck narrows a frame's hover/focus event derivation down to the
// specific nodes a restyle or a callback dispatch actually needs to visit,
// standing in for azul's NodesToCheck (window_state.rs).
type NodesToCheck struct {
	NewHitNodes map[tree.NodeID]layout.HitTestItem
	OldHitNodes map[tree.NodeID]bool

	OnMouseEnter map[tree.NodeID]layout.HitTestItem
	OnMouseLeave map[tree.NodeID]bool

	OldFocusNode *tree.NodeID
	NewFocusNode *tree.NodeID

	MouseIsDown bool
}

// NewNodesToCheck builds a NodesToCheck from a hit-test result and the
// frame's derived Events, matching window_state.rs::NodesToCheck::new.
func NewNodesToCheck(hit layout.HitTestResult, ev *events.Events) *NodesToCheck {
	n := &NodesToCheck{
		NewHitNodes:  map[tree.NodeID]layout.HitTestItem{},
		OldHitNodes:  ev.OldHoveredNodes,
		OnMouseEnter: map[tree.NodeID]layout.HitTestItem{},
		OnMouseLeave: map[tree.NodeID]bool{},
		OldFocusNode: ev.OldFocusedNode,
		MouseIsDown:  ev.CurrentMouseIsDown,
	}

	if !ev.WasMouseLeaveEvent {
		for _, item := range hit.Items {
			n.NewHitNodes[item.Node] = item
		}
	}

	if ev.WasMouseDownEvent || ev.WasMouseReleaseEvent {
		if top, ok := hit.TopNode(); ok {
			n.NewFocusNode = &top
		}
	} else {
		n.NewFocusNode = ev.OldFocusedNode
	}

	for id, item := range n.NewHitNodes {
		if !n.OldHitNodes[id] {
			n.OnMouseEnter[id] = item
		}
	}
	for id := range n.OldHitNodes {
		if _, stillHit := n.NewHitNodes[id]; !stillHit {
			n.OnMouseLeave[id] = true
		}
	}

	return n
}

// Empty returns a NodesToCheck with nothing to do, for a frame where
// ev.IsEmpty() short-circuits further work (azul's NodesToCheck::empty).
func Empty(mouseDown bool) *NodesToCheck {
	return &NodesToCheck{
		NewHitNodes:  map[tree.NodeID]layout.HitTestItem{},
		OldHitNodes:  map[tree.NodeID]bool{},
		OnMouseEnter: map[tree.NodeID]layout.HitTestItem{},
		OnMouseLeave: map[tree.NodeID]bool{},
		MouseIsDown:  mouseDown,
	}
}

// NeedsHoverActiveRestyle reports whether any node entered or left the
// hover set this frame.
func (n *NodesToCheck) NeedsHoverActiveRestyle() bool {
	return len(n.OnMouseEnter) > 0 || len(n.OnMouseLeave) > 0
}

// NeedsFocusResult reports whether the focused node changed this frame.
func (n *NodesToCheck) NeedsFocusResult() bool {
	return !sameNode(n.OldFocusNode, n.NewFocusNode)
}

func sameNode(a, b *tree.NodeID) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}
