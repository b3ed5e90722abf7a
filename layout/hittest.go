// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"github.com/0xSalik/azul/math32"
	"github.com/0xSalik/azul/tree"
)

// HitTestItem is one node a cursor position falls within, along with the
// point expressed relative to that node's border box and the original
// viewport point.
type HitTestItem struct {
	Node tree.NodeID
	// RelativePoint is p expressed relative to this node's border box,
	// after any ancestor scroll-offset shift has been applied.
	RelativePoint math32.Point2
	// PointInViewport is the original cursor position passed to HitTest,
	// unaffected by any scroll offset — the same point a callback's
	// CallbackInfo.ViewportPoint carries.
	PointInViewport math32.Point2
	IsScrollNode    bool
	// IsIframeHit is always false: this module has no iframe/sub-DOM
	// concept (spec.md's scope is a single styled tree per frame).
	IsIframeHit bool
	IsFocusable bool
}

// HitTestResult is every node under a cursor position, ordered deepest
// (topmost) first, matching azul's LayoutResult::get_hits. Regular and
// Scroll split the same items by IsScrollNode for callers that want one or
// the other without re-filtering Items (spec.md §4.4).
type HitTestResult struct {
	Items  []HitTestItem
	Regular []HitTestItem
	Scroll  []HitTestItem
}

// TopNode returns the frontmost hit, if any.
func (r HitTestResult) TopNode() (tree.NodeID, bool) {
	if len(r.Items) == 0 {
		return tree.Invalid, false
	}
	return r.Items[0].Node, true
}

// ScrollOffsets maps a scroll node's ExternalScrollId to its current
// scroll offset, supplied by the embedder (persisted across frames; this
// core never owns scroll state, only reports which nodes can scroll).
type ScrollOffsets map[ExternalScrollId]math32.Vector2

// HitTest walks result's rectangles and returns every node whose border
// box contains p, deepest-first. A scroll node's descendants are tested
// against p shifted by that scroll node's current offset, so scrolled-away
// content does not falsely hit-test (spec.md §4.4).
func HitTest(result *LayoutResult, p math32.Point2, offsets ScrollOffsets) HitTestResult {
	t := result.StyledTree.Nodes()
	var out HitTestResult
	var walk func(id tree.NodeID, point math32.Point2)
	walk = func(id tree.NodeID, point math32.Point2) {
		rect := result.Rects.Get(id)
		rel, ok := rect.BorderBox().HitTest(point)
		if !ok {
			return
		}
		isScroll := rect.Overflow.IsScrollNode
		_, focusable := result.StyledTree.TabIndex(id)
		item := HitTestItem{
			Node:            id,
			RelativePoint:   rel,
			PointInViewport: p,
			IsScrollNode:    isScroll,
			IsFocusable:     focusable,
		}
		out.Items = append([]HitTestItem{item}, out.Items...)

		childPoint := point
		if isScroll {
			if off, ok := offsets[extScrollID(t, id)]; ok {
				childPoint = point.Add(off)
			}
		}
		for _, c := range t.Children(id) {
			walk(c, childPoint)
		}
	}
	walk(t.Root, p)

	for _, item := range out.Items {
		if item.IsScrollNode {
			out.Scroll = append(out.Scroll, item)
		} else {
			out.Regular = append(out.Regular, item)
		}
	}
	return out
}

func extScrollID(t *tree.Tree, id tree.NodeID) ExternalScrollId {
	return ExternalScrollId(tree.HashNode(t, id))
}
