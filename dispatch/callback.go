// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dispatch

import (
	"github.com/0xSalik/azul/events"
	"github.com/0xSalik/azul/layout"
	"github.com/0xSalik/azul/tree"
)

// EventFilter is the tagged union of window/hover/focus event categories
// a callback can subscribe to. Component and Application filters are
// carried as opaque values (spec.md §9: injected explicitly via
// events.Events.Inject, never synthesized here).
type EventFilter struct {
	Window *events.WindowEventFilter
	Hover  *events.HoverEventFilter
	Focus  *events.FocusEventFilter
	Other  any
}

// UpdateScreen is a callback's request for what the embedder should do
// after the frame, ordered DoNothing < RegenerateStyledDomForCurrentWindow
// < RegenerateStyledDomForAllWindows (spec.md §4.8's precedence fold).
type UpdateScreen uint8

const (
	DoNothing UpdateScreen = iota
	RegenerateStyledDomForCurrentWindow
	RegenerateStyledDomForAllWindows
)

// fold combines two UpdateScreen results keeping the higher-precedence
// one, matching CallbacksOfHitTest::call's match arms in window_state.rs.
func fold(current, next UpdateScreen) UpdateScreen {
	switch next {
	case RegenerateStyledDomForCurrentWindow:
		if current == DoNothing {
			return next
		}
	case RegenerateStyledDomForAllWindows:
		if current == DoNothing || current == RegenerateStyledDomForCurrentWindow {
			return next
		}
	}
	return current
}

// CallbackInfo is passed to every invoked callback: the hit node, the
// cursor position relative to it and in the viewport, the current scroll
// offsets, and the out-parameters a callback can set (stop propagation,
// request a focus change, scroll a node). GLContext/Resources are left as
// opaque fields for whatever out-of-scope collaborator the embedder
// plugs in (spec.md §1: rendering/resources are external collaborators).
type CallbackInfo struct {
	Node              tree.NodeID
	RelativePoint     [2]float32
	ViewportPoint     [2]float32
	ScrollStates      layout.ScrollOffsets
	StopPropagation   bool
	FocusTarget       *tree.NodeID
	ScrollRequest     map[tree.NodeID][2]float32
	GLContext         any
	Resources         any
}

// CallbackFunc is a registered event handler: data is the opaque
// user-data handle the embedder attached at registration time (azul's
// RefAny), info carries the per-invocation context above.
type CallbackFunc func(data any, info *CallbackInfo) UpdateScreen

// Callback is one (filter, handler, data) registration on a node.
type Callback struct {
	Event EventFilter
	Func  CallbackFunc
	Data  any
}

// Registry maps a node to the callbacks registered on it. Kept separate
// from tree.NodeData (rather than embedded in it) so the tree package
// never needs to depend on this package's callback function type — the
// embedder builds one registry per styled tree alongside the DOM.
type Registry map[tree.NodeID][]Callback

// CallbacksOfHitTest is the per-frame set of (node, callback) pairs that
// are actually eligible to run this frame, narrowed from the full
// Registry by NodesToCheck, matching window_state.rs::CallbacksOfHitTest.
type CallbacksOfHitTest struct {
	eligible map[tree.NodeID][]Callback
	nodes    *NodesToCheck
	ev       *events.Events
}

// NewCallbacksOfHitTest narrows reg down to the nodes NodesToCheck and ev
// actually flagged this frame: every currently-hit node (for hover
// filters), every mouse-enter/leave node, and the old/new focus nodes.
// Call further filters each node's registered callbacks by matching
// cb.Event against the specific events that fired this frame (spec.md
// §4.8: the dispatch set is "already filtered by event kind"), using nodes
// and ev retained here.
func NewCallbacksOfHitTest(reg Registry, nodes *NodesToCheck, ev *events.Events) *CallbacksOfHitTest {
	c := &CallbacksOfHitTest{eligible: map[tree.NodeID][]Callback{}, nodes: nodes, ev: ev}
	add := func(id tree.NodeID) {
		if cbs, ok := reg[id]; ok {
			c.eligible[id] = cbs
		}
	}
	for id := range nodes.NewHitNodes {
		add(id)
	}
	for id := range nodes.OnMouseEnter {
		add(id)
	}
	for id := range nodes.OnMouseLeave {
		add(id)
	}
	if nodes.OldFocusNode != nil {
		add(*nodes.OldFocusNode)
	}
	if nodes.NewFocusNode != nil {
		add(*nodes.NewFocusNode)
	}
	return c
}

// matches reports whether a callback's filter actually fired for id this
// frame. A Window filter matches any window-level event of that kind,
// regardless of node. A Hover or Focus filter is checked against id
// specifically, since ev's flat event lists don't carry which node a hover
// or focus transition applies to — only c.nodes does. An Other filter
// (Component/Application, spec.md §9) is never gated here: this core
// doesn't synthesize those events, so it can't filter by them.
func (c *CallbacksOfHitTest) matches(id tree.NodeID, f EventFilter) bool {
	switch {
	case f.Window != nil:
		for _, w := range c.ev.WindowEvents {
			if w == *f.Window {
				return true
			}
		}
		return false
	case f.Hover != nil:
		return c.hoverMatches(id, *f.Hover)
	case f.Focus != nil:
		return c.focusMatches(id, *f.Focus)
	default:
		return true
	}
}

func (c *CallbacksOfHitTest) hoverMatches(id tree.NodeID, f events.HoverEventFilter) bool {
	_, stillHit := c.nodes.NewHitNodes[id]
	switch f {
	case events.HoverMouseEnter:
		_, ok := c.nodes.OnMouseEnter[id]
		return ok
	case events.HoverMouseLeave:
		return c.nodes.OnMouseLeave[id]
	case events.HoverMouseOver:
		return stillHit && c.windowFired(events.MouseMove)
	case events.HoverMouseDown:
		return stillHit && c.nodes.MouseIsDown && c.windowFired(events.MouseDown)
	case events.HoverMouseUp:
		return stillHit && c.windowFired(events.MouseUp)
	default:
		return false
	}
}

func (c *CallbacksOfHitTest) focusMatches(id tree.NodeID, f events.FocusEventFilter) bool {
	switch f {
	case events.FocusReceived:
		return c.nodes.NewFocusNode != nil && *c.nodes.NewFocusNode == id
	case events.FocusLost:
		return c.nodes.OldFocusNode != nil && *c.nodes.OldFocusNode == id
	default:
		return false
	}
}

func (c *CallbacksOfHitTest) windowFired(f events.WindowEventFilter) bool {
	for _, w := range c.ev.WindowEvents {
		if w == f {
			return true
		}
	}
	return false
}

// CallCallbacksResult is the aggregate outcome of one dispatch pass,
// matching azul's CallCallbacksResult (window_state.rs, SPEC_FULL.md §4):
// timers/threads/windows_created are opaque descriptor slices the
// embedder interprets after the frame, since this core never runs them.
type CallCallbacksResult struct {
	ShouldScrollRender  bool
	CallbacksUpdateScreen UpdateScreen
	UpdateFocusedNode   *tree.NodeID
	CursorChanged       bool
	Timers              []any
	Threads             []any
	WindowsCreated      []any
}

// Call runs every eligible callback deepest-first (non-leaf parents in
// reverse depth order, then their children in sibling order, then the
// root), honoring a stop-propagation blacklist per event filter and
// folding every callback's UpdateScreen request into the frame's overall
// result (spec.md §4.8). hit supplies the relative/viewport cursor point
// per node. Call fills only CallbacksUpdateScreen and UpdateFocusedNode:
// it leaves CallbackInfo.ScrollStates empty, does not read a callback's
// ScrollRequest, and never sets ShouldScrollRender, CursorChanged,
// Timers, Threads or WindowsCreated.
func (c *CallbacksOfHitTest) Call(t *tree.Tree, nonLeafDepthOrder []tree.NodeDepth, hit layout.HitTestResult) *CallCallbacksResult {
	ret := &CallCallbacksResult{CallbacksUpdateScreen: DoNothing}

	hitByNode := make(map[tree.NodeID]layout.HitTestItem, len(hit.Items))
	for _, item := range hit.Items {
		hitByNode[item.Node] = item
	}

	blacklisted := map[EventFilter]bool{}

	invoke := func(id tree.NodeID) {
		cbs, ok := c.eligible[id]
		if !ok {
			return
		}
		item := hitByNode[id]
		for _, cb := range cbs {
			if blacklisted[cb.Event] {
				continue
			}
			if !c.matches(id, cb.Event) {
				continue
			}
			info := &CallbackInfo{
				Node:          id,
				RelativePoint: [2]float32{item.RelativePoint.X, item.RelativePoint.Y},
				ViewportPoint: [2]float32{item.PointInViewport.X, item.PointInViewport.Y},
			}
			result := cb.Func(cb.Data, info)
			ret.CallbacksUpdateScreen = fold(ret.CallbacksUpdateScreen, result)
			if info.FocusTarget != nil {
				ret.UpdateFocusedNode = info.FocusTarget
			}
			if info.StopPropagation {
				blacklisted[cb.Event] = true
			}
		}
	}

	// deepest-first: walk non-leaf parents in reverse depth order (already
	// sorted deepest-first by tree.NonLeafParentsByDepth), visiting each
	// parent's children, then finally the root itself.
	for _, pd := range nonLeafDepthOrder {
		for _, child := range t.Children(pd.Node) {
			invoke(child)
		}
	}
	invoke(t.Root)

	return ret
}
