// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "github.com/0xSalik/azul/tree"

// WindowEventFilter names a window-level input event, standing in for
// azul's WindowEventFilter enum (window_state.rs).
type WindowEventFilter uint8

const (
	MouseDown WindowEventFilter = iota
	MouseUp
	MouseMove
	MouseEnter
	MouseLeave
	LeftMouseDown
	LeftMouseUp
	RightMouseDown
	RightMouseUp
	MiddleMouseDown
	MiddleMouseUp
	Scroll
	ThemeChanged
	TextInput
	VirtualKeyDown
	VirtualKeyUp
	Resized
	Moved
	CloseRequested
	WindowFocusReceived
	WindowFocusLost
	HoveredFile
	HoveredFileCancelled
	DroppedFile
)

// HoverEventFilter names a per-node hover-transition event.
type HoverEventFilter uint8

const (
	HoverMouseEnter HoverEventFilter = iota
	HoverMouseLeave
	HoverMouseOver
	HoverMouseDown
	HoverMouseUp
)

// FocusEventFilter names a per-node focus-transition event.
type FocusEventFilter uint8

const (
	FocusReceived FocusEventFilter = iota
	FocusLost
)

// Events is the set of high-level event categories derived by diffing
// two WindowState snapshots (spec.md §4.5), plus the bookkeeping the
// dispatcher needs to know what changed without re-deriving it.
type Events struct {
	WindowEvents []WindowEventFilter
	HoverEvents  []HoverEventFilter
	FocusEvents  []FocusEventFilter

	OldHoveredNodes map[tree.NodeID]bool
	OldFocusedNode  *tree.NodeID

	CurrentMouseIsDown   bool
	PreviousMouseIsDown  bool
	WasMouseDownEvent    bool
	WasMouseLeaveEvent   bool
	WasMouseReleaseEvent bool

	// injected holds event filters an embedder explicitly added via
	// Inject, for the reserved Component/Application categories spec.md
	// §9 says this core never synthesizes on its own.
	injected []any
}

// New diffs current against previous (nil on the very first frame) and
// derives the window, hover and focus event sets, mirroring
// window_state.rs's Events::new / get_window_events / get_hover_events /
// get_focus_events (the helpers themselves were filtered from the kept
// source; reconstructed here from spec.md §4.5's prose).
func New(current *WindowState, previous *WindowState) *Events {
	e := &Events{}

	e.CurrentMouseIsDown = current.Mouse.MouseDown()
	if previous != nil {
		e.PreviousMouseIsDown = previous.Mouse.MouseDown()
		e.OldHoveredNodes = previous.HoveredNodes
		e.OldFocusedNode = previous.FocusedNode
	}

	windowSet := map[WindowEventFilter]bool{}

	if !e.PreviousMouseIsDown && e.CurrentMouseIsDown {
		windowSet[MouseDown] = true
	}
	if e.PreviousMouseIsDown && !e.CurrentMouseIsDown {
		windowSet[MouseUp] = true
	}

	var prevLeft, prevRight, prevMiddle bool
	if previous != nil {
		prevLeft, prevRight, prevMiddle = previous.Mouse.LeftDown, previous.Mouse.RightDown, previous.Mouse.MiddleDown
	}
	buttonEdge(windowSet, prevLeft, current.Mouse.LeftDown, LeftMouseDown, LeftMouseUp)
	buttonEdge(windowSet, prevRight, current.Mouse.RightDown, RightMouseDown, RightMouseUp)
	buttonEdge(windowSet, prevMiddle, current.Mouse.MiddleDown, MiddleMouseDown, MiddleMouseUp)

	wasInWindow := previous != nil && previous.Mouse.Cursor.InWindow
	isInWindow := current.Mouse.Cursor.InWindow
	if wasInWindow && !isInWindow {
		windowSet[MouseLeave] = true
	}
	if !wasInWindow && isInWindow {
		windowSet[MouseEnter] = true
	}
	if previous == nil || previous.Mouse.Cursor.X != current.Mouse.Cursor.X || previous.Mouse.Cursor.Y != current.Mouse.Cursor.Y {
		if isInWindow {
			windowSet[MouseMove] = true
		}
	}
	if current.Mouse.ScrollX != nil || current.Mouse.ScrollY != nil {
		windowSet[Scroll] = true
	}
	if previous != nil && previous.Theme != current.Theme {
		windowSet[ThemeChanged] = true
	}
	if previous != nil && (previous.Size.Width != current.Size.Width || previous.Size.Height != current.Size.Height) {
		windowSet[Resized] = true
	}
	if current.Position.Initialized {
		moved := previous == nil || !previous.Position.Initialized ||
			previous.Position.X != current.Position.X || previous.Position.Y != current.Position.Y
		if moved {
			windowSet[Moved] = true
		}
	}
	if current.IsAboutToClose {
		windowSet[CloseRequested] = true
	}
	if previous != nil && previous.HasFocus != current.HasFocus {
		if current.HasFocus {
			windowSet[WindowFocusReceived] = true
		} else {
			windowSet[WindowFocusLost] = true
		}
	}

	for code := range current.Key.PressedCodes {
		if previous == nil || !previous.Key.PressedCodes[code] {
			windowSet[VirtualKeyDown] = true
		}
	}
	if previous != nil {
		for code := range previous.Key.PressedCodes {
			if !current.Key.PressedCodes[code] {
				windowSet[VirtualKeyUp] = true
			}
		}
	}
	if current.Key.CurrentChar != nil {
		windowSet[TextInput] = true
	}

	if current.HoveredFile != nil && (previous == nil || previous.HoveredFile == nil) {
		windowSet[HoveredFile] = true
	}
	if current.HoveredFile == nil && previous != nil && previous.HoveredFile != nil {
		windowSet[HoveredFileCancelled] = true
	}
	if current.DroppedFile != nil {
		windowSet[DroppedFile] = true
	}

	e.WasMouseDownEvent = windowSet[MouseDown]
	e.WasMouseReleaseEvent = windowSet[MouseUp]
	e.WasMouseLeaveEvent = windowSet[MouseLeave]

	hoverSet := map[HoverEventFilter]bool{}
	if windowSet[MouseMove] {
		hoverSet[HoverMouseOver] = true
	}
	if windowSet[MouseDown] {
		hoverSet[HoverMouseDown] = true
	}
	if windowSet[MouseUp] {
		hoverSet[HoverMouseUp] = true
	}
	if hoveredSetChanged(e.OldHoveredNodes, current.HoveredNodes) {
		hoverSet[HoverMouseEnter] = true
		hoverSet[HoverMouseLeave] = true
	}

	focusSet := map[FocusEventFilter]bool{}
	if !sameFocus(e.OldFocusedNode, current.FocusedNode) {
		focusSet[FocusReceived] = true
		focusSet[FocusLost] = true
	}

	for w := range windowSet {
		e.WindowEvents = append(e.WindowEvents, w)
	}
	for h := range hoverSet {
		e.HoverEvents = append(e.HoverEvents, h)
	}
	for f := range focusSet {
		e.FocusEvents = append(e.FocusEvents, f)
	}
	return e
}

// buttonEdge records downFilter/upFilter into set on a false->true or
// true->false transition of one mouse button between frames.
func buttonEdge(set map[WindowEventFilter]bool, was, is bool, downFilter, upFilter WindowEventFilter) {
	if !was && is {
		set[downFilter] = true
	}
	if was && !is {
		set[upFilter] = true
	}
}

func hoveredSetChanged(old, current map[tree.NodeID]bool) bool {
	if len(old) != len(current) {
		return true
	}
	for k := range current {
		if !old[k] {
			return true
		}
	}
	return false
}

func sameFocus(a, b *tree.NodeID) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

// IsEmpty reports whether no event category fired at all.
func (e *Events) IsEmpty() bool {
	return len(e.WindowEvents) == 0 && len(e.HoverEvents) == 0 && len(e.FocusEvents) == 0
}

// NeedsHitTest reports whether hover or focus events fired, meaning the
// embedder must re-hit-test this frame to resolve which nodes they apply
// to (SPEC_FULL.md §4 supplement, reconstructed from spec.md §4.5 prose).
func (e *Events) NeedsHitTest() bool {
	return len(e.HoverEvents) > 0 || len(e.FocusEvents) > 0
}

// WasMouseScroll reports whether a Scroll window event fired this frame.
func (e *Events) WasMouseScroll() bool {
	for _, w := range e.WindowEvents {
		if w == Scroll {
			return true
		}
	}
	return false
}

// Inject adds an embedder-supplied event filter (Component/Application
// category) to the event set. This core never synthesizes these itself
// (spec.md §9's Open Question resolution, SPEC_FULL.md §5): an embedder
// must call Inject explicitly after observing e.g. a component mount.
func (e *Events) Inject(filter any) { e.injected = append(e.injected, filter) }

// Injected returns every event filter added via Inject this frame.
func (e *Events) Injected() []any { return e.injected }
