// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events provides the window-state snapshot and the
// window/hover/focus event derivation state machine (spec.md §4.5): given
// the current and previous frame's WindowState, Events.New reports which
// high-level event categories fired, without the embedder having to
// hand-diff mouse/keyboard/focus state itself.
package events

import (
	"github.com/0xSalik/azul/events/key"
	"github.com/0xSalik/azul/tree"
	"github.com/jinzhu/copier"
)

// Position is a cursor position relative to the window, or "not in
// window" when the pointer has left entirely.
type Position struct {
	InWindow bool
	X, Y     float32
}

// WindowPosition is the window's position on the screen, standing in for
// azul's WindowPosition::{Uninitialized, Initialized(x, y)}: a window has
// no meaningful screen position before the OS has placed it.
type WindowPosition struct {
	Initialized bool
	X, Y        float32
}

// MouseState is the mouse-specific slice of a WindowState snapshot.
// ScrollX/ScrollY are edge-triggered: the embedder sets them only for the
// frame an OS scroll event actually arrived on, and must clear them before
// building the next frame's state, the same way a winit delta event works.
// A retained nonzero delta would otherwise re-fire Scroll every frame and
// break the Events::new(s, Some(s)) == empty determinism invariant.
type MouseState struct {
	Cursor     Position
	LeftDown   bool
	RightDown  bool
	MiddleDown bool
	ScrollX    *float32
	ScrollY    *float32
}

// MouseDown reports whether any mouse button is held, matching azul's
// MouseState::mouse_down().
func (m MouseState) MouseDown() bool { return m.LeftDown || m.RightDown || m.MiddleDown }

// KeyState is the keyboard-specific slice of a WindowState snapshot.
// CurrentVirtualKeycode and CurrentChar are edge-triggered like
// Mouse.ScrollX/Y: set only on the frame a key-down or character-input
// event actually fired, matching azul's FullWindowState fields of the same
// name. PressedCodes is level-sensitive (every code currently held down)
// and drives the VirtualKeyDown/VirtualKeyUp edge detection in New.
type KeyState struct {
	Mods                  key.Modifiers
	PressedCodes          map[key.Codes]bool
	CurrentVirtualKeycode *key.Codes
	CurrentChar           *rune
}

// WindowState is one frame's full input snapshot: mouse, keyboard, window
// chrome state, the hit-tested hover set and the focused node, standing in
// for azul's FullWindowState.
type WindowState struct {
	Mouse        MouseState
	Key          KeyState
	HoveredNodes map[tree.NodeID]bool
	FocusedNode  *tree.NodeID
	Theme        string
	Size         struct{ Width, Height float32 }

	// HasFocus is whether the OS window itself currently has input focus
	// (window-level, distinct from FocusedNode's DOM-level focus).
	HasFocus bool
	// IsAboutToClose is set by the embedder the frame it observes a close
	// request (e.g. the window's close button), deriving CloseRequested.
	IsAboutToClose bool
	Position       WindowPosition

	// BackingScaleFactor and SystemHiDPIFactor mirror azul's hidpi_factor
	// and system_hidpi_factor: the former reflects any window-specific
	// override, the latter the OS-reported display scale.
	BackingScaleFactor float32
	SystemHiDPIFactor  float32

	// HoveredFile/DroppedFile are edge-triggered like Mouse.ScrollX/Y: set
	// only for the frame a drag-and-drop gesture actually produced one.
	HoveredFile *string
	DroppedFile *string
}

// Snapshot deep-copies a WindowState, the same role FullWindowState::clone
// plays in window_state.rs before Events::new diffs current against
// previous (SPEC_FULL.md §3): maps and pointer fields must not alias the
// live state the embedder mutates next frame.
func Snapshot(w *WindowState) (*WindowState, error) {
	var out WindowState
	if err := copier.CopyWithOption(&out, w, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return &out, nil
}
