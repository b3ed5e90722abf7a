// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"github.com/0xSalik/azul/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsNewFirstFrameNoPrevious(t *testing.T) {
	current := &WindowState{}
	current.Mouse.Cursor = Position{InWindow: true, X: 10, Y: 10}

	e := New(current, nil)
	assert.Contains(t, e.WindowEvents, MouseMove)
	assert.False(t, e.WasMouseDownEvent)
}

func TestEventsMouseDownThenUp(t *testing.T) {
	prev := &WindowState{}
	current := &WindowState{}
	current.Mouse.LeftDown = true

	e := New(current, prev)
	assert.True(t, e.WasMouseDownEvent)
	assert.Contains(t, e.WindowEvents, MouseDown)

	prev2 := current
	current2 := &WindowState{}
	e2 := New(current2, prev2)
	assert.True(t, e2.WasMouseReleaseEvent)
}

func TestEventsHoverTransition(t *testing.T) {
	n1 := tree.NodeID(1)
	prev := &WindowState{HoveredNodes: map[tree.NodeID]bool{}}
	current := &WindowState{HoveredNodes: map[tree.NodeID]bool{n1: true}}

	e := New(current, prev)
	assert.Contains(t, e.HoverEvents, HoverMouseEnter)
	assert.Contains(t, e.HoverEvents, HoverMouseLeave)
}

func TestEventsFocusTransition(t *testing.T) {
	n1 := tree.NodeID(1)
	prev := &WindowState{}
	current := &WindowState{FocusedNode: &n1}

	e := New(current, prev)
	assert.Contains(t, e.FocusEvents, FocusReceived)
	require.True(t, e.NeedsHitTest())
}

func TestEventsIsEmptyWhenNothingChanged(t *testing.T) {
	current := &WindowState{}
	e := New(current, current)
	assert.True(t, e.IsEmpty())
	assert.False(t, e.NeedsHitTest())
}

func TestSnapshotDeepCopiesHoveredNodes(t *testing.T) {
	n1 := tree.NodeID(5)
	w := &WindowState{HoveredNodes: map[tree.NodeID]bool{1: true}, FocusedNode: &n1}
	snap, err := Snapshot(w)
	require.NoError(t, err)

	w.HoveredNodes[2] = true
	assert.NotContains(t, snap.HoveredNodes, tree.NodeID(2))

	*w.FocusedNode = 99
	assert.Equal(t, tree.NodeID(5), *snap.FocusedNode)
}
