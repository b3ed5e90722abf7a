// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dispatch

import (
	"testing"

	"github.com/0xSalik/azul/layout"
	"github.com/0xSalik/azul/styles"
	"github.com/0xSalik/azul/tree"
	"github.com/stretchr/testify/assert"
)

type fakeRestyler struct {
	hover  []styles.PropertyKind
	active []styles.PropertyKind
}

func (f *fakeRestyler) RestyleHover(tree.NodeID, bool) []styles.PropertyKind  { return f.hover }
func (f *fakeRestyler) RestyleActive(tree.NodeID, bool) []styles.PropertyKind { return f.active }

func TestStyleAndLayoutChangesClassification(t *testing.T) {
	r := &fakeRestyler{hover: []styles.PropertyKind{styles.PropColor, styles.PropWidth, styles.PropOpacity}}
	nodes := &NodesToCheck{
		OnMouseEnter: map[tree.NodeID]layout.HitTestItem{1: {Node: 1}},
		OnMouseLeave: map[tree.NodeID]bool{},
	}

	changes := NewStyleAndLayoutChanges(nodes, r)
	assert.Len(t, changes.StyleChanges, 1)  // PropColor: paint-only
	assert.Len(t, changes.LayoutChanges, 1) // PropWidth: relayout-triggering
	// PropOpacity is GPU-only and lands in neither bucket.
	assert.True(t, changes.NeedsRedraw())
}

func TestStyleAndLayoutChangesActiveOnlyWhenMouseDown(t *testing.T) {
	r := &fakeRestyler{active: []styles.PropertyKind{styles.PropBackgroundColor}}
	nodes := &NodesToCheck{
		OnMouseEnter: map[tree.NodeID]layout.HitTestItem{1: {Node: 1}},
		MouseIsDown:  false,
	}
	changes := NewStyleAndLayoutChanges(nodes, r)
	assert.True(t, changes.IsEmpty())

	nodes.MouseIsDown = true
	changes = NewStyleAndLayoutChanges(nodes, r)
	assert.Len(t, changes.StyleChanges, 1)
}

func TestStyleAndLayoutChangesNeedsRedrawIsOr(t *testing.T) {
	s := &StyleAndLayoutChanges{StyleChanges: []PropertyChange{{Node: 1, Property: styles.PropColor}}}
	assert.True(t, s.NeedsRedraw())
	assert.False(t, s.IsEmpty())

	empty := &StyleAndLayoutChanges{}
	assert.False(t, empty.NeedsRedraw())
	assert.True(t, empty.IsEmpty())
}
