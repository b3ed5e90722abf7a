// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeStyledTree struct {
	tree *Tree
	tags map[NodeID]TagID
}

func (f *fakeStyledTree) Nodes() *Tree                    { return f.tree }
func (f *fakeStyledTree) TagOf(id NodeID) TagID           { return f.tags[id] }
func (f *fakeStyledTree) StateOf(id NodeID) StateBits     { return 0 }
func (f *fakeStyledTree) TabIndex(id NodeID) (int, bool)  { return 0, false }

func TestTagToNode(t *testing.T) {
	tr := buildSample()
	st := &fakeStyledTree{tree: tr, tags: map[NodeID]TagID{3: 100, 4: 200}}

	m := TagToNode(st)
	assert.Equal(t, NodeID(3), m[TagID(100)])
	assert.Equal(t, NodeID(4), m[TagID(200)])
	assert.Len(t, m, 2)
}
