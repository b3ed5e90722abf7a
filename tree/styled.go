// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// TagID is a stable identifier an embedder assigns to a node so it can be
// found again after a relayout without walking the tree, standing in for
// azul's TagId/ScrollTagId. Zero is "no tag".
type TagID uint64

// NoTag is the zero TagID, meaning the node carries no stable tag.
const NoTag TagID = 0

// StyledTree is the read-only contract the layout, differ, hit-test and
// dispatch packages need from an embedder-owned DOM: navigation via the
// embedded *Tree plus the handful of per-node facts that aren't CSS
// properties (a node's stable tag, its pseudo-class state, whether it
// participates in tab order). Style properties themselves are reached
// through a separate styles.PropertyCache so this package never depends
// on the styles package, matching spec.md §6's "External Interfaces" split
// between the styled-tree contract and the CSS property contract.
type StyledTree interface {
	// Nodes returns the underlying navigation tree.
	Nodes() *Tree

	// TagOf returns id's stable tag, or NoTag if it has none.
	TagOf(id NodeID) TagID

	// StateOf returns id's current pseudo-class state bits.
	StateOf(id NodeID) StateBits

	// TabIndex returns id's tabindex and whether it participates in tab
	// order at all (azul's Option<TabIndex>).
	TabIndex(id NodeID) (index int, focusable bool)
}

// TagToNode inverts a StyledTree's tag assignment into a tag -> node
// lookup, the same role azul's `StyledDom::tag_ids_to_node_ids` plays for
// resolving a scroll tag or a hit-test result back to a node.
func TagToNode(st StyledTree) map[TagID]NodeID {
	t := st.Nodes()
	out := make(map[TagID]NodeID, t.Len())
	for id := NodeID(0); int(id) < t.Len(); id++ {
		if tag := st.TagOf(id); tag != NoTag {
			out[tag] = id
		}
	}
	return out
}
