// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides the dense, back-pointer-free node tree that the
// layout, differ and hit-test subsystems all walk: nodes are identified
// by a small integer NodeID and every relationship (parent, first child,
// next sibling) lives in a parallel index array rather than on the node
// itself, so cycles are structurally impossible.
package tree

import "hash/fnv"

// NodeID is a dense index into a tree's per-node arrays. The zero value
// is a valid id (the conventional root), matching azul's id_tree::NodeId.
type NodeID int32

// Invalid is returned by navigation methods when there is no such node.
const Invalid NodeID = -1

// Container is a dense array of per-node values of type T, indexed by
// NodeID. It stands in for azul's NodeDataContainer<T>.
type Container[T any] struct {
	vals []T
}

// NewContainer allocates a Container with n zero-valued slots.
func NewContainer[T any](n int) Container[T] {
	return Container[T]{vals: make([]T, n)}
}

// Len returns the number of nodes the container covers.
func (c *Container[T]) Len() int { return len(c.vals) }

// Get returns the value for id.
func (c *Container[T]) Get(id NodeID) T { return c.vals[id] }

// Set stores value for id.
func (c *Container[T]) Set(id NodeID, v T) { c.vals[id] = v }

// Ref returns a pointer to the slot for id, for in-place mutation.
func (c *Container[T]) Ref(id NodeID) *T { return &c.vals[id] }

// All returns the backing slice in node-id order.
func (c *Container[T]) All() []T { return c.vals }

// Tree is the minimal navigation structure shared by the styled tree and
// every derived per-frame structure. Parent/FirstChild/NextSibling use
// Invalid as "no such node".
type Tree struct {
	Parent      []NodeID
	FirstChild  []NodeID
	NextSibling []NodeID
	Root        NodeID
}

// NewTree allocates a Tree with n nodes, all relationships unset.
func NewTree(n int) *Tree {
	t := &Tree{
		Parent:      make([]NodeID, n),
		FirstChild:  make([]NodeID, n),
		NextSibling: make([]NodeID, n),
		Root:        0,
	}
	for i := range t.Parent {
		t.Parent[i] = Invalid
		t.FirstChild[i] = Invalid
		t.NextSibling[i] = Invalid
	}
	return t
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.Parent) }

// Children returns the ids of id's children in sibling order.
func (t *Tree) Children(id NodeID) []NodeID {
	var out []NodeID
	for c := t.FirstChild[id]; c != Invalid; c = t.NextSibling[c] {
		out = append(out, c)
	}
	return out
}

// IsLeaf reports whether id has no children.
func (t *Tree) IsLeaf(id NodeID) bool { return t.FirstChild[id] == Invalid }

// AddChild appends child as the last child of parent. Callers are
// expected to add nodes in a single top-down pass (the tree has no
// remove/reparent operation, matching the "built once per styled-DOM"
// lifecycle of LayoutResult).
func (t *Tree) AddChild(parent, child NodeID) {
	t.Parent[child] = parent
	if t.FirstChild[parent] == Invalid {
		t.FirstChild[parent] = child
		return
	}
	last := t.FirstChild[parent]
	for t.NextSibling[last] != Invalid {
		last = t.NextSibling[last]
	}
	t.NextSibling[last] = child
}

// NodeDepth is a (NodeID, depth) pair used for the non-leaf-parents list,
// sorted so that deeper nodes come first (required by the dispatcher's
// deepest-first callback order, spec.md §4.8 and §8).
type NodeDepth struct {
	Node  NodeID
	Depth int
}

// NonLeafParentsByDepth walks the tree and returns every non-leaf node
// together with its depth, sorted deepest-first. This mirrors the
// teacher's layout solver precomputing a same-shaped list
// (cogentcore.org/core/core/layout.go's non-leaf traversal) so both the
// solver and the dispatcher can iterate root-to-leaf or leaf-to-root
// without re-walking the tree each frame.
func (t *Tree) NonLeafParentsByDepth() []NodeDepth {
	depth := make([]int, t.Len())
	var out []NodeDepth
	var walk func(id NodeID, d int)
	walk = func(id NodeID, d int) {
		depth[id] = d
		if !t.IsLeaf(id) {
			out = append(out, NodeDepth{Node: id, Depth: d})
		}
		for _, c := range t.Children(id) {
			walk(c, d+1)
		}
	}
	walk(t.Root, 0)
	// stable sort, deepest first
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Depth > out[j-1].Depth; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// Ancestors returns the chain of ancestors of id, nearest first, not
// including id itself.
func (t *Tree) Ancestors(id NodeID) []NodeID {
	var out []NodeID
	for p := t.Parent[id]; p != Invalid; p = t.Parent[p] {
		out = append(out, p)
	}
	return out
}

// StateBits are the pseudo-class state flags carried per node.
type StateBits uint8

const (
	StateHover StateBits = 1 << iota
	StateActive
	StateFocus
)

// Has reports whether flag is set.
func (s StateBits) Has(flag StateBits) bool { return s&flag != 0 }

// NodeHash is a process-local structural hash for a node, standing in
// for azul's unspecified DomNodeHash: used only to correlate a scroll
// node's identity across relayouts, never for equality of content.
type NodeHash uint64

// HashNode computes a NodeHash from a node's id and its parent chain,
// stable across relayouts as long as the tree shape doesn't change.
func HashNode(t *Tree, id NodeID) NodeHash {
	h := fnv.New64a()
	var buf [4]byte
	write := func(id NodeID) {
		buf[0] = byte(id)
		buf[1] = byte(id >> 8)
		buf[2] = byte(id >> 16)
		buf[3] = byte(id >> 24)
		h.Write(buf[:])
	}
	write(id)
	for _, a := range t.Ancestors(id) {
		write(a)
	}
	return NodeHash(h.Sum64())
}
