// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/0xSalik/azul/styles"
	"github.com/0xSalik/azul/tree"
)

// demoTree is a minimal tree.StyledTree backed by a plain map, standing
// in for whatever DOM builder an embedder plugs in (spec.md §6's
// External Interfaces: this core never constructs a styled tree itself).
type demoTree struct {
	t     *tree.Tree
	state map[tree.NodeID]tree.StateBits
}

func (d *demoTree) Nodes() *tree.Tree           { return d.t }
func (d *demoTree) TagOf(tree.NodeID) tree.TagID { return tree.NoTag }
func (d *demoTree) StateOf(id tree.NodeID) tree.StateBits {
	return d.state[id]
}
func (d *demoTree) TabIndex(tree.NodeID) (int, bool) { return 0, false }

// demoCache is a minimal styles.PropertyCache over a plain map, playing
// the role a cascaded stylesheet would in a real embedder.
type demoCache struct {
	nodes map[tree.NodeID]demoStyle
}

type demoStyle struct {
	width, height styles.Value[float32]
	flexDirection styles.FlexDirection
	justify       styles.JustifyContent
	flexGrow      float32
}

func (c *demoCache) n(id tree.NodeID) demoStyle { return c.nodes[id] }

func (c *demoCache) Width(id tree.NodeID, _ tree.StateBits) styles.Value[float32] { return c.n(id).width }
func (c *demoCache) Height(id tree.NodeID, _ tree.StateBits) styles.Value[float32] {
	return c.n(id).height
}
func (c *demoCache) MinWidth(tree.NodeID, tree.StateBits) styles.Value[float32]  { return styles.None[float32]() }
func (c *demoCache) MinHeight(tree.NodeID, tree.StateBits) styles.Value[float32] { return styles.None[float32]() }
func (c *demoCache) MaxWidth(tree.NodeID, tree.StateBits) styles.Value[float32]  { return styles.None[float32]() }
func (c *demoCache) MaxHeight(tree.NodeID, tree.StateBits) styles.Value[float32] { return styles.None[float32]() }

func (c *demoCache) MarginTop(tree.NodeID, tree.StateBits) styles.Value[float32]    { return styles.None[float32]() }
func (c *demoCache) MarginRight(tree.NodeID, tree.StateBits) styles.Value[float32]  { return styles.None[float32]() }
func (c *demoCache) MarginBottom(tree.NodeID, tree.StateBits) styles.Value[float32] { return styles.None[float32]() }
func (c *demoCache) MarginLeft(tree.NodeID, tree.StateBits) styles.Value[float32]   { return styles.None[float32]() }

func (c *demoCache) PaddingTop(tree.NodeID, tree.StateBits) styles.Value[float32]    { return styles.None[float32]() }
func (c *demoCache) PaddingRight(tree.NodeID, tree.StateBits) styles.Value[float32]  { return styles.None[float32]() }
func (c *demoCache) PaddingBottom(tree.NodeID, tree.StateBits) styles.Value[float32] { return styles.None[float32]() }
func (c *demoCache) PaddingLeft(tree.NodeID, tree.StateBits) styles.Value[float32]   { return styles.None[float32]() }

func (c *demoCache) BorderTopWidth(tree.NodeID, tree.StateBits) styles.Value[float32]    { return styles.None[float32]() }
func (c *demoCache) BorderRightWidth(tree.NodeID, tree.StateBits) styles.Value[float32]  { return styles.None[float32]() }
func (c *demoCache) BorderBottomWidth(tree.NodeID, tree.StateBits) styles.Value[float32] { return styles.None[float32]() }
func (c *demoCache) BorderLeftWidth(tree.NodeID, tree.StateBits) styles.Value[float32]   { return styles.None[float32]() }

func (c *demoCache) Top(tree.NodeID, tree.StateBits) styles.Value[float32]    { return styles.None[float32]() }
func (c *demoCache) Right(tree.NodeID, tree.StateBits) styles.Value[float32]  { return styles.None[float32]() }
func (c *demoCache) Bottom(tree.NodeID, tree.StateBits) styles.Value[float32] { return styles.None[float32]() }
func (c *demoCache) Left(tree.NodeID, tree.StateBits) styles.Value[float32]   { return styles.None[float32]() }

func (c *demoCache) Position(tree.NodeID, tree.StateBits) styles.Position { return styles.PositionStatic }
func (c *demoCache) FlexDirection(id tree.NodeID, _ tree.StateBits) styles.FlexDirection {
	return c.n(id).flexDirection
}
func (c *demoCache) FlexGrow(id tree.NodeID, _ tree.StateBits) float32   { return c.n(id).flexGrow }
func (c *demoCache) FlexShrink(tree.NodeID, tree.StateBits) float32     { return 1 }
func (c *demoCache) JustifyContent(id tree.NodeID, _ tree.StateBits) styles.JustifyContent {
	return c.n(id).justify
}
func (c *demoCache) OverflowX(tree.NodeID, tree.StateBits) styles.Overflow { return styles.OverflowVisible }
func (c *demoCache) OverflowY(tree.NodeID, tree.StateBits) styles.Overflow { return styles.OverflowVisible }

func (c *demoCache) Opacity(tree.NodeID, tree.StateBits) styles.Value[float32] { return styles.None[float32]() }
func (c *demoCache) Transform(tree.NodeID, tree.StateBits) []styles.Transform  { return nil }
func (c *demoCache) TransformOrigin(tree.NodeID, tree.StateBits) styles.Value[styles.Origin] {
	return styles.None[styles.Origin]()
}

// buildDemoDOM constructs a three-node row: a 400x200 container with two
// flex children, the way a real embedder's DOM builder would hand the
// solver its input each frame.
func buildDemoDOM() (*demoTree, *demoCache) {
	t := tree.NewTree(3)
	t.AddChild(0, 1)
	t.AddChild(0, 2)

	cache := &demoCache{nodes: map[tree.NodeID]demoStyle{
		0: {width: styles.Exact[float32](400), height: styles.Exact[float32](200), flexDirection: styles.Row, justify: styles.JustifySpaceBetween},
		1: {width: styles.Exact[float32](100), height: styles.Exact[float32](100)},
		2: {width: styles.Exact[float32](150), height: styles.Exact[float32](80)},
	}}
	return &demoTree{t: t, state: map[tree.NodeID]tree.StateBits{}}, cache
}
