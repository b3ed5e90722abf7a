// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"github.com/0xSalik/azul/styles"
	"github.com/0xSalik/azul/tree"
)

// fakeTree is a minimal tree.StyledTree for tests: no tags, no focus.
type fakeTree struct {
	t *tree.Tree
}

func (f *fakeTree) Nodes() *tree.Tree                 { return f.t }
func (f *fakeTree) TagOf(tree.NodeID) tree.TagID       { return tree.NoTag }
func (f *fakeTree) StateOf(tree.NodeID) tree.StateBits { return 0 }
func (f *fakeTree) TabIndex(tree.NodeID) (int, bool)   { return 0, false }

// nodeStyle is one node's full property set for the fakeCache.
type nodeStyle struct {
	width, height         styles.Value[float32]
	minWidth, minHeight   styles.Value[float32]
	maxWidth, maxHeight   styles.Value[float32]
	marginT, marginR, marginB, marginL   styles.Value[float32]
	paddingT, paddingR, paddingB, paddingL styles.Value[float32]
	borderT, borderR, borderB, borderL   styles.Value[float32]
	top, right, bottom, left styles.Value[float32]
	position       styles.Position
	flexDirection  styles.FlexDirection
	flexGrow       float32
	flexShrink     float32
	justifyContent styles.JustifyContent
	overflowX      styles.Overflow
	overflowY      styles.Overflow
	opacity        styles.Value[float32]
	transform      []styles.Transform
	transformOrigin styles.Value[styles.Origin]
}

// fakeCache implements styles.PropertyCache over a plain map, ignoring
// pseudo-class state (tests don't exercise :hover cascades).
type fakeCache struct {
	nodes map[tree.NodeID]nodeStyle
}

func newFakeCache() *fakeCache { return &fakeCache{nodes: map[tree.NodeID]nodeStyle{}} }

func (c *fakeCache) n(id tree.NodeID) nodeStyle { return c.nodes[id] }

func (c *fakeCache) Width(id tree.NodeID, _ tree.StateBits) styles.Value[float32]  { return c.n(id).width }
func (c *fakeCache) Height(id tree.NodeID, _ tree.StateBits) styles.Value[float32] { return c.n(id).height }
func (c *fakeCache) MinWidth(id tree.NodeID, _ tree.StateBits) styles.Value[float32] { return c.n(id).minWidth }
func (c *fakeCache) MinHeight(id tree.NodeID, _ tree.StateBits) styles.Value[float32] { return c.n(id).minHeight }
func (c *fakeCache) MaxWidth(id tree.NodeID, _ tree.StateBits) styles.Value[float32] { return c.n(id).maxWidth }
func (c *fakeCache) MaxHeight(id tree.NodeID, _ tree.StateBits) styles.Value[float32] { return c.n(id).maxHeight }

func (c *fakeCache) MarginTop(id tree.NodeID, _ tree.StateBits) styles.Value[float32]    { return c.n(id).marginT }
func (c *fakeCache) MarginRight(id tree.NodeID, _ tree.StateBits) styles.Value[float32]  { return c.n(id).marginR }
func (c *fakeCache) MarginBottom(id tree.NodeID, _ tree.StateBits) styles.Value[float32] { return c.n(id).marginB }
func (c *fakeCache) MarginLeft(id tree.NodeID, _ tree.StateBits) styles.Value[float32]   { return c.n(id).marginL }

func (c *fakeCache) PaddingTop(id tree.NodeID, _ tree.StateBits) styles.Value[float32]    { return c.n(id).paddingT }
func (c *fakeCache) PaddingRight(id tree.NodeID, _ tree.StateBits) styles.Value[float32]  { return c.n(id).paddingR }
func (c *fakeCache) PaddingBottom(id tree.NodeID, _ tree.StateBits) styles.Value[float32] { return c.n(id).paddingB }
func (c *fakeCache) PaddingLeft(id tree.NodeID, _ tree.StateBits) styles.Value[float32]   { return c.n(id).paddingL }

func (c *fakeCache) BorderTopWidth(id tree.NodeID, _ tree.StateBits) styles.Value[float32]    { return c.n(id).borderT }
func (c *fakeCache) BorderRightWidth(id tree.NodeID, _ tree.StateBits) styles.Value[float32]  { return c.n(id).borderR }
func (c *fakeCache) BorderBottomWidth(id tree.NodeID, _ tree.StateBits) styles.Value[float32] { return c.n(id).borderB }
func (c *fakeCache) BorderLeftWidth(id tree.NodeID, _ tree.StateBits) styles.Value[float32]   { return c.n(id).borderL }

func (c *fakeCache) Top(id tree.NodeID, _ tree.StateBits) styles.Value[float32]    { return c.n(id).top }
func (c *fakeCache) Right(id tree.NodeID, _ tree.StateBits) styles.Value[float32]  { return c.n(id).right }
func (c *fakeCache) Bottom(id tree.NodeID, _ tree.StateBits) styles.Value[float32] { return c.n(id).bottom }
func (c *fakeCache) Left(id tree.NodeID, _ tree.StateBits) styles.Value[float32]   { return c.n(id).left }

func (c *fakeCache) Position(id tree.NodeID, _ tree.StateBits) styles.Position           { return c.n(id).position }
func (c *fakeCache) FlexDirection(id tree.NodeID, _ tree.StateBits) styles.FlexDirection { return c.n(id).flexDirection }
func (c *fakeCache) FlexGrow(id tree.NodeID, _ tree.StateBits) float32                   { return c.n(id).flexGrow }
func (c *fakeCache) FlexShrink(id tree.NodeID, _ tree.StateBits) float32                 { return c.n(id).flexShrink }
func (c *fakeCache) JustifyContent(id tree.NodeID, _ tree.StateBits) styles.JustifyContent { return c.n(id).justifyContent }
func (c *fakeCache) OverflowX(id tree.NodeID, _ tree.StateBits) styles.Overflow { return c.n(id).overflowX }
func (c *fakeCache) OverflowY(id tree.NodeID, _ tree.StateBits) styles.Overflow { return c.n(id).overflowY }

func (c *fakeCache) Opacity(id tree.NodeID, _ tree.StateBits) styles.Value[float32] { return c.n(id).opacity }
func (c *fakeCache) Transform(id tree.NodeID, _ tree.StateBits) []styles.Transform  { return c.n(id).transform }
func (c *fakeCache) TransformOrigin(id tree.NodeID, _ tree.StateBits) styles.Value[styles.Origin] {
	return c.n(id).transformOrigin
}
