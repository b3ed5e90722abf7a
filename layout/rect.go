// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import "github.com/0xSalik/azul/math32"

// ResolvedOffsets holds the four box-model edges resolved to px for one
// axis pair, reused for margin/padding/border (azul's ResolvedOffsets).
type ResolvedOffsets struct {
	Top, Right, Bottom, Left float32
}

// TotalHorizontal returns Left+Right.
func (r ResolvedOffsets) TotalHorizontal() float32 { return r.Left + r.Right }

// TotalVertical returns Top+Bottom.
func (r ResolvedOffsets) TotalVertical() float32 { return r.Top + r.Bottom }

// WidthCalculatedRect carries one node's horizontal-axis solver state
// across the SizeUp/SizeDown passes (azul's WidthCalculatedRect).
type WidthCalculatedRect struct {
	Constraint    WhConstraint
	Margin        ResolvedOffsets
	Padding       ResolvedOffsets
	Border        ResolvedOffsets
	PreferredWidth float32 // result of SizeUp, before flex-grow/shrink distribution
	UsedWidth      float32 // final result, after SizeDown
	FlexGrow       float32
	FlexShrink     float32
}

// HeightCalculatedRect is the vertical-axis twin of WidthCalculatedRect.
type HeightCalculatedRect struct {
	Constraint      WhConstraint
	Margin          ResolvedOffsets
	Padding         ResolvedOffsets
	Border          ResolvedOffsets
	PreferredHeight float32
	UsedHeight      float32
}

// PositionKind mirrors styles.Position but is restated here so
// PositionInfo's variants can be matched without importing styles in
// every call site that only cares about the static-offset invariant.
type PositionKind uint8

const (
	PosStatic PositionKind = iota
	PosRelative
	PosAbsolute
	PosFixed
)

// PositionInfo records a node's resolved position-scheme, its would-be
// normal-flow origin, and the inset offset actually applied. Per spec.md
// §8's static-offset invariant, StaticOffset always holds the coordinates
// the node would have under position:static — including for relative,
// absolute and fixed nodes, which are then additionally shifted by
// InsetOffset (for relative) or placed at an inset-derived origin entirely
// (for absolute/fixed), matching azul's PositionInfo variants.
type PositionInfo struct {
	Kind         PositionKind
	StaticOffset math32.Vector2
	InsetOffset  math32.Vector2 // relative/absolute/fixed: resolved top/left-style inset
}

// DirectionalOverflowInfo is the overflow amount for one axis: how far the
// children's content extends past the box's own bound, if at all.
type DirectionalOverflowInfo struct {
	Overflows bool
	Amount    float32
}

// OverflowInfo bundles both axes plus whether the node actually produced a
// scroll node (i.e. overflow is non-zero AND its overflow-x/y computed
// value allows scrolling, spec.md §4.4).
type OverflowInfo struct {
	Horizontal DirectionalOverflowInfo
	Vertical   DirectionalOverflowInfo
	IsScrollNode bool
}

// PositionedRectangle is a node's fully resolved per-frame geometry: the
// border-box size and the box-model edges needed to shrink it to the
// content box, plus the position scheme and accumulated overflow. It is
// the per-node payload of LayoutResult.
type PositionedRectangle struct {
	Size     math32.Size2
	Position PositionInfo
	Margin   ResolvedOffsets
	Padding  ResolvedOffsets
	Border   ResolvedOffsets
	Overflow OverflowInfo

	// Origin is this node's top-left corner in the root's coordinate space:
	// the layout parent's content-box origin plus the node's flow offset
	// (static/relative) or its top/left inset (absolute/fixed).
	Origin math32.Point2

	// TextLayoutHoles carries an embedder-supplied text node's exclusion
	// rects (e.g. an inline image a paragraph wraps around) through to the
	// renderer. The solver never consults it (SPEC_FULL.md §5's Open
	// Question resolution, matching ui_solver.rs's TODO status); it's
	// metadata-only storage for whatever produced the rects upstream.
	TextLayoutHoles []math32.Rect2
}

// BorderBox returns the node's bounding rect including border and padding
// but excluding margin, anchored at Origin.
func (p PositionedRectangle) BorderBox() math32.Rect2 {
	return math32.NewRect2(p.Origin, p.Size)
}

// ContentBox returns the rect available to children: BorderBox shrunk by
// border and padding on all four sides.
func (p PositionedRectangle) ContentBox() math32.Rect2 {
	bb := p.BorderBox()
	inset := func(r math32.Rect2, top, right, bottom, left float32) math32.Rect2 {
		return math32.NewRect2(
			math32.Vec2(r.Origin.X+left, r.Origin.Y+top),
			math32.Size(r.Size.Width-left-right, r.Size.Height-top-bottom),
		)
	}
	withBorder := inset(bb, p.Border.Top, p.Border.Right, p.Border.Bottom, p.Border.Left)
	return inset(withBorder, p.Padding.Top, p.Padding.Right, p.Padding.Bottom, p.Padding.Left)
}
