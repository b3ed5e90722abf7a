// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import "github.com/0xSalik/azul/tree"

// FlexDirection is the flex-direction property.
type FlexDirection uint8

const (
	Row FlexDirection = iota
	RowReverse
	Column
	ColumnReverse
)

// IsHorizontal reports whether the main axis runs left-right.
func (d FlexDirection) IsHorizontal() bool { return d == Row || d == RowReverse }

// JustifyContent is the justify-content property.
type JustifyContent uint8

const (
	JustifyStart JustifyContent = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Position is the CSS position property.
type Position uint8

const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
)

// IsPositioned reports whether the node is taken out of normal flow for
// the absolute-positioning pass (spec.md §4.2).
func (p Position) IsPositioned() bool { return p == PositionAbsolute || p == PositionFixed }

// Overflow is the overflow-x / overflow-y property.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
	OverflowAuto
)

// AllowsScroll reports whether the overflow mode can produce a scroll
// node (spec.md §4.4's scroll-node hit testing).
func (o Overflow) AllowsScroll() bool { return o == OverflowScroll || o == OverflowAuto }

// PropertyKind names every style property the restyle/relayout classifier
// (spec.md §4.7) needs to reason about, so the classification table can be
// expressed as a single switch instead of scattered string comparisons.
type PropertyKind uint8

const (
	PropWidth PropertyKind = iota
	PropHeight
	PropMinWidth
	PropMinHeight
	PropMaxWidth
	PropMaxHeight
	PropMarginTop
	PropMarginRight
	PropMarginBottom
	PropMarginLeft
	PropPaddingTop
	PropPaddingRight
	PropPaddingBottom
	PropPaddingLeft
	PropBorderTopWidth
	PropBorderRightWidth
	PropBorderBottomWidth
	PropBorderLeftWidth
	PropTop
	PropRight
	PropBottom
	PropLeft
	PropPosition
	PropFlexDirection
	PropFlexGrow
	PropFlexShrink
	PropJustifyContent
	PropOverflowX
	PropOverflowY
	PropOpacity
	PropTransform
	PropTransformOrigin
	PropBackgroundColor
	PropColor
	PropBoxShadow
)

// layoutAffecting lists every PropertyKind whose change can move a box
// edge, i.e. everything except the GPU-only properties (opacity,
// transform, transform-origin) and the paint-only ones (color,
// background-color, box-shadow). Grounded on
// original_source/azul-core/src/ui_solver.rs's relayout/restyle split
// (spec.md §4.7): opacity and transform are folded into the GPU frame
// without a new layout pass, every other visual property either needs a
// full relayout (box-model properties) or a cheap restyle-only repaint
// (paint-only properties like color/background/box-shadow).
var layoutAffecting = map[PropertyKind]bool{
	PropWidth: true, PropHeight: true,
	PropMinWidth: true, PropMinHeight: true,
	PropMaxWidth: true, PropMaxHeight: true,
	PropMarginTop: true, PropMarginRight: true, PropMarginBottom: true, PropMarginLeft: true,
	PropPaddingTop: true, PropPaddingRight: true, PropPaddingBottom: true, PropPaddingLeft: true,
	PropBorderTopWidth: true, PropBorderRightWidth: true, PropBorderBottomWidth: true, PropBorderLeftWidth: true,
	PropTop: true, PropRight: true, PropBottom: true, PropLeft: true,
	PropPosition: true, PropFlexDirection: true, PropFlexGrow: true, PropFlexShrink: true,
	PropJustifyContent: true, PropOverflowX: true, PropOverflowY: true,
}

// gpuOnly lists the properties the differ folds straight into the GPU
// frame with no restyle or relayout pass at all (spec.md §4.3).
var gpuOnly = map[PropertyKind]bool{
	PropOpacity: true, PropTransform: true, PropTransformOrigin: true,
}

// CanTriggerRelayout reports whether a change to this property requires
// re-running the box-model solver.
func (k PropertyKind) CanTriggerRelayout() bool { return layoutAffecting[k] }

// IsGPUOnly reports whether a change to this property is handled entirely
// by the transform/opacity differ, bypassing restyle and relayout.
func (k PropertyKind) IsGPUOnly() bool { return gpuOnly[k] }

// IsRestyleOnly reports whether a change needs a paint-only restyle pass
// (neither a relayout nor a GPU-only update): every property that isn't
// one of the above two categories.
func (k PropertyKind) IsRestyleOnly() bool { return !k.CanTriggerRelayout() && !k.IsGPUOnly() }

// PropertyCache is the read-only accessor the layout solver, the differ
// and the restyle classifier use to pull computed values off a styled
// tree, standing in for azul's CssPropertyCache. An embedder supplies a
// concrete implementation (typically backed by a cascaded stylesheet);
// this package only depends on the shape of the accessor, not a specific
// cascade engine.
type PropertyCache interface {
	Width(id tree.NodeID, state tree.StateBits) Value[float32]
	Height(id tree.NodeID, state tree.StateBits) Value[float32]
	MinWidth(id tree.NodeID, state tree.StateBits) Value[float32]
	MinHeight(id tree.NodeID, state tree.StateBits) Value[float32]
	MaxWidth(id tree.NodeID, state tree.StateBits) Value[float32]
	MaxHeight(id tree.NodeID, state tree.StateBits) Value[float32]

	MarginTop(id tree.NodeID, state tree.StateBits) Value[float32]
	MarginRight(id tree.NodeID, state tree.StateBits) Value[float32]
	MarginBottom(id tree.NodeID, state tree.StateBits) Value[float32]
	MarginLeft(id tree.NodeID, state tree.StateBits) Value[float32]

	PaddingTop(id tree.NodeID, state tree.StateBits) Value[float32]
	PaddingRight(id tree.NodeID, state tree.StateBits) Value[float32]
	PaddingBottom(id tree.NodeID, state tree.StateBits) Value[float32]
	PaddingLeft(id tree.NodeID, state tree.StateBits) Value[float32]

	BorderTopWidth(id tree.NodeID, state tree.StateBits) Value[float32]
	BorderRightWidth(id tree.NodeID, state tree.StateBits) Value[float32]
	BorderBottomWidth(id tree.NodeID, state tree.StateBits) Value[float32]
	BorderLeftWidth(id tree.NodeID, state tree.StateBits) Value[float32]

	Top(id tree.NodeID, state tree.StateBits) Value[float32]
	Right(id tree.NodeID, state tree.StateBits) Value[float32]
	Bottom(id tree.NodeID, state tree.StateBits) Value[float32]
	Left(id tree.NodeID, state tree.StateBits) Value[float32]

	Position(id tree.NodeID, state tree.StateBits) Position
	FlexDirection(id tree.NodeID, state tree.StateBits) FlexDirection
	FlexGrow(id tree.NodeID, state tree.StateBits) float32
	FlexShrink(id tree.NodeID, state tree.StateBits) float32
	JustifyContent(id tree.NodeID, state tree.StateBits) JustifyContent
	OverflowX(id tree.NodeID, state tree.StateBits) Overflow
	OverflowY(id tree.NodeID, state tree.StateBits) Overflow

	Opacity(id tree.NodeID, state tree.StateBits) Value[float32]
	Transform(id tree.NodeID, state tree.StateBits) []Transform
	TransformOrigin(id tree.NodeID, state tree.StateBits) Value[Origin]
}
