// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"log/slog"

	"github.com/0xSalik/azul/math32"
	"github.com/0xSalik/azul/styles"
	"github.com/0xSalik/azul/tree"
)

// LayoutResult is the per-frame output of a solve pass: one
// PositionedRectangle per node, plus the scroll nodes the overflow pass
// discovered. It is the input to the hit tester and the differ.
type LayoutResult struct {
	StyledTree tree.StyledTree
	Rects      tree.Container[PositionedRectangle]
	Scrolled   []ScrolledNode
}

// ScrolledNode records a node whose content overflows its box under a
// scrolling overflow mode, along with the stable id used to persist its
// scroll offset across relayouts (spec.md §4.4).
type ScrolledNode struct {
	Node       tree.NodeID
	ExternalID ExternalScrollId
	ChildRect  math32.Rect2
	ParentRect math32.Rect2
}

// ExternalScrollId is an embedder-stable identity for a scroll node,
// derived from tree.NodeHash so that scroll offsets survive a relayout
// that doesn't change the node's structural position (spec.md §4.4,
// SPEC_FULL.md §4).
type ExternalScrollId uint64

// Solver runs the box-model solver over a styled tree.
type Solver struct {
	Tree   tree.StyledTree
	Styles styles.PropertyCache
	Log    *slog.Logger

	// Multithreaded is not read by the solver or by
	// GpuValueCache.Synchronize, which takes its own multithreaded argument
	// (spec.md §5). The layout solver itself always runs a single pass
	// top-down; only the differ is parallelizable.
	Multithreaded bool
}

// NewSolver builds a Solver with a no-op logger if log is nil.
func NewSolver(st tree.StyledTree, cache styles.PropertyCache, log *slog.Logger) *Solver {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Solver{Tree: st, Styles: cache, Log: log}
}

// Layout solves the whole tree against an available viewport size,
// returning the per-node rectangles.
func (s *Solver) Layout(viewport math32.Size2) *LayoutResult {
	t := s.Tree.Nodes()
	n := t.Len()

	widths := tree.NewContainer[WidthCalculatedRect](n)
	heights := tree.NewContainer[HeightCalculatedRect](n)
	rects := tree.NewContainer[PositionedRectangle](n)

	s.sizeUp(t, widths.Ref(t.Root), heights.Ref(t.Root), t.Root, viewport)
	s.sizeUpChildren(t, &widths, &heights, t.Root, viewport)

	// The root is always pinned to the viewport: an Unconstrained root
	// (width/height: None) still fills the available space rather than
	// collapsing to zero (spec.md §4.2's "Root width = W").
	s.sizeDown(t, &widths, &heights, t.Root, viewport.Width, viewport.Height, true, true)

	root := PositionedRectangle{
		Size:   math32.Size(widths.Get(t.Root).UsedWidth, heights.Get(t.Root).UsedHeight),
		Origin: math32.Vec2(0, 0),
	}
	rects.Set(t.Root, root)
	s.resolvePositions(t, &widths, &heights, &rects, t.Root)

	var scrolled []ScrolledNode
	s.computeOverflow(t, &rects, t.Root, &scrolled)

	return &LayoutResult{StyledTree: s.Tree, Rects: rects, Scrolled: scrolled}
}

// sizeUp derives the WhConstraint for a single node from its own style,
// the root step of spec.md §4.1 applied bottom-up-free (constraints don't
// need a completed child pass, only the flex distribution in sizeDown does).
func (s *Solver) sizeUp(t *tree.Tree, w *WidthCalculatedRect, h *HeightCalculatedRect, id tree.NodeID, viewport math32.Size2) {
	state := s.Tree.StateOf(id)
	w.Constraint = DeterminePreferred(s.Styles.Width(id, state), s.Styles.MinWidth(id, state), s.Styles.MaxWidth(id, state))
	h.Constraint = DeterminePreferred(s.Styles.Height(id, state), s.Styles.MinHeight(id, state), s.Styles.MaxHeight(id, state))

	w.Margin = resolvedOffsets(s.Styles.MarginLeft(id, state), s.Styles.MarginRight(id, state), 0, 0)
	w.Padding = resolvedOffsets(s.Styles.PaddingLeft(id, state), s.Styles.PaddingRight(id, state), 0, 0)
	w.Border = resolvedOffsets(s.Styles.BorderLeftWidth(id, state), s.Styles.BorderRightWidth(id, state), 0, 0)
	h.Margin = resolvedOffsetsV(s.Styles.MarginTop(id, state), s.Styles.MarginBottom(id, state))
	h.Padding = resolvedOffsetsV(s.Styles.PaddingTop(id, state), s.Styles.PaddingBottom(id, state))
	h.Border = resolvedOffsetsV(s.Styles.BorderTopWidth(id, state), s.Styles.BorderBottomWidth(id, state))

	w.FlexGrow = s.Styles.FlexGrow(id, state)
	w.FlexShrink = s.Styles.FlexShrink(id, state)
	if v, ok := w.Constraint.Max(); ok {
		w.PreferredWidth = v
	}
	if v, ok := h.Constraint.Max(); ok {
		h.PreferredHeight = v
	}
}

func resolvedOffsets(left, right styles.Value[float32], _, _ float32) ResolvedOffsets {
	l, _ := left.Get()
	r, _ := right.Get()
	return ResolvedOffsets{Left: l, Right: r}
}

func resolvedOffsetsV(top, bottom styles.Value[float32]) ResolvedOffsets {
	t, _ := top.Get()
	b, _ := bottom.Get()
	return ResolvedOffsets{Top: t, Bottom: b}
}

// sizeUpChildren walks the tree top-down, running sizeUp at every node.
func (s *Solver) sizeUpChildren(t *tree.Tree, widths *tree.Container[WidthCalculatedRect], heights *tree.Container[HeightCalculatedRect], id tree.NodeID, viewport math32.Size2) {
	for _, c := range t.Children(id) {
		s.sizeUp(t, widths.Ref(c), heights.Ref(c), c, viewport)
		s.sizeUpChildren(t, widths, heights, c, viewport)
	}
}

// sizeDown resolves each node's UsedWidth/UsedHeight top-down. resolveW and
// resolveH report whether availW/availH are still raw "available space" to
// solve this node's own axis against (the root call, and a child's cross
// axis, which stretches to fill its container per spec.md §4.2's Column
// stretch behavior) or whether they are already the final size a parent's
// distributeMainAxis computed for this node's main axis — in which case
// they're taken verbatim instead of being re-resolved against the node's
// own constraint, which would otherwise discard flex-grow/shrink.
func (s *Solver) sizeDown(t *tree.Tree, widths *tree.Container[WidthCalculatedRect], heights *tree.Container[HeightCalculatedRect], id tree.NodeID, availW, availH float32, resolveW, resolveH bool) {
	w := widths.Ref(id)
	h := heights.Ref(id)
	if resolveW {
		w.UsedWidth = resolveAxis(w.Constraint, availW)
	} else {
		w.UsedWidth = availW
	}
	if resolveH {
		h.UsedHeight = resolveAxis(h.Constraint, availH)
	} else {
		h.UsedHeight = availH
	}

	children := t.Children(id)
	if len(children) == 0 {
		return
	}

	state := s.Tree.StateOf(id)
	dir := s.Styles.FlexDirection(id, state)
	contentW := w.UsedWidth - w.Padding.TotalHorizontal() - w.Border.TotalHorizontal()
	contentH := h.UsedHeight - h.Padding.TotalVertical() - h.Border.TotalVertical()

	s.distributeMainAxis(t, widths, heights, children, dir, contentW, contentH)

	for _, c := range children {
		// The main axis was already distributed above and must be taken
		// as-is; the cross axis is resolved fresh against the container's
		// content size, stretching an Unconstrained child to fill it.
		var cw, ch float32
		if dir.IsHorizontal() {
			cw = widths.Get(c).UsedWidth
			ch = contentH
			s.sizeDown(t, widths, heights, c, cw, ch, false, true)
		} else {
			ch = heights.Get(c).UsedHeight
			cw = contentW
			s.sizeDown(t, widths, heights, c, cw, ch, true, false)
		}
	}
}

// resolveAxis collapses a WhConstraint against the available space: exact
// values win outright, Between clamps the available space, and an
// Unconstrained axis stretches to fill all of the available space (a root
// with width:None fills the viewport; a Column child with width:None fills
// its parent's content width, spec.md §4.2).
func resolveAxis(c WhConstraint, avail float32) float32 {
	if v, ok := c.Max(); ok && c.IsEqualTo() {
		return v
	}
	if c.IsBetween() {
		v := avail
		if min, ok := c.Min(); ok && v < min {
			v = min
		}
		if max, ok := c.Max(); ok && v > max {
			v = max
		}
		return v
	}
	return avail
}

// flexBasis is resolveAxis's counterpart for a flex child's contribution to
// a container's main-axis "used" total, before flex-grow/shrink distribute
// the remainder: an Unconstrained child has no basis of its own (this
// solver never measures intrinsic content size), so two width:None,
// flex-grow:1 siblings still split the container evenly by grow share
// instead of each first claiming the full main axis via resolveAxis's
// stretch default (spec.md §4.2).
func flexBasis(c WhConstraint, avail float32) float32 {
	if c.IsUnconstrained() {
		return 0
	}
	return resolveAxis(c, avail)
}

// distributeMainAxis shares a flex container's main-axis content size
// among its children by flex-grow (when content underflows) or
// flex-shrink (when it overflows), matching the single-line flex
// distribution model spec.md §4.2 describes; any remainder after children
// have taken their min size is left as overflow rather than redistributed
// (Open Question resolution, SPEC_FULL.md §5).
func (s *Solver) distributeMainAxis(t *tree.Tree, widths *tree.Container[WidthCalculatedRect], heights *tree.Container[HeightCalculatedRect], children []tree.NodeID, dir styles.FlexDirection, contentW, contentH float32) {
	mainAvail := contentW
	if !dir.IsHorizontal() {
		mainAvail = contentH
	}

	var used, totalGrow, totalShrink float32
	basis := make([]float32, len(children))
	for i, c := range children {
		var b float32
		if dir.IsHorizontal() {
			b = flexBasis(widths.Get(c).Constraint, mainAvail)
		} else {
			b = flexBasis(heights.Get(c).Constraint, mainAvail)
		}
		totalGrow += widths.Get(c).FlexGrow
		totalShrink += widths.Get(c).FlexShrink
		basis[i] = b
		used += b
	}

	remaining := mainAvail - used
	for i, c := range children {
		final := basis[i]
		grow := widths.Get(c).FlexGrow
		shrink := widths.Get(c).FlexShrink
		if remaining > 0 && totalGrow > 0 {
			final += remaining * (grow / totalGrow)
		} else if remaining < 0 && totalShrink > 0 {
			final += remaining * (shrink / totalShrink)
		}
		constraint := widths.Get(c).Constraint
		if !dir.IsHorizontal() {
			constraint = heights.Get(c).Constraint
		}
		if min, ok := constraint.Min(); ok && final < min {
			final = min
		}
		if final < 0 {
			final = 0
		}
		if dir.IsHorizontal() {
			widths.Ref(c).UsedWidth = final
		} else {
			heights.Ref(c).UsedHeight = final
		}
	}
}

// resolvePositions walks the tree assigning each node's Origin relative to
// its containing block, honoring position:static/relative/absolute/fixed
// and the main-axis justify-content placement among normal-flow siblings.
// Every child, flow or positioned, is visited in document order in a single
// pass so each one's static-flow origin (spec.md §8: "∀ non-root n,
// position.static_{x,y} equal the coordinates n would have under
// position:static") can be recorded even for nodes taken out of flow —
// positioned children don't occupy space or advance the cursor, but the
// cursor position at the point they're encountered is exactly where they
// would have landed had they stayed static.
func (s *Solver) resolvePositions(t *tree.Tree, widths *tree.Container[WidthCalculatedRect], heights *tree.Container[HeightCalculatedRect], rects *tree.Container[PositionedRectangle], id tree.NodeID) {
	parentRect := rects.Get(id)
	contentOrigin := parentRect.ContentBox().Origin
	contentSize := parentRect.ContentBox().Size

	children := t.Children(id)
	state := s.Tree.StateOf(id)
	dir := s.Styles.FlexDirection(id, state)
	justify := s.Styles.JustifyContent(id, state)

	var totalMain float32
	flowCount := 0
	for _, c := range children {
		if s.Styles.Position(c, s.Tree.StateOf(c)).IsPositioned() {
			continue
		}
		if dir.IsHorizontal() {
			totalMain += widths.Get(c).UsedWidth
		} else {
			totalMain += heights.Get(c).UsedHeight
		}
		flowCount++
	}

	mainAvail := contentSize.Width
	if !dir.IsHorizontal() {
		mainAvail = contentSize.Height
	}
	leading, gap := justifyOffsets(justify, mainAvail, totalMain, flowCount)

	cursor := leading
	for _, c := range children {
		cstate := s.Tree.StateOf(c)
		pos := s.Styles.Position(c, cstate)
		staticOrigin := originAtCursor(dir, contentOrigin, cursor)

		if pos.IsPositioned() {
			s.positionAbsolute(t, widths, heights, rects, id, c, pos, staticOrigin)
			s.resolvePositions(t, widths, heights, rects, c)
			continue
		}

		cw := widths.Get(c).UsedWidth
		ch := heights.Get(c).UsedHeight
		if dir.IsHorizontal() {
			cursor += cw + gap
		} else {
			cursor += ch + gap
		}

		kind := PosStatic
		var inset math32.Vector2
		origin := staticOrigin
		if pos == styles.PositionRelative {
			kind = PosRelative
			left, _ := s.Styles.Left(c, cstate).Get()
			top, _ := s.Styles.Top(c, cstate).Get()
			inset = math32.Vec2(left, top)
			origin = origin.Add(inset)
		}

		rect := PositionedRectangle{
			Size:    math32.Size(cw, ch),
			Origin:  origin,
			Margin:  widths.Get(c).Margin,
			Padding: widths.Get(c).Padding,
			Border:  widths.Get(c).Border,
			Position: PositionInfo{
				Kind:         kind,
				StaticOffset: staticOrigin,
				InsetOffset:  inset,
			},
		}
		rects.Set(c, rect)
		s.resolvePositions(t, widths, heights, rects, c)
	}
}

// originAtCursor places a point at the given main-axis cursor offset from
// contentOrigin, along whichever axis dir runs.
func originAtCursor(dir styles.FlexDirection, contentOrigin math32.Point2, cursor float32) math32.Point2 {
	if dir.IsHorizontal() {
		return math32.Vec2(contentOrigin.X+cursor, contentOrigin.Y)
	}
	return math32.Vec2(contentOrigin.X, contentOrigin.Y+cursor)
}

// positionAbsolute resolves an absolutely/fixed positioned node's origin
// against the nearest containing block (its layout parent here, since the
// solver does not track a separate "positioned ancestor" chain beyond
// direct parent/child — a documented simplification over full CSS
// containing-block resolution). staticOrigin is the flow position the node
// would have landed at had it stayed in normal flow, recorded into
// PositionInfo.StaticOffset per spec.md §8 even though the node itself is
// placed at its inset-derived origin instead.
func (s *Solver) positionAbsolute(t *tree.Tree, widths *tree.Container[WidthCalculatedRect], heights *tree.Container[HeightCalculatedRect], rects *tree.Container[PositionedRectangle], parent, id tree.NodeID, pos styles.Position, staticOrigin math32.Point2) {
	parentRect := rects.Get(parent)
	cb := parentRect.ContentBox()
	state := s.Tree.StateOf(id)

	wCon := widths.Get(id).Constraint.ResolveAgainstParent(cb.Size.Width, s.Styles.Left(id, state), s.Styles.Right(id, state), s.Styles.MaxWidth(id, state))
	hCon := heights.Get(id).Constraint.ResolveAgainstParent(cb.Size.Height, s.Styles.Top(id, state), s.Styles.Bottom(id, state), s.Styles.MaxHeight(id, state))

	cw := resolveAxis(wCon, cb.Size.Width)
	ch := resolveAxis(hCon, cb.Size.Height)

	left, hasLeft := s.Styles.Left(id, state).Get()
	top, hasTop := s.Styles.Top(id, state).Get()
	var origin math32.Point2
	if hasLeft {
		origin.X = cb.Origin.X + left
	} else {
		origin.X = cb.Origin.X
	}
	if hasTop {
		origin.Y = cb.Origin.Y + top
	} else {
		origin.Y = cb.Origin.Y
	}

	kind := PosAbsolute
	if pos == styles.PositionFixed {
		kind = PosFixed
	}

	rects.Set(id, PositionedRectangle{
		Size:    math32.Size(cw, ch),
		Origin:  origin,
		Margin:  widths.Get(id).Margin,
		Padding: widths.Get(id).Padding,
		Border:  widths.Get(id).Border,
		Position: PositionInfo{
			Kind:         kind,
			StaticOffset: staticOrigin,
			InsetOffset:  math32.Vec2(left, top),
		},
	})
}

// justifyOffsets computes the leading gap before the first child and the
// gap between children for a given justify-content mode, leaving any
// negative remaining space (children wider than the container) as-is:
// per the Open Question resolution, overflow is recorded, never clipped
// or used to shrink children below their resolved size.
func justifyOffsets(j styles.JustifyContent, avail, used float32, count int) (leading, gap float32) {
	remaining := avail - used
	if remaining < 0 {
		remaining = 0 // overflow tracked separately by computeOverflow
	}
	switch j {
	case styles.JustifyEnd:
		return remaining, 0
	case styles.JustifyCenter:
		return remaining / 2, 0
	case styles.JustifySpaceBetween:
		if count > 1 {
			return 0, remaining / float32(count-1)
		}
		return 0, 0
	case styles.JustifySpaceAround:
		if count > 0 {
			g := remaining / float32(count)
			return g / 2, g
		}
		return 0, 0
	case styles.JustifySpaceEvenly:
		g := remaining / float32(count+1)
		return g, g
	default: // JustifyStart
		return 0, 0
	}
}

// computeOverflow measures how far a node's children extend past its own
// content box and records a ScrolledNode when the overflowing axis allows
// scrolling (spec.md §4.4).
func (s *Solver) computeOverflow(t *tree.Tree, rects *tree.Container[PositionedRectangle], id tree.NodeID, scrolled *[]ScrolledNode) {
	parent := rects.Get(id)
	cb := parent.ContentBox()

	var maxRight, maxBottom float32
	hasChildren := false
	for _, c := range t.Children(id) {
		hasChildren = true
		cr := rects.Get(c).BorderBox()
		if r := cr.Right(); r > maxRight {
			maxRight = r
		}
		if b := cr.Bottom(); b > maxBottom {
			maxBottom = b
		}
		s.computeOverflow(t, rects, c, scrolled)
	}
	if !hasChildren {
		return
	}

	state := s.Tree.StateOf(id)
	overflowX := s.Styles.OverflowX(id, state)
	overflowY := s.Styles.OverflowY(id, state)

	hOver := maxRight - cb.Right()
	vOver := maxBottom - cb.Bottom()

	info := OverflowInfo{
		Horizontal: DirectionalOverflowInfo{Overflows: hOver > 0, Amount: hOver},
		Vertical:   DirectionalOverflowInfo{Overflows: vOver > 0, Amount: vOver},
	}
	isScroll := (info.Horizontal.Overflows && overflowX.AllowsScroll()) || (info.Vertical.Overflows && overflowY.AllowsScroll())
	info.IsScrollNode = isScroll

	p := rects.Ref(id)
	p.Overflow = info

	if isScroll {
		*scrolled = append(*scrolled, ScrolledNode{
			Node:       id,
			ExternalID: ExternalScrollId(tree.HashNode(t, id)),
			ChildRect:  math32.NewRect2(cb.Origin, math32.Size(maxRight-cb.Origin.X, maxBottom-cb.Origin.Y)),
			ParentRect: cb,
		})
	}
}
