// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"testing"

	"github.com/0xSalik/azul/math32"
	"github.com/0xSalik/azul/styles"
	"github.com/0xSalik/azul/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHitTestDeepestFirst(t *testing.T) {
	ft, cache := buildRowLayout()
	s := NewSolver(ft, cache, nil)
	result := s.Layout(math32.Size(300, 100))

	hits := HitTest(result, math32.Vec2(10, 10), nil)
	require.Len(t, hits.Items, 2)
	assert.Equal(t, tree.NodeID(1), hits.Items[0].Node)
	assert.Equal(t, ft.t.Root, hits.Items[1].Node)
	top, ok := hits.TopNode()
	require.True(t, ok)
	assert.NotEqual(t, top, ft.t.Root)
}

func TestHitTestMissOutsideAllRects(t *testing.T) {
	ft, cache := buildRowLayout()
	s := NewSolver(ft, cache, nil)
	result := s.Layout(math32.Size(300, 100))

	hits := HitTest(result, math32.Vec2(-5, -5), nil)
	assert.Empty(t, hits.Items)
}

func TestHitTestScrollOffsetShiftsChildRelativePoint(t *testing.T) {
	result := scrollableLayout()
	require.Len(t, result.Scrolled, 1)

	hitsNoOffset := HitTest(result, math32.Vec2(50, 50), nil)
	require.Len(t, hitsNoOffset.Items, 2) // scroll container + its child

	extID := result.Scrolled[0].ExternalID
	offsets := ScrollOffsets{extID: math32.Vec2(0, 20)}
	hitsOffset := HitTest(result, math32.Vec2(50, 50), offsets)
	require.Len(t, hitsOffset.Items, 2)

	// the scroll container's own relative point is unaffected by its own
	// offset (only descendants are re-tested against the shifted point).
	assert.Equal(t, hitsNoOffset.Items[1].RelativePoint, hitsOffset.Items[1].RelativePoint)
	assert.NotEqual(t, hitsNoOffset.Items[0].RelativePoint, hitsOffset.Items[0].RelativePoint)
}

func scrollableLayout() *LayoutResult {
	tr := tree.NewTree(2)
	tr.AddChild(0, 1)
	ft := &fakeTree{t: tr}
	cache := newFakeCache()
	cache.nodes[0] = nodeStyle{
		width: styles.Exact[float32](100), height: styles.Exact[float32](100),
		overflowX: styles.OverflowAuto, overflowY: styles.OverflowAuto,
	}
	cache.nodes[1] = nodeStyle{width: styles.Exact[float32](100), height: styles.Exact[float32](300)}
	s := NewSolver(ft, cache, nil)
	return s.Layout(math32.Size(100, 100))
}
