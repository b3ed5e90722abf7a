// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"context"
	"testing"

	"github.com/0xSalik/azul/math32"
	"github.com/0xSalik/azul/styles"
	"github.com/0xSalik/azul/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleNodeLayout(transform []styles.Transform, opacity styles.Value[float32]) (*fakeTree, *fakeCache, *LayoutResult) {
	tr := tree.NewTree(1)
	ft := &fakeTree{t: tr}
	cache := newFakeCache()
	cache.nodes[0] = nodeStyle{
		width: styles.Exact[float32](100), height: styles.Exact[float32](100),
		transform: transform, opacity: opacity,
	}
	s := NewSolver(ft, cache, nil)
	result := s.Layout(math32.Size(100, 100))
	return ft, cache, result
}

func TestGpuValueCacheAddedThenChangedThenRemoved(t *testing.T) {
	ft, cache, result := singleNodeLayout(nil, styles.Exact[float32](1.0))
	gpu := NewGpuValueCache()

	changes, err := gpu.Synchronize(context.Background(), ft, cache, &result.Rects, false)
	require.NoError(t, err)
	require.Len(t, changes.OpacityChanges, 1)
	assert.Equal(t, GpuKeyAdded, changes.OpacityChanges[0].Kind)

	cache.nodes[0] = nodeStyle{width: styles.Exact[float32](100), height: styles.Exact[float32](100), opacity: styles.Exact[float32](0.5)}
	changes, err = gpu.Synchronize(context.Background(), ft, cache, &result.Rects, false)
	require.NoError(t, err)
	require.Len(t, changes.OpacityChanges, 1)
	assert.Equal(t, GpuKeyChanged, changes.OpacityChanges[0].Kind)

	cache.nodes[0] = nodeStyle{width: styles.Exact[float32](100), height: styles.Exact[float32](100)}
	changes, err = gpu.Synchronize(context.Background(), ft, cache, &result.Rects, false)
	require.NoError(t, err)
	require.Len(t, changes.OpacityChanges, 1)
	assert.Equal(t, GpuKeyRemoved, changes.OpacityChanges[0].Kind)
}

func TestGpuValueCacheTransformDiffing(t *testing.T) {
	ft, cache, result := singleNodeLayout([]styles.Transform{{Kind: styles.TransformTranslateX, X: 10}}, styles.None[float32]())
	gpu := NewGpuValueCache()

	changes, err := gpu.Synchronize(context.Background(), ft, cache, &result.Rects, false)
	require.NoError(t, err)
	require.Len(t, changes.TransformChanges, 1)
	assert.Equal(t, GpuKeyAdded, changes.TransformChanges[0].Kind)

	changes, err = gpu.Synchronize(context.Background(), ft, cache, &result.Rects, false)
	require.NoError(t, err)
	assert.Empty(t, changes.TransformChanges)
}

func TestGpuValueCacheMultithreadedMatchesSerial(t *testing.T) {
	tr := tree.NewTree(20)
	for i := tree.NodeID(1); i < 20; i++ {
		tr.AddChild(0, i)
	}
	ft := &fakeTree{t: tr}
	cache := newFakeCache()
	for i := tree.NodeID(0); i < 20; i++ {
		cache.nodes[i] = nodeStyle{
			width: styles.Exact[float32](10), height: styles.Exact[float32](10),
			opacity: styles.Exact[float32](float32(i) / 20),
		}
	}
	s := NewSolver(ft, cache, nil)
	result := s.Layout(math32.Size(200, 200))

	serial := NewGpuValueCache()
	serialChanges, err := serial.Synchronize(context.Background(), ft, cache, &result.Rects, false)
	require.NoError(t, err)

	parallel := NewGpuValueCache()
	parallelChanges, err := parallel.Synchronize(context.Background(), ft, cache, &result.Rects, true)
	require.NoError(t, err)

	assert.Equal(t, len(serialChanges.OpacityChanges), len(parallelChanges.OpacityChanges))
}
