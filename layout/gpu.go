// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"context"

	"github.com/0xSalik/azul/math32"
	"github.com/0xSalik/azul/styles"
	"github.com/0xSalik/azul/tree"
	"golang.org/x/sync/errgroup"
)

// GpuKey identifies one node's GPU-resident value (a folded transform
// matrix or an opacity scalar) across frames, standing in for azul's
// GpuTransformKey/GpuOpacityKey newtypes.
type GpuKey uint64

// GpuKeyChangeKind discriminates the three ways a node's GPU value can
// change between frames.
type GpuKeyChangeKind uint8

const (
	GpuKeyAdded GpuKeyChangeKind = iota
	GpuKeyChanged
	GpuKeyRemoved
)

// GpuKeyChange is one entry of the differ's output for either transforms
// or opacities.
type GpuKeyChange struct {
	Node tree.NodeID
	Key  GpuKey
	Kind GpuKeyChangeKind
}

// GpuEventChanges bundles the transform and opacity diffs produced by one
// GpuValueCache.Synchronize call (SPEC_FULL.md §4: the two key maps are
// diffed symmetrically by the same pass).
type GpuEventChanges struct {
	TransformChanges []GpuKeyChange
	OpacityChanges   []GpuKeyChange
}

// GpuValueCache holds the previous frame's folded transform matrices and
// opacity scalars, keyed by node, so Synchronize can diff against the
// current frame without re-deriving history. It stands in for azul's
// GpuValueCache (ui_solver.rs).
type GpuValueCache struct {
	transforms map[tree.NodeID]gpuTransformEntry
	opacities  map[tree.NodeID]gpuOpacityEntry
	nextKey    GpuKey
}

type gpuTransformEntry struct {
	key    GpuKey
	matrix math32.Matrix4
}

type gpuOpacityEntry struct {
	key   GpuKey
	value float32
}

// NewGpuValueCache returns an empty cache, as if every node were new.
func NewGpuValueCache() *GpuValueCache {
	return &GpuValueCache{
		transforms: make(map[tree.NodeID]gpuTransformEntry),
		opacities:  make(map[tree.NodeID]gpuOpacityEntry),
	}
}

// Synchronize folds each node's transform-list and opacity into the
// current frame's value, diffs it against the cache's previous-frame
// value per node, and returns the set of Added/Changed/Removed keys. When
// multithreaded is true the per-node fold runs across worker goroutines
// via errgroup (spec.md §5: "the only internally parallelizable step");
// the diff itself (map mutation) stays single-threaded since it is not
// the hot part of the pass.
func (g *GpuValueCache) Synchronize(ctx context.Context, st tree.StyledTree, cache styles.PropertyCache, rects *tree.Container[PositionedRectangle], multithreaded bool) (GpuEventChanges, error) {
	t := st.Nodes()
	n := t.Len()

	folded := make([]math32.Matrix4, n)
	opacity := make([]float32, n)
	hasOpacity := make([]bool, n)
	hasTransform := make([]bool, n)

	fold := func(id tree.NodeID) {
		state := st.StateOf(id)
		list := cache.Transform(id, state)
		if len(list) > 0 {
			bb := rects.Get(id).BorderBox()
			origin := bb.Origin.Add(math32.Vec2(bb.Size.Width/2, bb.Size.Height/2))
			if o, ok := cache.TransformOrigin(id, state).Get(); ok {
				origin = bb.Origin.Add(math32.Vec2(o.X, o.Y))
			}
			folded[id] = styles.FoldTransforms(list, origin)
			hasTransform[id] = true
		}
		if v, ok := cache.Opacity(id, state).Get(); ok {
			opacity[id] = v
			hasOpacity[id] = true
		}
	}

	if multithreaded && n > 0 {
		eg, egCtx := errgroup.WithContext(ctx)
		const workers = 8
		chunk := (n + workers - 1) / workers
		for start := 0; start < n; start += chunk {
			end := start + chunk
			if end > n {
				end = n
			}
			s, e := start, end
			eg.Go(func() error {
				for id := s; id < e; id++ {
					select {
					case <-egCtx.Done():
						return egCtx.Err()
					default:
					}
					fold(tree.NodeID(id))
				}
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return GpuEventChanges{}, err
		}
	} else {
		for id := 0; id < n; id++ {
			fold(tree.NodeID(id))
		}
	}

	var changes GpuEventChanges
	seenTransform := make(map[tree.NodeID]bool, n)
	seenOpacity := make(map[tree.NodeID]bool, n)

	for id := 0; id < n; id++ {
		nid := tree.NodeID(id)
		if hasTransform[id] {
			seenTransform[nid] = true
			prev, existed := g.transforms[nid]
			if !existed {
				key := g.nextKey
				g.nextKey++
				g.transforms[nid] = gpuTransformEntry{key: key, matrix: folded[id]}
				changes.TransformChanges = append(changes.TransformChanges, GpuKeyChange{Node: nid, Key: key, Kind: GpuKeyAdded})
			} else if !prev.matrix.ApproxEqual(folded[id], 1e-5) {
				prev.matrix = folded[id]
				g.transforms[nid] = prev
				changes.TransformChanges = append(changes.TransformChanges, GpuKeyChange{Node: nid, Key: prev.key, Kind: GpuKeyChanged})
			}
		}
		if hasOpacity[id] {
			seenOpacity[nid] = true
			prev, existed := g.opacities[nid]
			if !existed {
				key := g.nextKey
				g.nextKey++
				g.opacities[nid] = gpuOpacityEntry{key: key, value: opacity[id]}
				changes.OpacityChanges = append(changes.OpacityChanges, GpuKeyChange{Node: nid, Key: key, Kind: GpuKeyAdded})
			} else if prev.value != opacity[id] {
				prev.value = opacity[id]
				g.opacities[nid] = prev
				changes.OpacityChanges = append(changes.OpacityChanges, GpuKeyChange{Node: nid, Key: prev.key, Kind: GpuKeyChanged})
			}
		}
	}

	for nid, entry := range g.transforms {
		if !seenTransform[nid] {
			changes.TransformChanges = append(changes.TransformChanges, GpuKeyChange{Node: nid, Key: entry.key, Kind: GpuKeyRemoved})
			delete(g.transforms, nid)
		}
	}
	for nid, entry := range g.opacities {
		if !seenOpacity[nid] {
			changes.OpacityChanges = append(changes.OpacityChanges, GpuKeyChange{Node: nid, Key: entry.key, Kind: GpuKeyRemoved})
			delete(g.opacities, nid)
		}
	}

	return changes, nil
}
