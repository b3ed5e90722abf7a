// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command framedemo drives a single frame of the layout/event pipeline
// end to end against a hardcoded three-node DOM, the way
// window_state.rs's doc comment sketches one frame of Events::new →
// HitTest::new → NodesToCheck::new → CallbacksOfHitTest::new →
// call_callbacks. It exists to exercise the wiring between packages, not
// as a real embedder (spec.md §6 leaves windowing, rendering, and DOM
// construction to whatever host program links this core in).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/0xSalik/azul/config"
	"github.com/0xSalik/azul/dispatch"
	"github.com/0xSalik/azul/events"
	"github.com/0xSalik/azul/layout"
	"github.com/0xSalik/azul/math32"
	"github.com/0xSalik/azul/styles"
	"github.com/0xSalik/azul/tree"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "-h" {
		printUsage()
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	defaults, err := config.Load("")
	if err != nil {
		log.Error("loading engine defaults", "err", err)
		os.Exit(1)
	}
	log.Info("engine defaults", "font_size_px", defaults.FontSizePx, "multithreaded", defaults.Multithreaded)

	st, cache := buildDemoDOM()
	solver := layout.NewSolver(st, cache, log)
	result := solver.Layout(math32.Size(400, 200))

	gpu := layout.NewGpuValueCache()
	gpuChanges, err := gpu.Synchronize(context.Background(), st, cache, &result.Rects, defaults.Multithreaded)
	if err != nil {
		log.Error("synchronizing gpu values", "err", err)
		os.Exit(1)
	}
	log.Info("gpu diff", "added", len(gpuChanges.TransformChanges), "opacity", len(gpuChanges.OpacityChanges))

	hit := layout.HitTest(result, math32.Vec2(120, 50), layout.ScrollOffsets{})

	previous := &events.WindowState{}
	current := &events.WindowState{
		Mouse: events.MouseState{Cursor: events.Position{InWindow: true, X: 120, Y: 50}, LeftDown: true},
	}
	if topNode, ok := hit.TopNode(); ok {
		current.HoveredNodes = map[tree.NodeID]bool{topNode: true}
	}
	ev := events.New(current, previous)

	nodes := dispatch.NewNodesToCheck(hit, ev)
	restyler := noopRestyler{}
	styleChanges := dispatch.NewStyleAndLayoutChanges(nodes, restyler)
	log.Info("style/layout changes", "needs_redraw", styleChanges.NeedsRedraw())

	reg := dispatch.Registry{
		1: {{
			Event: dispatch.EventFilter{Other: "click"},
			Func: func(_ any, info *dispatch.CallbackInfo) dispatch.UpdateScreen {
				fmt.Printf("node %d clicked at %v\n", info.Node, info.RelativePoint)
				return dispatch.RegenerateStyledDomForCurrentWindow
			},
		}},
	}
	callbacks := dispatch.NewCallbacksOfHitTest(reg, nodes, ev)
	callResult := callbacks.Call(st.Nodes(), st.Nodes().NonLeafParentsByDepth(), hit)
	log.Info("frame done", "update_screen", callResult.CallbacksUpdateScreen, "should_scroll_render", callResult.ShouldScrollRender)
}

type noopRestyler struct{}

func (noopRestyler) RestyleHover(tree.NodeID, bool) []styles.PropertyKind  { return nil }
func (noopRestyler) RestyleActive(tree.NodeID, bool) []styles.PropertyKind { return nil }

func printUsage() {
	fmt.Println("framedemo runs a single frame of the layout/event pipeline against a built-in demo DOM.")
}
