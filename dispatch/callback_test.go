// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dispatch

import (
	"testing"

	"github.com/0xSalik/azul/events"
	"github.com/0xSalik/azul/layout"
	"github.com/0xSalik/azul/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateScreenFoldPrecedence(t *testing.T) {
	assert.Equal(t, RegenerateStyledDomForCurrentWindow, fold(DoNothing, RegenerateStyledDomForCurrentWindow))
	assert.Equal(t, RegenerateStyledDomForAllWindows, fold(RegenerateStyledDomForCurrentWindow, RegenerateStyledDomForAllWindows))
	assert.Equal(t, RegenerateStyledDomForAllWindows, fold(RegenerateStyledDomForAllWindows, RegenerateStyledDomForCurrentWindow))
	assert.Equal(t, DoNothing, fold(DoNothing, DoNothing))
}

func TestCallDeepestFirstOrderAndStopPropagation(t *testing.T) {
	tr := tree.NewTree(3)
	tr.AddChild(0, 1)
	tr.AddChild(1, 2)

	var order []tree.NodeID
	mk := func(id tree.NodeID, stop bool) Callback {
		return Callback{
			Event: EventFilter{Other: "click"},
			Func: func(data any, info *CallbackInfo) UpdateScreen {
				order = append(order, info.Node)
				info.StopPropagation = stop
				return RegenerateStyledDomForCurrentWindow
			},
		}
	}
	reg := Registry{
		0: {mk(0, false)},
		1: {mk(1, true)},
		2: {mk(2, false)},
	}

	ev := &events.Events{}
	nodes := &NodesToCheck{
		NewHitNodes: map[tree.NodeID]layout.HitTestItem{0: {Node: 0}, 1: {Node: 1}, 2: {Node: 2}},
	}
	c := NewCallbacksOfHitTest(reg, nodes, ev)

	hit := layout.HitTestResult{Items: []layout.HitTestItem{{Node: 2}, {Node: 1}, {Node: 0}}}
	nonLeaf := tr.NonLeafParentsByDepth()
	result := c.Call(tr, nonLeaf, hit)

	// node 1 stops propagation for its filter, so the root's callback with
	// the same filter is skipped.
	require.Equal(t, []tree.NodeID{2, 1}, order)
	assert.Equal(t, RegenerateStyledDomForCurrentWindow, result.CallbacksUpdateScreen)
}

func TestCallStopPropagationBlacklistsSameFilterOnly(t *testing.T) {
	tr := tree.NewTree(2)
	tr.AddChild(0, 1)

	sameFilter := EventFilter{Other: "click"}
	otherFilter := EventFilter{Other: "drag"}
	var fired []string

	reg := Registry{
		1: {
			{Event: sameFilter, Func: func(any, *CallbackInfo) UpdateScreen {
				fired = append(fired, "child-click")
				return DoNothing
			}},
		},
		0: {
			{Event: sameFilter, Func: func(any, *CallbackInfo) UpdateScreen {
				fired = append(fired, "root-click")
				return DoNothing
			}},
			{Event: otherFilter, Func: func(any, *CallbackInfo) UpdateScreen {
				fired = append(fired, "root-drag")
				return DoNothing
			}},
		},
	}

	// Simulate the child having already stopped propagation for sameFilter
	// by wiring its callback to set StopPropagation.
	reg[1][0].Func = func(data any, info *CallbackInfo) UpdateScreen {
		fired = append(fired, "child-click")
		info.StopPropagation = true
		return DoNothing
	}

	ev := &events.Events{}
	nodes := &NodesToCheck{NewHitNodes: map[tree.NodeID]layout.HitTestItem{0: {Node: 0}, 1: {Node: 1}}}
	c := NewCallbacksOfHitTest(reg, nodes, ev)
	hit := layout.HitTestResult{Items: []layout.HitTestItem{{Node: 1}, {Node: 0}}}

	c.Call(tr, tr.NonLeafParentsByDepth(), hit)

	assert.Contains(t, fired, "child-click")
	assert.NotContains(t, fired, "root-click")
	assert.Contains(t, fired, "root-drag")
}
