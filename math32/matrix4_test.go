// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityTransformIsNoOp(t *testing.T) {
	p := Vec2(12, -4)
	got, ok := Identity.TransformPoint2D(p)
	require.True(t, ok)
	assert.InDelta(t, p.X, got.X, 1e-5)
	assert.InDelta(t, p.Y, got.Y, 1e-5)
}

func TestThenComposesInOrder(t *testing.T) {
	translate := NewTranslation(10, 0, 0)
	scale := NewScale(2, 2, 1)
	combined := translate.Then(scale)

	p := Vec2(1, 1)
	viaCombined, ok := combined.TransformPoint2D(p)
	require.True(t, ok)

	mid, ok := translate.TransformPoint2D(p)
	require.True(t, ok)
	viaSteps, ok := scale.TransformPoint2D(mid)
	require.True(t, ok)

	assert.InDelta(t, viaSteps.X, viaCombined.X, 1e-4)
	assert.InDelta(t, viaSteps.Y, viaCombined.Y, 1e-4)
}

func TestInverseRoundTrips(t *testing.T) {
	m := NewTranslation(5, -3, 0).Then(NewScale(2, 4, 1))
	inv, ok := m.Inverse()
	require.True(t, ok)

	roundTrip := m.Then(inv)
	assert.True(t, roundTrip.ApproxEqual(Identity, 1e-3))
}

func TestInverseOfSingularMatrixFails(t *testing.T) {
	singular := NewScale(0, 1, 1)
	_, ok := singular.Inverse()
	assert.False(t, ok)
}

func TestRotate90DegreesAtOrigin(t *testing.T) {
	// Boundary scenario from spec.md §8 #5.
	origin := Vec2(50, 50)
	m := MakeRotation(origin, 90, 0, 0, 1)
	got, ok := m.TransformPoint2D(Vec2(100, 50))
	require.True(t, ok)
	assert.InDelta(t, 50, got.X, 1e-3)
	assert.InDelta(t, 100, got.Y, 1e-3)
}
