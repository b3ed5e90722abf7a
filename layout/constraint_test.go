// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"testing"

	"github.com/0xSalik/azul/styles"
	"github.com/stretchr/testify/assert"
)

func TestDeterminePreferredExactWins(t *testing.T) {
	c := DeterminePreferred(styles.Exact[float32](50), styles.None[float32](), styles.Exact[float32](30))
	assert.True(t, c.IsEqualTo())
	v, _ := c.Max()
	assert.Equal(t, float32(30), v)
}

func TestDeterminePreferredMinMaxBetween(t *testing.T) {
	c := DeterminePreferred(styles.None[float32](), styles.Exact[float32](10), styles.Exact[float32](100))
	assert.True(t, c.IsBetween())
	min, _ := c.Min()
	max, _ := c.Max()
	assert.Equal(t, float32(10), min)
	assert.Equal(t, float32(100), max)
}

func TestDeterminePreferredInversionCollapsesToEqualTo(t *testing.T) {
	// spec.md §4.1/§7: an inverted min>max constraint collapses to max, not
	// min (boundary scenario 3: min_width=600, max_width=400 -> EqualTo(400)).
	c := DeterminePreferred(styles.None[float32](), styles.Exact[float32](100), styles.Exact[float32](10))
	assert.True(t, c.IsEqualTo())
	v, _ := c.Max()
	assert.Equal(t, float32(10), v)
}

func TestDeterminePreferredUnconstrained(t *testing.T) {
	c := DeterminePreferred(styles.None[float32](), styles.None[float32](), styles.None[float32]())
	assert.True(t, c.IsUnconstrained())
}

func TestResolveAgainstParentUsesOffsetsWhenAuto(t *testing.T) {
	c := Unconstrained()
	resolved := c.ResolveAgainstParent(200, styles.Exact[float32](10), styles.Exact[float32](20), styles.None[float32]())
	assert.True(t, resolved.IsEqualTo())
	v, _ := resolved.Max()
	assert.Equal(t, float32(170), v)
}

func TestResolveAgainstParentMaxWidthWins(t *testing.T) {
	c := Unconstrained()
	resolved := c.ResolveAgainstParent(200, styles.Exact[float32](10), styles.Exact[float32](20), styles.Exact[float32](50))
	v, _ := resolved.Max()
	assert.Equal(t, float32(50), v)
}

func TestResolveAgainstParentLeavesEqualToAlone(t *testing.T) {
	c := EqualTo(42)
	resolved := c.ResolveAgainstParent(200, styles.Exact[float32](10), styles.Exact[float32](20), styles.None[float32]())
	v, _ := resolved.Max()
	assert.Equal(t, float32(42), v)
}
