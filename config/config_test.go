// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsMatchSpecConstants(t *testing.T) {
	d := Defaults()
	assert.Equal(t, float32(16), d.FontSizePx)
	assert.Equal(t, float32(1.0), d.LineHeight)
	assert.Equal(t, float32(1.0), d.WordSpacing)
	assert.Equal(t, float32(0.0), d.LetterSpacing)
	assert.Equal(t, float32(4.0), d.TabWidth)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	d, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), d)
}

func TestLoadPartialFileOverridesOnlySetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte("font_size_px = 20\nmultithreaded = true\n"), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(20), d.FontSizePx)
	assert.True(t, d.Multithreaded)
	assert.Equal(t, float32(1.0), d.LineHeight)
}
