// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the engine's tunable defaults from an optional
// TOML file, falling back to the constants spec.md §6 names when no file
// is present, the way cogentcore.org/core/base/iox/tomlx wraps
// github.com/pelletier/go-toml/v2 for the teacher's own settings files.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// EngineDefaults are the box-model and timing constants the solver and
// dispatcher fall back to when a stylesheet doesn't set a value
// explicitly, transcribed from original_source/azul-core/src/ui_solver.rs's
// DEFAULT_* constants.
type EngineDefaults struct {
	FontSizePx           float32 `toml:"font_size_px"`
	LineHeight           float32 `toml:"line_height"`
	WordSpacing          float32 `toml:"word_spacing"`
	LetterSpacing        float32 `toml:"letter_spacing"`
	TabWidth             float32 `toml:"tab_width"`
	DoubleClickIntervalMs int64  `toml:"double_click_interval_ms"`
	Multithreaded        bool    `toml:"multithreaded"`
}

// Defaults returns the built-in fallback values, used whenever no TOML
// file is supplied or a field is left unset in one that is.
func Defaults() EngineDefaults {
	return EngineDefaults{
		FontSizePx:            16,
		LineHeight:            1.0,
		WordSpacing:           1.0,
		LetterSpacing:         0.0,
		TabWidth:              4.0,
		DoubleClickIntervalMs: 500,
		Multithreaded:         false,
	}
}

// Load reads EngineDefaults from a TOML file at path, starting from
// Defaults() so a partial file only overrides the fields it sets. A
// missing file is not an error: the caller gets the built-in defaults.
func Load(path string) (EngineDefaults, error) {
	d := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return d, nil
		}
		return d, err
	}
	if err := toml.Unmarshal(data, &d); err != nil {
		return EngineDefaults{}, err
	}
	return d, nil
}
