// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key provides the key-code and modifier-flag types window
// events carry, mirroring the teacher's events/key subpackage split.
package key

import "strings"

// Modifiers is a bitflag set of modifier keys held during a key or mouse
// event, standing in for the teacher's key.Modifiers bitflag enum.
type Modifiers uint8

const (
	Control Modifiers = 1 << iota
	Meta              // the Command key on macOS, the Windows key on Windows
	Alt               // Option on macOS
	Shift
)

// Has reports whether m is set.
func (mo Modifiers) Has(m Modifiers) bool { return mo&m != 0 }

var modifierNames = []struct {
	flag Modifiers
	name string
}{
	{Control, "Control"},
	{Meta, "Meta"},
	{Alt, "Alt"},
	{Shift, "Shift"},
}

// String returns the modifier set using plus symbols as separators, e.g.
// "Control+Shift+".
func (mo Modifiers) String() string {
	var b strings.Builder
	for _, m := range modifierNames {
		if mo.Has(m.flag) {
			b.WriteString(m.name)
			b.WriteByte('+')
		}
	}
	return b.String()
}
