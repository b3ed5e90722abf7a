// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

// Codes is a platform-independent physical key code, standing in for the
// teacher's key.Codes enum. Only the subset the dispatcher and the
// focus/tab-order logic need is named here; an embedder extends the range
// for anything else it needs to carry through a Key event.
type Codes int32

const (
	CodeUnknown Codes = iota
	CodeTab
	CodeReturnEnter
	CodeEscape
	CodeSpacebar
	CodeLeftArrow
	CodeRightArrow
	CodeUpArrow
	CodeDownArrow
)

// Chord renders a (modifiers, code) pair as a human-readable string such
// as "Control+Shift+Tab", matching the teacher's key.Chord naming idiom.
func Chord(mods Modifiers, code Codes) string {
	return mods.String() + codeNames[code]
}

var codeNames = map[Codes]string{
	CodeUnknown:     "Unknown",
	CodeTab:         "Tab",
	CodeReturnEnter: "Enter",
	CodeEscape:      "Escape",
	CodeSpacebar:    "Space",
	CodeLeftArrow:   "Left",
	CodeRightArrow:  "Right",
	CodeUpArrow:     "Up",
	CodeDownArrow:   "Down",
}
