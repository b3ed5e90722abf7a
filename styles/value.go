// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides the CSS-like property value types the layout
// solver, the transform/opacity differ and the restyle classifier all
// operate on: a tri-state property value, flex/position/overflow enums,
// the transform variant list, and the GPU-only vs. relayout-triggering
// classification table.
package styles

// Value is a tri-state CSS property value, standing in for azul's
// CssPropertyValue<T>: either unset (None), explicitly "auto", or an
// exact value.
type Value[T any] struct {
	kind  valueKind
	exact T
}

type valueKind uint8

const (
	valueNone valueKind = iota
	valueAuto
	valueExact
)

// None returns an unset value.
func None[T any]() Value[T] { return Value[T]{kind: valueNone} }

// Auto returns an explicit "auto" value.
func Auto[T any]() Value[T] { return Value[T]{kind: valueAuto} }

// Exact returns an explicit value of v.
func Exact[T any](v T) Value[T] { return Value[T]{kind: valueExact, exact: v} }

// IsSet reports whether the value is an exact value (not None or Auto).
func (v Value[T]) IsSet() bool { return v.kind == valueExact }

// IsAuto reports whether the value is explicitly "auto".
func (v Value[T]) IsAuto() bool { return v.kind == valueAuto }

// Get returns the exact value and true, or the zero value and false.
func (v Value[T]) Get() (T, bool) {
	if v.kind != valueExact {
		var zero T
		return zero, false
	}
	return v.exact, true
}
