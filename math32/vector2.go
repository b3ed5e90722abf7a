// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 provides float32 geometry primitives used throughout
// the layout, transform and hit-testing subsystems: points, sizes,
// rectangles and a 4x4 transform matrix.
package math32

// Vector2 is a 2D float32 vector, used for both points and sizes
// depending on context.
type Vector2 struct {
	X, Y float32
}

// Vec2 constructs a Vector2 from its components.
func Vec2(x, y float32) Vector2 { return Vector2{X: x, Y: y} }

// Add returns a + b.
func (a Vector2) Add(b Vector2) Vector2 { return Vector2{a.X + b.X, a.Y + b.Y} }

// Sub returns a - b.
func (a Vector2) Sub(b Vector2) Vector2 { return Vector2{a.X - b.X, a.Y - b.Y} }

// Scale returns a scaled by s.
func (a Vector2) Scale(s float32) Vector2 { return Vector2{a.X * s, a.Y * s} }

// Point2 is a logical-space point. Distinct type from Vector2 for
// readability at call sites even though the representation is identical.
type Point2 = Vector2

// Size2 is a logical-space width/height pair.
type Size2 struct {
	Width, Height float32
}

// Size constructs a Size2.
func Size(w, h float32) Size2 { return Size2{Width: w, Height: h} }

// Zero reports whether the size is exactly zero on both axes.
func (s Size2) Zero() bool { return s.Width == 0 && s.Height == 0 }

// Rect2 is an axis-aligned rectangle with a logical-space origin and size.
type Rect2 struct {
	Origin Point2
	Size   Size2
}

// NewRect2 constructs a Rect2 from an origin and size.
func NewRect2(origin Point2, size Size2) Rect2 {
	return Rect2{Origin: origin, Size: size}
}

// Right returns the right edge (origin.X + width).
func (r Rect2) Right() float32 { return r.Origin.X + r.Size.Width }

// Bottom returns the bottom edge (origin.Y + height).
func (r Rect2) Bottom() float32 { return r.Origin.Y + r.Size.Height }

// HitTest returns the point relative to the rectangle's origin if the
// point falls within the rectangle, or false otherwise.
func (r Rect2) HitTest(p Point2) (Point2, bool) {
	if p.X < r.Origin.X || p.X > r.Right() || p.Y < r.Origin.Y || p.Y > r.Bottom() {
		return Point2{}, false
	}
	return Point2{X: p.X - r.Origin.X, Y: p.Y - r.Origin.Y}, true
}

// Inflate grows the rectangle by the given offsets on each side, shifting
// the origin by (-left, -top).
func (r Rect2) Inflate(top, left, right, bottom float32) Rect2 {
	return Rect2{
		Origin: Point2{X: r.Origin.X - left, Y: r.Origin.Y - top},
		Size:   Size2{Width: r.Size.Width + left + right, Height: r.Size.Height + top + bottom},
	}
}
