// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import cm32 "github.com/chewxy/math32"

// Matrix4 is a row-major 4x4 transform matrix applied to row vectors,
// i.e. a point p is transformed as p' = p * M. Translation therefore
// lives in row 3 (m[3][0..2]), matching the CSS/GPU convention this
// package's callers (the layout differ) expect.
type Matrix4 struct {
	m [4][4]float32
}

// Identity is the identity transform.
var Identity = Matrix4{m: [4][4]float32{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}}

// NewMatrix4 builds a matrix from its 16 row-major components.
func NewMatrix4(
	m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 float32,
) Matrix4 {
	return Matrix4{m: [4][4]float32{
		{m11, m12, m13, m14},
		{m21, m22, m23, m24},
		{m31, m32, m33, m34},
		{m41, m42, m43, m44},
	}}
}

// New2D builds a 4x4 matrix from a 2D affine matrix(a,b,c,d,tx,ty).
func New2D(a, b, c, d, tx, ty float32) Matrix4 {
	return NewMatrix4(
		a, b, 0, 0,
		c, d, 0, 0,
		0, 0, 1, 0,
		tx, ty, 0, 1,
	)
}

// NewTranslation builds a pure translation matrix.
func NewTranslation(x, y, z float32) Matrix4 {
	return NewMatrix4(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	)
}

// NewScale builds a diagonal scale matrix.
func NewScale(x, y, z float32) Matrix4 {
	return NewMatrix4(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// NewPerspective builds a perspective matrix with distance d.
func NewPerspective(d float32) Matrix4 {
	return NewMatrix4(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, -1/d,
		0, 0, 0, 1,
	)
}

// NewSkew builds a skew matrix from alpha/beta angles in degrees.
func NewSkew(alphaDeg, betaDeg float32) Matrix4 {
	sx := cm32.Tan(betaDeg * cm32.Pi / 180)
	sy := cm32.Tan(alphaDeg * cm32.Pi / 180)
	return NewMatrix4(
		1, sx, 0, 0,
		sy, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// NewRotation builds a rotation matrix around the normalized axis
// (x,y,z) by theta radians, using the half-angle quaternion expansion.
func NewRotation(x, y, z, theta float32) Matrix4 {
	xx, yy, zz := x*x, y*y, z*z
	half := theta / 2
	s, c := cm32.Sin(half), cm32.Cos(half)
	sc := s * c
	sq := s * s

	return NewMatrix4(
		1-2*(yy+zz)*sq, 2*(x*y*sq+z*sc), 2*(x*z*sq-y*sc), 0,
		2*(x*y*sq-z*sc), 1-2*(xx+zz)*sq, 2*(y*z*sq+x*sc), 0,
		2*(x*z*sq+y*sc), 2*(y*z*sq-x*sc), 1-2*(xx+yy)*sq, 0,
		0, 0, 0, 1,
	)
}

// MakeRotation builds a rotation of degrees around the normalized axis
// (axisX,axisY,axisZ), pivoting on rotationOrigin: T(-origin)*R*T(origin).
func MakeRotation(rotationOrigin Point2, degrees float32, axisX, axisY, axisZ float32) Matrix4 {
	theta := degrees * cm32.Pi / 180
	pre := NewTranslation(-rotationOrigin.X, -rotationOrigin.Y, 0)
	post := NewTranslation(rotationOrigin.X, rotationOrigin.Y, 0)
	rotate := NewRotation(axisX, axisY, axisZ, theta)
	return pre.Then(rotate).Then(post)
}

// Then composes self followed by other: for a point p,
// TransformPoint2D(self.Then(other), p) == TransformPoint2D(other, TransformPoint2D(self, p)).
func (a Matrix4) Then(b Matrix4) Matrix4 {
	var r Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a.m[i][k] * b.m[k][j]
			}
			r.m[i][j] = sum
		}
	}
	return r
}

// TransformPoint2D projects a 2D point through the matrix, returning
// false if the homogeneous w component is not strictly positive.
func (a Matrix4) TransformPoint2D(p Point2) (Point2, bool) {
	w := p.X*a.m[0][3] + p.Y*a.m[1][3] + a.m[3][3]
	if w <= 0 {
		return Point2{}, false
	}
	x := p.X*a.m[0][0] + p.Y*a.m[1][0] + a.m[3][0]
	y := p.X*a.m[0][1] + p.Y*a.m[1][1] + a.m[3][1]
	return Point2{X: x / w, Y: y / w}, true
}

// Determinant computes the matrix determinant.
func (a Matrix4) Determinant() float32 {
	m := a.m
	s0 := m[0][0]*m[1][1] - m[1][0]*m[0][1]
	s1 := m[0][0]*m[1][2] - m[1][0]*m[0][2]
	s2 := m[0][0]*m[1][3] - m[1][0]*m[0][3]
	s3 := m[0][1]*m[1][2] - m[1][1]*m[0][2]
	s4 := m[0][1]*m[1][3] - m[1][1]*m[0][3]
	s5 := m[0][2]*m[1][3] - m[1][2]*m[0][3]

	c5 := m[2][2]*m[3][3] - m[3][2]*m[2][3]
	c4 := m[2][1]*m[3][3] - m[3][1]*m[2][3]
	c3 := m[2][1]*m[3][2] - m[3][1]*m[2][2]
	c2 := m[2][0]*m[3][3] - m[3][0]*m[2][3]
	c1 := m[2][0]*m[3][2] - m[3][0]*m[2][2]
	c0 := m[2][0]*m[3][1] - m[3][0]*m[2][1]

	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}

// Inverse returns the matrix inverse, or false if the matrix is
// singular (determinant is zero).
func (a Matrix4) Inverse() (Matrix4, bool) {
	m := a.m
	s0 := m[0][0]*m[1][1] - m[1][0]*m[0][1]
	s1 := m[0][0]*m[1][2] - m[1][0]*m[0][2]
	s2 := m[0][0]*m[1][3] - m[1][0]*m[0][3]
	s3 := m[0][1]*m[1][2] - m[1][1]*m[0][2]
	s4 := m[0][1]*m[1][3] - m[1][1]*m[0][3]
	s5 := m[0][2]*m[1][3] - m[1][2]*m[0][3]

	c5 := m[2][2]*m[3][3] - m[3][2]*m[2][3]
	c4 := m[2][1]*m[3][3] - m[3][1]*m[2][3]
	c3 := m[2][1]*m[3][2] - m[3][1]*m[2][2]
	c2 := m[2][0]*m[3][3] - m[3][0]*m[2][3]
	c1 := m[2][0]*m[3][2] - m[3][0]*m[2][2]
	c0 := m[2][0]*m[3][1] - m[3][0]*m[2][1]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if det == 0 {
		return Matrix4{}, false
	}
	invDet := 1 / det

	var b [4][4]float32
	b[0][0] = (m[1][1]*c5 - m[1][2]*c4 + m[1][3]*c3) * invDet
	b[0][1] = (-m[0][1]*c5 + m[0][2]*c4 - m[0][3]*c3) * invDet
	b[0][2] = (m[3][1]*s5 - m[3][2]*s4 + m[3][3]*s3) * invDet
	b[0][3] = (-m[2][1]*s5 + m[2][2]*s4 - m[2][3]*s3) * invDet

	b[1][0] = (-m[1][0]*c5 + m[1][2]*c2 - m[1][3]*c1) * invDet
	b[1][1] = (m[0][0]*c5 - m[0][2]*c2 + m[0][3]*c1) * invDet
	b[1][2] = (-m[3][0]*s5 + m[3][2]*s2 - m[3][3]*s1) * invDet
	b[1][3] = (m[2][0]*s5 - m[2][2]*s2 + m[2][3]*s1) * invDet

	b[2][0] = (m[1][0]*c4 - m[1][1]*c2 + m[1][3]*c0) * invDet
	b[2][1] = (-m[0][0]*c4 + m[0][1]*c2 - m[0][3]*c0) * invDet
	b[2][2] = (m[3][0]*s4 - m[3][1]*s2 + m[3][3]*s0) * invDet
	b[2][3] = (-m[2][0]*s4 + m[2][1]*s2 - m[2][3]*s0) * invDet

	b[3][0] = (-m[1][0]*c3 + m[1][1]*c1 - m[1][2]*c0) * invDet
	b[3][1] = (m[0][0]*c3 - m[0][1]*c1 + m[0][2]*c0) * invDet
	b[3][2] = (-m[3][0]*s3 + m[3][1]*s1 - m[3][2]*s0) * invDet
	b[3][3] = (m[2][0]*s3 - m[2][1]*s1 + m[2][2]*s0) * invDet

	return Matrix4{m: b}, true
}

// ApproxEqual reports whether the two matrices are equal within eps
// elementwise, used by tests verifying T.Then(T.Inverse()) ≈ Identity.
func (a Matrix4) ApproxEqual(b Matrix4, eps float32) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			d := a.m[i][j] - b.m[i][j]
			if d < 0 {
				d = -d
			}
			if d > eps {
				return false
			}
		}
	}
	return true
}

// At returns the element at row i, column j.
func (a Matrix4) At(i, j int) float32 { return a.m[i][j] }
