// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import "github.com/0xSalik/azul/math32"

// TransformKind discriminates the CSS transform-list function variants
// from spec.md §6's StyleTransform table.
type TransformKind uint8

const (
	TransformMatrix TransformKind = iota
	TransformMatrix3D
	TransformTranslate
	TransformTranslate3D
	TransformTranslateX
	TransformTranslateY
	TransformTranslateZ
	TransformRotate
	TransformRotate3D
	TransformRotateX
	TransformRotateY
	TransformRotateZ
	TransformScale
	TransformScale3D
	TransformScaleX
	TransformScaleY
	TransformScaleZ
	TransformSkew
	TransformSkewX
	TransformSkewY
	TransformPerspective
)

// Transform is a single entry of a transform-list property. Only the
// fields relevant to Kind are populated; the rest are left zero, mirroring
// azul's StyleTransform enum (each variant carries just its own payload).
type Transform struct {
	Kind   TransformKind
	X, Y, Z float32 // translate / scale components
	Angle   float32 // rotate/skew angle, degrees
	AngleY  float32 // second skew angle (skew's beta)
	Matrix  [16]float32
	Distance float32 // perspective
}

// Origin is the transform-origin property: a point relative to the
// node's border box, defaulting to its center (azul's StyleTransformOrigin
// default).
type Origin struct {
	X, Y float32
}

// ToMatrix folds a single Transform entry into a Matrix4, pivoting
// rotations and skews around origin (already resolved to layout-space
// coordinates by the caller).
func (tf Transform) ToMatrix(origin math32.Point2) math32.Matrix4 {
	switch tf.Kind {
	case TransformMatrix, TransformMatrix3D:
		m := tf.Matrix
		return math32.NewMatrix4(
			m[0], m[1], m[2], m[3],
			m[4], m[5], m[6], m[7],
			m[8], m[9], m[10], m[11],
			m[12], m[13], m[14], m[15],
		)
	case TransformTranslate, TransformTranslate3D:
		return math32.NewTranslation(tf.X, tf.Y, tf.Z)
	case TransformTranslateX:
		return math32.NewTranslation(tf.X, 0, 0)
	case TransformTranslateY:
		return math32.NewTranslation(0, tf.Y, 0)
	case TransformTranslateZ:
		return math32.NewTranslation(0, 0, tf.Z)
	case TransformRotate, TransformRotateZ:
		return math32.MakeRotation(math32.Point2{X: origin.X, Y: origin.Y}, tf.Angle, 0, 0, 1)
	case TransformRotateX:
		return math32.MakeRotation(math32.Point2{X: origin.X, Y: origin.Y}, tf.Angle, 1, 0, 0)
	case TransformRotateY:
		return math32.MakeRotation(math32.Point2{X: origin.X, Y: origin.Y}, tf.Angle, 0, 1, 0)
	case TransformRotate3D:
		return math32.MakeRotation(math32.Point2{X: origin.X, Y: origin.Y}, tf.Angle, tf.X, tf.Y, tf.Z)
	case TransformScale, TransformScale3D:
		z := tf.Z
		if z == 0 {
			z = 1
		}
		return math32.NewScale(tf.X, tf.Y, z)
	case TransformScaleX:
		return math32.NewScale(tf.X, 1, 1)
	case TransformScaleY:
		return math32.NewScale(1, tf.Y, 1)
	case TransformScaleZ:
		return math32.NewScale(1, 1, tf.Z)
	case TransformSkew:
		return math32.NewSkew(tf.Angle, tf.AngleY)
	case TransformSkewX:
		return math32.NewSkew(tf.Angle, 0)
	case TransformSkewY:
		return math32.NewSkew(0, tf.Angle)
	case TransformPerspective:
		return math32.NewPerspective(tf.Distance)
	default:
		return math32.Identity
	}
}

// FoldTransforms composes a transform-list into a single matrix, applied
// in list order and pivoted around origin, matching azul's
// ComputedTransform3D construction (spec.md §4.3).
func FoldTransforms(list []Transform, origin math32.Point2) math32.Matrix4 {
	m := math32.Identity
	for _, tf := range list {
		m = m.Then(tf.ToMatrix(origin))
	}
	return m
}
