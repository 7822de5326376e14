// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vxr

import (
	"goki.dev/mat32/v2"
)

// Pose is a rigid transform: an orientation quaternion and a position,
// expressed in some reference space.
type Pose struct {

	// Orientation is the rotation component, a unit quaternion.
	Orientation mat32.Quat

	// Position is the translation component, in meters.
	Position mat32.Vec3
}

// IdentityPose returns the identity pose: no rotation, zero position.
func IdentityPose() Pose {
	return Pose{Orientation: mat32.NewQuat(0, 0, 0, 1)}
}

// Matrix returns the pose as a rigid transform matrix (the model
// matrix of something carrying this pose).
func (ps *Pose) Matrix() mat32.Mat4 {
	var m mat32.Mat4
	m.SetTransform(ps.Position, ps.Orientation, mat32.V3(1, 1, 1))
	return m
}

// ViewMatrix returns the world-to-eye view matrix for an eye carrying
// this pose: the inverse of [Pose.Matrix], computed directly from the
// rigid components (conjugate rotation, back-rotated negative
// translation).
func (ps *Pose) ViewMatrix() mat32.Mat4 {
	iq := ps.Orientation.Conjugate()
	// rotate -position into eye space: iq * (-p) * q
	pq := mat32.NewQuat(-ps.Position.X, -ps.Position.Y, -ps.Position.Z, 0)
	var t, r mat32.Quat
	t.MulQuats(iq, pq)
	r.MulQuats(t, ps.Orientation)
	var m mat32.Mat4
	m.SetTransform(mat32.V3(r.X, r.Y, r.Z), iq, mat32.V3(1, 1, 1))
	return m
}

// Fov is an asymmetric field of view: the four half-angles from the
// view axis to each frustum plane, in radians.  AngleLeft and
// AngleDown are typically negative.
type Fov struct {

	// AngleLeft is the angle to the left frustum plane.
	AngleLeft float32

	// AngleRight is the angle to the right frustum plane.
	AngleRight float32

	// AngleUp is the angle to the top frustum plane.
	AngleUp float32

	// AngleDown is the angle to the bottom frustum plane.
	AngleDown float32
}

// ProjectionMatrix returns the off-center perspective projection for
// this field of view and the given near and far clip distances, in
// OpenGL clip space (column major, depth -1..1).
func (fv *Fov) ProjectionMatrix(near, far float32) mat32.Mat4 {
	tanLeft := mat32.Tan(fv.AngleLeft)
	tanRight := mat32.Tan(fv.AngleRight)
	tanDown := mat32.Tan(fv.AngleDown)
	tanUp := mat32.Tan(fv.AngleUp)
	width := tanRight - tanLeft
	height := tanUp - tanDown

	var m mat32.Mat4
	m[0] = 2 / width
	m[5] = 2 / height
	m[8] = (tanRight + tanLeft) / width
	m[9] = (tanUp + tanDown) / height
	m[10] = -(far + near) / (far - near)
	m[11] = -1
	m[14] = -(2 * far * near) / (far - near)
	return m
}
