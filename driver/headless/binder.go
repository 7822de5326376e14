// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package headless

import (
	"fmt"

	"goki.dev/vxr"
)

// Binder is the headless graphics binding: no window, no context, eye
// images kept in memory.  Uploaded buffers are retained per render
// target so tests and offscreen consumers can read back what was
// submitted.
type Binder struct {

	// GLVersion is the OpenGL version reported in the binding.
	GLVersion vxr.Version

	// InitErr, if set, fails Init.
	InitErr error

	// Exit makes the next PollEvents report a close request.
	Exit bool

	// Uploads counts Upload calls.
	Uploads int

	// Mirrors counts Mirror calls.
	Mirrors int

	images    map[vxr.RenderTarget]*vxr.PixelBuffer
	destroyed bool
}

// NewBinder returns a headless binder reporting OpenGL 4.6.
func NewBinder() *Binder {
	return &Binder{GLVersion: vxr.MakeVersion(4, 6, 0)}
}

func (bd *Binder) Init(width, height int) (*vxr.GraphicsBinding, error) {
	if bd.InitErr != nil {
		return nil, bd.InitErr
	}
	bd.images = make(map[vxr.RenderTarget]*vxr.PixelBuffer)
	return &vxr.GraphicsBinding{APIVersion: bd.GLVersion}, nil
}

func (bd *Binder) MakeCurrent() {}

func (bd *Binder) PollEvents() bool {
	ex := bd.Exit
	bd.Exit = false
	return ex
}

func (bd *Binder) Upload(rt vxr.RenderTarget, pb *vxr.PixelBuffer) error {
	if len(pb.Pix) != pb.Width*pb.Height*4 {
		return fmt.Errorf("headless: pixel buffer length %d does not match %dx%d", len(pb.Pix), pb.Width, pb.Height)
	}
	bd.images[rt] = pb
	bd.Uploads++
	return nil
}

func (bd *Binder) Mirror(eye, neyes int, rt vxr.RenderTarget, width, height int) {
	bd.Mirrors++
}

// ImageFor returns the last buffer uploaded to the given target, or
// nil if none.
func (bd *Binder) ImageFor(rt vxr.RenderTarget) *vxr.PixelBuffer {
	return bd.images[rt]
}

func (bd *Binder) Destroy() {
	bd.destroyed = true
	bd.images = nil
}

// Destroyed returns whether the binder has been destroyed.
func (bd *Binder) Destroyed() bool {
	return bd.destroyed
}
