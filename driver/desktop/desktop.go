// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop provides the glfw-based native graphics binding for
// desktop platforms: it owns the OpenGL context the XR session is
// bound to, uploads rendered eye images into swapchain textures, and
// mirrors them side by side into a companion window.
package desktop

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"goki.dev/grr"
	"goki.dev/vxr"
)

func init() {
	// glfw and the GL context are bound to the main OS thread
	runtime.LockOSThread()
}

// Binder is the desktop graphics binding.  All methods must be called
// on the main thread.
type Binder struct {

	// Title is the companion window title.
	Title string

	// Window is the glfw companion window, valid after Init.
	Window *glfw.Window

	width   int
	height  int
	mirrorW int
	mirrorH int
	readFBO uint32
}

// New returns a desktop binder with the given companion window title.
func New(title string) *Binder {
	return &Binder{Title: title}
}

// Init initializes glfw, creates the companion window with an OpenGL
// 3.3 core context sized to show both eyes side by side, and returns
// the native binding handles for session creation.
func (bd *Binder) Init(width, height int) (*vxr.GraphicsBinding, error) {
	if err := glfw.Init(); err != nil {
		return nil, grr.Log(fmt.Errorf("desktop: glfw init failed: %w", err))
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	bd.width = width
	bd.height = height
	// the mirror shows both eyes side by side at half scale
	bd.mirrorW = width
	bd.mirrorH = height / 2
	win, err := glfw.CreateWindow(bd.mirrorW, bd.mirrorH, bd.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, grr.Log(fmt.Errorf("desktop: window creation failed: %w", err))
	}
	bd.Window = win
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		bd.Destroy()
		return nil, grr.Log(fmt.Errorf("desktop: gl init failed: %w", err))
	}
	gl.GenFramebuffers(1, &bd.readFBO)

	var major, minor int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)

	gb := bd.nativeBinding(win)
	gb.APIVersion = vxr.MakeVersion(uint64(major), uint64(minor), 0)
	return gb, nil
}

// MakeCurrent makes the companion window's context current.
func (bd *Binder) MakeCurrent() {
	if bd.Window != nil {
		bd.Window.MakeContextCurrent()
	}
}

// PollEvents pumps glfw events, returning true when the user closed
// the companion window.
func (bd *Binder) PollEvents() bool {
	glfw.PollEvents()
	return bd.Window != nil && bd.Window.ShouldClose()
}

// NewTexture allocates an RGBA8 texture of the given size and returns
// its name as a render target.  Used to back swapchain images when the
// runtime driver does not allocate GPU memory itself.
func (bd *Binder) NewTexture(width, height int) vxr.RenderTarget {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return vxr.RenderTarget(tex)
}

// Upload copies the pixel buffer into the swapchain texture rt.
func (bd *Binder) Upload(rt vxr.RenderTarget, pb *vxr.PixelBuffer) error {
	if len(pb.Pix) != pb.Width*pb.Height*4 {
		return fmt.Errorf("desktop: pixel buffer length %d does not match %dx%d", len(pb.Pix), pb.Width, pb.Height)
	}
	gl.BindTexture(gl.TEXTURE_2D, uint32(rt))
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(pb.Width), int32(pb.Height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pb.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

// Mirror blits the eye texture into its half of the companion window,
// presenting after the last eye.
func (bd *Binder) Mirror(eye, neyes int, rt vxr.RenderTarget, width, height int) {
	if bd.Window == nil {
		return
	}
	if neyes < 1 {
		neyes = 1
	}
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, bd.readFBO)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, uint32(rt), 0)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	fbw, fbh := bd.Window.GetFramebufferSize()
	dx0 := int32(eye * fbw / neyes)
	dx1 := int32((eye + 1) * fbw / neyes)
	gl.BlitFramebuffer(0, 0, int32(width), int32(height),
		dx0, 0, dx1, int32(fbh), gl.COLOR_BUFFER_BIT, gl.LINEAR)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	if eye == neyes-1 {
		bd.Window.SwapBuffers()
	}
}

// Destroy releases the GL resources, window, and glfw.
func (bd *Binder) Destroy() {
	if bd.readFBO != 0 {
		gl.DeleteFramebuffers(1, &bd.readFBO)
		bd.readFBO = 0
	}
	if bd.Window != nil {
		bd.Window.Destroy()
		bd.Window = nil
	}
	glfw.Terminate()
}
