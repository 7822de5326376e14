// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vxr

// GraphicsBinding describes the native OpenGL context a session is
// bound to.  The fields are platform handles as opaque integers; a
// pure-Go driver leaves them zero.
type GraphicsBinding struct {

	// Display is the native display connection (X11 Display*).
	Display uintptr

	// VisualID is the X visual id of the context's framebuffer config.
	VisualID uintptr

	// FBConfig is the GLXFBConfig handle.
	FBConfig uintptr

	// Drawable is the GLX drawable (window).
	Drawable uintptr

	// Context is the GLX context handle.
	Context uintptr

	// APIVersion is the OpenGL version of the context.
	APIVersion Version
}

// Binder is the platform windowing / graphics side of the client: it
// owns the native OpenGL context the session binds to, uploads
// rendered pixels into swapchain images, and runs the companion
// window.  driver/desktop provides the glfw implementation.
// All methods must be called on the main OS thread.
type Binder interface {

	// Init creates the native window and OpenGL context, sized to
	// mirror eye images of the given dimensions, and returns the
	// binding handles for session creation.
	Init(width, height int) (*GraphicsBinding, error)

	// MakeCurrent makes the context current on this thread.
	MakeCurrent()

	// PollEvents pumps the native event loop, returning true when the
	// user asked to close the companion window.
	PollEvents() (exit bool)

	// Upload copies the pixel buffer into the swapchain image
	// identified by rt.  The buffer dimensions must match the image.
	Upload(rt RenderTarget, pb *PixelBuffer) error

	// Mirror blits the swapchain image rt for the given eye into the
	// companion window (side by side for stereo), and presents after
	// the last eye.
	Mirror(eye, neyes int, rt RenderTarget, width, height int)

	// Destroy releases the context and window.
	Destroy()
}

// Renderer produces the pixels for one eye.  It is the application's
// contribution to the frame loop: everything else (pacing, posing,
// swapchain traffic, submission) is handled by [XR].
type Renderer interface {

	// RenderEye renders one eye image for the given view (pose and
	// fov), projection, and viewport size.  The returned buffer's
	// dimensions must exactly match width and height; a mismatch
	// fails the eye.
	RenderEye(view *View, cfg *Config, width, height int) (*PixelBuffer, error)
}

// RendererFunc adapts a plain function to the [Renderer] interface.
type RendererFunc func(view *View, cfg *Config, width, height int) (*PixelBuffer, error)

func (f RendererFunc) RenderEye(view *View, cfg *Config, width, height int) (*PixelBuffer, error) {
	return f(view, cfg, width, height)
}

// PixelBuffer is a tightly-packed RGBA8 pixel rectangle.
type PixelBuffer struct {

	// Width, Height are the dimensions in pixels.
	Width, Height int

	// Pix is the RGBA pixel data, row-major, 4 bytes per pixel,
	// length Width*Height*4.
	Pix []byte
}

// NewPixelBuffer returns a buffer of the given size with allocated,
// zeroed pixels.
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{Width: width, Height: height, Pix: make([]byte, width*height*4)}
}
