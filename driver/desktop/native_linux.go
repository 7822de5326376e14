// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && !wayland

package desktop

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"goki.dev/vxr"
)

// nativeBinding fills the X11 / GLX handles of the context.  glfw does
// not expose the GLXFBConfig or visual id, so those stay zero; the
// runtime derives them from the context.
func (bd *Binder) nativeBinding(win *glfw.Window) *vxr.GraphicsBinding {
	return &vxr.GraphicsBinding{
		Display:  uintptr(unsafe.Pointer(glfw.GetX11Display())),
		Drawable: uintptr(win.GetGLXWindow()),
		Context:  uintptr(unsafe.Pointer(win.GetGLXContext())),
	}
}
