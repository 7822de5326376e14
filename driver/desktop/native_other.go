// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux || wayland

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"goki.dev/vxr"
)

// nativeBinding has no GLX handles to report off of X11; the runtime
// driver binds to whatever context is current instead.
func (bd *Binder) nativeBinding(win *glfw.Window) *vxr.GraphicsBinding {
	return &vxr.GraphicsBinding{}
}
