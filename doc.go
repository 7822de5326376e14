// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package vxr manages an XR compositor-client session: it negotiates an
instance with an XR runtime, resolves the system and per-eye view
configuration, creates per-eye swapchain image rings, and drives the
per-frame wait / begin / locate / render / submit / end protocol,
reacting to the asynchronous session state events the runtime delivers.

The runtime itself is reached through the Runtime / Instance / Session /
Swapchain driver interfaces, which mirror the session, frame, and
swapchain lifecycle semantics of the OpenXR 1.0 specification.  Driver
implementations live under driver/: driver/headless is a pure-Go scripted
runtime used for offscreen operation and testing, and driver/desktop
provides the glfw-based native graphics binding and companion-window
mirroring for desktop platforms.

The pixel-producing renderer is an external collaborator, injected as the
Renderer interface: given an eye's pose, field of view, and viewport size
it returns a pixel buffer, which must exactly match the requested viewport.

Everything runs on a single goroutine: the XR app owns the session
handle, the event poll, and the frame cycle, and the only blocking points
are the runtime's own frame pacing and the bounded per-image wait.
*/
package vxr
