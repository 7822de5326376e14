// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vxr

import "errors"

// Debug enables verbose logging of negotiation, state transitions, and
// the frame protocol, and turns swapchain sequencing violations into
// panics instead of errors.  Set before calling [XR.Init].
var Debug = false

var (
	// ErrMissingCapability means the runtime does not offer something
	// required up-front: the graphics extension, the form factor's
	// system, or the view configuration.  Not recoverable by retrying.
	ErrMissingCapability = errors.New("vxr: required runtime capability missing")

	// ErrExtensionLoad means a negotiated extension's entry point
	// could not be resolved even though the extension was advertised.
	ErrExtensionLoad = errors.New("vxr: extension entry point not resolved")

	// ErrPlatformGraphics means the native window or OpenGL context
	// could not be created, so there is nothing to bind a session to.
	ErrPlatformGraphics = errors.New("vxr: platform graphics initialization failed")

	// ErrGraphicsRequirements means the native graphics API version
	// does not fall inside the range the runtime requires.
	ErrGraphicsRequirements = errors.New("vxr: graphics API version outside required range")

	// ErrNoSwapchainFormat means the session offers no usable
	// swapchain image format.
	ErrNoSwapchainFormat = errors.New("vxr: no supported swapchain format")

	// ErrAcquireFailed means the runtime refused to hand out the next
	// swapchain image, normally backpressure from an exhausted ring.
	// Recoverable: the frame is submitted empty.
	ErrAcquireFailed = errors.New("vxr: swapchain image acquire failed")

	// ErrProtocol means a lifecycle method was called out of order,
	// e.g. releasing a swapchain image that was never acquired.
	ErrProtocol = errors.New("vxr: lifecycle protocol violation")

	// ErrInstanceLoss means the runtime announced pending instance
	// loss: the whole client must shut down.
	ErrInstanceLoss = errors.New("vxr: instance loss pending")
)

// IfPanic panics on err after running any finalizers, and is a no-op on
// nil.  Used where an error indicates a bug in this code rather than a
// runtime condition.
func IfPanic(err error, finalizers ...func()) {
	if err != nil {
		for _, fn := range finalizers {
			fn()
		}
		panic(err)
	}
}
