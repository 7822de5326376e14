// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package headless provides a pure-Go in-process XR runtime driver.
// It implements the full session, frame, and swapchain protocol with
// real bookkeeping but no device: eye images go nowhere (or into
// memory via the [Binder]).  It drives the session state machine the
// way a conforming runtime does, so a client running against it
// exercises exactly the code paths it would against real hardware,
// which makes it the driver for offscreen use and for tests.
package headless

import (
	"fmt"

	"goki.dev/vxr"
)

// Runtime is the headless runtime.  The exported fields configure what
// it advertises; change them before any calls.  The zero value is not
// usable: use [New].
type Runtime struct {

	// Exts are the extensions the runtime advertises.
	Exts []vxr.ExtensionProperties

	// Formats are the swapchain formats sessions offer, in preference
	// order.
	Formats []int64

	// NImages is the number of images per swapchain ring.
	NImages int

	// Views are the per-view render parameters for stereo.
	Views []vxr.ViewConfigurationView

	// HasSystem is whether a system is attached for HeadMountedDisplay.
	HasSystem bool

	// MinGL, MaxGL are the graphics API version range the runtime
	// requires.
	MinGL, MaxGL vxr.Version

	// AllocTarget, if set, allocates the native render target for
	// each swapchain image, so the ring can hold real GL textures
	// when paired with a real graphics binding.  When nil, targets
	// are synthetic handles.
	AllocTarget func(width, height int) vxr.RenderTarget

	inst *Instance
}

// New returns a headless runtime advertising a conventional stereo
// head-mounted system: the OpenGL graphics extension, sRGB and linear
// RGBA formats, triple-buffered rings, and 1024x1024 eye views.
func New() *Runtime {
	return &Runtime{
		Exts: []vxr.ExtensionProperties{
			{Name: vxr.GraphicsExtension, Version: 10},
		},
		Formats: []int64{0x8C43, 0x8058}, // GL_SRGB8_ALPHA8, GL_RGBA8
		NImages: 3,
		Views: []vxr.ViewConfigurationView{
			{RecommendedWidth: 1024, RecommendedHeight: 1024, RecommendedSamples: 1, MaxWidth: 2048, MaxHeight: 2048, MaxSamples: 4},
			{RecommendedWidth: 1024, RecommendedHeight: 1024, RecommendedSamples: 1, MaxWidth: 2048, MaxHeight: 2048, MaxSamples: 4},
		},
		HasSystem: true,
		MinGL:     vxr.MakeVersion(3, 3, 0),
		MaxGL:     vxr.MakeVersion(4, 6, 0),
	}
}

// Instance returns the most recently created instance, for test access.
func (rt *Runtime) Instance() *Instance {
	return rt.inst
}

func (rt *Runtime) Layers() ([]vxr.LayerProperties, error) {
	return nil, nil
}

func (rt *Runtime) Extensions() ([]vxr.ExtensionProperties, error) {
	return rt.Exts, nil
}

func (rt *Runtime) NewInstance(info *vxr.AppInfo, exts []string) (vxr.Instance, error) {
	for _, ex := range exts {
		if !rt.hasExt(ex) {
			return nil, fmt.Errorf("headless: extension %s not advertised", ex)
		}
	}
	inst := &Instance{rt: rt, enabled: exts}
	rt.inst = inst
	return inst, nil
}

func (rt *Runtime) hasExt(name string) bool {
	for _, ex := range rt.Exts {
		if ex.Name == name {
			return true
		}
	}
	return false
}

// Instance is the headless instance.  Tests can inject events with
// [Instance.PushEvent].
type Instance struct {
	rt        *Runtime
	enabled   []string
	events    []vxr.Event
	destroyed bool

	// Session is the most recently created session, for test access.
	Session *Session
}

func (in *Instance) Properties() (*vxr.InstanceProperties, error) {
	return &vxr.InstanceProperties{
		RuntimeName:    "vxr headless",
		RuntimeVersion: vxr.MakeVersion(1, 0, 0),
	}, nil
}

func (in *Instance) ProcAddr(name string) (any, error) {
	if name == "xrGetOpenGLGraphicsRequirementsKHR" && in.hasEnabled(vxr.GraphicsExtension) {
		fn := vxr.GraphicsRequirementsFunc(func(sys vxr.SystemID) (*vxr.GraphicsRequirements, error) {
			return &vxr.GraphicsRequirements{MinAPIVersion: in.rt.MinGL, MaxAPIVersion: in.rt.MaxGL}, nil
		})
		return fn, nil
	}
	return nil, fmt.Errorf("headless: no entry point %s", name)
}

func (in *Instance) hasEnabled(name string) bool {
	for _, ex := range in.enabled {
		if ex == name {
			return true
		}
	}
	return false
}

func (in *Instance) System(form vxr.FormFactors) (vxr.SystemID, error) {
	if form != vxr.HeadMountedDisplay || !in.rt.HasSystem {
		return 0, fmt.Errorf("headless: no system for form factor %v", form)
	}
	return 1, nil
}

func (in *Instance) SystemProperties(sys vxr.SystemID) (*vxr.SystemProperties, error) {
	return &vxr.SystemProperties{
		SystemID:            sys,
		Name:                "headless hmd",
		VendorID:            0xBEEF,
		MaxLayerCount:       16,
		MaxSwapchainWidth:   4096,
		MaxSwapchainHeight:  4096,
		OrientationTracking: true,
		PositionTracking:    true,
	}, nil
}

func (in *Instance) ViewConfigurationViews(sys vxr.SystemID, typ vxr.ViewConfigTypes) ([]vxr.ViewConfigurationView, error) {
	if typ != vxr.Stereo {
		return nil, fmt.Errorf("headless: view configuration %v not supported", typ)
	}
	return in.rt.Views, nil
}

func (in *Instance) NewSession(sys vxr.SystemID, gb *vxr.GraphicsBinding) (vxr.Session, error) {
	ss := &Session{in: in, ShouldRender: true}
	in.Session = ss
	// a conforming runtime walks a fresh session to Ready on its own
	in.PushState(vxr.SessionIdle)
	in.PushState(vxr.SessionReady)
	return ss, nil
}

func (in *Instance) PollEvent() vxr.Event {
	if len(in.events) == 0 {
		return nil
	}
	ev := in.events[0]
	in.events = in.events[1:]
	return ev
}

// PushEvent queues an event for [Instance.PollEvent] to return.
func (in *Instance) PushEvent(ev vxr.Event) {
	in.events = append(in.events, ev)
}

// PushState queues a session state change event.
func (in *Instance) PushState(st vxr.SessionStates) {
	in.PushEvent(&vxr.StateChangeEvent{State: st, Time: in.now()})
}

func (in *Instance) now() int64 {
	if in.Session != nil {
		return in.Session.clock
	}
	return 0
}

func (in *Instance) Destroy() error {
	in.destroyed = true
	in.events = nil
	return nil
}

// Destroyed returns whether the instance has been destroyed.
func (in *Instance) Destroyed() bool {
	return in.destroyed
}
