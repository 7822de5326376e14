// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vxr

import (
	"fmt"
	"time"
)

// Runtime is the entry point into an XR runtime: it enumerates what the
// runtime offers before any instance exists, and creates the instance.
// Implementations live under driver/.
type Runtime interface {
	// Layers enumerates the API layers the runtime exposes.
	Layers() ([]LayerProperties, error)

	// Extensions enumerates the extensions the runtime implements.
	// Negotiation fails up-front if a required extension is missing.
	Extensions() ([]ExtensionProperties, error)

	// NewInstance creates an instance with the given application info
	// and the exact list of extensions to enable.
	NewInstance(info *AppInfo, exts []string) (Instance, error)
}

// Instance is a connection to the runtime with a negotiated set of
// extensions enabled.  It resolves systems and extension entry points,
// creates sessions, and is the source of asynchronous events.
type Instance interface {
	// Properties returns the runtime's self-reported name and version.
	Properties() (*InstanceProperties, error)

	// ProcAddr resolves an extension entry point by name.  The returned
	// value is a function of the type documented for that entry point;
	// callers type-assert it.  Unknown names return an error.
	ProcAddr(name string) (any, error)

	// System resolves the system (device pair) for a form factor.
	// A runtime with no such system attached returns an error.
	System(form FormFactors) (SystemID, error)

	// SystemProperties returns the capabilities of a resolved system.
	SystemProperties(sys SystemID) (*SystemProperties, error)

	// ViewConfigurationViews returns the per-view render parameters
	// (one element per eye for stereo) for the given configuration.
	ViewConfigurationViews(sys SystemID, typ ViewConfigTypes) ([]ViewConfigurationView, error)

	// NewSession creates a session on the system, bound to the native
	// graphics context described by gb.
	NewSession(sys SystemID, gb *GraphicsBinding) (Session, error)

	// PollEvent returns the next pending event, or nil if none.
	PollEvent() Event

	// Destroy destroys the instance and everything created from it.
	Destroy() error
}

// Session is a running XR session: spaces, swapchains, the frame
// protocol, and view location all hang off of it.  A session is single
// threaded: all methods must be called from the same goroutine.
type Session interface {
	// Begin begins the session with the given view configuration.
	// Valid only after the runtime reports the session Ready.
	Begin(typ ViewConfigTypes) error

	// End ends the session.  Valid only after the runtime reports
	// Stopping; the frame loop must already have been exited.
	End() error

	// RequestExit asks the runtime to wind the session down; the
	// runtime responds with Stopping and then Exiting state events.
	RequestExit() error

	// NewSpace creates a reference space of the given type, offset
	// from its natural origin by pose.
	NewSpace(typ SpaceTypes, pose Pose) (Space, error)

	// SwapchainFormats returns the image formats the runtime supports
	// for swapchains, in order of runtime preference.
	SwapchainFormats() ([]int64, error)

	// NewSwapchain creates a swapchain image ring per cfg.
	NewSwapchain(cfg *SwapchainConfig) (Swapchain, error)

	// WaitFrame blocks until the runtime is ready for a new frame,
	// pacing the caller, and predicts the display time for it.
	WaitFrame() (FrameState, error)

	// BeginFrame marks the start of rendering for the frame most
	// recently returned by WaitFrame.
	BeginFrame() error

	// EndFrame submits the frame's layers (possibly none) to the
	// compositor.  Every BeginFrame must be paired with an EndFrame,
	// even when the frame is skipped.
	EndFrame(end *FrameEnd) error

	// LocateViews returns the predicted pose and field of view of each
	// view at displayTime, relative to sp, along with validity flags.
	LocateViews(sp Space, displayTime int64, nviews int) ([]View, ViewStateFlags, error)

	// Destroy destroys the session.  Safe to call in any state.
	Destroy() error
}

// Swapchain is a ring of images shared with the compositor.  Images are
// used in strict acquire / wait / write / release order; at most one
// image is acquired at a time in this client.
type Swapchain interface {
	// Images returns the ring's images, in ring order.  The slice is
	// fixed for the life of the swapchain.
	Images() []Image

	// Acquire acquires the next image, returning its ring index.
	Acquire() (int, error)

	// Wait blocks until the acquired image is safe to write, or until
	// timeout, whichever comes first.
	Wait(timeout time.Duration) error

	// Release returns the acquired image to the compositor.
	Release() error

	// Destroy destroys the swapchain and its images.
	Destroy() error
}

// Space is a reference coordinate space that poses are located against.
type Space interface {
	Destroy() error
}

// SystemID identifies a resolved system on an instance.
type SystemID int64

// Version is a packed major.minor.patch API or engine version.
type Version uint64

// MakeVersion packs a major.minor.patch triple into a Version.
func MakeVersion(major, minor, patch uint64) Version {
	return Version(major<<48 | (minor&0xffff)<<32 | patch&0xffffffff)
}

// Major returns the major component of the version.
func (v Version) Major() uint64 { return uint64(v >> 48) }

// Minor returns the minor component of the version.
func (v Version) Minor() uint64 { return uint64(v>>32) & 0xffff }

// Patch returns the patch component of the version.
func (v Version) Patch() uint64 { return uint64(v) & 0xffffffff }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

// APIVersion is the runtime API version this client targets.
var APIVersion = MakeVersion(1, 0, 0)

// AppInfo is the application identity passed to instance creation.
type AppInfo struct {

	// Name is the application name reported to the runtime.
	Name string

	// Version is the application's own version.
	Version uint32

	// Engine is the engine name, if any.
	Engine string

	// EngineVersion is the engine version, if any.
	EngineVersion uint32
}

// LayerProperties describes one API layer offered by the runtime.
type LayerProperties struct {

	// Name is the layer name.
	Name string

	// SpecVersion is the API version the layer was written against.
	SpecVersion Version

	// LayerVersion is the implementation version of the layer.
	LayerVersion uint32

	// Description is the human-readable layer description.
	Description string
}

// ExtensionProperties describes one extension the runtime implements.
type ExtensionProperties struct {

	// Name is the extension name, e.g. [GraphicsExtension].
	Name string

	// Version is the extension implementation version.
	Version uint32
}

// InstanceProperties is the runtime's self-description.
type InstanceProperties struct {

	// RuntimeName is the runtime's name.
	RuntimeName string

	// RuntimeVersion is the runtime's version.
	RuntimeVersion Version
}

// SystemProperties describes the capabilities of a resolved system.
type SystemProperties struct {

	// SystemID is the system this describes.
	SystemID SystemID

	// Name is the system (headset) name.
	Name string

	// VendorID is the hardware vendor id.
	VendorID uint32

	// MaxLayerCount is the maximum number of composition layers
	// the compositor accepts per frame.
	MaxLayerCount uint32

	// MaxSwapchainWidth is the maximum supported swapchain image width.
	MaxSwapchainWidth uint32

	// MaxSwapchainHeight is the maximum supported swapchain image height.
	MaxSwapchainHeight uint32

	// OrientationTracking is whether the system tracks orientation.
	OrientationTracking bool

	// PositionTracking is whether the system tracks position.
	PositionTracking bool
}

// GraphicsRequirements is the runtime's required native graphics API
// version range, obtained through the graphics binding extension.
type GraphicsRequirements struct {

	// MinAPIVersion is the minimum native graphics API version.
	MinAPIVersion Version

	// MaxAPIVersion is the maximum native graphics API version.
	MaxAPIVersion Version
}

// GraphicsRequirementsFunc is the entry point type resolved through
// [Instance.ProcAddr] for the graphics binding extension's
// requirements query.  It must be called before session creation.
type GraphicsRequirementsFunc func(sys SystemID) (*GraphicsRequirements, error)

// Exts holds the extension entry points resolved during negotiation.
type Exts struct {

	// GraphicsRequirements queries the native graphics API version
	// range the runtime requires.
	GraphicsRequirements GraphicsRequirementsFunc
}
