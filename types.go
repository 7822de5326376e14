// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vxr

// FormFactors are the physical device form factors a system can have.
type FormFactors int32 //enums:enum

const (
	// HeadMountedDisplay is a headset worn on the user's head.
	HeadMountedDisplay FormFactors = iota

	// HandheldDisplay is a held device such as a phone or tablet.
	HandheldDisplay
)

// ViewConfigTypes are the view configurations a session can render.
type ViewConfigTypes int32 //enums:enum

const (
	// Mono renders one view.
	Mono ViewConfigTypes = iota

	// Stereo renders two views, one per eye.
	Stereo
)

// NViews returns the number of views in the configuration.
func (vt ViewConfigTypes) NViews() int {
	if vt == Stereo {
		return 2
	}
	return 1
}

// SpaceTypes are the reference space types poses can be located in.
type SpaceTypes int32 //enums:enum

const (
	// ViewSpace tracks the user's head: its origin rides along with
	// the primary viewer.
	ViewSpace SpaceTypes = iota

	// LocalSpace is gravity-aligned and world-locked near the user's
	// position at session start.
	LocalSpace

	// StageSpace is world-locked at the center of the user's
	// pre-configured play area.
	StageSpace
)

// ViewStateFlags report the validity and tracking quality of located
// view poses.
type ViewStateFlags int64 //enums:bitflag

const (
	// OrientationValid means the located orientations are usable.
	OrientationValid ViewStateFlags = iota

	// PositionValid means the located positions are usable.
	PositionValid

	// OrientationTracked means orientation is actively tracked,
	// not inferred.
	OrientationTracked

	// PositionTracked means position is actively tracked, not inferred.
	PositionTracked
)

// PoseValid is the flag set a located view must carry for its pose to
// be rendered from: both orientation and position must be valid.
func (vf ViewStateFlags) PoseValid() bool {
	return vf.HasFlag(OrientationValid) && vf.HasFlag(PositionValid)
}

// ViewConfigurationView is the runtime's per-view render parameters:
// one of these per eye for stereo.
type ViewConfigurationView struct {

	// RecommendedWidth is the runtime-recommended image width.
	RecommendedWidth int

	// RecommendedHeight is the runtime-recommended image height.
	RecommendedHeight int

	// RecommendedSamples is the recommended sample count.
	RecommendedSamples int

	// MaxWidth is the maximum supported image width.
	MaxWidth int

	// MaxHeight is the maximum supported image height.
	MaxHeight int

	// MaxSamples is the maximum supported sample count.
	MaxSamples int
}

// SwapchainConfig configures creation of one swapchain image ring.
type SwapchainConfig struct {

	// Format is the image format, from [Session.SwapchainFormats].
	Format int64

	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int

	// Samples is the sample count, normally 1.
	Samples int

	// ArraySize is the number of array layers per image, normally 1.
	ArraySize int

	// MipCount is the number of mip levels per image, normally 1.
	MipCount int
}

// RenderTarget is an opaque native handle to a swapchain image that
// the graphics [Binder] knows how to write pixels into.
type RenderTarget uintptr

// Image is one image in a swapchain ring.
type Image struct {

	// Target is the native handle the graphics binding writes into.
	Target RenderTarget
}

// FrameState is the runtime's prediction for the next frame, returned
// by [Session.WaitFrame].
type FrameState struct {

	// PredictedDisplayTime is the time, in runtime nanoseconds, at
	// which the frame will be displayed.  Poses are located for it.
	PredictedDisplayTime int64

	// PredictedDisplayPeriod is the expected interval to the frame
	// after this one, in nanoseconds.
	PredictedDisplayPeriod int64

	// ShouldRender is whether the compositor will use rendered
	// content: when false the frame must be submitted empty without
	// touching the swapchains.
	ShouldRender bool
}

// View is one located view: the predicted eye pose and field of view
// at a display time, relative to a reference space.
type View struct {

	// Pose is the eye pose: orientation and position.
	Pose Pose

	// Fov is the asymmetric field of view for the eye.
	Fov Fov
}

// EnvBlendModes are how rendered layers blend with the user's
// environment.
type EnvBlendModes int32 //enums:enum

const (
	// Opaque replaces the environment entirely (VR).
	Opaque EnvBlendModes = iota

	// Additive adds layer light on top of the environment.
	Additive

	// AlphaBlend alpha-blends layers over the environment.
	AlphaBlend
)

// ProjectionView is the per-eye element of a projection layer: the
// pose and fov the eye was rendered with, and the swapchain image
// rectangle holding the pixels.
type ProjectionView struct {

	// Pose is the pose the eye image was rendered from.
	Pose Pose

	// Fov is the field of view the eye image was rendered with.
	Fov Fov

	// Swapchain is the swapchain holding the eye image.
	Swapchain Swapchain

	// RectX, RectY are the image rect origin within the swapchain image.
	RectX, RectY int

	// RectWidth, RectHeight are the image rect extent.
	RectWidth, RectHeight int
}

// ProjectionLayer is a planar projected composition layer: one
// [ProjectionView] per eye, all located in Space.
type ProjectionLayer struct {

	// Space is the reference space the view poses are expressed in.
	Space Space

	// Views are the per-eye projection views.
	Views []ProjectionView
}

// FrameEnd is the submission passed to [Session.EndFrame].
type FrameEnd struct {

	// DisplayTime is the display time the frame was rendered for,
	// from [FrameState.PredictedDisplayTime].
	DisplayTime int64

	// BlendMode is how the layers blend with the environment.
	BlendMode EnvBlendModes

	// Layers are the composition layers, in back-to-front order.
	// An empty slice submits a valid frame with no content.
	Layers []*ProjectionLayer
}
