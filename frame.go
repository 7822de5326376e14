// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vxr

import (
	"log/slog"

	"goki.dev/grr"
)

// FrameCycle runs one full frame: wait for the runtime's pacing,
// begin the frame, locate the views and render every eye if the
// compositor wants content, and submit.  Every begun frame is ended,
// even when rendering is skipped or fails partway: a skipped frame is
// submitted with no layers, which keeps the frame protocol intact.
func (xr *XR) FrameCycle() {
	fs, err := xr.Session.WaitFrame()
	if err != nil {
		// no frame was handed out, so nothing to begin or end
		grr.Log(err)
		return
	}
	if err := xr.Session.BeginFrame(); err != nil {
		// the wait/begin pairing is broken: the loop cannot continue
		xr.Err = grr.Log(err)
		xr.Quit = true
		return
	}
	xr.frameCount++

	var layers []*ProjectionLayer
	if fs.ShouldRender {
		if pviews, ok := xr.renderViews(&fs); ok {
			layers = []*ProjectionLayer{{Space: xr.Space, Views: pviews}}
		}
	}
	err = xr.Session.EndFrame(&FrameEnd{
		DisplayTime: fs.PredictedDisplayTime,
		BlendMode:   Opaque,
		Layers:      layers,
	})
	if err != nil {
		grr.Log(err)
	}
}

// renderViews locates the views for the frame's predicted display time
// and renders every eye into its swapchain ring.  It returns ok=false,
// with every checked-out image released, when the frame should be
// submitted empty instead: locate failure, wrong view count, invalid
// poses, or any per-eye failure.
func (xr *XR) renderViews(fs *FrameState) ([]ProjectionView, bool) {
	nv := xr.Sys.NViews()
	views, flags, err := xr.Session.LocateViews(xr.Space, fs.PredictedDisplayTime, nv)
	if err != nil {
		slog.Debug("vxr: locate views failed, skipping frame", "err", err)
		return nil, false
	}
	if len(views) != nv {
		slog.Debug("vxr: locate views count mismatch, skipping frame", "got", len(views), "want", nv)
		return nil, false
	}
	if !flags.PoseValid() {
		slog.Debug("vxr: view poses not valid, skipping frame", "flags", flags)
		return nil, false
	}
	xr.Views = views

	// context-current state is thread-affine
	xr.Binder.MakeCurrent()
	pviews := make([]ProjectionView, nv)
	for vi := 0; vi < nv; vi++ {
		vs := xr.Chains[vi]
		if _, err := vs.Acquire(); err != nil {
			slog.Debug("vxr: swapchain acquire failed, skipping frame", "view", vi, "err", err)
			return nil, false
		}
		if err := xr.renderEye(vi, &views[vi], vs); err != nil {
			slog.Debug("vxr: eye render failed, skipping frame", "view", vi, "err", err)
			vs.Release()
			return nil, false
		}
		vs.Release()
		pviews[vi] = ProjectionView{
			Pose:       views[vi].Pose,
			Fov:        views[vi].Fov,
			Swapchain:  vs.Swapchain,
			RectWidth:  vs.Width,
			RectHeight: vs.Height,
		}
	}
	return pviews, true
}

// renderEye produces one eye's pixels and uploads them into the
// checked-out swapchain image, mirroring to the companion window when
// enabled.  The renderer must return a buffer exactly matching the
// swapchain image size.
func (xr *XR) renderEye(vi int, vw *View, vs *ViewSwapchain) error {
	pb, err := xr.Renderer.RenderEye(vw, &xr.Config, vs.Width, vs.Height)
	if err != nil {
		return err
	}
	if pb.Width != vs.Width || pb.Height != vs.Height {
		return vs.protocol("renderer returned wrong buffer size")
	}
	if err := xr.Binder.Upload(vs.Image().Target, pb); err != nil {
		return err
	}
	if xr.Config.MirrorEnabled {
		xr.Binder.Mirror(vi, xr.Sys.NViews(), vs.Image().Target, vs.Width, vs.Height)
	}
	return nil
}

// FrameCount returns the number of frames begun so far.
func (xr *XR) FrameCount() int64 {
	return xr.frameCount
}
