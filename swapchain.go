// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vxr

import (
	"fmt"
	"log/slog"
	"time"

	"goki.dev/grr"
)

// acquire states of a ViewSwapchain, enforcing the per-image ordering:
// an image must be acquired, then waited on, then written, then
// released, with no step skipped or repeated.
const (
	chainIdle = iota
	chainAcquired
	chainWaited
)

// ViewSwapchain manages the swapchain image ring for one view (eye):
// it owns the driver swapchain, tracks which image is checked out, and
// enforces the acquire / wait / release ordering.  At most one image
// is checked out at a time.
type ViewSwapchain struct {
	View       int           `desc:"view (eye) index this ring belongs to"`
	Format     int64         `desc:"image format selected for the ring"`
	Width      int           `desc:"image width in pixels"`
	Height     int           `desc:"image height in pixels"`
	NImages    int           `desc:"number of images in the ring, set by the runtime"`
	Swapchain  Swapchain     `desc:"driver swapchain"`
	ImageIndex int           `desc:"ring index of the currently checked-out image, valid between Acquire and Release"`
	WaitDur    time.Duration `desc:"per-image wait budget"`

	state int
}

// SelectFormat picks the swapchain image format: preferred if the
// session offers it, otherwise the runtime's first (most preferred)
// offering.  An empty format list is [ErrNoSwapchainFormat].
func SelectFormat(formats []int64, preferred int64) (int64, error) {
	if len(formats) == 0 {
		return 0, ErrNoSwapchainFormat
	}
	for _, f := range formats {
		if f == preferred {
			return f, nil
		}
	}
	return formats[0], nil
}

// ConfigSwapchains creates one swapchain ring per view, at each view's
// recommended size, using the session's preferred available format.
// On any per-view failure the rings already created are destroyed.
func ConfigSwapchains(ss Session, si *SystemInfo, cfg *Config) ([]*ViewSwapchain, error) {
	formats, err := ss.SwapchainFormats()
	if err != nil {
		return nil, grr.Log(err)
	}
	format, err := SelectFormat(formats, cfg.Format)
	if err != nil {
		return nil, grr.Log(err)
	}
	if format != cfg.Format {
		slog.Info("vxr: preferred swapchain format unavailable, using first offered", "preferred", cfg.Format, "using", format)
	}
	chains := make([]*ViewSwapchain, 0, si.NViews())
	for vi, vw := range si.Views {
		vs := &ViewSwapchain{
			View:    vi,
			Format:  format,
			Width:   vw.RecommendedWidth,
			Height:  vw.RecommendedHeight,
			WaitDur: time.Duration(cfg.FrameWait) * time.Millisecond,
		}
		sw, err := ss.NewSwapchain(&SwapchainConfig{
			Format:    format,
			Width:     vs.Width,
			Height:    vs.Height,
			Samples:   1,
			ArraySize: 1,
			MipCount:  1,
		})
		if err != nil {
			for _, pv := range chains {
				pv.Destroy()
			}
			return nil, grr.Log(err)
		}
		vs.Swapchain = sw
		vs.NImages = len(sw.Images())
		slog.Debug("vxr: swapchain", "view", vi, "size", fmt.Sprintf("%dx%d", vs.Width, vs.Height), "images", vs.NImages)
		chains = append(chains, vs)
	}
	return chains, nil
}

// Acquire acquires the next image in the ring and waits for it to be
// writable, within the wait budget.  On any failure the image is not
// checked out.  Acquiring while an image is already checked out is a
// protocol violation.
func (vs *ViewSwapchain) Acquire() (int, error) {
	if vs.state != chainIdle {
		return 0, vs.protocol("Acquire with image already checked out")
	}
	idx, err := vs.Swapchain.Acquire()
	if err != nil {
		return 0, fmt.Errorf("%w: view %d: %v", ErrAcquireFailed, vs.View, err)
	}
	vs.state = chainAcquired
	vs.ImageIndex = idx
	if err := vs.Swapchain.Wait(vs.WaitDur); err != nil {
		// acquired but not writable: hand it straight back so the
		// ring is not leaked
		vs.Release()
		return 0, err
	}
	vs.state = chainWaited
	return idx, nil
}

// Image returns the currently checked-out image.  Valid only between
// a successful Acquire and the matching Release.
func (vs *ViewSwapchain) Image() Image {
	return vs.Swapchain.Images()[vs.ImageIndex]
}

// Release returns the checked-out image to the compositor.  Releasing
// with no image checked out is a protocol violation.
func (vs *ViewSwapchain) Release() error {
	if vs.state == chainIdle {
		return vs.protocol("Release with no image checked out")
	}
	vs.state = chainIdle
	return vs.Swapchain.Release()
}

// Acquired returns whether an image is currently checked out.
func (vs *ViewSwapchain) Acquired() bool {
	return vs.state != chainIdle
}

// Destroy destroys the driver swapchain.
func (vs *ViewSwapchain) Destroy() {
	if vs.Swapchain == nil {
		return
	}
	grr.Log(vs.Swapchain.Destroy())
	vs.Swapchain = nil
	vs.state = chainIdle
}

func (vs *ViewSwapchain) protocol(msg string) error {
	err := fmt.Errorf("%w: view %d: %s", ErrProtocol, vs.View, msg)
	if Debug {
		IfPanic(err)
	}
	return grr.Log(err)
}
