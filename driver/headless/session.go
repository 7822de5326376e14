// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package headless

import (
	"errors"
	"fmt"
	"time"

	"goki.dev/mat32/v2"
	"goki.dev/vxr"
)

// framePeriod is the simulated display period: 90 Hz.
const framePeriod = int64(time.Second) / 90

// Session is the headless session.  It enforces the same call ordering
// a conforming runtime does, keeps counters for everything the frame
// protocol did, and has knobs to inject the failures a client must
// tolerate.
type Session struct {

	// ShouldRender is returned in every [vxr.FrameState]; set false to
	// simulate the compositor not wanting content.
	ShouldRender bool

	// BeginErr, if set, fails the next session Begin.
	BeginErr error

	// WaitFrameErr, if set, fails the next WaitFrame.
	WaitFrameErr error

	// LocateErr, if set, fails every LocateViews call.
	LocateErr error

	// LocateShort makes LocateViews return one view fewer than asked.
	LocateShort bool

	// InvalidPoses makes LocateViews report no validity flags.
	InvalidPoses bool

	// Counters for the frame protocol.
	WaitCount     int
	BeginFrames   int
	EndFrames     int
	EmptyFrames   int
	LayeredFrames int
	LocateCount   int

	// Swapchains are all rings created on this session, in order.
	Swapchains []*Swapchain

	in         *Instance
	begun      bool
	pendBegin  bool
	pendEnd    bool
	destroyed  bool
	clock      int64
	nextTarget vxr.RenderTarget
}

func (ss *Session) Begin(typ vxr.ViewConfigTypes) error {
	if ss.BeginErr != nil {
		err := ss.BeginErr
		ss.BeginErr = nil
		return err
	}
	if ss.begun {
		return errors.New("headless: session already begun")
	}
	if typ != vxr.Stereo {
		return fmt.Errorf("headless: view configuration %v not supported", typ)
	}
	ss.begun = true
	// frame loop synchronizes immediately and gains focus
	ss.in.PushState(vxr.SessionSynchronized)
	ss.in.PushState(vxr.SessionVisible)
	ss.in.PushState(vxr.SessionFocused)
	return nil
}

func (ss *Session) End() error {
	if !ss.begun {
		return errors.New("headless: session not begun")
	}
	ss.begun = false
	return nil
}

// Begun returns whether the session is currently begun.
func (ss *Session) Begun() bool {
	return ss.begun
}

func (ss *Session) RequestExit() error {
	if ss.destroyed {
		return errors.New("headless: session destroyed")
	}
	ss.in.PushState(vxr.SessionStopping)
	ss.in.PushState(vxr.SessionExiting)
	return nil
}

func (ss *Session) NewSpace(typ vxr.SpaceTypes, pose vxr.Pose) (vxr.Space, error) {
	return &Space{}, nil
}

func (ss *Session) SwapchainFormats() ([]int64, error) {
	return ss.in.rt.Formats, nil
}

func (ss *Session) NewSwapchain(cfg *vxr.SwapchainConfig) (vxr.Swapchain, error) {
	if !ss.hasFormat(cfg.Format) {
		return nil, fmt.Errorf("headless: swapchain format %#x not offered", cfg.Format)
	}
	sw := &Swapchain{Width: cfg.Width, Height: cfg.Height, Format: cfg.Format}
	sw.images = make([]vxr.Image, ss.in.rt.NImages)
	for i := range sw.images {
		if alloc := ss.in.rt.AllocTarget; alloc != nil {
			sw.images[i] = vxr.Image{Target: alloc(cfg.Width, cfg.Height)}
		} else {
			ss.nextTarget++
			sw.images[i] = vxr.Image{Target: ss.nextTarget}
		}
	}
	ss.Swapchains = append(ss.Swapchains, sw)
	return sw, nil
}

func (ss *Session) hasFormat(f int64) bool {
	for _, have := range ss.in.rt.Formats {
		if have == f {
			return true
		}
	}
	return false
}

func (ss *Session) WaitFrame() (vxr.FrameState, error) {
	if ss.WaitFrameErr != nil {
		err := ss.WaitFrameErr
		ss.WaitFrameErr = nil
		return vxr.FrameState{}, err
	}
	if ss.pendBegin {
		return vxr.FrameState{}, errors.New("headless: WaitFrame with frame not begun")
	}
	ss.WaitCount++
	ss.clock += framePeriod
	ss.pendBegin = true
	return vxr.FrameState{
		PredictedDisplayTime:   ss.clock + framePeriod,
		PredictedDisplayPeriod: framePeriod,
		ShouldRender:           ss.ShouldRender,
	}, nil
}

func (ss *Session) BeginFrame() error {
	if !ss.pendBegin {
		return errors.New("headless: BeginFrame without WaitFrame")
	}
	if ss.pendEnd {
		return errors.New("headless: BeginFrame with frame still open")
	}
	ss.pendBegin = false
	ss.pendEnd = true
	ss.BeginFrames++
	return nil
}

func (ss *Session) EndFrame(end *vxr.FrameEnd) error {
	if !ss.pendEnd {
		return errors.New("headless: EndFrame without BeginFrame")
	}
	for _, la := range end.Layers {
		for i := range la.Views {
			sw, ok := la.Views[i].Swapchain.(*Swapchain)
			if !ok || sw.acquired {
				return errors.New("headless: layer references an image still acquired")
			}
		}
	}
	ss.pendEnd = false
	ss.EndFrames++
	if len(end.Layers) == 0 {
		ss.EmptyFrames++
	} else {
		ss.LayeredFrames++
	}
	return nil
}

func (ss *Session) LocateViews(sp vxr.Space, displayTime int64, nviews int) ([]vxr.View, vxr.ViewStateFlags, error) {
	ss.LocateCount++
	if ss.LocateErr != nil {
		return nil, 0, ss.LocateErr
	}
	n := nviews
	if ss.LocateShort && n > 0 {
		n--
	}
	views := make([]vxr.View, n)
	for i := range views {
		// eyes straddle the head origin at a typical interpupillary offset
		x := float32(-0.032)
		if i == 1 {
			x = 0.032
		}
		views[i] = vxr.View{
			Pose: vxr.Pose{
				Orientation: mat32.NewQuat(0, 0, 0, 1),
				Position:    mat32.V3(x, 0, 0),
			},
			Fov: vxr.Fov{AngleLeft: -0.785, AngleRight: 0.785, AngleUp: 0.785, AngleDown: -0.785},
		}
	}
	var flags vxr.ViewStateFlags
	if !ss.InvalidPoses {
		flags.SetFlag(true, vxr.OrientationValid, vxr.PositionValid, vxr.OrientationTracked, vxr.PositionTracked)
	}
	return views, flags, nil
}

func (ss *Session) Destroy() error {
	ss.destroyed = true
	ss.begun = false
	return nil
}

// Destroyed returns whether the session has been destroyed.
func (ss *Session) Destroyed() bool {
	return ss.destroyed
}

// Space is a headless reference space.
type Space struct {
	destroyed bool
}

func (sp *Space) Destroy() error {
	sp.destroyed = true
	return nil
}

// Swapchain is a headless swapchain ring with full acquire / wait /
// release bookkeeping.
type Swapchain struct {

	// Width, Height, Format are the creation parameters.
	Width, Height int
	Format        int64

	// AcquireErr, if set, fails the next Acquire.
	AcquireErr error

	// WaitErr, if set, fails the next Wait.
	WaitErr error

	// Counters.
	Acquires int
	Releases int

	images    []vxr.Image
	acquired  bool
	next      int
	destroyed bool
}

func (sw *Swapchain) Images() []vxr.Image {
	return sw.images
}

func (sw *Swapchain) Acquire() (int, error) {
	if sw.destroyed {
		return 0, errors.New("headless: swapchain destroyed")
	}
	if sw.acquired {
		return 0, errors.New("headless: image already acquired")
	}
	if sw.AcquireErr != nil {
		err := sw.AcquireErr
		sw.AcquireErr = nil
		return 0, err
	}
	idx := sw.next
	sw.next = (sw.next + 1) % len(sw.images)
	sw.acquired = true
	sw.Acquires++
	return idx, nil
}

func (sw *Swapchain) Wait(timeout time.Duration) error {
	if !sw.acquired {
		return errors.New("headless: Wait without Acquire")
	}
	if sw.WaitErr != nil {
		err := sw.WaitErr
		sw.WaitErr = nil
		return err
	}
	return nil
}

func (sw *Swapchain) Release() error {
	if !sw.acquired {
		return errors.New("headless: Release without Acquire")
	}
	sw.acquired = false
	sw.Releases++
	return nil
}

func (sw *Swapchain) Destroy() error {
	sw.destroyed = true
	sw.acquired = false
	return nil
}

// Destroyed returns whether the swapchain has been destroyed.
func (sw *Swapchain) Destroyed() bool {
	return sw.destroyed
}
