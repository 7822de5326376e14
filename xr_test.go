// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vxr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"goki.dev/vxr"
	"goki.dev/vxr/driver/headless"
)

func grayRenderer(view *vxr.View, cfg *vxr.Config, width, height int) (*vxr.PixelBuffer, error) {
	pb := vxr.NewPixelBuffer(width, height)
	for i := range pb.Pix {
		pb.Pix[i] = 128
	}
	return pb, nil
}

func newTestRuntimeBinder() (*headless.Runtime, *headless.Binder) {
	return headless.New(), headless.NewBinder()
}

// newTestXR initializes a client against the headless driver and
// drains the startup events, leaving the session begun and focused.
func newTestXR(t *testing.T) (*vxr.XR, *headless.Runtime, *headless.Binder) {
	t.Helper()
	rt := headless.New()
	bd := headless.NewBinder()
	xr := &vxr.XR{}
	err := xr.Init(rt, bd, vxr.RendererFunc(grayRenderer))
	assert.NoError(t, err)
	xr.PollEvents()
	return xr, rt, bd
}

func TestInitToFocused(t *testing.T) {
	xr, rt, _ := newTestXR(t)
	assert.Equal(t, vxr.SessionFocused, xr.State)
	assert.True(t, xr.Running)
	assert.True(t, xr.FrameActive)
	assert.True(t, rt.Instance().Session.Begun())
	// views are only located inside the frame cycle, never during init
	assert.Equal(t, 0, rt.Instance().Session.LocateCount)
	assert.Equal(t, 2, len(xr.Chains))
	for _, vs := range xr.Chains {
		assert.Equal(t, 1024, vs.Width)
		assert.Equal(t, 1024, vs.Height)
		assert.Equal(t, 3, vs.NImages)
	}
	xr.Shutdown()
}

func TestReadyBeginsOnlyOnce(t *testing.T) {
	xr, rt, _ := newTestXR(t)
	// a second Ready while running must not begin again
	rt.Instance().PushState(vxr.SessionReady)
	xr.PollEvents()
	assert.NoError(t, xr.Err)
	assert.True(t, xr.Running)
	xr.Shutdown()
}

func TestStoppingEndsSession(t *testing.T) {
	xr, rt, _ := newTestXR(t)
	inst := rt.Instance()
	inst.PushState(vxr.SessionStopping)
	xr.PollEvents()
	assert.False(t, xr.Running)
	assert.False(t, xr.FrameActive)
	assert.False(t, inst.Session.Begun())
	assert.False(t, xr.Quit)

	// the session can be begun again on a later Ready
	inst.PushState(vxr.SessionReady)
	xr.PollEvents()
	assert.True(t, xr.Running)
	assert.True(t, inst.Session.Begun())
	xr.Shutdown()
}

func TestUnknownGatesFrames(t *testing.T) {
	xr, rt, _ := newTestXR(t)
	assert.True(t, xr.FrameActive)
	rt.Instance().PushState(vxr.SessionUnknown)
	xr.PollEvents()
	assert.False(t, xr.FrameActive)
	assert.True(t, xr.Running)
	xr.Shutdown()
}

func TestIdleGatesFrames(t *testing.T) {
	xr, rt, _ := newTestXR(t)
	rt.Instance().PushState(vxr.SessionIdle)
	xr.PollEvents()
	assert.False(t, xr.FrameActive)
	assert.True(t, xr.Running)
	xr.Shutdown()
}

func TestBeginFailureIsFatal(t *testing.T) {
	rt := headless.New()
	xr := &vxr.XR{}
	err := xr.Init(rt, headless.NewBinder(), vxr.RendererFunc(grayRenderer))
	assert.NoError(t, err)
	failure := errors.New("begin refused")
	rt.Instance().Session.BeginErr = failure
	xr.PollEvents()
	assert.ErrorIs(t, xr.Err, failure)
	assert.True(t, xr.Quit)
	xr.Shutdown()
}

func TestRequestExitRunsDown(t *testing.T) {
	xr, rt, bd := newTestXR(t)
	inst := rt.Instance()
	ss := inst.Session
	xr.RequestExit()
	err := xr.Run()
	assert.NoError(t, err)
	assert.True(t, xr.Quit)
	assert.False(t, ss.Begun())
	assert.True(t, ss.Destroyed())
	assert.True(t, inst.Destroyed())
	assert.True(t, bd.Destroyed())
	// every begun frame was ended
	assert.Equal(t, ss.BeginFrames, ss.EndFrames)
}

func TestWindowCloseRequestsExit(t *testing.T) {
	xr, rt, bd := newTestXR(t)
	bd.Exit = true
	err := xr.Run()
	assert.NoError(t, err)
	assert.True(t, rt.Instance().Session.Destroyed())
}

func TestRequestExitWithoutSession(t *testing.T) {
	xr := &vxr.XR{}
	xr.RequestExit()
	assert.True(t, xr.Quit)
}

func TestInstanceLossTearsDown(t *testing.T) {
	xr, rt, bd := newTestXR(t)
	rt.Instance().PushEvent(&vxr.InstanceLossEvent{LossTime: 42})
	err := xr.Run()
	assert.ErrorIs(t, err, vxr.ErrInstanceLoss)
	assert.True(t, rt.Instance().Destroyed())
	assert.True(t, bd.Destroyed())
	ss := rt.Instance().Session
	assert.Equal(t, ss.BeginFrames, ss.EndFrames)
}

func TestLossPendingTearsDown(t *testing.T) {
	xr, rt, _ := newTestXR(t)
	inst := rt.Instance()
	ss := inst.Session

	// an image checked out mid-frame must not wedge teardown
	_, err := xr.Chains[0].Acquire()
	assert.NoError(t, err)

	inst.PushState(vxr.SessionLossPending)
	xr.PollEvents()
	assert.False(t, xr.FrameActive)
	assert.True(t, xr.Quit)
	assert.True(t, ss.Destroyed())

	xr.Shutdown()
	for _, sw := range ss.Swapchains {
		assert.True(t, sw.Destroyed())
	}
	assert.True(t, inst.Destroyed())
	assert.NoError(t, xr.Err)
}

func TestShutdownIdempotent(t *testing.T) {
	xr, rt, _ := newTestXR(t)
	xr.Shutdown()
	xr.Shutdown()
	assert.True(t, rt.Instance().Destroyed())
	assert.Nil(t, xr.Session)
	assert.Nil(t, xr.Chains)
}

func TestInitFailsWithoutSystem(t *testing.T) {
	rt := headless.New()
	rt.HasSystem = false
	xr := &vxr.XR{}
	err := xr.Init(rt, headless.NewBinder(), vxr.RendererFunc(grayRenderer))
	assert.ErrorIs(t, err, vxr.ErrMissingCapability)
}

func TestInitFailsWithoutExtension(t *testing.T) {
	rt := headless.New()
	rt.Exts = nil
	xr := &vxr.XR{}
	err := xr.Init(rt, headless.NewBinder(), vxr.RendererFunc(grayRenderer))
	assert.ErrorIs(t, err, vxr.ErrMissingCapability)
}

func TestInitFailsOnPlatformGraphics(t *testing.T) {
	rt := headless.New()
	bd := headless.NewBinder()
	bd.InitErr = errors.New("no display")
	xr := &vxr.XR{}
	err := xr.Init(rt, bd, vxr.RendererFunc(grayRenderer))
	assert.ErrorIs(t, err, vxr.ErrPlatformGraphics)
	assert.True(t, rt.Instance().Destroyed())
}

func TestInitFailsOnGraphicsVersion(t *testing.T) {
	rt := headless.New()
	bd := headless.NewBinder()
	bd.GLVersion = vxr.MakeVersion(2, 1, 0)
	xr := &vxr.XR{}
	err := xr.Init(rt, bd, vxr.RendererFunc(grayRenderer))
	assert.ErrorIs(t, err, vxr.ErrGraphicsRequirements)
	// a failed init must still release the instance
	assert.True(t, rt.Instance().Destroyed())
}
