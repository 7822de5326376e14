// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package headless

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"goki.dev/vxr"
)

func newSession(t *testing.T) (*Instance, *Session) {
	t.Helper()
	rt := New()
	inst, err := rt.NewInstance(&vxr.AppInfo{Name: "test"}, []string{vxr.GraphicsExtension})
	assert.NoError(t, err)
	ss, err := inst.NewSession(1, &vxr.GraphicsBinding{})
	assert.NoError(t, err)
	return inst.(*Instance), ss.(*Session)
}

func TestFrameOrderEnforced(t *testing.T) {
	_, ss := newSession(t)
	assert.Error(t, ss.BeginFrame())

	_, err := ss.WaitFrame()
	assert.NoError(t, err)
	// a waited frame must be begun before the next wait
	_, err = ss.WaitFrame()
	assert.Error(t, err)

	assert.NoError(t, ss.BeginFrame())
	assert.Error(t, ss.BeginFrame())
	assert.NoError(t, ss.EndFrame(&vxr.FrameEnd{}))
	assert.Error(t, ss.EndFrame(&vxr.FrameEnd{}))
}

func TestPredictedTimesIncrease(t *testing.T) {
	_, ss := newSession(t)
	fs1, err := ss.WaitFrame()
	assert.NoError(t, err)
	assert.NoError(t, ss.BeginFrame())
	assert.NoError(t, ss.EndFrame(&vxr.FrameEnd{}))
	fs2, err := ss.WaitFrame()
	assert.NoError(t, err)
	assert.Greater(t, fs2.PredictedDisplayTime, fs1.PredictedDisplayTime)
	assert.Equal(t, fs1.PredictedDisplayPeriod, fs2.PredictedDisplayPeriod)
}

func TestSwapchainOrderEnforced(t *testing.T) {
	_, ss := newSession(t)
	sw, err := ss.NewSwapchain(&vxr.SwapchainConfig{Format: 0x8C43, Width: 64, Height: 64, Samples: 1, ArraySize: 1, MipCount: 1})
	assert.NoError(t, err)

	hsw := sw.(*Swapchain)
	assert.Error(t, hsw.Release())
	assert.Error(t, hsw.Wait(0))

	idx, err := hsw.Acquire()
	assert.NoError(t, err)
	assert.Equal(t, 0, idx)
	_, err = hsw.Acquire()
	assert.Error(t, err)
	assert.NoError(t, hsw.Wait(0))
	assert.NoError(t, hsw.Release())
}

func TestSessionEvents(t *testing.T) {
	inst, ss := newSession(t)
	// fresh session walks Idle then Ready
	ev := inst.PollEvent()
	sc, ok := ev.(*vxr.StateChangeEvent)
	assert.True(t, ok)
	assert.Equal(t, vxr.SessionIdle, sc.State)
	sc = inst.PollEvent().(*vxr.StateChangeEvent)
	assert.Equal(t, vxr.SessionReady, sc.State)
	assert.Nil(t, inst.PollEvent())

	assert.NoError(t, ss.Begin(vxr.Stereo))
	states := []vxr.SessionStates{}
	for ev := inst.PollEvent(); ev != nil; ev = inst.PollEvent() {
		states = append(states, ev.(*vxr.StateChangeEvent).State)
	}
	assert.Equal(t, []vxr.SessionStates{vxr.SessionSynchronized, vxr.SessionVisible, vxr.SessionFocused}, states)

	assert.NoError(t, ss.RequestExit())
	states = states[:0]
	for ev := inst.PollEvent(); ev != nil; ev = inst.PollEvent() {
		states = append(states, ev.(*vxr.StateChangeEvent).State)
	}
	assert.Equal(t, []vxr.SessionStates{vxr.SessionStopping, vxr.SessionExiting}, states)
}

func TestBinderUpload(t *testing.T) {
	bd := NewBinder()
	_, err := bd.Init(64, 64)
	assert.NoError(t, err)

	pb := vxr.NewPixelBuffer(8, 8)
	assert.NoError(t, bd.Upload(vxr.RenderTarget(7), pb))
	assert.Equal(t, pb, bd.ImageFor(vxr.RenderTarget(7)))

	bad := &vxr.PixelBuffer{Width: 8, Height: 8, Pix: make([]byte, 3)}
	assert.Error(t, bd.Upload(vxr.RenderTarget(7), bad))
}
