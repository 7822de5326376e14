// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vxr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"goki.dev/vxr"
	"goki.dev/vxr/driver/headless"
)

// newTestSession builds a bare session and resolved system to test the
// swapchain layer without a full client.
func newTestSession(t *testing.T) (vxr.Session, *vxr.SystemInfo, *vxr.Config) {
	t.Helper()
	rt := headless.New()
	inst, err := rt.NewInstance(&vxr.AppInfo{Name: "test"}, []string{vxr.GraphicsExtension})
	assert.NoError(t, err)
	ss, err := inst.NewSession(1, &vxr.GraphicsBinding{})
	assert.NoError(t, err)
	si := &vxr.SystemInfo{SystemID: 1, Views: rt.Views}
	cfg := &vxr.Config{}
	cfg.Defaults()
	return ss, si, cfg
}

func TestSelectFormat(t *testing.T) {
	f, err := vxr.SelectFormat([]int64{0x8058, 0x8C43}, 0x8C43)
	assert.NoError(t, err)
	assert.Equal(t, int64(0x8C43), f)

	// preferred missing: first offered wins
	f, err = vxr.SelectFormat([]int64{0x8058, 0x805B}, 0x8C43)
	assert.NoError(t, err)
	assert.Equal(t, int64(0x8058), f)

	_, err = vxr.SelectFormat(nil, 0x8C43)
	assert.ErrorIs(t, err, vxr.ErrNoSwapchainFormat)
}

func TestConfigSwapchains(t *testing.T) {
	ss, si, cfg := newTestSession(t)
	chains, err := vxr.ConfigSwapchains(ss, si, cfg)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(chains))
	for vi, vs := range chains {
		assert.Equal(t, vi, vs.View)
		assert.Equal(t, si.Views[vi].RecommendedWidth, vs.Width)
		assert.Equal(t, si.Views[vi].RecommendedHeight, vs.Height)
		assert.Equal(t, int64(0x8C43), vs.Format)
		assert.Equal(t, 3, vs.NImages)
	}
}

func TestAcquireReleaseCycle(t *testing.T) {
	ss, si, cfg := newTestSession(t)
	chains, err := vxr.ConfigSwapchains(ss, si, cfg)
	assert.NoError(t, err)
	vs := chains[0]

	// ring indices advance in order
	for i := 0; i < vs.NImages+1; i++ {
		idx, err := vs.Acquire()
		assert.NoError(t, err)
		assert.Equal(t, i%vs.NImages, idx)
		assert.True(t, vs.Acquired())
		assert.NotZero(t, vs.Image().Target)
		assert.NoError(t, vs.Release())
		assert.False(t, vs.Acquired())
	}
}

func TestAcquireWhileCheckedOut(t *testing.T) {
	ss, si, cfg := newTestSession(t)
	chains, err := vxr.ConfigSwapchains(ss, si, cfg)
	assert.NoError(t, err)
	vs := chains[0]

	_, err = vs.Acquire()
	assert.NoError(t, err)
	_, err = vs.Acquire()
	assert.ErrorIs(t, err, vxr.ErrProtocol)
	assert.NoError(t, vs.Release())
}

func TestAcquireFailure(t *testing.T) {
	ss, si, cfg := newTestSession(t)
	chains, err := vxr.ConfigSwapchains(ss, si, cfg)
	assert.NoError(t, err)
	hs := ss.(*headless.Session)
	hs.Swapchains[0].AcquireErr = assert.AnError

	_, err = chains[0].Acquire()
	assert.ErrorIs(t, err, vxr.ErrAcquireFailed)
	assert.False(t, chains[0].Acquired())
}

func TestReleaseWithoutAcquire(t *testing.T) {
	ss, si, cfg := newTestSession(t)
	chains, err := vxr.ConfigSwapchains(ss, si, cfg)
	assert.NoError(t, err)
	err = chains[0].Release()
	assert.ErrorIs(t, err, vxr.ErrProtocol)
}

func TestFormatFallback(t *testing.T) {
	rt := headless.New()
	rt.Formats = []int64{0x8058} // linear only
	inst, err := rt.NewInstance(&vxr.AppInfo{Name: "test"}, []string{vxr.GraphicsExtension})
	assert.NoError(t, err)
	ss, err := inst.NewSession(1, &vxr.GraphicsBinding{})
	assert.NoError(t, err)
	si := &vxr.SystemInfo{SystemID: 1, Views: rt.Views}
	cfg := &vxr.Config{}
	cfg.Defaults()

	chains, err := vxr.ConfigSwapchains(ss, si, cfg)
	assert.NoError(t, err)
	assert.Equal(t, int64(0x8058), chains[0].Format)
}

func TestNoFormats(t *testing.T) {
	rt := headless.New()
	rt.Formats = nil
	inst, err := rt.NewInstance(&vxr.AppInfo{Name: "test"}, []string{vxr.GraphicsExtension})
	assert.NoError(t, err)
	ss, err := inst.NewSession(1, &vxr.GraphicsBinding{})
	assert.NoError(t, err)
	si := &vxr.SystemInfo{SystemID: 1, Views: rt.Views}
	cfg := &vxr.Config{}
	cfg.Defaults()

	_, err = vxr.ConfigSwapchains(ss, si, cfg)
	assert.ErrorIs(t, err, vxr.ErrNoSwapchainFormat)
}
