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

func TestNegotiate(t *testing.T) {
	rt := headless.New()
	cfg := &vxr.Config{}
	cfg.Defaults()
	cp, err := vxr.Negotiate(rt, cfg)
	assert.NoError(t, err)
	assert.NotNil(t, cp.Instance)
	assert.True(t, cp.HasExtension(vxr.GraphicsExtension))
	assert.NotNil(t, cp.Exts.GraphicsRequirements)
	assert.Equal(t, "vxr headless", cp.Props.RuntimeName)

	gr, err := cp.Exts.GraphicsRequirements(1)
	assert.NoError(t, err)
	assert.Equal(t, vxr.MakeVersion(3, 3, 0), gr.MinAPIVersion)
	assert.Equal(t, vxr.MakeVersion(4, 6, 0), gr.MaxAPIVersion)
}

func TestNegotiateMissingExtension(t *testing.T) {
	rt := headless.New()
	rt.Exts = nil
	cfg := &vxr.Config{}
	cfg.Defaults()
	_, err := vxr.Negotiate(rt, cfg)
	assert.ErrorIs(t, err, vxr.ErrMissingCapability)
}

func TestResolveSystem(t *testing.T) {
	rt := headless.New()
	cfg := &vxr.Config{}
	cfg.Defaults()
	cp, err := vxr.Negotiate(rt, cfg)
	assert.NoError(t, err)

	si, err := vxr.ResolveSystem(cp, cfg)
	assert.NoError(t, err)
	assert.Equal(t, vxr.SystemID(1), si.SystemID)
	assert.True(t, si.Props.OrientationTracking)

	assert.NoError(t, vxr.ResolveViews(cp, cfg, si))
	assert.Equal(t, 2, si.NViews())
	assert.Equal(t, 1024, si.Views[0].RecommendedWidth)
}

func TestResolveSystemMissing(t *testing.T) {
	rt := headless.New()
	rt.HasSystem = false
	cfg := &vxr.Config{}
	cfg.Defaults()
	cp, err := vxr.Negotiate(rt, cfg)
	assert.NoError(t, err)
	_, err = vxr.ResolveSystem(cp, cfg)
	assert.ErrorIs(t, err, vxr.ErrMissingCapability)
}

func TestResolveViewsUnsupported(t *testing.T) {
	rt := headless.New()
	cfg := &vxr.Config{}
	cfg.Defaults()
	cfg.ViewConfig = vxr.Mono
	cp, err := vxr.Negotiate(rt, cfg)
	assert.NoError(t, err)
	si, err := vxr.ResolveSystem(cp, cfg)
	assert.NoError(t, err)
	err = vxr.ResolveViews(cp, cfg, si)
	assert.ErrorIs(t, err, vxr.ErrMissingCapability)
}

func TestCheckGraphicsRequirements(t *testing.T) {
	rt := headless.New()
	cfg := &vxr.Config{}
	cfg.Defaults()
	cp, err := vxr.Negotiate(rt, cfg)
	assert.NoError(t, err)
	si, err := vxr.ResolveSystem(cp, cfg)
	assert.NoError(t, err)

	assert.NoError(t, vxr.CheckGraphicsRequirements(cp, si, vxr.MakeVersion(4, 6, 0)))
	assert.NoError(t, vxr.CheckGraphicsRequirements(cp, si, vxr.MakeVersion(3, 3, 0)))
	err = vxr.CheckGraphicsRequirements(cp, si, vxr.MakeVersion(2, 1, 0))
	assert.ErrorIs(t, err, vxr.ErrGraphicsRequirements)
	err = vxr.CheckGraphicsRequirements(cp, si, vxr.MakeVersion(5, 0, 0))
	assert.ErrorIs(t, err, vxr.ErrGraphicsRequirements)
}
