// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vxr

import (
	"goki.dev/grows/jsons"
	"goki.dev/grr"
)

// sRGBA8 is the conventional 8-bit sRGB + alpha swapchain format code,
// preferred by default so color reaches the compositor gamma-correct.
const sRGBA8 int64 = 0x8C43 // GL_SRGB8_ALPHA8

// Config has the user-settable parameters of an XR client, with
// sensible defaults from [Config.Defaults].  Zero values are replaced
// with defaults during [XR.Init].
type Config struct {
	AppName       string          `desc:"application name reported to the runtime"`
	FormFactor    FormFactors     `desc:"device form factor to resolve -- default is HeadMountedDisplay"`
	ViewConfig    ViewConfigTypes `desc:"view configuration -- default is Stereo"`
	SpaceType     SpaceTypes      `desc:"reference space the client renders in -- default is ViewSpace, locked to the head"`
	Format        int64           `desc:"preferred swapchain image format -- default is 8-bit sRGB+alpha; falls back to the runtime's first offered format if unavailable"`
	Near          float32         `desc:"near clip plane distance in meters for eye projections"`
	Far           float32         `desc:"far clip plane distance in meters for eye projections"`
	FrameWait     int             `desc:"per-image wait budget in milliseconds for swapchain image availability"`
	MirrorEnabled bool            `desc:"render the companion window mirror of the eye images"`
}

// Defaults sets default configuration values.
func (cf *Config) Defaults() {
	cf.AppName = "vxr"
	cf.FormFactor = HeadMountedDisplay
	cf.ViewConfig = Stereo
	cf.SpaceType = ViewSpace
	cf.Format = sRGBA8
	cf.Near = 0.05
	cf.Far = 100
	cf.FrameWait = 100
	cf.MirrorEnabled = true
}

// OpenJSON loads the config from a JSON file.
func (cf *Config) OpenJSON(filename string) error {
	return grr.Log(jsons.Open(cf, filename))
}

// SaveJSON saves the config to a JSON file.
func (cf *Config) SaveJSON(filename string) error {
	return grr.Log(jsons.Save(cf, filename))
}
