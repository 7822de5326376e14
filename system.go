// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vxr

import (
	"fmt"
	"log/slog"

	"goki.dev/grr"
)

// SystemInfo is the resolved system: the system id for the configured
// form factor, its properties, and the per-view render parameters for
// the configured view configuration.
type SystemInfo struct {
	SystemID SystemID                `desc:"resolved system id"`
	Props    SystemProperties        `desc:"system capabilities"`
	Views    []ViewConfigurationView `desc:"per-view render parameters, one per eye for stereo"`
}

// NViews returns the number of views (eyes) to render.
func (si *SystemInfo) NViews() int {
	return len(si.Views)
}

// ResolveSystem resolves the system for the configured form factor and
// its properties.  A runtime with no matching system attached (e.g. no
// headset plugged in) fails here.
func ResolveSystem(cp *Caps, cfg *Config) (*SystemInfo, error) {
	sys, err := cp.Instance.System(cfg.FormFactor)
	if err != nil {
		return nil, grr.Log(fmt.Errorf("%w: no %v system: %v", ErrMissingCapability, cfg.FormFactor, err))
	}
	si := &SystemInfo{SystemID: sys}
	props, err := cp.Instance.SystemProperties(sys)
	if err != nil {
		return nil, grr.Log(err)
	}
	si.Props = *props
	slog.Info("vxr: system", "name", props.Name, "vendor", props.VendorID,
		"orientationTracking", props.OrientationTracking, "positionTracking", props.PositionTracking,
		"maxSwapchain", fmt.Sprintf("%dx%d", props.MaxSwapchainWidth, props.MaxSwapchainHeight))
	return si, nil
}

// ResolveViews fills in the per-view render parameters for the
// configured view configuration, failing if the system does not
// support it or reports an unexpected view count.
func ResolveViews(cp *Caps, cfg *Config, si *SystemInfo) error {
	views, err := cp.Instance.ViewConfigurationViews(si.SystemID, cfg.ViewConfig)
	if err != nil {
		return grr.Log(fmt.Errorf("%w: view configuration %v: %v", ErrMissingCapability, cfg.ViewConfig, err))
	}
	if len(views) != cfg.ViewConfig.NViews() {
		return grr.Log(fmt.Errorf("%w: view configuration %v has %d views, need %d", ErrMissingCapability, cfg.ViewConfig, len(views), cfg.ViewConfig.NViews()))
	}
	si.Views = views
	for i, vw := range views {
		slog.Debug("vxr: view", "view", i, "recommended", fmt.Sprintf("%dx%d", vw.RecommendedWidth, vw.RecommendedHeight), "samples", vw.RecommendedSamples)
	}
	return nil
}

// CheckGraphicsRequirements queries the runtime's required native
// graphics API version range through the negotiated extension entry
// point, and verifies apiVersion falls inside it.  The query must be
// made before session creation.
func CheckGraphicsRequirements(cp *Caps, si *SystemInfo, apiVersion Version) error {
	gr, err := cp.Exts.GraphicsRequirements(si.SystemID)
	if err != nil {
		return grr.Log(err)
	}
	if apiVersion < gr.MinAPIVersion || apiVersion > gr.MaxAPIVersion {
		return grr.Log(fmt.Errorf("%w: have %v, runtime requires %v..%v", ErrGraphicsRequirements, apiVersion, gr.MinAPIVersion, gr.MaxAPIVersion))
	}
	return nil
}
