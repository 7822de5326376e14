// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vxr

import (
	"fmt"
	"log/slog"

	"goki.dev/grr"
	"goki.dev/ordmap"
)

// GraphicsExtension is the runtime extension required to bind the
// native OpenGL graphics context to a session.
const GraphicsExtension = "XR_KHR_opengl_enable"

// Caps is the negotiated capability set: the instance, the extensions
// it was created with, and the extension entry points resolved from it.
// Everything downstream of negotiation goes through Caps.
type Caps struct {
	Instance   Instance                   `desc:"the created instance"`
	Props      InstanceProperties         `desc:"runtime name and version, for diagnostics"`
	Extensions ordmap.Map[string, uint32] `desc:"extensions enabled on the instance, name to version"`
	Exts       Exts                       `desc:"resolved extension entry points"`
}

// HasExtension returns whether the named extension was enabled on the
// instance.
func (cp *Caps) HasExtension(name string) bool {
	_, has := cp.Extensions.ValByKeyTry(name)
	return has
}

// Negotiate connects to the runtime: it verifies that the graphics
// extension is available, creates an instance enabling exactly that
// extension, and resolves the extension entry points.  The runtime
// missing the extension, or advertising it but failing to resolve its
// entry point, is a hard failure.
func Negotiate(rt Runtime, cfg *Config) (*Caps, error) {
	if lays, err := rt.Layers(); err == nil {
		for _, la := range lays {
			slog.Debug("vxr: runtime layer", "name", la.Name, "spec", la.SpecVersion, "desc", la.Description)
		}
	}
	exts, err := rt.Extensions()
	if err != nil {
		return nil, grr.Log(err)
	}
	cp := &Caps{}
	var gext *ExtensionProperties
	for i := range exts {
		ex := &exts[i]
		slog.Debug("vxr: runtime extension", "name", ex.Name, "version", ex.Version)
		if ex.Name == GraphicsExtension {
			gext = ex
		}
	}
	if gext == nil {
		return nil, grr.Log(fmt.Errorf("%w: extension %s", ErrMissingCapability, GraphicsExtension))
	}
	inst, err := rt.NewInstance(&AppInfo{Name: cfg.AppName, Version: 1}, []string{GraphicsExtension})
	if err != nil {
		return nil, grr.Log(err)
	}
	cp.Instance = inst
	cp.Extensions.Add(GraphicsExtension, gext.Version)

	if props, err := inst.Properties(); err == nil {
		cp.Props = *props
		slog.Info("vxr: runtime", "name", props.RuntimeName, "version", props.RuntimeVersion)
	}

	fn, err := inst.ProcAddr("xrGetOpenGLGraphicsRequirementsKHR")
	if err != nil {
		inst.Destroy()
		return nil, grr.Log(fmt.Errorf("%w: %v", ErrExtensionLoad, err))
	}
	gr, ok := fn.(GraphicsRequirementsFunc)
	if !ok || gr == nil {
		inst.Destroy()
		return nil, grr.Log(fmt.Errorf("%w: xrGetOpenGLGraphicsRequirementsKHR has wrong type", ErrExtensionLoad))
	}
	cp.Exts.GraphicsRequirements = gr
	return cp, nil
}
