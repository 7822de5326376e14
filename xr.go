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

// XR is an XR compositor client: it owns the negotiated instance, the
// session, the reference space, and the per-eye swapchain rings, and
// drives the event loop and frame cycle.  The runtime, platform
// graphics, and pixel renderer are injected; everything else is
// managed here.
//
// All methods must be called from the same goroutine, normally the
// main thread (the glfw Binder requires it).
type XR struct {
	Config   Config           `desc:"client configuration; set before Init (call Defaults first), or leave zero for all defaults"`
	Runtime  Runtime          `desc:"injected runtime driver"`
	Binder   Binder           `desc:"injected platform graphics and windowing"`
	Renderer Renderer         `desc:"injected eye image renderer"`
	Caps     *Caps            `desc:"negotiated capabilities, set by Init"`
	Sys      *SystemInfo      `desc:"resolved system and views, set by Init"`
	Session  Session          `desc:"driver session, set by Init"`
	Space    Space            `desc:"reference space poses are located in"`
	Chains   []*ViewSwapchain `desc:"per-eye swapchain rings"`
	State    SessionStates    `desc:"current session state, updated from runtime events"`
	Views    []View           `desc:"most recently located views, one per eye"`

	// Running means the session has been begun and not yet ended.
	Running bool

	// FrameActive gates the frame cycle: set while the session state
	// wants frames (Synchronized, Visible, Focused).
	FrameActive bool

	// Quit ends the Run loop at the top of its next iteration.
	Quit bool

	// Err is the first fatal error; Run returns it.
	Err error

	exitRequested bool
	frameCount    int64
}

// Init negotiates with the runtime and builds the full session stack:
// instance, system, native graphics, session, reference space, and
// per-eye swapchains.  On error everything already created is torn
// down.  After Init the client is waiting for the runtime to report
// the session Ready.
func (xr *XR) Init(rt Runtime, bind Binder, rend Renderer) error {
	xr.Runtime = rt
	xr.Binder = bind
	xr.Renderer = rend
	if xr.Config.AppName == "" {
		xr.Config.Defaults()
	}
	cfg := &xr.Config

	cp, err := Negotiate(rt, cfg)
	if err != nil {
		return err
	}
	xr.Caps = cp

	si, err := ResolveSystem(cp, cfg)
	if err != nil {
		xr.Shutdown()
		return err
	}
	xr.Sys = si
	if err := ResolveViews(cp, cfg, si); err != nil {
		xr.Shutdown()
		return err
	}

	// requirements must be queried before the session exists, and the
	// native context must exist to know its version
	vw := si.Views[0]
	gb, err := bind.Init(vw.RecommendedWidth, vw.RecommendedHeight)
	if err != nil {
		xr.Shutdown()
		return grr.Log(fmt.Errorf("%w: %v", ErrPlatformGraphics, err))
	}
	if err := CheckGraphicsRequirements(cp, si, gb.APIVersion); err != nil {
		xr.Shutdown()
		return err
	}

	ss, err := cp.Instance.NewSession(si.SystemID, gb)
	if err != nil {
		xr.Shutdown()
		return grr.Log(err)
	}
	xr.Session = ss

	sp, err := ss.NewSpace(cfg.SpaceType, IdentityPose())
	if err != nil {
		xr.Shutdown()
		return grr.Log(err)
	}
	xr.Space = sp

	chains, err := ConfigSwapchains(ss, si, cfg)
	if err != nil {
		xr.Shutdown()
		return err
	}
	xr.Chains = chains

	slog.Info("vxr: initialized", "views", si.NViews(), "state", xr.State)
	return nil
}

// Run is the client main loop: it pumps native window events, drains
// runtime events, and runs the frame cycle while the session state
// wants frames.  It returns after teardown completes, with the first
// fatal error if there was one.  Run calls [XR.Shutdown] itself.
func (xr *XR) Run() error {
	for !xr.Quit {
		if xr.Binder.PollEvents() {
			xr.RequestExit()
		}
		xr.PollEvents()
		if xr.Quit {
			break
		}
		if xr.FrameActive {
			xr.FrameCycle()
		} else {
			// idle: nothing to pace us, so don't spin
			time.Sleep(10 * time.Millisecond)
		}
	}
	xr.Shutdown()
	return xr.Err
}

// RequestExit asks the runtime to wind the session down gracefully.
// The runtime answers with Stopping and Exiting state events, which do
// the actual teardown.  Safe to call repeatedly.
func (xr *XR) RequestExit() {
	if xr.exitRequested {
		return
	}
	xr.exitRequested = true
	if xr.Session == nil {
		xr.Quit = true
		return
	}
	if err := xr.Session.RequestExit(); err != nil {
		// runtime can't even exit cleanly: stop on our own
		grr.Log(err)
		xr.Quit = true
	}
}

// PollEvents drains all pending runtime events, dispatching each.
func (xr *XR) PollEvents() {
	if xr.Caps == nil || xr.Caps.Instance == nil {
		return
	}
	for {
		ev := xr.Caps.Instance.PollEvent()
		if ev == nil {
			return
		}
		xr.HandleEvent(ev)
	}
}

// HandleEvent dispatches one runtime event.
func (xr *XR) HandleEvent(ev Event) {
	switch e := ev.(type) {
	case *StateChangeEvent:
		xr.HandleStateChange(e.State)
	case *InstanceLossEvent:
		slog.Error("vxr: instance loss pending", "lossTime", e.LossTime)
		if xr.Err == nil {
			xr.Err = ErrInstanceLoss
		}
		xr.FrameActive = false
		xr.Quit = true
	case *InteractionProfileEvent:
		slog.Info("vxr: interaction profile changed")
	default:
		slog.Debug("vxr: unhandled event", "event", fmt.Sprintf("%T", ev))
	}
}

// HandleStateChange applies a session state transition: it begins the
// session on Ready, gates the frame cycle for the synchronized states,
// ends the session on Stopping, and quits on Exiting or LossPending.
func (xr *XR) HandleStateChange(st SessionStates) {
	slog.Info("vxr: session state", "from", xr.State, "to", st)
	xr.State = st
	switch st {
	case SessionReady:
		if !xr.Running {
			if err := xr.Session.Begin(xr.Config.ViewConfig); err != nil {
				// a session that cannot begin can never render
				xr.Err = grr.Log(err)
				xr.Quit = true
				return
			}
			xr.Running = true
		}
		// frames must be pumped from Ready on: the runtime only reaches
		// Synchronized once the frame loop is running
		xr.FrameActive = true
	case SessionSynchronized, SessionVisible, SessionFocused:
		xr.FrameActive = true
	case SessionIdle:
		xr.FrameActive = false
	case SessionStopping:
		xr.FrameActive = false
		if xr.Running {
			grr.Log(xr.Session.End())
			xr.Running = false
		}
	case SessionExiting, SessionLossPending:
		xr.FrameActive = false
		if xr.Session != nil {
			grr.Log(xr.Session.Destroy())
			xr.Session = nil
			xr.Running = false
		}
		xr.Quit = true
	default:
		xr.FrameActive = false
	}
}

// Shutdown tears everything down in reverse creation order.  It is
// idempotent: each resource is destroyed at most once, and partial
// initialization is fine.
func (xr *XR) Shutdown() {
	if xr.Binder != nil {
		xr.Binder.Destroy()
		xr.Binder = nil
	}
	for _, vs := range xr.Chains {
		vs.Destroy()
	}
	xr.Chains = nil
	if xr.Space != nil {
		grr.Log(xr.Space.Destroy())
		xr.Space = nil
	}
	if xr.Session != nil {
		grr.Log(xr.Session.Destroy())
		xr.Session = nil
	}
	if xr.Caps != nil && xr.Caps.Instance != nil {
		grr.Log(xr.Caps.Instance.Destroy())
		xr.Caps.Instance = nil
	}
	xr.Running = false
	xr.FrameActive = false
	xr.Quit = true
}
