// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vxr

//go:generate enumgen

// SessionStates are the runtime-driven session lifecycle states.
// The runtime announces every transition with a [StateChangeEvent];
// the client never sets the state directly.
type SessionStates int32 //enums:enum

const (
	// SessionUnknown is the zero state, before the runtime has
	// reported anything.
	SessionUnknown SessionStates = iota

	// SessionIdle means the session exists but the runtime has no
	// use for frames; the client waits for Ready or Exiting.
	SessionIdle

	// SessionReady means the runtime is ready for the client to
	// begin the session and start the frame loop.
	SessionReady

	// SessionSynchronized means the frame loop is synchronized with
	// the compositor, but nothing is visible yet.
	SessionSynchronized

	// SessionVisible means the session's content is visible, but it
	// does not have input focus.
	SessionVisible

	// SessionFocused means the session is visible and has input focus.
	SessionFocused

	// SessionStopping means the client must exit the frame loop and
	// end the session.
	SessionStopping

	// SessionExiting means the runtime wants the client to tear
	// everything down, with no prospect of restart.
	SessionExiting

	// SessionLossPending means the session will be lost; tear down
	// and, at best, retry with a new session later.
	SessionLossPending
)

// Rendering returns whether the frame loop should be running in this
// state: frames are wanted from Ready (the loop is what synchronizes a
// begun session) through Focused.
func (st SessionStates) Rendering() bool {
	switch st {
	case SessionReady, SessionSynchronized, SessionVisible, SessionFocused:
		return true
	}
	return false
}

// Event is an asynchronous notification from the runtime, returned by
// [Instance.PollEvent].  The concrete types are [StateChangeEvent],
// [InstanceLossEvent], and [InteractionProfileEvent].
type Event interface {

	// EvTime is the runtime timestamp of the event, in nanoseconds.
	EvTime() int64
}

// StateChangeEvent reports a session state transition.
type StateChangeEvent struct {

	// State is the new session state.
	State SessionStates

	// Time is the runtime time of the transition.
	Time int64
}

func (ev *StateChangeEvent) EvTime() int64 { return ev.Time }

// InstanceLossEvent reports that the entire instance will become
// unusable at LossTime.  This is not recoverable within the instance:
// the client shuts down.
type InstanceLossEvent struct {

	// LossTime is when the instance becomes unusable.
	LossTime int64
}

func (ev *InstanceLossEvent) EvTime() int64 { return ev.LossTime }

// InteractionProfileEvent reports that the active input interaction
// profile changed.  This client renders only, so it is logged and
// otherwise ignored.
type InteractionProfileEvent struct {

	// Time is the runtime time of the change.
	Time int64
}

func (ev *InteractionProfileEvent) EvTime() int64 { return ev.Time }
