package renderer

import (
	"errors"
	"fmt"
)

// ErrSurfaceNotReady is returned by frame and resize calls made before the
// surface was created, or after it was lost. Such calls issue no GL commands.
var ErrSurfaceNotReady = errors.New("renderer: surface not created")

type State int

const (
	StateUninitialized State = iota
	StateSurfaceReady
	StateRendering
	stateCount

	noTransition State = -1
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateSurfaceReady:
		return "surface-ready"
	case StateRendering:
		return "rendering"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type event int

const (
	eventSurfaceCreated event = iota
	eventSurfaceChanged
	eventDrawFrame
	eventSurfaceLost
	eventCount
)

func (e event) String() string {
	switch e {
	case eventSurfaceCreated:
		return "surface-created"
	case eventSurfaceChanged:
		return "surface-changed"
	case eventDrawFrame:
		return "draw-frame"
	case eventSurfaceLost:
		return "surface-lost"
	}
	return fmt.Sprintf("event(%d)", int(e))
}

// Creating a surface is accepted in every state; from a built state it means
// the host recreated the context and everything is rebuilt.
var transitions = [stateCount][eventCount]State{
	StateUninitialized: {
		eventSurfaceCreated: StateSurfaceReady,
		eventSurfaceChanged: noTransition,
		eventDrawFrame:      noTransition,
		eventSurfaceLost:    StateUninitialized,
	},
	StateSurfaceReady: {
		eventSurfaceCreated: StateSurfaceReady,
		eventSurfaceChanged: StateSurfaceReady,
		eventDrawFrame:      StateRendering,
		eventSurfaceLost:    StateUninitialized,
	},
	StateRendering: {
		eventSurfaceCreated: StateSurfaceReady,
		eventSurfaceChanged: StateRendering,
		eventDrawFrame:      StateRendering,
		eventSurfaceLost:    StateUninitialized,
	},
}

func next(from State, e event) (State, error) {
	to := transitions[from][e]
	if to == noTransition {
		return from, fmt.Errorf("%w: %s while %s", ErrSurfaceNotReady, e, from)
	}
	return to, nil
}
