package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		from State
		e    event
		to   State
		ok   bool
	}{
		{StateUninitialized, eventSurfaceCreated, StateSurfaceReady, true},
		{StateUninitialized, eventSurfaceChanged, StateUninitialized, false},
		{StateUninitialized, eventDrawFrame, StateUninitialized, false},
		{StateUninitialized, eventSurfaceLost, StateUninitialized, true},
		{StateSurfaceReady, eventSurfaceChanged, StateSurfaceReady, true},
		{StateSurfaceReady, eventDrawFrame, StateRendering, true},
		{StateRendering, eventSurfaceChanged, StateRendering, true},
		{StateRendering, eventDrawFrame, StateRendering, true},
		{StateRendering, eventSurfaceCreated, StateSurfaceReady, true},
		{StateRendering, eventSurfaceLost, StateUninitialized, true},
	}
	for _, tc := range cases {
		to, err := next(tc.from, tc.e)
		assert.Equal(t, tc.to, to, "%s on %s", tc.e, tc.from)
		if tc.ok {
			assert.NoError(t, err, "%s on %s", tc.e, tc.from)
		} else {
			assert.ErrorIs(t, err, ErrSurfaceNotReady, "%s on %s", tc.e, tc.from)
		}
	}
}

func TestTableIsComplete(t *testing.T) {
	for s := range stateCount {
		for e := range eventCount {
			to := transitions[s][e]
			assert.True(t, to == noTransition || (to >= 0 && to < stateCount), "%s on %s", e, s)
		}
	}
}
