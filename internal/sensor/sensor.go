// Package sensor delivers accelerometer samples to an orientation filter from
// whatever goroutine the platform uses for sensor callbacks.
package sensor

import (
	"context"
	"sync/atomic"

	"github.com/glimpseframework/holoview/internal/logging"
	"github.com/glimpseframework/holoview/internal/orientation"
)

// StandardGravity in m/s², the magnitude a resting accelerometer reports.
const StandardGravity = 9.80665

// Sample is one accelerometer reading. Timestamps are not used.
type Sample struct {
	X, Y, Z float32
}

// Feed forwards samples to a filter while attached. Detaching (on pause)
// leaves the filter holding its last output.
type Feed struct {
	filter   *orientation.Filter
	attached atomic.Bool
	dropped  atomic.Uint64
}

func NewFeed(filter *orientation.Filter) *Feed {
	return &Feed{filter: filter}
}

func (f *Feed) Attach() { f.attached.Store(true) }

func (f *Feed) Detach() { f.attached.Store(false) }

func (f *Feed) Attached() bool { return f.attached.Load() }

// Deliver hands one sample to the filter. It reports whether the sample was
// taken; detached feeds and non-finite samples are not.
func (f *Feed) Deliver(s Sample) bool {
	if !f.attached.Load() {
		return false
	}
	if !f.filter.Add(s.X, s.Y, s.Z) {
		f.dropped.Add(1)
		return false
	}
	return true
}

// Dropped counts samples rejected for non-finite components.
func (f *Feed) Dropped() uint64 { return f.dropped.Load() }

// Pump delivers samples from ch until ctx is done or ch is closed.
func Pump(ctx context.Context, ch <-chan Sample, feed *Feed) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case s, ok := <-ch:
			if !ok {
				logging.Logger().Debug("sensor stream closed")
				return nil
			}
			feed.Deliver(s)
		}
	}
}

// FromCursor turns a pointer position inside a width×height surface into the
// reading a device tilted toward that point would produce: the centre is flat
// (gravity on -Z is reported as +Z), the edges tilt up to 45 degrees.
func FromCursor(x, y float64, width, height int) Sample {
	if width <= 0 || height <= 0 {
		return Sample{Z: StandardGravity}
	}
	nx := clamp(2*x/float64(width)-1, -1, 1)
	ny := clamp(1-2*y/float64(height), -1, 1)
	return Sample{
		X: float32(nx * StandardGravity / 2),
		Y: float32(ny * StandardGravity / 2),
		Z: StandardGravity,
	}
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
