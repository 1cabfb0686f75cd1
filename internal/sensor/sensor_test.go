package sensor

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/glimpseframework/holoview/internal/orientation"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetachedFeedHoldsLastValue(t *testing.T) {
	var filter orientation.Filter
	feed := NewFeed(&filter)

	assert.False(t, feed.Deliver(Sample{X: 1}))
	assert.Zero(t, filter.Len())

	feed.Attach()
	require.True(t, feed.Deliver(Sample{X: 3, Y: 4}))
	held := filter.Vector()

	feed.Detach()
	assert.False(t, feed.Deliver(Sample{Z: 1}))
	assert.Equal(t, held, filter.Vector())
	assert.False(t, feed.Attached())
}

func TestFeedCountsRejectedSamples(t *testing.T) {
	var filter orientation.Filter
	feed := NewFeed(&filter)
	feed.Attach()

	assert.False(t, feed.Deliver(Sample{X: float32(math.NaN())}))
	assert.Equal(t, uint64(1), feed.Dropped())
}

func TestPumpDrainsUntilClosed(t *testing.T) {
	var filter orientation.Filter
	feed := NewFeed(&filter)
	feed.Attach()

	ch := make(chan Sample)
	done := make(chan error, 1)
	go func() { done <- Pump(t.Context(), ch, feed) }()

	for range 25 {
		ch <- Sample{Y: 9.8}
	}
	close(ch)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("pump did not return after close")
	}
	assert.Equal(t, orientation.WindowSize, filter.Len())
	assert.True(t, mgl32.Vec3{0, 1, 0}.ApproxEqualThreshold(filter.Vector(), 1e-6))
}

func TestPumpStopsOnCancel(t *testing.T) {
	var filter orientation.Filter
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := Pump(ctx, make(chan Sample), NewFeed(&filter))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFromCursor(t *testing.T) {
	centre := FromCursor(400, 300, 800, 600)
	assert.InDelta(t, 0, centre.X, 1e-6)
	assert.InDelta(t, 0, centre.Y, 1e-6)
	assert.InDelta(t, StandardGravity, centre.Z, 1e-4)

	topRight := FromCursor(800, 0, 800, 600)
	assert.InDelta(t, StandardGravity/2, topRight.X, 1e-4)
	assert.InDelta(t, StandardGravity/2, topRight.Y, 1e-4)

	outside := FromCursor(-100, 5000, 800, 600)
	assert.InDelta(t, -StandardGravity/2, outside.X, 1e-4)
	assert.InDelta(t, -StandardGravity/2, outside.Y, 1e-4)

	assert.Equal(t, Sample{Z: StandardGravity}, FromCursor(1, 1, 0, 0))
}
