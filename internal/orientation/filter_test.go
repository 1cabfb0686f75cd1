package orientation

import (
	"math"
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-5

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, eps), "want %v, got %v", want, got)
}

func TestSingleSample(t *testing.T) {
	var f Filter
	require.True(t, f.Add(3, 4, 0))
	assertVec(t, mgl32.Vec3{0.6, 0.8, 0}, f.Vector())
	assert.Equal(t, 1, f.Len())
}

func TestOutputIsUnitLength(t *testing.T) {
	var f Filter
	samples := []mgl32.Vec3{
		{0.1, 9.7, 0.3}, {-2, 9.5, 1.1}, {0.4, 9.9, -0.7}, {5, 0, 8},
		{-0.3, 0.2, 9.81}, {1e-3, 2e-3, -4e-3}, {120, -80, 33},
	}
	for i := range 3 * WindowSize {
		s := samples[i%len(samples)]
		f.Add(s[0], s[1], s[2])
		if f.Sum().Len() > 0 {
			assert.InDelta(t, 1.0, f.Vector().Len(), eps)
		}
	}
}

func TestExtremeMagnitudes(t *testing.T) {
	var big Filter
	require.True(t, big.Add(3e19, 4e19, 0))
	assertVec(t, mgl32.Vec3{0.6, 0.8, 0}, big.Vector())
	assert.False(t, big.Holding())

	var tiny Filter
	require.True(t, tiny.Add(3e-30, 4e-30, 0))
	assertVec(t, mgl32.Vec3{0.6, 0.8, 0}, tiny.Vector())
	assert.False(t, tiny.Holding())
}

func TestOverflowedSumHoldsPreviousVector(t *testing.T) {
	var f Filter
	require.True(t, f.Add(3e38, 0, 0))
	assertVec(t, mgl32.Vec3{1, 0, 0}, f.Vector())

	require.True(t, f.Add(3e38, 0, 0))
	assert.True(t, f.Holding())
	assertVec(t, mgl32.Vec3{1, 0, 0}, f.Vector())
}

func TestOldestSampleIsEvicted(t *testing.T) {
	var f Filter
	for range WindowSize {
		f.Add(1, 0, 0)
	}
	assertVec(t, mgl32.Vec3{1, 0, 0}, f.Vector())

	f.Add(0, 1, 0)
	assert.Equal(t, WindowSize, f.Len())
	assertVec(t, mgl32.Vec3{19, 1, 0}, f.Sum())
	assertVec(t, mgl32.Vec3{19, 1, 0}.Normalize(), f.Vector())

	// After a full window of the new value nothing of the old one remains.
	for range WindowSize - 1 {
		f.Add(0, 1, 0)
	}
	assertVec(t, mgl32.Vec3{0, 1, 0}, f.Vector())
}

func TestZeroWindowReturnsZeroVector(t *testing.T) {
	var f Filter
	assert.Equal(t, mgl32.Vec3{}, f.Vector())

	for range WindowSize {
		f.Add(0, 0, 0)
	}
	v := f.Vector()
	for _, c := range v {
		assert.False(t, math.IsNaN(float64(c)))
		assert.False(t, math.IsInf(float64(c), 0))
	}
	assert.Equal(t, mgl32.Vec3{}, v)
	assert.True(t, f.Holding())
}

func TestZeroSumHoldsPreviousVector(t *testing.T) {
	var f Filter
	f.Add(0, 0, 9.81)
	want := f.Vector()

	// Cancels the window to exactly zero, like a short free fall.
	f.Add(0, 0, -9.81)
	assert.True(t, f.Holding())
	assert.Equal(t, want, f.Vector())

	f.Add(1, 0, 0)
	assert.False(t, f.Holding())
	assertVec(t, mgl32.Vec3{1, 0, 0}, f.Vector())
}

func TestNonFiniteSamplesDropped(t *testing.T) {
	var f Filter
	f.Add(0, 1, 0)
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	assert.False(t, f.Add(nan, 0, 0))
	assert.False(t, f.Add(0, inf, 0))
	assert.Equal(t, 1, f.Len())
	assertVec(t, mgl32.Vec3{0, 1, 0}, f.Vector())
}

func TestReset(t *testing.T) {
	var f Filter
	f.Add(1, 2, 3)
	f.Reset()
	assert.Zero(t, f.Len())
	assert.Equal(t, mgl32.Vec3{}, f.Vector())
	f.Add(3, 4, 0)
	assertVec(t, mgl32.Vec3{0.6, 0.8, 0}, f.Vector())
}

func TestConcurrentReadersSeeWholeVectors(t *testing.T) {
	var f Filter
	// Every sample is a multiple of (3,4,0) or (0,0,1); a torn read would
	// mix components from both and break unit length.
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range 5000 {
			if i%2 == 0 {
				f.Add(3, 4, 0)
			} else {
				f.Add(0, 0, 1)
			}
		}
	}()

	for range 5000 {
		v := f.Vector()
		if v != (mgl32.Vec3{}) {
			assert.InDelta(t, 1.0, v.Len(), eps)
		}
	}
	wg.Wait()
}
