// Package orientation smooths raw accelerometer samples into the unit vector
// that drives the hologram distortion.
package orientation

import (
	"math"
	"sync"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// WindowSize is the number of most recent samples averaged by a Filter.
const WindowSize = 20

// Filter keeps a ring of the last WindowSize samples and publishes the
// normalized sum of the populated window.
//
// Add is called from the sensor goroutine and Vector from the render
// goroutine; both take the same mutex, so a reader always sees the x, y and z
// of a single update. When the summed window has zero length the previous
// output is held. Before the first usable sum the output is the zero vector.
type Filter struct {
	mu      sync.Mutex
	samples [WindowSize]mgl32.Vec3
	cursor  int
	count   int
	sum     mgl32.Vec3
	vector  mgl32.Vec3
	held    bool
}

// Add records one raw sample. Samples with a NaN or infinite component are
// dropped and reported as false.
func (f *Filter) Add(x, y, z float32) bool {
	if !finite(x) || !finite(y) || !finite(z) {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.samples[f.cursor] = mgl32.Vec3{x, y, z}
	f.cursor = (f.cursor + 1) % WindowSize
	if f.count < WindowSize {
		f.count++
	}

	// Recomputed over the whole window, never a running total.
	var sum mgl32.Vec3
	for i := range f.count {
		sum = sum.Add(f.samples[i])
	}
	f.sum = sum

	if !finite(sum[0]) || !finite(sum[1]) || !finite(sum[2]) {
		f.held = true
		return true
	}
	// Squares of a finite float32 sum can overflow float32.
	sx, sy, sz := float64(sum[0]), float64(sum[1]), float64(sum[2])
	norm := math.Sqrt(sx*sx + sy*sy + sz*sz)
	if norm == 0 {
		f.held = true
		return true
	}
	f.vector = mgl32.Vec3{float32(sx / norm), float32(sy / norm), float32(sz / norm)}
	f.held = false
	return true
}

// Vector returns the current smoothed orientation.
func (f *Filter) Vector() mgl32.Vec3 {
	f.mu.Lock()
	v := f.vector
	f.mu.Unlock()
	return v
}

// Sum returns the raw sum over the populated window.
func (f *Filter) Sum() mgl32.Vec3 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sum
}

// Len is the number of samples currently in the window.
func (f *Filter) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.count
}

// Holding reports whether the last sample left the window with zero length or
// an overflowed sum, so Vector is returning an older value.
func (f *Filter) Holding() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.held
}

// Reset empties the window and zeroes the output.
func (f *Filter) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.samples = [WindowSize]mgl32.Vec3{}
	f.cursor, f.count = 0, 0
	f.sum, f.vector = mgl32.Vec3{}, mgl32.Vec3{}
	f.held = false
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
