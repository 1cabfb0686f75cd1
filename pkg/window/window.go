// Package window opens a desktop window with a current OpenGL 4.1 core
// context for the hologram renderer.
package window

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type WindowError struct {
	msg string
	err error
}

func (e *WindowError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *WindowError) Unwrap() error { return e.err }

type Options struct {
	Title        string
	Width        int
	Height       int
	SwapInterval int
	Transparent  bool
}

// Window wraps a glfw window. All methods must run on the thread that called
// New, which is locked to its OS thread.
type Window struct {
	window *glfw.Window

	width, height int
	resized       bool
	cursorX       float64
	cursorY       float64
	cursorMoved   bool
	iconified     bool
	iconifyEvent  bool
}

func New(opts Options) (*Window, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, &WindowError{"failed to initialise GLFW", err}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.AlphaBits, 8)
	glfw.WindowHint(glfw.DepthBits, 16)
	if opts.Transparent {
		glfw.WindowHint(glfw.TransparentFramebuffer, glfw.True)
	}

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &WindowError{"failed to create window", err}
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(opts.SwapInterval)

	w := &Window{window: win}
	w.width, w.height = win.GetFramebufferSize()
	w.resized = true

	// Framebuffer size, not window size: they differ on high-DPI displays.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width, w.height = width, height
		w.resized = true
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.cursorX, w.cursorY = x, y
		w.cursorMoved = true
	})
	win.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		w.iconified = iconified
		w.iconifyEvent = true
	})
	win.SetKeyCallback(func(win *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			win.SetShouldClose(true)
		}
	})

	return w, nil
}

func (w *Window) PollEvents() { glfw.PollEvents() }

func (w *Window) SwapBuffers() { w.window.SwapBuffers() }

func (w *Window) ShouldClose() bool { return w.window.ShouldClose() }

// Resized reports a framebuffer size change since the last call.
func (w *Window) Resized() (width, height int, changed bool) {
	changed, w.resized = w.resized, false
	return w.width, w.height, changed
}

// Cursor reports the pointer position and whether it moved since the last call.
func (w *Window) Cursor() (x, y float64, moved bool) {
	moved, w.cursorMoved = w.cursorMoved, false
	return w.cursorX, w.cursorY, moved
}

// Iconified reports the minimised state and whether it changed since the
// last call.
func (w *Window) Iconified() (iconified, changed bool) {
	changed, w.iconifyEvent = w.iconifyEvent, false
	return w.iconified, changed
}

// WindowSize is the size in screen coordinates, the space cursor positions
// are reported in.
func (w *Window) WindowSize() (int, int) { return w.window.GetSize() }

func (w *Window) Destroy() {
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
	glfw.Terminate()
}
