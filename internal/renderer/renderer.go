// Package renderer draws the hologram: one full-screen quad whose fragment
// shader composites three textures under a tilt-dependent distortion.
//
// A Renderer is driven by the host's render loop through OnSurfaceCreated,
// OnSurfaceChanged and OnDrawFrame, all on the goroutine owning the GL
// context. Only the orientation source may be written from elsewhere.
package renderer

import (
	"errors"
	"fmt"

	"github.com/glimpseframework/holoview/internal/gles"
	"github.com/glimpseframework/holoview/internal/logging"
	"github.com/glimpseframework/holoview/internal/models"
	"github.com/glimpseframework/holoview/internal/shaders"
	"github.com/glimpseframework/holoview/internal/texture"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrInactiveAttribute is returned when the linked program does not use one
// of the quad's vertex attributes.
var ErrInactiveAttribute = errors.New("renderer: vertex attribute not active in program")

// VectorSource supplies the orientation uniform. Vector must return a
// consistent snapshot and must be safe to call while samples arrive.
type VectorSource interface {
	Vector() mgl32.Vec3
}

type Renderer struct {
	cfg         models.RenderConfig
	orientation VectorSource
	minVersion  gles.Version
	powerOfTwo  bool

	ctx      gles.Context
	state    State
	version  gles.Version
	program  *shaders.Program
	textures *texture.Store

	vao       uint32
	positions uint32
	uvs       uint32

	mvp         mgl32.Mat4
	mvpLoc      int32
	accelLoc    int32
	positionLoc uint32
	uvLoc       uint32

	width, height int
}

type Option func(*Renderer)

// MinVersion sets the oldest context accepted by OnSurfaceCreated.
// The default is OpenGL ES 2.0.
func MinVersion(v gles.Version) Option {
	return func(r *Renderer) { r.minVersion = v }
}

// PowerOfTwoTextures scales textures to power-of-two sizes before upload.
func PowerOfTwoTextures(enabled bool) Option {
	return func(r *Renderer) { r.powerOfTwo = enabled }
}

func New(cfg models.RenderConfig, orientation VectorSource, opts ...Option) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if orientation == nil {
		return nil, errors.New("renderer: orientation source is nil")
	}
	r := &Renderer{
		cfg:         cfg,
		orientation: orientation,
		minVersion:  gles.ES20,
		mvpLoc:      -1,
		accelLoc:    -1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *Renderer) State() State { return r.state }

// Size is the last viewport size set by OnSurfaceChanged.
func (r *Renderer) Size() (int, int) { return r.width, r.height }

// OnSurfaceCreated builds every GPU resource in ctx. Called on a renderer that
// is already built it assumes the previous context is gone and rebuilds from
// scratch without touching the old handles. On error nothing is left
// allocated and the renderer stays uninitialized.
func (r *Renderer) OnSurfaceCreated(ctx gles.Context) error {
	to, err := next(r.state, eventSurfaceCreated)
	if err != nil {
		return err
	}
	if r.state != StateUninitialized {
		logging.Logger().Info("surface recreated, rebuilding GPU resources", "previous_state", r.state)
		r.forget()
	}

	version, err := gles.CheckVersion(ctx, r.minVersion)
	if err != nil {
		return err
	}

	r.ctx = ctx
	r.version = version

	ctx.Enable(gles.Blend)
	ctx.BlendFunc(gles.SrcAlpha, gles.OneMinusSrcAlpha)
	ctx.ClearColor(0, 0, 0, 0)
	r.mvp = mgl32.Ortho(-1, 1, -1, 1, -1, 1)

	if err := r.build(); err != nil {
		r.Release()
		return err
	}

	r.state = to
	logging.Logger().Info("surface created", "gl_version", version.String())
	return nil
}

func (r *Renderer) build() error {
	program, err := shaders.Build(r.ctx, r.cfg.VertexSource, r.cfg.FragmentSource)
	if err != nil {
		return err
	}
	r.program = program

	if err := r.locate(); err != nil {
		return err
	}
	if err := program.Use(); err != nil {
		return err
	}
	if err := r.uploadQuad(); err != nil {
		return err
	}

	r.textures = texture.FromConfig(r.cfg, texture.PowerOfTwo(r.powerOfTwo))
	if err := r.textures.Generate(r.ctx); err != nil {
		return err
	}
	if err := r.textures.Attach(program); err != nil {
		return err
	}
	r.textures.Bind()
	return nil
}

func (r *Renderer) locate() error {
	var err error
	if r.mvpLoc, err = r.uniform(shaders.MVPMatrix); err != nil {
		return err
	}
	if r.accelLoc, err = r.uniform(shaders.AccelerometerCoordinates); err != nil {
		return err
	}
	if r.positionLoc, err = r.attrib(shaders.VertexPosition); err != nil {
		return err
	}
	if r.uvLoc, err = r.attrib(shaders.TextureCoordinates); err != nil {
		return err
	}
	return nil
}

func (r *Renderer) uniform(name string) (int32, error) {
	loc, err := r.program.UniformLocation(name)
	if err != nil {
		return -1, err
	}
	if loc < 0 {
		logging.Logger().Warn("uniform not active in program", "uniform", name)
	}
	return loc, nil
}

func (r *Renderer) attrib(name string) (uint32, error) {
	loc, err := r.program.AttribLocation(name)
	if err != nil {
		return 0, err
	}
	if loc < 0 {
		return 0, fmt.Errorf("%w: %s", ErrInactiveAttribute, name)
	}
	return uint32(loc), nil
}

func (r *Renderer) uploadQuad() error {
	r.vao = r.ctx.CreateVertexArray()
	r.ctx.BindVertexArray(r.vao)

	var err error
	if r.positions, err = r.staticBuffer("vertex position buffer", quadPositionBytes); err != nil {
		return err
	}
	if r.uvs, err = r.staticBuffer("texture coordinate buffer", quadUVBytes); err != nil {
		return err
	}
	r.ctx.BindBuffer(gles.ArrayBuffer, 0)
	return nil
}

func (r *Renderer) staticBuffer(what string, data []byte) (uint32, error) {
	buffer := r.ctx.CreateBuffer()
	if buffer == 0 {
		return 0, &gles.AllocationError{Object: what}
	}
	r.ctx.BindBuffer(gles.ArrayBuffer, buffer)
	r.ctx.BufferData(gles.ArrayBuffer, data, gles.StaticDraw)
	return buffer, nil
}

// OnSurfaceChanged sizes the viewport to the whole surface.
func (r *Renderer) OnSurfaceChanged(width, height int) error {
	to, err := next(r.state, eventSurfaceChanged)
	if err != nil {
		return err
	}
	r.width, r.height = max(width, 0), max(height, 0)
	r.ctx.Viewport(0, 0, r.width, r.height)
	r.state = to
	logging.Logger().Debug("surface changed", "width", r.width, "height", r.height)
	return nil
}

// OnDrawFrame draws one frame. It allocates nothing, on the GPU or the heap.
func (r *Renderer) OnDrawFrame() error {
	to, err := next(r.state, eventDrawFrame)
	if err != nil {
		return err
	}
	ctx := r.ctx

	ctx.Clear(gles.ColorBufferBit | gles.DepthBufferBit)
	if err := r.program.Use(); err != nil {
		return err
	}
	r.textures.Bind()

	v := r.orientation.Vector()
	ctx.Uniform3f(r.accelLoc, v[0], v[1], v[2])
	ctx.UniformMatrix4fv(r.mvpLoc, (*[16]float32)(&r.mvp))

	ctx.BindVertexArray(r.vao)
	ctx.BindBuffer(gles.ArrayBuffer, r.positions)
	ctx.VertexAttribPointer(r.positionLoc, positionComponents, gles.Float, false, positionStride, 0)
	ctx.EnableVertexAttribArray(r.positionLoc)
	ctx.BindBuffer(gles.ArrayBuffer, r.uvs)
	ctx.VertexAttribPointer(r.uvLoc, uvComponents, gles.Float, false, uvStride, 0)
	ctx.EnableVertexAttribArray(r.uvLoc)

	ctx.DrawArrays(gles.Triangles, 0, quadVertexCount)

	r.state = to
	return nil
}

// OnSurfaceLost drops every handle without GL calls: the context that owned
// them is already destroyed. The next OnSurfaceCreated rebuilds.
func (r *Renderer) OnSurfaceLost() {
	to, _ := next(r.state, eventSurfaceLost)
	if r.state != StateUninitialized {
		logging.Logger().Info("surface lost")
	}
	r.forget()
	r.state = to
}

// Release deletes every GPU object while the context is still current, e.g.
// on pause or shutdown. Safe to call in any state and more than once.
func (r *Renderer) Release() {
	if r.ctx != nil {
		r.program.Delete()
		if r.textures != nil {
			r.textures.Delete()
		}
		if r.positions != 0 {
			r.ctx.DeleteBuffer(r.positions)
		}
		if r.uvs != 0 {
			r.ctx.DeleteBuffer(r.uvs)
		}
		if r.vao != 0 {
			r.ctx.DeleteVertexArray(r.vao)
		}
	}
	r.reset()
}

func (r *Renderer) forget() {
	r.program.Forget()
	if r.textures != nil {
		r.textures.Forget()
	}
	r.reset()
}

func (r *Renderer) reset() {
	r.ctx = nil
	r.program = nil
	r.textures = nil
	r.vao, r.positions, r.uvs = 0, 0, 0
	r.mvpLoc, r.accelLoc = -1, -1
	r.positionLoc, r.uvLoc = 0, 0
	r.state = StateUninitialized
}
