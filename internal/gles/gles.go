// Package gles describes the subset of OpenGL / OpenGL ES 2.0 used by the
// hologram renderer. Backends for go-gl (desktop) and golang.org/x/mobile/gl
// live in sub-packages.
package gles

// Enum is a GL enumerant. Values match the Khronos headers so backends can
// pass them through without translation.
type Enum uint32

const (
	Triangles Enum = 0x0004

	DepthBufferBit Enum = 0x0100
	ColorBufferBit Enum = 0x4000

	SrcAlpha         Enum = 0x0302
	OneMinusSrcAlpha Enum = 0x0303

	Blend Enum = 0x0BE2

	Float Enum = 0x1406

	Texture2D          Enum = 0x0DE1
	TextureMagFilter   Enum = 0x2800
	TextureMinFilter   Enum = 0x2801
	TextureWrapS       Enum = 0x2802
	TextureWrapT       Enum = 0x2803
	Linear             Enum = 0x2601
	LinearMipmapLinear Enum = 0x2703
	Repeat             Enum = 0x2901
	Texture0           Enum = 0x84C0

	ArrayBuffer Enum = 0x8892
	StaticDraw  Enum = 0x88E4

	FragmentShader Enum = 0x8B30
	VertexShader   Enum = 0x8B31
)

// Context is the GL surface the renderer talks to. All methods must be called
// from the goroutine that owns the GL context.
//
// Object handles are plain uint32 names; zero is the null object.
type Context interface {
	Version() string

	Enable(capability Enum)
	BlendFunc(sfactor, dfactor Enum)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	Viewport(x, y, width, height int)

	CreateShader(stage Enum) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)
	GetUniformLocation(program uint32, name string) int32
	GetAttribLocation(program uint32, name string) int32

	CreateTexture() uint32
	DeleteTexture(texture uint32)
	ActiveTexture(unit Enum)
	BindTexture(target Enum, texture uint32)
	TexParameteri(target, pname Enum, param int32)
	// TexImage2D uploads tightly packed RGBA8 pixels to mip level 0.
	TexImage2D(target Enum, width, height int, pix []byte)
	GenerateMipmap(target Enum)

	CreateBuffer() uint32
	BindBuffer(target Enum, buffer uint32)
	BufferData(target Enum, data []byte, usage Enum)
	DeleteBuffer(buffer uint32)

	// CreateVertexArray returns 0 when the context has no vertex array
	// objects (plain ES 2). Bind and Delete accept 0 as a no-op.
	CreateVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	VertexAttribPointer(index uint32, size int, ty Enum, normalized bool, stride, offset int)
	EnableVertexAttribArray(index uint32)
	DrawArrays(mode Enum, first, count int)

	Uniform1i(location int32, v int32)
	Uniform3f(location int32, x, y, z float32)
	UniformMatrix4fv(location int32, m *[16]float32)
}
