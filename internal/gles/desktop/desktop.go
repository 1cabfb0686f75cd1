// Package desktop implements gles.Context on top of go-gl's OpenGL 4.1 core
// bindings. A context must be current on the calling thread before New.
package desktop

import (
	"fmt"
	"strings"

	"github.com/glimpseframework/holoview/internal/gles"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type Context struct{}

var _ gles.Context = (*Context)(nil)

// New loads the GL function pointers for the current context.
func New() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialise OpenGL: %w", err)
	}
	return &Context{}, nil
}

func (*Context) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (*Context) Enable(capability gles.Enum) { gl.Enable(uint32(capability)) }

func (*Context) BlendFunc(sfactor, dfactor gles.Enum) {
	gl.BlendFunc(uint32(sfactor), uint32(dfactor))
}

func (*Context) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (*Context) Clear(mask gles.Enum) { gl.Clear(uint32(mask)) }

func (*Context) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (*Context) CreateShader(stage gles.Enum) uint32 { return gl.CreateShader(uint32(stage)) }

func (*Context) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (*Context) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (*Context) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (*Context) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	logMsg := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logMsg))
	return strings.TrimSpace(strings.TrimRight(logMsg, "\x00"))
}

func (*Context) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (*Context) CreateProgram() uint32 { return gl.CreateProgram() }

func (*Context) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (*Context) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (*Context) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (*Context) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	logMsg := make([]byte, logLength)
	gl.GetProgramInfoLog(program, logLength, nil, &logMsg[0])
	return strings.TrimSpace(strings.TrimRight(string(logMsg), "\x00"))
}

func (*Context) UseProgram(program uint32) { gl.UseProgram(program) }

func (*Context) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (*Context) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (*Context) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (*Context) CreateTexture() uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	return texture
}

func (*Context) DeleteTexture(texture uint32) { gl.DeleteTextures(1, &texture) }

func (*Context) ActiveTexture(unit gles.Enum) { gl.ActiveTexture(uint32(unit)) }

func (*Context) BindTexture(target gles.Enum, texture uint32) {
	gl.BindTexture(uint32(target), texture)
}

func (*Context) TexParameteri(target, pname gles.Enum, param int32) {
	gl.TexParameteri(uint32(target), uint32(pname), param)
}

func (*Context) TexImage2D(target gles.Enum, width, height int, pix []byte) {
	gl.TexImage2D(
		uint32(target),
		0,
		gl.RGBA,
		int32(width),
		int32(height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(pix),
	)
}

func (*Context) GenerateMipmap(target gles.Enum) { gl.GenerateMipmap(uint32(target)) }

func (*Context) CreateBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (*Context) BindBuffer(target gles.Enum, buffer uint32) {
	gl.BindBuffer(uint32(target), buffer)
}

func (*Context) BufferData(target gles.Enum, data []byte, usage gles.Enum) {
	gl.BufferData(uint32(target), len(data), gl.Ptr(data), uint32(usage))
}

func (*Context) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (*Context) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (*Context) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (*Context) DeleteVertexArray(vao uint32) {
	if vao == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &vao)
}

func (*Context) VertexAttribPointer(index uint32, size int, ty gles.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointerWithOffset(index, int32(size), uint32(ty), normalized, int32(stride), uintptr(offset))
}

func (*Context) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (*Context) DrawArrays(mode gles.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (*Context) Uniform1i(location int32, v int32) { gl.Uniform1i(location, v) }

func (*Context) Uniform3f(location int32, x, y, z float32) { gl.Uniform3f(location, x, y, z) }

func (*Context) UniformMatrix4fv(location int32, m *[16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}
