// Package mobile adapts golang.org/x/mobile/gl contexts (OpenGL ES 2.0, and
// ES 3 when available) to gles.Context.
package mobile

import (
	"github.com/glimpseframework/holoview/internal/gles"
	"golang.org/x/mobile/gl"
)

type Context struct {
	glctx gl.Context
	gl3   gl.Context3
}

var _ gles.Context = (*Context)(nil)

func New(glctx gl.Context) *Context {
	c := &Context{glctx: glctx}
	c.gl3, _ = glctx.(gl.Context3)
	return c
}

func (c *Context) Version() string { return c.glctx.GetString(gl.VERSION) }

func (c *Context) Enable(capability gles.Enum) { c.glctx.Enable(gl.Enum(capability)) }

func (c *Context) BlendFunc(sfactor, dfactor gles.Enum) {
	c.glctx.BlendFunc(gl.Enum(sfactor), gl.Enum(dfactor))
}

func (c *Context) ClearColor(r, g, b, a float32) { c.glctx.ClearColor(r, g, b, a) }

func (c *Context) Clear(mask gles.Enum) { c.glctx.Clear(gl.Enum(mask)) }

func (c *Context) Viewport(x, y, width, height int) { c.glctx.Viewport(x, y, width, height) }

func (c *Context) CreateShader(stage gles.Enum) uint32 {
	return c.glctx.CreateShader(gl.Enum(stage)).Value
}

func (c *Context) ShaderSource(shader uint32, source string) {
	c.glctx.ShaderSource(gl.Shader{Value: shader}, source)
}

func (c *Context) CompileShader(shader uint32) { c.glctx.CompileShader(gl.Shader{Value: shader}) }

func (c *Context) ShaderCompiled(shader uint32) bool {
	return c.glctx.GetShaderi(gl.Shader{Value: shader}, gl.COMPILE_STATUS) != 0
}

func (c *Context) ShaderInfoLog(shader uint32) string {
	return c.glctx.GetShaderInfoLog(gl.Shader{Value: shader})
}

func (c *Context) DeleteShader(shader uint32) { c.glctx.DeleteShader(gl.Shader{Value: shader}) }

func (c *Context) CreateProgram() uint32 { return c.glctx.CreateProgram().Value }

func program(p uint32) gl.Program { return gl.Program{Init: true, Value: p} }

func (c *Context) AttachShader(p, shader uint32) {
	c.glctx.AttachShader(program(p), gl.Shader{Value: shader})
}

func (c *Context) LinkProgram(p uint32) { c.glctx.LinkProgram(program(p)) }

func (c *Context) ProgramLinked(p uint32) bool {
	return c.glctx.GetProgrami(program(p), gl.LINK_STATUS) != 0
}

func (c *Context) ProgramInfoLog(p uint32) string { return c.glctx.GetProgramInfoLog(program(p)) }

func (c *Context) UseProgram(p uint32) { c.glctx.UseProgram(program(p)) }

func (c *Context) DeleteProgram(p uint32) { c.glctx.DeleteProgram(program(p)) }

func (c *Context) GetUniformLocation(p uint32, name string) int32 {
	return c.glctx.GetUniformLocation(program(p), name).Value
}

func (c *Context) GetAttribLocation(p uint32, name string) int32 {
	return int32(c.glctx.GetAttribLocation(program(p), name).Value)
}

func (c *Context) CreateTexture() uint32 { return c.glctx.CreateTexture().Value }

func (c *Context) DeleteTexture(texture uint32) {
	c.glctx.DeleteTexture(gl.Texture{Value: texture})
}

func (c *Context) ActiveTexture(unit gles.Enum) { c.glctx.ActiveTexture(gl.Enum(unit)) }

func (c *Context) BindTexture(target gles.Enum, texture uint32) {
	c.glctx.BindTexture(gl.Enum(target), gl.Texture{Value: texture})
}

func (c *Context) TexParameteri(target, pname gles.Enum, param int32) {
	c.glctx.TexParameteri(gl.Enum(target), gl.Enum(pname), int(param))
}

func (c *Context) TexImage2D(target gles.Enum, width, height int, pix []byte) {
	c.glctx.TexImage2D(gl.Enum(target), 0, gl.RGBA, width, height, gl.RGBA, gl.UNSIGNED_BYTE, pix)
}

func (c *Context) GenerateMipmap(target gles.Enum) { c.glctx.GenerateMipmap(gl.Enum(target)) }

func (c *Context) CreateBuffer() uint32 { return c.glctx.CreateBuffer().Value }

func (c *Context) BindBuffer(target gles.Enum, buffer uint32) {
	c.glctx.BindBuffer(gl.Enum(target), gl.Buffer{Value: buffer})
}

func (c *Context) BufferData(target gles.Enum, data []byte, usage gles.Enum) {
	c.glctx.BufferData(gl.Enum(target), data, gl.Enum(usage))
}

func (c *Context) DeleteBuffer(buffer uint32) { c.glctx.DeleteBuffer(gl.Buffer{Value: buffer}) }

func (c *Context) CreateVertexArray() uint32 {
	if c.gl3 == nil {
		return 0
	}
	return c.gl3.CreateVertexArray().Value
}

func (c *Context) BindVertexArray(vao uint32) {
	if c.gl3 == nil || vao == 0 {
		return
	}
	c.gl3.BindVertexArray(gl.VertexArray{Value: vao})
}

func (c *Context) DeleteVertexArray(vao uint32) {
	if c.gl3 == nil || vao == 0 {
		return
	}
	c.gl3.DeleteVertexArray(gl.VertexArray{Value: vao})
}

func (c *Context) VertexAttribPointer(index uint32, size int, ty gles.Enum, normalized bool, stride, offset int) {
	c.glctx.VertexAttribPointer(gl.Attrib{Value: uint(index)}, size, gl.Enum(ty), normalized, stride, offset)
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	c.glctx.EnableVertexAttribArray(gl.Attrib{Value: uint(index)})
}

func (c *Context) DrawArrays(mode gles.Enum, first, count int) {
	c.glctx.DrawArrays(gl.Enum(mode), first, count)
}

func (c *Context) Uniform1i(location int32, v int32) {
	c.glctx.Uniform1i(gl.Uniform{Value: location}, int(v))
}

func (c *Context) Uniform3f(location int32, x, y, z float32) {
	c.glctx.Uniform3f(gl.Uniform{Value: location}, x, y, z)
}

func (c *Context) UniformMatrix4fv(location int32, m *[16]float32) {
	c.glctx.UniformMatrix4fv(gl.Uniform{Value: location}, m[:])
}
