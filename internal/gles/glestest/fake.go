// Package glestest provides a recording gles.Context for tests that need to
// observe GL traffic without a GPU.
package glestest

import (
	"fmt"
	"strings"

	"github.com/glimpseframework/holoview/internal/gles"
)

// Call is one recorded GL entry point with its arguments.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

// Context records every call. Knobs on the struct make selected operations
// fail the way a driver would.
type Context struct {
	VersionString string

	// CompileFailure, when it returns a non-empty log, rejects the source.
	CompileFailure func(stage gles.Enum, source string) string
	// LinkFailure is the info log reported by every link when non-empty.
	LinkFailure string
	// NullPrograms and NullTextures make the respective Create* return 0.
	NullPrograms bool
	NullTextures bool
	// NoVertexArrays mimics a plain ES 2 context.
	NoVertexArrays bool
	// InactiveNames are reported as location -1.
	InactiveNames map[string]bool

	Calls []Call

	next      uint32
	Shaders   map[uint32]bool
	Programs  map[uint32]bool
	Textures  map[uint32]bool
	Buffers   map[uint32]bool
	VAOs      map[uint32]bool
	compiled  map[uint32]bool
	sources   map[uint32]string
	stages    map[uint32]gles.Enum
	linked    map[uint32]bool
	locations map[string]int32
}

var _ gles.Context = (*Context)(nil)

func New() *Context {
	return &Context{
		VersionString: "OpenGL ES 2.0 glestest",
		InactiveNames: map[string]bool{},
		Shaders:       map[uint32]bool{},
		Programs:      map[uint32]bool{},
		Textures:      map[uint32]bool{},
		Buffers:       map[uint32]bool{},
		VAOs:          map[uint32]bool{},
		compiled:      map[uint32]bool{},
		sources:       map[uint32]string{},
		stages:        map[uint32]gles.Enum{},
		linked:        map[uint32]bool{},
		locations:     map[string]int32{},
	}
}

// FailCompileContaining rejects sources containing marker.
func FailCompileContaining(marker string) func(gles.Enum, string) string {
	return func(stage gles.Enum, source string) string {
		if strings.Contains(source, marker) {
			return fmt.Sprintf("ERROR: 0:1: '%s' : syntax error", marker)
		}
		return ""
	}
}

func (c *Context) record(name string, args ...any) {
	c.Calls = append(c.Calls, Call{Name: name, Args: args})
}

func (c *Context) alloc() uint32 {
	c.next++
	return c.next
}

// Reset forgets recorded calls but keeps object state.
func (c *Context) Reset() { c.Calls = nil }

// Named returns the recorded calls with the given entry point name.
func (c *Context) Named(name string) []Call {
	var out []Call
	for _, call := range c.Calls {
		if call.Name == name {
			out = append(out, call)
		}
	}
	return out
}

// Live reports how many objects of every kind are still allocated.
func (c *Context) Live() int {
	return len(c.Shaders) + len(c.Programs) + len(c.Textures) + len(c.Buffers) + len(c.VAOs)
}

func (c *Context) Version() string {
	c.record("Version")
	return c.VersionString
}

func (c *Context) Enable(capability gles.Enum) { c.record("Enable", capability) }

func (c *Context) BlendFunc(sfactor, dfactor gles.Enum) { c.record("BlendFunc", sfactor, dfactor) }

func (c *Context) ClearColor(r, g, b, a float32) { c.record("ClearColor", r, g, b, a) }

func (c *Context) Clear(mask gles.Enum) { c.record("Clear", mask) }

func (c *Context) Viewport(x, y, width, height int) { c.record("Viewport", x, y, width, height) }

func (c *Context) CreateShader(stage gles.Enum) uint32 {
	s := c.alloc()
	c.Shaders[s] = true
	c.stages[s] = stage
	c.record("CreateShader", stage, s)
	return s
}

func (c *Context) ShaderSource(shader uint32, source string) {
	c.sources[shader] = source
	c.record("ShaderSource", shader)
}

func (c *Context) CompileShader(shader uint32) {
	c.record("CompileShader", shader)
	if c.CompileFailure != nil && c.CompileFailure(c.stages[shader], c.sources[shader]) != "" {
		return
	}
	c.compiled[shader] = true
}

func (c *Context) ShaderCompiled(shader uint32) bool { return c.compiled[shader] }

func (c *Context) ShaderInfoLog(shader uint32) string {
	if c.CompileFailure == nil {
		return ""
	}
	return c.CompileFailure(c.stages[shader], c.sources[shader])
}

func (c *Context) DeleteShader(shader uint32) {
	c.record("DeleteShader", shader)
	delete(c.Shaders, shader)
}

func (c *Context) CreateProgram() uint32 {
	if c.NullPrograms {
		c.record("CreateProgram", uint32(0))
		return 0
	}
	p := c.alloc()
	c.Programs[p] = true
	c.record("CreateProgram", p)
	return p
}

func (c *Context) AttachShader(program, shader uint32) { c.record("AttachShader", program, shader) }

func (c *Context) LinkProgram(program uint32) {
	c.record("LinkProgram", program)
	c.linked[program] = c.LinkFailure == ""
}

func (c *Context) ProgramLinked(program uint32) bool { return c.linked[program] }

func (c *Context) ProgramInfoLog(program uint32) string { return c.LinkFailure }

func (c *Context) UseProgram(program uint32) { c.record("UseProgram", program) }

func (c *Context) DeleteProgram(program uint32) {
	c.record("DeleteProgram", program)
	delete(c.Programs, program)
}

func (c *Context) location(program uint32, name string) int32 {
	if c.InactiveNames[name] {
		return -1
	}
	key := fmt.Sprintf("%d/%s", program, name)
	if loc, ok := c.locations[key]; ok {
		return loc
	}
	loc := int32(len(c.locations))
	c.locations[key] = loc
	return loc
}

func (c *Context) GetUniformLocation(program uint32, name string) int32 {
	c.record("GetUniformLocation", program, name)
	return c.location(program, name)
}

func (c *Context) GetAttribLocation(program uint32, name string) int32 {
	c.record("GetAttribLocation", program, name)
	return c.location(program, name)
}

func (c *Context) CreateTexture() uint32 {
	if c.NullTextures {
		c.record("CreateTexture", uint32(0))
		return 0
	}
	t := c.alloc()
	c.Textures[t] = true
	c.record("CreateTexture", t)
	return t
}

func (c *Context) DeleteTexture(texture uint32) {
	c.record("DeleteTexture", texture)
	delete(c.Textures, texture)
}

func (c *Context) ActiveTexture(unit gles.Enum) { c.record("ActiveTexture", unit) }

func (c *Context) BindTexture(target gles.Enum, texture uint32) {
	c.record("BindTexture", target, texture)
}

func (c *Context) TexParameteri(target, pname gles.Enum, param int32) {
	c.record("TexParameteri", target, pname, param)
}

func (c *Context) TexImage2D(target gles.Enum, width, height int, pix []byte) {
	c.record("TexImage2D", target, width, height, len(pix))
}

func (c *Context) GenerateMipmap(target gles.Enum) { c.record("GenerateMipmap", target) }

func (c *Context) CreateBuffer() uint32 {
	b := c.alloc()
	c.Buffers[b] = true
	c.record("CreateBuffer", b)
	return b
}

func (c *Context) BindBuffer(target gles.Enum, buffer uint32) {
	c.record("BindBuffer", target, buffer)
}

func (c *Context) BufferData(target gles.Enum, data []byte, usage gles.Enum) {
	c.record("BufferData", target, len(data), usage)
}

func (c *Context) DeleteBuffer(buffer uint32) {
	c.record("DeleteBuffer", buffer)
	delete(c.Buffers, buffer)
}

func (c *Context) CreateVertexArray() uint32 {
	if c.NoVertexArrays {
		return 0
	}
	v := c.alloc()
	c.VAOs[v] = true
	c.record("CreateVertexArray", v)
	return v
}

func (c *Context) BindVertexArray(vao uint32) { c.record("BindVertexArray", vao) }

func (c *Context) DeleteVertexArray(vao uint32) {
	c.record("DeleteVertexArray", vao)
	delete(c.VAOs, vao)
}

func (c *Context) VertexAttribPointer(index uint32, size int, ty gles.Enum, normalized bool, stride, offset int) {
	c.record("VertexAttribPointer", index, size, ty, normalized, stride, offset)
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	c.record("EnableVertexAttribArray", index)
}

func (c *Context) DrawArrays(mode gles.Enum, first, count int) {
	c.record("DrawArrays", mode, first, count)
}

func (c *Context) Uniform1i(location int32, v int32) { c.record("Uniform1i", location, v) }

func (c *Context) Uniform3f(location int32, x, y, z float32) {
	c.record("Uniform3f", location, x, y, z)
}

func (c *Context) UniformMatrix4fv(location int32, m *[16]float32) {
	c.record("UniformMatrix4fv", location, *m)
}
