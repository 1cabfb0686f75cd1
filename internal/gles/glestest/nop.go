package glestest

import "github.com/glimpseframework/holoview/internal/gles"

// Nop is a gles.Context where every object is created, compiles and links,
// and nothing is recorded. Use it where recording would itself allocate, e.g.
// under testing.AllocsPerRun.
type Nop struct {
	next uint32
}

var _ gles.Context = (*Nop)(nil)

func (n *Nop) alloc() uint32 {
	n.next++
	return n.next
}

func (*Nop) Version() string { return "OpenGL ES 2.0 glestest" }

func (*Nop) Enable(gles.Enum) {}
func (*Nop) BlendFunc(gles.Enum, gles.Enum) {}
func (*Nop) ClearColor(float32, float32, float32, float32) {}
func (*Nop) Clear(gles.Enum) {}
func (*Nop) Viewport(int, int, int, int) {}

func (n *Nop) CreateShader(gles.Enum) uint32 { return n.alloc() }
func (*Nop) ShaderSource(uint32, string) {}
func (*Nop) CompileShader(uint32) {}
func (*Nop) ShaderCompiled(uint32) bool { return true }
func (*Nop) ShaderInfoLog(uint32) string { return "" }
func (*Nop) DeleteShader(uint32) {}

func (n *Nop) CreateProgram() uint32 { return n.alloc() }
func (*Nop) AttachShader(uint32, uint32) {}
func (*Nop) LinkProgram(uint32) {}
func (*Nop) ProgramLinked(uint32) bool { return true }
func (*Nop) ProgramInfoLog(uint32) string { return "" }
func (*Nop) UseProgram(uint32) {}
func (*Nop) DeleteProgram(uint32) {}

func (n *Nop) GetUniformLocation(uint32, string) int32 { return int32(n.alloc()) }
func (n *Nop) GetAttribLocation(uint32, string) int32 { return int32(n.alloc()) }

func (n *Nop) CreateTexture() uint32 { return n.alloc() }
func (*Nop) DeleteTexture(uint32) {}
func (*Nop) ActiveTexture(gles.Enum) {}
func (*Nop) BindTexture(gles.Enum, uint32) {}
func (*Nop) TexParameteri(gles.Enum, gles.Enum, int32) {}
func (*Nop) TexImage2D(gles.Enum, int, int, []byte) {}
func (*Nop) GenerateMipmap(gles.Enum) {}

func (n *Nop) CreateBuffer() uint32 { return n.alloc() }
func (*Nop) BindBuffer(gles.Enum, uint32) {}
func (*Nop) BufferData(gles.Enum, []byte, gles.Enum) {}
func (*Nop) DeleteBuffer(uint32) {}

func (n *Nop) CreateVertexArray() uint32 { return n.alloc() }
func (*Nop) BindVertexArray(uint32) {}
func (*Nop) DeleteVertexArray(uint32) {}

func (*Nop) VertexAttribPointer(uint32, int, gles.Enum, bool, int, int) {}
func (*Nop) EnableVertexAttribArray(uint32) {}
func (*Nop) DrawArrays(gles.Enum, int, int) {}

func (*Nop) Uniform1i(int32, int32) {}
func (*Nop) Uniform3f(int32, float32, float32, float32) {}
func (*Nop) UniformMatrix4fv(int32, *[16]float32) {}
