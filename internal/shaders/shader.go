package shaders

import (
	"fmt"

	"github.com/glimpseframework/holoview/internal/gles"
)

// Stage is a programmable pipeline stage. Values index Program's shader array.
type Stage int

const (
	Vertex Stage = iota
	Fragment
	stageCount
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

func (s Stage) glEnum() gles.Enum {
	if s == Fragment {
		return gles.FragmentShader
	}
	return gles.VertexShader
}

// Shader is one compiled stage. The zero handle means deleted or never created.
type Shader struct {
	ctx    gles.Context
	stage  Stage
	handle uint32
}

// Compile creates and compiles a shader of the given stage. On failure the
// GL object is deleted and a *CompileError carrying the driver log is returned.
func Compile(ctx gles.Context, stage Stage, source string) (*Shader, error) {
	handle := ctx.CreateShader(stage.glEnum())
	if handle == 0 {
		return nil, &gles.AllocationError{Object: stage.String() + " shader"}
	}

	ctx.ShaderSource(handle, source)
	ctx.CompileShader(handle)

	if !ctx.ShaderCompiled(handle) {
		log := ctx.ShaderInfoLog(handle)
		ctx.DeleteShader(handle)
		return nil, &CompileError{Stage: stage, Log: log}
	}

	return &Shader{ctx: ctx, stage: stage, handle: handle}, nil
}

func (s *Shader) Stage() Stage { return s.stage }

func (s *Shader) Handle() uint32 {
	if s == nil {
		return 0
	}
	return s.handle
}

func (s *Shader) Compiled() bool { return s != nil && s.handle != 0 }

// Delete releases the GL object. Calling it again, or on nil, does nothing.
func (s *Shader) Delete() {
	if s == nil || s.handle == 0 {
		return
	}
	s.ctx.DeleteShader(s.handle)
	s.handle = 0
}
