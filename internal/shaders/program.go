package shaders

import (
	"errors"
	"fmt"

	"github.com/glimpseframework/holoview/internal/gles"
)

// ProgramState tracks how far a Program got through its build.
type ProgramState int

const (
	Uncompiled ProgramState = iota
	Compiled
	Linked
	Active
)

func (s ProgramState) String() string {
	switch s {
	case Uncompiled:
		return "uncompiled"
	case Compiled:
		return "compiled"
	case Linked:
		return "linked"
	case Active:
		return "active"
	}
	return fmt.Sprintf("ProgramState(%d)", int(s))
}

// Program owns one shader per stage and the linked GL program. Location
// lookups are cached per name for the lifetime of the link.
type Program struct {
	ctx      gles.Context
	shaders  [stageCount]*Shader
	handle   uint32
	state    ProgramState
	uniforms map[string]int32
	attribs  map[string]int32
}

// Build compiles both stages and links them. Any failure leaves no GL objects
// behind; the caller must start again with a fresh Build.
func Build(ctx gles.Context, vertexSource, fragmentSource string) (*Program, error) {
	p := &Program{ctx: ctx}
	if err := p.compile(Vertex, vertexSource); err != nil {
		return nil, err
	}
	if err := p.compile(Fragment, fragmentSource); err != nil {
		p.Delete()
		return nil, err
	}
	p.state = Compiled

	if err := p.link(); err != nil {
		p.Delete()
		return nil, err
	}
	return p, nil
}

func (p *Program) compile(stage Stage, source string) error {
	s, err := Compile(p.ctx, stage, source)
	if err != nil {
		return err
	}
	p.shaders[stage] = s
	return nil
}

func (p *Program) link() error {
	for stage, s := range p.shaders {
		if !s.Compiled() {
			return &LinkError{Log: fmt.Sprintf("%s stage missing or not compiled", Stage(stage))}
		}
	}

	handle := p.ctx.CreateProgram()
	if handle == 0 {
		return &gles.AllocationError{Object: "program"}
	}
	p.handle = handle

	for _, s := range p.shaders {
		p.ctx.AttachShader(handle, s.Handle())
	}
	p.ctx.LinkProgram(handle)

	if !p.ctx.ProgramLinked(handle) {
		return &LinkError{Log: p.ctx.ProgramInfoLog(handle)}
	}

	p.state = Linked
	p.uniforms = make(map[string]int32)
	p.attribs = make(map[string]int32)
	return nil
}

func (p *Program) State() ProgramState { return p.state }

func (p *Program) Handle() uint32 { return p.handle }

// Use makes the program current for subsequent draws.
func (p *Program) Use() error {
	if p.state < Linked {
		return ErrNotLinked
	}
	p.ctx.UseProgram(p.handle)
	p.state = Active
	return nil
}

// UniformLocation returns the location of name, -1 when the uniform is not
// active in the program.
func (p *Program) UniformLocation(name string) (int32, error) {
	if p.state < Linked {
		return -1, ErrNotLinked
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc, nil
	}
	loc := p.ctx.GetUniformLocation(p.handle, name)
	p.uniforms[name] = loc
	return loc, nil
}

// AttribLocation returns the location of name, -1 when the attribute is not
// active in the program.
func (p *Program) AttribLocation(name string) (int32, error) {
	if p.state < Linked {
		return -1, ErrNotLinked
	}
	if loc, ok := p.attribs[name]; ok {
		return loc, nil
	}
	loc := p.ctx.GetAttribLocation(p.handle, name)
	p.attribs[name] = loc
	return loc, nil
}

// Delete releases the program and both shaders. It is safe on a nil, failed,
// or already deleted program.
func (p *Program) Delete() {
	if p == nil {
		return
	}
	if p.handle != 0 {
		p.ctx.DeleteProgram(p.handle)
		p.handle = 0
	}
	for _, s := range p.shaders {
		s.Delete()
	}
	p.state = Uncompiled
	p.uniforms = nil
	p.attribs = nil
}

// Forget drops all handles without touching GL. Used after context loss,
// when the objects no longer exist on the driver side.
func (p *Program) Forget() {
	if p == nil {
		return
	}
	p.handle = 0
	for _, s := range p.shaders {
		if s != nil {
			s.handle = 0
		}
	}
	p.state = Uncompiled
	p.uniforms = nil
	p.attribs = nil
}

// IsBuildError reports whether err is one of the fatal program build errors.
func IsBuildError(err error) bool {
	var (
		compileErr *CompileError
		linkErr    *LinkError
		allocErr   *gles.AllocationError
	)
	return errors.As(err, &compileErr) || errors.As(err, &linkErr) || errors.As(err, &allocErr)
}
