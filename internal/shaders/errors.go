package shaders

import (
	"errors"
	"fmt"
)

// ErrNotLinked is returned when a program is used before a successful link
// or after it was deleted.
var ErrNotLinked = errors.New("shaders: program is not linked")

// CompileError carries the compiler diagnostic for a rejected stage.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.diagnostic())
}

func (e *CompileError) diagnostic() string {
	if e.Log == "" {
		return "driver reported no log"
	}
	return e.Log
}

// LinkError carries the linker diagnostic.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	if e.Log == "" {
		return "failed to link program: driver reported no log"
	}
	return fmt.Sprintf("failed to link program: %s", e.Log)
}
