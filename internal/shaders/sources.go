// Package shaders builds the hologram GPU program and carries the default
// GLSL sources.
package shaders

import _ "embed"

// Uniform and attribute names shared with every hologram shader.
const (
	MVPMatrix                = "u_MVPMatrix"
	AccelerometerCoordinates = "u_AccelerometerCoordinates"
	VertexPosition           = "a_VertexPosition"
	TextureCoordinates       = "a_TextureCoordinates"
)

// Desktop sources target OpenGL 4.1 core profile.
var (
	//go:embed glsl/holo.vert.glsl
	DefaultVertex string
	//go:embed glsl/holo.frag.glsl
	DefaultFragment string
)

// ES sources target OpenGL ES 2.0.
var (
	//go:embed glsl/holo_es.vert.glsl
	DefaultVertexES string
	//go:embed glsl/holo_es.frag.glsl
	DefaultFragmentES string
)
