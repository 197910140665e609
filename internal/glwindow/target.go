package glwindow

import (
	"colored-cube/internal/render"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Target implements render.Target with fixed-function OpenGL calls on the current context.
type Target struct{}

var _ render.Target = Target{}

// Begin opens a GL_QUADS or GL_LINES primitive.
func (Target) Begin(mode render.Primitive) {
	switch mode {
	case render.Lines:
		gl.Begin(gl.LINES)
	default:
		gl.Begin(gl.QUADS)
	}
}

// Color sets the current vertex color.
func (Target) Color(r, g, b float32) { gl.Color3f(r, g, b) }

// Vertex emits one vertex with the current color.
func (Target) Vertex(x, y, z float32) { gl.Vertex3f(x, y, z) }

// End closes the primitive.
func (Target) End() { gl.End() }

// Clear fills the color buffer and resets depth.
func (Target) Clear(r, g, b float32) {
	gl.ClearColor(r, g, b, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Viewport sets the GL viewport in pixels.
func (Target) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// LoadProjection replaces the projection stack top. mgl32 matrices are column-major, as GL expects.
func (Target) LoadProjection(m mgl32.Mat4) {
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(&m[0])
}

// LoadView replaces the modelview stack top; the cube has no model transform of its own.
func (Target) LoadView(m mgl32.Mat4) {
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixf(&m[0])
}
