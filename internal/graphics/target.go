package graphics

import (
	"colored-cube/internal/render"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Target draws through rlgl's immediate-mode batch. Use it between rl.BeginDrawing and
// rl.EndDrawing, and call Finish once the 3D content is done so 2D overlays draw normally.
type Target struct {
	pushed bool
}

var _ render.Target = (*Target)(nil)

// Begin opens a primitive batch.
func (t *Target) Begin(mode render.Primitive) {
	switch mode {
	case render.Lines:
		rl.Begin(rl.Lines)
	default:
		rl.Begin(rl.Quads)
	}
}

// Color sets the current vertex color.
func (t *Target) Color(r, g, b float32) {
	rl.Color3f(r, g, b)
}

// Vertex emits one vertex with the current color.
func (t *Target) Vertex(x, y, z float32) {
	rl.Vertex3f(x, y, z)
}

// End closes the primitive batch.
func (t *Target) End() {
	rl.End()
}

// Clear fills the color buffer and resets depth.
func (t *Target) Clear(r, g, b float32) {
	rl.ClearBackground(rl.NewColor(channel(r), channel(g), channel(b), 255))
}

// Viewport sets the GL viewport in pixels.
func (t *Target) Viewport(x, y, width, height int) {
	rl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// LoadProjection flushes pending 2D work and replaces the projection, saving the 2D one for Finish.
func (t *Target) LoadProjection(m mgl32.Mat4) {
	rl.DrawRenderBatchActive()
	rl.MatrixMode(rl.Projection)
	if !t.pushed {
		rl.PushMatrix()
		t.pushed = true
	}
	rl.LoadIdentity()
	rl.MultMatrix(toMatrix(m))
}

// LoadView replaces the modelview matrix and turns on depth testing.
func (t *Target) LoadView(m mgl32.Mat4) {
	rl.MatrixMode(rl.Modelview)
	rl.LoadIdentity()
	rl.MultMatrix(toMatrix(m))
	rl.EnableDepthTest()
}

// Finish flushes the 3D batch and restores raylib's 2D projection.
func (t *Target) Finish() {
	if !t.pushed {
		return
	}
	rl.EndMode3D()
	t.pushed = false
}

// toMatrix copies a column-major mgl32 matrix into raylib's layout. Both index elements the same way.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.NewMatrix(
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	)
}

// channel converts a [0,1] color component to a byte, clamping out-of-range values.
func channel(c float32) uint8 {
	switch {
	case c <= 0:
		return 0
	case c >= 1:
		return 255
	}
	return uint8(c*255 + 0.5)
}
