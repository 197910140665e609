package render

import (
	"fmt"

	"colored-cube/internal/geometry"

	"github.com/go-gl/mathgl/mgl32"
)

// Primitive is the kind of primitive opened by Painter.Begin.
type Primitive int

const (
	Quads Primitive = iota
	Lines
)

// Shading selects how vertex colors are emitted.
type Shading int

const (
	// Smooth sets the color before every vertex so the host can interpolate across the face.
	Smooth Shading = iota
	// Flat sets the color of the first corner once per face.
	Flat
)

// ParseShading maps "smooth" or "flat" to a Shading. The empty string is Smooth.
func ParseShading(s string) (Shading, error) {
	switch s {
	case "", "smooth":
		return Smooth, nil
	case "flat":
		return Flat, nil
	}
	return Smooth, fmt.Errorf("unknown shading %q", s)
}

// String returns the config name of the shading mode.
func (s Shading) String() string {
	if s == Flat {
		return "flat"
	}
	return "smooth"
}

// Painter is the immediate-mode surface of a graphics binding: begin a primitive, emit colored vertices, end it.
type Painter interface {
	Begin(mode Primitive)
	Color(r, g, b float32)
	Vertex(x, y, z float32)
	End()
}

// Target is a Painter that also owns the frame: clearing, viewport and the two matrix stacks.
type Target interface {
	Painter
	Clear(r, g, b float32)
	Viewport(x, y, width, height int)
	LoadProjection(m mgl32.Mat4)
	LoadView(m mgl32.Mat4)
}

// DrawCube emits one quad per face inside a single Begin(Quads)/End pair.
// Drawing errors belong to the host context, so nothing is returned.
func DrawCube(p Painter, faces [6]geometry.Face, mode Shading) {
	p.Begin(Quads)
	for _, f := range faces {
		if mode == Flat {
			c := f[0].Color
			p.Color(c[0], c[1], c[2])
		}
		for _, vx := range f {
			if mode == Smooth {
				p.Color(vx.Color[0], vx.Color[1], vx.Color[2])
			}
			p.Vertex(vx.Position[0], vx.Position[1], vx.Position[2])
		}
	}
	p.End()
}

// Background is the clear color used by both programs.
var Background = mgl32.Vec3{0, 0, 0}

// Frame is everything needed to draw one frame of the cube.
type Frame struct {
	Width, Height int
	Projection    mgl32.Mat4
	View          mgl32.Mat4
	Shading       Shading
	// Axes draws the world axes through the origin behind the cube.
	Axes bool
}

// DrawFrame clears the target, sets the viewport and matrices, then draws the cube at the origin.
// There is no model transform.
func DrawFrame(t Target, f Frame) {
	t.Clear(Background[0], Background[1], Background[2])
	t.Viewport(0, 0, f.Width, f.Height)
	t.LoadProjection(f.Projection)
	t.LoadView(f.View)
	if f.Axes {
		DrawAxes(t, AxisExtent)
	}
	DrawCube(t, geometry.Cube(), f.Shading)
}

// AxisExtent is how far each axis line reaches from the origin in both directions.
const AxisExtent = 50

var axisColors = [3]mgl32.Vec3{
	{0.86, 0.31, 0.31}, // X
	{0.31, 0.86, 0.31}, // Y
	{0.31, 0.31, 0.86}, // Z
}

// DrawAxes draws the X, Y and Z axes as lines from -extent to +extent.
func DrawAxes(p Painter, extent float32) {
	p.Begin(Lines)
	for i, c := range axisColors {
		var a, b mgl32.Vec3
		a[i], b[i] = -extent, extent
		p.Color(c[0], c[1], c[2])
		p.Vertex(a[0], a[1], a[2])
		p.Vertex(b[0], b[1], b[2])
	}
	p.End()
}
