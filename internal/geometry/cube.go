package geometry

import (
	"iter"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one corner of a face: a position in world space and an RGB color in [0,1].
type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// Face is a planar quadrilateral given as an ordered loop of four vertices.
type Face [4]Vertex

// HalfExtent is the distance from the cube center to each face.
const HalfExtent = 1.0

var (
	red    = mgl32.Vec3{1, 0, 0}
	green  = mgl32.Vec3{0, 1, 0}
	blue   = mgl32.Vec3{0, 0, 1}
	yellow = mgl32.Vec3{1, 1, 0}
)

// v builds a vertex from a position and color. Keeps the table below readable.
func v(x, y, z float32, c mgl32.Vec3) Vertex {
	return Vertex{Position: mgl32.Vec3{x, y, z}, Color: c}
}

// cube is the compiled-in face table: front, back, top, bottom, right, left.
// Every face cycles red, green, blue, yellow around its corners.
var cube = [6]Face{
	// Front (z=+1)
	{v(-1, -1, 1, red), v(1, -1, 1, green), v(1, 1, 1, blue), v(-1, 1, 1, yellow)},
	// Back (z=-1)
	{v(-1, -1, -1, red), v(1, -1, -1, green), v(1, 1, -1, blue), v(-1, 1, -1, yellow)},
	// Top (y=+1)
	{v(-1, 1, -1, red), v(1, 1, -1, green), v(1, 1, 1, blue), v(-1, 1, 1, yellow)},
	// Bottom (y=-1)
	{v(-1, -1, -1, red), v(1, -1, -1, green), v(1, -1, 1, blue), v(-1, -1, 1, yellow)},
	// Right (x=+1)
	{v(1, -1, -1, red), v(1, 1, -1, green), v(1, 1, 1, blue), v(1, -1, 1, yellow)},
	// Left (x=-1)
	{v(-1, -1, -1, red), v(-1, 1, -1, green), v(-1, 1, 1, blue), v(-1, -1, 1, yellow)},
}

// Cube returns the six faces of the unit cube centered at the origin with half-extent 1.
// The table is returned by value so callers can never mutate it.
func Cube() [6]Face {
	return cube
}

// Faces enumerates the cube faces with their index, in table order.
func Faces() iter.Seq2[int, Face] {
	return func(yield func(int, Face) bool) {
		for i, f := range cube {
			if !yield(i, f) {
				return
			}
		}
	}
}

// Corners returns the eight distinct corners of the cube, i.e. every point of {-1,1}³.
func Corners() [8]mgl32.Vec3 {
	var out [8]mgl32.Vec3
	for i := range out {
		x, y, z := float32(-HalfExtent), float32(-HalfExtent), float32(-HalfExtent)
		if i&1 != 0 {
			x = HalfExtent
		}
		if i&2 != 0 {
			y = HalfExtent
		}
		if i&4 != 0 {
			z = HalfExtent
		}
		out[i] = mgl32.Vec3{x, y, z}
	}
	return out
}

// Normal returns the unnormalized normal of the face from its first three corners.
// Its direction follows the winding of the vertex loop.
func (f Face) Normal() mgl32.Vec3 {
	a, b, c := f[0].Position, f[1].Position, f[2].Position
	return b.Sub(a).Cross(c.Sub(a))
}

// Area returns the area of the quad, computed as two triangles sharing the 0-2 diagonal.
func (f Face) Area() float32 {
	p0, p1, p2, p3 := f[0].Position, f[1].Position, f[2].Position, f[3].Position
	t1 := p1.Sub(p0).Cross(p2.Sub(p0)).Len() / 2
	t2 := p2.Sub(p0).Cross(p3.Sub(p0)).Len() / 2
	return t1 + t2
}

// Coplanar reports whether the fourth corner lies on the plane of the first three, within eps.
func (f Face) Coplanar(eps float32) bool {
	n := f.Normal()
	if n.Len() == 0 {
		return false
	}
	d := f[3].Position.Sub(f[0].Position).Dot(n.Normalize())
	return d <= eps && d >= -eps
}

// center returns the average of the four corner positions.
func (f Face) center() mgl32.Vec3 {
	var c mgl32.Vec3
	for _, vx := range f {
		c = c.Add(vx.Position)
	}
	return c.Mul(0.25)
}
