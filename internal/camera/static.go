package camera

import "github.com/go-gl/mathgl/mgl32"

// Static is a camera that never moves: the eye is fixed at construction and looks at the origin.
type Static struct {
	eye  mgl32.Vec3
	view mgl32.Mat4
}

// DefaultEye is where both cameras start: on the (1,1,1) diagonal, three units out.
var DefaultEye = mgl32.Vec3{3, 3, 3}

// NewStatic returns a camera at eye looking at the origin.
func NewStatic(eye mgl32.Vec3) Static {
	return Static{eye: eye, view: LookAt(eye)}
}

// Eye returns the camera position.
func (s Static) Eye() mgl32.Vec3 { return s.eye }

// View returns the precomputed view matrix.
func (s Static) View() mgl32.Mat4 { return s.view }

// Viewport tracks the window's pixel size and the projection built for it.
// Resize replaces both; nothing else is carried between calls.
type Viewport struct {
	Width, Height int
	perspective   Perspective
	projection    mgl32.Mat4
}

// NewViewport returns a viewport of width × height with the projection already built.
func NewViewport(p Perspective, width, height int) *Viewport {
	vp := &Viewport{perspective: p}
	vp.Resize(width, height)
	return vp
}

// Resize stores the new pixel size and rebuilds the projection with the new aspect ratio.
func (vp *Viewport) Resize(width, height int) {
	vp.Width, vp.Height = width, height
	vp.projection = vp.perspective.Matrix(AspectRatio(width, height))
}

// Projection returns the projection for the current size.
func (vp *Viewport) Projection() mgl32.Mat4 {
	return vp.projection
}

// Aspect returns the aspect ratio the current projection was built with.
func (vp *Viewport) Aspect() float32 {
	return AspectRatio(vp.Width, vp.Height)
}
