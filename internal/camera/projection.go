package camera

import "github.com/go-gl/mathgl/mgl32"

// Perspective holds the vertical field of view (degrees) and clip planes of a projection.
type Perspective struct {
	FovY float32
	Near float32
	Far  float32
}

// DefaultPerspective is 45° vertical field of view with clip planes at 0.1 and 50.
func DefaultPerspective() Perspective {
	return Perspective{FovY: 45, Near: 0.1, Far: 50}
}

// Matrix builds the projection matrix for the given aspect ratio (width / height).
func (p Perspective) Matrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(p.FovY), aspect, p.Near, p.Far)
}

// AspectRatio returns width / height. A zero or negative height (minimized window) counts as 1.
func AspectRatio(width, height int) float32 {
	if height < 1 {
		height = 1
	}
	return float32(width) / float32(height)
}

// ProjectionAspect recovers the aspect ratio a perspective matrix was built with.
func ProjectionAspect(m mgl32.Mat4) float32 {
	if m[0] == 0 {
		return 0
	}
	return m[5] / m[0]
}

// fallbackUp replaces WorldUp when the eye sits on the vertical axis, where forward and
// WorldUp are parallel and their cross product vanishes.
var fallbackUp = mgl32.Vec3{0, 0, -1}

const degenerateLen = 1e-6

// LookAt returns the view matrix looking from eye toward the origin with WorldUp. Directly above
// or below the origin it uses fallbackUp instead; at the origin itself it returns the identity.
// The result never contains NaN.
func LookAt(eye mgl32.Vec3) mgl32.Mat4 {
	toTarget := Origin.Sub(eye)
	if toTarget.Len() < degenerateLen {
		return mgl32.Ident4()
	}
	up := WorldUp
	if toTarget.Normalize().Cross(up).Len() < degenerateLen {
		up = fallbackUp
	}
	return mgl32.LookAtV(eye, Origin, up)
}
