package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the fixed up direction. It is never re-orthogonalized against the view direction.
var WorldUp = mgl32.Vec3{0, 1, 0}

// Origin is where the cube sits and where every camera looks.
var Origin = mgl32.Vec3{0, 0, 0}

// Direction is a movement axis for Move.
type Direction int

const (
	Forward Direction = iota
	Back
	StrafeRight
	StrafeLeft
)

// String returns the lowercase name of the direction, used in debug logs.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Back:
		return "back"
	case StrafeRight:
		return "right"
	case StrafeLeft:
		return "left"
	}
	return "unknown"
}

// Speeds sets how fast Step moves and turns the camera.
// Move is in world units per second, Rotate in degrees per second.
type Speeds struct {
	Move   float32
	Rotate float32
}

// FreeLook is the free-look camera: a position plus yaw and pitch in degrees.
// Angles are unbounded. Pitch past ±90° flips the movement basis and is left that way.
type FreeLook struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32
}

// NewFreeLook returns a camera at position with zero yaw and pitch.
func NewFreeLook(position mgl32.Vec3) *FreeLook {
	return &FreeLook{Position: position}
}

// ForwardFrom converts yaw and pitch in degrees to a unit direction vector.
// yaw=0, pitch=0 points along +X; positive pitch points toward +Y.
func ForwardFrom(yaw, pitch float32) mgl32.Vec3 {
	y, p := mgl32.DegToRad(yaw), mgl32.DegToRad(pitch)
	cp := math32.Cos(p)
	f := mgl32.Vec3{
		math32.Cos(y) * cp,
		math32.Sin(p),
		math32.Sin(y) * cp,
	}
	return f.Normalize()
}

// RightFrom returns forward × WorldUp. The result is not normalized and shrinks toward zero
// as forward approaches ±WorldUp.
func RightFrom(forward mgl32.Vec3) mgl32.Vec3 {
	return forward.Cross(WorldUp)
}

// Forward returns the current unit forward vector.
func (c *FreeLook) Forward() mgl32.Vec3 {
	return ForwardFrom(c.Yaw, c.Pitch)
}

// Right returns the current lateral vector.
func (c *FreeLook) Right() mgl32.Vec3 {
	return RightFrom(c.Forward())
}

// Rotate adds dYaw and dPitch (degrees) to the camera angles. No wrapping or clamping.
func (c *FreeLook) Rotate(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch += dPitch
}

// Move translates the camera by distance along dir, using the basis derived from the current angles.
func (c *FreeLook) Move(dir Direction, distance float32) {
	f := c.Forward()
	switch dir {
	case Forward:
		c.Position = c.Position.Add(f.Mul(distance))
	case Back:
		c.Position = c.Position.Sub(f.Mul(distance))
	case StrafeRight:
		c.Position = c.Position.Add(RightFrom(f).Mul(distance))
	case StrafeLeft:
		c.Position = c.Position.Sub(RightFrom(f).Mul(distance))
	}
}

// Step advances the camera by one frame of dt seconds.
// Rotation keys turn at s.Rotate degrees per second and may combine.
// Movement keys are checked forward, back, right, left and only the first held one moves the camera.
// It reports the direction moved, if any.
func (c *FreeLook) Step(in Input, dt float32, s Speeds) (Direction, bool) {
	turn := s.Rotate * dt
	var dYaw, dPitch float32
	if in.YawLeft {
		dYaw -= turn
	}
	if in.YawRight {
		dYaw += turn
	}
	if in.PitchUp {
		dPitch += turn
	}
	if in.PitchDown {
		dPitch -= turn
	}
	if dYaw != 0 || dPitch != 0 {
		c.Rotate(dYaw, dPitch)
	}

	dir, ok := in.Movement()
	if !ok {
		return 0, false
	}
	c.Move(dir, s.Move*dt)
	return dir, true
}

// View returns the view matrix looking from the camera position toward the origin.
func (c *FreeLook) View() mgl32.Mat4 {
	return LookAt(c.Position)
}

// Frame returns the projection and view matrices for a viewport of width × height pixels.
func (c *FreeLook) Frame(p Perspective, width, height int) (proj, view mgl32.Mat4) {
	return p.Matrix(AspectRatio(width, height)), c.View()
}
