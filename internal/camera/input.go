package camera

// Input is the key state sampled once per frame by the host.
type Input struct {
	MoveForward bool
	MoveBack    bool
	MoveRight   bool
	MoveLeft    bool

	YawLeft   bool
	YawRight  bool
	PitchUp   bool
	PitchDown bool
}

// Movement returns the single movement direction to apply this frame.
// Checks are mutually exclusive: forward, then back, then right, then left.
func (in Input) Movement() (Direction, bool) {
	switch {
	case in.MoveForward:
		return Forward, true
	case in.MoveBack:
		return Back, true
	case in.MoveRight:
		return StrafeRight, true
	case in.MoveLeft:
		return StrafeLeft, true
	}
	return 0, false
}

// Rotating reports whether any rotation key is held.
func (in Input) Rotating() bool {
	return in.YawLeft || in.YawRight || in.PitchUp || in.PitchDown
}
