package scene

import (
	"colored-cube/internal/camera"
	"colored-cube/internal/config"
	"colored-cube/internal/logger"
	"colored-cube/internal/render"
)

// Static draws the cube from a fixed camera. Its only state is the viewport, replaced on every resize.
type Static struct {
	Camera   camera.Static
	Viewport *camera.Viewport
	shading  render.Shading
	axes     bool
}

// NewStatic returns a static scene sized to the configured window.
// Camera: eye at the configured start (3,3,3 by default), target (0,0,0), up (0,1,0).
func NewStatic(cfg config.Config) *Static {
	return &Static{
		Camera:   camera.NewStatic(cfg.StartPosition()),
		Viewport: camera.NewViewport(cfg.Perspective(), cfg.Window.Width, cfg.Window.Height),
		shading:  cfg.ShadingMode(),
		axes:     cfg.Axes,
	}
}

// Resize handles a window resize: new viewport size and projection; the view is untouched.
func (s *Static) Resize(width, height int) {
	s.Viewport.Resize(width, height)
}

// SetAxes turns the axis lines on or off for the following frames.
func (s *Static) SetAxes(on bool) {
	s.axes = on
}

// Draw renders one frame into t.
func (s *Static) Draw(t render.Target) {
	render.DrawFrame(t, render.Frame{
		Width:      s.Viewport.Width,
		Height:     s.Viewport.Height,
		Projection: s.Viewport.Projection(),
		View:       s.Camera.View(),
		Shading:    s.shading,
		Axes:       s.axes,
	})
}

// FreeLook owns the free-look camera and advances it from sampled input once per frame.
type FreeLook struct {
	cam         *camera.FreeLook
	perspective camera.Perspective
	speeds      camera.Speeds
	shading     render.Shading
	axes        bool

	log      *logger.Logger
	debug    bool
	logEvery int
	frames   uint64
}

// NewFreeLook returns a free-look scene with the camera at the configured start position.
// log may be nil; position logging only happens when cfg.Debug is set.
func NewFreeLook(cfg config.Config, log *logger.Logger) *FreeLook {
	return &FreeLook{
		cam:         camera.NewFreeLook(cfg.StartPosition()),
		perspective: cfg.Perspective(),
		speeds:      cfg.Speeds(),
		shading:     cfg.ShadingMode(),
		axes:        cfg.Axes,
		log:         log,
		debug:       cfg.Debug && log != nil,
		logEvery:    cfg.LogEvery,
	}
}

// Camera returns the camera so hosts and tests can read its state.
func (s *FreeLook) Camera() *camera.FreeLook {
	return s.cam
}

// Update applies one frame of input over dt seconds.
// In debug mode the position is logged every logEvery frames while the camera is moving or turning.
func (s *FreeLook) Update(in camera.Input, dt float32) {
	s.frames++
	dir, moved := s.cam.Step(in, dt, s.speeds)
	if !s.debug || s.logEvery == 0 || s.frames%uint64(s.logEvery) != 0 {
		return
	}
	if !moved && !in.Rotating() {
		return
	}
	p := s.cam.Position
	if moved {
		s.log.Logf("camera %s pos=(%.3f, %.3f, %.3f) yaw=%.1f pitch=%.1f", dir, p[0], p[1], p[2], s.cam.Yaw, s.cam.Pitch)
		return
	}
	s.log.Logf("camera pos=(%.3f, %.3f, %.3f) yaw=%.1f pitch=%.1f", p[0], p[1], p[2], s.cam.Yaw, s.cam.Pitch)
}

// Draw renders one frame into t for a framebuffer of width × height pixels.
func (s *FreeLook) Draw(t render.Target, width, height int) {
	proj, view := s.cam.Frame(s.perspective, width, height)
	render.DrawFrame(t, render.Frame{
		Width:      width,
		Height:     height,
		Projection: proj,
		View:       view,
		Shading:    s.shading,
		Axes:       s.axes,
	})
}
