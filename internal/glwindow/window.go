// Package glwindow hosts the free-look program on GLFW with a fixed-function OpenGL 2.1 context.
package glwindow

import (
	"fmt"

	"colored-cube/internal/camera"
	"colored-cube/internal/config"
	"colored-cube/internal/logger"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a GLFW window with a current GL 2.1 context. All methods must run on the main OS thread.
type Window struct {
	win *glfw.Window
	log *logger.Logger
	// debug enables per-event key logging.
	debug bool
}

// Open initializes GLFW, creates the window, makes its context current and loads GL.
// On failure everything acquired so far is released before the error is returned.
func Open(cfg config.Window, log *logger.Logger, debug bool) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.DepthBits, 24)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("init gl: %w", err)
	}
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	gl.Enable(gl.DEPTH_TEST)
	gl.ShadeModel(gl.SMOOTH)

	w := &Window{win: win, log: log, debug: debug && log != nil}
	win.SetKeyCallback(w.onKey)
	if log != nil {
		log.Logf("opengl %s", gl.GoStr(gl.GetString(gl.VERSION)))
	}
	return w, nil
}

// onKey is the discrete event channel: ESC closes the window. Movement and rotation are polled instead.
func (w *Window) onKey(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
	if w.debug {
		w.log.Logf("key %s %s", keyName(key, scancode), actionName(action))
	}
	if key == glfw.KeyEscape && action == glfw.Press {
		w.win.SetShouldClose(true)
	}
}

// Input samples the keyboard. WASD moves, the arrow keys turn.
func (w *Window) Input() camera.Input {
	down := func(k glfw.Key) bool {
		return w.win.GetKey(k) == glfw.Press
	}
	return camera.Input{
		MoveForward: down(glfw.KeyW),
		MoveBack:    down(glfw.KeyS),
		MoveRight:   down(glfw.KeyD),
		MoveLeft:    down(glfw.KeyA),
		YawLeft:     down(glfw.KeyLeft),
		YawRight:    down(glfw.KeyRight),
		PitchUp:     down(glfw.KeyUp),
		PitchDown:   down(glfw.KeyDown),
	}
}

// Run loops until the window should close: poll events, update with the sampled input and the
// seconds since the previous frame, draw at the current framebuffer size, swap buffers.
func (w *Window) Run(update func(in camera.Input, dt float32), draw func(width, height int)) {
	last := glfw.GetTime()
	for !w.win.ShouldClose() {
		glfw.PollEvents()

		now := glfw.GetTime()
		dt := float32(now - last)
		last = now
		update(w.Input(), dt)

		width, height := w.win.GetFramebufferSize()
		draw(width, height)
		w.win.SwapBuffers()
	}
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}

func keyName(key glfw.Key, scancode int) string {
	if name := glfw.GetKeyName(key, scancode); name != "" {
		return name
	}
	switch key {
	case glfw.KeyEscape:
		return "escape"
	case glfw.KeyLeft:
		return "left"
	case glfw.KeyRight:
		return "right"
	case glfw.KeyUp:
		return "up"
	case glfw.KeyDown:
		return "down"
	}
	return fmt.Sprintf("key(%d)", int(key))
}

func actionName(a glfw.Action) string {
	switch a {
	case glfw.Press:
		return "press"
	case glfw.Release:
		return "release"
	case glfw.Repeat:
		return "repeat"
	}
	return "unknown"
}
