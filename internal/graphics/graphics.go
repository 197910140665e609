package graphics

import (
	"errors"

	"colored-cube/internal/config"
	"colored-cube/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrWindow is returned when raylib could not create the window or its GL context.
var ErrWindow = errors.New("graphics: window or GL context unavailable")

// Run opens a resizable window and runs the main loop until the window is closed.
// Each frame it calls update (input, resize handling), then begins drawing and calls draw.
// ESC closes the window. raylib's own trace log is routed to log when log is non-nil.
func Run(cfg config.Window, log *logger.Logger, update, draw func()) error {
	if log != nil {
		rl.SetTraceLogCallback(func(level int, msg string) {
			log.Log("raylib " + levelName(level) + ": " + msg)
		})
	}

	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if cfg.VSync {
		flags |= rl.FlagVsyncHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	if !rl.IsWindowReady() {
		return ErrWindow
	}
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyEscape)
	if cfg.TargetFPS > 0 {
		rl.SetTargetFPS(int32(cfg.TargetFPS))
	}

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		draw()
		rl.EndDrawing()
	}
	return nil
}

// Keys the static viewer toggles settings with.
const (
	KeyToggleFPS  = rl.KeyF1
	KeyToggleAxes = rl.KeyF2
)

// Pressed reports whether key went down since the previous frame.
func Pressed(key int32) bool {
	return rl.IsKeyPressed(key)
}

// Resized reports whether the window was resized since the previous frame, and its new render size.
func Resized() (width, height int, ok bool) {
	if !rl.IsWindowResized() {
		return 0, 0, false
	}
	w, h := Size()
	return w, h, true
}

// Size returns the current render (framebuffer) size in pixels.
func Size() (width, height int) {
	return rl.GetRenderWidth(), rl.GetRenderHeight()
}

// levelName maps a raylib TraceLogLevel to the word used in log lines.
func levelName(level int) string {
	switch rl.TraceLogLevel(level) {
	case rl.LogTrace:
		return "trace"
	case rl.LogDebug:
		return "debug"
	case rl.LogInfo:
		return "info"
	case rl.LogWarning:
		return "warning"
	case rl.LogError:
		return "error"
	case rl.LogFatal:
		return "fatal"
	}
	return "log"
}
