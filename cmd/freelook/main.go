// Command freelook shows the colored cube with a free-look camera: WASD moves, the arrow keys
// turn, ESC quits. The camera always faces the cube at the origin.
package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"colored-cube/internal/camera"
	"colored-cube/internal/config"
	"colored-cube/internal/env"
	"colored-cube/internal/glwindow"
	"colored-cube/internal/logger"
	"colored-cube/internal/scene"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg, report := config.Startup(env.DefaultFile)
	log := logger.New(cfg.LogPath)
	for _, w := range report.Warnings {
		log.Log("config: " + w)
	}
	if cfg.Debug {
		if len(report.EnvKeys) > 0 {
			log.Log("env: loaded " + strings.Join(report.EnvKeys, ", "))
		}
		log.Logf("logging to %q", log.Path())
	}

	win, err := glwindow.Open(cfg.Window, log, cfg.Debug)
	if err != nil {
		log.Log(err.Error())
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer win.Close()

	scn := scene.NewFreeLook(cfg, log)
	var target glwindow.Target
	win.Run(
		func(in camera.Input, dt float32) { scn.Update(in, dt) },
		func(width, height int) { scn.Draw(target, width, height) },
	)
}
