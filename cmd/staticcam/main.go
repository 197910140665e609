// Command staticcam shows the colored cube from a fixed camera at (3,3,3). The window can be
// resized; F1 toggles the FPS line, F2 the axes; ESC or the close button quits.
package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"colored-cube/internal/config"
	"colored-cube/internal/debug"
	"colored-cube/internal/env"
	"colored-cube/internal/graphics"
	"colored-cube/internal/logger"
	"colored-cube/internal/scene"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg, report := config.Startup(env.DefaultFile)
	log := logger.New(cfg.LogPath)
	for _, w := range report.Warnings {
		log.Log("config: " + w)
	}

	scn := scene.NewStatic(cfg)
	if cfg.Debug {
		if len(report.EnvKeys) > 0 {
			log.Log("env: loaded " + strings.Join(report.EnvKeys, ", "))
		}
		log.Logf("logging to %q, camera at %v", log.Path(), scn.Camera.Eye())
	}
	overlay := debug.New(cfg.ShowFPS, cfg.Debug)
	var target graphics.Target

	// F1 and F2 flip the FPS line and the axes and write the choice back to the config file.
	save := func() {
		if err := config.Save(config.Path(), cfg); err != nil {
			log.Log("config: " + err.Error())
		}
	}

	update := func() {
		if graphics.Pressed(graphics.KeyToggleFPS) {
			cfg.ShowFPS = !cfg.ShowFPS
			overlay.ShowFPS = cfg.ShowFPS
			save()
		}
		if graphics.Pressed(graphics.KeyToggleAxes) {
			cfg.Axes = !cfg.Axes
			scn.SetAxes(cfg.Axes)
			save()
		}
		if w, h, ok := graphics.Resized(); ok {
			scn.Resize(w, h)
			if cfg.Debug {
				log.Logf("resize %dx%d", w, h)
			}
		}
	}
	first := true
	draw := func() {
		if first {
			// The framebuffer can differ from the requested size on HiDPI displays.
			scn.Resize(graphics.Size())
			first = false
		}
		scn.Draw(&target)
		target.Finish()
		overlay.Draw(func() string {
			vp := scn.Viewport
			return debug.ViewportStatus(vp.Width, vp.Height, vp.Aspect())
		})
	}

	if err := graphics.Run(cfg.Window, log, update, draw); err != nil {
		log.Log(err.Error())
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
