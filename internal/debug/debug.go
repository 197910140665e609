package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Overlay draws FPS and a one-line status (viewport size, aspect) in the top-left corner.
// Both lines are off by default.
type Overlay struct {
	ShowFPS    bool
	ShowStatus bool
	frameCount uint32
	fpsText    string
	statusText string
}

// New returns an overlay with the given lines enabled.
func New(showFPS, showStatus bool) *Overlay {
	return &Overlay{ShowFPS: showFPS, ShowStatus: showStatus}
}

// Draw renders the enabled lines. status is only called when the text is due for a refresh.
// Call after the 3D scene so the overlay sits on top.
func (o *Overlay) Draw(status func() string) {
	o.frameCount++
	update := o.frameCount%updateInterval == 0
	y := int32(padding)

	if o.ShowFPS {
		if update || o.fpsText == "" {
			o.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		rl.DrawText(o.fpsText, padding, y, fontSize, rl.Green)
		y += lineHeight
	}
	if o.ShowStatus && status != nil {
		if update || o.statusText == "" {
			o.statusText = status()
		}
		rl.DrawText(o.statusText, padding, y, fontSize, rl.LightGray)
	}
}

// ViewportStatus formats the viewport line shown by the overlay.
func ViewportStatus(width, height int, aspect float32) string {
	return fmt.Sprintf("%dx%d  aspect %.3f", width, height, aspect)
}
