package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce
	// allocations.
	updateInterval = 30
)

// Debug draws runtime overlays over the simulation: FPS, heap allocation
// and body count at the top-right, and a paused banner. All overlays are
// off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool

	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Draw renders the enabled overlays. Call last in the draw loop so the
// text sits above the scene. bodies is the current world population;
// paused shows a banner when the simulation is frozen.
func (d *Debug) Draw(bodies int, paused bool) {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.lastFpsText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, screenW, y, rl.Green)
		y += lineHeight
	}

	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		drawRight(d.lastMemText, screenW, y, rl.Green)
		y += lineHeight
	}

	drawRight(fmt.Sprintf("Bodies: %d", bodies), screenW, y, rl.Green)

	if paused {
		rl.DrawText("PAUSED", padding, padding, fontSize, rl.Yellow)
	}
}

func drawRight(text string, screenW, y int32, col rl.Color) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, col)
}
