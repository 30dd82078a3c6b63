package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// simulationFPS is the host pacing rate. The physics step uses its own
// fixed dt; this only controls how often the host invokes it.
const simulationFPS = 60

// Run opens a window of the given pixel size and drives the main loop:
// each frame it calls update (input + one simulation step), then clears
// the screen and calls draw. Returns when the window is closed.
func Run(width, height int32, title string, update, draw func()) {
	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(simulationFPS)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
