package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the OS window opened by Run.
type Window struct {
	Width  int32
	Height int32
	Title  string
	FPS    int32
}

// raylibDriver adapts the raylib window to the Driver interface used by Loop.
type raylibDriver struct{}

func (raylibDriver) ShouldClose() bool { return rl.WindowShouldClose() }

func (raylibDriver) BeginFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
}

func (raylibDriver) EndFrame() { rl.EndDrawing() }

// Run opens the window and drives the frame loop until the window is closed.
// Each frame it calls update (input, simulation, tracing), then clears the screen and calls draw.
// ESC does not quit; it is left to the console. Close via the window button.
func Run(win Window, update, draw func()) {
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(win.FPS)

	NewLoop(raylibDriver{}, update, draw).Run()
}

// SetTitle changes the window caption.
func SetTitle(title string) {
	rl.SetWindowTitle(title)
}

// SetFPS changes the frame rate cap.
func SetFPS(fps int32) {
	rl.SetTargetFPS(fps)
}

// FrameTime returns the duration of the last frame in seconds.
func FrameTime() float32 {
	return rl.GetFrameTime()
}
