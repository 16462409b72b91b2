package debug

import (
	"fmt"
	"runtime"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 10
	padding    = 6
	lineHeight = fontSize + 2
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws optional overlays in the top-right corner: FPS, trace time of the last
// frame and heap allocation. All overlays are off by default.
type Debug struct {
	ShowFPS        bool
	ShowMemAlloc   bool
	ShowRenderTime bool
	frameCount     uint32
	renderTime     time.Duration
	lastFpsText    string
	lastMemText    string
	lastRenderText string
	lastMemStats   runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetRenderTime records how long the last frame took to trace.
func (d *Debug) SetRenderTime(t time.Duration) {
	d.renderTime = t
}

// Lines returns the overlay text for the enabled overlays, refreshing it every updateInterval frames.
func (d *Debug) Lines() []string {
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	var lines []string

	if d.ShowFPS {
		if update || d.lastFpsText == "" {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		lines = append(lines, d.lastFpsText)
	}
	if d.ShowRenderTime {
		if update || d.lastRenderText == "" {
			d.lastRenderText = fmt.Sprintf("Trace: %.1f ms", float64(d.renderTime.Microseconds())/1000)
		}
		lines = append(lines, d.lastRenderText)
	}
	if d.ShowMemAlloc {
		if update || d.lastMemText == "" {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		lines = append(lines, d.lastMemText)
	}
	return lines
}

// Draw renders the enabled overlays. Call after the frame blit and before the console.
func (d *Debug) Draw() {
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range d.Lines() {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
