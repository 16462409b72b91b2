package terminal

import (
	"unicode/utf8"

	"sphere-tracer/internal/commands"
	"sphere-tracer/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	BarHeight = 18
	prompt    = "> "
	fontSize  = 10
	padding   = 4
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 12
	lineHeight       = fontSize + 2
	maxLineChars     = 60
)

var (
	// Reused every frame to avoid per-frame color allocations.
	barColor  = rl.NewColor(40, 40, 40, 255)
	lineColor = rl.NewColor(80, 80, 80, 255)
	historyBg = rl.NewColor(24, 24, 24, 220)
)

// Terminal is the console at the bottom of the window, shown and hidden with ESC.
// Lines starting with "cmd " run through the command registry; anything else is echoed to the log.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
}

// New returns a closed console that logs lines and runs "cmd ..." through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the console is visible and capturing input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Submit handles one complete input line as if typed and confirmed with Enter.
func (t *Terminal) Submit(line string) {
	if line == "" {
		return
	}
	t.log.Log(prompt + line)
	args, isCmd := commands.Parse(line)
	if !isCmd {
		t.log.Log("not a command; try: cmd help")
		return
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Log(err.Error())
	}
}

// Update handles ESC (toggle) and, when open, typing, paste, backspace and enter. Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
	}
	if !t.open {
		return
	}
	// Paste: Ctrl+V (Windows/Linux) or Cmd+V (macOS)
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		if pasted := rl.GetClipboardText(); pasted != "" {
			t.inputBuf += pasted
		}
	} else {
		for {
			c := rl.GetCharPressed()
			if c == 0 {
				break
			}
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		line := t.inputBuf
		t.inputBuf = ""
		t.Submit(line)
	}
}

// Draw draws the input bar at the bottom and the most recent log lines above it.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	barY := screenH - BarHeight

	historyH := int32(maxLinesOnScreen*lineHeight + padding)
	historyY := barY - historyH
	if historyY < 0 {
		historyH = barY
		historyY = 0
	}
	rl.DrawRectangle(0, historyY, screenW, historyH, historyBg)

	lines := t.log.Lines()
	start := 0
	if len(lines) > maxLinesOnScreen {
		start = len(lines) - maxLinesOnScreen
	}
	for i := start; i < len(lines); i++ {
		y := historyY + int32((i-start)*lineHeight) + padding
		rl.DrawText(clip(stripTimestamp(lines[i])), padding, y, fontSize, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, screenW, BarHeight, barColor)
	rl.DrawRectangle(0, barY, screenW, 1, lineColor)
	rl.DrawText(clip(prompt+t.inputBuf+"|"), padding, barY+padding, fontSize, rl.White)
}

// stripTimestamp drops the "[2006-01-02 15:04:05] " prefix added by the logger; the window is narrow.
func stripTimestamp(line string) string {
	const stampLen = len("[2006-01-02 15:04:05] ")
	if len(line) >= stampLen && line[0] == '[' && line[stampLen-2] == ']' {
		return line[stampLen:]
	}
	return line
}

// clip keeps the tail of long lines so the cursor stays visible.
func clip(line string) string {
	if len(line) <= maxLineChars {
		return line
	}
	return "..." + line[len(line)-maxLineChars+3:]
}
