// Package terminal is the viewer's command bar.
package terminal

import (
	"strings"
	"unicode/utf8"

	"custom-meshes/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	BarHeight = 36
	prompt    = "cmd> "
	fontSize  = 18
	padding   = 8
	// Log lines drawn above the input bar.
	maxLinesOnScreen = 12
	lineHeight       = fontSize + 4
	maxLineLen       = 160
	maxHistory       = 50
)

var (
	barColor    = rl.NewColor(40, 40, 40, 255)
	borderColor = rl.NewColor(80, 80, 80, 255)
	logBgColor  = rl.NewColor(24, 24, 24, 230)
)

// Terminal is the command bar at the bottom of the window, toggled with ESC. Submitted lines run
// through exec; the "cmd " prefix is optional. Output and errors go to the log.
type Terminal struct {
	log      *logger.Logger
	exec     func(line string) error
	inputBuf string
	open     bool
	history  []string
	// histPos indexes history while browsing with the arrow keys; len(history) means the live line.
	histPos int
}

// New returns a closed terminal that runs lines with exec.
func New(log *logger.Logger, exec func(line string) error) *Terminal {
	return &Terminal{log: log, exec: exec}
}

// IsOpen reports whether the terminal is capturing keyboard input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Update handles ESC (toggle), and when open: typing, paste, backspace, history and enter.
// Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
	}
	if !t.open {
		return
	}
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
	if ctrl && rl.IsKeyPressed(rl.KeyV) {
		t.inputBuf += rl.GetClipboardText()
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if rl.IsKeyPressed(rl.KeyUp) && t.histPos > 0 {
		t.histPos--
		t.inputBuf = t.history[t.histPos]
	}
	if rl.IsKeyPressed(rl.KeyDown) && t.histPos < len(t.history) {
		t.histPos++
		t.inputBuf = ""
		if t.histPos < len(t.history) {
			t.inputBuf = t.history[t.histPos]
		}
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && strings.TrimSpace(t.inputBuf) != "" {
		t.submit(t.inputBuf)
		t.inputBuf = ""
	}
}

func (t *Terminal) submit(line string) {
	t.history = append(t.history, line)
	if over := len(t.history) - maxHistory; over > 0 {
		t.history = t.history[over:]
	}
	t.histPos = len(t.history)

	t.log.Log("> " + line)
	if !strings.HasPrefix(line, "cmd ") {
		line = "cmd " + line
	}
	if err := t.exec(line); err != nil {
		t.log.Logger().Error("command failed", "error", err)
	}
}

// Draw draws the bar and the recent log lines above it when open.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - BarHeight

	logHeight := int32(maxLinesOnScreen * lineHeight)
	logY := barY - logHeight
	if logY < 0 {
		logHeight, logY = barY, 0
	}
	rl.DrawRectangle(0, logY, screenW, logHeight, logBgColor)

	lines := t.log.Lines()
	if len(lines) > maxLinesOnScreen {
		lines = lines[len(lines)-maxLinesOnScreen:]
	}
	for i, line := range lines {
		if len(line) > maxLineLen {
			line = line[:maxLineLen-3] + "..."
		}
		rl.DrawText(line, padding, logY+int32(i*lineHeight)+padding, fontSize, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, screenW, BarHeight, barColor)
	rl.DrawRectangle(0, barY, screenW, 1, borderColor)
	rl.DrawText(prompt+t.inputBuf+"|", padding, barY+padding, fontSize, rl.White)
}
