package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme colors, indigo on dark
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorTextMuted     = rl.NewColor(119, 119, 119, 255)
)

func initHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 18)
}

// counterText is the HUD capture counter.
func counterText(completed, total int) string {
	return fmt.Sprintf("Captured %d/%d", completed, total)
}

func (g *Game) DrawUI() {
	gui.Label(rl.Rectangle{X: 10, Y: 10, Width: 300, Height: 24}, counterText(g.Ledger.Completed(), g.Ledger.Total()))

	progress := g.Tracker.Progress(g.timers.Now())
	gui.ProgressBar(rl.Rectangle{X: 10, Y: 40, Width: 200, Height: 16}, "", fmt.Sprintf("%d%%", int(progress*100)), progress, 0, 1)

	if g.lastCapture != "" {
		rl.DrawText("Last: "+g.lastCapture, 10, 64, 16, colorTextMuted)
	}
	rl.DrawText("Hover a target to capture it. Drag to orbit, wheel to zoom.", 10, int32(rl.GetScreenHeight())-26, 16, colorTextMuted)

	if g.DebugMode {
		rl.DrawFPS(10, 90)
		rl.DrawText(fmt.Sprintf("State:  %s", g.Tracker.State()), 10, 115, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Update: %.2f ms", g.updateMs), 10, 135, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Draw:   %.2f ms", g.drawMs), 10, 155, 16, rl.Green)
	}

	if g.runComplete {
		g.drawSuccess()
	}
}

func (g *Game) drawSuccess() {
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	rl.DrawRectangle(0, 0, int32(w), int32(h), rl.Fade(colorBgDark, 0.6))

	bounds := rl.Rectangle{X: w/2 - 160, Y: h/2 - 70, Width: 320, Height: 140}
	msg := fmt.Sprintf("All %d targets captured!", g.Ledger.Total())
	// 0 is the close button, 1 the first button
	if gui.MessageBox(bounds, "Success", msg, "Play again") >= 0 {
		g.Acknowledge()
	}
}
