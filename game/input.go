package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/shoal/systems"
)

// maxStepsPerUpdate bounds the fast-forward multiplier.
const maxStepsPerUpdate = 10

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < maxStepsPerUpdate {
		g.stepsPerUpdate++
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		g.panel.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		g.hud.Toggle()
	}

	g.handlePointer()
}

// handleResize checks for window resize and requests the new viewport.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float64(rl.GetScreenWidth())
	h := float64(rl.GetScreenHeight())
	if w == g.viewport.Width && h == g.viewport.Height {
		return
	}
	g.SetViewport(w, h)
	g.panel.SetAnchor(float32(w)-panelWidth-10, 10)
}

// handlePointer tracks the mouse. The pointer is absent while the cursor is
// off the window or over the open tuning panel.
func (g *Game) handlePointer() {
	if !rl.IsCursorOnScreen() {
		g.pointer = systems.Pointer{}
		return
	}
	m := rl.GetMousePosition()
	if g.panel.Visible() && g.panel.Contains(m.X, m.Y) {
		g.pointer = systems.Pointer{}
		return
	}
	g.pointer = systems.PointerAt(float64(m.X), float64(m.Y))
}
