package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/shoal/ui"
)

// Draw renders the frame.
func (g *Game) Draw() {
	g.perfCollector.RecordFrame()

	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())

	rl.BeginDrawing()
	g.background.Draw(w, h)
	g.fish.Draw(g.flock)

	if g.hud.Visible() {
		census := g.flock.Census(g.speeds)
		g.speeds = census.Speeds
		g.hud.Draw(ui.HUDData{
			Title:        g.cfg.Screen.Title,
			Fish:         census.Population,
			Breakaway:    census.Breakaway,
			Variant:      g.cfg.Variant,
			Tick:         g.tick,
			Speed:        g.stepsPerUpdate,
			FPS:          rl.GetFPS(),
			Paused:       g.paused,
			Pointer:      g.pointer.Valid,
			ScreenHeight: h,
		})
	}

	action := g.panel.Draw(g.params, g.cfg.Variant)
	rl.EndDrawing()

	if action.Variant != "" {
		g.applyVariant(action.Variant)
	}
	if action.Reset {
		g.resetParams()
	}
}
