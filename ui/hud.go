package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Controls is the key legend drawn along the bottom edge.
const Controls = "[Space] pause  [,/.] speed  [Tab] tuning  [H] HUD  [F11] fullscreen"

// HUDData holds everything the HUD shows.
type HUDData struct {
	Title        string
	Fish         int
	Breakaway    int
	Variant      string
	Tick         int32
	Speed        int
	FPS          int32
	Paused       bool
	Pointer      bool
	ScreenHeight int32
}

// HUD renders the heads-up display.
type HUD struct {
	theme   Theme
	visible bool
}

// NewHUD creates a visible HUD.
func NewHUD() *HUD {
	return &HUD{theme: DefaultTheme(), visible: true}
}

// Toggle switches HUD visibility.
func (h *HUD) Toggle() bool {
	h.visible = !h.visible
	return h.visible
}

// Visible reports whether the HUD is drawn.
func (h *HUD) Visible() bool {
	return h.visible
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	if !h.visible {
		return
	}
	th := h.theme

	rl.DrawText(data.Title, 10, 10, 20, th.ValueColor)
	rl.DrawText(
		fmt.Sprintf("Fish: %d | Breakaway: %d | Variant: %s", data.Fish, data.Breakaway, data.Variant),
		10, 35, th.HeaderSize, th.LabelColor,
	)
	rl.DrawText(
		fmt.Sprintf("Tick: %d | Speed: %dx | FPS: %d", data.Tick, data.Speed, data.FPS),
		10, 55, th.HeaderSize, th.LabelColor,
	)

	status := "Running"
	if data.Paused {
		status = "PAUSED"
	}
	if data.Pointer {
		status += " | pointer"
	}
	rl.DrawText(status, 10, 75, th.HeaderSize, th.SectionHeader)

	rl.DrawText(Controls, 10, data.ScreenHeight-25, th.FontSize+2, rl.Gray)
}
