package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/shoal/config"
	"github.com/pthm-cable/shoal/systems"
)

// Slider describes one live-tunable flock parameter.
type Slider struct {
	Label    string
	Min, Max float64
	Format   string
	Field    func(p *systems.Params) *float64
}

// Sliders lists the tunables shown in the panel, top to bottom.
var Sliders = []Slider{
	{"Alignment", 0, 0.5, "%.3f", func(p *systems.Params) *float64 { return &p.AlignmentForce }},
	{"Cohesion", 0, 0.1, "%.3f", func(p *systems.Params) *float64 { return &p.CohesionForce }},
	{"Separation", 0, 3, "%.2f", func(p *systems.Params) *float64 { return &p.SeparationForce }},
	{"Perception", 5, 150, "%.0f", func(p *systems.Params) *float64 { return &p.PerceptionRadius }},
	{"Leader pull", 1, 20, "%.1f", func(p *systems.Params) *float64 { return &p.BreakawayAttractionMultiplier }},
	{"Max speed", 0.5, 6, "%.2f", func(p *systems.Params) *float64 { return &p.MaxSpeed }},
	{"Pointer", 0, 0.5, "%.3f", func(p *systems.Params) *float64 { return &p.PointerInfluence }},
	{"Pointer reach", 50, 1500, "%.0f", func(p *systems.Params) *float64 { return &p.InteractionDist }},
	{"Drift chance", 0, 1, "%.2f", func(p *systems.Params) *float64 { return &p.DriftChance }},
}

// Variants lists the selectable variants in button order.
var Variants = []string{config.VariantFull, config.VariantFlocking, config.VariantAttract}

// PanelAction reports what the user asked for this frame.
type PanelAction struct {
	Variant string // non-empty when a variant button was pressed
	Reset   bool
}

// Panel is the raygui tuning panel. Slider edits write straight into the
// flock's Params, so they take effect on the next tick.
type Panel struct {
	theme   Theme
	x, y    float32
	width   float32
	visible bool
}

const (
	sliderHeight = 16
	rowHeight    = 38
	buttonHeight = 24
)

// NewPanel creates a hidden panel anchored at (x, y).
func NewPanel(x, y, width float32) *Panel {
	return &Panel{theme: DefaultTheme(), x: x, y: y, width: width}
}

// Toggle switches panel visibility.
func (p *Panel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// Visible reports whether the panel is drawn.
func (p *Panel) Visible() bool {
	return p.visible
}

// SetAnchor moves the panel, e.g. after a window resize.
func (p *Panel) SetAnchor(x, y float32) {
	p.x, p.y = x, y
}

// Contains reports whether (x, y) lies inside the panel.
func (p *Panel) Contains(x, y float32) bool {
	return x >= p.x && x < p.x+p.width && y >= p.y && y < p.y+p.Height()
}

// Height returns the panel height in pixels.
func (p *Panel) Height() float32 {
	pad := float32(p.theme.Padding)
	return pad + float32(p.theme.LineHeight) + float32(len(Sliders))*rowHeight + 2*(buttonHeight+pad) + pad
}

// Draw renders the panel and applies slider edits to params.
func (p *Panel) Draw(params *systems.Params, variant string) PanelAction {
	var action PanelAction
	if !p.visible {
		return action
	}
	th := p.theme
	pad := float32(th.Padding)

	rl.DrawRectangle(int32(p.x), int32(p.y), int32(p.width), int32(p.Height()), th.PanelBg)
	rl.DrawRectangleLines(int32(p.x), int32(p.y), int32(p.width), int32(p.Height()), th.PanelBorder)

	x := p.x + pad
	y := p.y + pad
	inner := p.width - 2*pad

	rl.DrawText("Tuning [Tab]", int32(x), int32(y), th.HeaderSize, th.SectionHeader)
	y += float32(th.LineHeight) + 4

	for _, s := range Sliders {
		field := s.Field(params)
		rl.DrawText(s.Label, int32(x), int32(y), th.FontSize, th.LabelColor)
		rl.DrawText(fmt.Sprintf(s.Format, *field), int32(x+inner-60), int32(y), th.FontSize, th.ValueColor)

		v := gui.SliderBar(
			rl.Rectangle{X: x, Y: y + 14, Width: inner, Height: sliderHeight},
			"", "",
			float32(*field), float32(s.Min), float32(s.Max),
		)
		// Only write on change so float32 rounding does not creep into untouched values
		if v != float32(*field) {
			*field = s.Clamp(float64(v))
		}
		y += rowHeight
	}

	y += pad / 2
	bw := (inner - 2*pad) / float32(len(Variants))
	for i, v := range Variants {
		label := v
		if v == variant {
			label = "[" + v + "]"
		}
		bx := x + float32(i)*(bw+pad)
		if gui.Button(rl.Rectangle{X: bx, Y: y, Width: bw, Height: buttonHeight}, label) && v != variant {
			action.Variant = v
		}
	}
	y += buttonHeight + pad

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: inner, Height: buttonHeight}, "Reset to config") {
		action.Reset = true
	}
	return action
}

// Clamp limits v to the slider range.
func (s Slider) Clamp(v float64) float64 {
	return max(s.Min, min(s.Max, v))
}
