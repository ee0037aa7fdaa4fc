package ui

import (
	"testing"

	"github.com/pthm-cable/shoal/config"
	"github.com/pthm-cable/shoal/systems"
)

func TestSlidersCoverDefaults(t *testing.T) {
	cfg := config.Defaults()
	params := systems.ParamsFromConfig(cfg)

	seen := make(map[*float64]string)
	for _, s := range Sliders {
		field := s.Field(&params)
		if other, ok := seen[field]; ok {
			t.Errorf("%q and %q edit the same field", s.Label, other)
		}
		seen[field] = s.Label

		if *field < s.Min || *field > s.Max {
			t.Errorf("%s default %v outside slider range [%v, %v]", s.Label, *field, s.Min, s.Max)
		}
	}
}

func TestSliderWritesThrough(t *testing.T) {
	params := systems.ParamsFromConfig(config.Defaults())

	for _, s := range Sliders {
		*s.Field(&params) = s.Max
	}
	if params.AlignmentForce != 0.5 || params.PerceptionRadius != 150 {
		t.Errorf("slider fields not bound to params: %+v", params)
	}
}

func TestSliderClamp(t *testing.T) {
	s := Slider{Min: 1, Max: 2}

	tests := []struct{ in, want float64 }{
		{0, 1},
		{1.5, 1.5},
		{3, 2},
	}
	for _, tt := range tests {
		if got := s.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPanelToggle(t *testing.T) {
	p := NewPanel(0, 0, 260)
	if p.Visible() {
		t.Fatal("panel should start hidden")
	}
	if !p.Toggle() || !p.Visible() {
		t.Error("Toggle should show the panel")
	}
	if p.Height() <= 0 {
		t.Error("expected positive panel height")
	}
	if !p.Contains(10, 10) || p.Contains(270, 10) || p.Contains(10, p.Height()+1) {
		t.Error("Contains does not match the panel bounds")
	}

	// Hidden panels draw nothing and report no action
	p.Toggle()
	params := systems.ParamsFromConfig(config.Defaults())
	if a := p.Draw(&params, config.VariantFull); a != (PanelAction{}) {
		t.Errorf("hidden Draw returned %+v", a)
	}
}

func TestVariantsMatchConfig(t *testing.T) {
	cfg := config.Defaults()
	for _, v := range Variants {
		if err := cfg.SetVariant(v); err != nil {
			t.Errorf("panel offers unknown variant %q: %v", v, err)
		}
	}
}
