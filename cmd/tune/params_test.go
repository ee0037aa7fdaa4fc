package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/shoal/config"
)

func TestParamVectorNormalizeRoundtrip(t *testing.T) {
	pv := NewParamVector()
	raw := pv.ExtractFromConfig(config.Defaults())

	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-12 {
			t.Errorf("%s: %v -> %v", pv.Specs[i].Name, raw[i], back[i])
		}
	}
}

func TestDefaultsInsideBounds(t *testing.T) {
	pv := NewParamVector()
	raw := pv.ExtractFromConfig(config.Defaults())

	if len(raw) != pv.Dim() {
		t.Fatalf("extracted %d values for %d specs", len(raw), pv.Dim())
	}
	for i, spec := range pv.Specs {
		if raw[i] < spec.Min || raw[i] > spec.Max {
			t.Errorf("%s default %v outside [%v, %v]", spec.Name, raw[i], spec.Min, spec.Max)
		}
	}
}

func TestApplyToConfigClamps(t *testing.T) {
	pv := NewParamVector()
	cfg := config.Defaults()

	pv.ApplyToConfig(cfg, []float64{-1, 0.05, 10, 60})

	got := pv.ExtractFromConfig(cfg)
	want := []float64{0, 0.05, 3, 60}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s = %v, want %v", pv.Specs[i].Name, got[i], want[i])
		}
	}
}
