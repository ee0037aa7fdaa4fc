package telemetry

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"testing"
)

func TestComputeSpeedStats(t *testing.T) {
	tests := []struct {
		name                 string
		values               []float64
		mean, p50, p90, maxS float64
	}{
		{"empty", nil, 0, 0, 0, 0},
		{"single", []float64{2.5}, 2.5, 2.5, 2.5, 2.5},
		{"one to ten", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 5.5, 5, 9, 10},
		{"unsorted", []float64{10, 1, 9, 2, 8, 3, 7, 4, 6, 5}, 5.5, 5, 9, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, p50, p90, maxS := ComputeSpeedStats(tt.values)
			got := []float64{mean, p50, p90, maxS}
			want := []float64{tt.mean, tt.p50, tt.p90, tt.maxS}
			for i := range got {
				if math.Abs(got[i]-want[i]) > 1e-9 {
					t.Errorf("ComputeSpeedStats(%v) = %v, want %v", tt.values, got, want)
					break
				}
			}
		})
	}
}

func TestComputeSpeedStatsLeavesInput(t *testing.T) {
	values := []float64{3, 1, 2}
	ComputeSpeedStats(values)

	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input reordered: %v", values)
	}
}

func TestLogStatsGroupsWindow(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	WindowStats{
		WindowStartTick: 600,
		WindowEndTick:   1200,
		Population:      30,
		Breakaway:       2,
		Polarization:    0.75,
		PointerActive:   0.5,
	}.LogStats()

	var rec struct {
		Msg    string         `json:"msg"`
		Window map[string]any `json:"window"`
	}
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if rec.Msg != "stats" {
		t.Errorf("msg = %q, want stats", rec.Msg)
	}

	want := map[string]float64{
		"window_start":   600,
		"window_end":     1200,
		"population":     30,
		"breakaway":      2,
		"polarization":   0.75,
		"pointer_active": 0.5,
	}
	for key, v := range want {
		got, ok := rec.Window[key].(float64)
		if !ok || got != v {
			t.Errorf("window.%s = %v, want %v", key, rec.Window[key], v)
		}
	}
}
