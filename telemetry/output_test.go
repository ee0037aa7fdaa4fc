package telemetry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/shoal/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v; want nil, nil", om, err)
	}

	// Every method is a no-op on nil
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Error(err)
	}
	if err := om.WritePerf(PerfStats{}, 0); err != nil {
		t.Error(err)
	}
	if err := om.WriteConfig(nil); err != nil {
		t.Error(err)
	}
	if om.Dir() != "" {
		t.Error("expected empty dir")
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	for _, end := range []int32{600, 1200} {
		if err := om.WriteTelemetry(WindowStats{WindowEndTick: end, Population: 120, SpeedMean: 1.5}); err != nil {
			t.Fatalf("WriteTelemetry: %v", err)
		}
		if err := om.WritePerf(PerfStats{AvgTickDuration: 250 * time.Microsecond}, end); err != nil {
			t.Fatalf("WritePerf: %v", err)
		}
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var windows []WindowStats
	readCSV(t, filepath.Join(dir, TelemetryFile), &windows)
	if len(windows) != 2 {
		t.Fatalf("read %d telemetry rows, want 2 (header written once)", len(windows))
	}
	if windows[1].WindowEndTick != 1200 || windows[1].Population != 120 || windows[1].SpeedMean != 1.5 {
		t.Errorf("row 2 = %+v", windows[1])
	}

	var perf []PerfStatsCSV
	readCSV(t, filepath.Join(dir, PerfFile), &perf)
	if len(perf) != 2 || perf[0].WindowEnd != 600 || perf[0].AvgTickUS != 250 {
		t.Errorf("perf rows = %+v", perf)
	}
}

func TestOutputManagerWritesConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}

	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	defer om.Close()

	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}

	saved, err := config.Load(filepath.Join(dir, ConfigFile))
	if err != nil {
		t.Fatalf("reloading saved config: %v", err)
	}
	if saved.Flock.PerceptionRadius != cfg.Flock.PerceptionRadius || saved.Variant != cfg.Variant {
		t.Errorf("saved config differs: %+v vs %+v", saved.Flock, cfg.Flock)
	}
}

func readCSV(t *testing.T, path string, out any) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()
	if err := gocsv.UnmarshalFile(f, out); err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}
}
