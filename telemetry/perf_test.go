package telemetry

import (
	"math"
	"testing"
	"time"
)

func TestPerfCollectorPhases(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseResize)
		pc.StartPhase(PhaseFlock)
		time.Sleep(5 * time.Millisecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}
	if stats.MinTickDuration > stats.AvgTickDuration || stats.AvgTickDuration > stats.MaxTickDuration {
		t.Errorf("min/avg/max out of order: %v/%v/%v",
			stats.MinTickDuration, stats.AvgTickDuration, stats.MaxTickDuration)
	}
	if _, ok := stats.PhaseAvg[PhaseResize]; !ok {
		t.Error("expected resize phase to be tracked")
	}
	if stats.PhaseAvg[PhaseFlock] < 4*time.Millisecond {
		t.Errorf("flock avg = %v, want at least 4ms", stats.PhaseAvg[PhaseFlock])
	}
	if stats.PhaseAvg[PhaseResize] >= stats.PhaseAvg[PhaseFlock] {
		t.Errorf("resize avg %v not below flock avg %v",
			stats.PhaseAvg[PhaseResize], stats.PhaseAvg[PhaseFlock])
	}
}

func TestPerfCollectorRollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	// Slow ticks first, then enough fast ticks to push them out
	for i := 0; i < 3; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseFlock)
		time.Sleep(5 * time.Millisecond)
		pc.EndTick()
	}
	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseFlock)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.MaxTickDuration >= 5*time.Millisecond {
		t.Errorf("slow ticks still in window: max %v", stats.MaxTickDuration)
	}
	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollectorSkippedPhaseCountsZero(t *testing.T) {
	pc := NewPerfCollector(4)

	pc.StartTick()
	pc.StartPhase(PhaseResize)
	time.Sleep(time.Millisecond)
	pc.EndTick()

	for i := 0; i < 4; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseFlock)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.PhaseAvg[PhaseResize] != 0 {
		t.Errorf("resize avg = %v after it left the window, want 0", stats.PhaseAvg[PhaseResize])
	}
}

func TestPerfCollectorEmptyStats(t *testing.T) {
	stats := NewPerfCollector(10).Stats()

	if stats.AvgTickDuration != 0 {
		t.Error("expected zero avg tick duration for empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfCollectorFrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FrameDuration < 15*time.Millisecond {
		t.Errorf("expected frame duration >= 15ms, got %v", stats.FrameDuration)
	}
	if stats.FPS <= 0 || stats.FPS > 70 {
		t.Errorf("expected FPS in (0, 70] with 16ms frames, got %v", stats.FPS)
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	s := PerfStats{
		AvgTickDuration: 1500 * time.Microsecond,
		PhasePct:        map[string]float64{PhaseFlock: 90, PhaseTelemetry: 2},
	}
	row := s.ToCSV(600)

	if row.WindowEnd != 600 || row.AvgTickUS != 1500 {
		t.Errorf("row = %+v", row)
	}
	if row.FlockPct != 90 || row.TelemetryPct != 2 || row.ResizePct != 0 {
		t.Errorf("phase pct = %v/%v/%v, want 0/90/2", row.ResizePct, row.FlockPct, row.TelemetryPct)
	}
}

func TestRoundPct(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{12.34, 12.3},
		{12.36, 12.4},
		{99.96, 100},
		{0.15, 0.2},
		{7, 7},
	}

	for _, tt := range tests {
		if got := roundPct(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("roundPct(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
