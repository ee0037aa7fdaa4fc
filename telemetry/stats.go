package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated swarm statistics for a window of ticks.
type WindowStats struct {
	WindowStartTick int32 `csv:"-"`
	WindowEndTick   int32 `csv:"window_end"`

	// Population at window end
	Population int `csv:"population"`
	Breakaway  int `csv:"breakaway"`

	// Events during window
	BreakawayStarts int `csv:"breakaway_starts"`
	Spawned         int `csv:"spawned"`
	Culled          int `csv:"culled"`

	// Speed distribution (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
	SpeedMax  float64 `csv:"speed_max"`

	// Mean unit heading length at window end, in [0, 1]
	Polarization float64 `csv:"polarization"`

	// Fraction of ticks in the window with the pointer over the viewport
	PointerActive float64 `csv:"pointer_active"`
}

// Sample is the flock state observed when a window closes.
type Sample struct {
	Population   int
	Breakaway    int
	Polarization float64
	Speeds       []float64 // current speed of every fish
}

// ComputeSpeedStats calculates mean, empirical percentiles, and max of speeds.
// values is not modified.
func ComputeSpeedStats(values []float64) (mean, p50, p90, maxSpeed float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	maxSpeed = floats.Max(sorted)
	return mean, p50, p90, maxSpeed
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Int("population", s.Population),
		slog.Int("breakaway", s.Breakaway),
		slog.Int("breakaway_starts", s.BreakawayStarts),
		slog.Int("spawned", s.Spawned),
		slog.Int("culled", s.Culled),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Float64("speed_max", s.SpeedMax),
		slog.Float64("polarization", s.Polarization),
		slog.Float64("pointer_active", s.PointerActive),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
