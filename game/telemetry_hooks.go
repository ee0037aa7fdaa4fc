package game

import (
	"log/slog"

	"github.com/pthm-cable/shoal/telemetry"
)

// flushTelemetry closes the stats window when it is due and fans the
// result out to the callback, the log, and the CSV output.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	census := g.flock.Census(g.speeds)
	g.speeds = census.Speeds

	stats := g.collector.Flush(g.tick, telemetry.Sample{
		Population:   census.Population,
		Breakaway:    census.Breakaway,
		Polarization: census.Polarization,
		Speeds:       census.Speeds,
	})
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
